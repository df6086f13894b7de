package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewCLIHandler(&buf, level)), &buf
}

func TestCLIHandlerColors(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*slog.Logger)
		color string
	}{
		{"error", func(l *slog.Logger) { l.Error("figure") }, colorRed},
		{"warn", func(l *slog.Logger) { l.Warn("figure") }, colorYellow},
		{"debug", func(l *slog.Logger) { l.Debug("figure") }, colorGray},
		{"info", func(l *slog.Logger) { l.Info("figure") }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(slog.LevelDebug)
			tt.log(logger)
			out := buf.String()
			assert.Contains(t, out, "figure")
			if tt.color == "" {
				assert.NotContains(t, out, "\033[")
				return
			}
			assert.Contains(t, out, tt.color)
			assert.Contains(t, out, colorReset)
		})
	}
}

func TestCLIHandlerPlain(t *testing.T) {
	var buf bytes.Buffer
	h := NewCLIHandler(&buf, slog.LevelInfo)
	h.Plain = true
	slog.New(h).Error("saving failed", "path", "out.png")
	assert.Equal(t, "saving failed: path=out.png\n", buf.String())
}

func TestCLIHandlerLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     slog.Level
		log       func(*slog.Logger)
		shouldLog bool
	}{
		{"info handler logs info", slog.LevelInfo, func(l *slog.Logger) { l.Info("x") }, true},
		{"info handler filters debug", slog.LevelInfo, func(l *slog.Logger) { l.Debug("x") }, false},
		{"debug handler logs debug", slog.LevelDebug, func(l *slog.Logger) { l.Debug("x") }, true},
		{"error handler filters warn", slog.LevelError, func(l *slog.Logger) { l.Warn("x") }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(tt.level)
			tt.log(logger)
			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestCLIHandlerLevelVar(t *testing.T) {
	var buf bytes.Buffer
	var level slog.LevelVar
	logger := slog.New(NewCLIHandler(&buf, &level))

	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	level.Set(slog.LevelDebug)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestCLIHandlerAttrsAndGroups(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	logger.With("command", "mi").WithGroup("render").WithGroup("svg").Info("done", "panels", 1)
	assert.Contains(t, buf.String(), "[render.svg] done: command=mi panels=1")

	buf.Reset()
	logger.WithGroup("").Info("no prefix")
	assert.NotContains(t, buf.String(), "]")

	// With does not leak into the parent logger.
	buf.Reset()
	logger.Info("plain")
	assert.NotContains(t, buf.String(), "command")
}

func TestSetDefaultCLILogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	SetDefaultCLILogger("debug")
	require.NotNil(t, slog.Default())
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}
