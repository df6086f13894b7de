package qcplot

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrShape is returned if the number of columns, rows or titles
	// does not fit the requested chart layout.
	ErrShape = errors.New("qcplot: shape mismatch")

	// ErrColumn is returned if a named column is missing.
	ErrColumn = errors.New("qcplot: no such column")
)

// Column is one named column of a Table.
type Column struct {
	// Name of the column.
	Name string

	// Signals are the input signals a model column was fitted on.
	// Empty for plain columns.
	Signals []string

	// R is the correlation coefficient of a regression column.
	R float64

	Values []float64
}

// Table is an ordered sequence of columns of equal length. Column order
// is meaningful: charts address columns by index.
type Table struct {
	Columns []Column
	N       int // number of rows
}

// NewTable constructs a table from columns. All columns must have the
// same length and distinct names.
func NewTable(columns ...Column) (*Table, error) {
	t := &Table{Columns: columns}
	names := NewStringSet()
	for i, c := range columns {
		if i == 0 {
			t.N = len(c.Values)
		} else if len(c.Values) != t.N {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w",
				c.Name, len(c.Values), t.N, ErrShape)
		}
		if names.Contains(c.Name) {
			return nil, fmt.Errorf("duplicate column %q: %w", c.Name, ErrShape)
		}
		names.Add(c.Name)
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. Useful in tests and
// for literal tables.
func MustTable(columns ...Column) *Table {
	t, err := NewTable(columns...)
	if err != nil {
		panic(err)
	}
	return t
}

// Rows returns the number of rows in t.
func (t *Table) Rows() int { return t.N }

// Width returns the number of columns in t.
func (t *Table) Width() int { return len(t.Columns) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the column name or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Col returns the column name.
func (t *Table) Col(name string) (Column, error) {
	i := t.Index(name)
	if i == -1 {
		return Column{}, fmt.Errorf("%q: %w", name, ErrColumn)
	}
	return t.Columns[i], nil
}

// Print dumps t in a tabular form to w.
func (t *Table) Print(w io.Writer) {
	fmt.Fprintf(w, "Table with %d rows and %d columns\n", t.N, len(t.Columns))
	fmt.Fprintf(w, "%s\n", strings.Join(t.Names(), "\t"))
	for r := 0; r < t.N; r++ {
		cells := make([]string, len(t.Columns))
		for c, col := range t.Columns {
			cells[c] = fmt.Sprintf("%.4g", col.Values[r])
		}
		fmt.Fprintf(w, "%s\n", strings.Join(cells, "\t"))
	}
}
