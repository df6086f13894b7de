package qcplot

import (
	"testing"
)

func TestStringSet(t *testing.T) {
	a := NewStringSet()
	if len(a.Elements()) != 0 {
		t.Errorf("Got a = %v", a)
	}
	a.Add("Maximum")
	a.Add("Bins")
	a.Add("Vals")
	a.Add("Bins")
	if len(a) != 3 || !a.Contains("Bins") || a.Contains("Exp") {
		t.Errorf("Got a = %v", a)
	}

	a.Remove(NewStringSetFrom([]string{"Bins", "Exp", "nonsense"}))
	if got := a.Elements(); len(got) != 2 || got[0] != "Maximum" || got[1] != "Vals" {
		t.Errorf("Got elements %v", got)
	}
	if s := a.String(); s != "[Maximum Vals]" {
		t.Errorf("Got %q", s)
	}

	a.Remove(a)
	if len(a) != 0 || len(a.Elements()) != 0 {
		t.Errorf("Got a = %v", a)
	}
}
