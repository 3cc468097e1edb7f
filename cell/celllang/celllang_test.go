package celllang

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinct/cell"
	"github.com/npillmayer/tinct/parse"
)

func u16(v uint16) *uint16 {
	return &v
}

func TestPositionSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.cell")
	defer teardown()
	//
	suc, ok := CellSelector(":5.3.*").Success()
	if !ok {
		t.Fatalf("expected ':5.3.*' to parse")
	}
	expected := cell.PositionSelector{Page: u16(5), Line: u16(3)}
	if !reflect.DeepEqual(suc.Value, expected) || suc.Rest != "" {
		t.Errorf("expected %s, got %s with rest %q", expected, suc.Value, suc.Rest)
	}
}

func TestPositionRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.cell")
	defer teardown()
	//
	suc, ok := CellSelector(":5.3.2-:6.0.0").Success()
	if !ok {
		t.Fatalf("expected ':5.3.2-:6.0.0' to parse")
	}
	expected := cell.PositionRange{
		Lower: cell.Position{Page: 5, Line: 3, Column: 2},
		Upper: cell.Position{Page: 6, Line: 0, Column: 0},
	}
	if suc.Value != cell.CellSelector(expected) || suc.Rest != "" {
		t.Errorf("expected %s, got %s", expected, suc.Value)
	}
}

func TestRangeError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.cell")
	defer teardown()
	//
	for _, c := range []struct {
		input    string
		expected string
	}{
		{":6.0.0-:5.3.2", "valid position range"},
		{":9 - :3", "valid index range"},
		{"b:2-a:5", "valid group range"},
	} {
		f := CellSelector(c.input).Failure()
		if f == nil {
			t.Errorf("expected %q to fail", c.input)
			continue
		}
		var rangeErr *cell.RangeError
		if !errors.As(f, &rangeErr) {
			t.Errorf("expected range error for %q, got %v", c.input, f)
		}
		if f.Expected != c.expected || f.Context != c.input || f.Rest != c.input {
			t.Errorf("unexpected failure for %q: %#v", c.input, f)
		}
	}
}

func TestRangeErrorInSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.cell")
	defer teardown()
	//
	for _, input := range []string{
		"*, :6-:5",
		":1, :6.0.0-:5.3.2",
		"x,:2 ,a:3-a:1",
	} {
		f := CellSelection(input).Failure()
		if f == nil {
			t.Errorf("expected selection %q to fail", input)
			continue
		}
		var rangeErr *cell.RangeError
		if !errors.As(f, &rangeErr) {
			t.Errorf("expected range error for %q, got %v", input, f)
		}
		if f.Context != input || f.Rest != input {
			t.Errorf("expected failure context to cover %q, is %q", input, f.Context)
		}
	}
	// a selector which does not parse still ends the list
	suc, ok := CellSelection("*, :x").Success()
	if !ok || len(suc.Value) != 1 || suc.Rest != ", :x" {
		t.Errorf("expected selection '*' with rest ', :x', got %#v", suc)
	}
}

func TestCellSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.cell")
	defer teardown()
	//
	suc, ok := CellSelection("*, name1, :12, group:3-group:9").Success()
	if !ok {
		t.Fatalf("expected selection to parse")
	}
	expected := cell.CellSelection{
		cell.All{},
		cell.Name("name1"),
		cell.Index(12),
		cell.GroupRange{Lower: cell.Group{Name: "group", Index: 3}, Upper: cell.Group{Name: "group", Index: 9}},
	}
	if !reflect.DeepEqual(suc.Value, expected) || suc.Rest != "" {
		t.Errorf("expected %s, got %s with rest %q", expected, suc.Value, suc.Rest)
	}
	// order is preserved
	suc, ok = CellSelection(":12,name1 ,*").Success()
	if !ok {
		t.Fatalf("expected reordered selection to parse")
	}
	expected = cell.CellSelection{cell.Index(12), cell.Name("name1"), cell.All{}}
	if !reflect.DeepEqual(suc.Value, expected) {
		t.Errorf("expected %s, got %s", expected, suc.Value)
	}
}

func TestSelectorKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.cell")
	defer teardown()
	//
	for _, c := range []struct {
		input    string
		selector cell.CellSelector
		rest     string
	}{
		{"*", cell.All{}, ""},
		{":0x10", cell.Index(16), ""},
		{":2-:4", cell.IndexRange{Lower: 2, Upper: 4}, ""},
		{":2-", cell.Index(2), "-"},
		{"bg:*", cell.GroupAll("bg"), ""},
		{"bg:1", cell.Group{Name: "bg", Index: 1}, ""},
		{"dark blue:1", cell.Group{Name: "dark blue", Index: 1}, ""},
		{"  light  grey ", cell.Name("light  grey"), " "},
	} {
		suc, ok := CellSelector(c.input).Success()
		if !ok {
			t.Errorf("expected %q to parse", c.input)
			continue
		}
		if !reflect.DeepEqual(suc.Value, c.selector) || suc.Rest != c.rest {
			t.Errorf("expected %q to yield %s with rest %q, got %s and %q",
				c.input, c.selector, c.rest, suc.Value, suc.Rest)
		}
	}
}

func TestSelectorFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.cell")
	defer teardown()
	//
	f := CellSelector(":x").Failure()
	if f == nil {
		t.Fatalf("expected ':x' to fail")
	}
	if f.Expected != "cell selector value" || f.Context != ":" {
		t.Errorf("expected longest failure with context ':', got %#v", f)
	}
	var cause *parse.FailureOwned
	if !errors.As(f, &cause) || cause.Expected != "cell ref position" {
		t.Errorf("expected first of the longest failures as cause, got %v", cause)
	}
}

func TestCellRef(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.cell")
	defer teardown()
	//
	for _, c := range []struct {
		input string
		ref   cell.CellRef
	}{
		{":1.2.3", cell.Position{Page: 1, Line: 2, Column: 3}},
		{":7", cell.Index(7)},
		{"fg:2", cell.Group{Name: "fg", Index: 2}},
		{"accent", cell.Name("accent")},
	} {
		v, ok := parse.Complete(CellRef)(c.input).Value()
		if !ok || v != c.ref {
			t.Errorf("expected %q to yield %s, got %v", c.input, c.ref, v)
		}
	}
	if CellRef(":*").IsOK() {
		t.Errorf("expected ':*' not to be a cell reference")
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.cell")
	defer teardown()
	//
	for _, input := range []string{
		"*, name1, :12, group:3-group:9",
		":5.*.*, :1.2.3-:1.2.9, :0-:7, bg:*",
	} {
		sel, ok := CellSelection(input).Value()
		if !ok {
			t.Errorf("expected %q to parse", input)
			continue
		}
		if sel.String() != input {
			t.Errorf("expected %q to render as itself, is %q", input, sel.String())
		}
	}
}
