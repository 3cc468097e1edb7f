package palette

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinct/cell"
	"github.com/npillmayer/tinct/cell/celllang"
	"github.com/npillmayer/tinct/parse"
)

func loadWarm(t *testing.T) *Palette {
	p, err := LoadFile("testdata/warm.toml")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.palette")
	defer teardown()
	//
	p := loadWarm(t)
	if p.Len() != 5 {
		t.Fatalf("expected palette with 5 cells, has %d", p.Len())
	}
	c, ok := p.Cell(11)
	if !ok || c.Color.Hex() != "#ffffff" {
		t.Errorf("expected cell :11 to follow explicit index 10 and be white")
	}
	if !reflect.DeepEqual(p.Groups(), []string{"signal", "warm"}) {
		t.Errorf("unexpected groups %v", p.Groups())
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.palette")
	defer teardown()
	//
	for _, doc := range []string{
		"[[cell]]\ncolor = \"rgb(1, 0)\"\n",
		"[[cell]]\ncolor = \"#000\"\nposition = \":1.2\"\n",
		"[[cell]]\ncolor = \"#000\"\nhue = 3\n",
		"[[cell]]\ncolor = \"#000\"\nname = \"a\"\n[[cell]]\ncolor = \"#111\"\nname = \"a\"\n",
		"[[cell]]\ncolor = \"#000\"\nname = \"a:b\"\n",
	} {
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Errorf("expected error for palette document %q", doc)
		} else {
			t.Logf("error = %v", err)
		}
	}
	_, err := Load(strings.NewReader("[[cell]]\ncolor = \"rgb(1, 0)\"\n"))
	var f *parse.Failure
	if !errors.As(err, &f) {
		t.Errorf("expected parse failure in error chain, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.palette")
	defer teardown()
	//
	p := loadWarm(t)
	for _, c := range []struct {
		ref   string
		index cell.Index
	}{
		{"accent", 0},
		{":1", 1},
		{":0.1.0", 2},
		{"warm:2", 2},
		{"signal:0", 1},
		{"light yellow", 2},
	} {
		ref, ok := parse.Complete(celllang.CellRef)(c.ref).Value()
		if !ok {
			t.Errorf("expected %q to parse", c.ref)
			continue
		}
		cl, err := p.Lookup(ref)
		if err != nil {
			t.Errorf("lookup of %s failed: %v", ref, err)
			continue
		}
		if cl.Index != c.index {
			t.Errorf("expected %s to be cell %d, is %d", ref, c.index, cl.Index)
		}
	}
	if _, err := p.Lookup(cell.Name("nope")); !errors.Is(err, ErrNoCell) {
		t.Errorf("expected ErrNoCell for unknown name, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.palette")
	defer teardown()
	//
	p := loadWarm(t)
	for _, c := range []struct {
		selection string
		indices   []cell.Index
	}{
		{"*", []cell.Index{0, 1, 2, 10, 11}},
		{"ink, accent", []cell.Index{10, 0}},
		{":0.*.*", []cell.Index{0, 1, 2}},
		{":1.*.1, :0.0.*", []cell.Index{11, 0, 1}},
		{":0.0.1-:1.0.0", []cell.Index{1, 2, 10}},
		{":5-:20", []cell.Index{10, 11}},
		{"warm:*", []cell.Index{0, 1, 2}},
		{"warm:1-warm:9", []cell.Index{1, 2}},
		{"signal:0-warm:1", []cell.Index{1, 0}},
		{"signal:1-warm:0", []cell.Index{0}},
		{":2, warm:*, :2", []cell.Index{2, 0, 1}},
	} {
		sel, ok := parse.Complete(celllang.CellSelection)(c.selection).Value()
		if !ok {
			t.Errorf("expected %q to parse", c.selection)
			continue
		}
		indices, err := p.Resolve(sel)
		if err != nil {
			t.Errorf("resolving %q failed: %v", c.selection, err)
			continue
		}
		if !reflect.DeepEqual(indices, c.indices) {
			t.Errorf("expected %q to resolve to %v, is %v", c.selection, c.indices, indices)
		}
	}
}

func TestResolveMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.palette")
	defer teardown()
	//
	p := loadWarm(t)
	for _, sel := range []cell.CellSelection{
		{cell.Index(3)},
		{cell.Name("accent"), cell.Name("nope")},
		{cell.Group{Name: "warm", Index: 3}},
		{cell.GroupAll("cold")},
		{cell.GroupRange{Lower: cell.Group{Name: "cold", Index: 0}, Upper: cell.Group{Name: "cold", Index: 3}}},
		{cell.GroupRange{Lower: cell.Group{Name: "signal", Index: 0}, Upper: cell.Group{Name: "zinc", Index: 1}}},
	} {
		if _, err := p.Resolve(sel); !errors.Is(err, ErrNoCell) {
			t.Errorf("expected ErrNoCell for %s, got %v", sel, err)
		}
	}
}
