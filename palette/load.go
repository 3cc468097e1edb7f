package palette

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/tinct/cell"
	"github.com/npillmayer/tinct/cell/celllang"
	"github.com/npillmayer/tinct/color/colorlang"
	"github.com/npillmayer/tinct/parse"
)

// document is the TOML form of a palette:
//
//    [[cell]]
//    index    = 4            # optional, defaults to the next free index
//    color    = "#ff8000"
//    name     = "accent"     # optional
//    position = ":0.1.2"     # optional
//    groups   = ["warm"]     # optional
//
// Colors and positions are written in the notations of packages colorlang
// and celllang.
type document struct {
	Cells []cellEntry `toml:"cell"`
}

type cellEntry struct {
	Index    *uint32  `toml:"index"`
	Color    string   `toml:"color"`
	Name     string   `toml:"name"`
	Position string   `toml:"position"`
	Groups   []string `toml:"groups"`
}

// LoadFile loads a palette from a TOML file.
func LoadFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	return p, nil
}

// Load reads a palette from a TOML document. Unknown keys are an error.
func Load(r io.Reader) (*Palette, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in palette: %s", strings.Join(keys, ", "))
	}
	p := New()
	var next cell.Index
	for n, entry := range doc.Cells {
		c, err := entry.cell(next)
		if err != nil {
			return nil, fmt.Errorf("cell entry #%d: %w", n+1, err)
		}
		if err = p.Add(c); err != nil {
			return nil, fmt.Errorf("cell entry #%d: %w", n+1, err)
		}
		next = c.Index + 1
	}
	tracer().Infof("loaded palette with %d cells", p.Len())
	return p, nil
}

func (entry cellEntry) cell(next cell.Index) (Cell, error) {
	c := Cell{Index: next, Groups: entry.Groups}
	if entry.Index != nil {
		c.Index = cell.Index(*entry.Index)
	}
	col, err := parseComplete(colorlang.Color, entry.Color)
	if err != nil {
		return c, fmt.Errorf("color: %w", err)
	}
	c.Color = col
	if entry.Name != "" {
		name, err := parseComplete(celllang.Name, entry.Name)
		if err != nil {
			return c, fmt.Errorf("name: %w", err)
		}
		c.Name = string(name)
	}
	if entry.Position != "" {
		pos, err := parseComplete(celllang.Position, entry.Position)
		if err != nil {
			return c, fmt.Errorf("position: %w", err)
		}
		c.Position = &pos
	}
	return c, nil
}

// parseComplete applies p to all of text.
func parseComplete[V any](p parse.Parser[V], text string) (V, error) {
	v, fail := parse.Complete(p)(text).Unpack()
	if fail != nil {
		var zero V
		return zero, fail
	}
	return v.Value, nil
}
