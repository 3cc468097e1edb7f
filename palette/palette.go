/*
Package palette provides an in-memory index of palette cells.

A palette holds cells, each of which has an index, a color and optionally a
name, a position and memberships in named groups. A palette resolves cell
references and cell selections to cell indices.

Palettes are read-only after construction. They are created from a TOML
document (see Load) or cell by cell with Add.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package palette

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinct/cell"
	"github.com/npillmayer/tinct/color"
)

// tracer traces with key 'tinct.palette'.
func tracer() tracing.Trace {
	return tracing.Select("tinct.palette")
}

// ErrNoCell is returned for references to cells which are not in the palette.
var ErrNoCell = errors.New("no such cell")

// Cell is a palette cell.
type Cell struct {
	Index    cell.Index
	Color    color.Color
	Name     string         // empty for unnamed cells
	Position *cell.Position // nil for cells without position
	Groups   []string       // groups the cell is a member of
}

// Palette is an index of cells.
type Palette struct {
	cells     *treemap.Map // cell.Index → *Cell
	names     *treemap.Map // string → cell.Index
	positions *treemap.Map // cell.Position → cell.Index
	groups    *treemap.Map // string → *arraylist.List of cell.Index
}

// New creates an empty palette.
func New() *Palette {
	return &Palette{
		cells:     treemap.NewWith(indexComparator),
		names:     treemap.NewWith(utils.StringComparator),
		positions: treemap.NewWith(positionComparator),
		groups:    treemap.NewWith(utils.StringComparator),
	}
}

func indexComparator(a, b interface{}) int {
	i1 := a.(cell.Index)
	i2 := b.(cell.Index)
	switch {
	case i1 < i2:
		return -1
	case i1 > i2:
		return 1
	}
	return 0
}

func positionComparator(a, b interface{}) int {
	return a.(cell.Position).Compare(b.(cell.Position))
}

// Add inserts a cell. Index, name and position have to be unused. Group
// memberships append the cell to the end of each group.
func (p *Palette) Add(c Cell) error {
	if _, found := p.cells.Get(c.Index); found {
		return fmt.Errorf("cell %s already present", c.Index)
	}
	if c.Name != "" {
		if _, found := p.names.Get(c.Name); found {
			return fmt.Errorf("cell name %q already in use", c.Name)
		}
	}
	if c.Position != nil {
		if _, found := p.positions.Get(*c.Position); found {
			return fmt.Errorf("cell position %s already in use", c.Position)
		}
	}
	stored := c
	p.cells.Put(c.Index, &stored)
	if c.Name != "" {
		p.names.Put(c.Name, c.Index)
	}
	if c.Position != nil {
		p.positions.Put(*c.Position, c.Index)
	}
	for _, g := range c.Groups {
		members, found := p.groups.Get(g)
		if !found {
			members = arraylist.New()
			p.groups.Put(g, members)
		}
		members.(*arraylist.List).Add(c.Index)
	}
	tracer().Debugf("added cell %s = %s", c.Index, c.Color)
	return nil
}

// Len returns the number of cells.
func (p *Palette) Len() int {
	return p.cells.Size()
}

// Cell returns the cell with index i.
func (p *Palette) Cell(i cell.Index) (*Cell, bool) {
	c, found := p.cells.Get(i)
	if !found {
		return nil, false
	}
	return c.(*Cell), true
}

// Cells returns all cells, ordered by index.
func (p *Palette) Cells() []*Cell {
	cells := make([]*Cell, 0, p.cells.Size())
	for _, c := range p.cells.Values() {
		cells = append(cells, c.(*Cell))
	}
	return cells
}

// Groups returns the names of all groups in alphabetical order.
func (p *Palette) Groups() []string {
	names := make([]string, 0, p.groups.Size())
	for _, g := range p.groups.Keys() {
		names = append(names, g.(string))
	}
	return names
}

// Lookup resolves a cell reference. It returns an error wrapping ErrNoCell if
// the reference does not denote a cell of p.
func (p *Palette) Lookup(ref cell.CellRef) (*Cell, error) {
	var i cell.Index
	var found bool
	switch r := ref.(type) {
	case cell.Index:
		i, found = r, true
	case cell.Name:
		i, found = p.named(string(r))
	case cell.Position:
		i, found = p.positioned(r)
	case cell.Group:
		i, found = p.groupMember(r.Name, r.Index)
	}
	if found {
		if c, ok := p.Cell(i); ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("cell %s: %w", ref, ErrNoCell)
}

func (p *Palette) named(name string) (cell.Index, bool) {
	i, found := p.names.Get(name)
	if !found {
		return 0, false
	}
	return i.(cell.Index), true
}

func (p *Palette) positioned(pos cell.Position) (cell.Index, bool) {
	i, found := p.positions.Get(pos)
	if !found {
		return 0, false
	}
	return i.(cell.Index), true
}

func (p *Palette) group(name string) (*arraylist.List, bool) {
	members, found := p.groups.Get(name)
	if !found {
		return nil, false
	}
	return members.(*arraylist.List), true
}

func (p *Palette) groupMember(name string, n uint32) (cell.Index, bool) {
	members, found := p.group(name)
	if !found {
		return 0, false
	}
	i, found := members.Get(int(n))
	if !found {
		return 0, false
	}
	return i.(cell.Index), true
}

// --- Resolving selections --------------------------------------------------

// Resolve resolves a cell selection to cell indices. Indices are returned in
// the order of the selectors; within a selector, cells are ordered by index,
// position or group order. Every cell is returned once, at its first
// occurrence.
//
// Selectors which reference a single cell (index, name, group member) have to
// resolve, and every group named by a selector (group wildcard, bounds of a
// group range) has to exist. Otherwise an error wrapping ErrNoCell is
// returned. Index and position ranges, position wildcards and the members of
// existing groups select the cells present.
func (p *Palette) Resolve(sel cell.CellSelection) ([]cell.Index, error) {
	result := arraylist.New()
	seen := treeset.NewWith(indexComparator)
	add := func(i cell.Index) {
		if !seen.Contains(i) {
			seen.Add(i)
			result.Add(i)
		}
	}
	for _, s := range sel {
		if err := p.resolveSelector(s, add); err != nil {
			return nil, err
		}
	}
	indices := make([]cell.Index, 0, result.Size())
	it := result.Iterator()
	for it.Next() {
		indices = append(indices, it.Value().(cell.Index))
	}
	tracer().Debugf("selection %s resolves to %d cells", sel, len(indices))
	return indices, nil
}

func (p *Palette) resolveSelector(s cell.CellSelector, add func(cell.Index)) error {
	switch s := s.(type) {
	case cell.All:
		p.eachIndex(func(i cell.Index) bool { return true }, add)
	case cell.Index:
		if _, found := p.Cell(s); !found {
			return fmt.Errorf("cell %s: %w", s, ErrNoCell)
		}
		add(s)
	case cell.IndexRange:
		p.eachIndex(s.Contains, add)
	case cell.PositionSelector:
		p.eachPosition(s.Matches, add)
	case cell.PositionRange:
		p.eachPosition(s.Contains, add)
	case cell.Name:
		i, found := p.named(string(s))
		if !found {
			return fmt.Errorf("cell %s: %w", s, ErrNoCell)
		}
		add(i)
	case cell.GroupAll:
		members, found := p.group(string(s))
		if !found {
			return fmt.Errorf("group %s: %w", string(s), ErrNoCell)
		}
		for _, i := range members.Values() {
			add(i.(cell.Index))
		}
	case cell.Group:
		i, found := p.groupMember(s.Name, s.Index)
		if !found {
			return fmt.Errorf("cell %s: %w", s, ErrNoCell)
		}
		add(i)
	case cell.GroupRange:
		for _, name := range []string{s.Lower.Name, s.Upper.Name} {
			if _, found := p.group(name); !found {
				return fmt.Errorf("group %s: %w", name, ErrNoCell)
			}
		}
		it := p.groups.Iterator()
		for it.Next() {
			name := it.Key().(string)
			if name < s.Lower.Name {
				continue
			}
			if name > s.Upper.Name {
				break
			}
			members := it.Value().(*arraylist.List)
			for n := 0; n < members.Size(); n++ {
				if s.Contains(cell.Group{Name: name, Index: uint32(n)}) {
					i, _ := members.Get(n)
					add(i.(cell.Index))
				}
			}
		}
	default:
		return fmt.Errorf("unknown cell selector %s", s)
	}
	return nil
}

func (p *Palette) eachIndex(pred func(cell.Index) bool, add func(cell.Index)) {
	for _, k := range p.cells.Keys() {
		if i := k.(cell.Index); pred(i) {
			add(i)
		}
	}
}

func (p *Palette) eachPosition(pred func(cell.Position) bool, add func(cell.Index)) {
	it := p.positions.Iterator()
	for it.Next() {
		if pred(it.Key().(cell.Position)) {
			add(it.Value().(cell.Index))
		}
	}
}
