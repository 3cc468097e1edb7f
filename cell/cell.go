/*
Package cell implements references to palette cells and selections of cells.

A cell may be referenced by its index, by its name, by its position on a page
or by its index within a named group. Selectors extend references by ranges
and wildcards, and a selection is an ordered list of selectors.

All types render in the notation of package celllang, i.e. the string form of
a reference, selector or selection parses back to an equal value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cell

import (
	"fmt"
	"strconv"
	"strings"
)

// CellRef references a single cell. Implemented by Index, Name, Position and
// Group.
type CellRef interface {
	fmt.Stringer
	isCellRef()
}

// CellSelector selects a set of cells.
type CellSelector interface {
	fmt.Stringer
	isCellSelector()
}

// --- References ------------------------------------------------------------

// Index references a cell by its index.
type Index uint32

func (i Index) String() string {
	return ":" + strconv.FormatUint(uint64(i), 10)
}

// Name references a cell by its name.
type Name string

func (n Name) String() string {
	return string(n)
}

// Position references a cell by page, line and column.
type Position struct {
	Page, Line, Column uint16
}

// Compare compares positions lexicographically by page, line and column. It
// returns -1, 0 or +1.
func (p Position) Compare(q Position) int {
	for _, d := range [3][2]uint16{{p.Page, q.Page}, {p.Line, q.Line}, {p.Column, q.Column}} {
		if d[0] < d[1] {
			return -1
		}
		if d[0] > d[1] {
			return 1
		}
	}
	return 0
}

// Selector returns the selector matching exactly p.
func (p Position) Selector() PositionSelector {
	page, line, column := p.Page, p.Line, p.Column
	return PositionSelector{Page: &page, Line: &line, Column: &column}
}

func (p Position) String() string {
	return fmt.Sprintf(":%d.%d.%d", p.Page, p.Line, p.Column)
}

// Group references a cell by its index within a named group.
type Group struct {
	Name  string
	Index uint32
}

// Compare compares group references lexicographically by group name and
// index. It returns -1, 0 or +1.
func (g Group) Compare(h Group) int {
	if c := strings.Compare(g.Name, h.Name); c != 0 {
		return c
	}
	switch {
	case g.Index < h.Index:
		return -1
	case g.Index > h.Index:
		return 1
	}
	return 0
}

func (g Group) String() string {
	return g.Name + ":" + strconv.FormatUint(uint64(g.Index), 10)
}

func (Index) isCellRef()    {}
func (Name) isCellRef()     {}
func (Position) isCellRef() {}
func (Group) isCellRef()    {}

// --- Selectors -------------------------------------------------------------

// All selects every cell.
type All struct{}

func (All) String() string {
	return "*"
}

// IndexRange selects cells by an inclusive range of indices.
type IndexRange struct {
	Lower, Upper Index
}

// NewIndexRange creates an index range. It returns a *RangeError if upper is
// less than lower.
func NewIndexRange(lower, upper Index) (IndexRange, error) {
	if upper < lower {
		return IndexRange{}, &RangeError{Lower: lower, Upper: upper, Reason: "upper index is less than lower index"}
	}
	return IndexRange{Lower: lower, Upper: upper}, nil
}

// Contains is true if i is within r.
func (r IndexRange) Contains(i Index) bool {
	return i >= r.Lower && i <= r.Upper
}

func (r IndexRange) String() string {
	return r.Lower.String() + "-" + r.Upper.String()
}

// PositionSelector selects cells by position. A nil field matches any value.
type PositionSelector struct {
	Page, Line, Column *uint16
}

// Matches is true if p is selected by s.
func (s PositionSelector) Matches(p Position) bool {
	return fieldMatches(s.Page, p.Page) && fieldMatches(s.Line, p.Line) &&
		fieldMatches(s.Column, p.Column)
}

// IsWildcard is true if at least one field is a wildcard.
func (s PositionSelector) IsWildcard() bool {
	return s.Page == nil || s.Line == nil || s.Column == nil
}

func fieldMatches(f *uint16, v uint16) bool {
	return f == nil || *f == v
}

func (s PositionSelector) String() string {
	field := func(f *uint16) string {
		if f == nil {
			return "*"
		}
		return strconv.FormatUint(uint64(*f), 10)
	}
	return ":" + field(s.Page) + "." + field(s.Line) + "." + field(s.Column)
}

// PositionRange selects cells by an inclusive range of positions.
type PositionRange struct {
	Lower, Upper Position
}

// NewPositionRange creates a position range. It returns a *RangeError if upper
// is less than lower.
func NewPositionRange(lower, upper Position) (PositionRange, error) {
	if upper.Compare(lower) < 0 {
		return PositionRange{}, &RangeError{Lower: lower, Upper: upper, Reason: "upper position is less than lower position"}
	}
	return PositionRange{Lower: lower, Upper: upper}, nil
}

// Contains is true if p is within r.
func (r PositionRange) Contains(p Position) bool {
	return p.Compare(r.Lower) >= 0 && p.Compare(r.Upper) <= 0
}

func (r PositionRange) String() string {
	return r.Lower.String() + "-" + r.Upper.String()
}

// GroupAll selects all cells of a group.
type GroupAll string

func (g GroupAll) String() string {
	return string(g) + ":*"
}

// GroupRange selects group members by an inclusive range of group references,
// ordered by group name, then by index. A range may span several groups:
// "a:2-b:5" selects members of "a" from index 2 on, all members of groups
// between "a" and "b", and members 0 to 5 of "b".
type GroupRange struct {
	Lower, Upper Group
}

// NewGroupRange creates a group range. It returns a *RangeError if upper is
// less than lower.
func NewGroupRange(lower, upper Group) (GroupRange, error) {
	if upper.Compare(lower) < 0 {
		return GroupRange{}, &RangeError{Lower: lower, Upper: upper, Reason: "upper group reference is less than lower group reference"}
	}
	return GroupRange{Lower: lower, Upper: upper}, nil
}

// Contains is true if g is within r.
func (r GroupRange) Contains(g Group) bool {
	return g.Compare(r.Lower) >= 0 && g.Compare(r.Upper) <= 0
}

func (r GroupRange) String() string {
	return r.Lower.String() + "-" + r.Upper.String()
}

func (All) isCellSelector()              {}
func (Index) isCellSelector()            {}
func (IndexRange) isCellSelector()       {}
func (PositionSelector) isCellSelector() {}
func (PositionRange) isCellSelector()    {}
func (Name) isCellSelector()             {}
func (GroupAll) isCellSelector()         {}
func (Group) isCellSelector()            {}
func (GroupRange) isCellSelector()       {}

// --- Selections ------------------------------------------------------------

// CellSelection is an ordered list of selectors. Order is significant and
// duplicates are kept.
type CellSelection []CellSelector

func (sel CellSelection) String() string {
	parts := make([]string, len(sel))
	for i, s := range sel {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// --- Errors ----------------------------------------------------------------

// RangeError is the error for a range whose bounds are not ordered.
type RangeError struct {
	Lower, Upper fmt.Stringer
	Reason       string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range %s-%s: %s", e.Lower, e.Upper, e.Reason)
}
