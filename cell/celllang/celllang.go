package celllang

import (
	"errors"
	"strings"
	"unicode"

	"github.com/npillmayer/tinct/cell"
	"github.com/npillmayer/tinct/parse"
)

// Reserved tokens of the cell notation.
const (
	AllToken       = '*'
	SelectionToken = ','
	PosSepToken    = '.'
	PrefixToken    = ':'
	RangeToken     = '-'
)

const reserved = "*,.:-"

// --- Selections ------------------------------------------------------------

// CellSelection parses one or more cell selectors, separated by commas. A
// range with bounds out of order fails the selection, wherever it appears in
// the list.
func CellSelection(text string) parse.Result[cell.CellSelection] {
	suc, fail := selectorList(text).Unpack()
	if fail == nil {
		fail = rangeErrorAfter(suc, text)
	}
	var r parse.Result[cell.CellSelection]
	if fail != nil {
		r = parse.Err[cell.CellSelection](fail)
	} else {
		r = parse.Ok(parse.Success[cell.CellSelection]{
			Value: cell.CellSelection(suc.Value),
			Token: suc.Token,
			Rest:  suc.Rest,
		})
	}
	r = r.SourceFor("cell selection")
	if !r.IsOK() {
		tracer().Debugf("cell selection failed at %q", r.Failure().Context)
	}
	return r
}

var (
	selectorSeparator = parse.Circumfix(parse.Char(SelectionToken), parse.Maybe(parse.Whitespace))
	selectorList      = parse.IntersperseCollect(1, parse.Unbounded, CellSelector, selectorSeparator)
)

// rangeErrorAfter checks the text behind a selector list. The list ends at
// the first selector which does not parse; if that selector is an invalid
// range, its failure is returned, joined to the list.
func rangeErrorAfter(list parse.Success[[]cell.CellSelector], text string) *parse.Failure {
	sep, ok := selectorSeparator(list.Rest).Success()
	if !ok {
		return nil
	}
	prefix := parse.Join(list, sep, text)
	fail := CellSelector(prefix.Rest).Failure()
	var rangeErr *cell.RangeError
	if fail == nil || !errors.As(fail, &rangeErr) {
		return nil
	}
	return prefix.JoinFailure(fail, text)
}

var selectorAlternatives = []parse.Parser[cell.CellSelector]{
	all,
	ranged(Position, cell.Position.Selector, cell.NewPositionRange, "position"),
	selector(PositionSelector),
	ranged(Index, self[cell.Index], cell.NewIndexRange, "index"),
	selector(GroupAll),
	ranged(Group, self[cell.Group], cell.NewGroupRange, "group"),
	selector(Name),
}

// CellSelector parses a single cell selector. Alternatives are tried in
// order; a range with bounds out of order ends the search.
func CellSelector(text string) parse.Result[cell.CellSelector] {
	var best *parse.Failure
	for _, alt := range selectorAlternatives {
		suc, fail := alt(text).Unpack()
		if fail == nil {
			return parse.Ok(suc)
		}
		var rangeErr *cell.RangeError
		if errors.As(fail, &rangeErr) {
			return parse.Err[cell.CellSelector](fail)
		}
		if best == nil || len(fail.Context) > len(best.Context) {
			best = fail
		}
	}
	return parse.Err[cell.CellSelector](best).SourceFor("cell selector value")
}

func all(text string) parse.Result[cell.CellSelector] {
	return parse.MapValue(parse.Char(AllToken)(text), func(rune) cell.CellSelector {
		return cell.All{}
	})
}

func selector[S cell.CellSelector](p parse.Parser[S]) parse.Parser[cell.CellSelector] {
	return func(text string) parse.Result[cell.CellSelector] {
		return parse.MapValue(p(text), func(s S) cell.CellSelector { return s })
	}
}

func self[V any](v V) V {
	return v
}

// ranged returns a parser for a bound optionally followed by a range suffix.
// A single bound yields the selector created by single, a range is checked by
// newRange.
func ranged[V any, S, R cell.CellSelector](
	bound parse.Parser[V],
	single func(V) S,
	newRange func(V, V) (R, error),
	kind string,
) parse.Parser[cell.CellSelector] {
	//
	return func(text string) parse.Result[cell.CellSelector] {
		lower, fail := bound(text).Unpack()
		if fail != nil {
			return parse.Err[cell.CellSelector](fail)
		}
		upper, ok := RangeSuffix(bound)(lower.Rest).Success()
		if !ok {
			return parse.Ok(parse.Success[cell.CellSelector]{
				Value: single(lower.Value),
				Token: lower.Token,
				Rest:  lower.Rest,
			})
		}
		rng, err := newRange(lower.Value, upper.Value)
		if err != nil {
			return parse.Err[cell.CellSelector](&parse.Failure{
				Context:  parse.Join(lower, upper, text).Token,
				Expected: "valid " + kind + " range",
				Source:   err,
				Rest:     text,
			})
		}
		return parse.Ok(parse.JoinWith(lower, upper, text, func(V, V) cell.CellSelector {
			return rng
		}))
	}
}

// RangeSuffix returns a parser for the upper bound of a range, i.e. a range
// separator followed by p.
func RangeSuffix[V any](p parse.Parser[V]) parse.Parser[V] {
	return parse.Prefix(p, parse.Circumfix(parse.Char(RangeToken), parse.Maybe(parse.Whitespace)))
}

// --- References ------------------------------------------------------------

// CellRef parses a reference to a single cell.
func CellRef(text string) parse.Result[cell.CellRef] {
	if r := parse.MapValue(Position(text), asRef[cell.Position]); r.IsOK() {
		return r
	}
	if r := parse.MapValue(Index(text), asRef[cell.Index]); r.IsOK() {
		return r
	}
	if r := parse.MapValue(Group(text), asRef[cell.Group]); r.IsOK() {
		return r
	}
	return parse.MapValue(Name(text), asRef[cell.Name]).SourceFor("cell ref value")
}

func asRef[R cell.CellRef](r R) cell.CellRef {
	return r
}

// Position parses a position ":page.line.column".
func Position(text string) parse.Result[cell.Position] {
	r := positionFields(text).SourceFor("cell ref position")
	return parse.MapValue(r, func(f []uint16) cell.Position {
		return cell.Position{Page: f[0], Line: f[1], Column: f[2]}
	})
}

// PositionSelector parses a position with optional wildcards, e.g. ":3.*.*".
func PositionSelector(text string) parse.Result[cell.PositionSelector] {
	r := positionSelectorFields(text).SourceFor("cell ref position selector")
	return parse.MapValue(r, func(f []*uint16) cell.PositionSelector {
		return cell.PositionSelector{Page: f[0], Line: f[1], Column: f[2]}
	})
}

var (
	positionFields         = threeFields(parse.Uint[uint16]("u16"))
	positionSelectorFields = threeFields(U16OrAll)
)

func threeFields[F any](field parse.Parser[F]) parse.Parser[[]F] {
	return parse.Prefix(
		parse.IntersperseCollect(3, 3, field, parse.Char(PosSepToken)),
		parse.Char(PrefixToken))
}

// U16OrAll parses a u16 value or a wildcard. A wildcard yields nil.
func U16OrAll(text string) parse.Result[*uint16] {
	if suc, ok := parse.Char(AllToken)(text).Success(); ok {
		return parse.Ok(parse.Success[*uint16]{Token: suc.Token, Rest: suc.Rest})
	}
	return parse.MapValue(parse.Uint[uint16]("u16")(text), func(v uint16) *uint16 { return &v })
}

// Index parses an index ":n".
func Index(text string) parse.Result[cell.Index] {
	r := parse.Prefix(parse.Uint[uint32]("u32"), parse.Char(PrefixToken))(text).
		SourceFor("cell ref index")
	return parse.MapValue(r, func(i uint32) cell.Index { return cell.Index(i) })
}

// Name parses a cell name. The value is trimmed of surrounding whitespace.
func Name(text string) parse.Result[cell.Name] {
	r := nameText(text).SourceFor("cell ref name").TokenizeValue()
	return parse.MapValue(r, func(token string) cell.Name {
		return cell.Name(strings.TrimSpace(token))
	})
}

var nameText = parse.Prefix(
	parse.Intersperse(1, parse.Unbounded,
		parse.Repeat(1, parse.Unbounded, parse.CharMatching(isNameChar)),
		parse.Whitespace),
	parse.Maybe(parse.Whitespace))

func isNameChar(r rune) bool {
	return !strings.ContainsRune(reserved, r) && !unicode.IsSpace(r)
}

// Group parses a group reference "name:n".
func Group(text string) parse.Result[cell.Group] {
	name, fail := Name(text).SourceFor("cell ref group name").Unpack()
	if fail != nil {
		return parse.Err[cell.Group](fail)
	}
	index, fail := Index(name.Rest).
		SourceFor("cell ref group index").
		WithJoinContext(name.Token, text).
		Unpack()
	if fail != nil {
		return parse.Err[cell.Group](fail)
	}
	return parse.Ok(parse.JoinWith(name, index, text, func(n cell.Name, i cell.Index) cell.Group {
		return cell.Group{Name: string(n), Index: uint32(i)}
	}))
}

// GroupAll parses a selector "name:*" for all cells of a group.
func GroupAll(text string) parse.Result[cell.GroupAll] {
	r := parse.Postfix(Name, parse.Postfix(parse.Char(PrefixToken), parse.Char(AllToken)))(text).
		SourceFor("cell ref group all")
	return parse.MapValue(r, func(n cell.Name) cell.GroupAll { return cell.GroupAll(n) })
}
