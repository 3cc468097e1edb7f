package parse

import (
	"strings"
)

// --- Optional parses -------------------------------------------------------

// Tokenize returns a parser which replaces the value of p by the consumed text.
func Tokenize[V any](p Parser[V]) Parser[string] {
	return func(text string) Result[string] {
		return p(text).TokenizeValue()
	}
}

// Maybe returns a parser which never fails. If p succeeds, its value is
// returned as a pointer, otherwise the value is nil and no input is consumed.
func Maybe[V any](p Parser[V]) Parser[*V] {
	return func(text string) Result[*V] {
		if suc, ok := p(text).Success(); ok {
			return Ok(someOf(suc))
		}
		return Ok(Success[*V]{Rest: text})
	}
}

// Atomic is like Maybe, but propagates failures of p which had matched some
// text before failing. Only a failure with empty context yields nil.
func Atomic[V any](p Parser[V]) Parser[*V] {
	return func(text string) Result[*V] {
		suc, fail := p(text).Unpack()
		if fail == nil {
			return Ok(someOf(suc))
		}
		if fail.Context == "" {
			return Ok(Success[*V]{Rest: text})
		}
		return Err[*V](fail)
	}
}

// AtomicIgnoreWhitespace is like Atomic, but also tolerates failures whose
// context consists of whitespace only. The whitespace is consumed.
func AtomicIgnoreWhitespace[V any](p Parser[V]) Parser[*V] {
	return func(text string) Result[*V] {
		suc, fail := p(text).Unpack()
		if fail == nil {
			return Ok(someOf(suc))
		}
		if strings.TrimSpace(fail.Context) == "" {
			return Ok(Success[*V]{
				Token: fail.Context,
				Rest:  fail.RestContinuing(),
			})
		}
		return Err[*V](fail)
	}
}

// RequireIf returns a parser which requires p to succeed if pred reports true.
// A failure is then reported as expecting `expected`. Otherwise p is optional,
// as with Maybe.
func RequireIf[V any](expected string, pred func() bool, p Parser[V]) Parser[*V] {
	return func(text string) Result[*V] {
		if pred() {
			return MapValue(p(text).SourceFor(expected), func(v V) *V { return &v })
		}
		return Maybe(p)(text)
	}
}

func someOf[V any](suc Success[V]) Success[*V] {
	v := suc.Value
	return Success[*V]{Value: &v, Token: suc.Token, Rest: suc.Rest}
}

// --- Rules -----------------------------------------------------------------

// Rule labels the failures of p as expecting `expected`, keeping the original
// failure as its source.
func Rule[V any](expected string, p Parser[V]) Parser[V] {
	return func(text string) Result[V] {
		r := p(text).SourceFor(expected)
		if !r.IsOK() {
			tracer().Debugf("rule %q failed at %q", expected, r.Failure().Context)
		}
		return r
	}
}

// Complete returns a parser which requires p to consume all of its input.
func Complete[V any](p Parser[V]) Parser[V] {
	return func(text string) Result[V] {
		return p(text).ExpectEndOfText(text)
	}
}

// Not returns a parser which succeeds without consuming input if p fails, and
// fails if p succeeds.
func Not[V any](p Parser[V]) Parser[string] {
	return func(text string) Result[string] {
		return p(text).ExpectFailure(text)
	}
}

// --- Sequences -------------------------------------------------------------

// Tuple holds the values of two sequential parses.
type Tuple[V, U any] struct {
	First  V
	Second U
}

// Pair returns a parser for p followed by q, keeping both values.
func Pair[V, U any](p Parser[V], q Parser[U]) Parser[Tuple[V, U]] {
	return func(text string) Result[Tuple[V, U]] {
		first, fail := p(text).Unpack()
		if fail != nil {
			return Err[Tuple[V, U]](fail)
		}
		second, fail := q(first.Rest).WithJoinContext(first.Token, text).Unpack()
		if fail != nil {
			return Err[Tuple[V, U]](fail)
		}
		return Ok(JoinWith(first, second, text, func(v V, u U) Tuple[V, U] {
			return Tuple[V, U]{First: v, Second: u}
		}))
	}
}

// Prefix returns a parser for pre followed by p, keeping the value of p.
func Prefix[V, U any](p Parser[V], pre Parser[U]) Parser[V] {
	return func(text string) Result[V] {
		first, fail := pre(text).Unpack()
		if fail != nil {
			return Err[V](fail)
		}
		second, fail := p(first.Rest).WithJoinContext(first.Token, text).Unpack()
		if fail != nil {
			return Err[V](fail)
		}
		return Ok(JoinWith(first, second, text, keepSecond[U, V]))
	}
}

// Postfix returns a parser for p followed by post, keeping the value of p.
func Postfix[V, U any](p Parser[V], post Parser[U]) Parser[V] {
	return func(text string) Result[V] {
		first, fail := p(text).Unpack()
		if fail != nil {
			return Err[V](fail)
		}
		second, fail := post(first.Rest).WithJoinContext(first.Token, text).Unpack()
		if fail != nil {
			return Err[V](fail)
		}
		return Ok(JoinWith(first, second, text, keepFirst[V, U]))
	}
}

// Circumfix returns a parser for p enclosed by wrap on both sides, keeping the
// value of p.
func Circumfix[V, U any](p Parser[V], wrap Parser[U]) Parser[V] {
	return Bracket(p, wrap, wrap)
}

// Bracket returns a parser for p enclosed by open and close, keeping the value
// of p.
func Bracket[V, U, T any](p Parser[V], open Parser[U], close Parser[T]) Parser[V] {
	return DynamicBracket(p, open, func(U) Parser[T] { return close })
}

// DynamicBracket is like Bracket, but the closing parser is created from the
// value of the opening parse. This allows for matching pairs of delimiters.
func DynamicBracket[V, U, T any](p Parser[V], open Parser[U], close func(U) Parser[T]) Parser[V] {
	return func(text string) Result[V] {
		pre, fail := open(text).Unpack()
		if fail != nil {
			return Err[V](fail)
		}
		mid, fail := p(pre.Rest).WithJoinContext(pre.Token, text).Unpack()
		if fail != nil {
			return Err[V](fail)
		}
		suc := JoinWith(pre, mid, text, keepSecond[U, V])
		post, fail := close(pre.Value)(suc.Rest).WithJoinContext(suc.Token, text).Unpack()
		if fail != nil {
			return Err[V](fail)
		}
		return Ok(JoinWith(suc, post, text, keepFirst[V, T]))
	}
}

// --- Alternatives ----------------------------------------------------------

// Mapping associates a literal pattern with a value.
type Mapping[V any] struct {
	Pattern string
	Value   V
}

// AnyLiteralMap returns a parser which tries each mapping in order, using the
// parser created by factory for its pattern. The value of the first matching
// mapping is returned. If no pattern matches, the parser fails expecting
// `expected`.
func AnyLiteralMap[V, G any](factory func(string) Parser[G], expected string, mappings []Mapping[V]) Parser[V] {
	parsers := make([]Parser[G], len(mappings))
	for i, m := range mappings {
		parsers[i] = factory(m.Pattern)
	}
	return func(text string) Result[V] {
		for i, p := range parsers {
			if suc, ok := p(text).Success(); ok {
				return Ok(Success[V]{Value: mappings[i].Value, Token: suc.Token, Rest: suc.Rest})
			}
		}
		return Err[V](&Failure{Expected: expected, Rest: text})
	}
}

// Longest returns a parser which tries the alternatives in order and returns
// the first success. If all alternatives fail, the failure which had matched
// the longest context is taken as the source of a failure expecting
// `expected`. Of failures with equal context length, the first one wins.
func Longest[V any](expected string, alternatives ...Parser[V]) Parser[V] {
	return func(text string) Result[V] {
		var best *Failure
		for _, p := range alternatives {
			suc, fail := p(text).Unpack()
			if fail == nil {
				return Ok(suc)
			}
			if best == nil || len(fail.Context) > len(best.Context) {
				best = fail
			}
		}
		if best == nil {
			return Err[V](&Failure{Expected: expected, Rest: text})
		}
		return Err[V](best).SourceFor(expected)
	}
}
