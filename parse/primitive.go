package parse

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// --- Characters ------------------------------------------------------------

// Char returns a parser which parses the rune c.
func Char(c rune) Parser[rune] {
	expected := string(c)
	return func(text string) Result[rune] {
		if r, size := utf8.DecodeRuneInString(text); size > 0 && r == c {
			return Ok(Success[rune]{Value: r, Token: text[:size], Rest: text[size:]})
		}
		return Err[rune](&Failure{Expected: expected, Rest: text})
	}
}

// CharIn returns a parser which parses any single rune of opts. Runes are
// tried in order.
func CharIn(opts string) Parser[rune] {
	expected := "one of " + opts
	return func(text string) Result[rune] {
		for _, c := range opts {
			if r := Char(c)(text); r.IsOK() {
				return r
			}
		}
		return Err[rune](&Failure{Expected: expected, Rest: text})
	}
}

// CharMatching returns a parser which parses a rune satisfying pred.
func CharMatching(pred func(rune) bool) Parser[rune] {
	return func(text string) Result[rune] {
		if r, size := utf8.DecodeRuneInString(text); size > 0 && pred(r) {
			return Ok(Success[rune]{Value: r, Token: text[:size], Rest: text[size:]})
		}
		return Err[rune](&Failure{Expected: "char satisfying predicate", Rest: text})
	}
}

// CharWhitespace parses a single whitespace rune.
func CharWhitespace(text string) Result[rune] {
	return CharMatching(unicode.IsSpace)(text).SourceFor("whitespace char")
}

// Whitespace parses one or more whitespace runes. Use Maybe(Whitespace) for
// optional whitespace.
func Whitespace(text string) Result[string] {
	return Repeat(1, Unbounded, CharWhitespace)(text).
		TokenizeValue().
		SourceFor("whitespace")
}

// --- Literals --------------------------------------------------------------

// Literal returns a parser which parses the text expect. If only a part of
// expect matches, the failure context holds the matching part.
func Literal(expect string) Parser[string] {
	return literal(expect, expect, func(a, b rune) bool { return a == b })
}

// LiteralIgnoreASCIICase returns a parser which parses the text expect,
// ignoring ASCII case. The value is the text as found in the input.
func LiteralIgnoreASCIICase(expect string) Parser[string] {
	return literal(expect, "ignore case literal "+expect, equalFoldASCII)
}

func literal(expect string, expected string, eq func(rune, rune) bool) Parser[string] {
	return func(text string) Result[string] {
		idx := 0
		for _, e := range expect {
			t, size := utf8.DecodeRuneInString(text[idx:])
			if size == 0 || !eq(e, t) {
				return Err[string](&Failure{
					Context:  text[:idx],
					Expected: expected,
					Rest:     text,
				})
			}
			idx += size
		}
		return Ok(Success[string]{Value: text[:idx], Token: text[:idx], Rest: text[idx:]})
	}
}

func equalFoldASCII(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		return unicode.ToLower(a) == unicode.ToLower(b)
	}
	return false
}

// --- Delimited strings -----------------------------------------------------

// Delimiter is a pair of opening and closing text.
type Delimiter struct {
	Open, Close string
}

// Escape maps an escape sequence to its replacement.
type Escape struct {
	Sequence, Replacement string
}

// EscapedString returns a parser for a delimited string with escape sequences.
// The first delimiter whose opening text matches determines the closing text.
// The value is the string content with all escapes replaced. Escapes with an
// empty sequence are ignored.
func EscapedString(delimiters []Delimiter, escapes []Escape) Parser[string] {
	return func(text string) Result[string] {
		var closing string
		var suc Success[string]
		opened := false
		for _, d := range delimiters {
			if s, ok := Literal(d.Open)(text).Success(); ok {
				suc, closing, opened = s, d.Close, true
				break
			}
		}
		if !opened {
			return Err[string](&Failure{Expected: "escaped string opening", Rest: text})
		}
		var content []byte
	scanning:
		for {
			if c, ok := Literal(closing)(suc.Rest).Success(); ok {
				joined := JoinWith(suc, c, text, func(string, string) string {
					return string(content)
				})
				return Ok(joined)
			}
			for _, esc := range escapes {
				if esc.Sequence == "" {
					continue
				}
				if e, ok := Literal(esc.Sequence)(suc.Rest).Success(); ok {
					content = append(content, esc.Replacement...)
					suc = JoinWith(suc, e, text, keepFirst[string, string])
					continue scanning
				}
			}
			anyChar, fail := CharMatching(func(rune) bool { return true })(suc.Rest).Unpack()
			if fail != nil {
				return Err[string](&Failure{
					Context:  suc.Token,
					Expected: fmt.Sprintf("escaped string closing %s", closing),
					Rest:     text,
				})
			}
			content = append(content, anyChar.Token...)
			suc = JoinWith(suc, anyChar, text, keepFirst[string, rune])
		}
	}
}

func keepFirst[V, U any](v V, _ U) V {
	return v
}

func keepSecond[V, U any](_ V, u U) U {
	return u
}
