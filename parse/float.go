package parse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float returns a parser for a floating point number. floatType names the
// float type in diagnostics, e.g. "f32".
//
//    Float    ::= Sign? ( 'inf' | 'nan' | Mantissa Exponent? )
//    Mantissa ::= Digit+ | Digit+ '.' Digit* | '.' Digit+
//    Exponent ::= [eE] Sign? Digit+
//    Sign     ::= [+-]
//
// The parser checks the lexical form only; conversion of the matched text is
// left to strconv. Values too large for T yield ±Inf, values too small yield
// zero.
func Float[T constraints.Float](floatType string) Parser[T] {
	var zero T
	bitSize := 64
	if unsafe.Sizeof(zero) == 4 {
		bitSize = 32
	}
	expected := fmt.Sprintf("parse %s value", floatType)
	convert := func(token string, text string) Result[T] {
		f, err := strconv.ParseFloat(token, bitSize)
		if errors.Is(err, strconv.ErrRange) {
			tracer().Debugf("float %q out of range for %s, is %g", token, floatType, f)
		} else if err != nil {
			return Err[T](&Failure{
				Context:  token,
				Expected: expected,
				Source:   err,
				Rest:     text,
			})
		}
		return Ok(Success[T]{Value: T(f), Token: token, Rest: text[len(token):]})
	}
	return func(text string) Result[T] {
		sign, _ := Maybe(CharIn("+-"))(text).Success()
		if inf, ok := Literal("inf")(sign.Rest).Success(); ok {
			return convert(Join(sign, inf, text).Token, text)
		}
		if nan, ok := Literal("nan")(sign.Rest).Success(); ok {
			return Ok(JoinWith(sign, nan, text, func(*rune, string) T {
				return T(math.NaN())
			}))
		}
		integral, _ := Repeat(0, Unbounded, decimalDigit)(sign.Rest).Success()
		suc := Join(sign, integral, text)
		point, _ := Maybe(Char('.'))(suc.Rest).Success()
		suc = Join(suc, point, text)
		fraction, _ := Repeat(0, Unbounded, decimalDigit)(suc.Rest).Success()
		if integral.Value+fraction.Value == 0 {
			return Err[T](&Failure{
				Context:  suc.Token,
				Expected: fmt.Sprintf("%s digits", floatType),
				Rest:     text,
			})
		}
		suc = Join(suc, fraction, text)
		exp, fail := Atomic(floatExponent)(suc.Rest).
			WithJoinContext(suc.Token, text).
			Unpack()
		if fail != nil {
			return Err[T](fail)
		}
		return convert(Join(suc, exp, text).Token, text)
	}
}

func decimalDigit(text string) Result[rune] {
	return CharMatching(isDecimalDigit)(text).SourceFor("decimal digit")
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// floatExponent parses the exponent of a float.
func floatExponent(text string) Result[string] {
	e, fail := CharIn("eE")(text).SourceFor("float exponent").Unpack()
	if fail != nil {
		return Err[string](fail)
	}
	sign, _ := Maybe(CharIn("+-"))(e.Rest).Success()
	suc := Join(e, sign, text)
	digits, fail := Repeat(1, Unbounded, decimalDigit)(suc.Rest).
		SourceFor("float exponent digits").
		WithJoinContext(suc.Token, text).
		Unpack()
	if fail != nil {
		return Err[string](fail)
	}
	return Ok(Join(suc, digits, text).Tokenize())
}
