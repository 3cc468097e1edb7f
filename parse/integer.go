package parse

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// Integer radix prefixes.
const (
	IntRadixPrefixBin = "0b" // binary numbers
	IntRadixPrefixOct = "0o" // octal numbers
	IntRadixPrefixHex = "0x" // hexadecimal numbers
)

// PrefixRadixToken parses an integer radix prefix.
func PrefixRadixToken(text string) Result[string] {
	for _, prefix := range []string{IntRadixPrefixBin, IntRadixPrefixOct, IntRadixPrefixHex} {
		if strings.HasPrefix(text, prefix) {
			return Ok(Success[string]{Value: text[:2], Token: text[:2], Rest: text[2:]})
		}
	}
	return Err[string](&Failure{Expected: "0[box]", Rest: text})
}

func radixOf(prefix *string) int {
	if prefix == nil {
		return 10
	}
	switch *prefix {
	case IntRadixPrefixBin:
		return 2
	case IntRadixPrefixOct:
		return 8
	case IntRadixPrefixHex:
		return 16
	}
	return 10
}

// Uint returns a parser for an unsigned integer with optional radix prefix.
// intType names the integer type in diagnostics, e.g. "u16".
//
// Digits may be separated by underscores. A value which does not fit into T
// is reported as a failure with a ParseIntegerOverflow source.
func Uint[T constraints.Unsigned](intType string) Parser[T] {
	expected := fmt.Sprintf("parse %s value", intType)
	return func(text string) Result[T] {
		radixSuc, _ := Maybe(PrefixRadixToken)(text).Success()
		radix := radixOf(radixSuc.Value)
		digits, fail := UintValue[T](intType, radix)(radixSuc.Rest).
			SourceFor(expected).
			WithJoinContext(radixSuc.Token, text).
			Unpack()
		if fail != nil {
			return Err[T](fail)
		}
		return Ok(JoinWith(radixSuc, digits, text, keepSecond[*string, T]))
	}
}

// UintValue returns a parser for an unsigned integer with the given radix and
// no prefix.
func UintValue[T constraints.Unsigned](intType string, radix int) Parser[T] {
	return UintDigitsValue[T](intType, 1, Unbounded, radix)
}

// UintDigitsValue returns a parser for an unsigned integer with the given radix
// and between low and high digits. A negative high leaves the number of digits
// unbounded.
//
// Underscores are skipped and do not count as digits.
func UintDigitsValue[T constraints.Unsigned](intType string, low, high int, radix int) Parser[T] {
	return func(text string) Result[T] {
		var acc uint64
		var wide *big.Int // set as soon as acc overflows
		count, end := 0, 0
		for end < len(text) && (high < 0 || count < high) {
			r, size := utf8.DecodeRuneInString(text[end:])
			if r == '_' {
				end += size
				continue
			}
			d, ok := digitValue(r, radix)
			if !ok {
				break
			}
			if wide != nil {
				wide.Mul(wide, big.NewInt(int64(radix)))
				wide.Add(wide, big.NewInt(int64(d)))
			} else if v, ok := mulAdd(acc, uint64(radix), d); ok {
				acc = v
			} else {
				wide = new(big.Int).SetUint64(acc)
				wide.Mul(wide, big.NewInt(int64(radix)))
				wide.Add(wide, big.NewInt(int64(d)))
			}
			count++
			end += size
		}
		token := text[:end]
		if count < low {
			return Err[T](&Failure{
				Context:  token,
				Expected: fmt.Sprintf("%s integer digits with radix %d", intType, radix),
				Rest:     text,
			})
		}
		if wide == nil && acc <= uint64(^T(0)) {
			return Ok(Success[T]{Value: T(acc), Token: token, Rest: text[end:]})
		}
		if wide == nil {
			wide = new(big.Int).SetUint64(acc)
		}
		return Err[T](&Failure{
			Context:  token,
			Expected: fmt.Sprintf("overflow of %s value", intType),
			Source: &ParseIntegerOverflow{
				IntType: intType,
				IntText: token,
				Value:   wide,
			},
			Rest: text,
		})
	}
}

// mulAdd computes a*b+c, reporting false on overflow.
func mulAdd(a, b, c uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, false
	}
	sum, carry := bits.Add64(lo, c, 0)
	return sum, carry == 0
}

func digitValue(r rune, radix int) (uint64, bool) {
	var d int
	switch {
	case r >= '0' && r <= '9':
		d = int(r - '0')
	case r >= 'a' && r <= 'z':
		d = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		d = int(r-'A') + 10
	default:
		return 0, false
	}
	if d >= radix {
		return 0, false
	}
	return uint64(d), true
}

// --- ParseIntegerOverflow --------------------------------------------------

// ParseIntegerOverflow is the error for integer text whose value does not fit
// into the destination type.
type ParseIntegerOverflow struct {
	IntType string   // name of the destination type
	IntText string   // the integer text as found in the input
	Value   *big.Int // the complete value of the digits
}

func (e *ParseIntegerOverflow) Error() string {
	return fmt.Sprintf("integer value '%s' (%s) does not fit in type %s",
		e.IntText, e.Value.String(), e.IntType)
}
