/*
Package colorlang parses colors written in hex or functional notation.

    Color      ::= RgbHex | Functional
    RgbHex     ::= '#' HexDigit{6} | '#' HexDigit{3}
    Functional ::= Name '(' Float ( ',' Float )* ')'
    Name       ::= 'rgb' | 'cmyk' | 'hsv' | 'hsl' | 'xyz'

Names are case-insensitive, and whitespace may surround the separators and
brackets. cmyk takes 4 values, all other models take 3.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package colorlang

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinct/color"
	"github.com/npillmayer/tinct/parse"
)

// tracer traces with key 'tinct.color'.
func tracer() tracing.Trace {
	return tracing.Select("tinct.color")
}

// Tokens of the color notation.
const (
	RgbHexPrefix         = '#'
	FunctionalSeparator  = ','
	FunctionalOpenBrace  = '('
	FunctionalCloseBrace = ')'
)

// Color parses a color in any notation. Notations are tried in order: 6 digit
// hex, 3 digit hex, then the functional notations rgb, cmyk, hsv, hsl and xyz.
// If no notation matches, the failure of the notation which matched the
// longest text is reported as the source of a failure expecting a color value.
func Color(text string) parse.Result[color.Color] {
	r := colorValue(text)
	if !r.IsOK() {
		tracer().Debugf("no color notation matches %q", text)
	}
	return r
}

var colorValue = parse.Longest("color value",
	asColor(RgbHex),
	asColor(RgbFunctional),
	asColor(CmykFunctional),
	asColor(HsvFunctional),
	asColor(HslFunctional),
	asColor(XyzFunctional),
)

func asColor[M color.Model](p parse.Parser[M]) parse.Parser[color.Color] {
	return func(text string) parse.Result[color.Color] {
		return parse.MapValue(p(text), func(m M) color.Color {
			return color.From(m)
		})
	}
}

// --- Hex notation ----------------------------------------------------------

// RgbHex parses an RGB hex code with 6 or 3 digits.
func RgbHex(text string) parse.Result[color.Rgb] {
	if r := RgbHex6(text); r.IsOK() {
		return r
	}
	return RgbHex3(text)
}

// RgbHex6 parses an RGB hex code "#RRGGBB".
func RgbHex6(text string) parse.Result[color.Rgb] {
	r := parse.Prefix(
		parse.UintDigitsValue[uint32]("u32", 6, 6, 16),
		parse.Char(RgbHexPrefix))(text)
	return parse.MapValue(r, color.RgbFromHex)
}

// RgbHex3 parses an RGB hex code "#RGB", where each digit is doubled.
func RgbHex3(text string) parse.Result[color.Rgb] {
	r := parse.Prefix(
		parse.UintDigitsValue[uint32]("u32", 3, 3, 16),
		parse.Char(RgbHexPrefix))(text)
	return parse.MapValue(r, func(v uint32) color.Rgb {
		return color.RgbFromHex(expandNibbles(v))
	})
}

// expandNibbles converts 0xRGB to 0xRRGGBB.
func expandNibbles(v uint32) uint32 {
	var x uint32
	for shift := 8; shift >= 0; shift -= 4 {
		n := (v >> shift) & 0xf
		x = x<<8 | n<<4 | n
	}
	return x
}

// --- Functional notation ---------------------------------------------------

// RgbFunctional parses "rgb(r, g, b)".
func RgbFunctional(text string) parse.Result[color.Rgb] {
	return parse.MapValue(rgbFunctional(text), func(v []float32) color.Rgb {
		return color.Rgb{R: v[0], G: v[1], B: v[2]}
	})
}

// CmykFunctional parses "cmyk(c, m, y, k)".
func CmykFunctional(text string) parse.Result[color.Cmyk] {
	return parse.MapValue(cmykFunctional(text), func(v []float32) color.Cmyk {
		return color.Cmyk{C: v[0], M: v[1], Y: v[2], K: v[3]}
	})
}

// HsvFunctional parses "hsv(h, s, v)".
func HsvFunctional(text string) parse.Result[color.Hsv] {
	return parse.MapValue(hsvFunctional(text), func(v []float32) color.Hsv {
		return color.Hsv{H: v[0], S: v[1], V: v[2]}
	})
}

// HslFunctional parses "hsl(h, s, l)".
func HslFunctional(text string) parse.Result[color.Hsl] {
	return parse.MapValue(hslFunctional(text), func(v []float32) color.Hsl {
		return color.Hsl{H: v[0], S: v[1], L: v[2]}
	})
}

// XyzFunctional parses "xyz(x, y, z)".
func XyzFunctional(text string) parse.Result[color.Xyz] {
	return parse.MapValue(xyzFunctional(text), func(v []float32) color.Xyz {
		return color.Xyz{X: v[0], Y: v[1], Z: v[2]}
	})
}

var (
	rgbFunctional  = parse.Prefix(functional(3), parse.LiteralIgnoreASCIICase("rgb"))
	cmykFunctional = parse.Prefix(functional(4), parse.LiteralIgnoreASCIICase("cmyk"))
	hsvFunctional  = parse.Prefix(functional(3), parse.LiteralIgnoreASCIICase("hsv"))
	hslFunctional  = parse.Prefix(functional(3), parse.LiteralIgnoreASCIICase("hsl"))
	xyzFunctional  = parse.Prefix(functional(3), parse.LiteralIgnoreASCIICase("xyz"))
)

// functional returns a parser for a bracketed list of exactly n floats.
func functional(n int) parse.Parser[[]float32] {
	ws := parse.Maybe(parse.Whitespace)
	return parse.Bracket(
		parse.IntersperseCollect(n, n,
			parse.Float[float32]("f32"),
			parse.Circumfix(parse.Char(FunctionalSeparator), ws)),
		parse.Postfix(parse.Char(FunctionalOpenBrace), ws),
		parse.Prefix(parse.Char(FunctionalCloseBrace), ws))
}
