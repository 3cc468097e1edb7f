/*
Package color implements the color models which may be written in palette
expressions.

Every model converts to a Color, which keeps the model value as written and
its sRGB equivalent. Conversions between models are done with
github.com/lucasb-eyer/go-colorful.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Model is implemented by all color models.
type Model interface {
	fmt.Stringer
	toSRGB() colorful.Color
}

// Rgb is a color in sRGB space, with channels in [0…1].
type Rgb struct {
	R, G, B float32
}

// RgbFromHex creates an Rgb color from a 24 bit hex value 0xRRGGBB.
func RgbFromHex(hex uint32) Rgb {
	return Rgb{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
	}
}

func (c Rgb) toSRGB() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func (c Rgb) String() string {
	return functional("rgb", c.R, c.G, c.B)
}

// Cmyk is a color given by cyan, magenta, yellow and key components in [0…1].
type Cmyk struct {
	C, M, Y, K float32
}

// CMYK has no colorimetric definition; this is the naive device conversion.
func (c Cmyk) toSRGB() colorful.Color {
	k := 1 - float64(c.K)
	return colorful.Color{
		R: (1 - float64(c.C)) * k,
		G: (1 - float64(c.M)) * k,
		B: (1 - float64(c.Y)) * k,
	}
}

func (c Cmyk) String() string {
	return functional("cmyk", c.C, c.M, c.Y, c.K)
}

// Hsv is a color given by hue (in degrees), saturation and value.
type Hsv struct {
	H, S, V float32
}

func (c Hsv) toSRGB() colorful.Color {
	return colorful.Hsv(float64(c.H), float64(c.S), float64(c.V))
}

func (c Hsv) String() string {
	return functional("hsv", c.H, c.S, c.V)
}

// Hsl is a color given by hue (in degrees), saturation and lightness.
type Hsl struct {
	H, S, L float32
}

func (c Hsl) toSRGB() colorful.Color {
	return colorful.Hsl(float64(c.H), float64(c.S), float64(c.L))
}

func (c Hsl) String() string {
	return functional("hsl", c.H, c.S, c.L)
}

// Xyz is a color in CIE XYZ space (D65 white reference).
type Xyz struct {
	X, Y, Z float32
}

func (c Xyz) toSRGB() colorful.Color {
	return colorful.Xyz(float64(c.X), float64(c.Y), float64(c.Z))
}

func (c Xyz) String() string {
	return functional("xyz", c.X, c.Y, c.Z)
}

func functional(name string, values ...float32) string {
	args := make([]string, len(values))
	for i, v := range values {
		args[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

// --- Color -----------------------------------------------------------------

// Color is a color value of any model.
type Color struct {
	Model Model // the color as written
	srgb  colorful.Color
}

// From creates a color from a model value.
func From(m Model) Color {
	return Color{Model: m, srgb: m.toSRGB()}
}

// Rgb returns the color in sRGB space. Channels may be out of range for
// colors outside the sRGB gamut.
func (c Color) Rgb() Rgb {
	return Rgb{R: float32(c.srgb.R), G: float32(c.srgb.G), B: float32(c.srgb.B)}
}

// Hsv returns the color in HSV space.
func (c Color) Hsv() Hsv {
	h, s, v := c.srgb.Hsv()
	return Hsv{H: float32(h), S: float32(s), V: float32(v)}
}

// Hsl returns the color in HSL space.
func (c Color) Hsl() Hsl {
	h, s, l := c.srgb.Hsl()
	return Hsl{H: float32(h), S: float32(s), L: float32(l)}
}

// Xyz returns the color in CIE XYZ space.
func (c Color) Xyz() Xyz {
	x, y, z := c.srgb.Xyz()
	return Xyz{X: float32(x), Y: float32(y), Z: float32(z)}
}

// InGamut is true if the color may be displayed in sRGB without clamping.
func (c Color) InGamut() bool {
	return c.srgb.IsValid()
}

// RGB255 returns the 8 bit channel values, clamped to the sRGB gamut.
func (c Color) RGB255() (r, g, b uint8) {
	return c.srgb.Clamped().RGB255()
}

// Hex returns the color as hex code "#rrggbb", clamped to the sRGB gamut.
func (c Color) Hex() string {
	return c.srgb.Clamped().Hex()
}

func (c Color) String() string {
	if c.Model == nil {
		return c.Hex()
	}
	return c.Model.String()
}
