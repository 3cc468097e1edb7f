package color

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestHex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.color")
	defer teardown()
	//
	for _, c := range []struct {
		model Model
		hex   string
	}{
		{Rgb{1, 0.5, 0}, "#ff8000"},
		{RgbFromHex(0x12ab34), "#12ab34"},
		{Hsv{0, 1, 1}, "#ff0000"},
		{Hsl{120, 1, 0.5}, "#00ff00"},
		{Cmyk{0, 0, 0, 1}, "#000000"},
		{Cmyk{1, 0, 1, 0}, "#00ff00"},
		{Rgb{1.5, 0, 0}, "#ff0000"},
	} {
		if hex := From(c.model).Hex(); hex != c.hex {
			t.Errorf("expected %s to be %s, is %s", c.model, c.hex, hex)
		}
	}
}

func TestConversionRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.color")
	defer teardown()
	//
	c := From(Rgb{0.2, 0.4, 0.6})
	for _, m := range []Model{c.Xyz(), c.Hsv(), c.Hsl()} {
		if hex := From(m).Hex(); hex != c.Hex() {
			t.Errorf("expected %s to convert to %s, is %s", m, c.Hex(), hex)
		}
	}
}

func TestGamut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.color")
	defer teardown()
	//
	if From(Rgb{1.5, 0, 0}).InGamut() {
		t.Errorf("expected rgb(1.5, 0, 0) to be out of gamut")
	}
	if !From(Hsl{200, 0.5, 0.5}).InGamut() {
		t.Errorf("expected hsl(200, 0.5, 0.5) to be in gamut")
	}
	r, g, b := From(Rgb{1, 0.5, 0}).RGB255()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("expected (255, 128, 0), is (%d, %d, %d)", r, g, b)
	}
}

func TestModelString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.color")
	defer teardown()
	//
	if s := From(Rgb{1, 0.5, 0}).String(); s != "rgb(1, 0.5, 0)" {
		t.Errorf("unexpected rgb rendering %q", s)
	}
	if s := (Cmyk{0.1, 0.2, 0.3, 0.4}).String(); s != "cmyk(0.1, 0.2, 0.3, 0.4)" {
		t.Errorf("unexpected cmyk rendering %q", s)
	}
}
