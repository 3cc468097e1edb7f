package tinct

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct")
	defer teardown()
	//
	s := Span{2, 5}
	if s.Len() != 3 || s.IsNull() {
		t.Errorf("unexpected span %s", s)
	}
	if !s.Contains(2) || s.Contains(5) {
		t.Errorf("expected span %s to contain 2 but not 5", s)
	}
	if x := s.Extend(Span{4, 9}); x != (Span{2, 9}) {
		t.Errorf("expected extended span (2…9), is %s", x)
	}
	if s.String() != "(2…5)" {
		t.Errorf("unexpected span format %s", s.String())
	}
}

func TestSpanOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct")
	defer teardown()
	//
	input := "rgb(1, 2)"
	s := SpanOf(input, input[4:], 2)
	if s != (Span{4, 6}) || s.Of(input) != "1," {
		t.Errorf("expected span (4…6) covering '1,', is %s", s)
	}
	if (Span{7, 20}).Of(input) != "2)" {
		t.Errorf("expected span beyond input to be clipped")
	}
}
