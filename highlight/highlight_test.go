package highlight

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinct"
)

func newHighlighter(t *testing.T) *Highlighter {
	hl, err := New()
	if err != nil {
		t.Fatalf("cannot compile highlighter: %v", err)
	}
	return hl
}

func kinds(tokens []Token) []Kind {
	k := make([]Kind, len(tokens))
	for i, t := range tokens {
		k[i] = t.Kind
	}
	return k
}

func TestTokenKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.highlight")
	defer teardown()
	//
	hl := newHighlighter(t)
	for _, c := range []struct {
		input string
		kinds []Kind
	}{
		{"#ff8000", []Kind{Hex}},
		{"0x1f", []Kind{RadixNumber}},
		{"1_000", []Kind{Number}},
		{"1f", []Kind{Number, Word}},
		{"rgb(1.0, 0.5)", []Kind{Word, Punct, Number, Punct, Number, Punct,
			Space, Number, Punct, Number, Punct}},
		{"bg:*", []Kind{Word, Punct, Punct}},
		{"light grey", []Kind{Word, Space, Word}},
		{":5.3-:6", []Kind{Punct, Number, Punct, Number, Punct, Punct, Number}},
	} {
		got := kinds(hl.Tokens(c.input))
		if len(got) != len(c.kinds) {
			t.Errorf("%q: expected %v, got %v", c.input, c.kinds, got)
			continue
		}
		for i := range got {
			if got[i] != c.kinds[i] {
				t.Errorf("%q: expected %v, got %v", c.input, c.kinds, got)
				break
			}
		}
	}
}

func TestTokenSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.highlight")
	defer teardown()
	//
	hl := newHighlighter(t)
	input := ":5.3.2-:6.0.0, bg:*"
	tokens := hl.Tokens(input)
	if Text(tokens) != input {
		t.Fatalf("expected tokens to cover input, got %q", Text(tokens))
	}
	var pos uint64
	for _, tok := range tokens {
		if tok.Span.From() != pos {
			t.Errorf("expected token %v to start at %d", tok, pos)
		}
		if tok.Span.Of(input) != tok.Lexeme {
			t.Errorf("span of token %v does not match its lexeme", tok)
		}
		pos = tok.Span.To()
	}
	last := tokens[len(tokens)-1]
	if last.Lexeme != "*" || last.Span != (tinct.Span{18, 19}) {
		t.Errorf("unexpected last token %v", last)
	}
}

func TestRenderMarks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.highlight")
	defer teardown()
	//
	for _, c := range []struct {
		mark, span tinct.Span
		marked     bool
	}{
		{tinct.Span{}, tinct.Span{0, 3}, false},
		{tinct.Span{2, 5}, tinct.Span{0, 3}, true},
		{tinct.Span{3, 5}, tinct.Span{0, 3}, false},
		{tinct.Span{4, 4}, tinct.Span{4, 6}, true},
		{tinct.Span{4, 4}, tinct.Span{3, 6}, false},
	} {
		if marks(c.mark, c.span) != c.marked {
			t.Errorf("mark %s over token %s: expected marked = %v", c.mark, c.span, c.marked)
		}
	}
	hl := newHighlighter(t)
	out := Render(hl.Tokens("rgb(1, 2)"), tinct.Span{4, 5})
	for _, lexeme := range []string{"rgb", "(", "1", ",", "2", ")"} {
		if !strings.Contains(out, lexeme) {
			t.Errorf("expected rendered output to contain %q", lexeme)
		}
	}
}
