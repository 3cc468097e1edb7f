package tinct

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input text, given as byte offsets.
// Parse failures report the input they had matched before failing as a span,
// and the highlighter attaches spans to its tokens. A span denotes a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// Contains is true if offset pos lies within (x…y).
func (s Span) Contains(pos uint64) bool {
	return pos >= s[0] && pos < s[1]
}

// Of returns the part of input covered by s. Offsets beyond the end of input are
// clipped.
func (s Span) Of(input string) string {
	from, to := s[0], s[1]
	if to > uint64(len(input)) {
		to = uint64(len(input))
	}
	if from > to {
		return ""
	}
	return input[from:to]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// SpanOf locates a substring part, which has to be a suffix of input (as all
// remainders of a parse are), and returns its span within input.
func SpanOf(input string, suffix string, length int) Span {
	from := uint64(len(input) - len(suffix))
	return Span{from, from + uint64(length)}
}
