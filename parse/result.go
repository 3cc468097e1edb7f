package parse

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tinct"
)

// --- Success ---------------------------------------------------------------

// Success is the outcome of a successful parse.
//
// Token and Rest are adjacent substrings of the parsed input. For the
// outermost parse, Rest is a suffix of the input.
type Success[V any] struct {
	Value V      // the parsed value
	Token string // the consumed text
	Rest  string // the remainder of the input
}

// Discard drops the parsed value.
func (s Success[V]) Discard() Success[struct{}] {
	return Success[struct{}]{Token: s.Token, Rest: s.Rest}
}

// Tokenize replaces the parsed value by the consumed text.
func (s Success[V]) Tokenize() Success[string] {
	return Success[string]{Value: s.Token, Token: s.Token, Rest: s.Rest}
}

// JoinFailure joins a failure of a parse started at s.Rest to s, extending the
// failure's context back to include s.Token. text is the input s had been
// parsed from.
func (s Success[V]) JoinFailure(f *Failure, text string) *Failure {
	return joinContext(f, len(s.Token), text)
}

// Join joins two sequential successes, discarding their values. b has to be
// the result of a parse of a.Rest, and text is the input of a.
func Join[V, U any](a Success[V], b Success[U], text string) Success[struct{}] {
	return Success[struct{}]{
		Token: prefixOf(text, len(a.Token)+len(b.Token)),
		Rest:  b.Rest,
	}
}

// JoinWith joins two sequential successes, combining their values with f.
// b has to be the result of a parse of a.Rest, and text is the input of a.
func JoinWith[V, U, T any](a Success[V], b Success[U], text string, f func(V, U) T) Success[T] {
	return Success[T]{
		Value: f(a.Value, b.Value),
		Token: prefixOf(text, len(a.Token)+len(b.Token)),
		Rest:  b.Rest,
	}
}

// --- Failure ---------------------------------------------------------------

// Failure is the outcome of a failed parse.
//
// Context holds the text successfully matched before the failure point. Rest
// is the exact input the failing parser had been called with; Context is
// always a prefix of Rest.
type Failure struct {
	Context  string // text matched before failing
	Expected string // description of what was expected
	Source   error  // cause of this failure, may be nil
	Rest     string // input of the failed parser
}

func (f *Failure) Error() string {
	return failureMessage(f.Expected, f.Context)
}

// Unwrap returns the cause of a failure, if any.
func (f *Failure) Unwrap() error {
	return f.Source
}

// RestContinuing returns the input behind the failure context. This is the
// offset at which a caller may resume parsing after skipping the erroneous
// text.
func (f *Failure) RestContinuing() string {
	if len(f.Context) > len(f.Rest) {
		return ""
	}
	return f.Rest[len(f.Context):]
}

// Span returns the position of the failure context within input. input has to
// be the complete text handed to the outermost parser.
func (f *Failure) Span(input string) tinct.Span {
	return tinct.SpanOf(input, f.Rest, len(f.Context))
}

// Owned returns a detached copy of f, without reference to the rest of the input.
func (f *Failure) Owned() *FailureOwned {
	return &FailureOwned{
		Context:  f.Context,
		Expected: f.Expected,
		Source:   f.Source,
	}
}

// Chain returns f followed by all of its causes, outermost first.
func (f *Failure) Chain() []error {
	var chain []error
	var err error = f
	for err != nil {
		chain = append(chain, err)
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return chain
}

// FailureOwned is a failure which has been detached from the input text. It is
// used as the cause of other failures.
type FailureOwned struct {
	Context  string // text matched before failing
	Expected string // description of what was expected
	Source   error  // cause of this failure, may be nil
}

func (f *FailureOwned) Error() string {
	return failureMessage(f.Expected, f.Context)
}

// Unwrap returns the cause of a failure, if any.
func (f *FailureOwned) Unwrap() error {
	return f.Source
}

func failureMessage(expected, context string) string {
	var b strings.Builder
	b.WriteString("parse error: expected ")
	b.WriteString(expected)
	if context != "" {
		fmt.Fprintf(&b, ", found %s", context)
	}
	return b.String()
}

// joinContext extends the context of f backwards by n bytes of text.
func joinContext(f *Failure, n int, text string) *Failure {
	joined := *f
	joined.Context = prefixOf(text, n+len(f.Context))
	joined.Rest = text
	return &joined
}

func prefixOf(text string, n int) string {
	if n > len(text) {
		n = len(text)
	}
	return text[:n]
}

// --- Result ----------------------------------------------------------------

// Result is the outcome of a parse attempt: either a Success or a Failure.
type Result[V any] struct {
	success Success[V]
	failure *Failure
}

// Parser is the type of all parsers.
type Parser[V any] func(text string) Result[V]

// Ok creates a successful result.
func Ok[V any](s Success[V]) Result[V] {
	return Result[V]{success: s}
}

// Err creates a failed result.
func Err[V any](f *Failure) Result[V] {
	return Result[V]{failure: f}
}

// IsOK is true for successful results.
func (r Result[V]) IsOK() bool {
	return r.failure == nil
}

// Unpack returns either a success and nil, or a zero success and a failure.
func (r Result[V]) Unpack() (Success[V], *Failure) {
	return r.success, r.failure
}

// Success returns the success of r, if r is successful.
func (r Result[V]) Success() (Success[V], bool) {
	return r.success, r.failure == nil
}

// Failure returns the failure of r or nil.
func (r Result[V]) Failure() *Failure {
	return r.failure
}

// Value returns the parsed value, if r is successful.
func (r Result[V]) Value() (V, bool) {
	return r.success.Value, r.failure == nil
}

// Token returns the consumed text, if r is successful.
func (r Result[V]) Token() (string, bool) {
	return r.success.Token, r.failure == nil
}

// Rest returns the remaining text. For failures this is the input of the
// failed parser.
func (r Result[V]) Rest() string {
	if r.failure != nil {
		return r.failure.Rest
	}
	return r.success.Rest
}

// SourceFor wraps a failure as the source of a new failure expecting
// `expected`. Context and rest are kept. Successful results pass unchanged.
//
// Call this before WithJoinContext or WithNewContext to keep the context of
// the sub-parse in the source.
func (r Result[V]) SourceFor(expected string) Result[V] {
	if r.failure == nil {
		return r
	}
	return Err[V](&Failure{
		Context:  r.failure.Context,
		Expected: expected,
		Source:   r.failure.Owned(),
		Rest:     r.failure.Rest,
	})
}

// WithJoinContext extends the context of a failure backwards to include the
// token of a previous successful parse. text is the input of that previous
// parse, and the failed parse has to have been started at its rest.
func (r Result[V]) WithJoinContext(prior string, text string) Result[V] {
	if r.failure == nil {
		return r
	}
	return Err[V](joinContext(r.failure, len(prior), text))
}

// WithNewContext sets context and rest of a failure directly. This is used at
// the start of a rule, where there is no previous success to join.
func (r Result[V]) WithNewContext(context string, text string) Result[V] {
	if r.failure == nil {
		return r
	}
	f := *r.failure
	f.Context = context
	f.Rest = text
	return Err[V](&f)
}

// TokenizeValue replaces the parsed value by the consumed text.
func (r Result[V]) TokenizeValue() Result[string] {
	if r.failure != nil {
		return Err[string](r.failure)
	}
	return Ok(r.success.Tokenize())
}

// DiscardValue drops the parsed value.
func (r Result[V]) DiscardValue() Result[struct{}] {
	if r.failure != nil {
		return Err[struct{}](r.failure)
	}
	return Ok(r.success.Discard())
}

// ExpectEndOfText turns a success into a failure if any input remains. text is
// the input the result was parsed from.
func (r Result[V]) ExpectEndOfText(text string) Result[V] {
	if r.failure != nil || r.success.Rest == "" {
		return r
	}
	return Err[V](&Failure{
		Context:  prefixOf(text, len(text)-len(r.success.Rest)),
		Expected: "end-of-text",
		Rest:     text,
	})
}

// ExpectFailure inverts a result. A failure becomes a zero-length success
// holding the failure context, a success becomes a failure. text is the input
// the result was parsed from. This is used for negative lookahead.
func (r Result[V]) ExpectFailure(text string) Result[string] {
	if r.failure != nil {
		return Ok(Success[string]{Value: r.failure.Context, Rest: text})
	}
	return Err[string](&Failure{
		Context:  r.success.Token,
		Expected: "parse failure",
		Rest:     text,
	})
}

// MapValue applies f to the value of a successful result.
func MapValue[V, U any](r Result[V], f func(V) U) Result[U] {
	if r.failure != nil {
		return Err[U](r.failure)
	}
	return Ok(Success[U]{
		Value: f(r.success.Value),
		Token: r.success.Token,
		Rest:  r.success.Rest,
	})
}
