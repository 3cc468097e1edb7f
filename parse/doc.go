/*
Package parse implements a backtracking parser combinator library.

A parser is a plain function from an input string to a Result. A successful
parse returns the parsed value, the token it consumed and the rest of the
input; token and rest are adjacent substrings of the input. A failed parse
never consumes input: its Rest is exactly the text it was called with, so
callers may retry alternatives from the same offset without saving a cursor.

Failures are chainable. Each grammar rule may label a failure of a sub-rule
with its own description (Result.SourceFor), keeping the sub-rule failure as
the cause, and may extend the failure context backwards to cover everything a
sequence had matched so far (Result.WithJoinContext). A failure deep inside a
rule therefore reports a single coherent error window.

Example:

    hex := parse.Prefix(
        parse.UintDigitsValue[uint32]("u32", 6, 6, 16),
        parse.Char('#'))
    r := hex("#cafe00 rest")   // value 0xcafe00, token "#cafe00", rest " rest"

Parsers hold no state between calls and may be used from multiple goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinct.parse'.
func tracer() tracing.Trace {
	return tracing.Select("tinct.parse")
}
