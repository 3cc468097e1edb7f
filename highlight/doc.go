/*
Package highlight scans palette expressions into tokens for display.

The scanner is generated with lexmachine. It does not validate its input: it
splits a line into punctuation, numbers, hex codes, words and whitespace, so
that an input may be echoed in color even if it does not parse. Each token
carries its byte span within the input line.

    hl, err := highlight.New()
    if err != nil {
        // DFA could not be compiled
    }
    tokens := hl.Tokens(":5.3.2-:6.0.0, bg:*")
    fmt.Println(highlight.Render(tokens, tinct.Span{}))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package highlight

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinct.highlight'.
func tracer() tracing.Trace {
	return tracing.Select("tinct.highlight")
}
