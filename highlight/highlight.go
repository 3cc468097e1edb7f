package highlight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/tinct"
	"github.com/pterm/pterm"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Kind is the category of a token.
type Kind int

// Token kinds.
const (
	Invalid Kind = iota // input the scanner could not match
	Punct               // one of * , . : - # ( )
	Number              // decimal digits
	RadixNumber         // number with radix prefix 0b, 0o or 0x
	Hex                 // hex color code
	Word                // names and notation names
	Space               // whitespace
)

func (k Kind) String() string {
	switch k {
	case Punct:
		return "Punct"
	case Number:
		return "Number"
	case RadixNumber:
		return "RadixNumber"
	case Hex:
		return "Hex"
	case Word:
		return "Word"
	case Space:
		return "Space"
	}
	return "Invalid"
}

// Token is a scanned token.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   tinct.Span // byte offsets within the input line
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span)
}

// punctuation patterns, escaped where the character is an operator of
// lexmachine's regular expressions
var punctuation = []string{`\*`, `\,`, `\.`, `:`, `\-`, `#`, `\(`, `\)`}

// Highlighter wraps a compiled lexmachine DFA. It may be shared between
// goroutines; every call of Tokens uses its own scanner.
type Highlighter struct {
	lexer *lexmachine.Lexer
}

// New creates a highlighter. It returns an error if compiling the DFA failed.
func New() (*Highlighter, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`#[0-9a-fA-F]+`), makeToken(Hex))
	lexer.Add([]byte(`0x[0-9a-fA-F_]+|0o[0-7_]+|0b[01_]+`), makeToken(RadixNumber))
	lexer.Add([]byte(`[0-9][0-9_]*`), makeToken(Number))
	lexer.Add([]byte(`[^0-9*,.:#() \t\r\n\-][^*,.:#() \t\r\n\-]*`), makeToken(Word))
	lexer.Add([]byte(`( |\t|\n|\r)+`), makeToken(Space))
	for _, p := range punctuation {
		lexer.Add([]byte(p), makeToken(Punct))
	}
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &Highlighter{lexer: lexer}, nil
}

func makeToken(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

// Tokens splits input into tokens. Input the scanner cannot match is returned
// as tokens of kind Invalid, so the tokens always cover all of input.
func (hl *Highlighter) Tokens(input string) []Token {
	scanner, err := hl.lexer.Scanner([]byte(input))
	if err != nil {
		tracer().Errorf("scanner error: %v", err)
		return []Token{{Kind: Invalid, Lexeme: input, Span: tinct.Span{0, uint64(len(input))}}}
	}
	var tokens []Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			var ui *machines.UnconsumedInput
			if !errors.As(err, &ui) {
				tracer().Errorf("scanner error: %v", err)
				break
			}
			skip := ui.FailTC
			if skip <= ui.StartTC {
				skip = ui.StartTC + 1
			}
			tracer().Debugf("skipping unmatched input %q", input[ui.StartTC:skip])
			tokens = append(tokens, Token{
				Kind:   Invalid,
				Lexeme: input[ui.StartTC:skip],
				Span:   tinct.Span{uint64(ui.StartTC), uint64(skip)},
			})
			scanner.TC = skip
			continue
		}
		t := tok.(*lexmachine.Token)
		tokens = append(tokens, Token{
			Kind:   Kind(t.Type),
			Lexeme: string(t.Lexeme),
			Span:   tinct.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
		})
	}
	return tokens
}

// Text reassembles the input from tokens.
func Text(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Lexeme)
	}
	return b.String()
}

// Styles maps token kinds to display styles. Kinds without an entry are
// printed unstyled.
var Styles = map[Kind]*pterm.Style{
	Invalid:     pterm.NewStyle(pterm.FgRed, pterm.Bold),
	Punct:       pterm.NewStyle(pterm.FgGray),
	Number:      pterm.NewStyle(pterm.FgYellow),
	RadixNumber: pterm.NewStyle(pterm.FgYellow, pterm.Bold),
	Hex:         pterm.NewStyle(pterm.FgMagenta),
	Word:        pterm.NewStyle(pterm.FgCyan),
}

// MarkStyle is used for tokens overlapping the span handed to Render.
var MarkStyle = pterm.NewStyle(pterm.BgRed, pterm.FgBlack)

// Render returns the text of tokens, styled for a terminal. Tokens overlapping
// mark are printed with MarkStyle. A null mark marks nothing; a mark of length
// zero marks the token starting at its offset.
func Render(tokens []Token, mark tinct.Span) string {
	var b strings.Builder
	for _, t := range tokens {
		style := Styles[t.Kind]
		if marks(mark, t.Span) {
			style = MarkStyle
		}
		if style == nil {
			b.WriteString(t.Lexeme)
			continue
		}
		b.WriteString(style.Sprint(t.Lexeme))
	}
	return b.String()
}

func marks(mark, span tinct.Span) bool {
	if mark.IsNull() {
		return false
	}
	if mark.Len() == 0 {
		return span.From() == mark.From()
	}
	return span.From() < mark.To() && span.To() > mark.From()
}
