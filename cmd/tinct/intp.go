package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinct"
	"github.com/npillmayer/tinct/cell"
	"github.com/npillmayer/tinct/cell/celllang"
	"github.com/npillmayer/tinct/color"
	"github.com/npillmayer/tinct/color/colorlang"
	"github.com/npillmayer/tinct/highlight"
	"github.com/npillmayer/tinct/palette"
	"github.com/npillmayer/tinct/parse"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	hl       *highlight.Highlighter
	selector *keyedSelector
	palette  *palette.Palette // may be nil
}

func newIntp(hl *highlight.Highlighter, selector *keyedSelector) *Intp {
	return &Intp{hl: hl, selector: selector}
}

type command struct {
	args string
	help string
	run  func(intp *Intp, arg string) (bool, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"color": {"COLOR", "parse a color and show it in other models", (*Intp).color},
		"ref":   {"REF", "parse a cell reference and look it up", (*Intp).ref},
		"sel":   {"SELECTION", "parse a cell selection and resolve it", (*Intp).sel},
		"list":  {"[SELECTION]", "list the cells of the palette", (*Intp).list},
		"load":  {"FILE", "load a palette from a TOML file", (*Intp).load},
		"trace": {"LEVEL [KEY]", "set the trace level", (*Intp).trace},
		"help":  {"", "show this list", (*Intp).help},
		"quit":  {"", "leave tinct", func(*Intp, string) (bool, error) { return true, nil }},
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			tracer().Debugf("command failed: %v", err)
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command, given on a line by itself. Errors have already been
// displayed when Eval returns them.
func (intp *Intp) Eval(line string) (bool, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	cmd, ok := commands[name]
	if !ok {
		err := fmt.Errorf("unknown command %q, try 'help'", name)
		pterm.Error.Println(err.Error())
		return false, err
	}
	return cmd.run(intp, strings.TrimSpace(arg))
}

func (intp *Intp) color(arg string) (bool, error) {
	c, err := parseArg(intp, colorlang.Color, arg)
	if err != nil {
		return false, err
	}
	showColor(c)
	return false, nil
}

func (intp *Intp) ref(arg string) (bool, error) {
	ref, err := parseArg(intp, celllang.CellRef, arg)
	if err != nil {
		return false, err
	}
	pterm.Info.Println(fmt.Sprintf("%T %s", ref, ref))
	if intp.palette == nil {
		return false, nil
	}
	c, err := intp.palette.Lookup(ref)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	intp.showCells([]*palette.Cell{c})
	return false, nil
}

func (intp *Intp) sel(arg string) (bool, error) {
	selection, err := parseArg(intp, celllang.CellSelection, arg)
	if err != nil {
		return false, err
	}
	ll := pterm.LeveledList{{Level: 0, Text: selection.String()}}
	for _, s := range selection {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: fmt.Sprintf("%T %s", s, s)})
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	if intp.palette == nil {
		return false, nil
	}
	return false, intp.showSelection(selection)
}

func (intp *Intp) list(arg string) (bool, error) {
	if intp.palette == nil {
		err := errors.New("no palette loaded, use 'load FILE'")
		pterm.Error.Println(err.Error())
		return false, err
	}
	if arg == "" {
		intp.showCells(intp.palette.Cells())
		return false, nil
	}
	selection, err := parseArg(intp, celllang.CellSelection, arg)
	if err != nil {
		return false, err
	}
	return false, intp.showSelection(selection)
}

func (intp *Intp) load(arg string) (bool, error) {
	p, err := palette.LoadFile(arg)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	intp.palette = p
	pterm.Info.Println(fmt.Sprintf("loaded %d cells in %d groups", p.Len(), len(p.Groups())))
	return false, nil
}

func (intp *Intp) trace(arg string) (bool, error) {
	level, key, _ := strings.Cut(arg, " ")
	if level == "" {
		err := errors.New("trace needs a level [Debug|Info|Error]")
		pterm.Error.Println(err.Error())
		return false, err
	}
	tl := tracing.TraceLevelFromString(level)
	if intp.selector != nil {
		intp.selector.SetLevel(strings.TrimSpace(key), tl)
	}
	pterm.Info.Println(fmt.Sprintf("trace level is %s", tl))
	return false, nil
}

func (intp *Intp) help(string) (bool, error) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	data := pterm.TableData{{"command", "arguments", ""}}
	for _, name := range names {
		cmd := commands[name]
		data = append(data, []string{name, cmd.args, cmd.help})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}

// --- Output ----------------------------------------------------------------

// parseArg parses all of arg with p. A failure is displayed before it is
// returned.
func parseArg[V any](intp *Intp, p parse.Parser[V], arg string) (V, error) {
	suc, fail := parse.Complete(p)(arg).Unpack()
	if fail != nil {
		intp.showFailure(arg, fail)
		return suc.Value, fail
	}
	tracer().Debugf("parsed %q", suc.Token)
	return suc.Value, nil
}

// showFailure echoes input with the failure context marked, followed by the
// chain of failure causes.
func (intp *Intp) showFailure(input string, f *parse.Failure) {
	mark := f.Span(input)
	if mark.Len() == 0 && mark.From() < uint64(len(input)) {
		mark = tinct.Span{mark.From(), mark.From() + 1}
	}
	pterm.Println(highlight.Render(intp.hl.Tokens(input), mark))
	ll := pterm.LeveledList{}
	for i, err := range f.Chain() {
		ll = append(ll, pterm.LeveledListItem{Level: i, Text: err.Error()})
	}
	pterm.Error.Println(f.Error())
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func (intp *Intp) showSelection(selection cell.CellSelection) error {
	indices, err := intp.palette.Resolve(selection)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	cells := make([]*palette.Cell, 0, len(indices))
	for _, i := range indices {
		if c, ok := intp.palette.Cell(i); ok {
			cells = append(cells, c)
		}
	}
	intp.showCells(cells)
	return nil
}

func (intp *Intp) showCells(cells []*palette.Cell) {
	if len(cells) == 0 {
		pterm.Info.Println("no cells")
		return
	}
	data := pterm.TableData{{"index", "color", "hex", "name", "position", "groups"}}
	for _, c := range cells {
		pos := ""
		if c.Position != nil {
			pos = c.Position.String()
		}
		data = append(data, []string{
			c.Index.String(),
			c.Color.Model.String(),
			c.Color.Hex(),
			c.Name,
			pos,
			strings.Join(c.Groups, " "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func showColor(c color.Color) {
	r, g, b := c.RGB255()
	ll := pterm.LeveledList{
		{Level: 0, Text: c.Model.String()},
		{Level: 1, Text: fmt.Sprintf("%s  rgb255(%d, %d, %d)", c.Hex(), r, g, b)},
		{Level: 1, Text: c.Rgb().String()},
		{Level: 1, Text: c.Hsv().String()},
		{Level: 1, Text: c.Hsl().String()},
		{Level: 1, Text: c.Xyz().String()},
	}
	if !c.InGamut() {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "out of sRGB gamut, clamped"})
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}
