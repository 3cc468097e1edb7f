package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinct/highlight"
	"github.com/npillmayer/tinct/palette"
	"github.com/pterm/pterm"
)

// main() starts an interactive CLI, where users may enter colors, cell
// references and cell selections. Input arguments are evaluated as a single
// command before going into interactive mode.
func main() {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	palf := flag.String("palette", "", "Palette file (TOML)")
	initf := flag.String("init", "", "Init file (TOML)")
	flag.Parse()
	//
	// set up logging
	initDisplay()
	selector := newKeyedSelector(tracing.TraceLevelFromString(*tlevel))
	tracing.SetTraceSelector(selector)
	gtrace.SyntaxTracer = selector.Select("tinct.parse")
	pterm.Info.Println("Welcome to tinct") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	hl, err := highlight.New()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	intp := newIntp(hl, selector)
	var conf config
	if *initf != "" {
		if conf, err = loadConfig(*initf); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		selector.apply(conf.Trace)
	}
	if *palf != "" {
		conf.Palette = *palf
	}
	if conf.Palette != "" {
		if intp.palette, err = palette.LoadFile(conf.Palette); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		tracer().Infof("Loaded palette with %d cells", intp.palette.Len())
	}
	for _, cmd := range conf.Commands {
		intp.Eval(cmd)
	}
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		intp.Eval(input)
	}
	//
	// set up REPL
	repl, err := readline.New("tinct> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
