package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinct/cell"
	"github.com/npillmayer/tinct/highlight"
	"github.com/npillmayer/tinct/palette"
	"github.com/npillmayer/tinct/parse"
)

const warm = "../../palette/testdata/warm.toml"

func newTestIntp(t *testing.T) *Intp {
	hl, err := highlight.New()
	if err != nil {
		t.Fatalf("cannot compile highlighter: %v", err)
	}
	return newIntp(hl, nil)
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.repl")
	defer teardown()
	//
	intp := newTestIntp(t)
	for _, line := range []string{
		"color #ff8000",
		"color hsl(120, 1, 0.25)",
		"ref :1.2.3",
		"sel *, :5.*.*, warm:0-warm:2",
		"help",
		"trace Debug",
		"load " + warm,
		"list",
		"list warm:*",
		"ref accent",
	} {
		quit, err := intp.Eval(line)
		if err != nil || quit {
			t.Errorf("expected %q to succeed, got %v", line, err)
		}
	}
	if quit, err := intp.Eval("quit"); !quit || err != nil {
		t.Errorf("expected 'quit' to quit")
	}
}

func TestEvalFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.repl")
	defer teardown()
	//
	intp := newTestIntp(t)
	if _, err := intp.Eval("paint it black"); err == nil {
		t.Errorf("expected unknown command to fail")
	}
	if _, err := intp.Eval("list"); err == nil {
		t.Errorf("expected 'list' without palette to fail")
	}
	_, err := intp.Eval("color rgb(1, 0.5")
	var fail *parse.Failure
	if !errors.As(err, &fail) {
		t.Fatalf("expected parse failure, got %v", err)
	}
	if fail.Context == "" {
		t.Errorf("expected failure with context, got %#v", fail)
	}
	_, err = intp.Eval("sel :9-:3")
	var rangeErr *cell.RangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("expected range error, got %v", err)
	}
	_, err = intp.Eval("sel :1, :9-:3")
	if !errors.As(err, &rangeErr) {
		t.Errorf("expected range error in selection list, got %v", err)
	}
	if _, err = intp.Eval("load " + warm); err != nil {
		t.Fatalf("cannot load palette: %v", err)
	}
	if _, err = intp.Eval("ref nosuchcell"); !errors.Is(err, palette.ErrNoCell) {
		t.Errorf("expected missing cell, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinct.repl")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "tinct.toml")
	content := `palette = "warm.toml"
commands = ["list"]

[trace]
"tinct.parse" = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	conf, err := loadConfig(path)
	if err != nil {
		t.Fatalf("cannot load config: %v", err)
	}
	if conf.Palette != "warm.toml" || len(conf.Commands) != 1 || conf.Trace["tinct.parse"] != "Debug" {
		t.Errorf("unexpected config %#v", conf)
	}
	if err := os.WriteFile(path, []byte("colour = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Errorf("expected unknown key to be an error")
	}
}
