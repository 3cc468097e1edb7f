package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// config is the content of an init file:
//
//    palette  = "warm.toml"
//    commands = ["sel warm:*", "list"]
//
//    [trace]
//    "tinct.parse" = "Debug"
//    "tinct.repl"  = "Info"
//
type config struct {
	Palette  string            `toml:"palette"`
	Commands []string          `toml:"commands"`
	Trace    map[string]string `toml:"trace"`
}

func loadConfig(path string) (config, error) {
	var conf config
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return conf, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return conf, fmt.Errorf("init file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return conf, nil
}

// --- Tracing ---------------------------------------------------------------

// keyedSelector hands out one tracer per trace key, so that levels may be set
// per package. Tracers are created on first use with the default level.
type keyedSelector struct {
	sync.Mutex
	level   tracing.TraceLevel
	tracers map[string]tracing.Trace
}

func newKeyedSelector(level tracing.TraceLevel) *keyedSelector {
	return &keyedSelector{
		level:   level,
		tracers: make(map[string]tracing.Trace),
	}
}

func (sel *keyedSelector) Select(key string) tracing.Trace {
	sel.Lock()
	defer sel.Unlock()
	t, ok := sel.tracers[key]
	if !ok {
		t = gologadapter.New()
		t.SetTraceLevel(sel.level)
		sel.tracers[key] = t
	}
	return t
}

// SetLevel sets the level for key, or for all keys if key is empty.
func (sel *keyedSelector) SetLevel(key string, level tracing.TraceLevel) {
	if key != "" {
		sel.Select(key).SetTraceLevel(level)
		return
	}
	sel.Lock()
	defer sel.Unlock()
	sel.level = level
	for _, t := range sel.tracers {
		t.SetTraceLevel(level)
	}
}

func (sel *keyedSelector) apply(levels map[string]string) {
	for key, l := range levels {
		sel.SetLevel(key, tracing.TraceLevelFromString(l))
	}
}
