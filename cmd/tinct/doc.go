/*
Command tinct is an interactive command line tool for the tinct notations.
Users may enter colors, cell references and cell selections, which are parsed
and printed back. If a palette is loaded, references and selections are
resolved against it.

    tinct [-trace Level] [-palette file.toml] [-init tinct.toml]

Parse failures are shown with the offending part of the input marked and the
chain of failure causes printed as a tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinct.repl'
func tracer() tracing.Trace {
	return tracing.Select("tinct.repl")
}
