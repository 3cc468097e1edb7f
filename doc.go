/*
Package tinct is a text grammar toolbox for a structured color palette.

Users address palette cells and write colors as short strings: ":3" is the
cell at index 3, ":1.2.*" selects every cell on line 2 of page 1, "bg:0-bg:4"
is a run of cells in group "bg", and "hsl(120, 0.5, 0.5)" is a color. tinct
turns such strings into typed values. Package structure is as follows:

■ parse: Package parse implements a backtracking parser combinator library with
chainable failure diagnostics.

■ color: Package color implements color models; sub-package colorlang parses
hex and functional color notations.

■ cell: Package cell implements cell references, selectors and selections;
sub-package celllang parses them.

■ palette: Package palette provides an in-memory cell index which resolves
selections to cell indices.

■ highlight: Package highlight scans input lines into tokens for display.

■ cmd/tinct: An interactive command line tool to try out the notations.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tinct
