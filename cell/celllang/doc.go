/*
Package celllang parses references to palette cells and selections of cells.

    CellSelection ::= CellSelector ( ',' CellSelector )*
    CellSelector  ::= '*'
                    | Position ( '-' Position )?
                    | PositionSelector
                    | Index ( '-' Index )?
                    | GroupAll
                    | Group ( '-' Group )?
                    | Name
    CellRef       ::= Position | Index | Group | Name
    Position      ::= ':' U16 '.' U16 '.' U16
    PositionSelector ::= ':' U16OrAll '.' U16OrAll '.' U16OrAll
    Index         ::= ':' U32
    Group         ::= Name Index
    GroupAll      ::= Name ':' '*'

Whitespace may surround the range and selection separators. Names may contain
any character other than "*,.:-"; whitespace inside a name is kept, whitespace
around it is trimmed.

Alternatives are tried in the order given. If none matches, the failure of the
alternative which matched the longest text is reported. A range whose bounds
are out of order is not a syntax error: it is reported as a failure with a
*cell.RangeError source.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package celllang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinct.cell'.
func tracer() tracing.Trace {
	return tracing.Select("tinct.cell")
}
