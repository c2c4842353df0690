package table

import (
	"github.com/oakwood-commons/tabula/internal/arrangement"
	"github.com/oakwood-commons/tabula/internal/style"
)

// Aliases of the layout and style types so callers outside this module can
// configure a table.
type (
	Constraint    = arrangement.Constraint
	Padding       = arrangement.Padding
	Mode          = arrangement.Mode
	DisplayInfo   = arrangement.DisplayInfo
	CellAlignment = style.CellAlignment
	Style         = style.Style
)

// Arrangement modes.
const (
	Disabled = arrangement.Disabled
	Dynamic  = arrangement.Dynamic
)

// Cell alignments.
const (
	AlignDefault = style.AlignDefault
	AlignLeft    = style.AlignLeft
	AlignRight   = style.AlignRight
	AlignCenter  = style.AlignCenter
)

// Preset strings accepted by LoadPreset.
const (
	ASCIIFull                 = style.ASCIIFull
	ASCIIFullCondensed        = style.ASCIIFullCondensed
	ASCIINoBorders            = style.ASCIINoBorders
	ASCIIBordersOnly          = style.ASCIIBordersOnly
	ASCIIBordersOnlyCondensed = style.ASCIIBordersOnlyCondensed
	ASCIIHorizontalOnly       = style.ASCIIHorizontalOnly
	ASCIIMarkdown             = style.ASCIIMarkdown
	UTF8Full                  = style.UTF8Full
	UTF8FullCondensed         = style.UTF8FullCondensed
	UTF8NoBorders             = style.UTF8NoBorders
	UTF8BordersOnly           = style.UTF8BordersOnly
	UTF8HorizontalOnly        = style.UTF8HorizontalOnly
	Nothing                   = style.Nothing
)

// Constraint constructors.
var (
	ContentWidth = arrangement.Content
	Absolute     = arrangement.Absolute
	MinWidth     = arrangement.Min
	MaxWidth     = arrangement.Max
	Percent      = arrangement.Percent
	MinPercent   = arrangement.MinPercent
	MaxPercent   = arrangement.MaxPercent
	Hide         = arrangement.Hide
)

// ParseConstraint reads the textual constraint forms: content, N, min:N,
// max:N, N%, min:N%, max:N% and hidden.
func ParseConstraint(s string) (Constraint, error) {
	return arrangement.ParseConstraint(s)
}

// ParseAlignment reads left, right, center or default.
func ParseAlignment(s string) (CellAlignment, error) {
	return style.ParseAlignment(s)
}
