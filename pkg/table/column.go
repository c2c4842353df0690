package table

import (
	"github.com/oakwood-commons/tabula/internal/arrangement"
	"github.com/oakwood-commons/tabula/internal/style"
)

// Column holds the user settings of one column. Layout results are never
// stored here; see Table.Arrangement.
type Column struct {
	index      int
	padding    arrangement.Padding
	constraint arrangement.Constraint
	alignment  style.CellAlignment
	delimiter  rune
}

func newColumn(index int) *Column {
	return &Column{index: index, padding: DefaultPadding}
}

// Index is the zero-based position of the column.
func (c *Column) Index() int { return c.index }

// SetPadding sets the blank cells on each side of the content.
func (c *Column) SetPadding(left, right int) *Column {
	c.padding = arrangement.Padding{Left: max(left, 0), Right: max(right, 0)}
	return c
}

// Padding returns the column padding.
func (c *Column) Padding() arrangement.Padding { return c.padding }

// SetConstraint sets the width constraint. The zero Constraint removes it.
func (c *Column) SetConstraint(cons arrangement.Constraint) *Column {
	c.constraint = cons
	return c
}

// Constraint returns the width constraint.
func (c *Column) Constraint() arrangement.Constraint { return c.constraint }

// IsHidden reports whether the column has the Hidden constraint.
func (c *Column) IsHidden() bool { return c.constraint.Kind == arrangement.Hidden }

// SetCellAlignment sets the default alignment of the column's cells.
func (c *Column) SetCellAlignment(a style.CellAlignment) *Column {
	c.alignment = a
	return c
}

// CellAlignment returns the alignment.
func (c *Column) CellAlignment() style.CellAlignment { return c.alignment }

// SetDelimiter sets the rune long cells are preferably wrapped on.
func (c *Column) SetDelimiter(r rune) *Column {
	c.delimiter = r
	return c
}

// Delimiter returns the wrap delimiter; 0 means space.
func (c *Column) Delimiter() rune { return c.delimiter }

func (c *Column) describe(maxContentWidth int) arrangement.Column {
	return arrangement.Column{
		Padding:         c.padding,
		MaxContentWidth: maxContentWidth,
		Constraint:      c.constraint,
		Alignment:       c.alignment,
		Delimiter:       c.delimiter,
	}
}
