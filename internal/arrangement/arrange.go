// Package arrangement decides how wide every column of a table is rendered.
//
// Arrange evaluates each column's constraint against the table width, then
// runs one of two strategies over all columns: Disabled sizes columns by
// their content, Dynamic fits them into the target width. The returned
// DisplayInfo values are fresh on every call; nothing is cached between
// renders.
package arrangement

import (
	"fmt"
	"strings"

	"github.com/oakwood-commons/tabula/internal/style"
)

// Mode selects the arrangement strategy.
type Mode int

const (
	// Disabled ignores the table width and sizes columns by content.
	Disabled Mode = iota
	// Dynamic fits columns into the table width.
	Dynamic
)

// ParseMode converts "disabled" or "dynamic" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "off", "none":
		return Disabled, nil
	case "", "dynamic", "auto":
		return Dynamic, nil
	default:
		return Disabled, fmt.Errorf("invalid arrangement %q (expected dynamic or disabled)", s)
	}
}

func (m Mode) String() string {
	if m == Dynamic {
		return "dynamic"
	}
	return "disabled"
}

// Borders states which grid lines take up horizontal space.
type Borders struct {
	Left     bool
	Right    bool
	Vertical bool
}

// BordersFor derives the border flags from a table style.
func BordersFor(s style.Style) Borders {
	return Borders{
		Left:     s.DrawLeftBorder(),
		Right:    s.DrawRightBorder(),
		Vertical: s.DrawVerticalLines(),
	}
}

// overhead is the width taken by borders and separators for visible columns.
func (b Borders) overhead(visible int) int {
	total := 0
	if b.Left {
		total++
	}
	if b.Right {
		total++
	}
	if b.Vertical && visible > 1 {
		total += visible - 1
	}
	return total
}

// Column is the input description of one column.
type Column struct {
	Padding Padding
	// MaxContentWidth is the widest rendered cell line, measured by the caller.
	MaxContentWidth int
	Constraint      Constraint
	Alignment       style.CellAlignment
	Delimiter       rune
}

// Description is everything Arrange needs to lay out a table.
type Description struct {
	Columns []Column
	// Width is the target total table width; ignored unless WidthKnown.
	Width      int
	WidthKnown bool
	Mode       Mode
	Borders    Borders
}

// Arrange computes the display info of every column, in input order.
// It never fails: impossible budgets overflow instead.
func Arrange(desc Description) []DisplayInfo {
	infos := make([]DisplayInfo, len(desc.Columns))
	for i, col := range desc.Columns {
		infos[i] = newDisplayInfo(col)
		evaluateConstraint(&infos[i], col.Constraint, desc.Width, desc.WidthKnown)
	}

	// Without a width there is nothing to fit into.
	if !desc.WidthKnown || desc.Mode == Disabled {
		disabledArrangement(infos)
	} else {
		dynamicArrangement(infos, desc.Width, desc.Borders)
	}

	for i := range infos {
		info := &infos[i]
		if info.IsHidden() && !info.Fixed {
			info.fix(info.MaxContentWidth)
		}
		info.NeedsSplitting = info.contentWidth < info.MaxContentWidth
	}
	return infos
}

// TotalWidth returns the rendered width of the visible columns plus border
// and separator overhead.
func TotalWidth(infos []DisplayInfo, borders Borders) int {
	total := 0
	for _, info := range infos {
		if !info.IsHidden() {
			total += info.Width()
		}
	}
	return total + borders.overhead(countVisible(infos))
}
