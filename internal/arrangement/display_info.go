package arrangement

import "github.com/oakwood-commons/tabula/internal/style"

// Padding is the space kept on each side of a column's content.
type Padding struct {
	Left  int `json:"left" yaml:"left"`
	Right int `json:"right" yaml:"right"`
}

// Width returns the combined left and right padding.
func (p Padding) Width() int {
	return p.Left + p.Right
}

// DisplayInfo is the per-render layout state of one column. It is built fresh
// by Arrange and never written back to the column definitions.
type DisplayInfo struct {
	Padding Padding
	// Delimiter is the rune cell text is preferably split on; 0 means space.
	Delimiter rune
	// MaxContentWidth is the widest cell line in the column.
	MaxContentWidth int
	// Fixed marks the content width as final for this render.
	Fixed bool
	// Constraint is the residual constraint; only MaxWidth and Hidden survive evaluation.
	Constraint    Constraint
	CellAlignment style.CellAlignment
	// NeedsSplitting is set when cell text is wider than the content width.
	NeedsSplitting bool

	contentWidth int
}

func newDisplayInfo(col Column) DisplayInfo {
	maxContent := col.MaxContentWidth
	if maxContent < 0 {
		maxContent = 0
	}
	return DisplayInfo{
		Padding:         col.Padding,
		Delimiter:       col.Delimiter,
		MaxContentWidth: maxContent,
		CellAlignment:   col.Alignment,
	}
}

// ContentWidth is the width available to cell text, padding excluded.
func (d DisplayInfo) ContentWidth() int {
	return d.contentWidth
}

// Width is the total column width including padding.
func (d DisplayInfo) Width() int {
	return d.contentWidth + d.Padding.Width()
}

// IsHidden reports whether the column is excluded from output.
func (d DisplayInfo) IsHidden() bool {
	return d.Constraint.Kind == Hidden
}

// naturalWidth is the total width the column needs to show its content unsplit.
func (d DisplayInfo) naturalWidth() int {
	return d.MaxContentWidth + d.Padding.Width()
}

// setContentWidth stores w, coercing widths below 1 to 1.
func (d *DisplayInfo) setContentWidth(w int) {
	if w < 1 {
		w = 1
	}
	d.contentWidth = w
}

// fix finalizes the content width.
func (d *DisplayInfo) fix(w int) {
	d.setContentWidth(w)
	d.Fixed = true
}

// withoutPadding returns the content width left in a total width of w.
func (d DisplayInfo) withoutPadding(w int) int {
	padding := d.Padding.Width()
	if padding >= w {
		return 1
	}
	return w - padding
}

// Summary returns the final layout of the column in a form suitable for
// YAML or JSON output.
func (d DisplayInfo) Summary() map[string]any {
	return map[string]any{
		"content_width":     d.contentWidth,
		"width":             d.Width(),
		"hidden":            d.IsHidden(),
		"max_content_width": d.MaxContentWidth,
		"needs_splitting":   d.NeedsSplitting,
		"padding":           d.Padding,
		"alignment":         d.CellAlignment.String(),
		"constraint":        d.Constraint.String(),
	}
}
