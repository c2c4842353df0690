package arrangement

// evaluateConstraint applies a column's declared constraint to its display
// info. Constraints that can be decided now fix the column; MaxWidth and
// Hidden (and MaxPercentage, once reduced to MaxWidth) are kept as residuals
// for the arrangement pass. tableWidth is only consulted when widthKnown.
func evaluateConstraint(info *DisplayInfo, c Constraint, tableWidth int, widthKnown bool) {
	switch c.Kind {
	case NoConstraint:
	case ContentWidth:
		info.fix(info.MaxContentWidth)
	case AbsoluteWidth:
		info.fix(info.withoutPadding(c.Value))
	case MinWidth:
		// A column already wider than the minimum is left to the arrangement.
		if info.naturalWidth() <= c.Value {
			info.fix(info.withoutPadding(c.Value))
		}
	case MaxWidth:
		info.Constraint = c
	case Percentage:
		if widthKnown {
			info.fix(info.withoutPadding(percentOf(tableWidth, c.Value)))
		}
	case MinPercentage:
		if widthKnown {
			minWidth := percentOf(tableWidth, c.Value)
			if info.naturalWidth() <= minWidth {
				info.fix(info.withoutPadding(minWidth))
			}
		}
	case MaxPercentage:
		if widthKnown {
			info.Constraint = Max(percentOf(tableWidth, c.Value))
		}
	case Hidden:
		info.Constraint = c
	}
}

// percentOf uses integer division; the result is truncated, not rounded.
func percentOf(width, percent int) int {
	return width * percent / 100
}
