package arrangement

// dynamicArrangement fits all unresolved columns into tableWidth.
//
//  1. Reserve space for borders and separators, then subtract every column
//     already fixed by its constraint.
//  2. Repeatedly fix columns that need less than the average space left per
//     unresolved column (including columns capped by a MaxWidth below it).
//  3. If the columns still unresolved take exactly what is left at their
//     natural width, give them that width.
//  4. Otherwise split whatever is left evenly across the remaining columns,
//     handing the division remainder to the leftmost ones.
//
// The result overflows tableWidth when fixed widths alone exceed it; every
// remaining column then gets a content width of 1.
func dynamicArrangement(infos []DisplayInfo, tableWidth int, borders Borders) {
	columnCount := countVisible(infos)
	remaining := tableWidth - borders.overhead(columnCount)

	checked := make([]bool, len(infos))
	checkedCount := 0
	for i := range infos {
		if infos[i].IsHidden() || !infos[i].Fixed {
			continue
		}
		remaining -= infos[i].Width()
		checked[i] = true
		checkedCount++
	}

	remaining, checkedCount = fixColumnsBelowAverage(infos, remaining, columnCount, checked, checkedCount)

	remainingColumns := columnCount - checkedCount
	if remainingColumns == 0 {
		return
	}
	if fixIfAllFit(infos, remaining, checked) {
		return
	}

	// Less than one unit per column left: hand out one each and overflow.
	if remaining < remainingColumns {
		remaining = remainingColumns
	}
	average := remaining / remainingColumns
	excess := remaining - average*remainingColumns

	for i := range infos {
		info := &infos[i]
		if info.IsHidden() || checked[i] {
			continue
		}
		width := average
		if excess > 0 {
			width++
			excess--
		}
		info.fix(info.withoutPadding(width))
	}
}

// fixColumnsBelowAverage runs the fixed-point pass. Each round computes the
// average space per unchecked column once, then walks the columns left to
// right fixing any that fit below it. Rounds repeat until one fixes nothing,
// no columns are left, or there is no positive space left to share.
func fixColumnsBelowAverage(infos []DisplayInfo, remaining, columnCount int, checked []bool, checkedCount int) (int, int) {
	for changed := true; changed; {
		changed = false
		remainingColumns := columnCount - checkedCount
		if remainingColumns == 0 {
			break
		}
		average := remaining / remainingColumns
		if average <= 0 {
			break
		}

		for i := range infos {
			info := &infos[i]
			if info.IsHidden() || checked[i] {
				continue
			}

			// MaxWidth caps compare inclusively against the average.
			if c := info.Constraint; c.Kind == MaxWidth && c.Value <= average && info.naturalWidth() >= c.Value {
				info.fix(info.withoutPadding(c.Value))
			} else if info.naturalWidth() < average {
				info.fix(info.MaxContentWidth)
			} else {
				continue
			}

			remaining -= info.Width()
			checked[i] = true
			checkedCount++
			changed = true
		}
	}
	return remaining, checkedCount
}

// fixIfAllFit fixes every unchecked column to its natural width, capped by a
// residual MaxWidth, when together they need exactly remaining. The
// fixed-point pass never fixes a column whose natural width equals the
// average share. Any surplus is left to the even distribution.
func fixIfAllFit(infos []DisplayInfo, remaining int, checked []bool) bool {
	needed := 0
	for i := range infos {
		if infos[i].IsHidden() || checked[i] {
			continue
		}
		needed += cappedWidth(infos[i])
	}
	if needed != remaining {
		return false
	}
	for i := range infos {
		info := &infos[i]
		if info.IsHidden() || checked[i] {
			continue
		}
		info.fix(info.withoutPadding(cappedWidth(*info)))
		checked[i] = true
	}
	return true
}

// cappedWidth is the natural total width limited by a residual MaxWidth.
func cappedWidth(info DisplayInfo) int {
	if c := info.Constraint; c.Kind == MaxWidth && c.Value < info.naturalWidth() {
		return c.Value
	}
	return info.naturalWidth()
}

func countVisible(infos []DisplayInfo) int {
	count := 0
	for _, info := range infos {
		if !info.IsHidden() {
			count++
		}
	}
	return count
}
