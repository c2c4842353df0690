package arrangement

// disabledArrangement sizes every unresolved column by its content, capped by
// a residual MaxWidth. The table width plays no part.
func disabledArrangement(infos []DisplayInfo) {
	for i := range infos {
		info := &infos[i]
		if info.Fixed {
			continue
		}
		if info.Constraint.Kind == MaxWidth && info.Constraint.Value < info.naturalWidth() {
			info.fix(info.withoutPadding(info.Constraint.Value))
			continue
		}
		info.fix(info.MaxContentWidth)
	}
}
