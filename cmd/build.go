package cmd

import (
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/tabula/internal/arrangement"
	"github.com/oakwood-commons/tabula/internal/config"
	"github.com/oakwood-commons/tabula/internal/style"
	"github.com/oakwood-commons/tabula/pkg/loader"
	"github.com/oakwood-commons/tabula/pkg/table"
)

// buildTable turns loaded data and validated settings into a table.
// forceNoTTY is set when output does not go to the process's stdout.
func buildTable(cfg config.Config, data *loader.Table, forceNoTTY bool) (*table.Table, error) {
	t := table.New()
	if forceNoTTY {
		t.ForceNoTTY()
	}
	if err := t.LoadPreset(cfg.Table.Preset); err != nil {
		return nil, usageErrorf("%w", err)
	}
	mode, err := arrangement.ParseMode(cfg.Table.Arrangement)
	if err != nil {
		return nil, usageErrorf("%w", err)
	}
	t.SetArrangement(mode)
	// Zero leaves the width to terminal detection.
	if cfg.Table.Width != nil && *cfg.Table.Width > 0 {
		t.SetWidth(*cfg.Table.Width)
	}

	if config.Bool(cfg.Table.ShowHeader, true) {
		t.SetHeader(data.Header...)
	} else {
		// Columns still need their count for settings lookups below.
		t.Column(len(data.Header) - 1)
	}
	t.AddRows(data.Rows)

	for _, col := range t.Columns() {
		if cfg.Table.Padding != nil {
			col.SetPadding(cfg.Table.Padding.Left, cfg.Table.Padding.Right)
		}
		col.SetDelimiter(config.Delimiter(cfg.Table.Delimiter))
	}

	for _, cc := range cfg.Columns {
		idx, ok := columnIndex(data.Header, cc.Name)
		if !ok || idx >= t.ColumnCount() {
			continue
		}
		if err := applyColumn(t.Column(idx), cc); err != nil {
			return nil, err
		}
	}

	if config.Bool(cfg.Colors.Enabled, true) {
		t.SetStyleColors(headerStyle(cfg.Colors), borderStyle(cfg.Colors))
	}
	return t, nil
}

// columnIndex resolves a column selector: a header name, or a 1-based column
// number when no header cell has that name.
func columnIndex(header []string, name string) (int, bool) {
	for i, h := range header {
		if h == name {
			return i, true
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n > 0 {
		return n - 1, true
	}
	return 0, false
}

func applyColumn(col *table.Column, cc config.ColumnConfig) error {
	if cc.Constraint != "" {
		c, err := arrangement.ParseConstraint(cc.Constraint)
		if err != nil {
			return usageErrorf("column %q: %w", cc.Name, err)
		}
		col.SetConstraint(c)
	}
	if cc.Align != "" {
		a, err := style.ParseAlignment(cc.Align)
		if err != nil {
			return usageErrorf("column %q: %w", cc.Name, err)
		}
		col.SetCellAlignment(a)
	}
	if cc.Padding != nil {
		col.SetPadding(cc.Padding.Left, cc.Padding.Right)
	}
	if cc.Delimiter != "" {
		col.SetDelimiter(config.Delimiter(cc.Delimiter))
	}
	return nil
}

func headerStyle(c config.ColorConfig) *lipgloss.Style {
	if c.Header == "" && !config.Bool(c.HeaderBold, false) {
		return nil
	}
	s := lipgloss.NewStyle().Bold(config.Bool(c.HeaderBold, false))
	if c.Header != "" {
		s = s.Foreground(lipgloss.Color(c.Header))
	}
	return &s
}

func borderStyle(c config.ColorConfig) *lipgloss.Style {
	if c.Border == "" {
		return nil
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Border))
	return &s
}
