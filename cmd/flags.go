package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tabula/internal/arrangement"
	"github.com/oakwood-commons/tabula/internal/config"
)

// applyFlags overlays the flags set on the command line onto cfg. Unset
// flags leave the configured values alone.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Table.Preset = presetName
	}
	if flags.Changed("arrangement") {
		cfg.Table.Arrangement = arrangementMode
	}
	if flags.Changed("width") {
		w := tableWidth
		cfg.Table.Width = &w
	}
	if flags.Changed("format") {
		cfg.Input.Format = inputFormat
	}
	if flags.Changed("delimiter") {
		cfg.Table.Delimiter = delimiter
	}
	if flags.Changed("padding") {
		p, err := parsePadding(paddingSpec)
		if err != nil {
			return usageErrorf("invalid --padding: %w", err)
		}
		cfg.Table.Padding = &p
	}
	if noHeader {
		show := false
		cfg.Table.ShowHeader = &show
	}
	if noColor {
		enabled := false
		cfg.Colors.Enabled = &enabled
	}

	for _, spec := range constraintSpecs {
		name, value, err := parseAssignment(spec)
		if err != nil {
			return usageErrorf("invalid --constraint: %w", err)
		}
		if _, err := arrangement.ParseConstraint(value); err != nil {
			return usageErrorf("invalid --constraint %q: %w", spec, err)
		}
		cfg.SetColumn(config.ColumnConfig{Name: name, Constraint: value})
	}
	for _, spec := range alignSpecs {
		name, value, err := parseAssignment(spec)
		if err != nil {
			return usageErrorf("invalid --align: %w", err)
		}
		cfg.SetColumn(config.ColumnConfig{Name: name, Align: value})
	}
	for _, name := range hiddenColumns {
		if strings.TrimSpace(name) == "" {
			return usageErrorf("invalid --hide: empty column name")
		}
		cfg.SetColumn(config.ColumnConfig{Name: name, Constraint: arrangement.Hide().String()})
	}
	return nil
}

// parseAssignment splits NAME=VALUE. The name is taken up to the last '='
// so header names may contain '='.
func parseAssignment(s string) (string, string, error) {
	i := strings.LastIndexByte(s, '=')
	if i <= 0 {
		return "", "", usageErrorf("%q is not NAME=VALUE", s)
	}
	return s[:i], strings.TrimSpace(s[i+1:]), nil
}

// parsePadding accepts "N" or "LEFT,RIGHT".
func parsePadding(s string) (arrangement.Padding, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return arrangement.Padding{}, usageErrorf("%q is not LEFT,RIGHT", s)
	}
	vals := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return arrangement.Padding{}, usageErrorf("%q is not a non-negative number", p)
		}
		vals[i] = n
	}
	if len(vals) == 1 {
		return arrangement.Padding{Left: vals[0], Right: vals[0]}, nil
	}
	return arrangement.Padding{Left: vals[0], Right: vals[1]}, nil
}
