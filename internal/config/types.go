// Package config models the tabula configuration file.
//
// Defaults ship embedded in the binary as default_config.yaml. A user file,
// either passed with --config-file or found at
// $XDG_CONFIG_HOME/tabula/config.yaml, is merged over them field by field.
// Command-line flags are applied last by the caller.
package config

import "github.com/oakwood-commons/tabula/internal/arrangement"

// Config is the top-level configuration document.
type Config struct {
	Table   TableConfig    `yaml:"table"`
	Colors  ColorConfig    `yaml:"colors"`
	Input   InputConfig    `yaml:"input"`
	Columns []ColumnConfig `yaml:"columns,omitempty"`
}

// TableConfig holds table-wide layout settings.
type TableConfig struct {
	Preset      string               `yaml:"preset,omitempty"`
	Arrangement string               `yaml:"arrangement,omitempty"`
	Width       *int                 `yaml:"width,omitempty"` // unset or 0 means detect from the terminal
	Padding     *arrangement.Padding `yaml:"padding,omitempty"`
	Delimiter   string               `yaml:"delimiter,omitempty"`
	ShowHeader  *bool                `yaml:"show_header,omitempty"`
}

// ColorConfig controls ANSI styling of the header and borders.
type ColorConfig struct {
	Enabled    *bool  `yaml:"enabled,omitempty"`
	Header     string `yaml:"header,omitempty"` // lipgloss color: ANSI index or #rrggbb
	HeaderBold *bool  `yaml:"header_bold,omitempty"`
	Border     string `yaml:"border,omitempty"`
}

// InputConfig sets how input documents are parsed.
type InputConfig struct {
	Format string `yaml:"format,omitempty"`
}

// ColumnConfig overrides settings of the column whose header is Name.
type ColumnConfig struct {
	Name       string               `yaml:"name"`
	Constraint string               `yaml:"constraint,omitempty"`
	Align      string               `yaml:"align,omitempty"`
	Padding    *arrangement.Padding `yaml:"padding,omitempty"`
	Delimiter  string               `yaml:"delimiter,omitempty"`
}

// Column returns the settings for the named column.
func (c Config) Column(name string) (ColumnConfig, bool) {
	for _, col := range c.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return ColumnConfig{}, false
}

// Bool dereferences an optional flag.
func Bool(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
