package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/tabula/internal/arrangement"
	"github.com/oakwood-commons/tabula/internal/style"
	"github.com/oakwood-commons/tabula/pkg/loader"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// AppDirName is the directory under $XDG_CONFIG_HOME holding config.yaml.
const AppDirName = "tabula"

// DefaultYAML returns a copy of the embedded default config.
func DefaultYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default parses the embedded default config.
func Default() (Config, error) {
	var cfg Config
	if len(embeddedDefaultConfig) == 0 {
		return cfg, fmt.Errorf("embedded default config is empty")
	}
	if err := yaml.Unmarshal(embeddedDefaultConfig, &cfg); err != nil {
		return cfg, fmt.Errorf("decode default config: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults merged with the file at path. An empty path
// yields the defaults alone.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var user Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&user); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return Merge(cfg, user), nil
}

// ResolvePath returns the explicit path if set, otherwise
// $XDG_CONFIG_HOME/tabula/config.yaml or ~/.config/tabula/config.yaml when
// that file exists. It returns "" when there is no user config.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, AppDirName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", AppDirName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// Merge overlays the set fields of override onto base. Columns are matched
// by name; a column in override replaces the settings it sets and is
// appended when base has no column of that name.
func Merge(base, override Config) Config {
	cfg := base

	t := override.Table
	if t.Preset != "" {
		cfg.Table.Preset = t.Preset
	}
	if t.Arrangement != "" {
		cfg.Table.Arrangement = t.Arrangement
	}
	if t.Width != nil {
		cfg.Table.Width = t.Width
	}
	if t.Padding != nil {
		cfg.Table.Padding = t.Padding
	}
	if t.Delimiter != "" {
		cfg.Table.Delimiter = t.Delimiter
	}
	if t.ShowHeader != nil {
		cfg.Table.ShowHeader = t.ShowHeader
	}

	c := override.Colors
	if c.Enabled != nil {
		cfg.Colors.Enabled = c.Enabled
	}
	if c.Header != "" {
		cfg.Colors.Header = c.Header
	}
	if c.HeaderBold != nil {
		cfg.Colors.HeaderBold = c.HeaderBold
	}
	if c.Border != "" {
		cfg.Colors.Border = c.Border
	}

	if override.Input.Format != "" {
		cfg.Input.Format = override.Input.Format
	}

	cfg.Columns = append([]ColumnConfig(nil), base.Columns...)
	for _, col := range override.Columns {
		cfg.SetColumn(col)
	}
	return cfg
}

// SetColumn merges col into the column of the same name, adding it if absent.
func (c *Config) SetColumn(col ColumnConfig) {
	for i := range c.Columns {
		if c.Columns[i].Name != col.Name {
			continue
		}
		cur := &c.Columns[i]
		if col.Constraint != "" {
			cur.Constraint = col.Constraint
		}
		if col.Align != "" {
			cur.Align = col.Align
		}
		if col.Padding != nil {
			cur.Padding = col.Padding
		}
		if col.Delimiter != "" {
			cur.Delimiter = col.Delimiter
		}
		return
	}
	c.Columns = append(c.Columns, col)
}

// Validate reports every setting that would be rejected later, joined into
// one error.
func (c Config) Validate() error {
	var errs []error
	if _, err := style.Lookup(c.Table.Preset); err != nil {
		errs = append(errs, fmt.Errorf("table.preset: %w", err))
	}
	if _, err := arrangement.ParseMode(c.Table.Arrangement); err != nil {
		errs = append(errs, fmt.Errorf("table.arrangement: %w", err))
	}
	if c.Table.Width != nil && *c.Table.Width < 0 {
		errs = append(errs, fmt.Errorf("table.width must be non-negative, got %d", *c.Table.Width))
	}
	if err := validatePadding("table.padding", c.Table.Padding); err != nil {
		errs = append(errs, err)
	}
	if err := validateDelimiter("table.delimiter", c.Table.Delimiter); err != nil {
		errs = append(errs, err)
	}
	if _, err := loader.ParseFormat(c.Input.Format); err != nil {
		errs = append(errs, fmt.Errorf("input.format: %w", err))
	}
	for i, col := range c.Columns {
		field := fmt.Sprintf("columns[%d]", i)
		if col.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		}
		if _, err := arrangement.ParseConstraint(col.Constraint); err != nil {
			errs = append(errs, fmt.Errorf("%s.constraint: %w", field, err))
		}
		if _, err := style.ParseAlignment(col.Align); err != nil {
			errs = append(errs, fmt.Errorf("%s.align: %w", field, err))
		}
		if err := validatePadding(field+".padding", col.Padding); err != nil {
			errs = append(errs, err)
		}
		if err := validateDelimiter(field+".delimiter", col.Delimiter); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func validatePadding(field string, p *arrangement.Padding) error {
	if p != nil && (p.Left < 0 || p.Right < 0) {
		return fmt.Errorf("%s must be non-negative, got %d,%d", field, p.Left, p.Right)
	}
	return nil
}

func validateDelimiter(field, d string) error {
	if d != "" && utf8.RuneCountInString(d) != 1 {
		return fmt.Errorf("%s must be a single character, got %q", field, d)
	}
	return nil
}

// Delimiter returns the first rune of s, or 0 when s is empty.
func Delimiter(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return r
}
