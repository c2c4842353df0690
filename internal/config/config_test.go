package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/tabula/internal/arrangement"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "ASCII_FULL", cfg.Table.Preset)
	assert.Equal(t, "dynamic", cfg.Table.Arrangement)
	assert.Nil(t, cfg.Table.Width)
	require.NotNil(t, cfg.Table.Padding)
	assert.Equal(t, arrangement.Padding{Left: 1, Right: 1}, *cfg.Table.Padding)
	assert.True(t, Bool(cfg.Table.ShowHeader, false))
	assert.True(t, Bool(cfg.Colors.Enabled, false))
	assert.Empty(t, cfg.Columns)
	require.NoError(t, cfg.Validate())
	assert.NotEmpty(t, DefaultYAML())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestLoadMergesOverrides(t *testing.T) {
	path := writeConfig(t, `table:
  preset: utf8_full
  width: 100
colors:
  enabled: false
columns:
  - name: description
    constraint: "max:40%"
  - name: id
    constraint: hidden
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "utf8_full", cfg.Table.Preset)
	assert.Equal(t, "dynamic", cfg.Table.Arrangement, "unset keys keep defaults")
	require.NotNil(t, cfg.Table.Width)
	assert.Equal(t, 100, *cfg.Table.Width)
	assert.False(t, Bool(cfg.Colors.Enabled, true))
	assert.Equal(t, "12", cfg.Colors.Header)

	col, ok := cfg.Column("description")
	require.True(t, ok)
	assert.Equal(t, "max:40%", col.Constraint)
	_, ok = cfg.Column("missing")
	assert.False(t, ok)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "ASCII_FULL", cfg.Table.Preset)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "table:\n  prest: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prest")
}

func TestMergeColumns(t *testing.T) {
	base := Config{Columns: []ColumnConfig{{Name: "a", Constraint: "10", Align: "right"}}}
	override := Config{Columns: []ColumnConfig{
		{Name: "a", Constraint: "min:5"},
		{Name: "b", Align: "center"},
	}}

	got := Merge(base, override)
	assert.Equal(t, []ColumnConfig{
		{Name: "a", Constraint: "min:5", Align: "right"},
		{Name: "b", Align: "center"},
	}, got.Columns)
	assert.Equal(t, "10", base.Columns[0].Constraint, "base is not modified")
}

func TestValidate(t *testing.T) {
	width := -1
	cfg := Config{
		Table: TableConfig{
			Preset:      "FANCY",
			Arrangement: "sideways",
			Width:       &width,
			Padding:     &arrangement.Padding{Left: -1},
			Delimiter:   "ab",
		},
		Input: InputConfig{Format: "xml"},
		Columns: []ColumnConfig{
			{Constraint: "min:x", Align: "middle"},
		},
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"table.preset",
		"table.arrangement",
		"table.width",
		"table.padding",
		"table.delimiter",
		"input.format",
		"columns[0].name is required",
		"columns[0].constraint",
		"columns[0].align",
	} {
		assert.Contains(t, err.Error(), want)
	}
	assert.ErrorIs(t, err, arrangement.ErrInvalidConstraint)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/explicit.yaml", ResolvePath("/explicit.yaml"))

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	assert.Equal(t, "", ResolvePath(""), "missing file resolves to nothing")

	dir := filepath.Join(xdg, AppDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	want := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(want, []byte("{}\n"), 0o600))
	assert.Equal(t, want, ResolvePath(""))
}

func TestDelimiter(t *testing.T) {
	assert.Equal(t, rune(0), Delimiter(""))
	assert.Equal(t, ',', Delimiter(","))
	assert.Equal(t, '│', Delimiter("│"))
}
