package style

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in presets. Each string holds one rune per TableComponent, in the
// order the components are declared.
const (
	ASCIIFull                 = "||--+=++|-+||++++++"
	ASCIIFullCondensed        = "||--+=++|    ++++++"
	ASCIINoBorders            = "     == |-+        "
	ASCIIBordersOnly          = "||--+==+   ||--++++"
	ASCIIBordersOnlyCondensed = "||--+==+     --++++"
	ASCIIHorizontalOnly       = "  -- ==  --  --    "
	ASCIIMarkdown             = "||  |-|||          "
	UTF8Full                  = "││──╞═╪╡┆╌┼├┤┬┴┌┐└┘"
	UTF8FullCondensed         = "││──╞═╪╡┆    ┬┴┌┐└┘"
	UTF8NoBorders             = "     ═╪ ┆╌┼        "
	UTF8BordersOnly           = "││──╞══╡     ──┌┐└┘"
	UTF8HorizontalOnly        = "  ── ══  ──  ──    "
	Nothing                   = "                   "
)

var presets = map[string]string{
	"ASCII_FULL":                   ASCIIFull,
	"ASCII_FULL_CONDENSED":         ASCIIFullCondensed,
	"ASCII_NO_BORDERS":             ASCIINoBorders,
	"ASCII_BORDERS_ONLY":           ASCIIBordersOnly,
	"ASCII_BORDERS_ONLY_CONDENSED": ASCIIBordersOnlyCondensed,
	"ASCII_HORIZONTAL_ONLY":        ASCIIHorizontalOnly,
	"ASCII_MARKDOWN":               ASCIIMarkdown,
	"UTF8_FULL":                    UTF8Full,
	"UTF8_FULL_CONDENSED":          UTF8FullCondensed,
	"UTF8_NO_BORDERS":              UTF8NoBorders,
	"UTF8_BORDERS_ONLY":            UTF8BordersOnly,
	"UTF8_HORIZONTAL_ONLY":         UTF8HorizontalOnly,
	"NOTHING":                      Nothing,
}

// DefaultPresetName is used when no preset is configured.
const DefaultPresetName = "ASCII_FULL"

// PresetNames lists the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a preset by name (case-insensitive, '-' and '_' interchangeable).
// A 19-rune string that is not a known name is accepted as a literal preset.
func Lookup(name string) (Style, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	if p, ok := presets[key]; ok {
		return FromPreset(p)
	}
	// NOTHING is all blanks, so literal strings are tried before the default.
	if s, err := FromPreset(name); err == nil {
		return s, nil
	}
	if key == "" {
		return FromPreset(presets[DefaultPresetName])
	}
	return Style{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
}

// Name returns the built-in preset name matching s, or "" for a custom style.
func (s Style) Name() string {
	p := s.Preset()
	for name, preset := range presets {
		if preset == p {
			return name
		}
	}
	return ""
}
