// Package content measures and reshapes cell text for fixed-width columns.
package content

import (
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/tabula/internal/style"
)

// Width returns the display width of s. Text carrying ANSI escape sequences
// is measured with lipgloss so the sequences take no space.
func Width(s string) int {
	if strings.ContainsRune(s, '\x1b') {
		return lipgloss.Width(s)
	}
	return runewidth.StringWidth(s)
}

// Lines splits cell text on newlines. A trailing carriage return is dropped.
func Lines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// MaxWidth returns the widest line of s.
func MaxWidth(s string) int {
	widest := 0
	for _, l := range Lines(s) {
		if w := Width(l); w > widest {
			widest = w
		}
	}
	return widest
}

// Truncate cuts s to at most width display columns, appending tail when it
// fits. Wide runes are never split.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	if Width(tail) >= width {
		tail = ""
	}
	return runewidth.Truncate(s, width, tail)
}

// Pad places s inside width columns according to align. Text wider than
// width is returned unchanged.
func Pad(s string, width int, align style.CellAlignment) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case style.AlignRight:
		return strings.Repeat(" ", gap) + s
	case style.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
