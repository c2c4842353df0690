package content

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"
)

// Split wraps one line of text into pieces no wider than width. Words are
// separated by delimiter (space when 0) and kept whole where possible; a word
// wider than width is broken at the last rune that still fits. A rune wider
// than width is emitted on its own line so wrapping always makes progress.
func Split(line string, width int, delimiter rune) []string {
	if width < 1 {
		width = 1
	}
	if delimiter == 0 {
		delimiter = ' '
	}
	if Width(line) <= width {
		return []string{line}
	}

	delimWidth := runewidth.RuneWidth(delimiter)
	var (
		out     []string
		current strings.Builder
		curW    int
		started bool
	)
	flush := func() {
		out = append(out, current.String())
		current.Reset()
		curW = 0
		started = false
	}

	for _, word := range strings.Split(line, string(delimiter)) {
		wordW := Width(word)
		if started {
			if curW+delimWidth+wordW <= width {
				current.WriteRune(delimiter)
				current.WriteString(word)
				curW += delimWidth + wordW
				continue
			}
			flush()
		}
		for wordW > width {
			head, rest := splitAtWidth(word, width)
			out = append(out, head)
			word = rest
			wordW = Width(word)
		}
		current.WriteString(word)
		curW = wordW
		started = true
	}
	if started && (curW > 0 || len(out) == 0) {
		flush()
	}
	return out
}

// splitAtWidth returns the longest prefix of s that fits width and the rest.
// At least one rune is always taken. Escape sequences in styled text take
// no width.
func splitAtWidth(s string, width int) (string, string) {
	if strings.ContainsRune(s, '\x1b') {
		if head := ansi.Cut(s, 0, width); ansi.StringWidth(head) > 0 {
			return head, ansi.Cut(s, width, ansi.StringWidth(s))
		}
	}
	used := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width && i > 0 {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}
