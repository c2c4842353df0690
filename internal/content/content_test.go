package content

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/tabula/internal/style"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 5, Width("hello"))
	assert.Equal(t, 4, Width("中文"))
	assert.Equal(t, 3, Width("\x1b[1mabc\x1b[0m"))
	assert.Equal(t, 0, Width(""))
}

func TestLinesAndMaxWidth(t *testing.T) {
	assert.Equal(t, []string{"a", "bcd", ""}, Lines("a\r\nbcd\n"))
	assert.Equal(t, 3, MaxWidth("a\nbcd\nef"))
	assert.Equal(t, 0, MaxWidth(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5, "..."))
	assert.Equal(t, "he...", Truncate("hello world", 5, "..."))
	assert.Equal(t, "he", Truncate("hello", 2, "..."))
	assert.Equal(t, "中", Truncate("中文", 3, ""))
	assert.Equal(t, "", Truncate("hello", 0, ""))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5, style.AlignDefault))
	assert.Equal(t, "ab   ", Pad("ab", 5, style.AlignLeft))
	assert.Equal(t, "   ab", Pad("ab", 5, style.AlignRight))
	assert.Equal(t, " ab  ", Pad("ab", 5, style.AlignCenter))
	assert.Equal(t, "abcdef", Pad("abcdef", 3, style.AlignRight))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		width     int
		delimiter rune
		want      []string
	}{
		{name: "fits", line: "one two", width: 10, want: []string{"one two"}},
		{name: "word boundaries", line: "aa bb cc", width: 5, want: []string{"aa bb", "cc"}},
		{name: "long word is broken", line: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "long word then short", line: "abcdefg hi", width: 4, want: []string{"abcd", "efg", "hi"}},
		{name: "trailing delimiter dropped", line: "aaaa ", width: 4, want: []string{"aaaa"}},
		{name: "custom delimiter", line: "a/b/cccc", width: 4, delimiter: '/', want: []string{"a/b", "cccc"}},
		{name: "wide runes never split", line: "中文字", width: 3, want: []string{"中", "文", "字"}},
		{name: "zero width is treated as one", line: "abc", width: 0, want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.line, tt.width, tt.delimiter)
			assert.Equal(t, tt.want, got)
			for _, piece := range got {
				if Width(piece) > tt.width && tt.width > 0 {
					t.Fatalf("piece %q wider than %d", piece, tt.width)
				}
			}
		})
	}
}

func TestSplitStyledText(t *testing.T) {
	line := "\x1b[1mabcdefgh\x1b[0m"
	got := Split(line, 4, 0)
	require.Len(t, got, 2)

	var plain strings.Builder
	for _, piece := range got {
		assert.Equal(t, 4, Width(piece), "%q", piece)
		plain.WriteString(ansi.Strip(piece))
	}
	assert.Equal(t, "abcdefgh", plain.String())
}
