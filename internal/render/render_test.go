package render

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/tabula/internal/arrangement"
	"github.com/oakwood-commons/tabula/internal/content"
	"github.com/oakwood-commons/tabula/internal/style"
)

var padOne = arrangement.Padding{Left: 1, Right: 1}

// arrange measures header and rows the way the table package does and runs
// the arrangement for the given preset.
func arrange(t *testing.T, st style.Style, header []string, rows [][]string, width int, cons ...arrangement.Constraint) []arrangement.DisplayInfo {
	t.Helper()
	n := len(header)
	cols := make([]arrangement.Column, n)
	for i := range cols {
		cols[i].Padding = padOne
		cols[i].MaxContentWidth = content.MaxWidth(header[i])
		for _, r := range rows {
			if i < len(r) {
				if w := content.MaxWidth(r[i]); w > cols[i].MaxContentWidth {
					cols[i].MaxContentWidth = w
				}
			}
		}
		if i < len(cons) {
			cols[i].Constraint = cons[i]
		}
	}
	return arrangement.Arrange(arrangement.Description{
		Columns:    cols,
		Width:      width,
		WidthKnown: width > 0,
		Mode:       arrangement.Dynamic,
		Borders:    arrangement.BordersFor(st),
	})
}

func TestLinesASCIIFull(t *testing.T) {
	st := style.MustPreset(style.ASCIIFull)
	header := []string{"a", "bb"}
	rows := [][]string{{"ccc", "d"}, {"e", "ff"}}
	got := Lines(arrange(t, st, header, rows, 0), Options{Style: st, Header: header, Rows: rows})

	want := []string{
		"+-----+----+",
		"| a   | bb |",
		"+=====+====+",
		"| ccc | d  |",
		"|-----+----|",
		"| e   | ff |",
		"+-----+----+",
	}
	assert.Equal(t, want, got)
}

func TestLinesMarkdown(t *testing.T) {
	st := style.MustPreset(style.ASCIIMarkdown)
	header := []string{"a", "bb"}
	rows := [][]string{{"ccc", "d"}}
	got := strings.Join(Lines(arrange(t, st, header, rows, 0), Options{Style: st, Header: header, Rows: rows}), "\n")

	assert.Equal(t, "| a   | bb |\n|-----|----|\n| ccc | d  |", got)
}

func TestLinesNothingPreset(t *testing.T) {
	st := style.MustPreset(style.Nothing)
	rows := [][]string{{"a", "bb"}}
	got := Lines(arrange(t, st, []string{"", ""}, rows, 0), Options{Style: st, Rows: rows})
	assert.Equal(t, []string{" a  bb "}, got)
}

func TestLinesWrapsToArrangedWidth(t *testing.T) {
	st := style.MustPreset(style.ASCIIFull)
	header := []string{"name", "description"}
	rows := [][]string{{"x", "the quick brown fox"}}
	infos := arrange(t, st, header, rows, 20)
	require.True(t, infos[1].NeedsSplitting)

	got := Lines(infos, Options{Style: st, Header: header, Rows: rows})
	want := []string{
		"+------+-----------+",
		"| name | descripti |",
		"|      | on        |",
		"+======+===========+",
		"| x    | the quick |",
		"|      | brown fox |",
		"+------+-----------+",
	}
	assert.Equal(t, want, got)
	for _, line := range got {
		assert.Equal(t, 20, content.Width(line), line)
	}
}

func TestLinesSkipsHiddenColumns(t *testing.T) {
	st := style.MustPreset(style.ASCIIFull)
	header := []string{"id", "secret", "name"}
	rows := [][]string{{"1", "hunter2", "alice"}}
	infos := arrange(t, st, header, rows, 0, arrangement.Constraint{}, arrangement.Hide())

	out := strings.Join(Lines(infos, Options{Style: st, Header: header, Rows: rows}), "\n")
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "| 1  | alice |")
}

func TestLinesAlignment(t *testing.T) {
	st := style.MustPreset(style.Nothing)
	rows := [][]string{{"1"}, {"100"}}
	infos := arrange(t, st, []string{"count"}, rows, 0)
	infos[0].CellAlignment = style.AlignRight

	got := Lines(infos, Options{Style: st, Rows: rows})
	assert.Equal(t, []string{"     1 ", "   100 "}, got)
}

func TestLinesMultilineCells(t *testing.T) {
	st := style.MustPreset(style.UTF8Full)
	rows := [][]string{{"one\ntwo", "x"}}
	infos := arrange(t, st, []string{"", ""}, rows, 0)

	got := Lines(infos, Options{Style: st, Rows: rows})
	require.Len(t, got, 4)
	assert.Equal(t, "│ one ┆ x │", got[1])
	assert.Equal(t, "│ two ┆   │", got[2])
}

func TestLinesHeaderStyle(t *testing.T) {
	st := style.MustPreset(style.ASCIIFull)
	header := []string{"a"}
	rows := [][]string{{"b"}}
	bold := lipgloss.NewStyle().Bold(true)

	got := Lines(arrange(t, st, header, rows, 0), Options{Style: st, Header: header, Rows: rows, HeaderStyle: &bold})
	require.Len(t, got, 5)
	assert.True(t, strings.Contains(got[1], "\x1b["), "header should carry ANSI styling")
	assert.Equal(t, "| b |", got[3])
	assert.Equal(t, content.Width(got[3]), content.Width(got[1]))
}

func TestLinesNoVisibleColumns(t *testing.T) {
	st := style.MustPreset(style.ASCIIFull)
	rows := [][]string{{"a"}}
	infos := arrange(t, st, []string{"h"}, rows, 0, arrangement.Hide())
	assert.Nil(t, Lines(infos, Options{Style: st, Rows: rows}))
}

func TestPresetRenderings(t *testing.T) {
	header := []string{"Header1", "Header2", "Header3"}
	rows := [][]string{
		{"One One", "One Two", "One Three"},
		{"One One", "One Two", "One Three"},
	}
	tests := []struct {
		preset string
		// trim drops trailing blanks from each line before comparing.
		trim bool
		want []string
	}{
		{
			preset: style.ASCIINoBorders,
			trim:   true,
			want: []string{
				" Header1 | Header2 | Header3",
				"===============================",
				" One One | One Two | One Three",
				"---------+---------+-----------",
				" One One | One Two | One Three",
			},
		},
		{
			preset: style.ASCIIBordersOnly,
			want: []string{
				"+-------------------------------+",
				"| Header1   Header2   Header3   |",
				"+===============================+",
				"| One One   One Two   One Three |",
				"|                               |",
				"| One One   One Two   One Three |",
				"+-------------------------------+",
			},
		},
		{
			preset: style.ASCIIHorizontalOnly,
			trim:   true,
			want: []string{
				"-------------------------------",
				" Header1   Header2   Header3",
				"===============================",
				" One One   One Two   One Three",
				"-------------------------------",
				" One One   One Two   One Three",
				"-------------------------------",
			},
		},
		{
			preset: style.ASCIIMarkdown,
			want: []string{
				"| Header1 | Header2 | Header3   |",
				"|---------|---------|-----------|",
				"| One One | One Two | One Three |",
				"| One One | One Two | One Three |",
			},
		},
		{
			preset: style.UTF8Full,
			want: []string{
				"┌─────────┬─────────┬───────────┐",
				"│ Header1 ┆ Header2 ┆ Header3   │",
				"╞═════════╪═════════╪═══════════╡",
				"│ One One ┆ One Two ┆ One Three │",
				"├╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌┤",
				"│ One One ┆ One Two ┆ One Three │",
				"└─────────┴─────────┴───────────┘",
			},
		},
		{
			preset: style.UTF8NoBorders,
			trim:   true,
			want: []string{
				" Header1 ┆ Header2 ┆ Header3",
				"═════════╪═════════╪═══════════",
				" One One ┆ One Two ┆ One Three",
				"╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌",
				" One One ┆ One Two ┆ One Three",
			},
		},
		{
			preset: style.UTF8BordersOnly,
			want: []string{
				"┌───────────────────────────────┐",
				"│ Header1   Header2   Header3   │",
				"╞═══════════════════════════════╡",
				"│ One One   One Two   One Three │",
				"│ One One   One Two   One Three │",
				"└───────────────────────────────┘",
			},
		},
		{
			preset: style.UTF8HorizontalOnly,
			trim:   true,
			want: []string{
				"───────────────────────────────",
				" Header1   Header2   Header3",
				"═══════════════════════════════",
				" One One   One Two   One Three",
				"───────────────────────────────",
				" One One   One Two   One Three",
				"───────────────────────────────",
			},
		},
	}
	for _, tt := range tests {
		st := style.MustPreset(tt.preset)
		t.Run(st.Name(), func(t *testing.T) {
			got := Lines(arrange(t, st, header, rows, 0), Options{Style: st, Header: header, Rows: rows})
			if tt.trim {
				for i, line := range got {
					got[i] = strings.TrimRight(line, " ")
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
