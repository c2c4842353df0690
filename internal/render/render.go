// Package render draws an arranged table as lines of text.
package render

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/tabula/internal/arrangement"
	"github.com/oakwood-commons/tabula/internal/content"
	"github.com/oakwood-commons/tabula/internal/style"
)

// Options configures a single render.
type Options struct {
	Style style.Style
	// Header is drawn above the body, followed by the header line. Nil means no header.
	Header []string
	Rows   [][]string
	// HeaderStyle, when set, is applied to every header cell.
	HeaderStyle *lipgloss.Style
	// BorderStyle, when set, is applied to border and separator characters.
	BorderStyle *lipgloss.Style
}

type grid struct {
	opts    Options
	infos   []arrangement.DisplayInfo
	visible []int
}

// Lines renders the table described by infos and opts. Hidden columns are
// skipped; cells wider than their column are wrapped.
func Lines(infos []arrangement.DisplayInfo, opts Options) []string {
	g := grid{opts: opts, infos: infos}
	for i, info := range infos {
		if !info.IsHidden() {
			g.visible = append(g.visible, i)
		}
	}
	if len(g.visible) == 0 {
		return nil
	}

	s := opts.Style
	var out []string
	if s.DrawTopBorder() {
		out = append(out, g.borderLine(style.TopLeftCorner, style.TopBorder, style.TopBorderIntersections, style.TopRightCorner))
	}
	if opts.Header != nil {
		out = append(out, g.rowLines(opts.Header, opts.HeaderStyle)...)
		if s.DrawHeaderLine() {
			out = append(out, g.borderLine(style.LeftHeaderIntersection, style.HeaderLines, style.MiddleHeaderIntersections, style.RightHeaderIntersection))
		}
	}
	for i, row := range opts.Rows {
		if i > 0 && s.DrawHorizontalLines() {
			out = append(out, g.borderLine(style.LeftBorderIntersections, style.HorizontalLines, style.MiddleIntersections, style.RightBorderIntersections))
		}
		out = append(out, g.rowLines(row, nil)...)
	}
	if s.DrawBottomBorder() {
		out = append(out, g.borderLine(style.BottomLeftCorner, style.BottomBorder, style.BottomBorderIntersections, style.BottomRightCorner))
	}
	return out
}

func (g grid) border(r rune) string {
	s := string(r)
	if g.opts.BorderStyle != nil && r != ' ' {
		return g.opts.BorderStyle.Render(s)
	}
	return s
}

// borderLine draws a horizontal rule using fill for column spans, mid between
// columns and left/right at the edges.
func (g grid) borderLine(left, fill, mid, right style.TableComponent) string {
	s := g.opts.Style
	var b strings.Builder
	if s.DrawLeftBorder() {
		b.WriteString(g.border(s.CharOrSpace(left)))
	}
	fillChar := s.CharOrSpace(fill)
	for n, idx := range g.visible {
		if n > 0 && s.DrawVerticalLines() {
			b.WriteString(g.border(s.CharOrSpace(mid)))
		}
		b.WriteString(g.repeatBorder(fillChar, g.infos[idx].Width()))
	}
	if s.DrawRightBorder() {
		b.WriteString(g.border(s.CharOrSpace(right)))
	}
	return b.String()
}

func (g grid) repeatBorder(r rune, n int) string {
	run := strings.Repeat(string(r), n)
	if g.opts.BorderStyle != nil && r != ' ' {
		return g.opts.BorderStyle.Render(run)
	}
	return run
}

// rowLines lays out one row. Each visible cell becomes a list of padded lines;
// shorter cells are filled with blank lines to the row's height.
func (g grid) rowLines(cells []string, cellStyle *lipgloss.Style) []string {
	columns := make([][]string, len(g.visible))
	height := 0
	for n, idx := range g.visible {
		text := ""
		if idx < len(cells) {
			text = cells[idx]
		}
		columns[n] = formatCell(text, g.infos[idx])
		if len(columns[n]) > height {
			height = len(columns[n])
		}
	}

	s := g.opts.Style
	lines := make([]string, height)
	for line := 0; line < height; line++ {
		var b strings.Builder
		if s.DrawLeftBorder() {
			b.WriteString(g.border(s.CharOrSpace(style.LeftBorder)))
		}
		for n, idx := range g.visible {
			if n > 0 && s.DrawVerticalLines() {
				b.WriteString(g.border(s.CharOrSpace(style.VerticalLines)))
			}
			cell := strings.Repeat(" ", g.infos[idx].Width())
			if line < len(columns[n]) {
				cell = columns[n][line]
			}
			if cellStyle != nil {
				cell = cellStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		if s.DrawRightBorder() {
			b.WriteString(g.border(s.CharOrSpace(style.RightBorder)))
		}
		lines[line] = b.String()
	}
	return lines
}

// formatCell wraps text to the column's content width and pads every line to
// the column's full width.
func formatCell(text string, info arrangement.DisplayInfo) []string {
	width := info.ContentWidth()
	var pieces []string
	for _, line := range content.Lines(text) {
		if info.NeedsSplitting && content.Width(line) > width {
			pieces = append(pieces, content.Split(line, width, info.Delimiter)...)
			continue
		}
		pieces = append(pieces, line)
	}

	left := strings.Repeat(" ", info.Padding.Left)
	right := strings.Repeat(" ", info.Padding.Right)
	out := make([]string, len(pieces))
	for i, p := range pieces {
		if content.Width(p) > width {
			p = content.Truncate(p, width, "")
		}
		out[i] = left + content.Pad(p, width, info.CellAlignment) + right
	}
	return out
}
