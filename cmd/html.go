package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/oakwood-commons/tabula/internal/arrangement"
	"github.com/oakwood-commons/tabula/internal/style"
	"github.com/oakwood-commons/tabula/pkg/table"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`",
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`, "&", `\&`, "~", `\~`,
	"\r\n", " ", "\n", " ",
)

// markdownTable redraws t with the ASCII_MARKDOWN preset and no width limit.
// Hidden columns stay hidden. A table without header gets its column
// numbers as header, since a markdown table needs one.
func markdownTable(t *table.Table) string {
	md := table.New().ForceNoTTY().SetArrangement(arrangement.Disabled).SetStyle(style.MustPreset(style.ASCIIMarkdown))

	header := make([]string, t.ColumnCount())
	for i := range header {
		if i < len(t.Header()) && t.Header()[i] != "" {
			header[i] = markdownEscaper.Replace(t.Header()[i])
		} else {
			header[i] = strconv.Itoa(i + 1)
		}
		if t.Column(i).IsHidden() {
			md.Column(i).SetConstraint(arrangement.Hide())
		}
	}
	md.SetHeader(header...)
	for _, row := range t.Rows() {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = markdownEscaper.Replace(c)
		}
		md.AddRow(cells...)
	}
	return md.String()
}

// writeHTML converts the markdown rendering of t to an HTML table.
func writeHTML(w io.Writer, t *table.Table) error {
	p := parser.NewWithExtensions(parser.Tables | parser.NoIntraEmphasis)
	r := html.NewRenderer(html.RendererOptions{Flags: html.FlagsNone})
	_, err := w.Write(markdown.ToHTML([]byte(markdownTable(t)+"\n"), p, r))
	return err
}
