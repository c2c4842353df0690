// Package table builds and renders text tables whose columns are fitted to
// a target width.
//
//	t := table.New().SetHeader("name", "description")
//	t.AddRow("tabula", "renders tables in the terminal")
//	t.Column(1).SetConstraint(table.MaxWidth(30))
//	fmt.Println(t)
//
// The width is the explicit SetWidth value, or the terminal width when
// standard output is a terminal. Without a width, columns take their content
// width.
package table

import (
	"context"
	"os"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/tabula/internal/arrangement"
	"github.com/oakwood-commons/tabula/internal/content"
	"github.com/oakwood-commons/tabula/internal/render"
	"github.com/oakwood-commons/tabula/internal/style"
	"github.com/oakwood-commons/tabula/internal/terminal"
	"github.com/oakwood-commons/tabula/pkg/logger"
)

// DefaultPadding is the padding of new columns.
var DefaultPadding = arrangement.Padding{Left: 1, Right: 1}

// Table is a header, rows and per-column settings.
type Table struct {
	header  []string
	rows    [][]string
	columns []*Column

	style     style.Style
	mode      arrangement.Mode
	width     int
	widthSet  bool
	noTTY     bool
	styleTTY  bool
	headerSty *lipgloss.Style
	borderSty *lipgloss.Style

	detector terminal.Detector
	fd       int
}

// New returns an empty table drawn with the ASCII_FULL preset and dynamic
// arrangement.
func New() *Table {
	return &Table{
		style:    style.MustPreset(style.ASCIIFull),
		mode:     arrangement.Dynamic,
		detector: terminal.Default,
		fd:       int(os.Stdout.Fd()),
	}
}

// SetHeader sets the header cells. A nil or empty header draws no header.
func (t *Table) SetHeader(cells ...string) *Table {
	t.header = append([]string(nil), cells...)
	t.ensureColumns(len(cells))
	return t
}

// Header returns the header cells.
func (t *Table) Header() []string { return t.header }

// AddRow appends a row. Rows may have fewer cells than there are columns.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, append([]string(nil), cells...))
	t.ensureColumns(len(cells))
	return t
}

// AddRows appends several rows.
func (t *Table) AddRows(rows [][]string) *Table {
	for _, r := range rows {
		t.AddRow(r...)
	}
	return t
}

// Rows returns the body rows.
func (t *Table) Rows() [][]string { return t.rows }

// ColumnCount is the width in cells of the widest of header and rows.
func (t *Table) ColumnCount() int { return len(t.columns) }

func (t *Table) ensureColumns(n int) {
	for i := len(t.columns); i < n; i++ {
		t.columns = append(t.columns, newColumn(i))
	}
}

// Column returns the settings of column i, creating it and any columns
// before it. It returns nil for a negative index.
func (t *Table) Column(i int) *Column {
	if i < 0 {
		return nil
	}
	t.ensureColumns(i + 1)
	return t.columns[i]
}

// Columns returns all columns in order.
func (t *Table) Columns() []*Column { return t.columns }

// ColumnByName returns the column whose header cell is name.
func (t *Table) ColumnByName(name string) (*Column, bool) {
	for i, h := range t.header {
		if h == name {
			return t.columns[i], true
		}
	}
	return nil, false
}

// SetConstraints sets the constraint of each column in order. Extra
// constraints create columns.
func (t *Table) SetConstraints(cons []arrangement.Constraint) *Table {
	for i, c := range cons {
		t.Column(i).SetConstraint(c)
	}
	return t
}

// SetWidth fixes the target table width in terminal cells.
func (t *Table) SetWidth(w int) *Table {
	t.width = max(w, 0)
	t.widthSet = true
	return t
}

// Width returns the target width and whether one is known.
func (t *Table) Width() (int, bool) {
	if t.widthSet {
		return t.width, true
	}
	if t.noTTY {
		return 0, false
	}
	return t.detector.Width(t.fd)
}

// SetArrangement selects how columns are fitted.
func (t *Table) SetArrangement(m arrangement.Mode) *Table {
	t.mode = m
	return t
}

// ArrangementMode returns the selected arrangement.
func (t *Table) ArrangementMode() arrangement.Mode { return t.mode }

// LoadPreset switches the border characters to a named preset or a literal
// preset string.
func (t *Table) LoadPreset(preset string) error {
	s, err := style.Lookup(preset)
	if err != nil {
		return err
	}
	t.style = s
	return nil
}

// SetStyle replaces the border characters.
func (t *Table) SetStyle(s style.Style) *Table {
	t.style = s
	return t
}

// Style returns the border characters in use.
func (t *Table) Style() style.Style { return t.style }

// ForceNoTTY ignores the terminal: no width detection and no styling unless
// EnforceStyling is set.
func (t *Table) ForceNoTTY() *Table {
	t.noTTY = true
	return t
}

// IsTTY reports whether output is treated as a terminal.
func (t *Table) IsTTY() bool {
	return !t.noTTY && t.detector.IsTTY(t.fd)
}

// EnforceStyling applies header and border styles even when output is not
// a terminal.
func (t *Table) EnforceStyling() *Table {
	t.styleTTY = true
	return t
}

// SetStyleColors sets the lipgloss styles of header cells and border
// characters. Nil leaves that part unstyled.
func (t *Table) SetStyleColors(header, border *lipgloss.Style) *Table {
	t.headerSty = header
	t.borderSty = border
	return t
}

func (t *Table) stylingEnabled() bool {
	return t.styleTTY || t.IsTTY()
}

// description measures every column and assembles the arrangement input.
func (t *Table) description() arrangement.Description {
	widths := make([]int, len(t.columns))
	measure := func(cells []string) {
		for i, c := range cells {
			if w := content.MaxWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.header)
	for _, r := range t.rows {
		measure(r)
	}

	cols := make([]arrangement.Column, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c.describe(widths[i])
	}
	width, known := t.Width()
	return arrangement.Description{
		Columns:    cols,
		Width:      width,
		WidthKnown: known,
		Mode:       t.mode,
		Borders:    arrangement.BordersFor(t.style),
	}
}

// Arrangement returns the layout the next render would use, one entry per
// column.
func (t *Table) Arrangement() []arrangement.DisplayInfo {
	return arrangement.Arrange(t.description())
}

// Render lays out and draws the table. Decisions are logged at V(1) on the
// logger in ctx.
func (t *Table) Render(ctx context.Context) []string {
	desc := t.description()
	infos := arrangement.Arrange(desc)

	lgr := logger.FromContext(ctx)
	if v := lgr.V(1); v.Enabled() {
		widths := make([]int, len(infos))
		layout := make([]map[string]any, len(infos))
		for i, info := range infos {
			widths[i] = info.Width()
			layout[i] = info.Summary()
		}
		v.Info("arranged table",
			logger.PresetKey, t.style.Name(),
			logger.ArrangementKey, desc.Mode.String(),
			logger.TableWidthKey, desc.Width,
			"width_known", desc.WidthKnown,
			logger.ColumnCountKey, len(infos),
			logger.RowCountKey, len(t.rows),
			"column_widths", widths,
			"total_width", arrangement.TotalWidth(infos, desc.Borders),
			"layout", layout,
		)
	}

	opts := render.Options{Style: t.style, Rows: t.rows}
	if len(t.header) > 0 {
		opts.Header = t.header
	}
	if t.stylingEnabled() {
		opts.HeaderStyle = t.headerSty
		opts.BorderStyle = t.borderSty
	}
	return render.Lines(infos, opts)
}

// String renders the table with a background context.
func (t *Table) String() string {
	return strings.Join(t.Render(context.Background()), "\n")
}
