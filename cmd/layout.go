package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/tabula/internal/arrangement"
	"github.com/oakwood-commons/tabula/pkg/table"
)

// layoutReport is the --output layout document.
type layoutReport struct {
	Preset      string         `yaml:"preset"`
	Arrangement string         `yaml:"arrangement"`
	Width       *int           `yaml:"width"`
	TotalWidth  int            `yaml:"total_width"`
	Columns     []layoutColumn `yaml:"columns"`
}

type layoutColumn struct {
	Index           int                    `yaml:"index"`
	Name            string                 `yaml:"name,omitempty"`
	Hidden          bool                   `yaml:"hidden,omitempty"`
	Width           int                    `yaml:"width"`
	ContentWidth    int                    `yaml:"content_width"`
	MaxContentWidth int                    `yaml:"max_content_width"`
	NeedsSplitting  bool                   `yaml:"needs_splitting,omitempty"`
	Constraint      arrangement.Constraint `yaml:"constraint,omitempty"`
	Alignment       string                 `yaml:"alignment,omitempty"`
}

func newLayoutReport(t *table.Table) layoutReport {
	infos := t.Arrangement()
	report := layoutReport{
		Preset:      presetLabel(t),
		Arrangement: t.ArrangementMode().String(),
		TotalWidth:  arrangement.TotalWidth(infos, arrangement.BordersFor(t.Style())),
		Columns:     make([]layoutColumn, len(infos)),
	}
	if w, ok := t.Width(); ok {
		report.Width = &w
	}
	header := t.Header()
	for i, info := range infos {
		col := layoutColumn{
			Index:           i,
			Hidden:          info.IsHidden(),
			Width:           info.Width(),
			ContentWidth:    info.ContentWidth(),
			MaxContentWidth: info.MaxContentWidth,
			NeedsSplitting:  info.NeedsSplitting,
			Constraint:      t.Column(i).Constraint(),
		}
		if i < len(header) {
			col.Name = header[i]
		}
		if a := info.CellAlignment.String(); a != "default" {
			col.Alignment = a
		}
		if col.Hidden {
			col.Width, col.ContentWidth = 0, 0
		}
		report.Columns[i] = col
	}
	return report
}

// presetLabel names the preset, falling back to its literal string.
func presetLabel(t *table.Table) string {
	if name := t.Style().Name(); name != "" {
		return name
	}
	return t.Style().Preset()
}

func writeLayout(w io.Writer, t *table.Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newLayoutReport(t)); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return enc.Close()
}
