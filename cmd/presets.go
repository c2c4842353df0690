package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tabula/internal/style"
	"github.com/oakwood-commons/tabula/pkg/table"
)

var presetsNamesOnly bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List border presets with a sample of each",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for i, name := range style.PresetNames() {
			if presetsNamesOnly {
				fmt.Fprintln(out, name)
				continue
			}
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, name)
			sample, err := presetSample(name)
			if err != nil {
				return err
			}
			for _, line := range sample.Render(rootCtx) {
				fmt.Fprintln(out, "  "+line)
			}
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits
	presetsCmd.Flags().BoolVar(&presetsNamesOnly, "names", false, "print only the preset names")
}

func presetSample(name string) (*table.Table, error) {
	t := table.New().ForceNoTTY()
	if err := t.LoadPreset(name); err != nil {
		return nil, err
	}
	t.SetHeader("name", "size").
		AddRow("alpha", "12").
		AddRow("beta", "3")
	t.Column(1).SetCellAlignment(style.AlignRight)
	return t, nil
}
