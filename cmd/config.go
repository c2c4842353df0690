package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/tabula/internal/config"
)

var configDefaults bool

// configCmd prints the configuration tabula would run with.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the merged configuration",
	Long: `Print the configuration after merging the user config file over the built-in
defaults. With --defaults, print the built-in default file, comments included,
as a starting point for ~/.config/tabula/config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if configDefaults {
			_, err := out.Write(config.DefaultYAML())
			return err
		}

		cfg, err := config.Load(config.ResolvePath(configFile))
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return usageErrorf("invalid settings: %w", err)
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return enc.Close()
	},
}

func init() { //nolint:gochecknoinits
	configCmd.Flags().BoolVar(&configDefaults, "defaults", false, "print the built-in default config file")
}
