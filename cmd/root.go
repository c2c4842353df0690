// Package cmd implements the tabula command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tabula/internal/config"
	"github.com/oakwood-commons/tabula/internal/filter"
	"github.com/oakwood-commons/tabula/internal/limiter"
	"github.com/oakwood-commons/tabula/internal/terminal"
	"github.com/oakwood-commons/tabula/pkg/loader"
	"github.com/oakwood-commons/tabula/pkg/logger"
	"github.com/oakwood-commons/tabula/pkg/settings"
)

var (
	rootCtx = context.Background()

	configFile      string
	debug           bool
	noColor         bool
	noHeader        bool
	output          string
	inputFormat     string
	tableWidth      int
	arrangementMode string
	presetName      string
	paddingSpec     string
	delimiter       string
	constraintSpecs []string
	alignSpecs      []string
	hiddenColumns   []string
	filterExpr      string
	limitRecords    int
	offsetRecords   int
	tailRecords     int
)

// Output modes of the root command.
const (
	outputTable  = "table"
	outputLayout = "layout"
	outputHTML   = "html"
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [file]",
	Short: "Render JSON, YAML, TOML or CSV as a table fitted to the terminal",
	Long: `tabula reads structured data from a file or standard input and prints it as a
text table. Column widths are arranged to fit the terminal (or --width): narrow
columns keep their content width, the remaining space is shared by the wide
ones, and cells that do not fit are wrapped.

Per-column constraints control the arrangement:

  content      always use the content width
  N            exactly N cells wide, padding included
  min:N        at least N cells
  max:N        at most N cells
  N%           N percent of the table width
  min:N% / max:N%
  hidden       do not display the column`,
	Example: "\n  tabula people.csv\n  kubectl get pods -o json | tabula --filter '_.status.phase != \"Running\"'\n  tabula data.yaml --width 60 --constraint description=max:30 --hide id\n  tabula data.json --preset UTF8_FULL --align size=right\n  tabula data.json --output layout\n  tabula data.csv --output html > table.html\n",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// Map CLI debug flag to log level: debug => zap.DebugLevel (-1), else zap.InfoLevel (0)
		var level int8 = 0
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		run := settings.NewCliParams()
		run.MinLogLevel = level
		run.NoColor = noColor
		rootCtx = settings.IntoContext(logger.WithLogger(context.Background(), lgr), run)
	},
	RunE: runRoot,
}

func init() { //nolint:gochecknoinits
	rootCmd.Flags().StringVarP(&output, "output", "o", outputTable, "output: table|layout|html (layout prints the computed column widths as YAML)")
	rootCmd.Flags().StringVarP(&inputFormat, "format", "f", "", "input format: auto|json|ndjson|yaml|toml|csv (default from config or auto)")
	rootCmd.Flags().IntVarP(&tableWidth, "width", "w", 0, "table width in cells; 0 detects the terminal width (unlimited when not a terminal)")
	rootCmd.Flags().StringVarP(&arrangementMode, "arrangement", "a", "", "column arrangement: dynamic|disabled (default from config)")
	rootCmd.Flags().StringVarP(&presetName, "preset", "p", "", "border preset name or 19-character preset string (see 'tabula presets')")
	rootCmd.Flags().StringArrayVarP(&constraintSpecs, "constraint", "c", nil, "column constraint as NAME=SPEC, e.g. description=max:40% (repeatable)")
	rootCmd.Flags().StringArrayVar(&alignSpecs, "align", nil, "column alignment as NAME=left|right|center (repeatable)")
	rootCmd.Flags().StringArrayVar(&hiddenColumns, "hide", nil, "hide a column by name or 1-based number (repeatable)")
	rootCmd.Flags().StringVar(&paddingSpec, "padding", "", "cell padding as LEFT,RIGHT or a single value for both")
	rootCmd.Flags().StringVar(&delimiter, "delimiter", "", "character long cells are preferably wrapped on (default space)")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "do not draw the header row")
	rootCmd.Flags().StringVar(&filterExpr, "filter", "", "CEL expression selecting rows, e.g. '_.age > 30' or 'cells[0] == \"x\"'")
	rootCmd.Flags().IntVar(&limitRecords, "limit", 0, "Limit total number of rows displayed")
	rootCmd.Flags().IntVar(&offsetRecords, "offset", 0, "Skip the first N rows")
	rootCmd.Flags().IntVar(&tailRecords, "tail", 0, "Show the last N rows (mutually exclusive with --limit; ignores --offset)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to a YAML config file (default $XDG_CONFIG_HOME/tabula/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to stderr")

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%w", err)
	})
	rootCmd.AddCommand(versionCmd, presetsCmd, configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	lgr := logger.FromContext(rootCtx)

	limitCfg := limiter.Config{
		Limit:  limitRecords,
		Offset: offsetRecords,
		Tail:   tailRecords,
	}
	if err := limitCfg.Validate(); err != nil {
		return usageErrorf("record limiting error: %w", err)
	}
	switch output {
	case outputTable, outputLayout, outputHTML:
	default:
		return usageErrorf("invalid --output %q (expected %s, %s or %s)", output, outputTable, outputLayout, outputHTML)
	}

	cfgPath := config.ResolvePath(configFile)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	lgr.V(1).Info("loaded config", "path", cfgPath)
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return usageErrorf("invalid settings: %w", err)
	}

	var rowFilter *filter.Filter
	if strings.TrimSpace(filterExpr) != "" {
		if rowFilter, err = filter.Compile(filterExpr); err != nil {
			return usageErrorf("invalid --filter: %w", err)
		}
	}

	if len(args) == 0 && readsTerminal(cmd.InOrStdin()) {
		return cmd.Help()
	}
	data, err := loadInput(cmd.InOrStdin(), args, cfg.Input.Format)
	if err != nil {
		return err
	}
	lgr.V(1).Info("loaded input", logger.InputKey, inputName(args), logger.ColumnCountKey, len(data.Header), logger.RowCountKey, len(data.Rows))

	if rowFilter != nil {
		if err := rowFilter.CheckColumns(data.Header); err != nil {
			return usageErrorf("invalid --filter: %w", err)
		}
		if data.Rows, err = rowFilter.Apply(data.Header, data.Rows); err != nil {
			return fmt.Errorf("filter %q: %w", rowFilter, err)
		}
	}
	data.Rows = limiter.Apply(limitCfg, data.Rows)

	out := cmd.OutOrStdout()
	t, err := buildTable(cfg, data, out != io.Writer(os.Stdout))
	if err != nil {
		return err
	}

	switch output {
	case outputLayout:
		return writeLayout(out, t)
	case outputHTML:
		return writeHTML(out, t)
	}
	for _, line := range t.Render(rootCtx) {
		fmt.Fprintln(out, line)
	}
	return nil
}

// readsTerminal reports whether r is an interactive terminal, in which case
// there is no piped input to read.
func readsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && terminal.Default.IsTTY(int(f.Fd()))
}

func inputName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "stdin"
	}
	return args[0]
}

// loadInput reads the file named in args, or stdin when there is none or it
// is "-".
func loadInput(stdin io.Reader, args []string, formatName string) (*loader.Table, error) {
	format, err := loader.ParseFormat(formatName)
	if err != nil {
		return nil, usageErrorf("%w", err)
	}
	if len(args) > 0 && args[0] != "-" {
		data, err := loader.LoadTableFile(args[0], format)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", args[0], err)
		}
		return data, nil
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	data, err := loader.LoadTable(string(raw), format)
	if err != nil {
		return nil, fmt.Errorf("load stdin: %w", err)
	}
	return data, nil
}
