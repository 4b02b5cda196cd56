// Package cmd implements the relchart CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/relchart/internal/chart"
	"github.com/theirongolddev/relchart/internal/cli"
	"github.com/theirongolddev/relchart/internal/config"
	"github.com/theirongolddev/relchart/internal/source"
	"github.com/theirongolddev/relchart/internal/theme"
)

var version = "dev"

const inputHelp = `
Standard input should contain up to 100 lines of 1-4 fields separated by
spaces. Input is truncated after 100 lines.

Either:

  1. Only data                 integer
  2. Labeled data              integer label
  3. Unlabeled comparison data integer integer
  4. Labeled comparison data   integer integer label

A label may contain spaces but must not end in an integer. If the first line
has a comparison value, every line must.`

// rootFlags holds command-line overrides. Only flags the user actually set
// replace config file values.
type rootFlags struct {
	configPath  string
	verbose     bool
	maxHeight   uint16
	viewTop     bool
	viewBottom  bool
	labelWidth  int
	groupDigits bool
	color       string
	theme       string
}

// Execute is the main entry point called from main.go.
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "relchart: %v\n", err)
		fmt.Fprintln(os.Stderr, "For more information try --help")
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		return 2
	}
	return 1
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:           "relchart",
		Short:         "Compact bar charts of small distributions",
		Long:          "Render word/frequency counts read from standard input as a compact text bar chart.\n" + inputHelp,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.WarnLevel
			if f.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChart(cmd, &f)
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.ConfigError{Reason: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Config file (default "+config.Path()+")")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	fl := root.Flags()
	fl.Uint16Var(&f.maxHeight, "max-height", chart.DefaultMaxHeight, "Maximum number of lines and bar length before scaling")
	fl.BoolVar(&f.viewTop, "view-top", false, "Keep the first records when there are too many to show")
	fl.BoolVar(&f.viewBottom, "view-bottom", false, "Keep the last records when there are too many to show (default)")
	fl.IntVar(&f.labelWidth, "label-width", 24, "Truncate labels to this many columns (0 = no limit)")
	fl.BoolVar(&f.groupDigits, "group-digits", false, "Show values with thousands separators")
	fl.StringVar(&f.color, "color", config.ColorAuto, "Colour output: auto, always or never")
	fl.StringVar(&f.theme, "theme", "", "Colour theme")

	root.AddCommand(newConfigCmd(&f))
	return root
}

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (config.Config, error) {
	if f.viewTop && f.viewBottom {
		return config.Config{}, &config.ConfigError{Flag: "view-top", Reason: "cannot be combined with --view-bottom"}
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	loggerFromContext(cmd.Context()).Debug("config", "path", configPathOrDefault(f.configPath), "loaded", config.Exists(f.configPath))

	changed := cmd.Flags().Changed
	if changed("max-height") {
		cfg.Chart.MaxHeight = int(f.maxHeight)
	}
	switch {
	case f.viewTop:
		cfg.Chart.View = chart.ViewTop.String()
	case f.viewBottom:
		cfg.Chart.View = chart.ViewBottom.String()
	}
	if changed("label-width") {
		cfg.Chart.LabelWidth = f.labelWidth
	}
	if changed("group-digits") {
		cfg.Chart.GroupDigits = f.groupDigits
	}
	if changed("color") {
		cfg.Appearance.Color = f.color
	}
	if changed("theme") {
		cfg.Appearance.Theme = f.theme
	}

	return cfg, cfg.Validate()
}

func configPathOrDefault(p string) string {
	if p == "" {
		return config.Path()
	}
	return p
}

func runChart(cmd *cobra.Command, f *rootFlags) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	in, err := source.ReadLines(cmd.InOrStdin(), cfg.Input.MaxLines)
	if err != nil {
		return err
	}
	if in.Truncated {
		logger.Warn("input truncated", "limit", len(in.Lines))
	}

	series, err := source.Parse(in.Lines)
	if err != nil {
		return err
	}
	logger.Debug("parsed input", "records", len(series), "comparison", series.HasComparison())

	layout := chart.Arrange(series, opts)
	logger.Debug("layout",
		"view", opts.View,
		"start", layout.Window.Start,
		"end", layout.Window.End,
		"max_value", layout.Scale.MaxValue,
		"unit_per_row", layout.Scale.UnitPerRow,
	)

	out := cmd.OutOrStdout()
	painter := cli.NewPainter(cli.NewRenderer(out, cfg.Appearance.Color), theme.ByName(cfg.Appearance.Theme))
	return writeLines(out, chart.Format(layout.Rows, painter))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing chart: %w", err)
		}
	}
	return nil
}
