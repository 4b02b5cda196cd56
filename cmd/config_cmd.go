package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/relchart/internal/config"
)

func newConfigCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, f)
		},
	}
}

func runConfig(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# Config file: %s\n", configPathOrDefault(f.configPath))
	if config.Exists(f.configPath) {
		fmt.Fprintln(out, "# Status: loaded")
	} else {
		fmt.Fprintln(out, "# Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	return toml.NewEncoder(out).Encode(cfg)
}
