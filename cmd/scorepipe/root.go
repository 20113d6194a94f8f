package main

import (
	"github.com/spf13/cobra"

	"github.com/askiada/go-scorepipe/internal/config"
)

type flags struct {
	configPath  string
	count       int
	seed        uint64
	maxAttempts int
	dotFile     string
	logLevel    string
	logFormat   string
	noColor     bool
}

func newRootCommand() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:           "scorepipe",
		Short:         "Generate scored records and run the grading analysis",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &f, cfg)
			err = cfg.Validate()
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	defaults := config.Default()
	rootCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "TOML configuration file")
	rootCmd.Flags().IntVar(&f.count, "count", defaults.Generation.Count, "Number of records to generate")
	rootCmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed, 0 seeds from the clock")
	rootCmd.Flags().IntVar(&f.maxAttempts, "max-attempts", defaults.Generation.MaxAttempts, "Attempts per record before giving up, 0 for no limit")
	rootCmd.Flags().StringVar(&f.dotFile, "dot", "", "Write a DOT diagram of the executed steps to this file")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", defaults.Logging.Level, "Log level (trace, debug, info, warn, error, disabled)")
	rootCmd.Flags().StringVar(&f.logFormat, "log-format", defaults.Logging.Format, "Log format (console, json)")
	rootCmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable coloured log output")

	return rootCmd
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("count") {
		cfg.Generation.Count = f.count
	}
	if changed("seed") {
		cfg.Generation.Seed = f.seed
	}
	if changed("max-attempts") {
		cfg.Generation.MaxAttempts = f.maxAttempts
	}
	if changed("dot") {
		cfg.Output.DotFile = f.dotFile
	}
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = f.logFormat
	}
	if changed("no-color") {
		cfg.Logging.NoColor = f.noColor
	}
}
