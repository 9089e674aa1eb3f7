// flags.go - Command-line flag definitions and configuration
package main

import (
	"github.com/spf13/cobra"

	"github.com/lgbarn/blindfold-chess-go/internal/config"
)

// flagValues holds the command-line switches.
type flagValues struct {
	withComments   bool
	withSideLines  bool
	nestedComments bool
	configFile     string
	format         string
	logLevel       string
	logFormat      string
}

// newRootCmd builds the blindfold command.
func newRootCmd() *cobra.Command {
	flags := &flagValues{}

	cmd := &cobra.Command{
		Use:   "blindfold INPUT OUTPUT",
		Short: "Describe PGN games for blindfold practice",
		Long: "blindfold reads the PGN games in INPUT and writes a spoken-style\n" +
			"description of each to OUTPUT. Games with a FEN header become\n" +
			"numbered exercises. Use - for standard input or output.",
		Args:          cobra.ExactArgs(2),
		Version:       programVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd, cfg, args[0], args[1])
		},
	}

	fs := cmd.Flags()
	fs.BoolVarP(&flags.withComments, "with_comments", "c", false, "include comments in the description")
	fs.BoolVarP(&flags.withSideLines, "with_side_lines", "s", false, "include side lines in the description")
	fs.BoolVar(&flags.nestedComments, "nested_comments", false, "allow nested braces in comments")
	fs.StringVar(&flags.configFile, "config", "", "YAML or TOML config file")
	fs.StringVar(&flags.format, "format", config.FormatText, "output format: text or json")
	fs.StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&flags.logFormat, "log-format", "console", "log format: console or json")

	return cmd
}

// loadConfig reads the config file, if any, and applies the flags the
// user set on top of it.
func loadConfig(cmd *cobra.Command, flags *flagValues) (*config.Config, error) {
	cfg := config.NewConfig()
	if flags.configFile != "" {
		loaded, err := config.Load(flags.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyFlags(cmd, cfg, flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags into cfg, so that a config file
// value survives unless the flag overrides it.
func applyFlags(cmd *cobra.Command, cfg *config.Config, flags *flagValues) {
	changed := cmd.Flags().Changed

	if changed("with_comments") {
		cfg.IncludeComments = flags.withComments
	}
	if changed("with_side_lines") {
		cfg.IncludeSideLines = flags.withSideLines
	}
	if changed("nested_comments") {
		cfg.AllowNestedComments = flags.nestedComments
	}
	if changed("format") {
		cfg.Format = flags.format
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
}
