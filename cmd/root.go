// Package cmd implements the CLI commands for tablepipe using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/tablepipe/config"
	"github.com/gaurav-prasanna/tablepipe/logging"
)

// Persistent flag variables.
var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
)

// Loaded by PersistentPreRunE for every subcommand.
var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tablepipe",
	Short: "tablepipe — convert command-line table output into structured records",
	Long: `tablepipe turns the human-oriented tables printed by command-line tools
into JSON, YAML, Markdown or PDF. The first line of the input is the header;
every following line becomes one record keyed by the header labels.

Usage:
  systemctl -a | tablepipe convert --command systemctl
  df -h | tablepipe convert --join "mounted on" --yaml
  tablepipe convert ps.txt --command simple --output_dir ./out`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text or json")
}

// setup loads configuration and builds the logger. Explicit flags win over
// the file and the environment.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.LogLevel = flagLogLevel
	}
	if flagLogFormat != "" {
		loaded.LogFormat = flagLogFormat
	}

	l, err := logging.New(cmd.ErrOrStderr(), loaded.LogLevel, loaded.LogFormat)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}

	cfg = loaded
	logger = l
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
