// Package main provides the reportflow CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fitlink-qa/reportflow/pkg/config"
	"github.com/fitlink-qa/reportflow/pkg/version"
)

// rootFlags holds the persistent flags shared by all commands
type rootFlags struct {
	config  string
	verbose bool
}

var rootOpts rootFlags

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reportflow",
	Short: "FitLink moderation report-flow verifier",
	Long: `reportflow drives an end-to-end verification of the backend's
auto-block moderation rule.

It registers throwaway reporter accounts, logs each one in, files one
abuse report per account against a fixed target, and prints every raw
backend response for inspection. After enough reports the backend is
expected to flip the target's blocked state; use the verify command to
probe it.`,
	Version: version.FullString(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(rootOpts.verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.config, "config", "c", "",
		"Path to configuration file (default: .reportflow.yaml in cwd or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.verbose, "verbose", "v", false,
		"Enable debug diagnostics on stderr")
}

// configureLogging sets up the diagnostic logger. Operator output goes to
// stdout through the printer; the zerolog console logger on stderr carries
// only diagnostics so the two streams can be separated.
func configureLogging(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// loadConfig resolves the configuration for the current invocation.
func loadConfig() (*config.Config, error) {
	if rootOpts.config != "" {
		cfg, err := config.Load(rootOpts.config)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
