// Package main provides the reportflow CLI application.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fitlink-qa/reportflow/pkg/backend"
	"github.com/fitlink-qa/reportflow/pkg/flow"
	"github.com/fitlink-qa/reportflow/pkg/identity"
	"github.com/fitlink-qa/reportflow/pkg/output"
)

// runFlags holds the flags for the run command
type runFlags struct {
	baseURL    string
	target     string
	delay      time.Duration
	generate   int
	skipHealth bool
	summary    string
}

var runOpts runFlags

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the register, login, report flow",
	Long: `Run executes all phases against the backend, in order:

1. Register every reporter identity (failures are printed, not fatal:
   duplicate accounts are expected across repeated runs).
2. Wait for asynchronous account activation.
3. Log every reporter in. A login without a bearer token aborts the run.
4. File one report per obtained token against the target, in order.

Every raw backend response is printed for inspection. The command exits
non-zero only when a login yields no token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Flags override file and environment settings.
		if runOpts.baseURL != "" {
			cfg.Backend.BaseURL = runOpts.baseURL
		}
		if runOpts.target != "" {
			cfg.Target.ID = runOpts.target
		}
		if cmd.Flags().Changed("delay") {
			cfg.Flow.PropagationDelay = runOpts.delay
		}
		if runOpts.skipHealth {
			cfg.Backend.SkipHealth = true
		}
		if runOpts.summary != "" {
			cfg.Flow.SummaryPath = runOpts.summary
		}

		if err := cfg.ValidateForRun(runOpts.generate > 0); err != nil {
			return err
		}

		var identities []identity.Identity
		if runOpts.generate > 0 {
			identities = identity.Generate(runOpts.generate, cfg.Reporters.Domain, cfg.Reporters.Password)
		} else {
			identities = identity.Defaults(cfg.Reporters.Emails, cfg.Reporters.Password)
		}

		client := backend.NewClient(cfg.Backend.BaseURL)
		client.SetTimeout(cfg.Backend.Timeout)

		runner := flow.NewRunner(client, output.NewPrinter(os.Stdout), log.Logger, flow.Options{
			TargetID:         cfg.Target.ID,
			Identities:       identities,
			PropagationDelay: cfg.Flow.PropagationDelay,
			SkipHealth:       cfg.Backend.SkipHealth,
		})

		summary, runErr := runner.Run(cmd.Context())

		if cfg.Flow.SummaryPath != "" && summary != nil {
			if err := output.SaveMarkdownSummary(cfg.Flow.SummaryPath, summary); err != nil {
				log.Warn().Err(err).Str("path", cfg.Flow.SummaryPath).Msg("failed to write summary")
			} else {
				fmt.Fprintf(os.Stdout, "summary written to %s\n", cfg.Flow.SummaryPath)
			}
		}

		return runErr
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runOpts.baseURL, "base-url", "", "Backend base URL")
	runCmd.Flags().StringVar(&runOpts.target, "target", "", "Target account identifier to report")
	runCmd.Flags().DurationVar(&runOpts.delay, "delay", 0, "Propagation delay between registration and login")
	runCmd.Flags().IntVar(&runOpts.generate, "generate", 0, "Mint N fresh reporter identities instead of the configured list")
	runCmd.Flags().BoolVar(&runOpts.skipHealth, "skip-health", false, "Skip the backend health preflight")
	runCmd.Flags().StringVar(&runOpts.summary, "summary", "", "Write a markdown run summary to this path")
}
