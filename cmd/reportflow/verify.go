// Package main provides the reportflow CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitlink-qa/reportflow/pkg/backend"
	"github.com/fitlink-qa/reportflow/pkg/errors"
	"github.com/fitlink-qa/reportflow/pkg/flow"
	"github.com/fitlink-qa/reportflow/pkg/output"
)

// verifyFlags holds the flags for the verify command
type verifyFlags struct {
	baseURL       string
	expectBlocked bool
}

var verifyOpts verifyFlags

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Probe the target account's moderation state",
	Long: `Verify attempts a login as the target account and interprets the
outcome. The backend rejects logins for blocked accounts with a 403 and a
block notice, so a rejected login means the report threshold fired.

With --expect-blocked the command exits non-zero unless the target is
blocked, which makes it usable as the assertion step after a run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if verifyOpts.baseURL != "" {
			cfg.Backend.BaseURL = verifyOpts.baseURL
		}
		if err := cfg.ValidateForVerify(); err != nil {
			return err
		}

		client := backend.NewClient(cfg.Backend.BaseURL)
		client.SetTimeout(cfg.Backend.Timeout)

		result, err := flow.VerifyTarget(cmd.Context(), client, cfg.Target.Email, cfg.Target.Password)
		if err != nil {
			return err
		}

		printer := output.NewPrinter(os.Stdout)
		printer.Result("login "+cfg.Target.Email, result.StatusCode, result.Body)
		if result.Detail != "" {
			printer.Infof("backend says: %s", result.Detail)
		}
		printer.Infof("target %s is %s", cfg.Target.ID, result.State)

		if verifyOpts.expectBlocked && result.State != flow.TargetBlocked {
			return errors.ValidationError(
				fmt.Sprintf("expected target to be blocked, got %s", result.State), nil)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyOpts.baseURL, "base-url", "", "Backend base URL")
	verifyCmd.Flags().BoolVar(&verifyOpts.expectBlocked, "expect-blocked", false,
		"Exit non-zero unless the target is blocked")
}
