// Copyright 2026 FitLink QA. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fitlink-qa/reportflow/pkg/config"
	"github.com/fitlink-qa/reportflow/pkg/identity"
)

var identitiesCmd = &cobra.Command{
	Use:   "identities",
	Short: "Manage reporter identities",
	Long:  `List the configured reporter identities or mint fresh ones.`,
}

func init() {
	identitiesCmd.AddCommand(identitiesListCmd)
	identitiesCmd.AddCommand(identitiesGenerateCmd)
	rootCmd.AddCommand(identitiesCmd)
}

var identitiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the reporter identities resolved from configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		identities := identity.Defaults(cfg.Reporters.Emails, cfg.Reporters.Password)
		if len(identities) == 0 {
			fmt.Println("No reporter emails configured.")
			return nil
		}

		fmt.Printf("Configured reporters (%d):\n", len(identities))
		for _, id := range identities {
			fmt.Printf("  - %s (carnet %s, %s)\n", id.Email, id.Carnet, id.Ciudad)
		}
		return nil
	},
}

var identitiesGenerateCmd = &cobra.Command{
	Use:   "generate [count]",
	Short: "Mint fresh reporter identities and print them as YAML",
	Long: `Generate prints freshly minted reporter identities in config file
form, ready to paste under the reporters key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		count := config.DefaultReporterCount
		if len(args) == 1 {
			if _, err := fmt.Sscanf(args[0], "%d", &count); err != nil || count < 1 {
				return fmt.Errorf("invalid count: %s", args[0])
			}
		}

		identities := identity.Generate(count, cfg.Reporters.Domain, cfg.Reporters.Password)
		emails := make([]string, 0, len(identities))
		for _, id := range identities {
			emails = append(emails, id.Email)
		}

		out := map[string]any{
			"reporters": map[string]any{
				"password": cfg.Reporters.Password,
				"emails":   emails,
			},
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(out)
	},
}
