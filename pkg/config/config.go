// Copyright 2026 FitLink QA. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package config provides configuration management for reportflow.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Config file: --config path, else .reportflow.yaml in cwd, else $HOME
// 3. .env file in the working directory
// 4. Environment variables: REPORTFLOW_*
// 5. CLI flags
package config

import (
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Backend   BackendConfig   `yaml:"backend"`
	Target    TargetConfig    `yaml:"target"`
	Reporters ReportersConfig `yaml:"reporters"`
	Flow      FlowConfig      `yaml:"flow"`
}

// BackendConfig contains backend API connection settings.
type BackendConfig struct {
	BaseURL    string        `yaml:"base_url" validate:"required,url"`
	Timeout    time.Duration `yaml:"timeout" validate:"min=0"`
	SkipHealth bool          `yaml:"skip_health"`
}

// TargetConfig identifies the account whose moderation state is verified.
// Email and Password are only needed by the verify command.
type TargetConfig struct {
	ID       string `yaml:"id" validate:"required"`
	Email    string `yaml:"email" validate:"omitempty,email"`
	Password string `yaml:"password"`
}

// ReportersConfig describes the reporter identities.
type ReportersConfig struct {
	Password string   `yaml:"password" validate:"required"`
	Emails   []string `yaml:"emails" validate:"dive,email"`
	// Domain is used when minting generated reporter emails.
	Domain string `yaml:"domain" validate:"required,fqdn"`
}

// FlowConfig contains run behavior settings.
type FlowConfig struct {
	// PropagationDelay is the pause between registration and login. The
	// backend activates accounts asynchronously; the right value depends on
	// its internal latency, so this is operator-tunable rather than fixed.
	PropagationDelay time.Duration `yaml:"propagation_delay" validate:"min=0"`
	SummaryPath      string        `yaml:"summary_path"`
}

// EnvOverrides represents environment variable based configuration.
// These take priority over file-based config. Parsed with envconfig
// under the REPORTFLOW_ prefix.
type EnvOverrides struct {
	BaseURL          string        `split_words:"true"`
	TargetID         string        `split_words:"true"`
	TargetEmail      string        `split_words:"true"`
	TargetPassword   string        `split_words:"true"`
	ReporterPassword string        `split_words:"true"`
	ReporterEmails   []string      `split_words:"true"`
	PropagationDelay time.Duration `split_words:"true"`
}
