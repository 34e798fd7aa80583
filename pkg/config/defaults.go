// Copyright 2026 FitLink QA. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"time"
)

// Default configuration values.
const (
	// DefaultBaseURL targets a locally running backend, the usual setup
	// when exercising the moderation rule during development.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout bounds each individual backend request.
	DefaultTimeout = 30 * time.Second

	// DefaultPropagationDelay is the pause between the registration and
	// login phases. Account activation in the backend's identity provider
	// is asynchronous; one second has been enough in practice but carries
	// no guarantee, which is why the value is configurable.
	DefaultPropagationDelay = 1 * time.Second

	// DefaultReporterPassword is the shared password for throwaway
	// reporter accounts. These accounts exist only to file one report
	// against a test backend.
	DefaultReporterPassword = "Reportero123!"

	// DefaultReporterDomain is the mail domain for generated reporters.
	DefaultReporterDomain = "fitlink-qa.test"

	// DefaultReporterCount is how many reporters a generated run mints.
	// It matches the backend's auto-block threshold so a clean run is
	// expected to flip the target's blocked state.
	DefaultReporterCount = 3
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Reporters: ReportersConfig{
			Password: DefaultReporterPassword,
			Domain:   DefaultReporterDomain,
		},
		Flow: FlowConfig{
			PropagationDelay: DefaultPropagationDelay,
		},
	}
}

// applyDefaults sets default values for optional fields left empty by the
// config file.
func applyDefaults(cfg *Config) {
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = DefaultBaseURL
	}
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = DefaultTimeout
	}
	if cfg.Reporters.Password == "" {
		cfg.Reporters.Password = DefaultReporterPassword
	}
	if cfg.Reporters.Domain == "" {
		cfg.Reporters.Domain = DefaultReporterDomain
	}
	if cfg.Flow.PropagationDelay == 0 {
		cfg.Flow.PropagationDelay = DefaultPropagationDelay
	}
}
