// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/fitlink-qa/reportflow/pkg/errors"
)

// envPrefix namespaces the REPORTFLOW_* environment variables
const envPrefix = "reportflow"

// Default config file names to search for
var defaultConfigFiles = []string{
	".reportflow.yaml",
	".reportflow.yml",
	"reportflow.yaml",
	"reportflow.yml",
}

var validate = validator.New()

// Load loads configuration from a specific file path, then applies
// defaults and environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	applyDefaults(&cfg)

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault searches for and loads configuration from default locations.
// Search order:
// 1. Current directory
// 2. User home directory
// Falls back to defaults plus environment overrides when no file exists.
func LoadDefault() (*Config, error) {
	for _, filename := range defaultConfigFiles {
		if _, err := os.Stat(filename); err == nil {
			return Load(filename)
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		for _, filename := range defaultConfigFiles {
			path := filepath.Join(homeDir, filename)
			if _, err := os.Stat(path); err == nil {
				return Load(path)
			}
		}
	}

	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides loads .env from the working directory, then applies
// REPORTFLOW_* environment variables on top of the file-based config.
func applyEnvOverrides(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var env EnvOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		_ = envconfig.Usage(envPrefix, &env)
		return errors.ConfigError("failed to parse environment overrides", err)
	}

	if env.BaseURL != "" {
		cfg.Backend.BaseURL = env.BaseURL
	}
	if env.TargetID != "" {
		cfg.Target.ID = env.TargetID
	}
	if env.TargetEmail != "" {
		cfg.Target.Email = env.TargetEmail
	}
	if env.TargetPassword != "" {
		cfg.Target.Password = env.TargetPassword
	}
	if env.ReporterPassword != "" {
		cfg.Reporters.Password = env.ReporterPassword
	}
	if len(env.ReporterEmails) > 0 {
		cfg.Reporters.Emails = env.ReporterEmails
	}
	if env.PropagationDelay > 0 {
		cfg.Flow.PropagationDelay = env.PropagationDelay
	}

	return nil
}

// Validate checks the configuration for a run. Struct tags cover field
// formats; cross-field rules live here.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.ValidationError("config validation failed", err)
	}
	return nil
}

// ValidateForRun additionally requires a usable reporter list unless the
// run generates its own identities.
func (c *Config) ValidateForRun(generating bool) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !generating && len(c.Reporters.Emails) == 0 {
		return errors.ValidationError("no reporter emails configured; set reporters.emails or use --generate", nil)
	}
	return nil
}

// ValidateForVerify requires the target credentials used by the verify probe.
func (c *Config) ValidateForVerify() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Target.Email == "" || c.Target.Password == "" {
		return errors.ValidationError("verify requires target.email and target.password", nil)
	}
	return nil
}
