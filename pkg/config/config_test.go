// Copyright 2026 FitLink QA. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink-qa/reportflow/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 1*time.Second, cfg.Flow.PropagationDelay)
	assert.NotEmpty(t, cfg.Reporters.Password)
	assert.NotEmpty(t, cfg.Reporters.Domain)
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".reportflow.yaml")
	configContent := `
backend:
  base_url: http://backend.internal:9000
  timeout: 10s
  skip_health: true

target:
  id: victim-uuid
  email: victim@fitlink-qa.test
  password: Victima123!

reporters:
  password: Reportero123!
  emails:
    - reporter1@fitlink-qa.test
    - reporter2@fitlink-qa.test
    - reporter3@fitlink-qa.test

flow:
  propagation_delay: 2s
  summary_path: out/run.md
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://backend.internal:9000", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.True(t, cfg.Backend.SkipHealth)
	assert.Equal(t, "victim-uuid", cfg.Target.ID)
	assert.Len(t, cfg.Reporters.Emails, 3)
	assert.Equal(t, 2*time.Second, cfg.Flow.PropagationDelay)
	assert.Equal(t, "out/run.md", cfg.Flow.SummaryPath)
}

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".reportflow.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("target:\n  id: victim-uuid\n"), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Backend.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Backend.Timeout)
	assert.Equal(t, DefaultPropagationDelay, cfg.Flow.PropagationDelay)
	assert.Equal(t, DefaultReporterPassword, cfg.Reporters.Password)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".reportflow.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("backend: [not a map"), 0o644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrConfig))
}

func TestEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".reportflow.yaml")
	configContent := `
backend:
  base_url: http://backend.internal:9000
target:
  id: from-file
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	t.Setenv("REPORTFLOW_BASE_URL", "http://override:8000")
	t.Setenv("REPORTFLOW_TARGET_ID", "from-env")
	t.Setenv("REPORTFLOW_PROPAGATION_DELAY", "5s")
	t.Setenv("REPORTFLOW_REPORTER_EMAILS", "a@fitlink-qa.test,b@fitlink-qa.test")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://override:8000", cfg.Backend.BaseURL, "environment overrides file")
	assert.Equal(t, "from-env", cfg.Target.ID)
	assert.Equal(t, 5*time.Second, cfg.Flow.PropagationDelay)
	assert.Equal(t, []string{"a@fitlink-qa.test", "b@fitlink-qa.test"}, cfg.Reporters.Emails)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Target.ID = "victim-uuid"
		cfg.Reporters.Emails = []string{"reporter1@fitlink-qa.test"}
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing target id", func(t *testing.T) {
		cfg := valid()
		cfg.Target.ID = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrValidation))
	})

	t.Run("bad base url", func(t *testing.T) {
		cfg := valid()
		cfg.Backend.BaseURL = "not a url"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad reporter email", func(t *testing.T) {
		cfg := valid()
		cfg.Reporters.Emails = []string{"not-an-email"}
		assert.Error(t, cfg.Validate())
	})
}

func TestValidateForRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target.ID = "victim-uuid"

	err := cfg.ValidateForRun(false)
	require.Error(t, err, "no emails and not generating")
	assert.True(t, errors.IsType(err, errors.ErrValidation))

	assert.NoError(t, cfg.ValidateForRun(true), "generation needs no configured emails")
}

func TestValidateForVerify(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target.ID = "victim-uuid"

	err := cfg.ValidateForVerify()
	require.Error(t, err, "verify needs target credentials")

	cfg.Target.Email = "victim@fitlink-qa.test"
	cfg.Target.Password = "Victima123!"
	assert.NoError(t, cfg.ValidateForVerify())
}
