// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSessionHeader, cfg.SessionHeader)
	assert.Equal(t, DefaultRefreshSchedule, cfg.RefreshSchedule)
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://amphitryon.example.com/api
session_header: X-Custom-Session
timezone: America/Montreal
refresh_schedule: "0 * * * *"
timeout: 10s
max_retries: 5
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://amphitryon.example.com/api", cfg.BaseURL)
	assert.Equal(t, "X-Custom-Session", cfg.SessionHeader)
	assert.Equal(t, "America/Montreal", cfg.Timezone)
	assert.Equal(t, "0 * * * *", cfg.RefreshSchedule)
	assert.Equal(t, 10*time.Second, cfg.Timeout.Std())
	assert.Equal(t, 5, cfg.MaxRetries)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Montreal", loc.String())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	cfg := Config{SessionHeader: "X-Session", Timezone: "UTC"}
	cfg.Normalize()

	assert.Equal(t, "X-Session", cfg.SessionHeader)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, DefaultRefreshSchedule, cfg.RefreshSchedule)
}

func TestLocationRejectsUnknownTimezone(t *testing.T) {
	cfg := Config{Timezone: "Mars/Olympus"}
	_, err := cfg.Location()
	require.Error(t, err)
}
