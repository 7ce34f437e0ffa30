// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

// Package config loads the client configuration from a YAML file and fills
// in deployment defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amphitryon/amphitryon-client/pkg/utils"
)

const (
	DefaultSessionHeader   = "SESSION_TOKEN_AMPHITRYON"
	DefaultRefreshSchedule = "*/15 * * * *"
	DefaultTimezone        = "Europe/Paris"
)

// Duration decodes YAML scalars like "10s" via time.ParseDuration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the YAML-backed client configuration.
type Config struct {
	// BaseURL of the Amphitryon service, e.g. "https://amphitryon.example.com/api".
	BaseURL string `yaml:"base_url"`
	// SessionHeader names the header carrying the session token.
	SessionHeader string `yaml:"session_header"`
	// Timezone is the IANA name agenda day boundaries are computed in.
	Timezone string `yaml:"timezone"`
	// RefreshSchedule is a five-field cron expression for agenda regeneration.
	RefreshSchedule string `yaml:"refresh_schedule"`
	// Timeout for HTTP requests. Zero means the client default.
	Timeout Duration `yaml:"timeout"`
	// MaxRetries for transport failures. Zero means the client default.
	MaxRetries int `yaml:"max_retries"`
}

// Load reads the configuration at path. A missing file is not an error: the
// defaults apply and the base URL can come from the environment or flags.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.Normalize()
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize fills the optional fields with their defaults.
func (c *Config) Normalize() {
	c.BaseURL = utils.CoalesceString(c.BaseURL, os.Getenv("AMPHITRYON_BASE_URL"))
	c.SessionHeader = utils.CoalesceString(c.SessionHeader, DefaultSessionHeader)
	c.Timezone = utils.CoalesceString(c.Timezone, DefaultTimezone)
	c.RefreshSchedule = utils.CoalesceString(c.RefreshSchedule, DefaultRefreshSchedule)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
