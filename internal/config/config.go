// Copyright 2025 Starfetch HQ, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration resolution for starfetch.
//
// Resolution has two terminal paths:
//  1. The config file exists and parses: its values win, except that an
//     empty token is overlaid with the GITHUB_TOKEN environment variable.
//  2. The file is missing or unparseable: a default configuration is
//     synthesized (token from the environment or empty), persisted to the
//     config file, and returned. A failure to persist the default is fatal
//     for the invocation.
//
// The file is TOML at <user-config-dir>/starfetch/config.toml:
//
//	[github]
//	token = ""
//	email = ""
//	api_url = "https://api.github.com"
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	sferrors "github.com/starfetchhq/starfetch/internal/errors"
)

const (
	// TokenEnv is the environment variable that overlays an empty
	// persisted token.
	TokenEnv = "GITHUB_TOKEN"

	appDirName     = "starfetch"
	configFileName = "config.toml"
)

// DefaultPath returns the platform-standard location of the config file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to locate user config directory: %v: %w", err, sferrors.ErrConfig)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Load resolves the configuration from the given path, or from DefaultPath
// when path is empty. See the package comment for the resolution rules.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := loadFile(path)
	if err != nil {
		// Missing or broken file: synthesize and persist the default.
		return createDefault(path)
	}

	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv(TokenEnv)
	}

	return cfg, nil
}

// loadFile reads and parses the TOML config file.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// createDefault synthesizes the default configuration and persists it. The
// write happens exactly once in the lifetime of an installation; afterwards
// the file path always parses.
func createDefault(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.GitHub.Token = os.Getenv(TokenEnv)

	if err := Save(cfg, path); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg as TOML to path, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %v: %w", filepath.Dir(path), err, sferrors.ErrConfig)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %v: %w", err, sferrors.ErrConfig)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %v: %w", path, err, sferrors.ErrConfig)
	}

	return nil
}

// Validate checks that the resolved configuration can back authenticated
// API calls. Called by the command layer before constructing a validated
// client; anonymous reads may skip it.
func (c *Config) Validate() error {
	if c.GitHub.APIURL == "" {
		return fmt.Errorf("github api url cannot be empty: %w", sferrors.ErrConfig)
	}
	if c.GitHub.Token == "" {
		return fmt.Errorf("github token is empty. Set %s or add a token to the config file: %w", TokenEnv, sferrors.ErrBadCredentials)
	}
	return nil
}
