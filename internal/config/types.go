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

// Package config types define the configuration structures used throughout
// starfetch. These represent the TOML config file persisted under the
// per-user configuration directory.
package config

// Config represents the complete configuration for starfetch. It is
// resolved once at process start and frozen afterwards; nothing writes it
// back except the one-time creation of the default file.
type Config struct {
	GitHub GitHubConfig `toml:"github"`
}

// GitHubConfig contains the GitHub credentials and endpoint. APIURL allows
// pointing at a GitHub Enterprise deployment; Email is kept for parity with
// the persisted file shape and is not used by any API call.
type GitHubConfig struct {
	Token  string `toml:"token"`
	Email  string `toml:"email"`
	APIURL string `toml:"api_url"`
}

// DefaultConfig returns a Config with sensible defaults for public
// GitHub.com usage. The token is left empty; resolution overlays the
// GITHUB_TOKEN environment variable on top.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Token:  "",
			Email:  "",
			APIURL: "https://api.github.com",
		},
	}
}
