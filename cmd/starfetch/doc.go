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

// Package main implements the starfetch command-line interface. The tool
// talks to the GitHub REST API with a personal token: it fetches repository
// metadata, lists and toggles the authenticated user's stars, and clones
// repositories through the git binary.
//
// The CLI supports:
//   - One-shot subcommands: get, list, detail, star, unstar, starred, clone, auth
//   - An interactive terminal menu via --interactive
//   - NDJSON output with --json for scripting
//   - Token resolution from config file, GITHUB_TOKEN, or --token
//
// Usage:
//
//	starfetch get <owner> <repo>
//	starfetch list [--json]
//	starfetch star <owner> <repo>
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Configuration or authentication error
//   - 3: Network error
package main
