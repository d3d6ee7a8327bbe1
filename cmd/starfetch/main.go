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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sferrors "github.com/starfetchhq/starfetch/internal/errors"
	"github.com/starfetchhq/starfetch/pkg/version"
)

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	var interactive bool

	rootCmd := &cobra.Command{
		Use:   "starfetch",
		Short: "Manage GitHub stars from the command line",
		Long: `starfetch is a command-line client for the GitHub REST API. It fetches
repository metadata, lists the authenticated user's starred repositories,
stars and unstars repositories, and clones a repository via the git binary.

Authentication uses a personal access token resolved from the config file,
the GITHUB_TOKEN environment variable, or the --token flag.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return runInteractiveCommand(cmd)
			}
			// No subcommand and no --interactive: print usage, exit 0.
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file path (default: <user-config-dir>/starfetch/config.toml)")
	rootCmd.PersistentFlags().String("token", "", "GitHub personal access token (overrides config file and GITHUB_TOKEN)")
	rootCmd.PersistentFlags().String("api-url", "", "GitHub API base URL (overrides config file)")
	rootCmd.Flags().BoolVar(&interactive, "interactive", false, "Start interactive mode")

	rootCmd.AddCommand(
		newGetCommand(),
		newListCommand(),
		newDetailCommand(),
		newStarCommand(),
		newUnstarCommand(),
		newStarredCommand(),
		newCloneCommand(),
		newAuthCommand(),
		newInteractiveCommand(),
	)

	return rootCmd
}

// mapErrorToExitCode maps internal errors to appropriate exit codes.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, sferrors.ErrConfig) ||
		errors.Is(err, sferrors.ErrBadCredentials) ||
		errors.Is(err, sferrors.ErrRepoNotFound) {
		return 2 // Configuration/authorization errors
	}

	if errors.Is(err, sferrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
