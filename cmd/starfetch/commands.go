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
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/starfetchhq/starfetch/internal/config"
	"github.com/starfetchhq/starfetch/internal/gitclone"
	"github.com/starfetchhq/starfetch/internal/github"
	"github.com/starfetchhq/starfetch/internal/output"
)

// resolveConfig loads the configuration and applies flag overrides.
// Flag beats environment beats file, matching the documented precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if token, _ := cmd.Flags().GetString("token"); token != "" {
		cfg.GitHub.Token = token
	}
	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.GitHub.APIURL = apiURL
	}

	return cfg, nil
}

// resolveClient builds an unvalidated client for commands that only read
// public data. An empty token is acceptable here; requests go out without
// an Authorization header.
func resolveClient(cmd *cobra.Command) (github.Client, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return github.NewRESTClient(cfg.GitHub.Token, cfg.GitHub.APIURL), nil
}

// resolveAuthenticatedClient builds a client for commands that act on the
// authenticated user. The local credential check runs before any request,
// so a missing token surfaces as a configuration problem instead of an
// upstream 401. The network preflight stays with the auth subcommand and
// interactive mode; a bad token still fails at the endpoint here.
func resolveAuthenticatedClient(cmd *cobra.Command) (github.Client, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return github.NewRESTClient(cfg.GitHub.Token, cfg.GitHub.APIURL), nil
}

// newRecordWriter picks NDJSON output destination for --json commands.
func newRecordWriter(outputFile string, stdout io.Writer) (output.RecordWriter, error) {
	if outputFile == "" {
		return output.NewWriter(stdout), nil
	}
	return output.NewFileWriter(outputFile)
}

func newGetCommand() *cobra.Command {
	var jsonOut bool
	var outputFile string

	cmd := &cobra.Command{
		Use:   "get <owner> <repo>",
		Short: "Fetch summary information about a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveClient(cmd)
			if err != nil {
				return err
			}
			return runGet(cmd.Context(), client, cmd.OutOrStdout(), args[0], args[1], jsonOut, outputFile)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit NDJSON instead of a table")
	cmd.Flags().StringVar(&outputFile, "output", "", "Write NDJSON to a file instead of stdout")
	return cmd
}

func runGet(ctx context.Context, client github.Client, stdout io.Writer, owner, name string, jsonOut bool, outputFile string) error {
	repo, err := client.GetRepo(ctx, owner, name)
	if err != nil {
		return err
	}

	if jsonOut || outputFile != "" {
		w, err := newRecordWriter(outputFile, stdout)
		if err != nil {
			return err
		}
		defer w.Close()
		return w.Write(repo)
	}

	renderSummaryTable(stdout, []github.RepoSummary{*repo})
	return nil
}

func newListCommand() *cobra.Command {
	var jsonOut bool
	var outputFile string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the authenticated user's starred repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveAuthenticatedClient(cmd)
			if err != nil {
				return err
			}
			return runList(cmd.Context(), client, cmd.OutOrStdout(), cmd.ErrOrStderr(), jsonOut, outputFile)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit NDJSON instead of a table")
	cmd.Flags().StringVar(&outputFile, "output", "", "Write NDJSON to a file instead of stdout")
	return cmd
}

func runList(ctx context.Context, client github.Client, stdout, stderr io.Writer, jsonOut bool, outputFile string) error {
	repos, err := client.ListStarred(ctx)
	if err != nil {
		return err
	}

	if jsonOut || outputFile != "" {
		w, err := newRecordWriter(outputFile, stdout)
		if err != nil {
			return err
		}
		defer w.Close()
		for _, repo := range repos {
			if err := w.Write(repo); err != nil {
				return err
			}
		}
		// Progress text goes to stderr so stdout stays pipeable NDJSON.
		fmt.Fprintf(stderr, "Wrote %d records\n", w.Count())
		return nil
	}

	if len(repos) == 0 {
		fmt.Fprintln(stdout, "No starred repositories")
		return nil
	}
	renderSummaryTable(stdout, repos)
	return nil
}

func newDetailCommand() *cobra.Command {
	var jsonOut bool
	var outputFile string

	cmd := &cobra.Command{
		Use:   "detail <owner> <repo>",
		Short: "Fetch detailed information about a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveClient(cmd)
			if err != nil {
				return err
			}
			return runDetail(cmd.Context(), client, cmd.OutOrStdout(), args[0], args[1], jsonOut, outputFile)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit NDJSON instead of a table")
	cmd.Flags().StringVar(&outputFile, "output", "", "Write NDJSON to a file instead of stdout")
	return cmd
}

func runDetail(ctx context.Context, client github.Client, stdout io.Writer, owner, name string, jsonOut bool, outputFile string) error {
	details, err := client.GetRepoDetails(ctx, owner, name)
	if err != nil {
		return err
	}

	if jsonOut || outputFile != "" {
		w, err := newRecordWriter(outputFile, stdout)
		if err != nil {
			return err
		}
		defer w.Close()
		return w.Write(details)
	}

	renderDetailsTable(stdout, details)
	return nil
}

func newStarCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "star <owner> <repo>",
		Short: "Star a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveAuthenticatedClient(cmd)
			if err != nil {
				return err
			}
			return runStar(cmd.Context(), client, cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func runStar(ctx context.Context, client github.Client, stdout io.Writer, owner, name string) error {
	if err := client.Star(ctx, owner, name); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Starred repository %s/%s\n", owner, name)
	return nil
}

func newUnstarCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unstar <owner> <repo>",
		Short: "Unstar a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveAuthenticatedClient(cmd)
			if err != nil {
				return err
			}
			return runUnstar(cmd.Context(), client, cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func runUnstar(ctx context.Context, client github.Client, stdout io.Writer, owner, name string) error {
	if err := client.Unstar(ctx, owner, name); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Unstarred repository %s/%s\n", owner, name)
	return nil
}

func newStarredCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "starred <owner> <repo>",
		Short: "Check whether the authenticated user has starred a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveAuthenticatedClient(cmd)
			if err != nil {
				return err
			}
			return runStarred(cmd.Context(), client, cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func runStarred(ctx context.Context, client github.Client, stdout io.Writer, owner, name string) error {
	starred, err := client.IsStarred(ctx, owner, name)
	if err != nil {
		return err
	}
	if starred {
		fmt.Fprintf(stdout, "%s/%s is starred\n", owner, name)
	} else {
		fmt.Fprintf(stdout, "%s/%s is not starred\n", owner, name)
	}
	return nil
}

func newCloneCommand() *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "clone <owner> <repo>",
		Short: "Clone a repository to disk via the git binary",
		Long: `Clone a repository to disk by shelling out to git.

The destination defaults to <cwd>/<owner>-<repo>. If the destination
already exists it is DELETED RECURSIVELY before cloning.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClone(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], dest)
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", "Destination directory (default: <cwd>/<owner>-<repo>)")
	return cmd
}

func runClone(ctx context.Context, stdout io.Writer, owner, name, dest string) error {
	path, err := gitclone.Clone(ctx, gitclone.Options{Owner: owner, Name: name, Dest: dest})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Cloned %s/%s into %s\n", owner, name, path)
	return nil
}

func newAuthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Validate the configured GitHub credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if _, err := github.NewValidatedClient(cmd.Context(), cfg.GitHub.Token, cfg.GitHub.APIURL); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "GitHub API authentication successful")
			return nil
		},
	}
}
