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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/starfetchhq/starfetch/internal/github"
	"github.com/starfetchhq/starfetch/internal/tui"
)

func newInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start the interactive terminal menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveCommand(cmd)
		},
	}
}

// runInteractiveCommand validates credentials up front, then enters the
// menu loop. A rejected token fails here rather than on the first action.
func runInteractiveCommand(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := github.NewValidatedClient(cmd.Context(), cfg.GitHub.Token, cfg.GitHub.APIURL)
	if err != nil {
		return err
	}

	return interactiveLoop(cmd.Context(), client, cmd.OutOrStdout())
}

// interactiveLoop runs the menu until the user quits. Each iteration runs
// one full-screen model, performs the chosen operation, and loops; the exit
// condition is an explicit quit choice, never recursion.
func interactiveLoop(ctx context.Context, client github.Client, stdout io.Writer) error {
	for {
		model, err := tea.NewProgram(tui.NewMenu()).Run()
		if err != nil {
			return fmt.Errorf("interactive menu failed: %w", err)
		}

		switch model.(tui.Menu).Choice() {
		case tui.ActionQuit, tui.ActionNone:
			fmt.Fprintln(stdout, "Exiting interactive mode.")
			return nil

		case tui.ActionList:
			repo, err := selectStarred(ctx, client, "Starred repositories")
			if err != nil {
				return err
			}
			if repo != nil {
				renderSummaryTable(stdout, []github.RepoSummary{*repo})
			}

		case tui.ActionDetail:
			repo, err := selectStarred(ctx, client, "Select a repository")
			if err != nil {
				return err
			}
			if repo == nil {
				continue
			}
			details, err := client.GetRepoDetails(ctx, repo.Owner.Login, repo.Name)
			if err != nil {
				return err
			}
			renderDetailsTable(stdout, details)

		case tui.ActionStar:
			owner, name, ok, err := promptRepo()
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := runStar(ctx, client, stdout, owner, name); err != nil {
				return err
			}

		case tui.ActionUnstar:
			repo, err := selectStarred(ctx, client, "Unstar which repository?")
			if err != nil {
				return err
			}
			if repo == nil {
				continue
			}
			if err := runUnstar(ctx, client, stdout, repo.Owner.Login, repo.Name); err != nil {
				return err
			}
		}
	}
}

// selectStarred lists the user's stars and lets them pick one. A nil
// result with nil error means the selector was dismissed.
func selectStarred(ctx context.Context, client github.Client, title string) (*github.RepoSummary, error) {
	repos, err := client.ListStarred(ctx)
	if err != nil {
		return nil, err
	}

	model, err := tea.NewProgram(tui.NewSelector(title, repos)).Run()
	if err != nil {
		return nil, fmt.Errorf("repository selector failed: %w", err)
	}
	return model.(tui.Selector).Selection(), nil
}

// promptRepo collects an owner/name pair from typed input.
func promptRepo() (owner, name string, ok bool, err error) {
	model, err := tea.NewProgram(tui.NewPrompt()).Run()
	if err != nil {
		return "", "", false, fmt.Errorf("repository prompt failed: %w", err)
	}
	owner, name, ok = model.(tui.Prompt).Values()
	return owner, name, ok, nil
}
