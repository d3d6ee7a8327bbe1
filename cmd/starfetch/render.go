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
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/starfetchhq/starfetch/internal/github"
)

// renderSummaryTable prints repositories as a bordered table.
func renderSummaryTable(w io.Writer, repos []github.RepoSummary) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "OWNER", "NAME", "STARS")

	for _, repo := range repos {
		t.Row(
			strconv.FormatUint(repo.ID, 10),
			repo.Owner.Login,
			repo.Name,
			strconv.FormatUint(repo.Stars, 10),
		)
	}

	fmt.Fprintln(w, t)
}

// renderDetailsTable prints a single repository with its extended fields.
func renderDetailsTable(w io.Writer, details *github.RepoDetails) {
	description := ""
	if details.Description != nil {
		description = *details.Description
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "OWNER", "NAME", "STARS", "DESCRIPTION", "URL").
		Row(
			strconv.FormatUint(details.ID, 10),
			details.Owner.Login,
			details.Name,
			strconv.FormatUint(details.Stars, 10),
			description,
			details.HTMLURL,
		)

	fmt.Fprintln(w, t)
}
