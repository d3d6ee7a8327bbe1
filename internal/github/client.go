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

package github

import "context"

// Client defines the interface for interacting with GitHub's REST API.
// This interface allows for easy mocking in tests.
type Client interface {
	// GetRepo retrieves the summary record for a single repository.
	GetRepo(ctx context.Context, owner, name string) (*RepoSummary, error)

	// ListStarred retrieves the authenticated user's starred repositories.
	// Only the first page is fetched; there is no pagination handling.
	ListStarred(ctx context.Context) ([]RepoSummary, error)

	// GetRepoDetails retrieves the extended record for a single repository,
	// including its description and HTML URL.
	GetRepoDetails(ctx context.Context, owner, name string) (*RepoDetails, error)

	// Star stars a repository for the authenticated user.
	Star(ctx context.Context, owner, name string) error

	// Unstar removes a star from a repository for the authenticated user.
	Unstar(ctx context.Context, owner, name string) error

	// IsStarred reports whether the authenticated user has starred the
	// repository. Status 204 means starred, 404 means not starred; any other
	// status is an error.
	IsStarred(ctx context.Context, owner, name string) (bool, error)

	// ValidateAuth performs an authenticated no-op request against the
	// current-user endpoint. Any non-2xx response or transport failure
	// returns an error; the token is considered valid otherwise.
	ValidateAuth(ctx context.Context) error
}
