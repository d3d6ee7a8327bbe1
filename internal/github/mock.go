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

import (
	"context"
	"fmt"

	sferrors "github.com/starfetchhq/starfetch/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// Starred repositories returned by ListStarred
	Repos []RepoSummary

	// Details keyed by "owner/name", returned by GetRepoDetails
	Details map[string]*RepoDetails

	// Star state keyed by "owner/name"
	StarState map[string]bool

	// Error to return from every operation
	Error error

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNetwork  bool
	ShouldFailNotFound bool

	// Track calls for verification
	CallCount int
	LastOwner string
	LastRepo  string
}

// NewMockClient creates a new mock client with default test data.
func NewMockClient() *MockClient {
	desc := "My first repository"
	return &MockClient{
		Repos: []RepoSummary{
			{ID: 1296269, Name: "hello-world", Owner: Owner{Login: "octocat"}, Stars: 80},
			{ID: 28457823, Name: "spoon-knife", Owner: Owner{Login: "octocat"}, Stars: 12},
			{ID: 23096959, Name: "go", Owner: Owner{Login: "golang"}, Stars: 120000},
		},
		Details: map[string]*RepoDetails{
			"octocat/hello-world": {
				ID:          1296269,
				Name:        "hello-world",
				Owner:       Owner{Login: "octocat"},
				Stars:       80,
				Description: &desc,
				HTMLURL:     "https://github.com/octocat/hello-world",
			},
		},
		StarState: map[string]bool{
			"octocat/hello-world": true,
		},
	}
}

// fail applies the configured failure modes, tracking the call first.
func (m *MockClient) fail(ctx context.Context, owner, repo string) error {
	m.CallCount++
	m.LastOwner = owner
	m.LastRepo = repo

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w", sferrors.ErrBadCredentials)
	}
	if m.ShouldFailNetwork {
		return fmt.Errorf("network timeout: %w", sferrors.ErrNetworkFailure)
	}
	if m.ShouldFailNotFound {
		return fmt.Errorf("repository not found: %w", sferrors.ErrRepoNotFound)
	}
	return m.Error
}

// GetRepo implements the Client interface.
func (m *MockClient) GetRepo(ctx context.Context, owner, name string) (*RepoSummary, error) {
	if err := m.fail(ctx, owner, name); err != nil {
		return nil, err
	}
	for i := range m.Repos {
		if m.Repos[i].Owner.Login == owner && m.Repos[i].Name == name {
			repo := m.Repos[i]
			return &repo, nil
		}
	}
	return nil, fmt.Errorf("repository not found: %w", sferrors.ErrRepoNotFound)
}

// ListStarred implements the Client interface.
func (m *MockClient) ListStarred(ctx context.Context) ([]RepoSummary, error) {
	if err := m.fail(ctx, "", ""); err != nil {
		return nil, err
	}
	return m.Repos, nil
}

// GetRepoDetails implements the Client interface.
func (m *MockClient) GetRepoDetails(ctx context.Context, owner, name string) (*RepoDetails, error) {
	if err := m.fail(ctx, owner, name); err != nil {
		return nil, err
	}
	if d, ok := m.Details[owner+"/"+name]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("repository not found: %w", sferrors.ErrRepoNotFound)
}

// Star implements the Client interface.
func (m *MockClient) Star(ctx context.Context, owner, name string) error {
	if err := m.fail(ctx, owner, name); err != nil {
		return err
	}
	if m.StarState == nil {
		m.StarState = make(map[string]bool)
	}
	m.StarState[owner+"/"+name] = true
	return nil
}

// Unstar implements the Client interface.
func (m *MockClient) Unstar(ctx context.Context, owner, name string) error {
	if err := m.fail(ctx, owner, name); err != nil {
		return err
	}
	delete(m.StarState, owner+"/"+name)
	return nil
}

// IsStarred implements the Client interface.
func (m *MockClient) IsStarred(ctx context.Context, owner, name string) (bool, error) {
	if err := m.fail(ctx, owner, name); err != nil {
		return false, err
	}
	return m.StarState[owner+"/"+name], nil
}

// ValidateAuth implements the Client interface.
func (m *MockClient) ValidateAuth(ctx context.Context) error {
	return m.fail(ctx, "", "")
}
