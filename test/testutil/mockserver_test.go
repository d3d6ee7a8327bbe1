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

package testutil

import (
	"context"
	"testing"

	"github.com/starfetchhq/starfetch/internal/github"
)

func fixtures() []RepoFixture {
	desc := "My first repository"
	return []RepoFixture{
		{ID: 1296269, Name: "hello-world", OwnerLogin: "octocat", Stars: 80, Description: &desc, HTMLURL: "https://github.com/octocat/hello-world"},
		{ID: 2, Name: "spoon-knife", OwnerLogin: "octocat", Stars: 12, HTMLURL: "https://github.com/octocat/spoon-knife"},
	}
}

func TestGitHubServerServesClient(t *testing.T) {
	server := NewGitHubServer(t, fixtures(), []string{"octocat/hello-world"})
	server.Token = "test-token"
	client := github.NewRESTClient("test-token", server.URL)
	ctx := context.Background()

	repo, err := client.GetRepo(ctx, "octocat", "hello-world")
	if err != nil {
		t.Fatalf("GetRepo: %v", err)
	}
	if repo.Stars != 80 || repo.Owner.Login != "octocat" {
		t.Errorf("repo = %+v", repo)
	}

	starred, err := client.ListStarred(ctx)
	if err != nil {
		t.Fatalf("ListStarred: %v", err)
	}
	if len(starred) != 1 || starred[0].Name != "hello-world" {
		t.Errorf("starred = %+v", starred)
	}

	if err := client.Star(ctx, "octocat", "spoon-knife"); err != nil {
		t.Fatalf("Star: %v", err)
	}
	if !server.IsStarred("octocat/spoon-knife") {
		t.Error("star did not mutate server state")
	}

	ok, err := client.IsStarred(ctx, "octocat", "spoon-knife")
	if err != nil || !ok {
		t.Errorf("IsStarred = %v, %v; want true, nil", ok, err)
	}

	if err := client.Unstar(ctx, "octocat", "spoon-knife"); err != nil {
		t.Fatalf("Unstar: %v", err)
	}
	if server.IsStarred("octocat/spoon-knife") {
		t.Error("unstar did not mutate server state")
	}

	if err := client.ValidateAuth(ctx); err != nil {
		t.Errorf("ValidateAuth: %v", err)
	}
}

func TestGitHubServerRejectsBadToken(t *testing.T) {
	server := NewGitHubServer(t, fixtures(), nil)
	server.Token = "good-token"

	client := github.NewRESTClient("bad-token", server.URL)
	if err := client.ValidateAuth(context.Background()); err == nil {
		t.Error("expected rejection for wrong bearer token")
	}
}
