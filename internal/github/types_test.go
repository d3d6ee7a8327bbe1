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
	"encoding/json"
	"errors"
	"testing"

	sferrors "github.com/starfetchhq/starfetch/internal/errors"
)

func TestRepoSummaryValidate(t *testing.T) {
	tests := []struct {
		name    string
		repo    RepoSummary
		wantErr bool
	}{
		{
			name: "valid record",
			repo: RepoSummary{ID: 1, Name: "hello-world", Owner: Owner{Login: "octocat"}, Stars: 80},
		},
		{
			name:    "empty name",
			repo:    RepoSummary{ID: 1, Owner: Owner{Login: "octocat"}},
			wantErr: true,
		},
		{
			name:    "empty owner login",
			repo:    RepoSummary{ID: 1, Name: "hello-world"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.repo.validate()
			if tt.wantErr {
				if !errors.Is(err, sferrors.ErrMalformedResponse) {
					t.Errorf("validate() = %v, want ErrMalformedResponse", err)
				}
				return
			}
			if err != nil {
				t.Errorf("validate() unexpected error: %v", err)
			}
		})
	}
}

func TestRepoSummaryJSONMapping(t *testing.T) {
	// The domain field name is Stars; the wire name is stargazers_count.
	body := []byte(`{"id": 42, "name": "go", "owner": {"login": "golang"}, "stargazers_count": 120000}`)

	var repo RepoSummary
	if err := json.Unmarshal(body, &repo); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if repo.Stars != 120000 {
		t.Errorf("Stars = %d, want 120000", repo.Stars)
	}
	if repo.FullName() != "golang/go" {
		t.Errorf("FullName() = %q, want %q", repo.FullName(), "golang/go")
	}
}

func TestOwnerRejectsBareString(t *testing.T) {
	var repo RepoSummary
	err := json.Unmarshal([]byte(`{"id": 1, "name": "x", "owner": "octocat"}`), &repo)
	if err == nil {
		t.Fatal("expected decode error for bare-string owner")
	}
}
