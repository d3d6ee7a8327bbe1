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
	"fmt"

	sferrors "github.com/starfetchhq/starfetch/internal/errors"
)

// Owner identifies the account that owns a repository. GitHub sends the
// owner as a nested object; decoding a bare string here fails on purpose,
// since a flat owner field signals a malformed upstream response.
type Owner struct {
	Login string `json:"login"`
}

// RepoSummary is the minimal repository projection returned by the list and
// get operations. The upstream "stargazers_count" field is mapped to Stars
// at this boundary. Unknown upstream fields are ignored.
type RepoSummary struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Owner Owner  `json:"owner"`
	Stars uint64 `json:"stargazers_count"`
}

// RepoDetails extends RepoSummary with the fields shown by the detail view.
// Description is a pointer because GitHub sends an explicit null for
// repositories without one.
type RepoDetails struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Owner       Owner   `json:"owner"`
	Stars       uint64  `json:"stargazers_count"`
	Description *string `json:"description"`
	HTMLURL     string  `json:"html_url"`
}

// validate rejects records that decoded without error but are missing
// fields a valid GitHub response always carries. An empty name or owner
// login never represents real data; it means the body had the wrong shape.
func (r *RepoSummary) validate() error {
	if r.Name == "" {
		return fmt.Errorf("repository record missing name: %w", sferrors.ErrMalformedResponse)
	}
	if r.Owner.Login == "" {
		return fmt.Errorf("repository record missing owner login: %w", sferrors.ErrMalformedResponse)
	}
	return nil
}

func (r *RepoDetails) validate() error {
	if r.Name == "" {
		return fmt.Errorf("repository record missing name: %w", sferrors.ErrMalformedResponse)
	}
	if r.Owner.Login == "" {
		return fmt.Errorf("repository record missing owner login: %w", sferrors.ErrMalformedResponse)
	}
	return nil
}

// FullName returns the canonical "owner/name" form used in messages and
// default clone destinations.
func (r *RepoSummary) FullName() string {
	return r.Owner.Login + "/" + r.Name
}
