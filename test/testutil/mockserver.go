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

// Package testutil provides common test helpers for starfetch
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// RepoFixture is the JSON payload served for a repository. Extra fields
// mirror what the real API sends so clients prove they tolerate them.
type RepoFixture struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	OwnerLogin  string  `json:"-"`
	Stars       uint64  `json:"stargazers_count"`
	Description *string `json:"description"`
	HTMLURL     string  `json:"html_url"`
}

// MarshalJSON emits the nested owner object shape of the real API.
func (f RepoFixture) MarshalJSON() ([]byte, error) {
	type alias RepoFixture
	return json.Marshal(struct {
		alias
		Owner map[string]string `json:"owner"`
	}{
		alias: alias(f),
		Owner: map[string]string{"login": f.OwnerLogin},
	})
}

// GitHubServer is an in-process fake of the GitHub REST endpoints
// starfetch talks to: /user, /repos/{owner}/{repo}, /user/starred and
// /user/starred/{owner}/{repo}. Star state is mutable per server.
type GitHubServer struct {
	*httptest.Server

	mu      sync.Mutex
	repos   map[string]RepoFixture
	starred map[string]bool

	// Token, when non-empty, is the only bearer value accepted. Requests
	// with any other Authorization header get 401.
	Token string
}

// NewGitHubServer starts a fake GitHub API with the given fixtures. Repos
// named in starred begin in the starred state.
func NewGitHubServer(t *testing.T, repos []RepoFixture, starred []string) *GitHubServer {
	t.Helper()

	s := &GitHubServer{
		repos:   make(map[string]RepoFixture),
		starred: make(map[string]bool),
	}
	for _, r := range repos {
		s.repos[r.OwnerLogin+"/"+r.Name] = r
	}
	for _, full := range starred {
		s.starred[full] = true
	}

	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Server.Close)
	return s
}

// IsStarred reports the current star state for "owner/name".
func (s *GitHubServer) IsStarred(fullName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starred[fullName]
}

func (s *GitHubServer) handle(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message": "Bad credentials"}`)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/")
	parts := strings.Split(path, "/")

	switch {
	case r.Method == http.MethodGet && path == "user":
		writeJSON(w, http.StatusOK, map[string]string{"login": "testuser"})

	case r.Method == http.MethodGet && path == "user/starred":
		list := make([]RepoFixture, 0)
		for full, starred := range s.starred {
			if !starred {
				continue
			}
			if repo, ok := s.repos[full]; ok {
				list = append(list, repo)
			}
		}
		writeJSON(w, http.StatusOK, list)

	case len(parts) == 4 && parts[0] == "user" && parts[1] == "starred":
		s.handleStarState(w, r, parts[2]+"/"+parts[3])

	case r.Method == http.MethodGet && len(parts) == 3 && parts[0] == "repos":
		repo, ok := s.repos[parts[1]+"/"+parts[2]]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
			return
		}
		writeJSON(w, http.StatusOK, repo)

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	}
}

func (s *GitHubServer) handleStarState(w http.ResponseWriter, r *http.Request, fullName string) {
	switch r.Method {
	case http.MethodGet:
		if s.starred[fullName] {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})

	case http.MethodPut:
		s.starred[fullName] = true
		w.WriteHeader(http.StatusNoContent)

	case http.MethodDelete:
		delete(s.starred, fullName)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *GitHubServer) authorized(r *http.Request) bool {
	if s.Token == "" {
		return true
	}
	return r.Header.Get("Authorization") == "Bearer "+s.Token
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
