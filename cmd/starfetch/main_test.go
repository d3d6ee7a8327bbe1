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
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	sferrors "github.com/starfetchhq/starfetch/internal/errors"
	"github.com/starfetchhq/starfetch/internal/github"
	"github.com/starfetchhq/starfetch/test/testutil"
)

// execute runs the root command with args against the given fake server,
// returning captured output and the command error.
func execute(t *testing.T, server *testutil.GitHubServer, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "")

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	full := append(args,
		"--config", cfgPath,
		"--api-url", server.URL,
		"--token", "test-token",
	)

	root := newRootCommand()
	var buf, errBuf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&errBuf)
	root.SetArgs(full)

	err := root.Execute()
	return buf.String(), err
}

func newServer(t *testing.T) *testutil.GitHubServer {
	t.Helper()
	desc := "My first repository"
	server := testutil.NewGitHubServer(t, []testutil.RepoFixture{
		{ID: 1296269, Name: "hello-world", OwnerLogin: "octocat", Stars: 80, Description: &desc, HTMLURL: "https://github.com/octocat/hello-world"},
		{ID: 23096959, Name: "go", OwnerLogin: "golang", Stars: 120000, HTMLURL: "https://github.com/golang/go"},
	}, []string{"octocat/hello-world"})
	server.Token = "test-token"
	return server
}

func TestRootNoArgsPrintsHelp(t *testing.T) {
	root := newRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(nil)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() with no args: %v", err)
	}
	if !strings.Contains(buf.String(), "Usage:") {
		t.Errorf("help output missing usage section:\n%s", buf.String())
	}
}

func TestGetCommandEndToEnd(t *testing.T) {
	server := newServer(t)

	out, err := execute(t, server, "get", "octocat", "hello-world")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	for _, want := range []string{"octocat", "hello-world", "80"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGetCommandNotFound(t *testing.T) {
	server := newServer(t)

	_, err := execute(t, server, "get", "octocat", "does-not-exist")
	if !errors.Is(err, sferrors.ErrRepoNotFound) {
		t.Fatalf("error = %v, want ErrRepoNotFound", err)
	}
	if got := mapErrorToExitCode(err); got != 2 {
		t.Errorf("exit code = %d, want 2", got)
	}
}

func TestListCommandJSONEndToEnd(t *testing.T) {
	server := newServer(t)

	out, err := execute(t, server, "list", "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d records, want 1:\n%s", len(lines), out)
	}
	var repo github.RepoSummary
	if err := json.Unmarshal([]byte(lines[0]), &repo); err != nil {
		t.Fatalf("record is not valid JSON: %v", err)
	}
	if repo.FullName() != "octocat/hello-world" {
		t.Errorf("FullName() = %q, want octocat/hello-world", repo.FullName())
	}
}

func TestAuthenticatedCommandsRejectEmptyToken(t *testing.T) {
	server := newServer(t)

	for _, args := range [][]string{
		{"list"},
		{"star", "octocat", "hello-world"},
		{"unstar", "octocat", "hello-world"},
		{"starred", "octocat", "hello-world"},
	} {
		t.Run(args[0], func(t *testing.T) {
			t.Setenv("GITHUB_TOKEN", "")

			root := newRootCommand()
			var buf bytes.Buffer
			root.SetOut(&buf)
			root.SetErr(&buf)
			root.SetArgs(append(args,
				"--config", filepath.Join(t.TempDir(), "config.toml"),
				"--api-url", server.URL,
			))

			err := root.Execute()
			if !errors.Is(err, sferrors.ErrBadCredentials) {
				t.Fatalf("error = %v, want ErrBadCredentials before any request", err)
			}
			if got := mapErrorToExitCode(err); got != 2 {
				t.Errorf("exit code = %d, want 2", got)
			}
		})
	}

	// The star state must be untouched; nothing reached the server.
	if !server.IsStarred("octocat/hello-world") {
		t.Error("unstar ran against the server despite the missing token")
	}
}

func TestStarCommandMutatesServerState(t *testing.T) {
	server := newServer(t)

	out, err := execute(t, server, "star", "golang", "go")
	if err != nil {
		t.Fatalf("star: %v", err)
	}
	if !strings.Contains(out, "Starred repository golang/go") {
		t.Errorf("output = %q", out)
	}
	if !server.IsStarred("golang/go") {
		t.Error("server star state unchanged")
	}
}

func TestUnstarCommandMutatesServerState(t *testing.T) {
	server := newServer(t)

	out, err := execute(t, server, "unstar", "octocat", "hello-world")
	if err != nil {
		t.Fatalf("unstar: %v", err)
	}
	if !strings.Contains(out, "Unstarred repository octocat/hello-world") {
		t.Errorf("output = %q", out)
	}
	if server.IsStarred("octocat/hello-world") {
		t.Error("server star state unchanged")
	}
}

func TestStarredCommandEndToEnd(t *testing.T) {
	server := newServer(t)

	out, err := execute(t, server, "starred", "octocat", "hello-world")
	if err != nil {
		t.Fatalf("starred: %v", err)
	}
	if !strings.Contains(out, "octocat/hello-world is starred") {
		t.Errorf("output = %q", out)
	}

	out, err = execute(t, server, "starred", "golang", "go")
	if err != nil {
		t.Fatalf("starred: %v", err)
	}
	if !strings.Contains(out, "golang/go is not starred") {
		t.Errorf("output = %q", out)
	}
}

func TestDetailCommandEndToEnd(t *testing.T) {
	server := newServer(t)

	out, err := execute(t, server, "detail", "octocat", "hello-world")
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	for _, want := range []string{"My first repository", "https://github.com/octocat/hello-world"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAuthCommandEndToEnd(t *testing.T) {
	server := newServer(t)

	out, err := execute(t, server, "auth")
	if err != nil {
		t.Fatalf("auth: %v", err)
	}
	if !strings.Contains(out, "GitHub API authentication successful") {
		t.Errorf("output = %q", out)
	}
}

func TestAuthCommandRejectsBadToken(t *testing.T) {
	server := newServer(t)
	server.Token = "a-different-token"

	_, err := execute(t, server, "auth")
	if !errors.Is(err, sferrors.ErrBadCredentials) {
		t.Fatalf("error = %v, want ErrBadCredentials", err)
	}
	if got := mapErrorToExitCode(err); got != 2 {
		t.Errorf("exit code = %d, want 2", got)
	}
	if strings.Contains(err.Error(), "test-token") {
		t.Errorf("token leaked into error: %v", err)
	}
}
