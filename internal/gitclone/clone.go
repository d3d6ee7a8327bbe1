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

// Package gitclone downloads a repository to disk by shelling out to the
// git binary.
//
// Destination handling is destructive: when the destination path already
// exists it is deleted recursively before the clone runs. Callers that
// cannot tolerate this must check the path themselves first.
package gitclone

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	sferrors "github.com/starfetchhq/starfetch/internal/errors"
)

// gitBinary is the external tool invoked for clones.
const gitBinary = "git"

// Options configures a single clone.
type Options struct {
	// Owner and Name identify the repository.
	Owner string
	Name  string

	// Dest is the target directory. Empty means <cwd>/<owner>-<name>.
	Dest string

	// RemoteURL overrides the clone URL. Empty builds the public
	// github.com HTTPS URL from Owner and Name.
	RemoteURL string
}

// Clone runs `git clone` for the repository described by opts and returns
// the destination path. The git binary is resolved before any filesystem
// mutation, so a missing tool never leaves the destination altered. A
// non-zero git exit surfaces the captured stderr in the error.
func Clone(ctx context.Context, opts Options) (string, error) {
	if opts.Owner == "" || opts.Name == "" {
		return "", fmt.Errorf("clone requires owner and repository name: %w", sferrors.ErrTooling)
	}

	gitPath, err := exec.LookPath(gitBinary)
	if err != nil {
		if isCommandNotFound(err) {
			return "", fmt.Errorf("git binary not found in PATH. Install git to use clone: %w", sferrors.ErrTooling)
		}
		return "", fmt.Errorf("unable to resolve git binary: %v: %w", err, sferrors.ErrTooling)
	}

	dest := opts.Dest
	if dest == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("unable to determine working directory: %v: %w", err, sferrors.ErrTooling)
		}
		dest = filepath.Join(cwd, opts.Owner+"-"+opts.Name)
	}

	// Existing destinations are wiped, not merged into.
	if _, err := os.Stat(dest); err == nil {
		if err := os.RemoveAll(dest); err != nil {
			return "", fmt.Errorf("failed to remove existing destination %s: %v: %w", dest, err, sferrors.ErrTooling)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("failed to create parent directory for %s: %v: %w", dest, err, sferrors.ErrTooling)
	}

	remote := opts.RemoteURL
	if remote == "" {
		remote = fmt.Sprintf("https://github.com/%s/%s.git", opts.Owner, opts.Name)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, gitPath, "clone", remote, dest)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git clone %s failed: %s: %w",
			remote, bytes.TrimSpace(stderr.Bytes()), sferrors.ErrTooling)
	}

	return dest, nil
}

// isCommandNotFound reports whether an error indicates a missing executable.
func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return true
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, os.ErrNotExist) {
		return true
	}
	return false
}
