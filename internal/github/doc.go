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

// Package github provides a typed client for the GitHub REST API covering
// repository metadata and the authenticated user's starred repositories.
// Every operation maps to exactly one HTTP request and translates the
// response status into a typed result or a sentinel-wrapped error.
//
// The package includes:
//   - A Client interface for repository and star operations
//   - A REST implementation built on net/http with bearer authentication
//   - Mock client for testing
//   - Strict response types that reject malformed upstream bodies
//
// Basic usage:
//
//	client := github.NewRESTClient("your-github-token", "https://api.github.com")
//	repo, err := client.GetRepo(ctx, "octocat", "hello-world")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(repo.Owner.Login, repo.Stars)
package github
