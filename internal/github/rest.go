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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	sferrors "github.com/starfetchhq/starfetch/internal/errors"
	"github.com/starfetchhq/starfetch/internal/ghapierror"
)

// RESTClient implements the GitHub Client interface against the REST API.
// It is immutable after construction and safe to reuse for the lifetime of
// a command invocation. One request is in flight at a time; each call owns
// its request/response lifecycle independently.
type RESTClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	inspector  ghapierror.Inspector
}

// NewRESTClient creates a client without checking credentials. An empty
// token is allowed here and limits the client to anonymous public reads;
// use NewValidatedClient when authenticated operations must succeed.
func NewRESTClient(token, baseURL string) *RESTClient {
	return &RESTClient{
		httpClient: newHTTPClient(token),
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		inspector:  ghapierror.NewInspector(),
	}
}

// NewValidatedClient creates a client and confirms the credentials before
// returning it. Construction fails on an empty token or base URL, and on a
// token the API rejects.
func NewValidatedClient(ctx context.Context, token, baseURL string) (*RESTClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("api url is empty: %w", sferrors.ErrBadCredentials)
	}
	if token == "" {
		return nil, fmt.Errorf("github token is empty. Set GITHUB_TOKEN or add a token to the config file: %w", sferrors.ErrBadCredentials)
	}

	client := NewRESTClient(token, baseURL)
	if err := client.ValidateAuth(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

// GetRepo retrieves the summary record for a single repository.
func (c *RESTClient) GetRepo(ctx context.Context, owner, name string) (*RepoSummary, error) {
	status, body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s", pathEscape(owner), pathEscape(name)))
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, c.statusError("failed to fetch repository", owner, name, status, body)
	}

	var repo RepoSummary
	if err := json.Unmarshal(body, &repo); err != nil {
		return nil, fmt.Errorf("failed to decode repository %s/%s: %v: %w", owner, name, err, sferrors.ErrMalformedResponse)
	}
	if err := repo.validate(); err != nil {
		return nil, err
	}

	return &repo, nil
}

// ListStarred retrieves the authenticated user's starred repositories.
// An empty list is a valid result, not an error.
func (c *RESTClient) ListStarred(ctx context.Context) ([]RepoSummary, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/user/starred")
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, c.apiError("failed to list starred repositories", status, body)
	}

	var repos []RepoSummary
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, fmt.Errorf("failed to decode starred repositories: %v: %w", err, sferrors.ErrMalformedResponse)
	}
	for i := range repos {
		if err := repos[i].validate(); err != nil {
			return nil, err
		}
	}

	return repos, nil
}

// GetRepoDetails retrieves the extended record for a single repository.
func (c *RESTClient) GetRepoDetails(ctx context.Context, owner, name string) (*RepoDetails, error) {
	status, body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s", pathEscape(owner), pathEscape(name)))
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, c.statusError("failed to fetch repository details", owner, name, status, body)
	}

	var details RepoDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to decode repository %s/%s: %v: %w", owner, name, err, sferrors.ErrMalformedResponse)
	}
	if err := details.validate(); err != nil {
		return nil, err
	}

	return &details, nil
}

// Star stars a repository for the authenticated user. GitHub documents 204
// for this endpoint; 200 is accepted as well for proxy compatibility.
func (c *RESTClient) Star(ctx context.Context, owner, name string) error {
	status, body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/user/starred/%s/%s", pathEscape(owner), pathEscape(name)))
	if err != nil {
		return err
	}

	if status != http.StatusNoContent && status != http.StatusOK {
		return c.apiError(fmt.Sprintf("failed to star %s/%s", owner, name), status, body)
	}
	return nil
}

// Unstar removes a star from a repository for the authenticated user.
func (c *RESTClient) Unstar(ctx context.Context, owner, name string) error {
	status, body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/starred/%s/%s", pathEscape(owner), pathEscape(name)))
	if err != nil {
		return err
	}

	if status != http.StatusNoContent && status != http.StatusOK {
		return c.apiError(fmt.Sprintf("failed to unstar %s/%s", owner, name), status, body)
	}
	return nil
}

// IsStarred reports whether the authenticated user has starred the
// repository. The endpoint answers 204 for starred and 404 for not
// starred; everything else, including 401 for a bad token, is an error.
func (c *RESTClient) IsStarred(ctx context.Context, owner, name string) (bool, error) {
	status, body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/starred/%s/%s", pathEscape(owner), pathEscape(name)))
	if err != nil {
		return false, err
	}

	switch status {
	case http.StatusNoContent:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, c.apiError(fmt.Sprintf("failed to check star state of %s/%s", owner, name), status, body)
	}
}

// ValidateAuth performs an authenticated request against /user and treats
// any 2xx as a valid token.
func (c *RESTClient) ValidateAuth(ctx context.Context) error {
	status, body, err := c.do(ctx, http.MethodGet, "/user")
	if err != nil {
		return err
	}

	if status < 200 || status > 299 {
		return fmt.Errorf("github rejected the token: status %d: %s: %w",
			status, c.redact(body), sferrors.ErrBadCredentials)
	}
	return nil
}

// do issues a single HTTP request and returns the status code and the full
// response body. Transport-level failures (DNS, TLS, connection refused,
// timeout) surface as ErrNetworkFailure, kept distinct from status-code
// handling which is left entirely to the caller.
func (c *RESTClient) do(ctx context.Context, method, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.inspector.IsNetworkError(err) {
			return 0, nil, fmt.Errorf("request %s %s failed: %v: %w",
				method, path, c.redactErr(err), sferrors.ErrNetworkFailure)
		}
		// Context cancellation and the like pass through unclassified.
		return 0, nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %v: %w", c.redactErr(err), sferrors.ErrNetworkFailure)
	}

	return resp.StatusCode, body, nil
}

// statusError maps a non-200 fetch status to a typed error. 404 gets the
// dedicated not-found sentinel so the CLI can exit with the right code.
func (c *RESTClient) statusError(msg, owner, name string, status int, body []byte) error {
	if status == http.StatusNotFound {
		return fmt.Errorf("%s: repository '%s/%s' does not exist or is not accessible: %w",
			msg, owner, name, sferrors.ErrRepoNotFound)
	}
	return c.apiError(fmt.Sprintf("%s: %s/%s", msg, owner, name), status, body)
}

// apiError classifies an unexpected API status into the error taxonomy.
// The inspector works on the composed status line, so bodies that spell
// out "Bad credentials" or "Not Found" classify even when a proxy rewrote
// the status code.
func (c *RESTClient) apiError(msg string, status int, body []byte) error {
	detail := fmt.Sprintf("%s: status %d: %s", msg, status, c.redact(body))
	probe := errors.New(detail)
	switch {
	case c.inspector.IsNotFoundError(probe):
		return fmt.Errorf("%s: %w", detail, sferrors.ErrRepoNotFound)
	case c.inspector.IsAuthError(probe):
		return fmt.Errorf("%s: %w", detail, sferrors.ErrBadCredentials)
	default:
		return fmt.Errorf("%s: %w", detail, sferrors.ErrUnexpectedStatus)
	}
}

// redact scrubs the bearer token out of response body text before it is
// embedded in an error message.
func (c *RESTClient) redact(body []byte) string {
	return ghapierror.Redact(strings.TrimSpace(string(body)), c.token)
}

func (c *RESTClient) redactErr(err error) string {
	return ghapierror.Redact(err.Error(), c.token)
}

func pathEscape(s string) string {
	return url.PathEscape(s)
}
