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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrConfig indicates the configuration file could not be loaded or
	// the default configuration could not be persisted.
	// Maps to exit code 2.
	ErrConfig = errors.New("invalid configuration")

	// ErrBadCredentials indicates the token or API URL is missing, or GitHub
	// rejected the token during validation.
	// Maps to exit code 2.
	ErrBadCredentials = errors.New("invalid github credentials")

	// ErrRepoNotFound indicates the specified repository does not exist or is not accessible.
	// Maps to exit code 2.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrNetworkFailure indicates a network connection problem (DNS, TLS,
	// connection refused, or request timeout).
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrUnexpectedStatus indicates the API answered with a status code the
	// operation does not accept. The wrapping error carries the status and
	// the redacted response body text.
	// Maps to exit code 1.
	ErrUnexpectedStatus = errors.New("unexpected api status")

	// ErrMalformedResponse indicates the API answered successfully but the
	// body did not have the documented shape (e.g. missing owner login).
	// Maps to exit code 1.
	ErrMalformedResponse = errors.New("malformed api response")

	// ErrTooling indicates a required external binary (git) is missing or
	// exited non-zero.
	// Maps to exit code 1.
	ErrTooling = errors.New("external tool failed")
)
