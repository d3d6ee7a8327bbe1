// Package ghapierror provides error inspection for GitHub REST API failures.
// It centralizes the logic for telling transport-level failures apart from
// authentication and not-found responses, and for scrubbing bearer tokens out
// of text that ends up in error messages.
package ghapierror
