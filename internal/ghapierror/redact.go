package ghapierror

import "strings"

// redactedPlaceholder replaces token material in error text.
const redactedPlaceholder = "[REDACTED]"

// Redact removes the given bearer token from s. Response bodies are echoed
// into error messages verbatim, and GitHub error bodies occasionally reflect
// request headers back, so every body string must pass through here before
// it reaches an error. An empty token leaves s unchanged.
func Redact(s, token string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, redactedPlaceholder)
}
