// ABOUTME: Base URL normalization to prevent double-versioned API paths
// ABOUTME: Strips a sole trailing /openai/v1 or /v1 so callers can paste console URLs

package httputil

import (
	"net/url"
	"strings"
)

// NormalizeBaseURL strips a trailing "/openai/v1" or "/v1" (and any trailing
// slash) from a base URL. The client appends "/openai/v1/..." itself, so a
// base URL copied from API docs would otherwise produce paths like
// "/openai/v1/openai/v1/chat/completions". Only a sole top-level version
// path is stripped, not one nested under a longer prefix.
func NormalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	baseURL = strings.TrimRight(baseURL, "/")

	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}

	switch u.Path {
	case "/openai/v1", "/v1":
		u.Path = ""
		return strings.TrimRight(u.String(), "/")
	}

	return baseURL
}
