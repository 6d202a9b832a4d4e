// ABOUTME: Credential storage for API keys with restricted file permissions
// ABOUTME: Reads/writes auth.json under the config dir; environment takes precedence

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
)

// AuthStore holds API keys by provider name ("groq" today).
type AuthStore struct {
	Keys map[string]string `json:"keys"`
	mu   sync.Mutex
}

// LoadAuth reads the auth file, or returns an empty store if it doesn't exist.
func LoadAuth() (*AuthStore, error) {
	store := &AuthStore{Keys: make(map[string]string)}
	data, err := os.ReadFile(AuthFile())
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading auth file: %w", err)
	}
	if err := json.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("parsing auth file: %w", err)
	}
	if store.Keys == nil {
		store.Keys = make(map[string]string)
	}
	return store, nil
}

// Save writes the auth store to disk with 0600 permissions.
func (a *AuthStore) Save() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := EnsureDir(); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling auth: %w", err)
	}
	if err := os.WriteFile(AuthFile(), data, 0o600); err != nil {
		return fmt.Errorf("writing auth file: %w", err)
	}
	return nil
}

// GetKey returns the API key for a provider. The environment variable
// <PROVIDER>_API_KEY wins over the stored key so one-off overrides work.
func (a *AuthStore) GetKey(provider string) string {
	if v := os.Getenv(strings.ToUpper(provider) + "_API_KEY"); v != "" {
		return v
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Keys[provider]
}

// SetKey stores an API key for a provider.
func (a *AuthStore) SetKey(provider, key string) {
	a.mu.Lock()
	a.Keys[provider] = key
	a.mu.Unlock()
}

// Groq API keys look like gsk_ followed by at least 40 alphanumerics.
var groqKeyPattern = regexp.MustCompile(`^gsk_[a-zA-Z0-9]{40,}$`)

// ValidGroqKey reports whether key matches the expected Groq key format.
// Format-valid does not mean the key works; it catches paste accidents.
func ValidGroqKey(key string) bool {
	return groqKeyPattern.MatchString(key)
}
