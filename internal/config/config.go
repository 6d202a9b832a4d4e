// ABOUTME: Settings loading: defaults, YAML file, .env, environment overrides
// ABOUTME: The API key never lives here; it belongs to the auth store

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ronniebasak/ffai/pkg/groq"
)

// Settings holds everything tunable about a chat session. Values come
// from defaults, then the settings file, then the environment — later
// sources win.
type Settings struct {
	Model       string  `yaml:"model,omitempty"`
	BaseURL     string  `yaml:"base_url,omitempty"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	TopP        float64 `yaml:"top_p"`
	System      string  `yaml:"system,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Model:       groq.DefaultModel,
		BaseURL:     groq.DefaultBaseURL,
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        1.0,
	}
}

// Load reads settings from the config file and environment. A missing
// file is fine; a malformed one is an error. A .env file in the working
// directory is loaded first so GROQ_API_KEY and friends are visible.
func Load() (*Settings, error) {
	// Absence of .env is the normal case.
	_ = godotenv.Load()

	s := Defaults()

	data, err := os.ReadFile(SettingsFile())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", SettingsFile(), err)
		}
	case os.IsNotExist(err):
		// no file, keep defaults
	default:
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	applyEnv(s)
	return s, nil
}

// Save writes the settings file.
func (s *Settings) Save() error {
	if err := EnsureDir(); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(SettingsFile(), data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// applyEnv overlays environment variables on top of file values.
func applyEnv(s *Settings) {
	if v := os.Getenv("FFAI_MODEL"); v != "" {
		s.Model = v
	}
	if v := os.Getenv("GROQ_BASE_URL"); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv("FFAI_SYSTEM"); v != "" {
		s.System = v
	}
	if v := os.Getenv("FFAI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.Temperature = f
		}
	}
	if v := os.Getenv("FFAI_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.MaxTokens = n
		}
	}
}
