// ABOUTME: Tests for settings loading precedence and persistence
// ABOUTME: Uses t.Setenv with FFAI_CONFIG_DIR pointed at a temp dir

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FFAI_CONFIG_DIR", t.TempDir())
	t.Setenv("FFAI_MODEL", "")
	t.Setenv("GROQ_BASE_URL", "")
	t.Setenv("FFAI_TEMPERATURE", "")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Model == "" {
		t.Error("default model is empty")
	}
	if s.BaseURL == "" {
		t.Error("default base URL is empty")
	}
	if s.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", s.Temperature)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FFAI_CONFIG_DIR", dir)
	t.Setenv("FFAI_MODEL", "")
	t.Setenv("GROQ_BASE_URL", "")

	content := "model: llama-3.1-8b-instant\ntemperature: 0.2\nmax_tokens: 256\nsystem: be brief\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Model != "llama-3.1-8b-instant" {
		t.Errorf("Model = %q", s.Model)
	}
	if s.Temperature != 0.2 {
		t.Errorf("Temperature = %v, want 0.2", s.Temperature)
	}
	if s.MaxTokens != 256 {
		t.Errorf("MaxTokens = %d, want 256", s.MaxTokens)
	}
	if s.System != "be brief" {
		t.Errorf("System = %q", s.System)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FFAI_CONFIG_DIR", dir)

	content := "model: from-file\nbase_url: https://file.example.com\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	t.Setenv("FFAI_MODEL", "from-env")
	t.Setenv("GROQ_BASE_URL", "https://env.example.com")
	t.Setenv("FFAI_TEMPERATURE", "1.5")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Model != "from-env" {
		t.Errorf("Model = %q, want env value", s.Model)
	}
	if s.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, want env value", s.BaseURL)
	}
	if s.Temperature != 1.5 {
		t.Errorf("Temperature = %v, want 1.5", s.Temperature)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FFAI_CONFIG_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("model: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed settings file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("FFAI_CONFIG_DIR", t.TempDir())
	t.Setenv("FFAI_MODEL", "")
	t.Setenv("GROQ_BASE_URL", "")
	t.Setenv("FFAI_TEMPERATURE", "")

	s := Defaults()
	s.Model = "saved-model"
	s.Temperature = 0.3
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Model != "saved-model" {
		t.Errorf("Model = %q, want saved-model", loaded.Model)
	}
	if loaded.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", loaded.Temperature)
	}
}
