// ABOUTME: Filesystem locations for ffai configuration
// ABOUTME: Settings and credentials live under the platform user config directory

package config

import (
	"os"
	"path/filepath"
)

// Dir returns the ffai config directory. FFAI_CONFIG_DIR overrides the
// platform default; tests rely on this.
func Dir() string {
	if dir := os.Getenv("FFAI_CONFIG_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "ffai")
}

// SettingsFile returns the path of the YAML settings file.
func SettingsFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// AuthFile returns the path of the credential store.
func AuthFile() string {
	return filepath.Join(Dir(), "auth.json")
}

// EnsureDir creates the config directory if it doesn't exist.
func EnsureDir() error {
	return os.MkdirAll(Dir(), 0o700)
}
