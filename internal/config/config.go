// Package config loads and saves the finza TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all finza configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Advisor    AdvisorConfig    `toml:"advisor"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency string `toml:"currency"`
	DataDir  string `toml:"data_dir,omitempty"`
}

// AdvisorConfig holds settings for the AI advice endpoint.
type AdvisorConfig struct {
	APIKey     string `toml:"api_key,omitempty"`
	BaseURL    string `toml:"base_url,omitempty"`
	Model      string `toml:"model,omitempty"`
	DebounceMs int    `toml:"debounce_ms"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "$",
		},
		Advisor: AdvisorConfig{
			DebounceMs: 1500,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finza")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finza")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataPath returns the snapshot database path, honoring the config
// override and XDG_DATA_HOME.
func DataPath(cfg Config) string {
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "finza.db")
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finza", "finza.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "finza", "finza.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Advisor.DebounceMs <= 0 {
		cfg.Advisor.DebounceMs = 1500
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetAdvisorKey returns the API key from env var or config, in that order.
func GetAdvisorKey(cfg Config) string {
	if key := os.Getenv("FINZA_API_KEY"); key != "" {
		return key
	}
	return cfg.Advisor.APIKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
