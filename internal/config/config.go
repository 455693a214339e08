// Package config loads and saves the goalie client configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all goalie configuration.
type Config struct {
	API        APIConfig        `toml:"api"`
	Form       FormConfig       `toml:"form"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL     string `toml:"base_url,omitempty"`
	AccessToken string `toml:"access_token,omitempty"`
}

// FormConfig holds goal-form preferences.
type FormConfig struct {
	CropSize   int  `toml:"crop_size"`
	KeepDrafts bool `toml:"keep_drafts"`
}

// AppearanceConfig holds terminal appearance settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:9090/api",
		},
		Form: FormConfig{
			CropSize:   200,
			KeepDrafts: true,
		},
		Appearance: AppearanceConfig{
			Theme: "hana",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "goalie")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "goalie")
}

// DataDir returns the XDG-compliant data directory (token file, drafts db).
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "goalie")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "goalie")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DraftsPath returns the full path to the drafts database.
func DraftsPath() string {
	return filepath.Join(DataDir(), "drafts.db")
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

// GetAccessToken returns the token from env var or config, in that order.
// An empty result means the file-backed token store decides.
func GetAccessToken(cfg Config) string {
	if token := os.Getenv("GOALIE_ACCESS_TOKEN"); token != "" {
		return token
	}
	return cfg.API.AccessToken
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
