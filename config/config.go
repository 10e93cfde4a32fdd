// Package config handles application configuration.
package config

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	appName        = "deskshell"
	configFileName = "config.json"
)

// Config represents the application configuration.
type Config struct {
	// Language is the tray menu language tag.
	Language string `json:"language"`
	LogLevel string `json:"log_level"`
	// InstanceKey is a hex secret shared by all launches of this install.
	// It encrypts arguments forwarded to the running instance.
	InstanceKey string `json:"instance_key"`
	// RestoreWindow restores the main window geometry on start.
	RestoreWindow bool `json:"restore_window"`

	path string
}

// Load loads configuration from the default path.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom loads configuration from path. A missing file yields the
// defaults. A missing instance key is generated and saved.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	if cfg.InstanceKey == "" {
		cfg.InstanceKey = newInstanceKey()
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Recover returns the defaults bound to the default path, for use when
// Load failed. An unreadable file is moved aside to config.json.bak and
// replaced, so later saves and the watcher keep working.
func Recover() *Config {
	path, err := DefaultPath()
	if err != nil {
		slog.Warn("config path unavailable, changes will not be saved", "error", err)
		return Default()
	}
	return RecoverAt(path)
}

// RecoverAt is Recover for an explicit path.
func RecoverAt(path string) *Config {
	cfg := Default()
	cfg.path = path
	cfg.InstanceKey = newInstanceKey()

	if err := os.Rename(path, path+".bak"); err != nil && !os.IsNotExist(err) {
		slog.Warn("back up config", "path", path, "error", err)
	}
	if err := cfg.Save(); err != nil {
		slog.Warn("rewrite config", "path", path, "error", err)
	}
	return cfg
}

// Default returns the default configuration. It has no path and no
// instance key.
func Default() *Config {
	return &Config{
		Language:      "en",
		LogLevel:      "info",
		RestoreWindow: true,
	}
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save persists the configuration to disk.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config has no path")
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// Write then rename so readers never see a truncated file.
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}

	return nil
}

// SetLanguage stores the tray menu language.
func (c *Config) SetLanguage(tag string) error {
	c.Language = tag
	return c.Save()
}

// DefaultPath returns the config file path under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

// newInstanceKey returns 32 random bytes, hex encoded.
func newInstanceKey() string {
	a, b := uuid.New(), uuid.New()
	return hex.EncodeToString(append(a[:], b[:]...))
}
