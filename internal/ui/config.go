package ui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/renderer"
)

// AppConfig stores persistent application settings
type AppConfig struct {
	Theme                string `json:"theme"`     // "light" or "dark"
	ShowGrid             bool   `json:"show_grid"` // draw the snapping lattice
	StatusTimeoutSeconds int    `json:"status_timeout_seconds"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:                renderer.ThemeLight.String(),
		ShowGrid:             true,
		StatusTimeoutSeconds: 2,
	}
}

// StatusTimeout returns how long transient status messages stay visible.
func (c *AppConfig) StatusTimeout() time.Duration {
	if c.StatusTimeoutSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.StatusTimeoutSeconds) * time.Second
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	var configDir string
	if os.Getenv("APPDATA") != "" {
		// Windows: use %APPDATA%\CircuitTikZ
		configDir = filepath.Join(os.Getenv("APPDATA"), "CircuitTikZ")
	} else {
		// Linux/macOS: use ~/.config/circuittikz
		configDir = filepath.Join(homeDir, ".config", "circuittikz")
	}

	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the application configuration
func LoadConfig() (*AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads settings from path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfigFrom(path string) (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the application configuration
func SaveConfig(config *AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(path, config)
}

// SaveConfigTo writes config to path, creating the directory if needed.
func SaveConfigTo(path string, config *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
