package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application-level configuration: where the view
// settings file lives and which directories the explorer works with.
// The user-editable view settings themselves (filters, context menu,
// icons) live in the settings file, not here.
type Config struct {
	Settings struct {
		Path string `yaml:"path"` // View settings file (JSON with comments)
	} `yaml:"settings"`
	Directories struct {
		DefaultRoot string `yaml:"default_root"` // Root a new project view opens at
		Trash       string `yaml:"trash"`        // Trash directory for soft deletes
		Projects    string `yaml:"projects"`     // Saved project files
	} `yaml:"directories"`
	Debug bool `yaml:"debug"` // Enable debug logging
}

// LoadConfig loads configuration from the default location
// (~/.config/explorer/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "explorer", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults.
	if tempCfg.Settings.Path != "" {
		cfg.Settings.Path = tempCfg.Settings.Path
	}
	if tempCfg.Directories.DefaultRoot != "" {
		cfg.Directories.DefaultRoot = tempCfg.Directories.DefaultRoot
	}
	if tempCfg.Directories.Trash != "" {
		cfg.Directories.Trash = tempCfg.Directories.Trash
	}
	if tempCfg.Directories.Projects != "" {
		cfg.Directories.Projects = tempCfg.Directories.Projects
	}
	cfg.Debug = tempCfg.Debug

	return cfg, nil
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	cfg.Settings.Path = filepath.Join(home, ".config", "explorer", "settings.json")
	cfg.Directories.DefaultRoot = home
	cfg.Directories.Trash = filepath.Join(home, ".local", "share", "explorer", "trash")
	cfg.Directories.Projects = filepath.Join(home, ".local", "share", "explorer", "projects")
	return cfg
}
