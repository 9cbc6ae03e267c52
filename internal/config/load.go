package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	return cfg, nil
}

// LoadFile loads defaults overlaid with the file at path, ignoring flags.
// An empty path falls back to the standard locations.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./meshforge.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Meshforge")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Meshforge")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "meshforge")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "meshforge")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// A shapes list in the file replaces the default catalog.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// ShapePath resolves a shape entry's path against ModelDir.
func (a AssetsConfig) ShapePath(s ShapeConfig) string {
	if filepath.IsAbs(s.Path) || a.ModelDir == "" {
		return s.Path
	}
	return filepath.Join(a.ModelDir, s.Path)
}

// TexturePath resolves a texture file name against TextureDir.
func (a AssetsConfig) TexturePath(name string) string {
	if filepath.IsAbs(name) || a.TextureDir == "" {
		return name
	}
	return filepath.Join(a.TextureDir, name)
}
