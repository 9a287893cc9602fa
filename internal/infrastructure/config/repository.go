package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/btsnoop/extcapdev/internal/core/domain"
)

// Settings holds the user-tunable values. Zero values mean "use the
// default computed at startup".
type Settings struct {
	// ExtcapDir overrides the platform's personal Wireshark extcap
	// directory.
	ExtcapDir string `yaml:"extcap_dir"`

	// PluginName is the name of the extcap binary to link.
	PluginName string `yaml:"plugin_name"`

	// Source overrides the link target. Stored verbatim in the link.
	Source string `yaml:"source"`
}

// Repository loads settings from, in increasing priority: defaults, the
// config file, then environment variables. Flags are applied on top by the
// CLI layer.
type Repository struct {
	path string
}

// NewRepository creates a repository reading from path, or from the default
// location when path is empty.
func NewRepository(path string) *Repository {
	if path == "" {
		path = defaultPath()
	}
	return &Repository{path: path}
}

// Path returns the config file location this repository reads.
func (r *Repository) Path() string {
	return r.path
}

// Load merges all sources. A missing config file is not an error; a file
// that exists but does not parse is.
func (r *Repository) Load() (*Settings, error) {
	settings := &Settings{
		PluginName: domain.DefaultPluginName,
	}

	if data, err := os.ReadFile(r.path); err == nil {
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
		}
		if settings.PluginName == "" {
			settings.PluginName = domain.DefaultPluginName
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	if v := os.Getenv("EXTCAPDEV_EXTCAP_DIR"); v != "" {
		settings.ExtcapDir = v
	}
	if v := os.Getenv("EXTCAPDEV_PLUGIN_NAME"); v != "" {
		settings.PluginName = v
	}
	if v := os.Getenv("EXTCAPDEV_SOURCE"); v != "" {
		settings.Source = v
	}

	return settings, nil
}

// defaultPath is <home>/.config/extcapdev/config.yaml on every platform.
// Falls back to a relative path if the home directory cannot be determined.
func defaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "extcapdev-config.yaml"
	}
	return filepath.Join(homeDir, ".config", "extcapdev", "config.yaml")
}
