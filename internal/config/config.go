// Package config loads the optional .bumpver.yaml configuration file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ConfigFile is the name of the optional configuration file, looked up in
// the working directory.
const ConfigFile = ".bumpver.yaml"

// ManifestPaths overrides the default manifest locations, relative to the
// project root. Format kinds are fixed per target and cannot be changed.
type ManifestPaths struct {
	Root     string `yaml:"root,omitempty"`
	Nested   string `yaml:"nested,omitempty"`
	Document string `yaml:"document,omitempty"`
}

// Config is the bumpver configuration structure.
type Config struct {
	// Root overrides the project root directory. Relative paths are
	// resolved against the working directory.
	Root string `yaml:"root,omitempty"`

	// Manifests overrides the default manifest file locations.
	Manifests *ManifestPaths `yaml:"manifests,omitempty"`
}

// LoadConfigFn loads the configuration. It is a variable so tests can
// substitute a stub.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	// Highest priority: ENV variable
	if envRoot := os.Getenv("BUMPVER_ROOT"); envRoot != "" {
		cleanRoot := filepath.Clean(envRoot)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanRoot, "..") {
			return nil, fmt.Errorf("invalid BUMPVER_ROOT: path traversal not allowed, use absolute path instead")
		}
		return &Config{Root: cleanRoot}, nil
	}

	// Second priority: YAML file
	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // fallback to defaults
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	return &cfg, nil
}
