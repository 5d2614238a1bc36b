// Package manifest reads and rewrites the version field in the project
// manifest files that must stay in sync during a release.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decorator-app/bumpver/internal/config"
)

// Format represents the edit strategy for a manifest target.
type Format string

const (
	// FormatTOMLSection is for TOML manifests where only the version key
	// inside the [package] section is touched, line by line (Cargo.toml).
	FormatTOMLSection Format = "toml-section"

	// FormatJSONDocument is for JSON manifests with a top-level version
	// key (tauri.conf.json).
	FormatJSONDocument Format = "json-document"
)

// Target is a manifest file to keep in sync, addressed relative to the
// project root.
type Target struct {
	// Path is the file path relative to the project root.
	Path string

	// Format selects the write strategy.
	Format Format

	// Required marks the root manifest; its absence is fatal since it is
	// the source of truth for the current version. Optional targets are
	// silently skipped when missing.
	Required bool
}

var (
	// ErrMissingManifest is returned when the required root manifest is
	// absent or unreadable.
	ErrMissingManifest = errors.New("root manifest not found")

	// ErrVersionKeyNotFound is returned when a manifest parses cleanly
	// but carries no usable version key.
	ErrVersionKeyNotFound = errors.New("version key not found")
)

// executablePath is a variable so tests can substitute a fixed location.
var executablePath = os.Executable

// DefaultRoot returns the default project root: the directory two levels
// above the installed binary (mirroring a tool living under <root>/scripts).
func DefaultRoot() (string, error) {
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// ResolveRoot picks the project root from, in priority order, the --root
// flag, the configuration file, and the executable-relative default.
func ResolveRoot(flagRoot string, cfg *config.Config) (string, error) {
	if flagRoot != "" {
		return flagRoot, nil
	}
	if cfg != nil && cfg.Root != "" {
		return cfg.Root, nil
	}
	return DefaultRoot()
}

// Targets returns the manifest targets, root manifest first, applying any
// path overrides from the configuration.
func Targets(cfg *config.Config) []Target {
	root := "Cargo.toml"
	nested := filepath.Join("src-tauri", "Cargo.toml")
	document := filepath.Join("src-tauri", "tauri.conf.json")

	if cfg != nil && cfg.Manifests != nil {
		if cfg.Manifests.Root != "" {
			root = cfg.Manifests.Root
		}
		if cfg.Manifests.Nested != "" {
			nested = cfg.Manifests.Nested
		}
		if cfg.Manifests.Document != "" {
			document = cfg.Manifests.Document
		}
	}

	return []Target{
		{Path: root, Format: FormatTOMLSection, Required: true},
		{Path: nested, Format: FormatTOMLSection},
		{Path: document, Format: FormatJSONDocument},
	}
}
