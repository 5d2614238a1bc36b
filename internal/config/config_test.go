package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	return tmp
}

func TestLoadConfig_NoFile(t *testing.T) {
	chdirTemp(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != nil {
		t.Errorf("expected nil config for missing file, got %+v", cfg)
	}
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	tmp := chdirTemp(t)

	content := "root: /work/decorator\nmanifests:\n  document: conf/tauri.conf.json\n"
	if err := os.WriteFile(filepath.Join(tmp, ConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/work/decorator" {
		t.Errorf("root = %q, want /work/decorator", cfg.Root)
	}
	if cfg.Manifests == nil || cfg.Manifests.Document != "conf/tauri.conf.json" {
		t.Errorf("unexpected manifests: %+v", cfg.Manifests)
	}
	if cfg.Manifests.Root != "" {
		t.Errorf("unset override should stay empty, got %q", cfg.Manifests.Root)
	}
}

func TestLoadConfig_UnknownKeyRejected(t *testing.T) {
	tmp := chdirTemp(t)

	if err := os.WriteFile(filepath.Join(tmp, ConfigFile), []byte("bogus: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected strict decoding to reject unknown keys")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("BUMPVER_ROOT", "/env/root")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/env/root" {
		t.Errorf("root = %q, want /env/root", cfg.Root)
	}
}

func TestLoadConfig_EnvTraversalRejected(t *testing.T) {
	chdirTemp(t)
	t.Setenv("BUMPVER_ROOT", "../../etc")

	_, err := loadConfig()
	if err == nil {
		t.Fatal("expected error for traversal path")
	}
	if !strings.Contains(err.Error(), "path traversal") {
		t.Errorf("unexpected error: %v", err)
	}
}
