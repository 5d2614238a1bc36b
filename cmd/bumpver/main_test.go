package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRunCLI_ConfigFileRoot exercises the full wiring: a .bumpver.yaml in
// the working directory pointing at the project root, manifests on disk,
// and a bump-triggering commit message.
func TestRunCLI_ConfigFileRoot(t *testing.T) {
	tmp := t.TempDir()

	cargoPath := filepath.Join(tmp, "Cargo.toml")
	if err := os.WriteFile(cargoPath, []byte("[package]\nname = \"decorator\"\nversion = \"0.9.1\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, ".bumpver.yaml"), []byte("root: "+tmp+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

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

	if err := runCLI([]string{"bumpver", "--no-color", "feature(viewer): add frame stepping"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(cargoPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "version = \"0.10.0\"") {
		t.Errorf("manifest not bumped via config root:\n%s", data)
	}
}

// TestRunCLI_BadConfig ensures a malformed config file aborts the run.
func TestRunCLI_BadConfig(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".bumpver.yaml"), []byte("unknown-key: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

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

	if err := runCLI([]string{"bumpver", "fix(core): patch bug"}); err == nil {
		t.Fatal("expected error from malformed config")
	}
}
