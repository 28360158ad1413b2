package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitializeWithoutConfig(t *testing.T) {
	dir := t.TempDir()

	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	// No config file means quiet mode: no logs dir, no output
	if IsDebugMode() {
		t.Error("Expected debug mode off without a config file")
	}
	if _, err := os.Stat(filepath.Join(dir, "logs")); !os.IsNotExist(err) {
		t.Error("Expected no logs directory in quiet mode")
	}

	// Calls must be safe no-ops
	Store("should not panic")
	Get(CategoryGames).Error("still no panic")
}

func TestInitializeDebugMode(t *testing.T) {
	dir := t.TempDir()
	cfg := "logging:\n  debug_mode: true\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	if !IsDebugMode() {
		t.Fatal("Expected debug mode on")
	}

	Get(CategoryStore).Info("hello %s", "store")

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("Expected logs directory: %v", err)
	}
	found := false
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			found = true
		}
	}
	if !found {
		t.Error("Expected at least one log file")
	}
}

func TestCategoryFilter(t *testing.T) {
	dir := t.TempDir()
	cfg := "logging:\n  debug_mode: true\n  level: info\n  categories:\n    vault: false\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	if IsCategoryEnabled(CategoryVault) {
		t.Error("Expected vault category disabled")
	}
	if !IsCategoryEnabled(CategoryStore) {
		t.Error("Expected unlisted category enabled by default")
	}
}
