package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Games.DefaultPlayer = "ada"
	cfg.Organizer.DryRun = true
	cfg.Logging.DebugMode = true

	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(Path(dir)); err != nil {
		t.Fatalf("Expected config file: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("Roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TINK_PLAYER", "grace")
	t.Setenv("TINK_DEBUG", "true")
	t.Setenv("TINK_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Games.DefaultPlayer != "grace" {
		t.Errorf("Expected player override, got %q", cfg.Games.DefaultPlayer)
	}
	if !cfg.Logging.DebugMode {
		t.Error("Expected debug mode override")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected level override, got %q", cfg.Logging.Level)
	}
}

func TestDatabasePathResolution(t *testing.T) {
	cfg := DefaultConfig()

	got := cfg.DatabasePath("/tmp/tbhome")
	if got != filepath.Join("/tmp/tbhome", "tinkerbox.db") {
		t.Errorf("Unexpected relative resolution: %s", got)
	}

	cfg.Store.DatabasePath = "/var/data/x.db"
	if cfg.DatabasePath("/tmp/tbhome") != "/var/data/x.db" {
		t.Error("Absolute path must win over home")
	}
}
