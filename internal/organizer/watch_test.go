package organizer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchMovesNewFiles(t *testing.T) {
	if testing.Short() {
		t.Skip("watch test sleeps for the settle delay")
	}
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	moves, errs, err := Watch(ctx, dir, Options{})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "dropped.png"), []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case move := <-moves:
		want := filepath.Join(dir, "images", "dropped.png")
		if move.To != want {
			t.Fatalf("move.To = %s, want %s", move.To, want)
		}
		if _, err := os.Stat(want); err != nil {
			t.Fatalf("moved file missing: %v", err)
		}
	case err := <-errs:
		t.Fatalf("watch error: %v", err)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for watch move")
	}

	cancel()
	// Channel closes once the watcher goroutine exits.
	select {
	case _, ok := <-moves:
		if ok {
			t.Fatal("unexpected move after cancel")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("moves channel did not close")
	}
}

func TestWatchRejectsDryRun(t *testing.T) {
	if _, _, err := Watch(context.Background(), t.TempDir(), Options{DryRun: true}); err == nil {
		t.Fatal("expected error for dry-run watch")
	}
}
