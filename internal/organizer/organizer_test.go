package organizer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"photo.JPG", "images"},
		{"report.pdf", "documents"},
		{"song.mp3", "audio"},
		{"clip.mkv", "videos"},
		{"backup.tar", "archives"},
		{"main.go", "code"},
		{"budget.csv", "spreadsheets"},
		{"mystery.xyz", "other"},
		{"noextension", "other"},
	}
	for _, tc := range cases {
		if got := Classify(tc.name); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.jpg":        "12345",
		"b.png":        "123",
		"notes.txt":    "hello world",
		"sub/song.mp3": "audio-data",
		"sub/x.tmp":    "junk",
	})
	a, err := Analyze(context.Background(), dir, Options{Exclude: []string{"**/*.tmp"}})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.TotalFiles != 4 {
		t.Fatalf("TotalFiles = %d, want 4 (tmp excluded)", a.TotalFiles)
	}
	if got := a.Categories["images"]; got.Count != 2 || got.Size != 8 {
		t.Errorf("images stat = %+v, want count 2 size 8", got)
	}
	if got := a.Categories["audio"]; got.Count != 1 {
		t.Errorf("audio stat = %+v, want count 1", got)
	}
	if len(a.Largest) != 4 {
		t.Fatalf("Largest has %d entries, want 4", len(a.Largest))
	}
	for i := 1; i < len(a.Largest); i++ {
		if a.Largest[i-1].Size < a.Largest[i].Size {
			t.Fatalf("Largest not sorted: %+v", a.Largest)
		}
	}
}

func TestAnalyzeMissingRoot(t *testing.T) {
	if _, err := Analyze(context.Background(), filepath.Join(t.TempDir(), "ghost"), Options{}); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestOrganizeDryRun(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.jpg": "x", "b.txt": "y"})
	moves, err := Organize(dir, Options{DryRun: true})
	if err != nil {
		t.Fatalf("Organize: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("planned %d moves, want 2", len(moves))
	}
	// Nothing may have moved.
	if _, err := os.Stat(filepath.Join(dir, "a.jpg")); err != nil {
		t.Fatalf("dry run moved a file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "images")); !os.IsNotExist(err) {
		t.Fatal("dry run created a category directory")
	}
}

func TestOrganizeMovesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.jpg":    "x",
		"notes.md": "y",
		"keep.tmp": "z",
	})
	moves, err := Organize(dir, Options{Exclude: []string{"*.tmp"}})
	if err != nil {
		t.Fatalf("Organize: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("moved %d files, want 2", len(moves))
	}
	if _, err := os.Stat(filepath.Join(dir, "images", "a.jpg")); err != nil {
		t.Errorf("a.jpg not filed under images: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "other", "notes.md")); err != nil {
		t.Errorf("notes.md not filed under other: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "keep.tmp")); err != nil {
		t.Errorf("excluded file moved: %v", err)
	}
	// Organizing again must not touch the category folders.
	again, err := Organize(dir, Options{Exclude: []string{"*.tmp"}})
	if err != nil {
		t.Fatalf("second Organize: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("second pass moved %d files, want 0", len(again))
	}
}

func TestOrganizeCollision(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.jpg":        "new",
		"images/a.jpg": "existing",
	})
	moves, err := Organize(dir, Options{})
	if err != nil {
		t.Fatalf("Organize: %v", err)
	}
	if len(moves) != 1 {
		t.Fatalf("moved %d files, want 1", len(moves))
	}
	want := filepath.Join(dir, "images", "a (1).jpg")
	if moves[0].To != want {
		t.Fatalf("collision dest = %s, want %s", moves[0].To, want)
	}
	data, err := os.ReadFile(filepath.Join(dir, "images", "a.jpg"))
	if err != nil || string(data) != "existing" {
		t.Fatalf("existing file clobbered: %q, %v", data, err)
	}
}

func TestHumanSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
	}
	for _, tc := range cases {
		if got := HumanSize(tc.bytes); got != tc.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestCategoriesStable(t *testing.T) {
	cats := Categories()
	if cats[len(cats)-1] != "other" {
		t.Fatalf("last category = %q, want other", cats[len(cats)-1])
	}
	for i := 1; i < len(cats)-1; i++ {
		if cats[i-1] >= cats[i] {
			t.Fatalf("categories not sorted: %v", cats)
		}
	}
}
