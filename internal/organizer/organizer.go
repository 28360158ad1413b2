// Package organizer sorts files into category folders by extension and
// reports what lives in a directory tree.
package organizer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"tinkerbox/internal/logging"
)

// categoryExtensions maps each category folder to the extensions filed
// under it. Anything unmatched goes to "other".
var categoryExtensions = map[string][]string{
	"images":       {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg"},
	"documents":    {".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt"},
	"videos":       {".mp4", ".avi", ".mov", ".wmv", ".flv", ".mkv"},
	"audio":        {".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma"},
	"archives":     {".zip", ".rar", ".7z", ".tar", ".gz"},
	"code":         {".py", ".js", ".go", ".html", ".css", ".java", ".cpp", ".c"},
	"spreadsheets": {".xls", ".xlsx", ".csv", ".ods"},
}

// extensionCategory is the inverted lookup, built once.
var extensionCategory = func() map[string]string {
	m := make(map[string]string)
	for cat, exts := range categoryExtensions {
		for _, ext := range exts {
			m[ext] = cat
		}
	}
	return m
}()

// Classify returns the category folder for a filename.
func Classify(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if cat, ok := extensionCategory[ext]; ok {
		return cat
	}
	return "other"
}

// Categories lists every category folder, sorted, with "other" last.
func Categories() []string {
	out := make([]string, 0, len(categoryExtensions)+1)
	for cat := range categoryExtensions {
		out = append(out, cat)
	}
	sort.Strings(out)
	return append(out, "other")
}

// Options configures organizer runs.
type Options struct {
	// Exclude holds doublestar globs matched against paths relative to
	// the organized root. Matching files are left alone.
	Exclude []string
	// DryRun reports planned moves without touching the filesystem.
	DryRun bool
	// MaxWorkers bounds the concurrent stat workers during analysis.
	MaxWorkers int
}

func (o Options) excluded(rel string) (bool, error) {
	for _, pattern := range o.Exclude {
		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return false, fmt.Errorf("bad exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// CategoryStat aggregates one category during analysis.
type CategoryStat struct {
	Count int
	Size  int64
}

// FileInfo is one analyzed file.
type FileInfo struct {
	Path     string
	Size     int64
	Category string
}

// Analysis is the result of walking a tree.
type Analysis struct {
	Root       string
	TotalFiles int
	TotalSize  int64
	Categories map[string]CategoryStat
	// Largest holds the biggest files found, descending, at most ten.
	Largest []FileInfo
}

// Analyze walks root collecting per-category counts and sizes. File stats
// run on a bounded errgroup so large trees on slow disks parallelize.
func Analyze(ctx context.Context, root string, opts Options) (*Analysis, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", root, err)
	}
	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	result := &Analysis{Root: root, Categories: make(map[string]CategoryStat)}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		skip, err := opts.excluded(rel)
		if err != nil {
			return err
		}
		if skip {
			return nil
		}
		g.Go(func() error {
			info, err := d.Info()
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			cat := Classify(path)
			stat := result.Categories[cat]
			stat.Count++
			stat.Size += info.Size()
			result.Categories[cat] = stat
			result.TotalFiles++
			result.TotalSize += info.Size()
			result.Largest = insertLargest(result.Largest, FileInfo{Path: rel, Size: info.Size(), Category: cat}, 10)
			return nil
		})
		return nil
	})
	if werr := g.Wait(); err == nil {
		err = werr
	}
	if err != nil {
		return nil, err
	}
	logging.Organizer("Analyzed %s: %d files, %s", root, result.TotalFiles, HumanSize(result.TotalSize))
	return result, nil
}

// Move is one planned or executed file move.
type Move struct {
	From string
	To   string
}

// Organize files the direct children of root into category subdirectories.
// Already-organized files (inside a category folder) are left in place.
// Name collisions get a numeric suffix rather than overwriting. With
// DryRun set the returned moves are the plan only.
func Organize(root string, opts Options) ([]Move, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("organizing %s: %w", root, err)
	}
	categories := make(map[string]bool, len(categoryExtensions)+1)
	for _, c := range Categories() {
		categories[c] = true
	}

	var moves []Move
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		skip, err := opts.excluded(name)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		cat := Classify(name)
		destDir := filepath.Join(root, cat)
		dest, err := collisionFree(destDir, name, opts.DryRun)
		if err != nil {
			return nil, err
		}
		move := Move{From: filepath.Join(root, name), To: dest}
		if !opts.DryRun {
			if err := os.MkdirAll(destDir, 0o755); err != nil {
				return nil, fmt.Errorf("creating %s: %w", destDir, err)
			}
			if err := os.Rename(move.From, move.To); err != nil {
				return nil, fmt.Errorf("moving %s: %w", name, err)
			}
			logging.Organizer("Moved %s -> %s", move.From, move.To)
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// collisionFree returns a destination path that does not already exist,
// appending " (n)" before the extension as needed.
func collisionFree(dir, name string, dryRun bool) (string, error) {
	dest := filepath.Join(dir, name)
	if dryRun {
		return dest, nil
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		_, err := os.Stat(dest)
		if os.IsNotExist(err) {
			return dest, nil
		}
		if err != nil {
			return "", err
		}
		dest = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, n, ext))
	}
}

func insertLargest(list []FileInfo, f FileInfo, max int) []FileInfo {
	list = append(list, f)
	sort.Slice(list, func(i, j int) bool { return list[i].Size > list[j].Size })
	if len(list) > max {
		list = list[:max]
	}
	return list
}

// HumanSize renders a byte count like "1.5 MB".
func HumanSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", bytes)
	}
	return fmt.Sprintf("%.1f %s", size, units[i])
}
