package organizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"tinkerbox/internal/logging"
)

// settleDelay is how long Watch waits after a create event before moving
// the file, letting writers finish.
const settleDelay = 500 * time.Millisecond

// Watch organizes files as they appear in root. Each create event files
// the new entry into its category folder after a short settle delay.
// Moves are reported on the returned channel, which closes when ctx ends.
func Watch(ctx context.Context, root string, opts Options) (<-chan Move, <-chan error, error) {
	if opts.DryRun {
		return nil, nil, fmt.Errorf("watch mode cannot run dry")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("starting watcher: %w", err)
	}
	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watching %s: %w", root, err)
	}

	moves := make(chan Move)
	errs := make(chan error, 1)
	go func() {
		defer watcher.Close()
		defer close(moves)
		defer close(errs)
		logging.Organizer("Watching %s", root)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) {
					continue
				}
				move, err := handleCreate(ctx, root, event.Name, opts)
				if err != nil {
					select {
					case errs <- err:
					default:
					}
					continue
				}
				if move == nil {
					continue
				}
				select {
				case moves <- *move:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				default:
				}
			}
		}
	}()
	return moves, errs, nil
}

func handleCreate(ctx context.Context, root, path string, opts Options) (*Move, error) {
	select {
	case <-time.After(settleDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	info, err := os.Stat(path)
	if err != nil {
		// Gone already, e.g. an editor temp file.
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, nil
	}
	name := filepath.Base(path)
	skip, err := opts.excluded(name)
	if err != nil || skip {
		return nil, err
	}
	cat := Classify(name)
	destDir := filepath.Join(root, cat)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", destDir, err)
	}
	dest, err := collisionFree(destDir, name, false)
	if err != nil {
		return nil, err
	}
	if err := os.Rename(path, dest); err != nil {
		return nil, fmt.Errorf("moving %s: %w", name, err)
	}
	logging.Organizer("Watched move %s -> %s", path, dest)
	return &Move{From: path, To: dest}, nil
}
