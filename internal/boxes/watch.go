package boxes

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of write events editors produce on save into one reload.
const reloadDebounce = 200 * time.Millisecond

// Watch reloads the box file whenever it is written or recreated and sends each Result to out.
// The parent directory is watched rather than the file so atomic-rename saves are seen.
// Watch blocks until ctx is done. Sends are dropped while out is full, so a slow reader only sees the latest reload.
func Watch(ctx context.Context, path string, out chan<- Result) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch boxes: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch boxes: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch boxes %s: %w", path, err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending = time.After(reloadDebounce)
			}
		case <-pending:
			pending = nil
			select {
			case out <- Load(path):
			default:
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			select {
			case out <- Result{Path: path, Err: fmt.Errorf("watch boxes %s: %w", path, err)}:
			default:
			}
		}
	}
}
