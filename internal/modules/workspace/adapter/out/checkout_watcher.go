package adapterout

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const watchDebounce = 500 * time.Millisecond

// CheckoutWatcher watches a project checkout and emits a tick after edits
// settle, so the editor view can offer a sync. Events within the debounce
// window collapse into one tick.
type CheckoutWatcher struct {
	log *zap.Logger
}

func NewCheckoutWatcher(log *zap.Logger) *CheckoutWatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutWatcher{log: log}
}

// Watch runs until ctx is done. Changed is closed on return.
func (w *CheckoutWatcher) Watch(ctx context.Context, dir string) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addRecursive(watcher, dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	changed := make(chan struct{}, 1)
	go func() {
		defer close(changed)
		defer func() { _ = watcher.Close() }()

		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if strings.HasPrefix(filepath.Base(event.Name), ".") {
					continue
				}
				if event.Op&fsnotify.Create != 0 {
					// New subdirectories need their own watch.
					_ = addRecursive(watcher, event.Name)
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
					fire = timer.C
				} else {
					timer.Reset(watchDebounce)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.log.Warn("checkout watch error", zap.Error(err))
			case <-fire:
				timer = nil
				fire = nil
				select {
				case changed <- struct{}{}:
				default:
				}
			}
		}
	}()
	return changed, nil
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The path may have vanished between event and walk.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
