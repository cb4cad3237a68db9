// internal/catalog/watcher.go
package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads an external foods file into a Store whenever it changes.
// A file that fails to parse is logged and the previous catalog kept.
type Watcher struct {
	path     string
	store    *Store
	logger   *zap.Logger
	onReload func(*Catalog)
}

func NewWatcher(path string, store *Store, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{path: path, store: store, logger: logger}
}

// OnReload registers a callback invoked after each successful reload.
func (w *Watcher) OnReload(fn func(*Catalog)) {
	w.onReload = fn
}

// Reload reads the foods file once and swaps it into the store.
func (w *Watcher) Reload() error {
	foods, err := LoadFoods(w.path)
	if err != nil {
		return err
	}
	next := w.store.Current().WithFoods(foods)
	w.store.Swap(next)
	w.logger.Info("Catalog reloaded", zap.String("path", w.path), zap.Int("foods", len(foods)))
	if w.onReload != nil {
		w.onReload(next)
	}
	return nil
}

// Run watches until ctx is cancelled. The parent directory is watched so
// editors that replace the file via rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.Reload(); err != nil {
				w.logger.Warn("Catalog reload failed, keeping previous catalog",
					zap.String("path", w.path), zap.Error(err))
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Catalog watcher error", zap.Error(err))
		}
	}
}
