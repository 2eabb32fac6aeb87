package messages

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a catalog file into a Store whenever it changes on disk.
// A catalog that fails to parse is logged and the previous bundle kept.
type Watcher struct {
	path          string
	defaultLocale string
	store         *Store
	logger        *slog.Logger
	debounceDelay time.Duration
}

type WatcherOption func(*Watcher)

func WithDebounceDelay(delay time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounceDelay = delay
	}
}

func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

func NewWatcher(path string, defaultLocale string, store *Store, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve message catalog path: %w", err)
	}
	w := &Watcher{
		path:          absPath,
		defaultLocale: defaultLocale,
		store:         store,
		logger:        slog.Default(),
		debounceDelay: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run blocks until ctx is done. The parent directory is watched so editors
// that replace the file by rename are picked up too.
func (w *Watcher) Run(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch catalog directory: %w", err)
	}

	w.logger.Info("message catalog watch started",
		"event", "message_catalog_watch_started",
		"module", "internal/shared/messages",
		"layer", "platform",
		"path", w.path,
	)

	var debounce *time.Timer
	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.NewTimer(w.debounceDelay)
			reload = debounce.C
		case <-reload:
			reload = nil
			w.reload()
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("message catalog watch error",
				"event", "message_catalog_watch_error",
				"module", "internal/shared/messages",
				"layer", "platform",
				"error", err.Error(),
			)
		}
	}
}

func (w *Watcher) reload() {
	bundle, err := Load(w.path, w.defaultLocale)
	if err != nil {
		w.logger.Error("message catalog reload failed",
			"event", "message_catalog_reload_failed",
			"module", "internal/shared/messages",
			"layer", "platform",
			"path", w.path,
			"error", err.Error(),
		)
		return
	}
	w.store.Swap(bundle)
	w.logger.Info("message catalog reloaded",
		"event", "message_catalog_reloaded",
		"module", "internal/shared/messages",
		"layer", "platform",
		"locales", bundle.Locales(),
	)
}
