package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reports executable-path changes made to the store's file by
// other processes (an editor, a second upxgui instance).
type Watcher struct {
	store    *Store
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(path string)
	logger   *logrus.Entry

	mu         sync.Mutex
	lastChange time.Time
	lastValue  string
}

// NewWatcher watches the directory holding the store's file. fsnotify does
// not survive the rename-over-write many editors perform on the file itself,
// so the parent directory is watched and events are filtered by name.
// onChange receives the newly persisted path; unchanged or unreadable
// contents are skipped.
func NewWatcher(store *Store, debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(filepath.Dir(store.Path())); err != nil {
		fw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	current, _ := store.read()
	return &Watcher{
		store:     store,
		watcher:   fw,
		debounce:  debounce,
		onChange:  onChange,
		logger:    store.logger.WithField("watch", store.Path()),
		lastValue: current,
	}, nil
}

// Start processes file events until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	target := filepath.Clean(w.store.Path())
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.handleChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// handleChange re-reads the store with debouncing. The store is read
// directly rather than through Load so a half-written file is skipped
// instead of being replaced with the default.
func (w *Watcher) handleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if elapsed := time.Since(w.lastChange); elapsed < w.debounce {
		return
	}

	value, err := w.store.read()
	if err != nil {
		w.logger.WithError(err).Debug("Ignoring unreadable config change")
		return
	}
	w.lastChange = time.Now()
	if value == w.lastValue {
		return
	}
	w.lastValue = value

	w.logger.WithField(KeyExecutablePath, value).Info("Configuration changed on disk")
	if w.onChange != nil {
		w.onChange(value)
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
