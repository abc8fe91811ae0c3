package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"greetcard/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a script file whenever it changes on disk. It watches the
// parent directory so editors that save by rename are still seen.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	path        string
	onReload    func(*Script)
	debounceDur time.Duration
	pendingAt   time.Time

	stats WatcherStats
}

// WatcherStats tracks watcher activity.
type WatcherStats struct {
	Reloads       int
	Failures      int
	LastEventTime time.Time
}

// NewWatcher creates a watcher for path. onReload runs on the watcher
// goroutine for every successfully parsed change.
func NewWatcher(path string, onReload func(*Script)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve script path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		watcher:     fw,
		path:        abs,
		onReload:    onReload,
		debounceDur: 150 * time.Millisecond, // editors often write twice
	}, nil
}

// Run blocks until ctx is cancelled, then releases the fsnotify handle.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	logging.Content("watching %s", w.path)
	for {
		select {
		case <-ctx.Done():
			logging.Content("watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.ContentWarn("watcher error: %v", err)

		case <-ticker.C:
			w.flush()
		}
	}
}

// Stats returns a snapshot of watcher activity.
func (w *Watcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	now := time.Now()
	w.mu.Lock()
	w.stats.LastEventTime = now
	w.pendingAt = now // quiet period restarts on every write
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.pendingAt.IsZero() || time.Since(w.pendingAt) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pendingAt = time.Time{}
	w.mu.Unlock()

	s, err := Load(w.path)
	w.mu.Lock()
	if err != nil {
		w.stats.Failures++
	} else {
		w.stats.Reloads++
	}
	w.mu.Unlock()

	if err != nil {
		logging.ContentWarn("reload of %s failed, keeping previous script: %v", w.path, err)
		return
	}
	logging.Content("reloaded %s (%d intro, %d outro)", w.path, len(s.Intro), len(s.Outro))
	if w.onReload != nil {
		w.onReload(s)
	}
}
