package registry

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches license-list JSON files for changes and rebuilds the
// registry when they do. It implements debouncing to prevent reload storms
// while a new license-list release is being written out file by file.
//
// A Watcher never mutates a List in place: each reload parses a fresh
// snapshot and hands it to the callback, so engines built from earlier
// snapshots keep working untouched.
type Watcher struct {
	watcher        *fsnotify.Watcher
	logger         *slog.Logger
	licensesPath   string
	exceptionsPath string
	debounce       *Debouncer

	mu      sync.Mutex
	running bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// DefaultDebounceInterval is how long the watcher waits after the last file
// event before reloading.
const DefaultDebounceInterval = 100 * time.Millisecond

// NewWatcher creates a watcher over the two license-list files.
func NewWatcher(licensesPath, exceptionsPath string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:        watcher,
		logger:         logger,
		licensesPath:   licensesPath,
		exceptionsPath: exceptionsPath,
		debounce:       NewDebouncer(DefaultDebounceInterval),
	}, nil
}

// Watch blocks, delivering every successfully reloaded snapshot to onReload,
// until the context is cancelled or Stop is called. Reload failures are
// logged and skipped; the previous snapshot stays in effect.
//
// A run that ended with context cancellation can be restarted by calling
// Watch again; Stop shuts the watcher down for good.
func (w *Watcher) Watch(ctx context.Context, onReload func(*List)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher stopped")
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	stopCh, doneCh := w.stopCh, w.doneCh
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(doneCh)
	}()

	// Watch the parent directories rather than the files themselves, so
	// atomic rename-over-the-file updates are still observed.
	for _, dir := range w.watchDirs() {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", dir, err)
		}
	}

	w.logger.Info("License list watcher started",
		"licenses", w.licensesPath,
		"exceptions", w.exceptionsPath,
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("License list watcher stopped (context cancelled)")
			return nil

		case <-stopCh:
			w.logger.Info("License list watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !w.shouldProcessEvent(event) {
				continue
			}

			w.logger.Debug("License list file event",
				"path", event.Name,
				"op", event.Op.String(),
			)

			w.debounce.Trigger(func() {
				list, err := Load(w.licensesPath, w.exceptionsPath)
				if err != nil {
					w.logger.Error("License list reload failed", "error", err)
					return
				}
				w.logger.Info("License list reloaded",
					"version", list.Version(),
					"licenses", len(list.KnownLicenseIDs()),
					"exceptions", len(list.KnownExceptionIDs()),
				)
				onReload(list)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("License list watcher error", "error", err)
			// Continue watching despite errors
		}
	}
}

// Stop shuts the watcher down, waiting for a running Watch to return.
// Stopping is terminal; further Stop calls are no-ops and further Watch
// calls fail.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	running := w.running
	stopCh, doneCh := w.stopCh, w.doneCh
	w.mu.Unlock()

	if running {
		close(stopCh)
		<-doneCh
	}

	w.debounce.Stop()

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// watchDirs returns the unique parent directories of the watched files.
func (w *Watcher) watchDirs() []string {
	licDir := filepath.Dir(w.licensesPath)
	excDir := filepath.Dir(w.exceptionsPath)
	if licDir == excDir {
		return []string{licDir}
	}
	return []string{licDir, excDir}
}

// shouldProcessEvent filters events down to writes affecting the two
// license-list files.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(event.Name)
	return name == filepath.Clean(w.licensesPath) || name == filepath.Clean(w.exceptionsPath)
}

// Debouncer collapses bursts of file events into a single callback after a
// quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopCh   chan struct{}
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Trigger schedules the callback after the debounce interval, replacing any
// previously pending callback.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.callback = callback

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
			d.mu.Lock()
			cb := d.callback
			d.mu.Unlock()

			if cb != nil {
				cb()
			}
		}
	})
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	close(d.stopCh)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
