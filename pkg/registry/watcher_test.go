package registry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeListFiles(t *testing.T, dir, version string) (string, string) {
	t.Helper()
	licensesPath := filepath.Join(dir, "licenses.json")
	exceptionsPath := filepath.Join(dir, "exceptions.json")

	licenses := `{"licenseListVersion": "` + version + `", "licenses": [{"licenseId": "MIT", "name": "MIT License"}]}`
	exceptions := `{"licenseListVersion": "` + version + `", "exceptions": []}`

	if err := os.WriteFile(licensesPath, []byte(licenses), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(exceptionsPath, []byte(exceptions), 0o644); err != nil {
		t.Fatal(err)
	}
	return licensesPath, exceptionsPath
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	licensesPath, exceptionsPath := writeListFiles(t, dir, "3.24")

	w, err := NewWatcher(licensesPath, exceptionsPath, discardLogger())
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}

	reloads := make(chan *List, 4)
	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Watch(context.Background(), func(list *List) {
			reloads <- list
		})
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(50 * time.Millisecond)

	writeListFiles(t, dir, "3.25")

	select {
	case list := <-reloads:
		if list.Version() != "3.25" {
			t.Errorf("reloaded Version() = %q, want %q", list.Version(), "3.25")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Watch() returned %v", err)
	}
}

func TestWatcher_SkipsBrokenReload(t *testing.T) {
	dir := t.TempDir()
	licensesPath, exceptionsPath := writeListFiles(t, dir, "3.24")

	w, err := NewWatcher(licensesPath, exceptionsPath, discardLogger())
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}

	var reloadCount atomic.Int64
	go func() {
		w.Watch(context.Background(), func(*List) {
			reloadCount.Add(1)
		})
	}()
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(licensesPath, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}

	// The broken snapshot must not reach the callback.
	time.Sleep(3 * DefaultDebounceInterval)
	if n := reloadCount.Load(); n != 0 {
		t.Errorf("reload count = %d, want 0", n)
	}
}

func TestWatcher_ContextCancel(t *testing.T) {
	dir := t.TempDir()
	licensesPath, exceptionsPath := writeListFiles(t, dir, "3.24")

	w, err := NewWatcher(licensesPath, exceptionsPath, discardLogger())
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Watch(ctx, func(*List) {})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Watch() returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch() did not return after context cancel")
	}
}

func TestWatcher_RestartsAfterContextCancel(t *testing.T) {
	dir := t.TempDir()
	licensesPath, exceptionsPath := writeListFiles(t, dir, "3.24")

	w, err := NewWatcher(licensesPath, exceptionsPath, discardLogger())
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Watch(ctx, func(*List) {})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	if err := <-errCh; err != nil {
		t.Fatalf("first Watch() returned %v", err)
	}

	// A cancelled run must be restartable, and the restarted run must
	// still deliver reloads.
	reloads := make(chan *List, 1)
	go func() {
		errCh <- w.Watch(context.Background(), func(list *List) {
			select {
			case reloads <- list:
			default:
			}
		})
	}()
	time.Sleep(50 * time.Millisecond)

	writeListFiles(t, dir, "3.26")
	select {
	case list := <-reloads:
		if list.Version() != "3.26" {
			t.Errorf("reloaded Version() = %q, want %q", list.Version(), "3.26")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload on the restarted run")
	}

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("second Watch() returned %v", err)
	}

	// Stop is terminal: repeated Stop is a no-op, further Watch fails.
	if err := w.Stop(); err != nil {
		t.Errorf("repeated Stop() returned %v", err)
	}
	if err := w.Watch(context.Background(), func(*List) {}); err == nil {
		t.Error("Watch() after Stop() error = nil, want error")
	}
}

func TestWatcher_SecondWatchFails(t *testing.T) {
	dir := t.TempDir()
	licensesPath, exceptionsPath := writeListFiles(t, dir, "3.24")

	w, err := NewWatcher(licensesPath, exceptionsPath, discardLogger())
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	go func() {
		close(started)
		w.Watch(ctx, func(*List) {})
	}()
	<-started
	time.Sleep(50 * time.Millisecond)

	if err := w.Watch(ctx, func(*List) {}); err == nil {
		t.Error("second Watch() error = nil, want error")
	}
}

func TestDebouncer_CollapsesBurst(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int64
	for i := 0; i < 10; i++ {
		d.Trigger(func() { calls.Add(1) })
	}

	time.Sleep(200 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("callback ran %d times, want 1", n)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var calls atomic.Int64
	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(200 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Errorf("callback ran %d times, want 0", n)
	}
}
