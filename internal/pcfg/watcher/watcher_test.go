package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/variant"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, "segatools.ini")
	//nolint:gosec // G306: Test file permissions are acceptable
	if err := os.WriteFile(path, []byte("[aime]\nenable=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e := editor.New()
	if err := e.Open(path); err != nil {
		t.Fatal(err)
	}

	events := make(chan Event, 4)
	w := New(e, 50*time.Millisecond, func(ev Event) { events <- ev })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(200 * time.Millisecond)
	//nolint:gosec // G306: Test file permissions are acceptable
	if err := os.WriteFile(path, []byte("[unity]\nenable=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		if ev.Err != nil {
			t.Fatalf("reload error: %v", ev.Err)
		}
		if ev.Variant != variant.SDDT {
			t.Errorf("Variant = %s, want SDDT", ev.Variant)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop after cancel")
	}
}

func TestWatcher_RequiresFile(t *testing.T) {
	w := New(editor.New(), 0, nil)
	if err := w.Run(context.Background()); err == nil {
		t.Error("Run() without an open file should fail")
	}
	if w.debounce != DefaultDebounce {
		t.Errorf("debounce = %v, want default", w.debounce)
	}
}
