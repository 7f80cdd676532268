package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matsen/citeline/internal/resolve"
)

func newFastWatcher() *Watcher {
	return New(time.Millisecond)
}

func TestPollFirstCallPrimes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.bib")
	if err := os.WriteFile(path, []byte("@article{a, year = {2000}}\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w := newFastWatcher()
	stale, err := w.Poll(context.Background(), resolve.PathSet{path})
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("first Poll() = %v, want nothing stale", stale)
	}
}

func TestPollDetectsModification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.bib")
	if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w := newFastWatcher()
	paths := resolve.PathSet{path}
	if _, err := w.Poll(context.Background(), paths); err != nil {
		t.Fatalf("Poll() error = %v", err)
	}

	// Push the mtime forward explicitly so the test doesn't depend on
	// filesystem timestamp resolution.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	stale, err := w.Poll(context.Background(), paths)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(stale) != 1 || stale[0] != path {
		t.Errorf("Poll() = %v, want [%s]", stale, path)
	}

	// Unchanged again.
	stale, err = w.Poll(context.Background(), paths)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("Poll() after no change = %v, want nothing", stale)
	}
}

func TestPollDetectsDisappearance(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.bib")
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w := newFastWatcher()
	paths := resolve.PathSet{path}
	if _, err := w.Poll(context.Background(), paths); err != nil {
		t.Fatalf("Poll() error = %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	stale, err := w.Poll(context.Background(), paths)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(stale) != 1 {
		t.Errorf("Poll() after removal = %v, want the removed path", stale)
	}
}

func TestPollNewPathReportedOnce(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bib")
	b := filepath.Join(dir, "b.bib")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("x\n"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	w := newFastWatcher()
	if _, err := w.Poll(context.Background(), resolve.PathSet{a}); err != nil {
		t.Fatalf("Poll() error = %v", err)
	}

	// b joins the set: it has no baseline, so it is stale once.
	stale, err := w.Poll(context.Background(), resolve.PathSet{a, b})
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(stale) != 1 || stale[0] != b {
		t.Errorf("Poll() with new path = %v, want [%s]", stale, b)
	}

	stale, err = w.Poll(context.Background(), resolve.PathSet{a, b})
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("Poll() = %v, want nothing after baseline", stale)
	}
}

func TestPollContextCancelled(t *testing.T) {
	w := New(time.Hour)
	ctx := context.Background()

	// Exhaust the initial token.
	if _, err := w.Poll(ctx, nil); err != nil {
		t.Fatalf("Poll() error = %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := w.Poll(cancelled, nil); err == nil {
		t.Error("Poll() with cancelled context: expected error")
	}
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.bib")
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w := newFastWatcher()
	paths := resolve.PathSet{path}
	if _, err := w.Poll(context.Background(), paths); err != nil {
		t.Fatalf("Poll() error = %v", err)
	}

	w.Reset()
	stale, err := w.Poll(context.Background(), paths)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("Poll() after Reset() = %v, want priming poll", stale)
	}
}
