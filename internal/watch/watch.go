// Package watch detects on-disk modification of bibliography files so
// the caller can trigger a forced reload. Detection only: the watcher
// never loads anything itself.
package watch

import (
	"context"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/matsen/citeline/internal/resolve"
)

// DefaultInterval is the minimum spacing between polls.
const DefaultInterval = 2 * time.Second

// Watcher tracks modification times for a path set across polls.
type Watcher struct {
	limiter *rate.Limiter
	primed  bool
	mtimes  map[string]time.Time
}

// New creates a Watcher polling at most once per interval. A zero or
// negative interval falls back to DefaultInterval.
func New(interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		mtimes:  make(map[string]time.Time),
	}
}

// Poll waits for the rate limiter, stats every path, and returns the
// paths whose modification time changed since the previous poll,
// including paths that appeared or disappeared. The first poll primes
// the baseline and reports nothing stale.
func (w *Watcher) Poll(ctx context.Context, paths resolve.PathSet) ([]string, error) {
	if err := w.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	seen := make(map[string]time.Time, len(paths))
	var stale []string
	for _, path := range paths {
		var mtime time.Time
		if info, err := os.Stat(path); err == nil {
			mtime = info.ModTime()
		}
		seen[path] = mtime

		if !w.primed {
			continue
		}
		prev, known := w.mtimes[path]
		if !known || !prev.Equal(mtime) {
			stale = append(stale, path)
		}
	}

	w.mtimes = seen
	w.primed = true
	return stale, nil
}

// Reset clears the baseline so the next Poll primes again.
func (w *Watcher) Reset() {
	w.mtimes = make(map[string]time.Time)
	w.primed = false
}
