// Package cache holds the process-wide bibliography cache: one merged
// snapshot of parsed entries per resolved path set.
package cache

import (
	"errors"
	"sync"

	"github.com/matsen/citeline/internal/bib"
	"github.com/matsen/citeline/internal/resolve"
)

// ErrAllSourcesFailed is returned when every path in the set failed to
// load. The snapshot is still published with the per-path failures so
// the caller can show a bibliography-not-found state.
var ErrAllSourcesFailed = errors.New("all bibliography sources failed")

// LoadFailure records one path that could not be loaded.
type LoadFailure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Snapshot pairs a path set with its merged entry mapping and the list
// of paths that failed. Snapshots are immutable once published; a
// reload replaces the whole snapshot, never mutates one in place.
type Snapshot struct {
	Paths    resolve.PathSet      `json:"paths"`
	Entries  map[string]bib.Entry `json:"entries"`
	Failures []LoadFailure        `json:"failures,omitempty"`
}

// Cache owns the current snapshot for one session. There is one writer
// (the load pipeline) and many readers; publication is atomic under the
// lock so readers never observe a half-merged mapping.
type Cache struct {
	source bib.Source

	mu      sync.RWMutex
	current *Snapshot
}

// New creates an empty cache reading entries through source.
func New(source bib.Source) *Cache {
	return &Cache{source: source}
}

// Current returns the held snapshot, or nil if nothing has been loaded.
func (c *Cache) Current() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Reset drops the held snapshot.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

// Load returns the entries for the given path set. If force is false
// and the set matches the held snapshot's, the snapshot is returned
// without touching any source. Otherwise every path is loaded in list
// order, per-path failures are collected rather than aborting, and
// duplicate keys resolve to the entry from the later path. The new
// snapshot replaces the old one atomically. ErrAllSourcesFailed is
// returned alongside the snapshot when no path loaded, and only when
// the set was non-empty.
func (c *Cache) Load(paths resolve.PathSet, force bool) (*Snapshot, error) {
	if !force {
		if snap := c.Current(); snap != nil && snap.Paths.Equal(paths) {
			return snap, nil
		}
	}

	snap := &Snapshot{
		Paths:   append(resolve.PathSet(nil), paths...),
		Entries: make(map[string]bib.Entry),
	}

	for _, path := range paths {
		entries, err := c.source.Load(path)
		if err != nil {
			snap.Failures = append(snap.Failures, LoadFailure{Path: path, Reason: err.Error()})
			continue
		}
		// Later paths overwrite earlier ones on key collision.
		for key, entry := range entries {
			snap.Entries[key] = entry
		}
	}

	c.mu.Lock()
	c.current = snap
	c.mu.Unlock()

	if len(paths) > 0 && len(snap.Failures) == len(paths) {
		return snap, ErrAllSourcesFailed
	}
	return snap, nil
}
