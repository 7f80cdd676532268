// Package session wires resolution, loading, and projection into the
// single pipeline a calling editor session runs per user action.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/matsen/citeline/internal/bib"
	"github.com/matsen/citeline/internal/cache"
	"github.com/matsen/citeline/internal/cite"
	"github.com/matsen/citeline/internal/frontmatter"
	"github.com/matsen/citeline/internal/resolve"
)

// ErrNoBibliography is returned when neither the document nor the
// configuration names any bibliography path.
var ErrNoBibliography = errors.New("no bibliography configured")

// Document is the edited document as the session sees it: its text
// (for front matter) and the directory relative paths resolve against.
type Document struct {
	Text string
	Dir  string
}

// State is the result of one pipeline run.
type State struct {
	Paths    resolve.PathSet     `json:"paths"`
	Changed  bool                `json:"changed"`
	Choices  []cite.Choice       `json:"choices"`
	Failures []cache.LoadFailure `json:"failures,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
}

// Session owns the resolver and cache for one editing session. Refresh
// calls are serialized; the cache never sees concurrent loads.
type Session struct {
	mu       sync.Mutex
	explicit string
	resolver *resolve.Resolver
	cache    *cache.Cache
}

// New creates a session reading entries through source, with the given
// explicit bibliography path (may be empty).
func New(source bib.Source, explicit string) *Session {
	return &Session{
		explicit: explicit,
		resolver: resolve.NewResolver(),
		cache:    cache.New(source),
	}
}

// SetBibliography updates the explicit bibliography path slot. The
// next Refresh picks it up; nothing is loaded here.
func (s *Session) SetBibliography(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.explicit = path
}

// Reset drops all resolution history and cached entries.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolver.Reset()
	s.cache.Reset()
}

// Resolve computes the effective path set for the document without
// loading anything. It shares resolution history with Refresh.
func (s *Session) Resolve(doc Document) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := &State{}
	paths, changed := s.resolveLocked(doc, state)
	state.Paths = paths
	state.Changed = changed
	if paths.Empty() {
		return state, ErrNoBibliography
	}
	return state, nil
}

// Refresh runs one resolve, load, project pipeline for the document.
// Malformed front matter and per-path load failures degrade to
// warnings; ErrNoBibliography is returned when no path applies, and
// cache.ErrAllSourcesFailed when every path failed to load. In both
// error cases the returned State is still valid for display.
func (s *Session) Refresh(doc Document, force bool) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := &State{}
	paths, changed := s.resolveLocked(doc, state)
	state.Paths = paths
	state.Changed = changed

	if paths.Empty() {
		s.cache.Reset()
		return state, ErrNoBibliography
	}

	snap, err := s.cache.Load(paths, force)
	state.Failures = snap.Failures
	state.Choices = cite.Catalog(snap)
	for _, f := range snap.Failures {
		state.Warnings = append(state.Warnings, fmt.Sprintf("%s: %s", f.Path, f.Reason))
	}

	return state, err
}

// resolveLocked parses front matter and resolves the path set,
// collecting a warning when the front matter is malformed. Caller
// holds s.mu.
func (s *Session) resolveLocked(doc Document, state *State) (resolve.PathSet, bool) {
	var declared []string
	block, err := frontmatter.Parse(doc.Text)
	if err != nil {
		state.Warnings = append(state.Warnings, fmt.Sprintf("front matter ignored: %v", err))
	} else {
		declared = block.Bibliography()
	}
	return s.resolver.Resolve(s.explicit, declared, doc.Dir)
}

// Snapshot returns the currently cached snapshot, or nil before the
// first successful Refresh.
func (s *Session) Snapshot() *cache.Snapshot {
	return s.cache.Current()
}
