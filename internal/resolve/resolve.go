// Package resolve computes the effective bibliography path set for a
// document from explicit configuration and document-declared paths.
package resolve

import (
	"os"
	"path/filepath"
	"strings"
)

// PathSet is an ordered sequence of normalized absolute paths, compared
// by value.
type PathSet []string

// Equal reports whether two path sets hold the same paths in the same
// order.
func (p PathSet) Equal(other PathSet) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Empty reports whether the set contains no paths.
func (p PathSet) Empty() bool {
	return len(p) == 0
}

// Resolver decides which bibliography paths apply to a document and
// tracks changes between successive resolutions. It never touches the
// filesystem beyond home directory lookup for tilde expansion.
type Resolver struct {
	previous PathSet
	resolved bool
}

// NewResolver creates a Resolver with no resolution history: the first
// Resolve call always reports changed.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve computes the effective path set. Document-declared paths,
// when any survive normalization, take precedence over the explicit
// path entirely; they are never merged. With neither present the
// result is empty and the caller surfaces a no-bibliography state.
// changed is true iff the set differs from the previous call's.
func (r *Resolver) Resolve(explicit string, declared []string, documentDir string) (PathSet, bool) {
	var set PathSet
	for _, p := range declared {
		if norm := Normalize(p, documentDir); norm != "" {
			set = append(set, norm)
		}
	}
	if set.Empty() {
		if norm := Normalize(explicit, documentDir); norm != "" {
			set = PathSet{norm}
		}
	}

	changed := !r.resolved || !set.Equal(r.previous)
	r.previous = set
	r.resolved = true
	return set, changed
}

// Reset clears the resolution history so the next Resolve reports
// changed regardless of its result.
func (r *Resolver) Reset() {
	r.previous = nil
	r.resolved = false
}

// Normalize turns one declared path into its absolute, cleaned form.
// A path is absolute if it starts at a filesystem root or with a home
// directory marker; anything else is resolved against documentDir.
// Blank input normalizes to "".
func Normalize(path, documentDir string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}

	path = expandTilde(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(documentDir, path)
	}
	return filepath.Clean(path)
}

// expandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func expandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
