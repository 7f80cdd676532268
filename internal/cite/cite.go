// Package cite formats selected citation keys into the string inserted
// into a document, and projects cached entries into selector choices.
package cite

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned when a selected key is empty or blank.
// This is a contract violation by the caller, not a user-facing state.
var ErrInvalidKey = errors.New("invalid citation key")

// NothingSelected is the sentinel returned for an empty selection. It
// is distinguishable from every valid citation string and must never be
// inserted into a document.
const NothingSelected = "<no selection>"

// Format renders the selected keys as a citation string. With
// inParens the keys are joined as `[@a; @b]`; the narrative form drops
// the brackets: `@a; @b`. An empty selection yields NothingSelected.
func Format(keys []string, inParens bool) (string, error) {
	if len(keys) == 0 {
		return NothingSelected, nil
	}

	parts := make([]string, len(keys))
	for i, key := range keys {
		if strings.TrimSpace(key) == "" {
			return "", fmt.Errorf("%w: blank key at position %d", ErrInvalidKey, i)
		}
		parts[i] = "@" + key
	}

	joined := strings.Join(parts, "; ")
	if inParens {
		return "[" + joined + "]", nil
	}
	return joined, nil
}

// IsInsertable reports whether a formatted citation may be inserted
// into a document. The sentinel and degenerate empty forms are not.
func IsInsertable(s string) bool {
	switch s {
	case "", NothingSelected, "@", "[@]":
		return false
	}
	return true
}
