// Package bib defines the bibliography entry domain types and the
// source abstraction for loading parsed entries from disk.
package bib

import (
	"fmt"
	"strings"
)

// Entry represents a single bibliography entry identified by its
// citation key. Display fields are pulled out of the raw field map for
// label rendering; everything else stays opaque in Fields.
type Entry struct {
	Key     string            `json:"key"`
	Type    string            `json:"type"` // article, book, inproceedings, ...
	Title   string            `json:"title"`
	Authors []string          `json:"authors"`
	Year    int               `json:"year"`
	Venue   string            `json:"venue,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Label renders the single-line display form used to populate a
// selector: "Authors (Year). Title".
func (e Entry) Label() string {
	authors := strings.Join(e.Authors, ", ")
	if authors == "" {
		authors = "Unknown"
	}

	year := "n.d."
	if e.Year > 0 {
		year = fmt.Sprintf("%d", e.Year)
	}

	title := e.Title
	if title == "" {
		title = e.Key
	}

	return fmt.Sprintf("%s (%s). %s", authors, year, title)
}

// Source loads the entries of one bibliography file. An error means the
// whole path failed (unreadable or unparsable); callers record the
// failure and continue with other paths.
type Source interface {
	Load(path string) (map[string]Entry, error)
}
