package bib

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// FileSource reads BibTeX files from disk.
type FileSource struct{}

// NewFileSource creates a Source backed by the local filesystem.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Regex patterns for the line-oriented BibTeX scan.
var (
	// Match entry start: @type{key,
	entryStartRe = regexp.MustCompile(`@(\w+)\s*\{\s*([^,\s]+)\s*,`)
	// Match field start: name = {value} or name = "value" or name = 1999
	fieldRe = regexp.MustCompile(`(?i)^\s*([a-z][a-z0-9_-]*)\s*=\s*(.*)$`)
)

// Load parses the BibTeX file at path into a key -> Entry mapping.
// Duplicate keys within one file are last-wins, matching merge policy
// across files. A readable file that yields no entries but has
// non-blank content is treated as a parse failure.
func (s *FileSource) Load(path string) (map[string]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	entries := make(map[string]Entry)
	var current *Entry
	sawContent := false

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "%") {
			sawContent = true
		}

		if m := entryStartRe.FindStringSubmatch(line); len(m) > 2 {
			if current != nil {
				entries[current.Key] = finishEntry(*current)
			}
			current = &Entry{
				Key:    m[2],
				Type:   strings.ToLower(m[1]),
				Fields: make(map[string]string),
			}
			continue
		}

		if current == nil {
			continue
		}

		if m := fieldRe.FindStringSubmatch(line); len(m) > 2 {
			name := strings.ToLower(m[1])
			current.Fields[name] = cleanFieldValue(m[2])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if current != nil {
		entries[current.Key] = finishEntry(*current)
	}

	if len(entries) == 0 && sawContent {
		return nil, fmt.Errorf("parsing %s: no BibTeX entries found", path)
	}

	return entries, nil
}

// finishEntry promotes display fields out of the raw field map.
func finishEntry(e Entry) Entry {
	e.Title = e.Fields["title"]
	e.Authors = splitAuthors(e.Fields["author"])
	if y, err := strconv.Atoi(e.Fields["year"]); err == nil {
		e.Year = y
	}
	e.Venue = e.Fields["journal"]
	if e.Venue == "" {
		e.Venue = e.Fields["booktitle"]
	}
	return e
}

// cleanFieldValue strips the delimiters and trailing comma from a field
// value as written on one line: {value}, "value", or bare.
func cleanFieldValue(raw string) string {
	v := strings.TrimSpace(raw)
	v = strings.TrimSuffix(v, ",")
	v = strings.TrimSpace(v)
	v = strings.Trim(v, `{}"`)
	return strings.TrimSpace(v)
}

// splitAuthors splits a BibTeX author field on the "and" conjunction.
func splitAuthors(field string) []string {
	if field == "" {
		return nil
	}
	parts := strings.Split(field, " and ")
	authors := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}
