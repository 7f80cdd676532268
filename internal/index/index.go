// Package index provides an ephemeral SQLite full-text index over a
// cache snapshot, for searching entries by key, author, or title. The
// index is derived state: it is rebuilt from the snapshot and never
// read back as bibliography data.
package index

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/matsen/citeline/internal/cache"
)

// DB wraps a SQLite index.
type DB struct {
	db *sql.DB
}

// Open opens or creates the index at the given path. Use ":memory:"
// for a purely in-process index.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the index.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts5(
			key,
			title,
			authors_text,
			venue,
			year
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the index and refills it from the snapshot.
// Returns the number of indexed entries.
func (d *DB) Rebuild(snap *cache.Snapshot) (int, error) {
	if _, err := d.db.Exec("DELETE FROM entries_fts"); err != nil {
		return 0, fmt.Errorf("clearing index: %w", err)
	}
	if snap == nil {
		return 0, nil
	}

	stmt, err := d.db.Prepare(`
		INSERT INTO entries_fts (key, title, authors_text, venue, year)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for key, entry := range snap.Entries {
		_, err := stmt.Exec(
			key,
			entry.Title,
			strings.Join(entry.Authors, " "),
			entry.Venue,
			fmt.Sprintf("%d", entry.Year),
		)
		if err != nil {
			return count, fmt.Errorf("indexing %s: %w", key, err)
		}
		count++
	}

	return count, nil
}

// Result is one search hit.
type Result struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Year    string `json:"year"`
}

// Search runs an FTS5 match query and returns up to limit hits ranked
// by relevance.
func (d *DB) Search(query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := d.db.Query(`
		SELECT key, title, authors_text, year
		FROM entries_fts
		WHERE entries_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, escapeQuery(query), limit)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Key, &r.Title, &r.Authors, &r.Year); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

// escapeQuery quotes each term so user input cannot inject FTS5 query
// syntax.
func escapeQuery(query string) string {
	terms := strings.Fields(query)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}
