package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/crawlkit"
)

// Ensure Store implements crawlkit.ResourceStore at compile time.
var _ crawlkit.ResourceStore = (*Store)(nil)

// Store persists resource content in SQLite.
type Store struct {
	db *DB
}

// NewStore creates a Store backed by db.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Exists reports whether content for id has been persisted.
func (s *Store) Exists(ctx context.Context, id string) bool {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM resources WHERE id = ?`, id).Scan(&one)
	return err == nil
}

// Read returns the persisted content for id.
func (s *Store) Read(ctx context.Context, id string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx, `SELECT content FROM resources WHERE id = ?`, id).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", crawlkit.Errorf(crawlkit.ENOTFOUND, "resource %q not found", id)
	}
	if err != nil {
		return "", crawlkit.Errorf(crawlkit.EINTERNAL, "reading %q: %v", id, err)
	}
	return content, nil
}

// Write persists content for id. A stale entry for the same identifier
// from an earlier crawl is replaced.
func (s *Store) Write(ctx context.Context, id string, content string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resources (id, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at`,
		id, content, crawlkit.ContentHash(content), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return crawlkit.Errorf(crawlkit.EINTERNAL, "writing %q: %v", id, err)
	}
	return nil
}
