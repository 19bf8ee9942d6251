// Package sqlite keeps a manifest of downloaded image files across runs.
// Without it, images deleted or renamed at the source would accumulate on
// disk forever; the manifest lets a run identify and prune the leftovers.
package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS fetch_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS images (
	filename TEXT PRIMARY KEY,
	source_url TEXT NOT NULL,
	run_id INTEGER NOT NULL REFERENCES fetch_runs(id),
	downloaded_at TIMESTAMP NOT NULL
);`

// ManifestStore records the files each run downloads, keyed by filename so
// re-downloads under the same name replace the previous row.
type ManifestStore struct {
	db    *sqlx.DB
	runID int64
}

func Open(path string) (*ManifestStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open manifest db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create manifest schema: %w", err)
	}

	return &ManifestStore{db: db}, nil
}

// BeginRun opens a new run; subsequent Record calls are attributed to it.
func (s *ManifestStore) BeginRun(ctx context.Context) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO fetch_runs (started_at) VALUES (?)",
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	s.runID = id
	return nil
}

// Record attributes a downloaded file to the current run.
func (s *ManifestStore) Record(ctx context.Context, sourceURL, filename string) error {
	query := `
		INSERT INTO images (filename, source_url, run_id, downloaded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (filename) DO UPDATE SET
			source_url = excluded.source_url,
			run_id = excluded.run_id,
			downloaded_at = excluded.downloaded_at`

	_, err := s.db.ExecContext(ctx, query, filename, sourceURL, s.runID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record image: %w", err)
	}
	return nil
}

// Orphans lists files recorded by earlier runs but not touched by the
// current one: local copies whose source content is gone.
func (s *ManifestStore) Orphans(ctx context.Context) ([]string, error) {
	var filenames []string
	err := s.db.SelectContext(ctx, &filenames,
		"SELECT filename FROM images WHERE run_id < ? ORDER BY filename",
		s.runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list orphans: %w", err)
	}
	return filenames, nil
}

// Forget removes a file from the manifest after it was deleted from disk.
func (s *ManifestStore) Forget(ctx context.Context, filename string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM images WHERE filename = ?", filename)
	if err != nil {
		return fmt.Errorf("forget image: %w", err)
	}
	return nil
}

func (s *ManifestStore) Close() error {
	return s.db.Close()
}
