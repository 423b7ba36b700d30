package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"intentions-tracker/internal/tracker/repository"
	"intentions-tracker/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS intentions (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	target_value REAL NOT NULL,
	unit         TEXT NOT NULL,
	timeframe    TEXT NOT NULL,
	category     TEXT NOT NULL DEFAULT '',
	notes        TEXT NOT NULL DEFAULT '',
	is_active    INTEGER NOT NULL DEFAULT 1,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS intention_sets (
	id             TEXT PRIMARY KEY,
	effective_date TEXT NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS intention_set_members (
	set_id       TEXT NOT NULL REFERENCES intention_sets(id),
	intention_id TEXT NOT NULL REFERENCES intentions(id),
	position     INTEGER NOT NULL,
	PRIMARY KEY (set_id, intention_id)
);

CREATE TABLE IF NOT EXISTS progress_entries (
	id                 TEXT PRIMARY KEY,
	intention_id       TEXT NOT NULL,
	intention_set_id   TEXT NOT NULL,
	date_key           TEXT NOT NULL,
	amount             REAL NOT NULL,
	unit               TEXT NOT NULL,
	update_type        TEXT NOT NULL,
	evidence           TEXT NOT NULL DEFAULT '',
	source_check_in_id TEXT NOT NULL DEFAULT '',
	created_at         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_day ON progress_entries(date_key, intention_set_id);

CREATE TABLE IF NOT EXISTS manual_overrides (
	date_key     TEXT NOT NULL,
	intention_id TEXT NOT NULL,
	amount       REAL NOT NULL,
	unit         TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	PRIMARY KEY (date_key, intention_id)
);

CREATE TABLE IF NOT EXISTS check_ins (
	id               TEXT PRIMARY KEY,
	transcript       TEXT NOT NULL,
	intention_set_id TEXT NOT NULL,
	date_key         TEXT NOT NULL,
	created_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_check_ins_day ON check_ins(date_key);

CREATE TABLE IF NOT EXISTS daily_moods (
	date_key           TEXT PRIMARY KEY,
	mood_label         TEXT NOT NULL DEFAULT '',
	mood_score         INTEGER,
	source_check_in_id TEXT NOT NULL DEFAULT ''
);
`

// timeLayout stores timestamps as fixed-width UTC strings so that
// lexicographic ORDER BY matches chronological order. RFC3339Nano is
// unsuitable here: it trims trailing zeros.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Open opens (creating if needed) the SQLite database at path and
// applies the schema.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer; the driver serializes access but concurrent write
	// transactions still error with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the tracker domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("tracker/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("tracker/repository/sqlite.%s", method)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
