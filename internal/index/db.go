package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS runs (
    path          TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    mtime         INTEGER NOT NULL DEFAULT 0,
    size          INTEGER NOT NULL DEFAULT 0,
    processed_at  TEXT NOT NULL DEFAULT '',
    segment_count INTEGER NOT NULL DEFAULT 0,
    chapter_count INTEGER NOT NULL DEFAULT 0,
    duration      REAL NOT NULL DEFAULT 0,
    degraded      INTEGER NOT NULL DEFAULT 0,
    reason        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS chapters (
    path       TEXT NOT NULL,
    ord        INTEGER NOT NULL,
    start_secs REAL NOT NULL,
    timestamp  TEXT NOT NULL,
    title      TEXT NOT NULL,
    similarity REAL NOT NULL DEFAULT 0,
    keywords   TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (path, ord)
);
`

// schemaVersion should be bumped whenever the pipeline's output shape
// changes, so stale runs get reprocessed instead of trusted.
const schemaVersion = "1"

type DB struct {
	db *sql.DB
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	db.Exec("CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT)")
	d := &DB{db: db}
	d.migrateSchemaVersion()

	return d, nil
}

func (d *DB) migrateSchemaVersion() {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	if err != nil || ver != schemaVersion {
		// force reprocessing by resetting change-detection fields
		d.db.Exec("UPDATE runs SET mtime = 0, size = 0")
		d.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion)
	}
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

// RunInfo carries the change-detection fields of a stored run.
type RunInfo struct {
	Mtime int64
	Size  int64
}

func (d *DB) GetRunInfo(path string) (*RunInfo, error) {
	var info RunInfo
	err := d.db.QueryRow(
		"SELECT mtime, size FROM runs WHERE path = ?", path,
	).Scan(&info.Mtime, &info.Size)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (d *DB) DeleteRun(path string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM chapters WHERE path = ?", path); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE path = ?", path); err != nil {
		return err
	}
	return tx.Commit()
}

func (d *DB) RunCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n)
	return n, err
}

func (d *DB) ChapterCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM chapters").Scan(&n)
	return n, err
}

type RunRow struct {
	Path         string
	Name         string
	ProcessedAt  string
	SegmentCount int
	ChapterCount int
	Duration     float64
	Degraded     bool
	Reason       string
}

// ListRuns returns all stored runs, most recently processed first.
func (d *DB) ListRuns() ([]RunRow, error) {
	rows, err := d.db.Query(`
		SELECT path, name, processed_at, segment_count, chapter_count, duration, degraded, reason
		FROM runs ORDER BY processed_at DESC, path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRow
	for rows.Next() {
		var r RunRow
		if err := rows.Scan(&r.Path, &r.Name, &r.ProcessedAt, &r.SegmentCount,
			&r.ChapterCount, &r.Duration, &r.Degraded, &r.Reason); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type ChapterRow struct {
	Path       string
	Ord        int
	StartSecs  float64
	Timestamp  string
	Title      string
	Similarity float64
	Keywords   string // comma-joined top phrases, display only
}

// GetChapters returns the stored chapters of one run in order.
func (d *DB) GetChapters(path string) ([]ChapterRow, error) {
	rows, err := d.db.Query(`
		SELECT path, ord, start_secs, timestamp, title, similarity, keywords
		FROM chapters WHERE path = ? ORDER BY ord`, path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ChapterRow
	for rows.Next() {
		var c ChapterRow
		if err := rows.Scan(&c.Path, &c.Ord, &c.StartSecs, &c.Timestamp,
			&c.Title, &c.Similarity, &c.Keywords); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
