package index

import (
	"time"

	"github.com/chapgen/chapgen/internal/pipeline"
	"github.com/chapgen/chapgen/internal/report"
)

// NeedsUpdate reports whether path has no stored run or the file
// changed (different mtime or size) since it was last processed.
func NeedsUpdate(db *DB, path string, mtime, size int64) (bool, error) {
	info, err := db.GetRunInfo(path)
	if err != nil {
		return false, err
	}
	if info == nil {
		return true, nil // never processed
	}
	return info.Mtime != mtime || info.Size != size, nil
}

// SaveRun replaces the stored run for path with the given pipeline
// result in one transaction.
func SaveRun(db *DB, path, name string, mtime, size int64, result *pipeline.Result) error {
	if err := db.DeleteRun(path); err != nil {
		return err
	}

	tx, err := db.Raw().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	degraded := 0
	if result.Degraded {
		degraded = 1
	}
	_, err = tx.Exec(
		`INSERT INTO runs (path, name, mtime, size, processed_at, segment_count, chapter_count, duration, degraded, reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		path,
		name,
		mtime,
		size,
		time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		len(result.Segments),
		result.Summary.TotalChapters,
		result.Summary.TotalDuration,
		degraded,
		result.Reason,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO chapters (path, ord, start_secs, timestamp, title, similarity, keywords)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range result.Summary.Chapters {
		_, err := stmt.Exec(
			path,
			i,
			c.Start,
			c.Timestamp,
			c.Title,
			c.SimilarityScore,
			report.TopKeywords(c, 3),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
