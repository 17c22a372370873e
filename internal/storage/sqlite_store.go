package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/timetrail/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id          TEXT PRIMARY KEY,
	date        TEXT NOT NULL,
	project     TEXT NOT NULL,
	task        TEXT NOT NULL,
	minutes     INTEGER NOT NULL CHECK (minutes >= 0),
	note        TEXT NOT NULL DEFAULT '',
	code        TEXT NOT NULL DEFAULT '',
	contents    TEXT NOT NULL DEFAULT '',
	imported_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_date ON records(date);
`

// dateLayout is how record dates are stored; it sorts correctly as
// text, so queries can order by it directly.
const dateLayout = "2006/01/02"

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'timetrail init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) AddRecords(records []models.ActivityRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO records (id, date, project, task, minutes, note, code, contents, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	importedAt := time.Now().Format(time.RFC3339)
	for _, rec := range records {
		id := rec.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := stmt.Exec(id, rec.Date.Format(dateLayout), rec.Project, rec.Task,
			rec.Minutes, rec.Note, rec.Code, rec.Contents, importedAt)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AllRecords() ([]models.ActivityRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, date, project, task, minutes, note, code, contents
		FROM records ORDER BY date, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.ActivityRecord
	for rows.Next() {
		var rec models.ActivityRecord
		var dateText string

		err := rows.Scan(&rec.ID, &dateText, &rec.Project, &rec.Task,
			&rec.Minutes, &rec.Note, &rec.Code, &rec.Contents)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		rec.Date, err = time.Parse(dateLayout, dateText)
		if err != nil {
			return nil, fmt.Errorf("stored record %s has invalid date %q: %w", rec.ID, dateText, err)
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *SQLiteStore) CountRecords() (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("storage not loaded")
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) GetPath() string {
	return s.path
}

// GetDB returns the underlying database connection.
// Returns nil if the database has not been initialized or loaded.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
