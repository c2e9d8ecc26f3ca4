package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chris-regnier/moodtrack/internal/entry"
	"github.com/chris-regnier/moodtrack/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
)

// Store implements storage.Storage using SQLite via Turso/libSQL.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite storage backend.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "moodtrack.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS journal (
			seq   INTEGER PRIMARY KEY AUTOINCREMENT,
			id    TEXT NOT NULL UNIQUE,
			date  TEXT NOT NULL,
			mood  TEXT NOT NULL,
			notes TEXT NOT NULL CHECK(length(trim(notes)) > 0)
		);
		CREATE TABLE IF NOT EXISTS diagnoses (
			seq       INTEGER PRIMARY KEY AUTOINCREMENT,
			id        TEXT NOT NULL UNIQUE,
			date      TEXT NOT NULL,
			diagnosis TEXT NOT NULL CHECK(length(trim(diagnosis)) > 0)
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// AppendJournal inserts one journal row.
func (s *Store) AppendJournal(e entry.JournalEntry) error {
	if err := entry.ValidateText(e.Notes); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	id, err := entry.NewID()
	if err != nil {
		return fmt.Errorf("%w: generating row ID: %v", storage.ErrStorage, err)
	}

	_, err = s.db.Exec(
		"INSERT INTO journal (id, date, mood, notes) VALUES (?, ?, ?, ?)",
		id, e.Date, e.Mood, e.Notes,
	)
	if err != nil {
		return fmt.Errorf("%w: inserting journal row: %v", storage.ErrStorage, err)
	}
	return nil
}

// AppendDiagnosis inserts one diagnosis row.
func (s *Store) AppendDiagnosis(d entry.DiagnosisEntry) error {
	if err := entry.ValidateText(d.Diagnosis); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	id, err := entry.NewID()
	if err != nil {
		return fmt.Errorf("%w: generating row ID: %v", storage.ErrStorage, err)
	}

	_, err = s.db.Exec(
		"INSERT INTO diagnoses (id, date, diagnosis) VALUES (?, ?, ?)",
		id, d.Date, d.Diagnosis,
	)
	if err != nil {
		return fmt.Errorf("%w: inserting diagnosis row: %v", storage.ErrStorage, err)
	}
	return nil
}

// ListJournal returns all journal rows in insertion order.
func (s *Store) ListJournal() ([]entry.JournalEntry, error) {
	rows, err := s.db.Query("SELECT date, mood, notes FROM journal ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("%w: listing journal: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	entries := []entry.JournalEntry{}
	for rows.Next() {
		var e entry.JournalEntry
		if err := rows.Scan(&e.Date, &e.Mood, &e.Notes); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListDiagnoses returns all diagnosis rows in insertion order.
func (s *Store) ListDiagnoses() ([]entry.DiagnosisEntry, error) {
	rows, err := s.db.Query("SELECT date, diagnosis FROM diagnoses ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("%w: listing diagnoses: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	entries := []entry.DiagnosisEntry{}
	for rows.Next() {
		var d entry.DiagnosisEntry
		if err := rows.Scan(&d.Date, &d.Diagnosis); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		entries = append(entries, d)
	}
	return entries, rows.Err()
}
