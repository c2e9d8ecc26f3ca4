package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/chris-regnier/moodtrack/internal/entry"
	"github.com/chris-regnier/moodtrack/internal/storage"
	"github.com/rs/zerolog"
)

// Store implements storage.Storage on two CSV files with header rows.
//
// Every append re-reads the whole file, adds one row, and writes the whole
// table back. Nothing is cached between calls.
type Store struct {
	journalPath   string // e.g. ~/.moodtrack/mood_journal.csv
	diagnosisPath string // e.g. ~/.moodtrack/medical_diagnosis.csv
	log           zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for file lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a CSV storage backend, creating either file with only its
// header row if it does not exist yet.
func New(journalPath, diagnosisPath string, opts ...Option) (*Store, error) {
	s := &Store{
		journalPath:   journalPath,
		diagnosisPath: diagnosisPath,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.ensureFile(journalPath, storage.JournalHeader); err != nil {
		return nil, err
	}
	if err := s.ensureFile(diagnosisPath, storage.DiagnosisHeader); err != nil {
		return nil, err
	}
	return s, nil
}

// Close is a no-op for the CSV backend.
func (s *Store) Close() error {
	return nil
}

// JournalPath returns the location of the mood journal file.
func (s *Store) JournalPath() string { return s.journalPath }

// DiagnosisPath returns the location of the medical diagnosis file.
func (s *Store) DiagnosisPath() string { return s.diagnosisPath }

func (s *Store) ensureFile(path string, header []string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: checking %s: %v", storage.ErrStorage, path, err)
	}

	data, err := encode([][]string{header})
	if err != nil {
		return err
	}
	if err := atomicWrite(path, data); err != nil {
		return err
	}
	s.log.Info().Str("path", path).Strs("header", header).Msg("created record file")
	return nil
}

// AppendJournal adds one row to the mood journal file.
func (s *Store) AppendJournal(e entry.JournalEntry) error {
	if err := entry.ValidateText(e.Notes); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	return s.appendRow(s.journalPath, storage.JournalHeader, e.Record())
}

// AppendDiagnosis adds one row to the medical diagnosis file.
func (s *Store) AppendDiagnosis(d entry.DiagnosisEntry) error {
	if err := entry.ValidateText(d.Diagnosis); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	return s.appendRow(s.diagnosisPath, storage.DiagnosisHeader, d.Record())
}

// ListJournal returns all journal rows in file order.
func (s *Store) ListJournal() ([]entry.JournalEntry, error) {
	records, err := readTable(s.journalPath, storage.JournalHeader)
	if err != nil {
		return nil, err
	}
	entries := make([]entry.JournalEntry, 0, len(records)-1)
	for _, r := range records[1:] {
		entries = append(entries, entry.JournalEntry{Date: r[0], Mood: r[1], Notes: r[2]})
	}
	return entries, nil
}

// ListDiagnoses returns all diagnosis rows in file order.
func (s *Store) ListDiagnoses() ([]entry.DiagnosisEntry, error) {
	records, err := readTable(s.diagnosisPath, storage.DiagnosisHeader)
	if err != nil {
		return nil, err
	}
	entries := make([]entry.DiagnosisEntry, 0, len(records)-1)
	for _, r := range records[1:] {
		entries = append(entries, entry.DiagnosisEntry{Date: r[0], Diagnosis: r[1]})
	}
	return entries, nil
}

func (s *Store) appendRow(path string, header, record []string) error {
	records, err := readTable(path, header)
	if err != nil {
		return err
	}
	records = append(records, record)

	data, err := encode(records)
	if err != nil {
		return err
	}
	if err := atomicWrite(path, data); err != nil {
		return err
	}
	s.log.Debug().Str("path", path).Int("rows", len(records)-1).Msg("appended row")
	return nil
}

// readTable loads the whole file and checks it against the expected header.
// The returned slice always starts with the header row.
func readTable(path string, header []string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", storage.ErrStorage, path, err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(header)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", storage.ErrMalformed, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", storage.ErrMalformed, path)
	}
	if !slices.Equal(records[0], header) {
		return nil, fmt.Errorf("%w: %s: unexpected header %v", storage.ErrMalformed, path, records[0])
	}
	return records, nil
}

func encode(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("%w: encoding rows: %v", storage.ErrStorage, err)
	}
	return buf.Bytes(), nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: setting file mode: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}
