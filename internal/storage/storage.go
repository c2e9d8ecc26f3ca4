package storage

import (
	"errors"

	"github.com/chris-regnier/moodtrack/internal/entry"
)

// Sentinel errors for storage operations.
var (
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
	ErrMalformed  = errors.New("malformed record file")
)

// Column schemas of the two record tables.
var (
	JournalHeader   = []string{"Date", "Mood", "Notes"}
	DiagnosisHeader = []string{"Date", "Diagnosis"}
)

// Storage defines the interface for mood journal and diagnosis persistence.
// Both tables are append-only and list in insertion order.
type Storage interface {
	AppendJournal(e entry.JournalEntry) error
	AppendDiagnosis(d entry.DiagnosisEntry) error
	ListJournal() ([]entry.JournalEntry, error)
	ListDiagnoses() ([]entry.DiagnosisEntry, error)
	Close() error
}
