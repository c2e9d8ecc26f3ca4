// Package daily records today's journal and diagnosis entries.
package daily

import (
	"fmt"
	"time"

	"github.com/chris-regnier/moodtrack/internal/entry"
	"github.com/chris-regnier/moodtrack/internal/storage"
)

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// Now calls c, or time.Now when c is nil.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// SaveJournal appends text as today's journal entry with the Neutral mood.
// Blank text is rejected with entry.ErrEmptyText before the store is touched.
func SaveJournal(store storage.Storage, text string, now Clock) (entry.JournalEntry, error) {
	e, err := entry.NewJournal(text, now.Now())
	if err != nil {
		return entry.JournalEntry{}, err
	}
	if err := store.AppendJournal(e); err != nil {
		return entry.JournalEntry{}, fmt.Errorf("saving journal entry: %w", err)
	}
	return e, nil
}

// SaveDiagnosis appends text as today's medical diagnosis entry.
func SaveDiagnosis(store storage.Storage, text string, now Clock) (entry.DiagnosisEntry, error) {
	d, err := entry.NewDiagnosis(text, now.Now())
	if err != nil {
		return entry.DiagnosisEntry{}, err
	}
	if err := store.AppendDiagnosis(d); err != nil {
		return entry.DiagnosisEntry{}, fmt.Errorf("saving medical diagnosis: %w", err)
	}
	return d, nil
}
