package entry

import (
	"errors"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// DateLayout is the on-disk encoding of entry dates.
const DateLayout = "2006-01-02"

// Neutral is the mood label recorded by the journal save path, which does not
// collect a mood value.
const Neutral = "Neutral"

// ErrEmptyText is returned when the submitted text is blank after trimming.
var ErrEmptyText = errors.New("entry text must not be empty")

// JournalEntry is one row of the mood journal.
type JournalEntry struct {
	Date  string `json:"date"`
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
}

// DiagnosisEntry is one row of the medical diagnosis log.
type DiagnosisEntry struct {
	Date      string `json:"date"`
	Diagnosis string `json:"diagnosis"`
}

// NewID generates a row identifier for backends that need one.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// FormatDate renders t as a calendar date in local time.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// ValidateText checks whether text is non-empty after trimming.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}

// NormalizeNewlines converts CRLF and lone CR line breaks to LF, the form the
// CSV reader hands back for quoted fields.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// NewJournal builds a journal row dated at now with the Neutral mood.
func NewJournal(notes string, now time.Time) (JournalEntry, error) {
	notes = strings.TrimSpace(NormalizeNewlines(notes))
	if err := ValidateText(notes); err != nil {
		return JournalEntry{}, err
	}
	return JournalEntry{Date: FormatDate(now), Mood: Neutral, Notes: notes}, nil
}

// NewDiagnosis builds a diagnosis row dated at now.
func NewDiagnosis(diagnosis string, now time.Time) (DiagnosisEntry, error) {
	diagnosis = strings.TrimSpace(NormalizeNewlines(diagnosis))
	if err := ValidateText(diagnosis); err != nil {
		return DiagnosisEntry{}, err
	}
	return DiagnosisEntry{Date: FormatDate(now), Diagnosis: diagnosis}, nil
}

// Record returns the row as CSV fields in schema order.
func (e JournalEntry) Record() []string {
	return []string{e.Date, e.Mood, e.Notes}
}

// Record returns the row as CSV fields in schema order.
func (d DiagnosisEntry) Record() []string {
	return []string{d.Date, d.Diagnosis}
}

// Preview returns a single-line, truncated view of the notes.
func (e JournalEntry) Preview(maxLen int) string {
	return preview(e.Notes, maxLen)
}

// Preview returns a single-line, truncated view of the diagnosis.
func (d DiagnosisEntry) Preview(maxLen int) string {
	return preview(d.Diagnosis, maxLen)
}

func preview(s string, maxLen int) string {
	s = strings.ReplaceAll(NormalizeNewlines(s), "\n", " ")
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:max(maxLen-3, 0)]) + "..."
}
