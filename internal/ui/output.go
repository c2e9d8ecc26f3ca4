package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/chris-regnier/moodtrack/internal/entry"
)

const previewWidth = 60

// FormatJournalSaved formats a save confirmation for a journal row.
func FormatJournalSaved(w io.Writer, e entry.JournalEntry) {
	fmt.Fprintf(w, "Journal entry saved (%s, %s).\n", e.Date, e.Mood)
}

// FormatDiagnosisSaved formats a save confirmation for a diagnosis row.
func FormatDiagnosisSaved(w io.Writer, d entry.DiagnosisEntry) {
	fmt.Fprintf(w, "Medical diagnosis saved (%s).\n", d.Date)
}

// FormatJournalList writes one line per journal row in file order.
func FormatJournalList(w io.Writer, entries []entry.JournalEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No journal entries found.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-8s  %s\n", e.Date, e.Mood, e.Preview(previewWidth))
	}
}

// FormatDiagnosisList writes one line per diagnosis row in file order.
func FormatDiagnosisList(w io.Writer, entries []entry.DiagnosisEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No medical diagnoses found.")
		return
	}
	for _, d := range entries {
		fmt.Fprintf(w, "%s  %s\n", d.Date, d.Preview(previewWidth))
	}
}

// FormatJournalFull writes every journal row with its notes rendered as
// Markdown. The markdownStyle parameter selects the glamour style.
func FormatJournalFull(w io.Writer, entries []entry.JournalEntry, width int, markdownStyle string) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No journal entries found.")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(w, "── %s · %s ──────────\n", e.Date, e.Mood)
		fmt.Fprintln(w, RenderMarkdownWithStyle(e.Notes, width, markdownStyle))
		if i < len(entries)-1 {
			fmt.Fprintln(w)
		}
	}
}

// FormatDiagnosisFull writes every diagnosis row with its text rendered as
// Markdown.
func FormatDiagnosisFull(w io.Writer, entries []entry.DiagnosisEntry, width int, markdownStyle string) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No medical diagnoses found.")
		return
	}
	for i, d := range entries {
		fmt.Fprintf(w, "── %s ──────────\n", d.Date)
		fmt.Fprintln(w, RenderMarkdownWithStyle(d.Diagnosis, width, markdownStyle))
		if i < len(entries)-1 {
			fmt.Fprintln(w)
		}
	}
}

// Status summarizes the record store for the status command.
type Status struct {
	Storage        string `json:"storage"`
	JournalPath    string `json:"journal_path,omitempty"`
	DiagnosisPath  string `json:"diagnosis_path,omitempty"`
	DataDir        string `json:"data_dir"`
	JournalCount   int    `json:"journal_count"`
	DiagnosisCount int    `json:"diagnosis_count"`
	LastJournal    string `json:"last_journal,omitempty"`
	LastDiagnosis  string `json:"last_diagnosis,omitempty"`
}

// FormatStatus writes the status summary as aligned key/value lines.
func FormatStatus(w io.Writer, s Status) {
	rows := [][2]string{
		{"storage", s.Storage},
		{"data dir", s.DataDir},
	}
	if s.JournalPath != "" {
		rows = append(rows, [2]string{"journal file", s.JournalPath})
	}
	if s.DiagnosisPath != "" {
		rows = append(rows, [2]string{"diagnosis file", s.DiagnosisPath})
	}
	rows = append(rows,
		[2]string{"journal entries", countWithLast(s.JournalCount, s.LastJournal)},
		[2]string{"diagnoses", countWithLast(s.DiagnosisCount, s.LastDiagnosis)},
	)
	for _, r := range rows {
		fmt.Fprintf(w, "%-16s %s\n", r[0]+":", r[1])
	}
}

func countWithLast(n int, last string) string {
	if last == "" {
		return fmt.Sprint(n)
	}
	return fmt.Sprintf("%d (last %s)", n, last)
}

// FormatImportSummary reports the outcome of an import run.
func FormatImportSummary(w io.Writer, imported int, failed []string) {
	label := "entries"
	if imported == 1 {
		label = "entry"
	}
	fmt.Fprintf(w, "Imported %d journal %s.\n", imported, label)
	if len(failed) > 0 {
		fmt.Fprintf(w, "Skipped: %s\n", strings.Join(failed, ", "))
	}
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
