package daily

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/moodtrack/internal/entry"
	"github.com/chris-regnier/moodtrack/internal/storage"
	"github.com/chris-regnier/moodtrack/internal/storage/csvfile"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 14, 5, 0, 0, time.Local)
}

func setupStore(t *testing.T) *csvfile.Store {
	t.Helper()
	dir := t.TempDir()
	s, err := csvfile.New(filepath.Join(dir, "mood_journal.csv"), filepath.Join(dir, "medical_diagnosis.csv"))
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func lines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestSaveJournalScenario(t *testing.T) {
	s := setupStore(t)

	e, err := SaveJournal(s, "Felt okay today", fixedClock)
	if err != nil {
		t.Fatalf("SaveJournal: %v", err)
	}
	if e.Date != "2026-10-19" || e.Mood != entry.Neutral || e.Notes != "Felt okay today" {
		t.Errorf("unexpected entry %+v", e)
	}

	j := lines(t, s.JournalPath())
	if len(j) != 2 || j[1] != "2026-10-19,Neutral,Felt okay today" {
		t.Errorf("journal file lines = %q", j)
	}
	d := lines(t, s.DiagnosisPath())
	if len(d) != 1 {
		t.Errorf("diagnosis file should have only a header, got %q", d)
	}
}

func TestSaveJournalTrims(t *testing.T) {
	s := setupStore(t)
	if _, err := SaveJournal(s, "\n  walked the dog  \n", fixedClock); err != nil {
		t.Fatalf("SaveJournal: %v", err)
	}
	entries, err := s.ListJournal()
	if err != nil {
		t.Fatal(err)
	}
	if entries[len(entries)-1].Notes != "walked the dog" {
		t.Errorf("notes not trimmed: %q", entries[len(entries)-1].Notes)
	}
}

func TestSaveDiagnosisAppendsLastRow(t *testing.T) {
	s := setupStore(t)

	for _, text := range []string{"first", "second", "third"} {
		before, _ := s.ListDiagnoses()
		if _, err := SaveDiagnosis(s, text, fixedClock); err != nil {
			t.Fatalf("SaveDiagnosis(%q): %v", text, err)
		}
		after, err := s.ListDiagnoses()
		if err != nil {
			t.Fatal(err)
		}
		if len(after) != len(before)+1 {
			t.Fatalf("row count %d -> %d", len(before), len(after))
		}
		last := after[len(after)-1]
		if last != (entry.DiagnosisEntry{Date: "2026-10-19", Diagnosis: text}) {
			t.Errorf("last row = %+v", last)
		}
	}
}

func TestSaveEmptyTextLeavesFilesUnchanged(t *testing.T) {
	s := setupStore(t)
	if _, err := SaveJournal(s, "kept", fixedClock); err != nil {
		t.Fatal(err)
	}

	beforeJ := lines(t, s.JournalPath())
	beforeD := lines(t, s.DiagnosisPath())

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := SaveJournal(s, text, fixedClock); !errors.Is(err, entry.ErrEmptyText) {
			t.Errorf("SaveJournal(%q) error = %v, want ErrEmptyText", text, err)
		}
		if _, err := SaveDiagnosis(s, text, fixedClock); !errors.Is(err, entry.ErrEmptyText) {
			t.Errorf("SaveDiagnosis(%q) error = %v, want ErrEmptyText", text, err)
		}
	}

	if got := lines(t, s.JournalPath()); len(got) != len(beforeJ) {
		t.Errorf("journal rows changed: %q", got)
	}
	if got := lines(t, s.DiagnosisPath()); len(got) != len(beforeD) {
		t.Errorf("diagnosis rows changed: %q", got)
	}
}

func TestSaveWrapsStorageErrors(t *testing.T) {
	s := setupStore(t)
	if err := os.WriteFile(s.JournalPath(), []byte("not,a,journal\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := SaveJournal(s, "text", fixedClock)
	if !errors.Is(err, storage.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if !strings.Contains(err.Error(), "saving journal entry") {
		t.Errorf("error not wrapped with context: %v", err)
	}
}

func TestNilClockUsesNow(t *testing.T) {
	var c Clock
	before := time.Now()
	got := c.Now()
	if got.Before(before) || time.Since(got) > time.Minute {
		t.Errorf("nil clock returned %v", got)
	}
}
