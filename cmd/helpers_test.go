package cmd

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/moodtrack/internal/config"
	"github.com/chris-regnier/moodtrack/internal/storage/csvfile"
	"github.com/rs/zerolog"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 10, 0, 0, 0, time.Local)
}

func setupTestStore(t *testing.T) *csvfile.Store {
	t.Helper()
	appConfig = &config.Config{
		Storage:       "csv",
		DataDir:       t.TempDir(),
		JournalFile:   "mood_journal.csv",
		DiagnosisFile: "medical_diagnosis.csv",
		MaxWidth:      100,
	}
	s, err := csvfile.New(appConfig.JournalPath(), appConfig.DiagnosisPath())
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func setupTestEnv(t *testing.T) *csvfile.Store {
	t.Helper()
	s := setupTestStore(t)
	store = s
	clock = fixedClock
	logger = zerolog.Nop()
	jsonOutput = false
	t.Cleanup(func() {
		store = nil
		clock = nil
		jsonOutput = false
	})
	return s
}

func fileLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
