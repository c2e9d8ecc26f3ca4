package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chris-regnier/moodtrack/internal/ui"
)

func TestStatusRun(t *testing.T) {
	s := setupTestEnv(t)
	if err := journalRun(&bytes.Buffer{}, "one"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := statusRun(&buf, ""); err != nil {
		t.Fatalf("statusRun: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"storage:         csv",
		s.JournalPath(),
		s.DiagnosisPath(),
		"journal entries: 1 (last 2026-10-19)",
		"diagnoses:       0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("status missing %q:\n%s", want, out)
		}
	}
}

func TestStatusRunJSON(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true
	if err := diagnosisRun(&bytes.Buffer{}, "flu"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := statusRun(&buf, ""); err != nil {
		t.Fatal(err)
	}
	var got ui.Status
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.DiagnosisCount != 1 || got.JournalCount != 0 || got.LastDiagnosis != "2026-10-19" {
		t.Errorf("got %+v", got)
	}
}

func TestStatusRunFormat(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := statusRun(&buf, "{{.Storage}} {{.JournalCount}}/{{.DiagnosisCount}}"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "csv 0/0\n" {
		t.Errorf("got %q", buf.String())
	}

	if err := statusRun(&bytes.Buffer{}, "{{.Nope"); err == nil {
		t.Error("expected error for invalid template")
	}
}
