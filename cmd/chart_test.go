package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestChartRunTerminal(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := chartRun(&buf, "", 60, 18); err != nil {
		t.Fatalf("chartRun: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Mood Over Time", "Date", "Mood"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 18 {
		t.Errorf("expected 18 lines, got %d", n)
	}
}

func TestChartRunPNG(t *testing.T) {
	setupTestEnv(t)
	out := filepath.Join(t.TempDir(), "mood.png")

	var buf bytes.Buffer
	if err := chartRun(&buf, out, 640, 320); err != nil {
		t.Fatalf("chartRun: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("not a PNG: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 320 {
		t.Errorf("image size = %dx%d, want 640x320", cfg.Width, cfg.Height)
	}
	if !strings.Contains(buf.String(), "Wrote") {
		t.Errorf("output = %q", buf.String())
	}
}
