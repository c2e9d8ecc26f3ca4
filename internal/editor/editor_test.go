package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveEditor(t *testing.T) {
	tests := []struct {
		name   string
		config string
		editor string
		visual string
		want   string
	}{
		{"config wins", "nano", "vim", "code", "nano"},
		{"EDITOR", "", "vim", "code", "vim"},
		{"VISUAL", "", "", "code", "code"},
		{"fallback", "", "", "", "vi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)
			if got := ResolveEditor(tt.config); got != tt.want {
				t.Errorf("ResolveEditor(%q) = %q, want %q", tt.config, got, tt.want)
			}
		})
	}
}

func TestStripHelp(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Felt okay\n\n" + Scissors + "\nhelp text\n", "Felt okay"},
		{"  no scissors  \n", "no scissors"},
		{"\n\n" + Scissors + "\n", ""},
		{"# Heading\nbody\n" + Scissors, "# Heading\nbody"},
	}
	for _, tt := range tests {
		if got := StripHelp(tt.in); got != tt.want {
			t.Errorf("StripHelp(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComposeUnchangedIsEmpty(t *testing.T) {
	// 'true' exits without touching the file.
	got, err := Compose("true", "Write your journal entry above.")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestComposeReadsText(t *testing.T) {
	script := filepath.Join(t.TempDir(), "write.sh")
	body := "#!/bin/sh\nprintf 'Slept well\\n' | cat - \"$1\" > \"$1.new\" && mv \"$1.new\" \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Compose(script, "help")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got != "Slept well" {
		t.Errorf("got %q, want %q", got, "Slept well")
	}
}

func TestComposeEditorFailure(t *testing.T) {
	if _, err := Compose("false", ""); err == nil {
		t.Error("expected error from failing editor")
	}
}

func TestComposeEmptyCommand(t *testing.T) {
	if _, err := Compose("  ", ""); err == nil {
		t.Error("expected error for empty editor command")
	}
}
