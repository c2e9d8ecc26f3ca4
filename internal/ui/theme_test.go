package ui

import (
	"strings"
	"testing"

	"github.com/chris-regnier/moodtrack/internal/config"
)

func TestResolveThemePresets(t *testing.T) {
	tests := []struct {
		preset    string
		wantStyle string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"dracula", "dracula"},
		{"", "dark"},
		{"nonexistent", "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			theme := ResolveTheme(config.ThemeConfig{Preset: tt.preset})
			if string(theme.Background) == "" || string(theme.Accent) == "" || string(theme.Danger) == "" {
				t.Errorf("expected colors to be set: %+v", theme)
			}
			if theme.MarkdownStyle != tt.wantStyle {
				t.Errorf("markdown style = %q, want %q", theme.MarkdownStyle, tt.wantStyle)
			}
		})
	}
}

func TestPresetNamesResolve(t *testing.T) {
	for _, name := range PresetNames() {
		if _, ok := presets[name]; !ok {
			t.Errorf("preset %q listed but not defined", name)
		}
	}
	if len(PresetNames()) != len(presets) {
		t.Errorf("PresetNames() has %d entries, presets has %d", len(PresetNames()), len(presets))
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{
		Preset:        "dracula",
		Primary:       "#FF0000",
		Background:    "#000000",
		MarkdownStyle: "notty",
	})
	if string(theme.Primary) != "#FF0000" {
		t.Errorf("primary = %q", theme.Primary)
	}
	if string(theme.Background) != "#000000" {
		t.Errorf("background = %q", theme.Background)
	}
	if theme.MarkdownStyle != "notty" {
		t.Errorf("markdown style = %q", theme.MarkdownStyle)
	}
}

func TestFrameFillsTerminal(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "dark"})
	output := theme.Frame("line1\nline2", 40, 10, 40)

	lines := strings.Split(stripANSI(output), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 40 {
			t.Errorf("line %d: expected width 40, got %d", i, len([]rune(line)))
		}
	}
}

func TestFrameCentersContent(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "dark"})
	// termWidth=100, contentWidth=60 => leftPad=20
	output := theme.Frame("hello", 100, 3, 60)

	first := strings.Split(stripANSI(output), "\n")[0]
	if !strings.HasPrefix(first, strings.Repeat(" ", 20)+"hello") {
		t.Errorf("expected 20 cells of left padding, got %q", first)
	}
}

func TestFrameCutsTallContent(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	content := strings.Repeat("row\n", 20) + "last"
	lines := strings.Split(stripANSI(theme.Frame(content, 30, 5, 30)), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if strings.Contains(lines[4], "last") {
		t.Error("content past the terminal height should be cut")
	}
}

func TestOverlayCentersBox(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	lines := strings.Split(stripANSI(theme.Overlay("box", 21, 5)), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[2] != strings.Repeat(" ", 9)+"box"+strings.Repeat(" ", 9) {
		t.Errorf("middle line = %q", lines[2])
	}
}
