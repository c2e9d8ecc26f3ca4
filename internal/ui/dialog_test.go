package ui

import (
	"strings"
	"testing"

	"github.com/chris-regnier/moodtrack/internal/config"
)

func TestDialogDismissKeys(t *testing.T) {
	d := infoDialog("saved")
	for _, key := range []string{"enter", "esc", " ", "q"} {
		if !d.dismisses(key) {
			t.Errorf("%q should dismiss the dialog", key)
		}
	}
	if d.dismisses("x") {
		t.Error("x should not dismiss the dialog")
	}
}

func TestDialogTitleStyleBySeverity(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "dark"})
	if infoDialog("ok").titleStyle(theme).GetForeground() != theme.Accent {
		t.Error("info dialogs should use the accent color")
	}
	for _, d := range []*dialog{warningDialog("w"), errorDialog("e")} {
		if d.titleStyle(theme).GetForeground() != theme.Danger {
			t.Errorf("%s dialog should use the danger color", d.title)
		}
	}
}

func TestErrorDialogViewShowsTitleAndMessage(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	view := stripANSI(errorDialog("disk full").view(theme, 80))
	for _, want := range []string{"Error", "disk full", "enter OK"} {
		if !strings.Contains(view, want) {
			t.Errorf("dialog view missing %q:\n%s", want, view)
		}
	}
}
