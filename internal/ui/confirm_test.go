package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/moodtrack/internal/config"
)

func TestConfirmAnswers(t *testing.T) {
	tests := []struct {
		name       string
		key        tea.KeyMsg
		defaultYes bool
		want       bool
	}{
		{"y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, false, true},
		{"Y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, false, true},
		{"n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, true, false},
		{"enter default no", tea.KeyMsg{Type: tea.KeyEnter}, false, false},
		{"enter default yes", tea.KeyMsg{Type: tea.KeyEnter}, true, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := confirmModel{prompt: "Import?", defaultYes: tt.defaultYes}
			updated, cmd := m.Update(tt.key)
			got := updated.(confirmModel)
			if !got.done {
				t.Fatal("expected prompt to finish")
			}
			if got.answer != tt.want {
				t.Errorf("answer = %v, want %v", got.answer, tt.want)
			}
			if cmd == nil {
				t.Error("expected quit command")
			}
		})
	}
}

func TestConfirmIgnoresOtherKeys(t *testing.T) {
	m := confirmModel{prompt: "Import?"}
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if updated.(confirmModel).done || cmd != nil {
		t.Error("unrelated key should not finish the prompt")
	}
}

func TestConfirmView(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	m := confirmModel{prompt: "Import 3 notes?", defaultYes: true, theme: theme}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Import 3 notes?") || !strings.Contains(view, "[Y/n]") {
		t.Errorf("view = %q", view)
	}
}
