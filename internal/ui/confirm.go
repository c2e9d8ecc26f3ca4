package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel is a one-line yes/no prompt. Enter picks the default answer.
type confirmModel struct {
	prompt     string
	defaultYes bool
	answer     bool
	done       bool
	theme      Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.answer = true
	case "n", "esc", "ctrl+c":
		m.answer = false
	case "enter":
		m.answer = m.defaultYes
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	choices := "[y/N]"
	if m.defaultYes {
		choices = "[Y/n]"
	}
	promptStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	return promptStyle.Render(m.prompt) + " " + m.theme.AccentStyle().Render(choices) + " "
}

// Confirm asks a yes/no question on the terminal and reports the answer.
func Confirm(prompt string, defaultYes bool, theme Theme) (bool, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt, defaultYes: defaultYes, theme: theme})
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).answer, nil
}
