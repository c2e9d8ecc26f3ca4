package ui

import (
	"github.com/charmbracelet/lipgloss"
)

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogWarning
	dialogError
)

// dialog is a modal message box. While one is open it receives every key.
type dialog struct {
	kind    dialogKind
	title   string
	message string
}

func infoDialog(message string) *dialog {
	return &dialog{kind: dialogInfo, title: "Success", message: message}
}

func warningDialog(message string) *dialog {
	return &dialog{kind: dialogWarning, title: "Warning", message: message}
}

func errorDialog(message string) *dialog {
	return &dialog{kind: dialogError, title: "Error", message: message}
}

// dismisses reports whether key closes the dialog.
func (d *dialog) dismisses(key string) bool {
	switch key {
	case "enter", "esc", " ", "q":
		return true
	}
	return false
}

// titleStyle colors the title by severity.
func (d *dialog) titleStyle(theme Theme) lipgloss.Style {
	if d.kind == dialogInfo {
		return theme.AccentStyle().Bold(true)
	}
	return theme.DangerStyle()
}

func (d *dialog) view(theme Theme, width int) string {
	boxWidth := min(max(width/2, 32), 60)
	title := d.titleStyle(theme).Render(d.title)
	body := theme.ViewPaneStyle().Width(boxWidth - 6).Render(d.message)
	hint := theme.HelpStyle().Render("enter OK")
	return theme.DialogBoxStyle(boxWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint))
}
