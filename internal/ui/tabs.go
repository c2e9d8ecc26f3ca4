package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/moodtrack/internal/chart"
)

// Tab titles in display order.
const (
	tabMoodGraph = "Mood Graph"
	tabJournal   = "Mood Journal"
	tabMedical   = "Medical Diagnosis"
	tabCalendar  = "Calendar"
	tabSettings  = "Settings/Goals"
	tabExercises = "Exercises"
)

// tab is one panel of the tab container. Each tab owns its widgets.
type tab interface {
	title() string
	resize(width, height int)
	update(msg tea.Msg) tea.Cmd
	view() string
	focus() tea.Cmd
	blur()
	// takesText reports whether the tab has a text area that consumes
	// printable keys, which disables single-letter shortcuts.
	takesText() bool
}

// graphTab shows the mood chart.
type graphTab struct {
	canvas *chart.Canvas
	points []chart.Point
}

func newGraphTab(points []chart.Point) *graphTab {
	g := &graphTab{canvas: chart.NewCanvas(60, 20), points: points}
	g.canvas.Draw(points)
	return g
}

func (g *graphTab) title() string { return tabMoodGraph }

// resize redraws the whole chart at the new size.
func (g *graphTab) resize(width, height int) {
	g.canvas.Resize(width, height)
	g.canvas.Draw(g.points)
}

func (g *graphTab) update(tea.Msg) tea.Cmd { return nil }
func (g *graphTab) view() string           { return g.canvas.String() }
func (g *graphTab) focus() tea.Cmd         { return nil }
func (g *graphTab) blur()                  {}
func (g *graphTab) takesText() bool        { return false }

// saveFunc persists the text of an entry tab and returns the dialog to show.
type saveFunc func(text string) *dialog

// entryTab is a multi-line text area with a save action.
type entryTab struct {
	name      string
	saveLabel string
	input     textarea.Model
	save      saveFunc
}

func newEntryTab(name, saveLabel, placeholder string, save saveFunc) *entryTab {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	// No length or row cap; textarea.New defaults to 400 chars and 99 rows.
	ta.CharLimit = 0
	ta.MaxHeight = 0
	return &entryTab{name: name, saveLabel: saveLabel, input: ta, save: save}
}

func (e *entryTab) title() string { return e.name }

func (e *entryTab) resize(width, height int) {
	e.input.SetWidth(width)
	// leave room for the save button line
	e.input.SetHeight(max(height-2, 3))
}

func (e *entryTab) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

func (e *entryTab) view() string {
	return e.input.View() + "\n\n" + "[ " + e.saveLabel + " ]  ctrl+s"
}

func (e *entryTab) focus() tea.Cmd { return e.input.Focus() }
func (e *entryTab) blur()          { e.input.Blur() }
func (e *entryTab) takesText() bool { return true }

// submit runs the save action on the current text. The text area keeps its
// content afterwards.
func (e *entryTab) submit() *dialog {
	return e.save(e.input.Value())
}

// placeholderTab is an empty panel reserved for future features.
type placeholderTab struct {
	name          string
	width, height int
}

func newPlaceholderTab(name string) *placeholderTab {
	return &placeholderTab{name: name}
}

func (p *placeholderTab) title() string { return p.name }

func (p *placeholderTab) resize(width, height int) {
	p.width, p.height = width, height
}

func (p *placeholderTab) update(tea.Msg) tea.Cmd { return nil }

func (p *placeholderTab) view() string {
	if p.height <= 0 {
		return ""
	}
	return strings.Repeat("\n", p.height-1)
}

func (p *placeholderTab) focus() tea.Cmd  { return nil }
func (p *placeholderTab) blur()           {}
func (p *placeholderTab) takesText() bool { return false }
