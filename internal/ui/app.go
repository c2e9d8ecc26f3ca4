package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/moodtrack/internal/chart"
	"github.com/chris-regnier/moodtrack/internal/daily"
	"github.com/chris-regnier/moodtrack/internal/entry"
	"github.com/chris-regnier/moodtrack/internal/storage"
	"github.com/rs/zerolog"
)

// WindowTitle is the terminal title set while the TUI runs.
const WindowTitle = "Mood Tracker"

// TUIConfig holds configuration needed by the TUI.
type TUIConfig struct {
	MaxWidth int            // maximum content width (0 = no limit)
	Theme    Theme          // resolved theme
	Logger   zerolog.Logger // save outcomes are logged here
	Clock    daily.Clock    // nil means time.Now
}

// appModel is the Bubble Tea model for the tabbed Mood Tracker window.
type appModel struct {
	cfg    TUIConfig
	tabs   []tab
	active int
	dialog *dialog
	width  int
	height int
	ready  bool
}

// newAppModel builds the tab container in its fixed order. The mood chart is
// drawn once here from the synthetic sample series.
func newAppModel(store storage.Storage, cfg TUIConfig) appModel {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	log := cfg.Logger.With().Str("component", "tui").Logger()

	journal := newEntryTab(tabJournal, "Save Journal Entry", "How was your day?",
		func(text string) *dialog {
			e, err := daily.SaveJournal(store, text, cfg.Clock)
			switch {
			case errors.Is(err, entry.ErrEmptyText):
				return warningDialog("Journal entry is empty.")
			case err != nil:
				log.Error().Err(err).Msg("journal save failed")
				return errorDialog(err.Error())
			}
			log.Info().Str("date", e.Date).Int("length", len(e.Notes)).Msg("journal entry saved")
			return infoDialog("Journal entry saved.")
		})

	medical := newEntryTab(tabMedical, "Save Medical Diagnosis", "Diagnosis notes...",
		func(text string) *dialog {
			d, err := daily.SaveDiagnosis(store, text, cfg.Clock)
			switch {
			case errors.Is(err, entry.ErrEmptyText):
				return warningDialog("Medical diagnosis entry is empty.")
			case err != nil:
				log.Error().Err(err).Msg("diagnosis save failed")
				return errorDialog(err.Error())
			}
			log.Info().Str("date", d.Date).Int("length", len(d.Diagnosis)).Msg("medical diagnosis saved")
			return infoDialog("Medical diagnosis saved.")
		})

	return appModel{
		cfg: cfg,
		tabs: []tab{
			newGraphTab(chart.SampleSeries(cfg.Clock())),
			journal,
			medical,
			newPlaceholderTab(tabCalendar),
			newPlaceholderTab(tabSettings),
			newPlaceholderTab(tabExercises),
		},
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.SetWindowTitle(WindowTitle)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		w, h := m.bodySize()
		for _, t := range m.tabs {
			t.resize(w, h)
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}

		// Modal dialog swallows all other keys until dismissed.
		if m.dialog != nil {
			if m.dialog.dismisses(key) {
				m.dialog = nil
			}
			return m, nil
		}

		switch key {
		case "tab", "ctrl+right":
			return m, m.switchTab(1)
		case "shift+tab", "ctrl+left":
			return m, m.switchTab(-1)
		case "ctrl+s":
			if t, ok := m.tabs[m.active].(*entryTab); ok {
				m.dialog = t.submit()
			}
			return m, nil
		case "q", "esc":
			if !m.tabs[m.active].takesText() {
				return m, tea.Quit
			}
		}
	}

	return m, m.tabs[m.active].update(msg)
}

// switchTab moves the selection by delta, wrapping around.
func (m *appModel) switchTab(delta int) tea.Cmd {
	m.tabs[m.active].blur()
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	return m.tabs[m.active].focus()
}

// contentWidth returns the effective content width, respecting MaxWidth.
func (m *appModel) contentWidth() int {
	if m.cfg.MaxWidth > 0 && m.width > m.cfg.MaxWidth {
		return m.cfg.MaxWidth
	}
	return m.width
}

// bodySize is the area left for the active tab under the header and tab bar
// and above the footer.
func (m *appModel) bodySize() (int, int) {
	const chrome = 4 // title, tab bar, rule, footer
	return m.contentWidth(), max(m.height-chrome, 1)
}

func (m appModel) tabBar() string {
	titles := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			titles[i] = m.cfg.Theme.ActiveTabStyle().Render(t.title())
		} else {
			titles[i] = m.cfg.Theme.TabStyle().Render(t.title())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, titles...)
}

func (m appModel) footer() string {
	hint := "tab/shift+tab switch • q quit"
	if m.tabs[m.active].takesText() {
		hint = "tab/shift+tab switch • ctrl+s save • ctrl+c quit"
	}
	return m.cfg.Theme.HelpStyle().Width(m.contentWidth()).Render(hint)
}

func (m appModel) View() string {
	if !m.ready {
		// No Frame here: dimensions are unknown until the first WindowSizeMsg.
		return "Loading..."
	}

	if m.dialog != nil {
		return m.cfg.Theme.Overlay(m.dialog.view(m.cfg.Theme, m.contentWidth()), m.width, m.height)
	}

	cw := m.contentWidth()
	sections := []string{
		m.cfg.Theme.HeaderStyle().Width(cw).Render(WindowTitle),
		m.tabBar(),
		m.cfg.Theme.HelpStyle().Render(strings.Repeat("─", cw)),
		m.cfg.Theme.ViewPaneStyle().Width(cw).Render(m.tabs[m.active].view()),
		m.footer(),
	}
	return m.cfg.Theme.Frame(strings.Join(sections, "\n"), m.width, m.height, cw)
}

// RunTUI launches the Mood Tracker window and blocks until the user quits.
func RunTUI(store storage.Storage, cfg TUIConfig) error {
	m := newAppModel(store, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
