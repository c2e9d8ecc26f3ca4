package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// pagerModel scrolls long list output in the alternate screen.
type pagerModel struct {
	viewport viewport.Model
	content  string
	theme    Theme
	ready    bool
	maxWidth int // 0 = no limit
	width    int
	height   int
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := max(msg.Height-1, 1)
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), h)
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = h
		}
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	footer := m.theme.HelpStyle().Render(
		fmt.Sprintf("↑/↓ scroll • q quit • %3.f%%", m.viewport.ScrollPercent()*100))
	body := m.theme.ViewPaneStyle().Render(m.viewport.View())
	return m.theme.Frame(body+"\n"+footer, m.width, m.height, m.contentWidth())
}

// PageOutput writes content to stdout, through a scrolling pager when stdout
// is a terminal and the content is taller than it.
func PageOutput(content string, maxWidth int, theme Theme) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Print(content)
		return nil
	}
	_, height, err := term.GetSize(fd)
	if err != nil || strings.Count(content, "\n")+1 <= height-2 {
		fmt.Print(content)
		return nil
	}

	p := tea.NewProgram(pagerModel{content: content, maxWidth: maxWidth, theme: theme}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}

// OutputOrPage writes content to w, using the pager when w is stdout.
// JSON output is never paged.
func OutputOrPage(w io.Writer, content string, jsonOutput bool, maxWidth int, theme Theme) error {
	if jsonOutput || w != os.Stdout {
		_, err := fmt.Fprint(w, content)
		return err
	}
	return PageOutput(content, maxWidth, theme)
}
