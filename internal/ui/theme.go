package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/moodtrack/internal/config"
)

// DefaultPreset is used when the configured preset is empty or unknown.
const DefaultPreset = "dark"

// Theme holds the resolved colors of the Mood Tracker window.
type Theme struct {
	Primary       lipgloss.Color // body text
	Secondary     lipgloss.Color // borders, inactive tabs
	Accent        lipgloss.Color // active tab, success dialogs
	Muted         lipgloss.Color // help and footer lines
	Danger        lipgloss.Color // warning and error dialogs
	Background    lipgloss.Color
	MarkdownStyle string // glamour style for list --render
}

// presets are stored in config form so a user override and a preset merge
// the same way.
var presets = map[string]config.ThemeConfig{
	"dark": {
		Primary: "252", Secondary: "240", Accent: "75", Muted: "244",
		Danger: "203", Background: "234", MarkdownStyle: "dark",
	},
	"light": {
		Primary: "235", Secondary: "248", Accent: "26", Muted: "243",
		Danger: "160", Background: "255", MarkdownStyle: "light",
	},
	"dracula": {
		Primary: "#F8F8F2", Secondary: "#44475A", Accent: "#FF79C6", Muted: "#6272A4",
		Danger: "#FF5555", Background: "#282A36", MarkdownStyle: "dracula",
	},
}

// PresetNames lists the built-in presets.
func PresetNames() []string {
	return []string{"dark", "light", "dracula"}
}

// ResolveTheme picks the configured preset and lays any non-empty color
// overrides from cfg on top of it.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	base, ok := presets[cfg.Preset]
	if !ok {
		base = presets[DefaultPreset]
	}
	pick := func(override, preset string) string {
		if override != "" {
			return override
		}
		return preset
	}
	return Theme{
		Primary:       lipgloss.Color(pick(cfg.Primary, base.Primary)),
		Secondary:     lipgloss.Color(pick(cfg.Secondary, base.Secondary)),
		Accent:        lipgloss.Color(pick(cfg.Accent, base.Accent)),
		Muted:         lipgloss.Color(pick(cfg.Muted, base.Muted)),
		Danger:        lipgloss.Color(pick(cfg.Danger, base.Danger)),
		Background:    lipgloss.Color(pick(cfg.Background, base.Background)),
		MarkdownStyle: pick(cfg.MarkdownStyle, base.MarkdownStyle),
	}
}

// on returns a style painted on the theme background in color fg.
func (t Theme) on(fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg).Background(t.Background)
}

func (t Theme) ViewPaneStyle() lipgloss.Style { return t.on(t.Primary) }
func (t Theme) HelpStyle() lipgloss.Style     { return t.on(t.Muted) }
func (t Theme) HeaderStyle() lipgloss.Style   { return t.on(t.Primary).Bold(true) }
func (t Theme) AccentStyle() lipgloss.Style   { return t.on(t.Accent) }
func (t Theme) DangerStyle() lipgloss.Style   { return t.on(t.Danger).Bold(true) }

// ActiveTabStyle renders the selected tab title.
func (t Theme) ActiveTabStyle() lipgloss.Style {
	return t.on(t.Accent).Bold(true).Underline(true).Padding(0, 1)
}

// TabStyle renders an unselected tab title.
func (t Theme) TabStyle() lipgloss.Style {
	return t.on(t.Secondary).Padding(0, 1)
}

// DialogBoxStyle frames a modal dialog.
func (t Theme) DialogBoxStyle(width int) lipgloss.Style {
	return t.on(t.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		BorderBackground(t.Background).
		Padding(1, 2).
		Width(width)
}

// Frame lays content out as one full terminal screen: a column contentWidth
// cells wide, centered, cut to termHeight rows, with the theme background
// behind every cell.
func (t Theme) Frame(content string, termWidth, termHeight, contentWidth int) string {
	if contentWidth <= 0 || contentWidth > termWidth {
		contentWidth = termWidth
	}
	column := t.on(t.Primary).
		Width(contentWidth).
		MaxHeight(termHeight).
		Render(content)
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Top, column,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// Overlay centers box on an otherwise empty screen.
func (t Theme) Overlay(box string, termWidth, termHeight int) string {
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(t.Background))
}
