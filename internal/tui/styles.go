package tui

import (
	"github.com/charmbracelet/lipgloss"

	"llm-chat/internal/chatui"
)

type palette struct {
	primary    lipgloss.Color
	secondary  lipgloss.Color
	background lipgloss.Color
	card       lipgloss.Color
	text       lipgloss.Color
}

var palettes = map[chatui.Theme]palette{
	chatui.ThemeLight: {
		primary:    lipgloss.Color("#4f7cff"),
		secondary:  lipgloss.Color("#d0d4dc"),
		background: lipgloss.Color("#ffffff"),
		card:       lipgloss.Color("#f1f3f7"),
		text:       lipgloss.Color("#1b1f27"),
	},
	chatui.ThemeDark: {
		primary:    lipgloss.Color("#3553b8"),
		secondary:  lipgloss.Color("#3a3f4b"),
		background: lipgloss.Color("#14161c"),
		card:       lipgloss.Color("#23262f"),
		text:       lipgloss.Color("#e8eaf0"),
	},
}

// Styles are the lipgloss styles for one theme.
type Styles struct {
	Header lipgloss.Style
	User   lipgloss.Style
	Reply  lipgloss.Style
	Input  lipgloss.Style
	Help   lipgloss.Style
}

func StylesFor(theme chatui.Theme) Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[chatui.ThemeLight]
	}

	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(p.text).Background(p.primary),
		User: lipgloss.NewStyle().Padding(0, 1).MarginBottom(1).
			Foreground(p.text).Background(p.primary),
		Reply: lipgloss.NewStyle().Padding(0, 1).MarginBottom(1).
			Foreground(p.text).Background(p.card),
		Input: lipgloss.NewStyle().Padding(0, 1).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(p.secondary).Foreground(p.text),
		Help: lipgloss.NewStyle().Faint(true),
	}
}
