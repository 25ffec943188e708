package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Accent      = lipgloss.Color("#8BC34A") // lime
	Warning     = lipgloss.Color("#FFC107") // yellow
	Destructive = lipgloss.Color("#e53935") // red
	Muted       = lipgloss.Color("#8a94a6") // grey
)

// Styles holds the per-message styles used by Console.
type Styles struct {
	Title  lipgloss.Style
	Prompt lipgloss.Style
	Muted  lipgloss.Style
	Hint   lipgloss.Style
	Error  lipgloss.Style
	Win    lipgloss.Style
}

// NewStyles builds styles rendered for w. With color off every style is
// the zero style, so text is written unchanged. Color is also dropped
// automatically when w is not a terminal.
func NewStyles(w io.Writer, color bool) Styles {
	if !color {
		return PlainStyles()
	}
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:  r.NewStyle().Bold(true),
		Prompt: r.NewStyle(),
		Muted:  r.NewStyle().Foreground(Muted),
		Hint:   r.NewStyle().Foreground(Warning),
		Error:  r.NewStyle().Foreground(Destructive),
		Win:    r.NewStyle().Foreground(Accent).Bold(true),
	}
}

// PlainStyles returns unstyled output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Title: plain, Prompt: plain, Muted: plain, Hint: plain, Error: plain, Win: plain}
}
