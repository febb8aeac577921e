package repl

import "github.com/charmbracelet/lipgloss"

var (
	colorAccepted = lipgloss.Color("#10B981")
	colorRejected = lipgloss.Color("#EF4444")
	colorTitle    = lipgloss.Color("#8B5CF6")
	colorMuted    = lipgloss.Color("#6B7280")
)

// Styles decorate the fixed lines of a session. The zero value prints
// plain text.
type Styles struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accepted lipgloss.Style
	Rejected lipgloss.Style
}

func PlainStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
		Accepted: lipgloss.NewStyle(),
		Rejected: lipgloss.NewStyle(),
	}
}

func ColorStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(colorTitle).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(colorMuted),
		Accepted: lipgloss.NewStyle().
			Foreground(colorAccepted).
			Bold(true),
		Rejected: lipgloss.NewStyle().
			Foreground(colorRejected).
			Bold(true),
	}
}
