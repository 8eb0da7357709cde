package cli

import "github.com/charmbracelet/lipgloss"

// Palette of the Mimamsa apps.
var (
	colorPrimary     = lipgloss.Color("#2563eb")
	colorAccent      = lipgloss.Color("#8b5cf6")
	colorTextPrimary = lipgloss.Color("#f1f5f9")
	colorTextMuted   = lipgloss.Color("#94a3b8")
	colorSuccess     = lipgloss.Color("#10b981")
	colorWarning     = lipgloss.Color("#f59e0b")
	colorError       = lipgloss.Color("#ef4444")
)

// theme holds the styles used by the screens. Colors are dropped
// automatically when output is not a terminal.
type theme struct {
	title   lipgloss.Style
	heading lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
}

func newTheme() theme {
	return theme{
		title:   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		heading: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		text:    lipgloss.NewStyle().Foreground(colorTextPrimary),
		muted:   lipgloss.NewStyle().Foreground(colorTextMuted),
		accent:  lipgloss.NewStyle().Foreground(colorAccent),
		success: lipgloss.NewStyle().Foreground(colorSuccess),
		warning: lipgloss.NewStyle().Foreground(colorWarning),
		err:     lipgloss.NewStyle().Foreground(colorError).Bold(true),
	}
}
