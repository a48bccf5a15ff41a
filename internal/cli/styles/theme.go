// Package styles provides lipgloss renderers for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds lipgloss colors and pre-built styles.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color

	Error   lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	Box          lipgloss.Style
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#909090"),
		Accent:  lipgloss.Color("#4ade80"),
		Border:  lipgloss.Color("#333333"),
		Error:   lipgloss.Color("#f87171"),
		Success: lipgloss.Color("#4ade80"),
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return t
}
