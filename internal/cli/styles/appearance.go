package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/a11ytrack/internal/domain/entity"
)

// SourceStatus describes one registered appearance source.
type SourceStatus struct {
	Name      string
	Priority  int
	Available bool
}

// QueryResult is one evaluated media query.
type QueryResult struct {
	Input   string
	Media   string
	Matches bool
}

// AppearanceRenderer renders appearance state.
type AppearanceRenderer struct {
	theme *Theme
}

// NewAppearanceRenderer creates a renderer with the given theme.
func NewAppearanceRenderer(theme *Theme) *AppearanceRenderer {
	return &AppearanceRenderer{theme: theme}
}

// RenderStatus renders the resolved appearance and the source list.
func (r *AppearanceRenderer) RenderStatus(a entity.Appearance, sources []SourceStatus) string {
	keyStyle := r.theme.Subtle.Width(16)
	valStyle := r.theme.Highlight.Width(16)

	row := func(key, value, source string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Render(key),
			valStyle.Render(value),
			r.theme.Subtle.Render("from "+source),
		)
	}

	lines := []string{
		r.theme.Title.Render("Desktop appearance"),
		row("color scheme", a.ColorScheme.String(), a.ColorSchemeSource),
		row("contrast", a.Contrast.String(), a.ContrastSource),
		row("reduced motion", a.Motion.String(), a.MotionSource),
		"",
		r.theme.Title.Render("Sources"),
	}
	if len(sources) == 0 {
		lines = append(lines, r.theme.Subtle.Render("none registered"))
	}
	for _, s := range sources {
		state := r.theme.ErrorStyle.Render("unavailable")
		if s.Available {
			state = r.theme.SuccessStyle.Render("available")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Render(s.Name),
			valStyle.Render(fmt.Sprintf("priority %d", s.Priority)),
			state,
		))
	}

	return r.theme.Box.Render(strings.Join(lines, "\n"))
}

// RenderQueries renders media query results, one per line.
func (r *AppearanceRenderer) RenderQueries(results []QueryResult) string {
	lines := make([]string, 0, len(results))
	for _, res := range results {
		mark := r.theme.ErrorStyle.Render("no ")
		if res.Matches {
			mark = r.theme.SuccessStyle.Render("yes")
		}
		line := fmt.Sprintf("%s  %s", mark, r.theme.Highlight.Render(res.Media))
		if res.Media != res.Input {
			line += r.theme.Subtle.Render(fmt.Sprintf("  (from %q)", res.Input))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error message.
func (r *AppearanceRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render("error: ") + err.Error()
}
