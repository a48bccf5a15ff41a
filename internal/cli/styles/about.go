package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/a11ytrack/internal/domain/build"
)

// AboutRenderer renders build info.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info as key/value lines.
func (r *AboutRenderer) Render(info build.Info) string {
	keyStyle := r.theme.Subtle.Width(10)
	valStyle := r.theme.Highlight

	orUnknown := func(s string) string {
		if s == "" {
			return "unknown"
		}
		return s
	}

	lines := []string{
		r.theme.Title.Render("a11ytrack"),
		fmt.Sprintf("%s%s", keyStyle.Render("Version"), valStyle.Render(orUnknown(info.Version))),
		fmt.Sprintf("%s%s", keyStyle.Render("Commit"), valStyle.Render(orUnknown(info.Commit))),
		fmt.Sprintf("%s%s", keyStyle.Render("Built"), valStyle.Render(orUnknown(info.BuildDate))),
		fmt.Sprintf("%s%s", keyStyle.Render("Go"), valStyle.Render(orUnknown(info.GoVersion))),
		"",
		r.theme.Subtle.Render(build.RepoURL()),
		r.theme.Subtle.Render("by " + strings.Join(build.Contributors(), ", ")),
	}
	return strings.Join(lines, "\n")
}
