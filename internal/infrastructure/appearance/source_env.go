package appearance

import (
	"os"
	"strings"

	"github.com/bnema/a11ytrack/internal/domain/entity"
)

const (
	sourceNameEnv = "GTK_THEME"
	priorityEnv   = 20
)

// EnvSource reads preferences from the GTK_THEME environment variable.
// This is useful when users explicitly set their theme via environment.
type EnvSource struct {
	getenv func(string) string
}

// NewEnvSource creates a new environment variable-based source.
func NewEnvSource() *EnvSource {
	return &EnvSource{getenv: os.Getenv}
}

// Name implements port.AppearanceSource.
func (*EnvSource) Name() string {
	return sourceNameEnv
}

// Priority implements port.AppearanceSource.
func (*EnvSource) Priority() int {
	return priorityEnv
}

// Available implements port.AppearanceSource.
// Returns true if GTK_THEME environment variable is set.
func (s *EnvSource) Available() bool {
	return s.theme() != ""
}

// DetectColorScheme implements port.AppearanceSource.
// A theme name containing "dark" means dark, anything else light.
func (s *EnvSource) DetectColorScheme() (entity.ColorScheme, bool) {
	theme := s.theme()
	if theme == "" {
		return entity.ColorSchemeNoPreference, false
	}
	if strings.Contains(theme, "dark") {
		return entity.ColorSchemeDark, true
	}
	return entity.ColorSchemeLight, true
}

// DetectContrast implements port.AppearanceSource.
// Only HighContrast themes carry an opinion.
func (s *EnvSource) DetectContrast() (entity.Contrast, bool) {
	if strings.Contains(s.theme(), "highcontrast") {
		return entity.ContrastMore, true
	}
	return entity.ContrastNoPreference, false
}

// DetectMotion implements port.AppearanceSource.
// GTK_THEME says nothing about motion.
func (*EnvSource) DetectMotion() (entity.Motion, bool) {
	return entity.MotionNoPreference, false
}

func (s *EnvSource) theme() string {
	if s.getenv == nil {
		return ""
	}
	return strings.ToLower(s.getenv("GTK_THEME"))
}
