package appearance

import (
	"os/exec"
	"strings"

	"github.com/bnema/a11ytrack/internal/domain/entity"
)

const (
	sourceNameGsettings = "gsettings"
	priorityGsettings   = 10

	schemaInterface     = "org.gnome.desktop.interface"
	schemaA11yInterface = "org.gnome.desktop.a11y.interface"
	keyColorScheme      = "color-scheme"
	keyHighContrast     = "high-contrast"
	keyEnableAnimations = "enable-animations"
)

// GsettingsSource reads preferences from GNOME gsettings.
// This is the most reliable fallback for GNOME-based desktops.
type GsettingsSource struct {
	run func(args ...string) ([]byte, error)
}

// NewGsettingsSource creates a new gsettings-based source.
func NewGsettingsSource() *GsettingsSource {
	return &GsettingsSource{
		run: func(args ...string) ([]byte, error) {
			return exec.Command("gsettings", args...).Output()
		},
	}
}

// Name implements port.AppearanceSource.
func (*GsettingsSource) Name() string {
	return sourceNameGsettings
}

// Priority implements port.AppearanceSource.
func (*GsettingsSource) Priority() int {
	return priorityGsettings
}

// Available implements port.AppearanceSource.
// Returns true if gsettings command is available.
func (*GsettingsSource) Available() bool {
	_, err := exec.LookPath("gsettings")
	return err == nil
}

// DetectColorScheme implements port.AppearanceSource.
// Queries org.gnome.desktop.interface color-scheme.
func (s *GsettingsSource) DetectColorScheme() (entity.ColorScheme, bool) {
	value, ok := s.get(schemaInterface, keyColorScheme)
	if !ok {
		return entity.ColorSchemeNoPreference, false
	}

	switch value {
	case "prefer-dark":
		return entity.ColorSchemeDark, true
	case "prefer-light":
		return entity.ColorSchemeLight, true
	case "default":
		return entity.ColorSchemeNoPreference, true
	default:
		return entity.ColorSchemeNoPreference, false
	}
}

// DetectContrast implements port.AppearanceSource.
// Queries org.gnome.desktop.a11y.interface high-contrast.
func (s *GsettingsSource) DetectContrast() (entity.Contrast, bool) {
	value, ok := s.get(schemaA11yInterface, keyHighContrast)
	if !ok {
		return entity.ContrastNoPreference, false
	}

	switch value {
	case "true":
		return entity.ContrastMore, true
	case "false":
		return entity.ContrastNoPreference, true
	default:
		return entity.ContrastNoPreference, false
	}
}

// DetectMotion implements port.AppearanceSource.
// Disabled animations in org.gnome.desktop.interface mean reduced motion.
func (s *GsettingsSource) DetectMotion() (entity.Motion, bool) {
	value, ok := s.get(schemaInterface, keyEnableAnimations)
	if !ok {
		return entity.MotionNoPreference, false
	}

	switch value {
	case "false":
		return entity.MotionReduce, true
	case "true":
		return entity.MotionNoPreference, true
	default:
		return entity.MotionNoPreference, false
	}
}

func (s *GsettingsSource) get(schema, key string) (string, bool) {
	if s.run == nil {
		return "", false
	}
	output, err := s.run("get", schema, key)
	if err != nil {
		return "", false
	}

	// Output is like "'prefer-dark'\n", strip quotes and whitespace
	result := strings.TrimSpace(string(output))
	result = strings.Trim(result, "'\"")
	return result, true
}
