package entity

import "strings"

// ColorScheme is the desktop's preferred color scheme.
type ColorScheme int

const (
	ColorSchemeNoPreference ColorScheme = iota
	ColorSchemeDark
	ColorSchemeLight
)

func (c ColorScheme) String() string {
	switch c {
	case ColorSchemeDark:
		return "dark"
	case ColorSchemeLight:
		return "light"
	default:
		return "no-preference"
	}
}

// Contrast is the desktop's preferred contrast level.
type Contrast int

const (
	ContrastNoPreference Contrast = iota
	ContrastMore
	ContrastLess
)

func (c Contrast) String() string {
	switch c {
	case ContrastMore:
		return "more"
	case ContrastLess:
		return "less"
	default:
		return "no-preference"
	}
}

// Motion is the desktop's reduced-motion request.
type Motion int

const (
	MotionNoPreference Motion = iota
	MotionReduce
)

func (m Motion) String() string {
	if m == MotionReduce {
		return "reduce"
	}
	return "no-preference"
}

// Appearance is a resolved snapshot of the desktop's display preferences.
// The *Source fields name the source that provided each value.
type Appearance struct {
	ColorScheme       ColorScheme
	ColorSchemeSource string

	Contrast       Contrast
	ContrastSource string

	Motion       Motion
	MotionSource string
}

// ParseColorScheme parses a user-facing color scheme override.
// "default" and the empty string report ok=false.
func ParseColorScheme(s string) (ColorScheme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefer-dark", "dark":
		return ColorSchemeDark, true
	case "prefer-light", "light":
		return ColorSchemeLight, true
	case "no-preference":
		return ColorSchemeNoPreference, true
	default:
		return ColorSchemeNoPreference, false
	}
}

// ParseContrast parses a user-facing contrast override.
func ParseContrast(s string) (Contrast, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "more", "high":
		return ContrastMore, true
	case "less", "low":
		return ContrastLess, true
	case "no-preference", "normal":
		return ContrastNoPreference, true
	default:
		return ContrastNoPreference, false
	}
}

// ParseMotion parses a user-facing reduced-motion override.
func ParseMotion(s string) (Motion, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reduce":
		return MotionReduce, true
	case "no-preference":
		return MotionNoPreference, true
	default:
		return MotionNoPreference, false
	}
}
