// Package mediaquery evaluates media-query conditions against the
// resolved desktop appearance.
package mediaquery

import (
	"strings"

	"github.com/bnema/a11ytrack/internal/domain/entity"
)

// Supported media features.
const (
	FeatureColorScheme   = "prefers-color-scheme"
	FeatureContrast      = "prefers-contrast"
	FeatureReducedMotion = "prefers-reduced-motion"
)

// MediaNotAll is the canonical media text of a query that cannot match.
const MediaNotAll = "not all"

var featureValues = map[string][]string{
	FeatureColorScheme:   {"dark", "light"},
	FeatureContrast:      {"more", "less", "no-preference", "custom"},
	FeatureReducedMotion: {"reduce", "no-preference"},
}

// Query is a parsed condition query. A zero Query never matches.
type Query struct {
	Feature string
	// Value is empty for the boolean form "(feature)".
	Value string
	valid bool
}

// ParseQuery parses "(feature: value)" or "(feature)".
// Whitespace is ignored and names are case-insensitive.
func ParseQuery(s string) Query {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return Query{}
	}
	inner := s[1 : len(s)-1]

	feature, value, hasValue := strings.Cut(inner, ":")
	feature = strings.ToLower(strings.TrimSpace(feature))
	value = strings.ToLower(strings.TrimSpace(value))

	allowed, known := featureValues[feature]
	if !known {
		return Query{}
	}
	if !hasValue {
		return Query{Feature: feature, valid: true}
	}
	for _, v := range allowed {
		if v == value {
			return Query{Feature: feature, Value: value, valid: true}
		}
	}
	return Query{}
}

// Valid reports whether the query parsed.
func (q Query) Valid() bool {
	return q.valid
}

// Media returns the canonical query text.
func (q Query) Media() string {
	if !q.valid {
		return MediaNotAll
	}
	if q.Value == "" {
		return "(" + q.Feature + ")"
	}
	return "(" + q.Feature + ": " + q.Value + ")"
}

// Evaluate reports whether the query holds for the given appearance.
func (q Query) Evaluate(a entity.Appearance) bool {
	if !q.valid {
		return false
	}
	switch q.Feature {
	case FeatureColorScheme:
		switch q.Value {
		case "":
			return a.ColorScheme != entity.ColorSchemeNoPreference
		case "dark":
			return a.ColorScheme == entity.ColorSchemeDark
		case "light":
			// Light is the initial value when nothing is preferred.
			return a.ColorScheme != entity.ColorSchemeDark
		}
	case FeatureContrast:
		switch q.Value {
		case "":
			return a.Contrast != entity.ContrastNoPreference
		case "custom":
			return false
		default:
			return q.Value == a.Contrast.String()
		}
	case FeatureReducedMotion:
		if q.Value == "" {
			return a.Motion == entity.MotionReduce
		}
		return q.Value == a.Motion.String()
	}
	return false
}
