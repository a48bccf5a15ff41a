package entity

import (
	"encoding/json"
	"fmt"
)

// Media query strings for the tracked preference categories.
const (
	MediaQueryContrastLess         = "(prefers-contrast: less)"
	MediaQueryContrastMore         = "(prefers-contrast: more)"
	MediaQueryContrastNoPreference = "(prefers-contrast: no-preference)"

	MediaQueryReducedMotion             = "(prefers-reduced-motion: reduce)"
	MediaQueryReducedMotionNoPreference = "(prefers-reduced-motion: no-preference)"

	MediaQueryColorSchemeDark  = "(prefers-color-scheme: dark)"
	MediaQueryColorSchemeLight = "(prefers-color-scheme: light)"
)

// Category identifies one tracked preference group.
type Category int

const (
	CategoryContrast Category = iota
	CategoryReducedMotion
	CategoryColorScheme
)

// String returns the report key of the category.
func (c Category) String() string {
	switch c {
	case CategoryContrast:
		return "prefersContrast"
	case CategoryReducedMotion:
		return "prefersReducedMotion"
	case CategoryColorScheme:
		return "prefersColorScheme"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// PreferenceEntry is the last observed condition of a category.
// Value is nil when no condition matched.
type PreferenceEntry struct {
	Value   *string `json:"value"`
	Changed bool    `json:"changed"`
}

// Set records the matched condition. An empty media string clears the value.
func (e *PreferenceEntry) Set(media string) {
	if media == "" {
		e.Value = nil
		return
	}
	v := media
	e.Value = &v
}

// ValueOr returns the recorded value, or fallback when unset.
func (e PreferenceEntry) ValueOr(fallback string) string {
	if e.Value == nil {
		return fallback
	}
	return *e.Value
}

// PreferenceState is the aggregate record handed to the reporter.
// Field order is the serialization order.
type PreferenceState struct {
	PrefersContrast      PreferenceEntry `json:"prefersContrast"`
	PrefersReducedMotion PreferenceEntry `json:"prefersReducedMotion"`
	PrefersColorScheme   PreferenceEntry `json:"prefersColorScheme"`
}

// Entry returns the entry backing the given category.
func (s *PreferenceState) Entry(c Category) *PreferenceEntry {
	switch c {
	case CategoryContrast:
		return &s.PrefersContrast
	case CategoryReducedMotion:
		return &s.PrefersReducedMotion
	case CategoryColorScheme:
		return &s.PrefersColorScheme
	default:
		return nil
	}
}

// Clone returns a deep copy that shares no pointers with s.
func (s PreferenceState) Clone() PreferenceState {
	out := s
	for _, c := range []Category{CategoryContrast, CategoryReducedMotion, CategoryColorScheme} {
		e := out.Entry(c)
		if e.Value != nil {
			v := *e.Value
			e.Value = &v
		}
	}
	return out
}

// Report serializes the state as two-space indented JSON.
func (s PreferenceState) Report() (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal preference state: %w", err)
	}
	return string(data), nil
}
