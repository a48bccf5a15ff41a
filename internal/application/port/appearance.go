package port

import "github.com/bnema/a11ytrack/internal/domain/entity"

//go:generate mockgen -source=appearance.go -destination=mocks/mock_appearance.go -package=mocks

// AppearanceSource reads display preferences from one desktop backend.
// Multiple sources can be registered with different priorities.
type AppearanceSource interface {
	// Name returns a human-readable name for this source.
	Name() string

	// Priority returns the source's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 200+: Config file overrides
	//   - 100+: Session services (XDG desktop portal)
	//   -  10+: Fallback sources (gsettings, env vars)
	Priority() int

	// Available returns true if this source can be used.
	Available() bool

	// DetectColorScheme returns (scheme, true) on success, (_, false) if
	// the source has no opinion or the read failed.
	DetectColorScheme() (entity.ColorScheme, bool)

	// DetectContrast behaves like DetectColorScheme for contrast.
	DetectContrast() (entity.Contrast, bool)

	// DetectMotion behaves like DetectColorScheme for reduced motion.
	DetectMotion() (entity.Motion, bool)
}

// AppearanceResolver resolves the effective appearance across sources.
type AppearanceResolver interface {
	// Resolve queries sources by priority for every feature.
	// Features no source reports fall back to no-preference.
	Resolve() entity.Appearance

	// RegisterSource adds a source. Safe to call at any time.
	RegisterSource(source AppearanceSource)
}
