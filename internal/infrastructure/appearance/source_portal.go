package appearance

import (
	"os"

	"github.com/rymdport/portal/settings"

	"github.com/bnema/a11ytrack/internal/domain/entity"
)

const (
	sourceNamePortal = "xdg-desktop-portal"
	priorityPortal   = 100

	// PortalNamespace is the settings namespace holding appearance keys.
	PortalNamespace = "org.freedesktop.appearance"

	portalKeyColorScheme   = "color-scheme"
	portalKeyContrast      = "contrast"
	portalKeyReducedMotion = "reduced-motion"
)

// PortalSource reads org.freedesktop.appearance through the XDG desktop
// portal Settings interface.
type PortalSource struct {
	readOne func(namespace, key string) (any, error)
}

// NewPortalSource creates a portal-backed source.
func NewPortalSource() *PortalSource {
	return &PortalSource{readOne: settings.ReadOne}
}

// Name implements port.AppearanceSource.
func (*PortalSource) Name() string {
	return sourceNamePortal
}

// Priority implements port.AppearanceSource.
func (*PortalSource) Priority() int {
	return priorityPortal
}

// Available implements port.AppearanceSource.
// The portal lives on the session bus.
func (*PortalSource) Available() bool {
	return os.Getenv("DBUS_SESSION_BUS_ADDRESS") != ""
}

// DetectColorScheme implements port.AppearanceSource.
// 0 = no preference, 1 = prefer dark, 2 = prefer light.
func (s *PortalSource) DetectColorScheme() (entity.ColorScheme, bool) {
	v, ok := s.read(portalKeyColorScheme)
	if !ok {
		return entity.ColorSchemeNoPreference, false
	}
	switch v {
	case 1:
		return entity.ColorSchemeDark, true
	case 2:
		return entity.ColorSchemeLight, true
	default:
		// Unknown values should be treated as no preference.
		return entity.ColorSchemeNoPreference, true
	}
}

// DetectContrast implements port.AppearanceSource.
// 0 = no preference, 1 = higher contrast.
func (s *PortalSource) DetectContrast() (entity.Contrast, bool) {
	v, ok := s.read(portalKeyContrast)
	if !ok {
		return entity.ContrastNoPreference, false
	}
	if v == 1 {
		return entity.ContrastMore, true
	}
	return entity.ContrastNoPreference, true
}

// DetectMotion implements port.AppearanceSource.
// 0 = no preference, 1 = reduced motion.
func (s *PortalSource) DetectMotion() (entity.Motion, bool) {
	v, ok := s.read(portalKeyReducedMotion)
	if !ok {
		return entity.MotionNoPreference, false
	}
	if v == 1 {
		return entity.MotionReduce, true
	}
	return entity.MotionNoPreference, true
}

func (s *PortalSource) read(key string) (uint32, bool) {
	if s.readOne == nil {
		return 0, false
	}
	value, err := s.readOne(PortalNamespace, key)
	if err != nil {
		return 0, false
	}
	switch v := value.(type) {
	case uint32:
		return v, true
	case int32:
		return uint32(v), v >= 0
	case uint8:
		return uint32(v), true
	default:
		return 0, false
	}
}
