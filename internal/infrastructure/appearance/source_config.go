package appearance

import (
	"sync"

	"github.com/bnema/a11ytrack/internal/domain/entity"
)

const (
	sourceNameConfig = "config"
	priorityConfig   = 200
)

// Overrides are explicit user preferences from the config file.
// "default" or empty means no override.
type Overrides struct {
	ColorScheme   string
	Contrast      string
	ReducedMotion string
}

// ConfigSource serves overrides from the config file.
// Update swaps the overrides after a config reload.
type ConfigSource struct {
	mu        sync.RWMutex
	overrides Overrides
}

// NewConfigSource creates a config-backed source.
func NewConfigSource(overrides Overrides) *ConfigSource {
	return &ConfigSource{overrides: overrides}
}

// Update replaces the overrides.
func (s *ConfigSource) Update(overrides Overrides) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = overrides
}

func (s *ConfigSource) current() Overrides {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overrides
}

// Name implements port.AppearanceSource.
func (*ConfigSource) Name() string {
	return sourceNameConfig
}

// Priority implements port.AppearanceSource.
func (*ConfigSource) Priority() int {
	return priorityConfig
}

// Available implements port.AppearanceSource.
// Returns true when at least one override is set.
func (s *ConfigSource) Available() bool {
	o := s.current()
	_, scheme := entity.ParseColorScheme(o.ColorScheme)
	_, contrast := entity.ParseContrast(o.Contrast)
	_, motion := entity.ParseMotion(o.ReducedMotion)
	return scheme || contrast || motion
}

// DetectColorScheme implements port.AppearanceSource.
func (s *ConfigSource) DetectColorScheme() (entity.ColorScheme, bool) {
	return entity.ParseColorScheme(s.current().ColorScheme)
}

// DetectContrast implements port.AppearanceSource.
func (s *ConfigSource) DetectContrast() (entity.Contrast, bool) {
	return entity.ParseContrast(s.current().Contrast)
}

// DetectMotion implements port.AppearanceSource.
func (s *ConfigSource) DetectMotion() (entity.Motion, bool) {
	return entity.ParseMotion(s.current().ReducedMotion)
}
