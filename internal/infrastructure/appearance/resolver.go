// Package appearance resolves desktop display preferences from several
// settings backends.
package appearance

import (
	"sort"
	"sync"

	"github.com/bnema/a11ytrack/internal/application/port"
	"github.com/bnema/a11ytrack/internal/domain/entity"
)

// SourceFallback indicates no source provided the preference.
const SourceFallback = "fallback"

// Resolver implements port.AppearanceResolver.
// Each feature is resolved independently: the highest-priority available
// source that has an opinion wins.
type Resolver struct {
	mu      sync.RWMutex
	sources []port.AppearanceSource
}

// NewResolver creates a resolver with the given sources.
func NewResolver(sources ...port.AppearanceSource) *Resolver {
	r := &Resolver{sources: make([]port.AppearanceSource, 0, len(sources))}
	r.sources = append(r.sources, sources...)
	return r
}

// RegisterSource implements port.AppearanceResolver.
func (r *Resolver) RegisterSource(source port.AppearanceSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, source)
}

// Sources returns the registered sources sorted by priority, highest first.
func (r *Resolver) Sources() []port.AppearanceSource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked()
}

func (r *Resolver) sortedLocked() []port.AppearanceSource {
	sorted := make([]port.AppearanceSource, len(r.sources))
	copy(sorted, r.sources)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return sorted
}

// Resolve implements port.AppearanceResolver.
func (r *Resolver) Resolve() entity.Appearance {
	r.mu.RLock()
	sorted := r.sortedLocked()
	r.mu.RUnlock()

	result := entity.Appearance{
		ColorSchemeSource: SourceFallback,
		ContrastSource:    SourceFallback,
		MotionSource:      SourceFallback,
	}
	var haveScheme, haveContrast, haveMotion bool

	for _, source := range sorted {
		if haveScheme && haveContrast && haveMotion {
			break
		}
		if !source.Available() {
			continue
		}
		if !haveScheme {
			if scheme, ok := source.DetectColorScheme(); ok {
				result.ColorScheme = scheme
				result.ColorSchemeSource = source.Name()
				haveScheme = true
			}
		}
		if !haveContrast {
			if contrast, ok := source.DetectContrast(); ok {
				result.Contrast = contrast
				result.ContrastSource = source.Name()
				haveContrast = true
			}
		}
		if !haveMotion {
			if motion, ok := source.DetectMotion(); ok {
				result.Motion = motion
				result.MotionSource = source.Name()
				haveMotion = true
			}
		}
	}

	return result
}
