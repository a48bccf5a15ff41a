package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/a11ytrack/internal/application/port"
	"github.com/bnema/a11ytrack/internal/domain/entity"
	"github.com/bnema/a11ytrack/internal/logging"
)

var (
	// ErrMissingArgument is returned by NewTracker when no reporter is given.
	ErrMissingArgument = errors.New(`required parameter "reporter" is missing`)
	// ErrEnvironmentUnsupported is returned by Track when the host cannot
	// evaluate media queries.
	ErrEnvironmentUnsupported = errors.New("media query environment is not supported")
)

// TrackerOptions selects which categories are observed.
type TrackerOptions struct {
	PrefersContrast      bool
	PrefersReducedMotion bool
	PrefersColorScheme   bool
	ListenForChanges     bool
}

// PartialTrackerOptions holds optional overrides. Nil fields keep defaults.
type PartialTrackerOptions struct {
	PrefersContrast      *bool
	PrefersReducedMotion *bool
	PrefersColorScheme   *bool
	ListenForChanges     *bool
}

// DefaultTrackerOptions returns options with every category disabled and
// no change listening.
func DefaultTrackerOptions() TrackerOptions {
	return TrackerOptions{}
}

// MergeTrackerOptions resolves partial overrides over the defaults.
func MergeTrackerOptions(partial PartialTrackerOptions) TrackerOptions {
	opts := DefaultTrackerOptions()
	pick := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	pick(&opts.PrefersContrast, partial.PrefersContrast)
	pick(&opts.PrefersReducedMotion, partial.PrefersReducedMotion)
	pick(&opts.PrefersColorScheme, partial.PrefersColorScheme)
	pick(&opts.ListenForChanges, partial.ListenForChanges)
	return opts
}

func (o TrackerOptions) enabled(c entity.Category) bool {
	switch c {
	case entity.CategoryContrast:
		return o.PrefersContrast
	case entity.CategoryReducedMotion:
		return o.PrefersReducedMotion
	case entity.CategoryColorScheme:
		return o.PrefersColorScheme
	default:
		return false
	}
}

// categoryDef describes how one category is evaluated. Queries are
// checked in order and the first match wins.
type categoryDef struct {
	category entity.Category
	label    string
	queries  []string
	// clearOnNoMatch records null when nothing matches. Categories without
	// it keep their previous value.
	clearOnNoMatch bool
}

var categoryDefs = []categoryDef{
	{
		category: entity.CategoryContrast,
		label:    "prefers contrast",
		queries: []string{
			entity.MediaQueryContrastLess,
			entity.MediaQueryContrastMore,
			entity.MediaQueryContrastNoPreference,
		},
		clearOnNoMatch: true,
	},
	{
		category: entity.CategoryReducedMotion,
		label:    "prefers reduced motion",
		queries: []string{
			entity.MediaQueryReducedMotion,
			entity.MediaQueryReducedMotionNoPreference,
		},
	},
	{
		category: entity.CategoryColorScheme,
		label:    "prefers color scheme",
		queries: []string{
			entity.MediaQueryColorSchemeDark,
			entity.MediaQueryColorSchemeLight,
		},
	},
}

// categoryTracker owns one entry of the tracker's state. Every list of the
// category shares its evaluate method as change handler.
type categoryTracker struct {
	def      categoryDef
	lists    []port.MediaQueryList
	entry    *entity.PreferenceEntry
	detached bool
}

// evaluate must be called with the tracker's mu held.
func (c *categoryTracker) evaluate() {
	for _, list := range c.lists {
		if list.Matches() {
			c.entry.Set(list.Media())
			return
		}
	}
	if c.def.clearOnNoMatch {
		c.entry.Value = nil
	}
}

type subscription struct {
	query       port.MediaQueryList
	unsubscribe func()
	owner       *categoryTracker
}

// Tracker observes display preferences and reports them.
type Tracker struct {
	reporter port.Reporter
	env      port.MediaEnvironment
	opts     TrackerOptions

	mu            sync.Mutex
	state         entity.PreferenceState
	subscriptions []subscription
	// pending holds snapshots not yet handed to the reporter, oldest first.
	pending  []entity.PreferenceState
	flushing bool

	// reportMu orders state updates with their snapshots so the initial
	// report always comes first. It is never held while the reporter runs.
	reportMu sync.Mutex
}

// NewTracker creates a tracker. It does not touch the environment.
func NewTracker(reporter port.Reporter, env port.MediaEnvironment, opts TrackerOptions) (*Tracker, error) {
	if reporter == nil {
		return nil, ErrMissingArgument
	}
	return &Tracker{
		reporter: reporter,
		env:      env,
		opts:     opts,
	}, nil
}

// Options returns the options the tracker was built with.
func (t *Tracker) Options() TrackerOptions {
	return t.opts
}

// Track takes the initial snapshot of every enabled category, subscribes
// to changes when ListenForChanges is set, and reports once.
// Calling Track again without StopTracking subscribes a second time.
// The reporter may call Track or StopTracking on the same tracker.
func (t *Tracker) Track(ctx context.Context) error {
	if err := t.checkSupported(); err != nil {
		return err
	}

	log := logging.FromContext(ctx)

	t.reportMu.Lock()
	for _, def := range categoryDefs {
		if !t.opts.enabled(def.category) {
			continue
		}
		log.Debug().Str("category", def.category.String()).Msgf("tracking %s", def.label)
		t.observe(def, log)
	}
	t.enqueueReport()
	t.reportMu.Unlock()

	t.flushReports(log)
	return nil
}

func (t *Tracker) checkSupported() error {
	if t.env == nil {
		return fmt.Errorf("%w: no media environment", ErrEnvironmentUnsupported)
	}
	if !t.env.Supported() {
		return fmt.Errorf("%w: media queries cannot be evaluated", ErrEnvironmentUnsupported)
	}
	return nil
}

func (t *Tracker) observe(def categoryDef, log *zerolog.Logger) {
	ct := &categoryTracker{
		def:   def,
		lists: make([]port.MediaQueryList, 0, len(def.queries)),
	}
	for _, query := range def.queries {
		ct.lists = append(ct.lists, t.env.MatchMedia(query))
	}

	t.mu.Lock()
	ct.entry = t.state.Entry(def.category)
	ct.evaluate()
	t.mu.Unlock()

	if !t.opts.ListenForChanges {
		return
	}

	handler := func() {
		t.handleChange(ct, log)
	}
	for _, list := range ct.lists {
		remove := list.AddChangeListener(handler)
		t.mu.Lock()
		t.subscriptions = append(t.subscriptions, subscription{
			query:       list,
			unsubscribe: remove,
			owner:       ct,
		})
		t.mu.Unlock()
	}
}

func (t *Tracker) handleChange(ct *categoryTracker, log *zerolog.Logger) {
	t.reportMu.Lock()
	t.mu.Lock()
	if ct.detached {
		t.mu.Unlock()
		t.reportMu.Unlock()
		return
	}
	ct.evaluate()
	ct.entry.Changed = true
	t.mu.Unlock()
	t.enqueueReport()
	t.reportMu.Unlock()

	log.Debug().Str("category", ct.def.category.String()).Msg("preference change notification")
	t.flushReports(log)
}

// enqueueReport must be called with reportMu held.
func (t *Tracker) enqueueReport() {
	t.mu.Lock()
	t.pending = append(t.pending, t.state.Clone())
	t.mu.Unlock()
}

// flushReports hands queued snapshots to the reporter in order. One caller
// delivers at a time; a nested or concurrent call leaves its snapshot to
// the active one.
func (t *Tracker) flushReports(log *zerolog.Logger) {
	t.mu.Lock()
	if t.flushing {
		t.mu.Unlock()
		return
	}
	t.flushing = true
	t.mu.Unlock()

	drained := false
	defer func() {
		// A panicking reporter leaves the rest queued for the next flush.
		if !drained {
			t.mu.Lock()
			t.flushing = false
			t.mu.Unlock()
		}
	}()

	for {
		t.mu.Lock()
		if len(t.pending) == 0 {
			t.flushing = false
			t.mu.Unlock()
			drained = true
			return
		}
		next := t.pending[0]
		t.pending = t.pending[1:]
		t.mu.Unlock()

		out, err := next.Report()
		if err != nil {
			log.Error().Err(err).Msg("failed to serialize preferences")
			continue
		}
		t.reporter(out)
	}
}

// StopTracking removes every change listener registered by Track.
// Safe to call repeatedly.
func (t *Tracker) StopTracking() {
	t.mu.Lock()
	subs := t.subscriptions
	t.subscriptions = nil
	for _, sub := range subs {
		sub.owner.detached = true
	}
	t.mu.Unlock()

	for _, sub := range subs {
		sub.unsubscribe()
	}
}

// Subscriptions returns the number of live change subscriptions.
func (t *Tracker) Subscriptions() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subscriptions)
}

// State returns a copy of the current preference state.
func (t *Tracker) State() entity.PreferenceState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}
