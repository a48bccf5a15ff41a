package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/a11ytrack/internal/application/port"
	"github.com/bnema/a11ytrack/internal/domain/entity"
)

// fakeList implements port.MediaQueryList with manually driven matches.
type fakeList struct {
	media     string
	matches   bool
	nextID    int
	listeners map[int]func()
	order     []int
}

func (l *fakeList) Media() string { return l.media }
func (l *fakeList) Matches() bool { return l.matches }

func (l *fakeList) AddChangeListener(fn func()) func() {
	if l.listeners == nil {
		l.listeners = make(map[int]func())
	}
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	l.order = append(l.order, id)
	return func() {
		delete(l.listeners, id)
	}
}

// fire simulates the host dispatching a change notification.
func (l *fakeList) fire() {
	for _, id := range l.order {
		if fn, ok := l.listeners[id]; ok {
			fn()
		}
	}
}

// fakeEnv implements port.MediaEnvironment.
type fakeEnv struct {
	supported bool
	lists     map[string]*fakeList
	queried   int
}

func newFakeEnv(matching ...string) *fakeEnv {
	env := &fakeEnv{supported: true, lists: make(map[string]*fakeList)}
	for _, q := range matching {
		env.list(q).matches = true
	}
	return env
}

func (e *fakeEnv) list(query string) *fakeList {
	l, ok := e.lists[query]
	if !ok {
		l = &fakeList{media: query}
		e.lists[query] = l
	}
	return l
}

func (e *fakeEnv) Supported() bool { return e.supported }

func (e *fakeEnv) MatchMedia(query string) port.MediaQueryList {
	e.queried++
	return e.list(query)
}

func (e *fakeEnv) set(query string, matches bool) {
	e.list(query).matches = matches
}

func (e *fakeEnv) listenerCount() int {
	n := 0
	for _, l := range e.lists {
		n += len(l.listeners)
	}
	return n
}

type reportRecorder struct {
	reports []string
}

func (r *reportRecorder) report(s string) {
	r.reports = append(r.reports, s)
}

func (r *reportRecorder) last(t *testing.T) entity.PreferenceState {
	t.Helper()
	require.NotEmpty(t, r.reports)
	var state entity.PreferenceState
	require.NoError(t, json.Unmarshal([]byte(r.reports[len(r.reports)-1]), &state))
	return state
}

func boolPtr(b bool) *bool { return &b }

func TestNewTracker_MissingReporter(t *testing.T) {
	env := newFakeEnv()

	tracker, err := NewTracker(nil, env, TrackerOptions{PrefersContrast: true})

	require.ErrorIs(t, err, ErrMissingArgument)
	assert.Nil(t, tracker)
}

func TestNewTracker_DoesNotTouchEnvironment(t *testing.T) {
	env := newFakeEnv()
	rec := &reportRecorder{}

	tracker, err := NewTracker(rec.report, env, TrackerOptions{PrefersContrast: true, ListenForChanges: true})

	require.NoError(t, err)
	require.NotNil(t, tracker)
	assert.Zero(t, env.queried)
	assert.Empty(t, rec.reports)
}

func TestMergeTrackerOptions(t *testing.T) {
	assert.Equal(t, TrackerOptions{}, MergeTrackerOptions(PartialTrackerOptions{}))

	opts := MergeTrackerOptions(PartialTrackerOptions{
		PrefersContrast:  boolPtr(true),
		ListenForChanges: boolPtr(true),
	})
	assert.Equal(t, TrackerOptions{PrefersContrast: true, ListenForChanges: true}, opts)
}

func TestTrack_EnvironmentUnsupported(t *testing.T) {
	tests := []struct {
		name string
		env  port.MediaEnvironment
	}{
		{name: "nil environment", env: nil},
		{name: "no matchMedia", env: &fakeEnv{supported: false, lists: map[string]*fakeList{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &reportRecorder{}
			tracker, err := NewTracker(rec.report, tt.env, TrackerOptions{
				PrefersContrast:      true,
				PrefersReducedMotion: true,
				PrefersColorScheme:   true,
				ListenForChanges:     true,
			})
			require.NoError(t, err)

			err = tracker.Track(context.Background())

			require.ErrorIs(t, err, ErrEnvironmentUnsupported)
			assert.Zero(t, tracker.Subscriptions())
			assert.Empty(t, rec.reports)
		})
	}
}

func TestTrack_ContrastFirstMatchWins(t *testing.T) {
	tests := []struct {
		name     string
		matching []string
		want     *string
	}{
		{
			name:     "less",
			matching: []string{entity.MediaQueryContrastLess},
			want:     strPtr(entity.MediaQueryContrastLess),
		},
		{
			name:     "more",
			matching: []string{entity.MediaQueryContrastMore},
			want:     strPtr(entity.MediaQueryContrastMore),
		},
		{
			name:     "no preference",
			matching: []string{entity.MediaQueryContrastNoPreference},
			want:     strPtr(entity.MediaQueryContrastNoPreference),
		},
		{
			name:     "less wins over more",
			matching: []string{entity.MediaQueryContrastMore, entity.MediaQueryContrastLess},
			want:     strPtr(entity.MediaQueryContrastLess),
		},
		{
			name:     "nothing matches",
			matching: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newFakeEnv(tt.matching...)
			rec := &reportRecorder{}
			tracker, err := NewTracker(rec.report, env, TrackerOptions{PrefersContrast: true})
			require.NoError(t, err)

			require.NoError(t, tracker.Track(context.Background()))

			state := rec.last(t)
			assert.Equal(t, tt.want, state.PrefersContrast.Value)
			assert.False(t, state.PrefersContrast.Changed)
		})
	}
}

func TestTrack_ContrastNoMatchClearsValue(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryContrastMore)
	rec := &reportRecorder{}
	tracker, err := NewTracker(rec.report, env, TrackerOptions{PrefersContrast: true, ListenForChanges: true})
	require.NoError(t, err)
	require.NoError(t, tracker.Track(context.Background()))

	env.set(entity.MediaQueryContrastMore, false)
	env.list(entity.MediaQueryContrastMore).fire()

	state := rec.last(t)
	assert.Nil(t, state.PrefersContrast.Value)
	assert.True(t, state.PrefersContrast.Changed)
}

func TestTrack_NoMatchRetainsPreviousValue(t *testing.T) {
	tests := []struct {
		name     string
		opts     TrackerOptions
		initial  string
		category entity.Category
	}{
		{
			name:     "reduced motion",
			opts:     TrackerOptions{PrefersReducedMotion: true, ListenForChanges: true},
			initial:  entity.MediaQueryReducedMotion,
			category: entity.CategoryReducedMotion,
		},
		{
			name:     "color scheme",
			opts:     TrackerOptions{PrefersColorScheme: true, ListenForChanges: true},
			initial:  entity.MediaQueryColorSchemeDark,
			category: entity.CategoryColorScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newFakeEnv(tt.initial)
			rec := &reportRecorder{}
			tracker, err := NewTracker(rec.report, env, tt.opts)
			require.NoError(t, err)
			require.NoError(t, tracker.Track(context.Background()))

			env.set(tt.initial, false)
			env.list(tt.initial).fire()

			state := rec.last(t)
			entry := state.Entry(tt.category)
			require.NotNil(t, entry.Value)
			assert.Equal(t, tt.initial, *entry.Value)
			assert.True(t, entry.Changed)
		})
	}
}

func TestTrack_NoMatchKeepsInitialDefault(t *testing.T) {
	env := newFakeEnv()
	rec := &reportRecorder{}
	tracker, err := NewTracker(rec.report, env, TrackerOptions{
		PrefersReducedMotion: true,
		PrefersColorScheme:   true,
	})
	require.NoError(t, err)

	require.NoError(t, tracker.Track(context.Background()))

	state := rec.last(t)
	assert.Nil(t, state.PrefersReducedMotion.Value)
	assert.Nil(t, state.PrefersColorScheme.Value)
}

func TestTrack_ReportsOnceAndOncePerChange(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryColorSchemeLight)
	rec := &reportRecorder{}
	tracker, err := NewTracker(rec.report, env, TrackerOptions{PrefersColorScheme: true, ListenForChanges: true})
	require.NoError(t, err)

	require.NoError(t, tracker.Track(context.Background()))
	assert.Len(t, rec.reports, 1)
	assert.Equal(t, 2, tracker.Subscriptions())

	env.set(entity.MediaQueryColorSchemeLight, false)
	env.set(entity.MediaQueryColorSchemeDark, true)
	env.list(entity.MediaQueryColorSchemeDark).fire()

	assert.Len(t, rec.reports, 2)
	state := rec.last(t)
	assert.Equal(t, entity.MediaQueryColorSchemeDark, state.PrefersColorScheme.ValueOr(""))
	assert.True(t, state.PrefersColorScheme.Changed)
}

func TestTrack_WithoutListeningMakesNoSubscriptions(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryContrastMore, entity.MediaQueryReducedMotion, entity.MediaQueryColorSchemeDark)
	rec := &reportRecorder{}
	tracker, err := NewTracker(rec.report, env, TrackerOptions{
		PrefersContrast:      true,
		PrefersReducedMotion: true,
		PrefersColorScheme:   true,
	})
	require.NoError(t, err)

	require.NoError(t, tracker.Track(context.Background()))

	assert.Zero(t, tracker.Subscriptions())
	assert.Zero(t, env.listenerCount())
	require.Len(t, rec.reports, 1)

	state := rec.last(t)
	assert.Equal(t, entity.MediaQueryContrastMore, state.PrefersContrast.ValueOr(""))
	assert.Equal(t, entity.MediaQueryReducedMotion, state.PrefersReducedMotion.ValueOr(""))
	assert.Equal(t, entity.MediaQueryColorSchemeDark, state.PrefersColorScheme.ValueOr(""))
}

func TestTrack_DisabledCategoriesAreNotQueried(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryColorSchemeDark)
	rec := &reportRecorder{}
	tracker, err := NewTracker(rec.report, env, TrackerOptions{PrefersContrast: true})
	require.NoError(t, err)

	require.NoError(t, tracker.Track(context.Background()))

	assert.Equal(t, 3, env.queried)
	assert.Nil(t, rec.last(t).PrefersColorScheme.Value)
}

func TestTrack_ChangedStaysTrue(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryReducedMotionNoPreference)
	rec := &reportRecorder{}
	tracker, err := NewTracker(rec.report, env, TrackerOptions{PrefersReducedMotion: true, ListenForChanges: true})
	require.NoError(t, err)
	require.NoError(t, tracker.Track(context.Background()))
	assert.False(t, rec.last(t).PrefersReducedMotion.Changed)

	noPref := env.list(entity.MediaQueryReducedMotionNoPreference)
	noPref.fire()
	assert.True(t, rec.last(t).PrefersReducedMotion.Changed)

	// Same resolved value, still flagged as changed.
	noPref.fire()
	state := rec.last(t)
	assert.True(t, state.PrefersReducedMotion.Changed)
	assert.Equal(t, entity.MediaQueryReducedMotionNoPreference, state.PrefersReducedMotion.ValueOr(""))
	assert.Len(t, rec.reports, 3)
	assert.False(t, state.PrefersContrast.Changed)
}

func TestStopTracking_RemovesAllListeners(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryContrastMore, entity.MediaQueryReducedMotion, entity.MediaQueryColorSchemeDark)
	rec := &reportRecorder{}
	tracker, err := NewTracker(rec.report, env, TrackerOptions{
		PrefersContrast:      true,
		PrefersReducedMotion: true,
		PrefersColorScheme:   true,
		ListenForChanges:     true,
	})
	require.NoError(t, err)
	require.NoError(t, tracker.Track(context.Background()))
	assert.Equal(t, 7, tracker.Subscriptions())
	assert.Equal(t, 7, env.listenerCount())

	tracker.StopTracking()

	assert.Zero(t, tracker.Subscriptions())
	assert.Zero(t, env.listenerCount())
	for _, l := range env.lists {
		l.fire()
	}
	assert.Len(t, rec.reports, 1)

	// Second call is a no-op.
	tracker.StopTracking()
	assert.Zero(t, tracker.Subscriptions())
}

func TestStopTracking_WithoutTrack(t *testing.T) {
	rec := &reportRecorder{}
	tracker, err := NewTracker(rec.report, newFakeEnv(), TrackerOptions{})
	require.NoError(t, err)

	assert.NotPanics(t, tracker.StopTracking)
	assert.Zero(t, tracker.Subscriptions())
}

func TestTrack_TwiceDuplicatesSubscriptions(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryColorSchemeDark)
	rec := &reportRecorder{}
	tracker, err := NewTracker(rec.report, env, TrackerOptions{PrefersColorScheme: true, ListenForChanges: true})
	require.NoError(t, err)

	require.NoError(t, tracker.Track(context.Background()))
	require.NoError(t, tracker.Track(context.Background()))
	assert.Equal(t, 4, tracker.Subscriptions())
	assert.Len(t, rec.reports, 2)

	env.list(entity.MediaQueryColorSchemeDark).fire()
	assert.Len(t, rec.reports, 4)

	tracker.StopTracking()
	assert.Zero(t, env.listenerCount())
}

func TestTrack_RetrackAfterStop(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryContrastLess)
	rec := &reportRecorder{}
	tracker, err := NewTracker(rec.report, env, TrackerOptions{PrefersContrast: true, ListenForChanges: true})
	require.NoError(t, err)

	require.NoError(t, tracker.Track(context.Background()))
	tracker.StopTracking()
	require.NoError(t, tracker.Track(context.Background()))

	assert.Equal(t, 3, tracker.Subscriptions())
	env.list(entity.MediaQueryContrastLess).fire()
	assert.Len(t, rec.reports, 3)
}

func TestTrack_EndToEndContrast(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryContrastMore)
	rec := &reportRecorder{}
	opts := MergeTrackerOptions(PartialTrackerOptions{
		PrefersContrast:  boolPtr(true),
		ListenForChanges: boolPtr(true),
	})
	tracker, err := NewTracker(rec.report, env, opts)
	require.NoError(t, err)

	require.NoError(t, tracker.Track(context.Background()))

	first := rec.last(t)
	assert.Equal(t, "(prefers-contrast: more)", first.PrefersContrast.ValueOr(""))
	assert.False(t, first.PrefersContrast.Changed)

	env.set(entity.MediaQueryContrastMore, false)
	env.set(entity.MediaQueryContrastLess, true)
	env.list(entity.MediaQueryContrastLess).fire()

	require.Len(t, rec.reports, 2)
	second := rec.last(t)
	assert.Equal(t, "(prefers-contrast: less)", second.PrefersContrast.ValueOr(""))
	assert.True(t, second.PrefersContrast.Changed)
	assert.Equal(t, second, tracker.State())
}

func TestTrack_ReporterCanStopTracking(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryColorSchemeDark)
	var tracker *Tracker
	calls := 0
	reporter := func(string) {
		calls++
		if calls == 2 {
			tracker.StopTracking()
		}
	}
	var err error
	tracker, err = NewTracker(reporter, env, TrackerOptions{PrefersColorScheme: true, ListenForChanges: true})
	require.NoError(t, err)
	require.NoError(t, tracker.Track(context.Background()))

	env.list(entity.MediaQueryColorSchemeDark).fire()
	env.list(entity.MediaQueryColorSchemeDark).fire()

	assert.Equal(t, 2, calls)
	assert.Zero(t, tracker.Subscriptions())
}

func TestTrack_ReporterCanTrackAgain(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryColorSchemeDark)
	var tracker *Tracker
	calls := 0
	reporter := func(string) {
		calls++
		if calls == 1 {
			assert.NoError(t, tracker.Track(context.Background()))
		}
	}
	var err error
	tracker, err = NewTracker(reporter, env, TrackerOptions{PrefersColorScheme: true, ListenForChanges: true})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- tracker.Track(context.Background())
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Track from inside the reporter blocked")
	}

	assert.Equal(t, 2, calls)
	assert.Equal(t, 4, tracker.Subscriptions())

	env.list(entity.MediaQueryColorSchemeDark).fire()
	assert.Equal(t, 4, calls)
}

func TestTrack_ReporterPanicDoesNotBlockLaterReports(t *testing.T) {
	env := newFakeEnv(entity.MediaQueryColorSchemeDark)
	calls := 0
	tracker, err := NewTracker(func(string) {
		calls++
		if calls == 1 {
			panic("sink failed")
		}
	}, env, TrackerOptions{PrefersColorScheme: true, ListenForChanges: true})
	require.NoError(t, err)

	assert.Panics(t, func() {
		_ = tracker.Track(context.Background())
	})

	env.list(entity.MediaQueryColorSchemeDark).fire()
	assert.Equal(t, 2, calls)
}

func TestTrack_ReporterPanicPropagates(t *testing.T) {
	env := newFakeEnv()
	tracker, err := NewTracker(func(string) { panic("sink failed") }, env, TrackerOptions{})
	require.NoError(t, err)

	assert.PanicsWithValue(t, "sink failed", func() {
		_ = tracker.Track(context.Background())
	})
}

func strPtr(s string) *string { return &s }
