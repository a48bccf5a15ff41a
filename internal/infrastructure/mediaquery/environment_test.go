package mediaquery

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/a11ytrack/internal/application/port"
	"github.com/bnema/a11ytrack/internal/domain/entity"
)

// fakeResolver implements port.AppearanceResolver with a settable result.
type fakeResolver struct {
	mu      sync.Mutex
	current entity.Appearance
	calls   int
}

func (r *fakeResolver) Resolve() entity.Appearance {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.current
}

func (r *fakeResolver) RegisterSource(port.AppearanceSource) {}

func (r *fakeResolver) set(a entity.Appearance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = a
}

func TestEnvironment_Supported(t *testing.T) {
	assert.False(t, NewEnvironment(nil).Supported())

	env := NewEnvironment(&fakeResolver{})
	assert.True(t, env.Supported())

	env.Close()
	assert.False(t, env.Supported())
}

func TestEnvironment_InitialResolve(t *testing.T) {
	resolver := &fakeResolver{current: entity.Appearance{Contrast: entity.ContrastMore}}
	env := NewEnvironment(resolver)

	assert.Equal(t, 1, resolver.calls)
	assert.True(t, env.MatchMedia(entity.MediaQueryContrastMore).Matches())
	assert.False(t, env.MatchMedia(entity.MediaQueryContrastLess).Matches())
}

func TestEnvironment_MatchesIsLive(t *testing.T) {
	resolver := &fakeResolver{}
	env := NewEnvironment(resolver)
	list := env.MatchMedia(entity.MediaQueryColorSchemeDark)
	assert.False(t, list.Matches())

	resolver.set(entity.Appearance{ColorScheme: entity.ColorSchemeDark})
	env.Refresh()

	assert.True(t, list.Matches())
	assert.Equal(t, entity.MediaQueryColorSchemeDark, list.Media())
}

func TestEnvironment_NotifiesOnlyOnFlip(t *testing.T) {
	resolver := &fakeResolver{}
	env := NewEnvironment(resolver)

	more := env.MatchMedia(entity.MediaQueryContrastMore)
	noPref := env.MatchMedia(entity.MediaQueryContrastNoPreference)
	motion := env.MatchMedia(entity.MediaQueryReducedMotion)

	var moreCalls, noPrefCalls, motionCalls int
	more.AddChangeListener(func() { moreCalls++ })
	noPref.AddChangeListener(func() { noPrefCalls++ })
	motion.AddChangeListener(func() { motionCalls++ })
	assert.Equal(t, 3, env.WatchedQueries())

	// Nothing changed.
	env.Refresh()
	assert.Zero(t, moreCalls+noPrefCalls+motionCalls)

	resolver.set(entity.Appearance{Contrast: entity.ContrastMore})
	env.Refresh()
	assert.Equal(t, 1, moreCalls)
	assert.Equal(t, 1, noPrefCalls)
	assert.Zero(t, motionCalls)

	// Same state again.
	env.Refresh()
	assert.Equal(t, 1, moreCalls)
}

func TestEnvironment_ListenerSeesNewState(t *testing.T) {
	resolver := &fakeResolver{}
	env := NewEnvironment(resolver)
	list := env.MatchMedia(entity.MediaQueryReducedMotion)

	var seen []bool
	list.AddChangeListener(func() { seen = append(seen, list.Matches()) })

	resolver.set(entity.Appearance{Motion: entity.MotionReduce})
	env.Refresh()
	resolver.set(entity.Appearance{})
	env.Refresh()

	assert.Equal(t, []bool{true, false}, seen)
}

func TestEnvironment_RemoveListener(t *testing.T) {
	resolver := &fakeResolver{}
	env := NewEnvironment(resolver)
	list := env.MatchMedia(entity.MediaQueryColorSchemeDark)

	var first, second int
	removeFirst := list.AddChangeListener(func() { first++ })
	removeSecond := list.AddChangeListener(func() { second++ })
	assert.Equal(t, 1, env.WatchedQueries())

	removeFirst()
	removeFirst()
	assert.Equal(t, 1, env.WatchedQueries())

	resolver.set(entity.Appearance{ColorScheme: entity.ColorSchemeDark})
	env.Refresh()
	assert.Zero(t, first)
	assert.Equal(t, 1, second)

	removeSecond()
	assert.Zero(t, env.WatchedQueries())

	resolver.set(entity.Appearance{})
	env.Refresh()
	assert.Equal(t, 1, second)
}

func TestEnvironment_CloseStopsDispatch(t *testing.T) {
	resolver := &fakeResolver{}
	env := NewEnvironment(resolver)
	list := env.MatchMedia(entity.MediaQueryColorSchemeDark)

	calls := 0
	remove := list.AddChangeListener(func() { calls++ })
	env.Close()

	resolver.set(entity.Appearance{ColorScheme: entity.ColorSchemeDark})
	env.Refresh()

	assert.Zero(t, calls)
	assert.Zero(t, env.WatchedQueries())
	assert.NotPanics(t, remove)

	noop := list.AddChangeListener(func() { calls++ })
	assert.NotPanics(t, noop)
	assert.Zero(t, env.WatchedQueries())
}

func TestEnvironment_WatchPolls(t *testing.T) {
	resolver := &fakeResolver{}
	env := NewEnvironment(resolver)
	list := env.MatchMedia(entity.MediaQueryContrastLess)

	var calls atomic.Int32
	list.AddChangeListener(func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.Watch(ctx, 5*time.Millisecond) }()

	resolver.set(entity.Appearance{Contrast: entity.ContrastLess})

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestEnvironment_WatchRejectsBadInterval(t *testing.T) {
	env := NewEnvironment(&fakeResolver{})

	err := env.Watch(context.Background(), 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch interval must be positive")
}
