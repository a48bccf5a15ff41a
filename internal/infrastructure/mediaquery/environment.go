package mediaquery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/a11ytrack/internal/application/port"
	"github.com/bnema/a11ytrack/internal/domain/entity"
	"github.com/bnema/a11ytrack/internal/logging"
)

var _ port.MediaEnvironment = (*Environment)(nil)

// Environment implements port.MediaEnvironment on top of an appearance
// resolver. Change listeners run on the goroutine calling Refresh, one at
// a time.
type Environment struct {
	resolver port.AppearanceResolver

	// refreshMu serializes Refresh so dispatch never interleaves.
	refreshMu sync.Mutex

	mu      sync.RWMutex
	current entity.Appearance
	watched []*queryList
	closed  bool
}

// NewEnvironment creates an environment and resolves the initial appearance.
// A nil resolver yields an unsupported environment.
func NewEnvironment(resolver port.AppearanceResolver) *Environment {
	e := &Environment{resolver: resolver}
	if resolver != nil {
		e.current = resolver.Resolve()
	}
	return e
}

// Supported implements port.MediaEnvironment.
func (e *Environment) Supported() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.resolver != nil && !e.closed
}

// MatchMedia implements port.MediaEnvironment.
func (e *Environment) MatchMedia(query string) port.MediaQueryList {
	return &queryList{env: e, query: ParseQuery(query)}
}

// Current returns the last resolved appearance.
func (e *Environment) Current() entity.Appearance {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// Refresh re-resolves the appearance and notifies listeners of every
// watched query whose match state flipped. Listeners must not call Refresh.
func (e *Environment) Refresh() entity.Appearance {
	if e.resolver == nil {
		return entity.Appearance{}
	}

	e.refreshMu.Lock()
	defer e.refreshMu.Unlock()

	next := e.resolver.Resolve()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return next
	}
	e.current = next

	var notify []func()
	for _, list := range e.watched {
		matches := list.query.Evaluate(next)
		if matches == list.last {
			continue
		}
		list.last = matches
		for _, l := range list.listeners {
			notify = append(notify, l.fn)
		}
	}
	e.mu.Unlock()

	// Invoke listeners outside of lock
	for _, fn := range notify {
		fn()
	}
	return next
}

// Watch polls Refresh every interval until ctx is done or the environment
// is closed.
func (e *Environment) Watch(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("watch interval must be positive (got: %s)", interval)
	}

	log := logging.FromContext(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Debug().Dur("interval", interval).Msg("watching desktop appearance")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !e.Supported() {
				return nil
			}
			before := e.Current()
			after := e.Refresh()
			if before != after {
				log.Debug().
					Str("color_scheme", after.ColorScheme.String()).
					Str("contrast", after.Contrast.String()).
					Str("reduced_motion", after.Motion.String()).
					Msg("desktop appearance changed")
			}
		}
	}
}

// Close stops all dispatch and marks the environment unsupported.
func (e *Environment) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	for _, list := range e.watched {
		list.listeners = nil
	}
	e.watched = nil
}

// WatchedQueries returns the number of queries with listeners.
func (e *Environment) WatchedQueries() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.watched)
}

// listener wraps a callback to enable pointer comparison for removal.
type listener struct {
	fn func()
}

// queryList implements port.MediaQueryList. Mutable fields are guarded by
// env.mu.
type queryList struct {
	env       *Environment
	query     Query
	last      bool
	listeners []*listener
}

func (l *queryList) Media() string {
	return l.query.Media()
}

func (l *queryList) Matches() bool {
	l.env.mu.RLock()
	defer l.env.mu.RUnlock()
	return l.query.Evaluate(l.env.current)
}

func (l *queryList) AddChangeListener(fn func()) func() {
	e := l.env
	wrapper := &listener{fn: fn}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return func() {}
	}
	if len(l.listeners) == 0 {
		l.last = l.query.Evaluate(e.current)
		e.watched = append(e.watched, l)
	}
	l.listeners = append(l.listeners, wrapper)
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			l.removeLocked(wrapper)
		})
	}
}

// removeLocked drops wrapper and unwatches the list once it has no
// listeners left.
func (l *queryList) removeLocked(wrapper *listener) {
	for i, cb := range l.listeners {
		if cb == wrapper {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			break
		}
	}
	if len(l.listeners) > 0 {
		return
	}
	for i, w := range l.env.watched {
		if w == l {
			l.env.watched = append(l.env.watched[:i], l.env.watched[i+1:]...)
			return
		}
	}
}
