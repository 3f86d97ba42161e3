package highlight

import (
	"sync"
	"time"
)

// Timer is a pending delayed callback.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithInterval sets the pause between regions. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Sequencer) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(s *Sequencer) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithOnChange registers fn to observe every state change. fn is called
// without the sequencer lock held, possibly from a timer goroutine. Calls
// never overlap and arrive in transition order; a Toggle made while fn is
// running returns at once and its change is delivered when fn returns.
func WithOnChange(fn func(State)) Option {
	return func(s *Sequencer) { s.onChange = fn }
}

// Sequencer drives the pure Toggle/Advance transitions with a real timer.
// At most one timer is pending; it is stopped on toggle-off, on natural
// completion and on Close.
type Sequencer struct {
	order    Order
	interval time.Duration
	clock    Clock
	onChange func(State)

	mu         sync.Mutex
	state      State
	timer      Timer
	closed     bool
	pending    []State
	delivering bool
}

func New(order Order, opts ...Option) *Sequencer {
	s := &Sequencer{
		order:    order,
		interval: DefaultInterval,
		clock:    realClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Toggle starts or stops the sequence. It is a no-op after Close.
func (s *Sequencer) Toggle() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	next, schedule := Toggle(s.order, s.state)
	s.applyLocked(next, schedule)
	s.mu.Unlock()
	s.flush()
}

// CurrentCursor returns the highlighted region, if any.
func (s *Sequencer) CurrentCursor() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Cursor, s.state.HasCursor()
}

func (s *Sequencer) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Active
}

// State returns a snapshot of the current state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close cancels any pending transition and discards the state.
func (s *Sequencer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopLocked()
	s.state = s.state.idle()
}

func (s *Sequencer) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.state.Gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	next, schedule := Advance(s.order, s.state, gen)
	s.applyLocked(next, schedule)
	s.mu.Unlock()
	s.flush()
}

func (s *Sequencer) applyLocked(next State, schedule bool) {
	s.stopLocked()
	s.state = next
	if s.onChange != nil {
		s.pending = append(s.pending, next)
	}
	if !schedule {
		return
	}
	gen := next.Gen
	s.timer = s.clock.AfterFunc(s.interval, func() { s.fire(gen) })
}

func (s *Sequencer) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// flush delivers queued changes. Only one goroutine delivers at a time; the
// others leave their changes in the queue for it.
func (s *Sequencer) flush() {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	for len(s.pending) > 0 {
		st := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()
		s.onChange(st)
		s.mu.Lock()
	}
	s.delivering = false
	s.mu.Unlock()
}
