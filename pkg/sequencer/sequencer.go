// Package sequencer implements the timed reveal behind the welcome screen.
//
// A Sequencer is activated once. It turns on the secondary effect after
// Timing.SecondaryDelay, ends loading after Timing.LoadingDuration and calls the
// completion callback Timing.ExitDelay later. The handle returned by Start
// cancels whatever has not fired yet.
package sequencer

import (
	"sync"
	"time"

	"github.com/pterm/pterm"
	"k8s.io/utils/clock"
)

// Event is a single transition of the sequence
type Event int

const (
	// EventSecondaryEffect fires when ShowSecondaryEffect turns true
	EventSecondaryEffect Event = iota + 1
	// EventLoadingDone fires when IsLoading turns false
	EventLoadingDone
	// EventComplete fires right before the completion callback
	EventComplete
)

func (e Event) String() string {
	switch e {
	case EventSecondaryEffect:
		return "secondary-effect"
	case EventLoadingDone:
		return "loading-done"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// State is a snapshot of the sequencer
type State struct {
	IsLoading           bool
	ShowSecondaryEffect bool
	Completed           bool
}

// Option configures a Sequencer
type Option func(*Sequencer)

// WithListener registers a function called after each transition
func WithListener(fn func(Event)) Option {
	return func(s *Sequencer) {
		s.listener = fn
	}
}

// WithLogger sets the logger used for transition tracing
func WithLogger(logger *pterm.Logger) Option {
	return func(s *Sequencer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Sequencer schedules the reveal transitions on a clock
type Sequencer struct {
	clock    clock.WithDelayedExecution
	timing   Timing
	listener func(Event)
	logger   *pterm.Logger

	mu         sync.Mutex
	state      State
	reached    Event
	started    bool
	active     bool
	stopped    bool
	closed     bool
	timers     map[Event]clock.Timer
	onComplete func()
	events     chan Event
}

// New creates an inactive sequencer. Call Start to schedule the timers.
func New(clk clock.WithDelayedExecution, timing Timing, opts ...Option) *Sequencer {
	s := &Sequencer{
		clock:  clk,
		timing: timing,
		logger: pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled),
		state:  State{IsLoading: true},
		timers: make(map[Event]clock.Timer, 3),
		events: make(chan Event, 3),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Timing returns the configured delays
func (s *Sequencer) Timing() Timing {
	return s.timing
}

// Start schedules the transitions and returns the release handle.
// onComplete may be nil. Calling Start again returns the same handle
// without scheduling anything; a stopped sequencer never restarts.
func (s *Sequencer) Start(onComplete func()) (stop func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return s.Stop
	}
	s.started = true
	s.active = true
	s.onComplete = onComplete

	s.schedule(EventSecondaryEffect, s.timing.SecondaryDelay)
	s.schedule(EventLoadingDone, s.timing.LoadingDuration)
	s.schedule(EventComplete, s.timing.Total())

	s.logger.Debug("sequencer started", s.logger.Args(
		"secondary", s.timing.SecondaryDelay,
		"loading", s.timing.LoadingDuration,
		"exit", s.timing.ExitDelay,
	))

	return s.Stop
}

// schedule must be called with s.mu held
func (s *Sequencer) schedule(ev Event, d time.Duration) {
	s.timers[ev] = s.clock.AfterFunc(d, func() {
		s.fire(ev)
	})
}

// Stop cancels every pending timer. It is safe to call more than once and
// from within a listener or the completion callback. Once Stop returns no
// transition is applied and no listener call or completion callback begins.
// Stop does not wait for a callback that is already running.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	s.started = true
	s.active = false
	s.stopped = true
	s.onComplete = nil
	pending := make([]clock.Timer, 0, len(s.timers))
	for ev, t := range s.timers {
		pending = append(pending, t)
		delete(s.timers, ev)
	}
	s.closeEvents()
	s.mu.Unlock()

	// timers are stopped outside the lock so a clock that runs callbacks
	// while holding its own lock cannot deadlock against fire
	for _, t := range pending {
		t.Stop()
	}

	if len(pending) > 0 {
		s.logger.Debug("sequencer stopped", s.logger.Args("cancelled", len(pending)))
	}
}

// State returns a snapshot of the current state
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pending returns the number of timers that have neither fired nor been cancelled
func (s *Sequencer) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Events returns a channel that receives every transition once.
// It is closed after EventComplete or on Stop.
func (s *Sequencer) Events() <-chan Event {
	return s.events
}

// fire applies ev and any earlier transition that has not been applied yet,
// so a zero exit delay still reports loading-done before complete.
func (s *Sequencer) fire(ev Event) {
	s.mu.Lock()
	if !s.active || ev <= s.reached {
		s.mu.Unlock()
		return
	}

	var applied []Event
	for next := s.reached + 1; next <= ev; next++ {
		s.apply(next)
		delete(s.timers, next)
		applied = append(applied, next)
		s.events <- next
	}
	s.reached = ev

	var done func()
	if ev == EventComplete {
		done = s.onComplete
		s.onComplete = nil
		s.active = false
		s.closeEvents()
	}
	listener := s.listener
	s.mu.Unlock()

	for _, e := range applied {
		s.logger.Debug("sequencer transition", s.logger.Args("event", e.String()))
		if listener != nil && s.dispatching() {
			listener(e)
		}
	}
	if done != nil && s.dispatching() {
		done()
	}
}

// dispatching reports whether callbacks may still begin. A Stop that lands
// while an earlier callback of the same transition is running skips the rest.
func (s *Sequencer) dispatching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.stopped
}

// apply must be called with s.mu held
func (s *Sequencer) apply(ev Event) {
	switch ev {
	case EventSecondaryEffect:
		s.state.ShowSecondaryEffect = true
	case EventLoadingDone:
		s.state.IsLoading = false
	case EventComplete:
		s.state.Completed = true
	}
}

// closeEvents must be called with s.mu held
func (s *Sequencer) closeEvents() {
	if !s.closed {
		s.closed = true
		close(s.events)
	}
}
