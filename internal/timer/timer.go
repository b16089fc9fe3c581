// Package timer implements the countdown session: a two-state
// (running/paused) machine whose elapsed time survives any number of
// pause/resume cycles without drift.
package timer

import "time"

// DefaultDuration is used when a session is created without a positive duration.
const DefaultDuration = 60 * time.Second

// State is the run state of a session.
type State int

const (
	Paused State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "paused"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the clock used for all elapsed-time readings.
func WithClock(c Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// Session tracks one countdown. While paused, elapsed time is the frozen
// snapshot; while running, it is measured from start. Resuming rebases start
// so the two never disagree.
type Session struct {
	clock    Clock
	start    time.Time
	duration time.Duration
	state    State
	frozen   time.Duration
	quit     bool
}

// New returns a paused session with zero elapsed time.
func New(duration time.Duration, opts ...Option) *Session {
	if duration <= 0 {
		duration = DefaultDuration
	}
	s := &Session{
		clock:    SystemClock,
		duration: duration,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// TogglePause flips between running and paused. elapsed must be the value
// of Elapsed taken before the call; pausing freezes it, resuming ignores it
// and rebases start onto the previously frozen value.
func (s *Session) TogglePause(elapsed time.Duration) {
	if s.state == Paused {
		s.start = s.clock.Now().Add(-s.frozen)
		s.frozen = 0
		s.state = Running
		return
	}
	s.frozen = elapsed
	s.state = Paused
}

// Reset returns the session to its initial paused state.
func (s *Session) Reset() {
	s.start = s.clock.Now()
	s.state = Paused
	s.frozen = 0
	s.quit = false
}

// Elapsed reports how much of the duration has been consumed.
func (s *Session) Elapsed() time.Duration {
	if s.state == Paused {
		return s.frozen
	}
	return s.clock.Now().Sub(s.start)
}

// Remaining reports the time left, never less than zero.
func (s *Session) Remaining() time.Duration {
	remaining := s.duration - s.Elapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the countdown has reached zero.
func (s *Session) Expired() bool {
	return s.Remaining() == 0
}

// Progress is elapsed/duration clamped to [0, 1].
func (s *Session) Progress() float64 {
	if s.duration <= 0 {
		return 0
	}
	ratio := s.Elapsed().Seconds() / s.duration.Seconds()
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	}
	return ratio
}

// State reports whether the session is running or paused.
func (s *Session) State() State { return s.state }

// Paused is shorthand for State() == Paused.
func (s *Session) Paused() bool { return s.state == Paused }

// Duration is the total length of the countdown.
func (s *Session) Duration() time.Duration { return s.duration }

// RequestQuit marks the session as finished by the user.
func (s *Session) RequestQuit() { s.quit = true }

// QuitRequested reports whether RequestQuit was called since the last Reset.
func (s *Session) QuitRequested() bool { return s.quit }
