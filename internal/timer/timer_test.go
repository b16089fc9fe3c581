package timer

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, d time.Duration) (*Session, *ManualClock) {
	t.Helper()
	clock := NewManualClock(epoch)
	return New(d, WithClock(clock)), clock
}

func TestNewSessionStartsPaused(t *testing.T) {
	s, clock := newTestSession(t, time.Minute)
	clock.Advance(10 * time.Second)

	if s.State() != Paused {
		t.Fatalf("state = %v, want paused", s.State())
	}
	if got := s.Elapsed(); got != 0 {
		t.Fatalf("elapsed = %v, want 0 while paused", got)
	}
	if got := s.Remaining(); got != time.Minute {
		t.Fatalf("remaining = %v, want 1m", got)
	}
}

func TestNewSessionDefaultsNonPositiveDuration(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		s, _ := newTestSession(t, d)
		if s.Duration() != DefaultDuration {
			t.Fatalf("New(%v).Duration() = %v, want %v", d, s.Duration(), DefaultDuration)
		}
	}
}

func TestResumeAfterWaitStartsFromFrozenElapsed(t *testing.T) {
	s, clock := newTestSession(t, time.Minute)

	// Paused at t=0; the user waits before resuming.
	clock.Advance(5 * time.Second)
	s.TogglePause(s.Elapsed())

	if s.State() != Running {
		t.Fatalf("state = %v, want running", s.State())
	}
	if got := s.Elapsed(); got != 0 {
		t.Fatalf("elapsed right after resume = %v, want 0", got)
	}

	clock.Advance(2 * time.Second)
	if got := s.Elapsed(); got != 2*time.Second {
		t.Fatalf("elapsed = %v, want 2s", got)
	}
}

func TestPauseFreezesElapsed(t *testing.T) {
	s, clock := newTestSession(t, time.Minute)
	s.TogglePause(s.Elapsed())
	clock.Advance(12 * time.Second)

	s.TogglePause(s.Elapsed())
	clock.Advance(30 * time.Second)

	if got := s.Elapsed(); got != 12*time.Second {
		t.Fatalf("elapsed while paused = %v, want 12s", got)
	}

	s.TogglePause(s.Elapsed())
	clock.Advance(3 * time.Second)
	if got := s.Elapsed(); got != 15*time.Second {
		t.Fatalf("elapsed after resume = %v, want 15s", got)
	}
}

func TestPauseResumeCyclesAreLossless(t *testing.T) {
	for _, cycles := range []int{1, 2, 7, 50} {
		s, clock := newTestSession(t, time.Minute)
		s.TogglePause(s.Elapsed())
		clock.Advance(17 * time.Second)
		before := s.Elapsed()

		for i := 0; i < cycles; i++ {
			s.TogglePause(s.Elapsed()) // pause
			s.TogglePause(s.Elapsed()) // resume
		}

		if got := s.Elapsed(); got != before {
			t.Fatalf("%d cycles: elapsed = %v, want %v", cycles, got, before)
		}
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	s, clock := newTestSession(t, 5*time.Second)
	s.TogglePause(s.Elapsed())

	for _, step := range []time.Duration{4 * time.Second, time.Second, time.Hour} {
		clock.Advance(step)
		if got := s.Remaining(); got < 0 {
			t.Fatalf("remaining = %v, must not be negative", got)
		}
	}
	if got := s.Remaining(); got != 0 {
		t.Fatalf("remaining after overrun = %v, want 0", got)
	}
	if !s.Expired() {
		t.Fatalf("expected session to report expiry")
	}
	if got := s.Progress(); got != 1 {
		t.Fatalf("progress after overrun = %v, want 1", got)
	}
}

func TestResetFromAnyState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Session, *ManualClock)
	}{
		{name: "fresh", setup: func(*Session, *ManualClock) {}},
		{name: "running", setup: func(s *Session, c *ManualClock) {
			s.TogglePause(s.Elapsed())
			c.Advance(20 * time.Second)
		}},
		{name: "paused mid session", setup: func(s *Session, c *ManualClock) {
			s.TogglePause(s.Elapsed())
			c.Advance(20 * time.Second)
			s.TogglePause(s.Elapsed())
		}},
		{name: "quit requested", setup: func(s *Session, c *ManualClock) {
			s.RequestQuit()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, clock := newTestSession(t, time.Minute)
			tt.setup(s, clock)

			s.Reset()
			clock.Advance(9 * time.Second)

			if s.State() != Paused {
				t.Fatalf("state = %v, want paused", s.State())
			}
			if got := s.Elapsed(); got != 0 {
				t.Fatalf("elapsed = %v, want 0", got)
			}
			if s.QuitRequested() {
				t.Fatalf("reset should clear the quit flag")
			}
		})
	}
}

func TestProgress(t *testing.T) {
	s, clock := newTestSession(t, 40*time.Second)
	s.TogglePause(s.Elapsed())
	clock.Advance(10 * time.Second)

	if got := s.Progress(); got != 0.25 {
		t.Fatalf("progress = %v, want 0.25", got)
	}
}

func TestStateString(t *testing.T) {
	if Paused.String() != "paused" || Running.String() != "running" {
		t.Fatalf("unexpected state names %q %q", Paused, Running)
	}
}
