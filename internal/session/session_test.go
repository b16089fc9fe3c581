package session

import (
	"testing"
	"time"

	"unfocol/internal/gradient"
	"unfocol/internal/palette"
	"unfocol/internal/timer"
)

type fakeTheme struct {
	pending []palette.Palette
	polls   int
	closed  bool
}

func (f *fakeTheme) Poll() (palette.Palette, bool) {
	f.polls++
	if len(f.pending) == 0 {
		return palette.Palette{}, false
	}
	p := f.pending[0]
	f.pending = f.pending[1:]
	return p, true
}

func (f *fakeTheme) Close() error {
	f.closed = true
	return nil
}

func newTestLoop(t *testing.T, d time.Duration, theme ThemeSource) (*Loop, *timer.ManualClock) {
	t.Helper()
	clock := timer.NewManualClock(time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC))
	l := New(Config{
		Duration: d,
		Palette:  palette.Default(),
		Theme:    theme,
		Clock:    clock,
	})
	return l, clock
}

func TestInitialFrameIsPausedAndFull(t *testing.T) {
	l, _ := newTestLoop(t, time.Minute, nil)
	f := l.Tick()

	if !f.Paused {
		t.Fatalf("expected a new session to be paused")
	}
	if f.Clock != "01:00" {
		t.Fatalf("clock = %q, want 01:00", f.Clock)
	}
	if f.Background != palette.Default().Cyan {
		t.Fatalf("paused background = %v, want cyan", f.Background)
	}
}

func TestToggleResumesWhereItLeftOff(t *testing.T) {
	l, clock := newTestLoop(t, time.Minute, nil)

	// Paused at t=0, resumed five seconds later.
	clock.Advance(5 * time.Second)
	l.Handle(ActionToggle)
	if got := l.Session().Elapsed(); got != 0 {
		t.Fatalf("elapsed right after resume = %v, want 0", got)
	}

	clock.Advance(30 * time.Second)
	f := l.Tick()
	if f.Paused {
		t.Fatalf("expected running frame")
	}
	if f.Clock != "00:30" {
		t.Fatalf("clock = %q, want 00:30", f.Clock)
	}
	if f.Background != palette.Default().Yellow {
		t.Fatalf("background at half time = %v, want yellow", f.Background)
	}

	l.Handle(ActionToggle)
	clock.Advance(time.Hour)
	if f := l.Tick(); !f.Paused || f.Clock != "00:30" {
		t.Fatalf("paused frame = %+v, want paused at 00:30", f)
	}
}

func TestCountdownAutoResetsWhenExpired(t *testing.T) {
	l, clock := newTestLoop(t, 5*time.Second, nil)
	l.Handle(ActionToggle)

	clock.Advance(5 * time.Second)
	f := l.Tick()

	if got := l.Session().Elapsed(); got != 0 {
		t.Fatalf("elapsed after expiry = %v, want 0", got)
	}
	if !f.Paused || f.Clock != "00:05" {
		t.Fatalf("frame after expiry = %+v, want paused at 00:05", f)
	}
}

func TestResetIsImmediate(t *testing.T) {
	l, clock := newTestLoop(t, time.Minute, nil)
	l.Handle(ActionToggle)
	clock.Advance(20 * time.Second)

	l.Handle(ActionReset)
	if l.Session().Elapsed() != 0 || !l.Session().Paused() {
		t.Fatalf("reset should leave a paused session with zero elapsed")
	}
	if f := l.Tick(); f.Clock != "01:00" {
		t.Fatalf("clock after reset = %q, want 01:00", f.Clock)
	}
}

func TestQuitAction(t *testing.T) {
	l, _ := newTestLoop(t, time.Minute, nil)
	if l.QuitRequested() {
		t.Fatalf("quit should not be requested initially")
	}
	l.Handle(ActionQuit)
	if !l.QuitRequested() {
		t.Fatalf("expected quit to be requested")
	}
	l.Handle(ActionNone)
	if !l.QuitRequested() {
		t.Fatalf("ActionNone must not change state")
	}
}

func TestThemeReloadReplacesPaletteAndStops(t *testing.T) {
	reloaded := palette.Default()
	reloaded.Cyan = gradient.RGB{R: 0x44, G: 0x9d, B: 0xab}
	reloaded.Green = gradient.RGB{R: 0x9e, G: 0xce, B: 0x6a}
	theme := &fakeTheme{pending: []palette.Palette{reloaded}}

	l, _ := newTestLoop(t, time.Minute, theme)
	f := l.Tick()

	if f.Background != reloaded.Cyan {
		t.Fatalf("paused background = %v, want reloaded cyan", f.Background)
	}
	if l.Palette() != reloaded {
		t.Fatalf("palette not replaced")
	}

	l.Handle(ActionToggle)
	if f := l.Tick(); f.Background != reloaded.Green {
		t.Fatalf("running background at start = %v, want reloaded green", f.Background)
	}
	if theme.polls != 2 {
		t.Fatalf("theme polled %d times, want once per tick", theme.polls)
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !theme.closed {
		t.Fatalf("Close should close the theme source")
	}
}

func TestSigmoidCurveShapesBackground(t *testing.T) {
	clock := timer.NewManualClock(time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC))
	l := New(Config{
		Duration: 100 * time.Second,
		Palette:  palette.Default(),
		Curve:    gradient.CurveSigmoid,
		Clock:    clock,
	})
	l.Handle(ActionToggle)
	clock.Advance(10 * time.Second)

	f := l.Tick()
	linear := gradient.ColorAt(0.1, palette.Default().Stops())
	if f.Background.R >= linear.R {
		t.Fatalf("sigmoid background %v should lag linear %v early on", f.Background, linear)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "00:00"},
		{in: -time.Second, want: "00:00"},
		{in: 999 * time.Millisecond, want: "00:00"},
		{in: 59 * time.Second, want: "00:59"},
		{in: 25 * time.Minute, want: "25:00"},
		{in: 90*time.Minute + 5*time.Second, want: "90:05"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Fatalf("FormatClock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestActionString(t *testing.T) {
	for a, want := range map[Action]string{
		ActionNone:   "none",
		ActionQuit:   "quit",
		ActionToggle: "toggle",
		ActionReset:  "reset",
	} {
		if got := a.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", a, got, want)
		}
	}
}
