// Package session runs the focus timer one tick at a time. A Loop owns the
// countdown, the palette in effect and the gradient derived from it; the
// terminal layer feeds it key actions and asks it for a Frame per tick.
package session

import (
	"fmt"
	"time"

	"unfocol/internal/debug"
	"unfocol/internal/gradient"
	"unfocol/internal/palette"
	"unfocol/internal/timer"
)

// Action is a user request decoded from input.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggle
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionToggle:
		return "toggle"
	case ActionReset:
		return "reset"
	default:
		return "none"
	}
}

// ThemeSource reports palette reloads without blocking.
type ThemeSource interface {
	Poll() (palette.Palette, bool)
	Close() error
}

// Frame is everything the renderer needs for one tick.
type Frame struct {
	Background gradient.RGB
	Clock      string
	Paused     bool
	Progress   float64
	Remaining  time.Duration
}

// Config configures a Loop.
type Config struct {
	Duration time.Duration
	Palette  palette.Palette
	Curve    gradient.Curve
	Theme    ThemeSource
	Clock    timer.Clock
}

// Loop is the single owner of session, palette and stops. It is not safe
// for concurrent use; call it from one goroutine.
type Loop struct {
	session *timer.Session
	palette palette.Palette
	stops   gradient.Stops
	curve   gradient.Curve
	theme   ThemeSource
}

// New builds a loop with a paused session.
func New(cfg Config) *Loop {
	var opts []timer.Option
	if cfg.Clock != nil {
		opts = append(opts, timer.WithClock(cfg.Clock))
	}
	l := &Loop{
		session: timer.New(cfg.Duration, opts...),
		curve:   cfg.Curve,
		theme:   cfg.Theme,
	}
	if l.curve == "" {
		l.curve = gradient.CurveLinear
	}
	l.setPalette(cfg.Palette)
	return l
}

// Handle applies one user action.
func (l *Loop) Handle(a Action) {
	switch a {
	case ActionQuit:
		l.session.RequestQuit()
	case ActionToggle:
		// Elapsed must be read before toggling: the toggle changes how it
		// is measured.
		elapsed := l.session.Elapsed()
		l.session.TogglePause(elapsed)
		debug.Logf("session %s at %s elapsed", l.session.State(), elapsed)
	case ActionReset:
		l.session.Reset()
		debug.Log("session reset")
	}
}

// Tick polls for theme changes, restarts an expired countdown and returns
// the frame to draw.
func (l *Loop) Tick() Frame {
	if l.theme != nil {
		if p, ok := l.theme.Poll(); ok {
			l.setPalette(p)
			debug.Log("palette replaced after theme reload")
		}
	}

	if l.session.Expired() {
		// The timer is cyclic: an elapsed countdown starts over, paused.
		l.session.Reset()
		debug.Log("countdown finished, session reset")
	}

	return l.Frame()
}

// Frame builds the current frame without polling or resetting. It lets the
// renderer redraw right after an action instead of waiting for the next tick.
func (l *Loop) Frame() Frame {
	remaining := l.session.Remaining()
	progress := l.session.Progress()
	f := Frame{
		Clock:     FormatClock(remaining),
		Paused:    l.session.Paused(),
		Progress:  progress,
		Remaining: remaining,
	}
	if f.Paused {
		f.Background = l.palette.PausedColor()
	} else {
		f.Background = gradient.ColorAt(l.curve.Apply(progress), l.stops)
	}
	return f
}

func (l *Loop) setPalette(p palette.Palette) {
	l.palette = p
	l.stops = p.Stops()
}

// QuitRequested reports whether the user asked to quit.
func (l *Loop) QuitRequested() bool { return l.session.QuitRequested() }

// Palette returns the palette in effect.
func (l *Loop) Palette() palette.Palette { return l.palette }

// Session exposes the underlying countdown for inspection.
func (l *Loop) Session() *timer.Session { return l.session }

// Close releases the theme source.
func (l *Loop) Close() error {
	if l.theme == nil {
		return nil
	}
	return l.theme.Close()
}

// FormatClock renders d as MM:SS, truncating sub-second remainders.
// Minutes are not wrapped at 60.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
