// Package themewatch reloads the palette when the theme's directory changes.
// Notifications come from fsnotify on its own goroutine; the watcher only
// ever drains them without blocking, so it can be polled from a render loop.
package themewatch

import (
	"fmt"
	"path/filepath"
	"time"

	"unfocol/internal/debug"
	appErrors "unfocol/internal/errors"
	"unfocol/internal/palette"
	"unfocol/internal/timer"

	"github.com/fsnotify/fsnotify"
)

// Resolver turns a theme path into a palette. It must not fail.
type Resolver func(path string) palette.Palette

type settings struct {
	clock    timer.Clock
	debounce time.Duration
	resolve  Resolver
}

// Option configures a Watcher.
type Option func(*settings)

// WithClock overrides the clock used for debouncing.
func WithClock(c timer.Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) {
		s.debounce = d
	}
}

// WithResolver overrides palette.Resolve.
func WithResolver(r Resolver) Option {
	return func(s *settings) {
		if r != nil {
			s.resolve = r
		}
	}
}

// Watcher turns bursts of directory notifications into single palette
// reloads.
type Watcher struct {
	path      string
	events    <-chan fsnotify.Event
	errs      <-chan error
	fsw       *fsnotify.Watcher
	debouncer *Debouncer
	resolve   Resolver
}

// New watches the directory containing path, non-recursively.
func New(path string, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, appErrors.New(appErrors.CodeWatchFailed, "create theme watcher", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, appErrors.New(appErrors.CodeWatchFailed, fmt.Sprintf("watch %s", dir), err)
	}

	w := newWatcher(path, fsw.Events, fsw.Errors, opts)
	w.fsw = fsw
	debug.Logf("watching %s for theme changes", dir)
	return w, nil
}

// NewFromEvents builds a watcher over an existing notification stream.
func NewFromEvents(path string, events <-chan fsnotify.Event, opts ...Option) *Watcher {
	return newWatcher(path, events, nil, opts)
}

func newWatcher(path string, events <-chan fsnotify.Event, errs <-chan error, opts []Option) *Watcher {
	s := settings{
		clock:    timer.SystemClock,
		debounce: DefaultDebounce,
		resolve:  palette.Resolve,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return &Watcher{
		path:      path,
		events:    events,
		errs:      errs,
		debouncer: NewDebouncer(s.clock, s.debounce),
		resolve:   s.resolve,
	}
}

// Path returns the watched theme file.
func (w *Watcher) Path() string {
	return w.path
}

// Poll drains every pending notification without blocking. It reports a
// freshly resolved palette when at least one notification got past the
// debounce window.
func (w *Watcher) Poll() (palette.Palette, bool) {
	var (
		latest  palette.Palette
		changed bool
	)
	for {
		select {
		case ev, ok := <-w.events:
			if !ok {
				w.events = nil
				continue
			}
			if !w.debouncer.Accept() {
				debug.Logf("theme event %s debounced", ev)
				continue
			}
			debug.Logf("theme event %s, reloading %s", ev, w.path)
			latest = w.resolve(w.path)
			changed = true
		case err, ok := <-w.errs:
			if !ok {
				w.errs = nil
				continue
			}
			debug.Logf("theme watcher error: %v", err)
		default:
			return latest, changed
		}
	}
}

// LastReload returns when the last reload was applied.
func (w *Watcher) LastReload() time.Time {
	return w.debouncer.LastApplied()
}

// Close stops watching. It is safe on a watcher built from NewFromEvents.
func (w *Watcher) Close() error {
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	w.fsw = nil
	return err
}
