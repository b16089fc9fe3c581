package ui

import (
	"fmt"
	"time"

	"unfocol/internal/debug"
	"unfocol/internal/session"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTickInterval = 100 * time.Millisecond
	toastDuration       = 2 * time.Second
)

var (
	timeNow = time.Now

	// clipboardWriteAll is swapped out in tests.
	clipboardWriteAll = clipboard.WriteAll
)

// Config configures the UI application.
type Config struct {
	Loop         *session.Loop
	TickInterval time.Duration
}

// App implements the Bubble Tea model for the timer. It is a thin shell
// around session.Loop: keys become actions, ticks become frames.
type App struct {
	loop         *session.Loop
	tickInterval time.Duration

	keys  KeyMap
	help  help.Model
	frame session.Frame

	width  int
	height int
	ready  bool

	toast      string
	toastUntil time.Time
}

// NewApp creates the UI around an existing session loop.
func NewApp(cfg Config) (*App, error) {
	if cfg.Loop == nil {
		return nil, fmt.Errorf("session loop is required")
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}
	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Background(cBlack)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Background(cBlack)
	h.Styles.ShortSeparator = h.Styles.ShortSeparator.Background(cBlack)
	h.Styles.FullKey = h.Styles.FullKey.Background(cBlack)
	h.Styles.FullDesc = h.Styles.FullDesc.Background(cBlack)
	h.Styles.FullSeparator = h.Styles.FullSeparator.Background(cBlack)

	return &App{
		loop:         cfg.Loop,
		tickInterval: cfg.TickInterval,
		keys:         DefaultKeyMap(),
		help:         h,
		frame:        cfg.Loop.Frame(),
	}, nil
}

func (m *App) Init() tea.Cmd {
	return scheduleTick(m.tickInterval)
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil
	case tickMsg:
		m.frame = m.loop.Tick()
		if !m.toastUntil.IsZero() && timeNow().After(m.toastUntil) {
			m.toast = ""
			m.toastUntil = time.Time{}
		}
		if m.loop.QuitRequested() {
			return m, tea.Quit
		}
		return m, scheduleTick(m.tickInterval)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.loop.Handle(session.ActionQuit)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.loop.Handle(session.ActionToggle)
	case key.Matches(msg, m.keys.Reset):
		m.loop.Handle(session.ActionReset)
	case key.Matches(msg, m.keys.Copy):
		m.copyClock()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
	// Redraw from the new state right away rather than showing a stale
	// frame until the next tick.
	m.frame = m.loop.Frame()
	return m, nil
}

func (m *App) copyClock() {
	text := m.loop.Frame().Clock
	if err := clipboardWriteAll(text); err != nil {
		debug.Logf("copy to clipboard failed: %v", err)
		m.showToast("copy failed: " + err.Error())
		return
	}
	m.showToast("copied " + text)
}

func (m *App) showToast(text string) {
	m.toast = text
	m.toastUntil = timeNow().Add(toastDuration)
}
