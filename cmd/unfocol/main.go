package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"unfocol/internal/config"
	"unfocol/internal/debug"
	"unfocol/internal/gradient"
	"unfocol/internal/palette"
	"unfocol/internal/session"
	"unfocol/internal/themewatch"
	"unfocol/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		return 1
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	durationFlag := flag.Duration("duration", config.GetDuration(config.KeyDuration), "Length of one focus session (e.g. 25m)")
	themeFlag := flag.String("theme", config.GetString(config.KeyThemePath), "Path to an alacritty TOML theme (default: the current omarchy theme)")
	curveFlag := flag.String("curve", config.GetString(config.KeyTransitionCurve), "Color transition curve (linear, sigmoid)")
	debugFlag := flag.Bool("debug", config.GetBool(config.KeyDebug), "Write a debug log to ~/.unfocol/debug.log")
	flag.Parse()

	if *versionFlag {
		printVersion()
		return 0
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	overrides := flagOverrides(runtimeFlags{
		duration: durationFlag,
		theme:    themeFlag,
		curve:    curveFlag,
		debug:    debugFlag,
	}, visited)
	if err := config.ApplyOverrides(overrides); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := debug.Init(settings.Debug, settings.DebugLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
	}
	defer debug.Close()
	debug.Logf("settings: %+v", settings)

	themePath, err := resolveThemePath(settings.ThemePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	loop := buildLoop(settings, themePath)
	defer func() {
		if err := loop.Close(); err != nil {
			debug.Logf("close theme watcher: %v", err)
		}
	}()

	appCfg := ui.Config{
		Loop:         loop,
		TickInterval: settings.TickInterval,
	}
	if err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

type runtimeFlags struct {
	duration *time.Duration
	theme    *string
	curve    *string
	debug    *bool
}

// flagOverrides returns config overrides for the flags the user actually
// passed, so config files and environment still apply otherwise.
func flagOverrides(flags runtimeFlags, visited map[string]struct{}) map[string]any {
	overrides := map[string]any{}
	if flagWasExplicitlySet("duration", visited) && flags.duration != nil {
		overrides[config.KeyDuration] = *flags.duration
	}
	if flagWasExplicitlySet("theme", visited) && flags.theme != nil {
		overrides[config.KeyThemePath] = strings.TrimSpace(*flags.theme)
	}
	if flagWasExplicitlySet("curve", visited) && flags.curve != nil {
		overrides[config.KeyTransitionCurve] = strings.TrimSpace(*flags.curve)
	}
	if flagWasExplicitlySet("debug", visited) && flags.debug != nil {
		overrides[config.KeyDebug] = *flags.debug
	}
	return overrides
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	_, ok := visited[name]
	return ok
}

func resolveThemePath(configured string) (string, error) {
	if path := strings.TrimSpace(configured); path != "" {
		return path, nil
	}
	path, err := palette.DefaultThemePath()
	if err != nil {
		return "", fmt.Errorf("locate theme: %w", err)
	}
	return path, nil
}

// buildLoop resolves the starting palette and attaches a theme watcher when
// the theme directory can be watched. Without one the timer still runs; it
// just never reloads.
func buildLoop(settings config.Settings, themePath string) *session.Loop {
	cfg := session.Config{
		Duration: settings.Duration,
		Palette:  palette.Resolve(themePath),
		Curve:    gradient.ParseCurve(settings.Curve),
	}
	w, err := themewatch.New(themePath, themewatch.WithDebounce(settings.Debounce))
	if err != nil {
		debug.Logf("theme hot reload disabled: %v", err)
	} else {
		cfg.Theme = w
	}
	return session.New(cfg)
}
