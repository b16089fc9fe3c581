// Package palette resolves the eight normal colors of an alacritty-style
// TOML theme. Resolution is all or nothing: a theme that cannot be read or
// that has any missing or malformed color yields the built-in defaults.
package palette

import (
	"fmt"
	"os"
	"path/filepath"

	"unfocol/internal/debug"
	appErrors "unfocol/internal/errors"
	"unfocol/internal/gradient"

	"github.com/pelletier/go-toml/v2"
)

// Palette holds the eight normal terminal colors. It is a value type; a
// reload replaces it whole.
type Palette struct {
	Black   gradient.RGB
	Red     gradient.RGB
	Green   gradient.RGB
	Yellow  gradient.RGB
	Blue    gradient.RGB
	Magenta gradient.RGB
	Cyan    gradient.RGB
	White   gradient.RGB
}

// Default is the palette used whenever no valid theme is available.
func Default() Palette {
	return Palette{
		Black:   gradient.RGB{R: 0x00, G: 0x00, B: 0x00},
		Red:     gradient.RGB{R: 0xFF, G: 0x00, B: 0x00},
		Green:   gradient.RGB{R: 0x00, G: 0xFF, B: 0x00},
		Yellow:  gradient.RGB{R: 0xFF, G: 0xFF, B: 0x00},
		Blue:    gradient.RGB{R: 0x00, G: 0x00, B: 0xFF},
		Magenta: gradient.RGB{R: 0xFF, G: 0x00, B: 0xFF},
		Cyan:    gradient.RGB{R: 0x00, G: 0xFF, B: 0xFF},
		White:   gradient.RGB{R: 0xFF, G: 0xFF, B: 0xFF},
	}
}

// Stops builds the urgency gradient: green at the start, yellow at the
// midpoint, red with a sixth of the time left and black at the end.
func (p Palette) Stops() gradient.Stops {
	return gradient.Stops{
		{Ratio: 0, Color: p.Green},
		{Ratio: 0.5, Color: p.Yellow},
		{Ratio: 5.0 / 6.0, Color: p.Red},
		{Ratio: 1, Color: p.Black},
	}
}

// PausedColor is the fill shown while the timer is paused.
func (p Palette) PausedColor() gradient.RGB {
	return p.Cyan
}

// themeFile mirrors the part of an alacritty theme we read.
type themeFile struct {
	Colors struct {
		Normal normalColors `toml:"normal"`
	} `toml:"colors"`
}

type normalColors struct {
	Black   string `toml:"black"`
	Red     string `toml:"red"`
	Green   string `toml:"green"`
	Yellow  string `toml:"yellow"`
	Blue    string `toml:"blue"`
	Magenta string `toml:"magenta"`
	Cyan    string `toml:"cyan"`
	White   string `toml:"white"`
}

// Resolve loads the theme at path, falling back to Default on any failure.
func Resolve(path string) Palette {
	p, err := Load(path)
	if err != nil {
		debug.Logf("theme %s unusable (%s), using defaults: %v", path, appErrors.CodeOf(err), err)
		return Default()
	}
	return p
}

// Load reads and decodes the theme at path.
func Load(path string) (Palette, error) {
	//nolint:gosec // G304: Theme path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, appErrors.New(appErrors.CodeThemeReadFailed, fmt.Sprintf("read theme %s", path), err)
	}
	return Parse(data)
}

// Parse decodes a theme document. Every one of the eight colors must be
// present and valid.
func Parse(data []byte) (Palette, error) {
	var doc themeFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Palette{}, appErrors.New(appErrors.CodeThemeParseFailed, "parse theme", err)
	}

	n := doc.Colors.Normal
	var (
		p   Palette
		err error
	)
	fields := []struct {
		name string
		raw  string
		dst  *gradient.RGB
	}{
		{"black", n.Black, &p.Black},
		{"red", n.Red, &p.Red},
		{"green", n.Green, &p.Green},
		{"yellow", n.Yellow, &p.Yellow},
		{"blue", n.Blue, &p.Blue},
		{"magenta", n.Magenta, &p.Magenta},
		{"cyan", n.Cyan, &p.Cyan},
		{"white", n.White, &p.White},
	}
	for _, f := range fields {
		if f.raw == "" {
			return Palette{}, appErrors.New(appErrors.CodeThemeParseFailed, fmt.Sprintf("colors.normal.%s is missing", f.name), nil)
		}
		if *f.dst, err = ParseHex(f.raw); err != nil {
			return Palette{}, fmt.Errorf("colors.normal.%s: %w", f.name, err)
		}
	}
	return p, nil
}

// DefaultThemePath is the theme location maintained by omarchy's theme
// switcher.
func DefaultThemePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, ".config", "omarchy", "current", "theme", "alacritty.toml"), nil
}
