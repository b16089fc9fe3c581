// Package gradient maps a progress ratio onto a color by linear
// interpolation between ordered color stops.
package gradient

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Stop anchors a color at a position in [0, 1].
type Stop struct {
	Ratio float64
	Color RGB
}

// Stops is an ordered gradient. A usable gradient starts at 0, ends at 1 and
// never decreases in between.
type Stops []Stop

// Valid reports whether the stops are boundary-complete and non-decreasing.
func (s Stops) Valid() bool {
	if len(s) < 2 {
		return false
	}
	if s[0].Ratio != 0 || s[len(s)-1].Ratio != 1 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i].Ratio < s[i-1].Ratio {
			return false
		}
	}
	return true
}

// ColorAt returns the interpolated color for ratio. Ratios outside [0, 1] are
// clamped. The first interval containing ratio wins, so a ratio sitting on a
// shared boundary is resolved by the earlier interval. When no interval
// matches, which only happens for malformed stops, the last stop's color is
// returned; an empty gradient yields black.
func ColorAt(ratio float64, stops Stops) RGB {
	ratio = clamp01(ratio)

	for i := 0; i+1 < len(stops); i++ {
		lo, hi := stops[i], stops[i+1]
		if ratio < lo.Ratio || ratio > hi.Ratio {
			continue
		}
		span := hi.Ratio - lo.Ratio
		if span <= 0 {
			return hi.Color
		}
		return Lerp(lo.Color, hi.Color, (ratio-lo.Ratio)/span)
	}

	if len(stops) == 0 {
		return RGB{}
	}
	return stops[len(stops)-1].Color
}

// Lerp interpolates each channel independently and truncates the result.
func Lerp(from, to RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
	}
}

func lerpChannel(from, to uint8, t float64) uint8 {
	v := float64(from) + (float64(to)-float64(from))*t
	return uint8(v)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
