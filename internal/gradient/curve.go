package gradient

import (
	"math"
	"strings"
)

// Curve reshapes progress before it is looked up in the gradient.
type Curve string

const (
	CurveLinear  Curve = "linear"
	CurveSigmoid Curve = "sigmoid"
)

// sigmoidSteepness controls how long the sigmoid curve lingers near the ends.
const sigmoidSteepness = 10.0

// ParseCurve maps a config value to a Curve. Unknown names are linear.
func ParseCurve(name string) Curve {
	switch Curve(strings.ToLower(strings.TrimSpace(name))) {
	case CurveSigmoid:
		return CurveSigmoid
	default:
		return CurveLinear
	}
}

// Apply maps ratio through the curve. Both curves fix 0 and 1.
func (c Curve) Apply(ratio float64) float64 {
	ratio = clamp01(ratio)
	if c != CurveSigmoid {
		return ratio
	}
	lo := logistic(0)
	hi := logistic(1)
	return clamp01((logistic(ratio) - lo) / (hi - lo))
}

func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-sigmoidSteepness*(x-0.5)))
}
