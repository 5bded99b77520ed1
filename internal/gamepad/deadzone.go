package gamepad

import "math"

// Default stick deadzone thresholds.
const (
	DefaultDeadzoneInner = 0.1
	DefaultDeadzoneOuter = 0.05
)

// deadzone reshapes a raw stick axis: magnitudes below inner snap to 0,
// magnitudes within outer of full deflection snap to ±1, and the band
// between is rescaled linearly so the output still sweeps the whole
// range. Sign is preserved.
func deadzone(v, inner, outer float64) float64 {
	mag := math.Abs(v)
	limit := 1 - outer
	switch {
	case mag < inner:
		return 0
	case mag > limit:
		return math.Copysign(1, v)
	}
	return math.Copysign((mag-inner)/(limit-inner), v)
}
