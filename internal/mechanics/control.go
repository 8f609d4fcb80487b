// Package mechanics collects small pure formulas shared by the concrete
// balancing systems: proportional control, action caps, economy, fees,
// energy, win rate, stochastic modifiers and tolerance bands.
package mechanics

import "math"

// #region control
// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// Approach moves x a fraction k of the way toward target and clamps the
// result into [lo, hi].
func Approach(x, target, k, lo, hi float64) float64 {
	return Clamp(x+k*(target-x), lo, hi)
}

// PAgainstError steps x against a signed error: clamp(x - k*err).
func PAgainstError(x, err, k, lo, hi float64) float64 {
	return Clamp(x-k*err, lo, hi)
}

// #endregion control
