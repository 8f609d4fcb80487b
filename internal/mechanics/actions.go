package mechanics

import "math"

// #region actions
// EconCap is the fraction of actions the economy can afford: prod/cost in [0, 1].
func EconCap(prod, cost float64) float64 {
	return Clamp(prod/cost, 0, 1)
}

// Effective combines a desired action rate with two caps.
func Effective(desired, capA, capB float64) float64 {
	return Clamp(math.Min(math.Min(desired, capA), capB), 0, 1)
}

// #endregion actions
