package mechanics

import "math"

// #region econ
// Surplus is the per-turn surplus: prod - upkeep - actions*cost.
func Surplus(prod, upkeep, actions, cost float64) float64 {
	return prod - upkeep - actions*cost
}

// StorageSteady is the steady-state store S* of dS/dt = surplus - leak*S,
// clamped to [0, cap]. A zero leak means storage fills to cap.
func StorageSteady(surplus, leak, cap float64) float64 {
	s := cap
	if leak > 0 {
		s = surplus / leak
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0
	}
	return Clamp(s, 0, cap)
}

// SpendCap is the largest affordable action rate given production and upkeep.
func SpendCap(prod, upkeep, cost float64) float64 {
	return Clamp(math.Max(prod-upkeep, 0)/cost, 0, 1)
}

// #endregion econ
