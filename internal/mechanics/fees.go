package mechanics

import "math"

// #region fees
// FeeMultiplier is an extra generation multiplier driven by banked money:
// 1 + slope*(money/prod), clamped to [1, maxMult].
func FeeMultiplier(money, prod, slope, maxMult float64) float64 {
	denom := math.Max(math.Abs(prod), 1e-9)
	raw := 1 + math.Max(slope, 0)*(money/denom)
	return Clamp(raw, 1, math.Max(maxMult, 1))
}

// #endregion fees
