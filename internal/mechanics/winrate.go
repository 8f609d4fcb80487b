package mechanics

import "math"

// #region winrate
// WinRateLinear is a linear attack-versus-defend win rate around 0.5.
func WinRateLinear(effActions, defendRate float64) float64 {
	return 0.5 + effActions*((1-defendRate)-0.5)
}

// WinRateTanh gives diminishing returns: 0.5 + beta*tanh(alpha*eff*(1-defend)).
func WinRateTanh(effActions, defendRate, alpha, beta float64) float64 {
	return WinRateFromPressure(alpha*effActions*(1-defendRate), beta)
}

// EffFromTargetWinRate inverts WinRateTanh, returning the effective action
// rate in [0, 1] needed to hit wrTarget.
func EffFromTargetWinRate(wrTarget, defendRate, alpha, beta float64) float64 {
	lift := Clamp((wrTarget-0.5)/beta, -0.9999999, 0.9999999)
	eff := math.Atanh(lift) / (alpha * (1 - defendRate))
	return Clamp(eff, 0, 1)
}

// Pressure is alpha*eff*(1-defend)*mult, with the complement passed in.
func Pressure(alpha, eff, oneMinusDefend, mult float64) float64 {
	return alpha * eff * oneMinusDefend * mult
}

// WinRateFromPressure maps pressure to a win rate: 0.5 + beta*tanh(p).
func WinRateFromPressure(pressure, beta float64) float64 {
	return 0.5 + beta*math.Tanh(pressure)
}

// #endregion winrate
