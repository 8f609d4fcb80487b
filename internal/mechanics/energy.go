package mechanics

// #region energy
// EnergyCap limits actions to energy/cost in [0, 1].
func EnergyCap(energy, cost float64) float64 {
	return Clamp(energy/cost, 0, 1)
}

// EnergyUtilization is spend/energy in [0, 1], or 0 with no energy.
func EnergyUtilization(spend, energy float64) float64 {
	if energy <= 0 {
		return 0
	}
	return Clamp(spend/energy, 0, 1)
}

// #endregion energy
