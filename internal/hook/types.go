package hook

// #region target-adjust
// TargetAdjust is a multiplicative correction applied to the controller's
// nominal targets. Adjustments from several hooks compose by multiplying.
type TargetAdjust struct {
	A float64
	B float64
	C float64
}

// Identity returns the neutral adjustment (1, 1, 1).
func Identity() TargetAdjust {
	return TargetAdjust{A: 1, B: 1, C: 1}
}

// #endregion target-adjust

// #region nominal-targets
// NominalTargets is what the controller is about to aim for in one iteration.
// The meaning of X, Y and Z is defined by each system.
type NominalTargets struct {
	X float64
	Y float64
	Z float64
}

// #endregion nominal-targets
