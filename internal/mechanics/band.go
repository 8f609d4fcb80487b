package mechanics

import "math"

// #region band
// Convergence tests are tolerance bands, never exact equality.

// WithinAbs reports |x - target| <= tol.
func WithinAbs(x, target, tol float64) bool {
	return math.Abs(x-target) <= tol
}

// WithinRel reports |x - target| <= rel*max(|target|, floor).
func WithinRel(x, target, rel, floor float64) bool {
	return math.Abs(x-target) <= rel*math.Max(math.Abs(target), floor)
}

// InRange reports lo <= x <= hi.
func InRange(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}

// #endregion band
