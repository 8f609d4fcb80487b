// Package refine drives a deterministic fixed-point refinement loop over
// caller-supplied pure functions. It knows nothing about hooks, targets or
// signals; those live one layer up in the harness.
package refine

// #region refine
// Refine runs θ_{t+1} = update(θ_t, measure(simulate(θ_t))) for at most
// maxIters iterations.
//
// After each update, converged(θ_t, θ_{t+1}) is consulted; when it holds,
// θ_{t+1} is returned immediately. When maxIters is exhausted the last θ is
// returned. Exhaustion is not an error and Refine carries no flag for it:
// callers that need one thread it through θ itself.
//
// θ is passed by value, so P should be a value type (or treated as one) for
// the loop to stay free of aliasing between iterations.
func Refine[P, D, M any](
	theta P,
	simulate func(P) D,
	measure func(D) M,
	update func(P, M) P,
	converged func(prev, next P) bool,
	maxIters int,
) P {
	for i := 0; i < maxIters; i++ {
		data := simulate(theta)
		metrics := measure(data)
		next := update(theta, metrics)
		if converged(theta, next) {
			return next
		}
		theta = next
	}
	return theta
}

// #endregion refine
