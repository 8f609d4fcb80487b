package harness

import "github.com/avila-gabriel/game-balance/internal/hook"

// #region system
// System is the four-function contract a concrete balancing system supplies.
//
// P is θ, E the environment, T the targets, B the bounds, G the gains and O
// the observation. Simulate must return a fully populated O, and Step must
// return a θ clamped into B.
type System[P, E, T, B, G, O any] struct {
	// Simulate computes an observation from θ. It may call
	// hook.ApplyIncome to let hooks modulate a base rate.
	Simulate func(theta P, env E, tgt T, hooks []hook.Hook[P, E, T, O]) O
	// Nominal turns the latest observation into pre-controller goals.
	Nominal func(theta P, env E, tgt T, obs O) hook.NominalTargets
	// Step moves θ toward the adjusted goals.
	Step func(theta P, bounds B, gains G, nom hook.NominalTargets, adj hook.TargetAdjust) P
	// Converged is a tolerance-band test on the observation.
	Converged func(obs O, tgt T) bool
}

// #endregion system

// #region outcome
// Outcome is the final snapshot of one Balance call.
//
// Converged is false when maxIters ran out first; Theta and Obs then hold
// the last computed values.
type Outcome[P, O any] struct {
	Theta     P
	Obs       O
	Iters     int
	Converged bool
}

// #endregion outcome
