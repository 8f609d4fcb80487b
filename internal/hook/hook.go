// Package hook defines the pluggable modulation protocol used by the balance
// harness. A hook can scale a base rate inside simulate, observe each
// iteration, and nudge the controller's nominal targets, all without touching
// a system's core math.
package hook

import "math"

// #region hook
// Hook is a pluggable modulator for one system, parameterised by that
// system's θ (P), environment (E), targets (T) and observation (O) types.
//
// Every capability has an identity default available through Nop; embed it
// and override only what the hook needs. Implementations may keep internal
// state across the iterations of a single harness call (use a pointer
// receiver for that). Hooks are not required to be copyable, so callers
// that need the same behaviour twice should keep a constructor around
// instead of the instance.
type Hook[P, E, T, O any] interface {
	// IncomeMultiplier scales a base rate inside simulate. Identity is 1.
	IncomeMultiplier(base float64, theta P, env E) float64
	// OnObserve runs once per iteration right after simulate, for side
	// effects on the hook itself only.
	OnObserve(obs O, theta P, env E, tgt T)
	// AdjustTargets returns a multiplicative correction for the nominal
	// targets. Identity is (1, 1, 1).
	AdjustTargets(theta P, env E, tgt T, nom NominalTargets) TargetAdjust
}

// Nop implements every Hook capability with its identity default.
type Nop[P, E, T, O any] struct{}

// IncomeMultiplier returns 1.
func (Nop[P, E, T, O]) IncomeMultiplier(float64, P, E) float64 { return 1 }

// OnObserve does nothing.
func (Nop[P, E, T, O]) OnObserve(O, P, E, T) {}

// AdjustTargets returns Identity().
func (Nop[P, E, T, O]) AdjustTargets(P, E, T, NominalTargets) TargetAdjust {
	return Identity()
}

// #endregion hook

// #region compose
// ApplyIncome multiplies base by every hook's income multiplier in
// registration order. Each hook sees the running value as its base, and
// negative multipliers are floored at zero. An empty list returns base
// unchanged.
func ApplyIncome[P, E, T, O any](hooks []Hook[P, E, T, O], base float64, theta P, env E) float64 {
	income := base
	for _, h := range hooks {
		income *= math.Max(h.IncomeMultiplier(income, theta, env), 0)
	}
	return income
}

// Observe calls OnObserve on every hook in registration order.
func Observe[P, E, T, O any](hooks []Hook[P, E, T, O], obs O, theta P, env E, tgt T) {
	for _, h := range hooks {
		h.OnObserve(obs, theta, env, tgt)
	}
}

// Adjust composes every hook's target adjustment component-wise by
// multiplication. Each component is clamped to >= 0 before it is multiplied
// in, so no single hook can flip the sign of the result.
func Adjust[P, E, T, O any](hooks []Hook[P, E, T, O], theta P, env E, tgt T, nom NominalTargets) TargetAdjust {
	adj := Identity()
	for _, h := range hooks {
		s := h.AdjustTargets(theta, env, tgt, nom)
		adj.A *= math.Max(s.A, 0)
		adj.B *= math.Max(s.B, 0)
		adj.C *= math.Max(s.C, 0)
	}
	return adj
}

// #endregion compose
