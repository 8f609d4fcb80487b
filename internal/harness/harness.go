// Package harness binds a concrete system's four pure functions, its bounds,
// gains, targets and a hook list to the refinement engine.
package harness

import (
	"github.com/avila-gabriel/game-balance/internal/hook"
	"github.com/avila-gabriel/game-balance/internal/refine"
)

// cycle is the single slot threaded through the engine for one Balance call.
// It is passed by value, so no stage can observe another stage's writes
// except through the returned copy.
type cycle[P, O any] struct {
	theta P
	obs   O
	iters int
	done  bool
}

// #region balance
// Balance drives θ toward tgt.
//
// Each iteration simulates θ, lets every hook observe the result in
// registration order, derives nominal targets, composes the hooks' target
// adjustments and steps θ. The iteration's observation is then tested against
// tgt; when it is inside the band the stepped θ is returned with
// Converged set. Running out of maxIters is reported through
// Outcome.Converged, never as an error.
//
// hooks are borrowed for the duration of the call and may keep state across
// its iterations.
func Balance[P, E, T, B, G, O any](
	sys System[P, E, T, B, G, O],
	theta0 P,
	env E,
	tgt T,
	bounds B,
	gains G,
	hooks []hook.Hook[P, E, T, O],
	maxIters int,
) Outcome[P, O] {
	simulate := func(c cycle[P, O]) cycle[P, O] {
		obs := sys.Simulate(c.theta, env, tgt, hooks)
		c.obs = obs
		hook.Observe(hooks, obs, c.theta, env, tgt)
		return c
	}

	measure := func(c cycle[P, O]) cycle[P, O] { return c }

	update := func(_ cycle[P, O], c cycle[P, O]) cycle[P, O] {
		nom := sys.Nominal(c.theta, env, tgt, c.obs)
		adj := hook.Adjust(hooks, c.theta, env, tgt, nom)
		c.theta = sys.Step(c.theta, bounds, gains, nom, adj)
		c.iters++
		c.done = sys.Converged(c.obs, tgt)
		return c
	}

	converged := func(_, next cycle[P, O]) bool { return next.done }

	final := refine.Refine(cycle[P, O]{theta: theta0}, simulate, measure, update, converged, maxIters)

	return Outcome[P, O]{
		Theta:     final.theta,
		Obs:       final.obs,
		Iters:     final.iters,
		Converged: final.done,
	}
}

// #endregion balance
