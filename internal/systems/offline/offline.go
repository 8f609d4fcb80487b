// Package offline tunes how much income a player keeps while away.
package offline

import (
	"math"

	"github.com/avila-gabriel/game-balance/internal/audit"
	"github.com/avila-gabriel/game-balance/internal/harness"
	"github.com/avila-gabriel/game-balance/internal/hook"
	"github.com/avila-gabriel/game-balance/internal/mechanics"
)

type Outcome = harness.Outcome[Params, Obs]

// #region system
func System() harness.System[Params, Env, Targets, Bounds, Gains, Obs] {
	return harness.System[Params, Env, Targets, Bounds, Gains, Obs]{
		Simulate:  simulate,
		Nominal:   nominal,
		Step:      step,
		Converged: Converged,
	}
}

// Retain decays by (1-Decay) per cap-length of absence.
func simulate(th Params, env Env, _ Targets, _ []Mechanic) Obs {
	periods := env.TypicalAFKMinutes / math.Max(th.CapMinutes, 1)
	return Obs{Retain: mechanics.Clamp(th.Efficiency*math.Pow(1-th.Decay, periods), 0, 1)}
}

func nominal(th Params, _ Env, tgt Targets, _ Obs) hook.NominalTargets {
	return hook.NominalTargets{X: tgt.RetainRatio, Y: th.CapMinutes, Z: th.Decay}
}

// Efficiency carries the correction; cap and decay hold unless a hook
// adjusts them.
func step(th Params, b Bounds, g Gains, nom hook.NominalTargets, adj hook.TargetAdjust) Params {
	return Params{
		CapMinutes: mechanics.Approach(th.CapMinutes,
			mechanics.Clamp(nom.Y*adj.B, b.CMin, b.CMax), g.Cap, b.CMin, b.CMax),
		Decay: mechanics.Approach(th.Decay,
			mechanics.Clamp(nom.Z*adj.C, b.DMin, b.DMax), g.Decay, b.DMin, b.DMax),
		Efficiency: mechanics.Approach(th.Efficiency,
			mechanics.Clamp(nom.X*adj.A, b.EMin, b.EMax), g.Efficiency, b.EMin, b.EMax),
	}
}

// Converged holds when retain is within 0.02 of the ratio.
func Converged(o Obs, tgt Targets) bool {
	return mechanics.WithinAbs(o.Retain, tgt.RetainRatio, 0.02)
}

// #endregion system

func Balance(theta0 Params, env Env, tgt Targets, b Bounds, g Gains, hooks []Mechanic, maxIters int) Outcome {
	return harness.Balance(System(), theta0, env, tgt, b, g, hooks, maxIters)
}

func AuditFields(th Params, b Bounds) []audit.Field {
	return []audit.Field{
		{Name: "offline.cap_minutes", Value: th.CapMinutes, Lo: b.CMin, Hi: b.CMax},
		{Name: "offline.decay", Value: th.Decay, Lo: b.DMin, Hi: b.DMax},
		{Name: "offline.efficiency", Value: th.Efficiency, Lo: b.EMin, Hi: b.EMax},
	}
}
