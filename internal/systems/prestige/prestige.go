// Package prestige tunes the score required for a reset, and the reward it
// pays, so that one cycle takes the target number of minutes.
package prestige

import (
	"math"

	"github.com/avila-gabriel/game-balance/internal/audit"
	"github.com/avila-gabriel/game-balance/internal/harness"
	"github.com/avila-gabriel/game-balance/internal/hook"
	"github.com/avila-gabriel/game-balance/internal/mechanics"
)

// Outcome is the harness result for this system.
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

func simulate(th Params, env Env, _ Targets, _ []Mechanic) Obs {
	eff := env.RefIncome / (1 + 10*th.Decay)
	cycle := mechanics.Clamp(th.ReqScore/math.Max(eff, 1e-6), 0.1, 1e6)
	return Obs{
		CycleMins:  cycle,
		RewardRate: th.RewardMult / math.Max(cycle, 1e-6),
	}
}

// X is cycle*, Y is reward rate*, Z is the requirement that would have hit
// cycle* at the observed pace.
func nominal(th Params, _ Env, tgt Targets, o Obs) hook.NominalTargets {
	return hook.NominalTargets{
		X: tgt.CycleMinutes,
		Y: tgt.RewardGrowth / math.Max(tgt.CycleMinutes, 1e-6),
		Z: th.ReqScore * tgt.CycleMinutes / math.Max(o.CycleMins, 1e-9),
	}
}

func step(th Params, b Bounds, g Gains, nom hook.NominalTargets, adj hook.TargetAdjust) Params {
	rewardTarget := nom.X * nom.Y * adj.A
	decayTarget := th.Decay * adj.B
	reqTarget := nom.Z * adj.C

	return Params{
		RewardMult: mechanics.Approach(th.RewardMult,
			mechanics.Clamp(rewardTarget, b.RMin, b.RMax), g.Reward, b.RMin, b.RMax),
		Decay: mechanics.Approach(th.Decay,
			mechanics.Clamp(decayTarget, b.DMin, b.DMax), g.Decay, b.DMin, b.DMax),
		ReqScore: mechanics.Approach(th.ReqScore,
			mechanics.Clamp(reqTarget, b.QMin, b.QMax), g.Req, b.QMin, b.QMax),
	}
}

// Converged holds when the cycle is within 5% of the target.
func Converged(o Obs, tgt Targets) bool {
	return mechanics.WithinRel(o.CycleMins, tgt.CycleMinutes, 0.05, 1)
}

// #endregion system

func Balance(theta0 Params, env Env, tgt Targets, b Bounds, g Gains, hooks []Mechanic, maxIters int) Outcome {
	return harness.Balance(System(), theta0, env, tgt, b, g, hooks, maxIters)
}

func AuditFields(th Params, b Bounds) []audit.Field {
	return []audit.Field{
		{Name: "prestige.reward_mult", Value: th.RewardMult, Lo: b.RMin, Hi: b.RMax},
		{Name: "prestige.decay", Value: th.Decay, Lo: b.DMin, Hi: b.DMax},
		{Name: "prestige.req_score", Value: th.ReqScore, Lo: b.QMin, Hi: b.QMax},
	}
}
