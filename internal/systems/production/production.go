// Package production balances a generate/spend economy toward a target
// time-to-upgrade, spend utilisation and growth multiplier.
package production

import (
	"math"

	"github.com/avila-gabriel/game-balance/internal/audit"
	"github.com/avila-gabriel/game-balance/internal/harness"
	"github.com/avila-gabriel/game-balance/internal/hook"
	"github.com/avila-gabriel/game-balance/internal/mechanics"
)

// MaxTTU caps the time-to-upgrade observation at one day.
const MaxTTU = 86_400.0

// Outcome is the harness result for this system.
type Outcome = harness.Outcome[Params, Obs]

// #region system
// System returns the four functions of the production/spend loop.
func System() harness.System[Params, Env, Targets, Bounds, Gains, Obs] {
	return harness.System[Params, Env, Targets, Bounds, Gains, Obs]{
		Simulate:  simulate,
		Nominal:   nominal,
		Step:      step,
		Converged: Converged,
	}
}

// nextCost is the price of the upgrade after the level implied by θ.
func nextCost(th Params, env Env) float64 {
	level := math.Max(th.Multiplier/env.GainPerLevel, 0)
	return env.UpgradeCostBase * math.Pow(env.UpgradeCostGrowth, level)
}

func simulate(th Params, env Env, tgt Targets, hooks []Mechanic) Obs {
	income := hook.ApplyIncome(hooks, th.Income(), th, env)
	spend := mechanics.Clamp(math.Min(th.SpendRate, income)*mechanics.EconCap(income, 1), 0, income)
	surplus := income - spend

	util := 0.0
	if income > 0 {
		util = mechanics.Clamp(spend/income, 0, 1)
	}

	// Saving never drops below the share the utilisation target leaves free.
	saveFloor := mechanics.Clamp(1-tgt.Util, 0, 1)
	saving := math.Max(math.Max(income-spend, income*saveFloor), 1e-9)
	ttu := mechanics.Clamp(nextCost(th, env)/saving, 0, MaxTTU)

	growth := th.Multiplier
	if income > 0 {
		growth = th.Multiplier * (1 + math.Max(surplus, 0)/income)
	}

	return Obs{
		TTU:     ttu,
		Util:    util,
		Growth:  growth,
		Surplus: surplus,
		Storage: mechanics.StorageSteady(surplus, env.Leak, env.StorageCap),
	}
}

// nominal aims for the income that reaches the next upgrade in TTU seconds
// while spending Util of it, and nudges the multiplier toward Growth.
// X is income*, Y is spend*, Z is mult*.
func nominal(th Params, env Env, tgt Targets, o Obs) hook.NominalTargets {
	saveFloor := mechanics.Clamp(1-tgt.Util, 1e-6, 1)
	savingStar := math.Max(nextCost(th, env)/math.Max(tgt.TTU, 1e-6), 0)
	incomeStar := math.Max(savingStar/saveFloor, 1e-9)

	return hook.NominalTargets{
		X: incomeStar,
		Y: tgt.Util * incomeStar,
		Z: th.Multiplier * mechanics.Clamp(tgt.Growth/math.Max(o.Growth, 1e-9), 0.5, 2),
	}
}

func step(th Params, b Bounds, g Gains, nom hook.NominalTargets, adj hook.TargetAdjust) Params {
	genTarget := nom.X / math.Max(th.Multiplier, 1e-9) * adj.A
	spendTarget := nom.Y * adj.B
	multTarget := nom.Z * adj.C

	return Params{
		GenPerSec: mechanics.Approach(th.GenPerSec,
			mechanics.Clamp(genTarget, b.GenMin, b.GenMax), g.TTU, b.GenMin, b.GenMax),
		SpendRate: mechanics.Approach(th.SpendRate,
			mechanics.Clamp(spendTarget, b.SpdMin, b.SpdMax), g.Util, b.SpdMin, b.SpdMax),
		Multiplier: mechanics.Approach(th.Multiplier,
			mechanics.Clamp(multTarget, b.MulMin, b.MulMax), g.Grow, b.MulMin, b.MulMax),
	}
}

// Converged holds when TTU and growth are within 2% and utilisation within
// one point of their targets.
func Converged(o Obs, tgt Targets) bool {
	return mechanics.WithinRel(o.TTU, tgt.TTU, 0.02, 1) &&
		mechanics.WithinAbs(o.Util, tgt.Util, 0.01) &&
		mechanics.WithinRel(o.Growth, tgt.Growth, 0.02, 1)
}

// #endregion system

// #region balance
// Balance runs the loop from theta0 with the given hooks.
func Balance(theta0 Params, env Env, tgt Targets, b Bounds, g Gains, hooks []Mechanic, maxIters int) Outcome {
	return harness.Balance(System(), theta0, env, tgt, b, g, hooks, maxIters)
}

// QuickBalance runs from Seed with soft bounds, default gains, no hooks and
// 120000 iterations.
func QuickBalance(env Env, tgt Targets) Outcome {
	return Balance(Seed(), env, tgt, SoftBounds(), DefaultGains(), nil, 120_000)
}

// #endregion balance

// AuditFields lists θ against its bounds for post-run checks.
func AuditFields(th Params, b Bounds) []audit.Field {
	return []audit.Field{
		{Name: "production.gen_per_sec", Value: th.GenPerSec, Lo: b.GenMin, Hi: b.GenMax},
		{Name: "production.spend_rate", Value: th.SpendRate, Lo: b.SpdMin, Hi: b.SpdMax},
		{Name: "production.multiplier", Value: th.Multiplier, Lo: b.MulMin, Hi: b.MulMax},
	}
}
