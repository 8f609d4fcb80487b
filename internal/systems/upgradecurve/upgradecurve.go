// Package upgradecurve paces a chapter of upgrades so that the time to buy
// each level stays inside a band and grows at a preferred rate.
package upgradecurve

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/avila-gabriel/game-balance/internal/audit"
	"github.com/avila-gabriel/game-balance/internal/harness"
	"github.com/avila-gabriel/game-balance/internal/hook"
	"github.com/avila-gabriel/game-balance/internal/mechanics"
)

// SavingShare is the fraction of income assumed to be saved toward the next
// level (a 90% spend utilisation).
const SavingShare = 0.1

// Outcome is the harness result for this system.
type Outcome = harness.Outcome[Params, Obs]

// #region system
// System returns the four functions of the upgrade curve loop.
func System() harness.System[Params, Env, Targets, Bounds, Gains, Obs] {
	return harness.System[Params, Env, Targets, Bounds, Gains, Obs]{
		Simulate:  simulate,
		Nominal:   nominal,
		Step:      step,
		Converged: Converged,
	}
}

// levelTTUs returns the seconds needed to afford each level.
func levelTTUs(th Params, env Env) []float64 {
	saving := math.Max(SavingShare*env.RefIncome, 1e-9)
	ttus := make([]float64, env.Levels)
	for l := range ttus {
		cost := th.Base * math.Pow(th.Growth, float64(l)) * th.TrackMult
		ttus[l] = mechanics.Clamp(cost/saving, 0, 86_400)
	}
	return ttus
}

func simulate(th Params, env Env, _ Targets, _ []Mechanic) Obs {
	if env.Levels <= 0 {
		return Obs{TTUMean: 0, TTUSlope: 1}
	}
	ttus := levelTTUs(th, env)
	o := Obs{TTUMean: stat.Mean(ttus, nil), TTUSlope: 1}
	if len(ttus) > 1 {
		ratios := make([]float64, len(ttus)-1)
		for i := 1; i < len(ttus); i++ {
			ratios[i-1] = mechanics.Clamp(ttus[i]/ttus[i-1], 0.1, 10)
		}
		o.TTUSlope = stat.Mean(ratios, nil)
	}
	return o
}

// nominal scales Base so the mean lands mid-band, and aims Growth at the
// preferred slope. X is base*, Y is growth*, Z is track*.
func nominal(th Params, _ Env, tgt Targets, o Obs) hook.NominalTargets {
	mid := 0.5 * (tgt.BandLo + tgt.BandHi)
	return hook.NominalTargets{
		X: th.Base * mid / math.Max(o.TTUMean, 1e-9),
		Y: math.Max(tgt.SlopePref, 1),
		Z: th.TrackMult,
	}
}

func step(th Params, b Bounds, g Gains, nom hook.NominalTargets, adj hook.TargetAdjust) Params {
	return Params{
		Base: mechanics.Approach(th.Base,
			mechanics.Clamp(nom.X*adj.A, b.BaseMin, b.BaseMax), g.Base, b.BaseMin, b.BaseMax),
		Growth: mechanics.Approach(th.Growth,
			mechanics.Clamp(nom.Y*adj.B, b.GrowthMin, b.GrowthMax), g.Growth, b.GrowthMin, b.GrowthMax),
		TrackMult: mechanics.Approach(th.TrackMult,
			mechanics.Clamp(nom.Z*adj.C, b.MultMin, b.MultMax), g.Mult, b.MultMin, b.MultMax),
	}
}

// Converged holds when the mean TTU is inside the band and the slope is
// within 0.05 of the preference.
func Converged(o Obs, tgt Targets) bool {
	return mechanics.InRange(o.TTUMean, tgt.BandLo, tgt.BandHi) &&
		mechanics.WithinAbs(o.TTUSlope, tgt.SlopePref, 0.05)
}

// #endregion system

// Balance runs the loop from theta0 with the given hooks.
func Balance(theta0 Params, env Env, tgt Targets, b Bounds, g Gains, hooks []Mechanic, maxIters int) Outcome {
	return harness.Balance(System(), theta0, env, tgt, b, g, hooks, maxIters)
}

// AuditFields lists θ against its bounds for post-run checks.
func AuditFields(th Params, b Bounds) []audit.Field {
	return []audit.Field{
		{Name: "curve.base", Value: th.Base, Lo: b.BaseMin, Hi: b.BaseMax},
		{Name: "curve.growth", Value: th.Growth, Lo: b.GrowthMin, Hi: b.GrowthMax},
		{Name: "curve.track_mult", Value: th.TrackMult, Lo: b.MultMin, Hi: b.MultMax},
	}
}
