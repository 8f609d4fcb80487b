package production

import (
	"github.com/avila-gabriel/game-balance/internal/hook"
	"github.com/avila-gabriel/game-balance/internal/mechanics"
)

// #region income-mult
// IncomeMult scales income by a fixed factor.
type IncomeMult struct {
	Nop
	Mult float64
}

// IncomeMultiplier returns Mult.
func (m IncomeMult) IncomeMultiplier(float64, Params, Env) float64 { return m.Mult }

// #endregion income-mult

// #region fee-boost
// FeeBoost raises income with the amount banked in the previous iteration,
// following mechanics.FeeMultiplier. It keeps state across iterations of a
// single Balance call, so build a fresh one per call.
type FeeBoost struct {
	Nop
	Slope   float64
	MaxMult float64

	banked float64
}

// IncomeMultiplier applies the fee curve to the last observed storage.
func (f *FeeBoost) IncomeMultiplier(base float64, _ Params, _ Env) float64 {
	return mechanics.FeeMultiplier(f.banked, base, f.Slope, f.MaxMult)
}

// OnObserve records the steady storage of the latest iteration.
func (f *FeeBoost) OnObserve(o Obs, _ Params, _ Env, _ Targets) {
	f.banked = o.Storage
}

// Banked returns the storage seen by the last OnObserve.
func (f *FeeBoost) Banked() float64 { return f.banked }

// #endregion fee-boost

// #region nudges
// UtilNudge raises the spend target by Add (0.05 = +5%).
type UtilNudge struct {
	Nop
	Add float64
}

// AdjustTargets scales the spend goal.
func (u UtilNudge) AdjustTargets(Params, Env, Targets, hook.NominalTargets) hook.TargetAdjust {
	return hook.TargetAdjust{A: 1, B: 1 + u.Add, C: 1}
}

// GrowthNudge scales the multiplier goal by Mult.
type GrowthNudge struct {
	Nop
	Mult float64
}

// AdjustTargets scales the multiplier goal.
func (g GrowthNudge) AdjustTargets(Params, Env, Targets, hook.NominalTargets) hook.TargetAdjust {
	return hook.TargetAdjust{A: 1, B: 1, C: g.Mult}
}

// #endregion nudges
