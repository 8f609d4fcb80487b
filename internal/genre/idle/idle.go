// Package idle orchestrates the production, upgrade curve, prestige and
// offline systems of an idle game over a fixed number of passes.
//
// Each pass runs production first. Its income becomes the reference income
// read by the upgrade curve and prestige systems, and offline runs last on
// its own. Every system resumes from the θ it reached in the previous pass.
//
// Hooks supplied for production are consumed by the first pass only: hook
// instances are not copyable and may carry state, so later passes run
// production without them. A multi-pass run therefore ends on the un-hooked
// equilibrium for production.
package idle

import (
	"github.com/avila-gabriel/game-balance/internal/hook"
	"github.com/avila-gabriel/game-balance/internal/outer"
	"github.com/avila-gabriel/game-balance/internal/systems/offline"
	"github.com/avila-gabriel/game-balance/internal/systems/prestige"
	"github.com/avila-gabriel/game-balance/internal/systems/production"
	"github.com/avila-gabriel/game-balance/internal/systems/upgradecurve"
)

// #region balance
// Balance runs cfg.OuterIters passes.
func Balance(envs Envs, tgt Targets, cfg Config, hooks Hooks) Outcome {
	log := cfg.Logger.WithName("idle")

	core := production.Seed()
	curve := upgradecurve.Seed()
	prest := prestige.Seed()
	off := offline.Seed()

	coreHooks := hook.NewOnce(hooks.Core)

	step := func(pass int, in outer.Signals) (outer.Signals, Pass) {
		// 1. production, with injected hooks on the first pass only
		coreOut := production.Balance(core, envs.Core,
			production.Targets{TTU: tgt.TTUTargetSecs, Util: tgt.UtilTarget, Growth: tgt.GrowthTarget},
			production.SoftBounds(), production.DefaultGains(),
			coreHooks.Take(), cfg.MaxItersPerSystem)
		core = coreOut.Theta
		log.V(1).Info("system balanced", "pass", pass, "system", "production",
			"iters", coreOut.Iters, "converged", coreOut.Converged)

		fresh := coreOut.Theta.Income()
		ref := fresh
		if in.RefIncome > 0 {
			ref = in.RefIncome
		}

		// 2. upgrade curve, reading the reference income
		curveEnv := envs.Curve
		curveEnv.RefIncome = ref
		curveOut := upgradecurve.Balance(curve, curveEnv,
			upgradecurve.Targets{BandLo: tgt.TTUBandLo, BandHi: tgt.TTUBandHi, SlopePref: tgt.SlopePref},
			upgradecurve.SoftBounds(), upgradecurve.DefaultGains(), nil, cfg.MaxItersPerSystem)
		curve = curveOut.Theta
		log.V(1).Info("system balanced", "pass", pass, "system", "upgradecurve",
			"iters", curveOut.Iters, "converged", curveOut.Converged)

		// 3. prestige, reading the reference income
		prestEnv := envs.Prestige
		prestEnv.RefIncome = ref
		prestOut := prestige.Balance(prest, prestEnv,
			prestige.Targets{CycleMinutes: tgt.PrestigeCycleMinutes, RewardGrowth: tgt.PrestigeGrowth},
			prestige.SoftBounds(), prestige.DefaultGains(), nil, cfg.MaxItersPerSystem)
		prest = prestOut.Theta
		log.V(1).Info("system balanced", "pass", pass, "system", "prestige",
			"iters", prestOut.Iters, "converged", prestOut.Converged)

		// 4. offline, independent of the signal
		offOut := offline.Balance(off, offline.Env{TypicalAFKMinutes: tgt.TypicalAFKMinutes},
			offline.Targets{RetainRatio: tgt.OfflineRetainRatio},
			offline.SoftBounds(), offline.DefaultGains(), nil, cfg.MaxItersPerSystem)
		off = offOut.Theta
		log.V(1).Info("system balanced", "pass", pass, "system", "offline",
			"iters", offOut.Iters, "converged", offOut.Converged)

		p := Pass{
			Index:     pass,
			RefIncome: ref,
			Core:      coreOut,
			Curve:     curveOut,
			Prestige:  prestOut,
			Offline:   offOut,
		}
		log.Info("pass complete", "pass", pass, "refIncome", ref, "nextRefIncome", fresh,
			"converged", p.Converged())

		// the next pass reads this pass's fresh production income
		return outer.Signals{RefIncome: fresh}, p
	}

	signals, passes := outer.Run(outer.Signals{}, cfg.OuterIters, step)
	return Outcome{Passes: passes, Signals: signals}
}

// #endregion balance
