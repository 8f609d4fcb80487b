package idle

import (
	"github.com/go-logr/logr"

	"github.com/avila-gabriel/game-balance/internal/outer"
	"github.com/avila-gabriel/game-balance/internal/systems/offline"
	"github.com/avila-gabriel/game-balance/internal/systems/prestige"
	"github.com/avila-gabriel/game-balance/internal/systems/production"
	"github.com/avila-gabriel/game-balance/internal/systems/upgradecurve"
)

// #region targets
// Targets are the cross-system goals of an idle game.
type Targets struct {
	// production
	TTUTargetSecs float64 `yaml:"ttu_target_secs"`
	UtilTarget    float64 `yaml:"util_target"`
	GrowthTarget  float64 `yaml:"growth_target"`

	// upgrade curve
	TTUBandLo float64 `yaml:"ttu_band_lo"`
	TTUBandHi float64 `yaml:"ttu_band_hi"`
	SlopePref float64 `yaml:"slope_pref"`

	// prestige
	PrestigeCycleMinutes float64 `yaml:"prestige_cycle_minutes"`
	PrestigeGrowth       float64 `yaml:"prestige_growth"`

	// offline
	OfflineRetainRatio float64 `yaml:"offline_retain_ratio"`
	TypicalAFKMinutes  float64 `yaml:"typical_afk_minutes"`
}

// DefaultTargets returns the reference idle feel.
func DefaultTargets() Targets {
	return Targets{
		TTUTargetSecs:        30,
		UtilTarget:           0.90,
		GrowthTarget:         5.0,
		TTUBandLo:            7.5,
		TTUBandHi:            9.5,
		SlopePref:            1.15,
		PrestigeCycleMinutes: 20,
		PrestigeGrowth:       10,
		OfflineRetainRatio:   0.70,
		TypicalAFKMinutes:    180,
	}
}

// #endregion targets

// #region envs
// Envs holds the per-system environments. The reference income fields of
// Curve and Prestige are overwritten every pass from the forwarded signal.
type Envs struct {
	Core     production.Env
	Curve    upgradecurve.Env
	Prestige prestige.Env
}

// DefaultEnvs returns the reference idle economy.
func DefaultEnvs() Envs {
	return Envs{
		Core: production.Env{
			UpgradeCostBase:   10,
			UpgradeCostGrowth: 1.15,
			GainPerLevel:      0.05,
			Leak:              0.02,
			StorageCap:        100_000,
		},
		Curve:    upgradecurve.Env{Levels: 10, GainPerLevel: 0.05},
		Prestige: prestige.Env{SessionGoalMinutes: 20},
	}
}

// #endregion envs

// #region config
// Config bounds the work of one orchestration run.
type Config struct {
	MaxItersPerSystem int
	OuterIters        int
	// Logger receives per-pass progress. The zero value discards.
	Logger logr.Logger
}

// DefaultConfig returns 120000 iterations per system and two passes.
func DefaultConfig() Config {
	return Config{MaxItersPerSystem: 120_000, OuterIters: 2}
}

// #endregion config

// #region hooks
// Hooks are externally supplied mechanics. Only the production system
// accepts them, and only on the first pass.
type Hooks struct {
	Core []production.Mechanic
}

// #endregion hooks

// #region outcome
// Pass is the result of one orchestration pass.
type Pass struct {
	Index int `yaml:"index"`
	// RefIncome is the reference income the downstream systems used.
	RefIncome float64              `yaml:"ref_income"`
	Core      production.Outcome   `yaml:"core"`
	Curve     upgradecurve.Outcome `yaml:"curve"`
	Prestige  prestige.Outcome     `yaml:"prestige"`
	Offline   offline.Outcome      `yaml:"offline"`
}

// Converged reports whether every system in the pass converged.
func (p Pass) Converged() bool {
	return p.Core.Converged && p.Curve.Converged && p.Prestige.Converged && p.Offline.Converged
}

// Outcome is the result of a full run: every pass in order and the signals
// left after the last one.
type Outcome struct {
	Passes  []Pass        `yaml:"passes"`
	Signals outer.Signals `yaml:"signals"`
}

// Last returns the final pass and false when no pass ran.
func (o Outcome) Last() (Pass, bool) {
	if len(o.Passes) == 0 {
		return Pass{}, false
	}
	return o.Passes[len(o.Passes)-1], true
}

// Converged reports whether the final pass fully converged.
func (o Outcome) Converged() bool {
	last, ok := o.Last()
	return ok && last.Converged()
}

// #endregion outcome
