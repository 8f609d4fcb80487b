// Package config loads the configuration of a balance run from defaults, an
// optional file and BALANCE_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/viper"

	"github.com/avila-gabriel/game-balance/internal/draft"
	"github.com/avila-gabriel/game-balance/internal/genre/idle"
)

// EnvPrefix prefixes environment overrides, e.g. BALANCE_TARGETS_TTU.
const EnvPrefix = "BALANCE"

// #region load
// Load reads configuration. path wins over $BALANCE_CONFIG; with neither,
// only defaults and environment overrides apply. The file type follows
// the extension (yaml, toml, json).
func Load(path string) (Run, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Run{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var r Run
	if err := v.Unmarshal(&r); err != nil {
		return Run{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Run{}, fmt.Errorf("invalid config: %w", err)
	}
	return r, nil
}

// Default returns the configuration Load yields with no file or overrides.
func Default() Run {
	v := viper.New()
	setDefaults(v)
	var r Run
	// defaults are static and always decode
	_ = v.Unmarshal(&r)
	return r
}

func setDefaults(v *viper.Viper) {
	envs := idle.DefaultEnvs()
	tgt := idle.DefaultTargets()
	cfg := idle.DefaultConfig()
	dc := draft.DefaultConfig()

	v.SetDefault("core.upgrade_cost_base", envs.Core.UpgradeCostBase)
	v.SetDefault("core.upgrade_cost_growth", envs.Core.UpgradeCostGrowth)
	v.SetDefault("core.gain_per_level", envs.Core.GainPerLevel)
	v.SetDefault("core.leak", envs.Core.Leak)
	v.SetDefault("core.storage_cap", envs.Core.StorageCap)

	v.SetDefault("curve.levels", envs.Curve.Levels)
	v.SetDefault("curve.gain_per_level", envs.Curve.GainPerLevel)

	v.SetDefault("prestige.session_goal_minutes", envs.Prestige.SessionGoalMinutes)

	v.SetDefault("targets.ttu", tgt.TTUTargetSecs)
	v.SetDefault("targets.util", tgt.UtilTarget)
	v.SetDefault("targets.growth", tgt.GrowthTarget)
	v.SetDefault("targets.band_lo", tgt.TTUBandLo)
	v.SetDefault("targets.band_hi", tgt.TTUBandHi)
	v.SetDefault("targets.slope", tgt.SlopePref)
	v.SetDefault("targets.cycle_minutes", tgt.PrestigeCycleMinutes)
	v.SetDefault("targets.prestige_growth", tgt.PrestigeGrowth)
	v.SetDefault("targets.retain_ratio", tgt.OfflineRetainRatio)
	v.SetDefault("targets.afk_minutes", tgt.TypicalAFKMinutes)

	v.SetDefault("balance.max_iters_per_system", cfg.MaxItersPerSystem)
	v.SetDefault("balance.outer_iters", cfg.OuterIters)

	v.SetDefault("draft.options", dc.OptionsPerRoll)
	v.SetDefault("draft.rerolls", dc.RerollsPerDraft)
	v.SetDefault("draft.prioritize_tier", dc.PrioritizeTier)
	v.SetDefault("draft.seed", uint64(12345))
	v.SetDefault("draft.pick", -1)

	v.SetDefault("ledger.path", "")
}

// #endregion load

// #region validate
// Validate returns the first invalid value.
func (r Run) Validate() error {
	if r.Core.UpgradeCostBase <= 0 {
		return fmt.Errorf("core.upgrade_cost_base must be > 0, got %g", r.Core.UpgradeCostBase)
	}
	if r.Core.UpgradeCostGrowth < 1 {
		return fmt.Errorf("core.upgrade_cost_growth must be >= 1, got %g", r.Core.UpgradeCostGrowth)
	}
	if r.Core.GainPerLevel <= 0 {
		return fmt.Errorf("core.gain_per_level must be > 0, got %g", r.Core.GainPerLevel)
	}
	if r.Core.Leak < 0 || r.Core.StorageCap < 0 {
		return fmt.Errorf("core.leak and core.storage_cap must be >= 0, got %g and %g", r.Core.Leak, r.Core.StorageCap)
	}
	if r.Curve.Levels < 0 {
		return fmt.Errorf("curve.levels must be >= 0, got %d", r.Curve.Levels)
	}
	if r.Targets.TTU <= 0 {
		return fmt.Errorf("targets.ttu must be > 0, got %g", r.Targets.TTU)
	}
	if r.Targets.Util < 0 || r.Targets.Util > 1 {
		return fmt.Errorf("targets.util must be between 0 and 1, got %.2f", r.Targets.Util)
	}
	if r.Targets.BandLo > r.Targets.BandHi {
		return fmt.Errorf("targets.band_lo (%g) must be <= targets.band_hi (%g)", r.Targets.BandLo, r.Targets.BandHi)
	}
	if r.Targets.RetainRatio < 0 || r.Targets.RetainRatio > 1 {
		return fmt.Errorf("targets.retain_ratio must be between 0 and 1, got %.2f", r.Targets.RetainRatio)
	}
	if r.Balance.MaxItersPerSystem < 0 {
		return fmt.Errorf("balance.max_iters_per_system must be >= 0, got %d", r.Balance.MaxItersPerSystem)
	}
	if r.Balance.OuterIters < 0 {
		return fmt.Errorf("balance.outer_iters must be >= 0, got %d", r.Balance.OuterIters)
	}
	if r.Draft.Options < 0 || r.Draft.Rerolls < 0 {
		return fmt.Errorf("draft.options and draft.rerolls must be >= 0, got %d and %d", r.Draft.Options, r.Draft.Rerolls)
	}
	return nil
}

// #endregion validate

// #region convert
// Envs returns the idle environments.
func (r Run) Envs() idle.Envs {
	return idle.Envs{
		Core:     productionEnv(r.Core),
		Curve:    curveEnv(r.Curve),
		Prestige: prestigeEnv(r.Prestige),
	}
}

// IdleTargets returns the idle targets.
func (r Run) IdleTargets() idle.Targets {
	t := r.Targets
	return idle.Targets{
		TTUTargetSecs:        t.TTU,
		UtilTarget:           t.Util,
		GrowthTarget:         t.Growth,
		TTUBandLo:            t.BandLo,
		TTUBandHi:            t.BandHi,
		SlopePref:            t.Slope,
		PrestigeCycleMinutes: t.CycleMinutes,
		PrestigeGrowth:       t.PrestigeGrowth,
		OfflineRetainRatio:   t.RetainRatio,
		TypicalAFKMinutes:    t.AFKMinutes,
	}
}

// IdleConfig returns the orchestration limits with the given logger.
func (r Run) IdleConfig(log logr.Logger) idle.Config {
	return idle.Config{
		MaxItersPerSystem: r.Balance.MaxItersPerSystem,
		OuterIters:        r.Balance.OuterIters,
		Logger:            log,
	}
}

// DraftConfig returns the draft offer shape.
func (r Run) DraftConfig() draft.Config {
	return draft.Config{
		OptionsPerRoll:  r.Draft.Options,
		RerollsPerDraft: r.Draft.Rerolls,
		PrioritizeTier:  r.Draft.PrioritizeTier,
	}
}

// #endregion convert
