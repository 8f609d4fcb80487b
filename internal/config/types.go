package config

// #region run
// Run is the full configuration of one balance run.
type Run struct {
	Core     CoreEnv       `mapstructure:"core" yaml:"core"`
	Curve    CurveEnv      `mapstructure:"curve" yaml:"curve"`
	Prestige PrestigeEnv   `mapstructure:"prestige" yaml:"prestige"`
	Targets  TargetsConfig `mapstructure:"targets" yaml:"targets"`
	Balance  BalanceConfig `mapstructure:"balance" yaml:"balance"`
	Draft    DraftConfig   `mapstructure:"draft" yaml:"draft"`
	Ledger   LedgerConfig  `mapstructure:"ledger" yaml:"ledger"`
}

// #endregion run

// #region sections
// CoreEnv is the production economy.
type CoreEnv struct {
	UpgradeCostBase   float64 `mapstructure:"upgrade_cost_base" yaml:"upgrade_cost_base"`
	UpgradeCostGrowth float64 `mapstructure:"upgrade_cost_growth" yaml:"upgrade_cost_growth"`
	GainPerLevel      float64 `mapstructure:"gain_per_level" yaml:"gain_per_level"`
	Leak              float64 `mapstructure:"leak" yaml:"leak"`
	StorageCap        float64 `mapstructure:"storage_cap" yaml:"storage_cap"`
}

// CurveEnv is one chapter of upgrades.
type CurveEnv struct {
	Levels       int     `mapstructure:"levels" yaml:"levels"`
	GainPerLevel float64 `mapstructure:"gain_per_level" yaml:"gain_per_level"`
}

type PrestigeEnv struct {
	SessionGoalMinutes float64 `mapstructure:"session_goal_minutes" yaml:"session_goal_minutes"`
}

// TargetsConfig mirrors idle.Targets.
type TargetsConfig struct {
	TTU            float64 `mapstructure:"ttu" yaml:"ttu"`
	Util           float64 `mapstructure:"util" yaml:"util"`
	Growth         float64 `mapstructure:"growth" yaml:"growth"`
	BandLo         float64 `mapstructure:"band_lo" yaml:"band_lo"`
	BandHi         float64 `mapstructure:"band_hi" yaml:"band_hi"`
	Slope          float64 `mapstructure:"slope" yaml:"slope"`
	CycleMinutes   float64 `mapstructure:"cycle_minutes" yaml:"cycle_minutes"`
	PrestigeGrowth float64 `mapstructure:"prestige_growth" yaml:"prestige_growth"`
	RetainRatio    float64 `mapstructure:"retain_ratio" yaml:"retain_ratio"`
	AFKMinutes     float64 `mapstructure:"afk_minutes" yaml:"afk_minutes"`
}

type BalanceConfig struct {
	MaxItersPerSystem int `mapstructure:"max_iters_per_system" yaml:"max_iters_per_system"`
	OuterIters        int `mapstructure:"outer_iters" yaml:"outer_iters"`
}

// DraftConfig controls the optional pre-run draft. Pick < 0 skips it.
type DraftConfig struct {
	Options        int    `mapstructure:"options" yaml:"options"`
	Rerolls        int    `mapstructure:"rerolls" yaml:"rerolls"`
	PrioritizeTier bool   `mapstructure:"prioritize_tier" yaml:"prioritize_tier"`
	Seed           uint64 `mapstructure:"seed" yaml:"seed"`
	Pick           int    `mapstructure:"pick" yaml:"pick"`
}

// LedgerConfig points at the sqlite archive. An empty path disables it.
type LedgerConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// #endregion sections
