package production

import "github.com/avila-gabriel/game-balance/internal/hook"

// #region params
// Params is θ for the production/spend loop.
type Params struct {
	GenPerSec  float64 `yaml:"gen_per_sec"`
	SpendRate  float64 `yaml:"spend_rate"`
	Multiplier float64 `yaml:"multiplier"`
}

// Income is the un-hooked reference rate gen·mult, floored at zero.
func (p Params) Income() float64 {
	return max(p.GenPerSec*p.Multiplier, 0)
}

// Seed is the conventional starting θ.
func Seed() Params {
	return Params{GenPerSec: 10, SpendRate: 10, Multiplier: 1}
}

// #endregion params

// #region env
// Env holds the upgrade economy the loop plays against.
type Env struct {
	UpgradeCostBase   float64 `yaml:"upgrade_cost_base"`
	UpgradeCostGrowth float64 `yaml:"upgrade_cost_growth"`
	GainPerLevel      float64 `yaml:"gain_per_level"`
	Leak              float64 `yaml:"leak"`
	StorageCap        float64 `yaml:"storage_cap"`
}

// #endregion env

// #region targets
// Targets are the desired feel: seconds to next upgrade, spend utilisation
// and growth multiplier.
type Targets struct {
	TTU    float64 `yaml:"ttu"`
	Util   float64 `yaml:"util"`
	Growth float64 `yaml:"growth"`
}

// #endregion targets

// #region bounds
// Bounds is the admissible range per θ field.
type Bounds struct {
	GenMin, GenMax float64
	SpdMin, SpdMax float64
	MulMin, MulMax float64
}

// SoftBounds returns wide, stable defaults.
func SoftBounds() Bounds {
	return Bounds{
		GenMin: 0.01, GenMax: 1e6,
		SpdMin: 0, SpdMax: 1e9,
		MulMin: 0.1, MulMax: 1e6,
	}
}

// #endregion bounds

// #region gains
// Gains are the per-field smoothing coefficients.
type Gains struct {
	TTU  float64
	Util float64
	Grow float64
}

// DefaultGains returns the usual smoothing.
func DefaultGains() Gains {
	return Gains{TTU: 0.6, Util: 0.6, Grow: 0.5}
}

// #endregion gains

// #region obs
// Obs is what one simulation of θ yields.
type Obs struct {
	TTU     float64 `yaml:"ttu"`
	Util    float64 `yaml:"util"`
	Growth  float64 `yaml:"growth"`
	Surplus float64 `yaml:"surplus"`
	// Storage is the steady banked amount under Env.Leak and Env.StorageCap.
	Storage float64 `yaml:"storage"`
}

// #endregion obs

// Mechanic is a hook that can modulate this system.
type Mechanic = hook.Hook[Params, Env, Targets, Obs]

// Nop is embedded by mechanics that override only some capabilities.
type Nop = hook.Nop[Params, Env, Targets, Obs]
