package upgradecurve

import "github.com/avila-gabriel/game-balance/internal/hook"

// Params is θ for the upgrade cost curve: cost_l = Base·Growth^l·TrackMult.
type Params struct {
	Base      float64 `yaml:"base"`
	Growth    float64 `yaml:"growth"`
	TrackMult float64 `yaml:"track_mult"`
}

// Seed is the conventional starting θ.
func Seed() Params {
	return Params{Base: 10, Growth: 1.15, TrackMult: 1}
}

// Env describes one chapter of upgrades and the income that pays for them.
type Env struct {
	Levels       int     `yaml:"levels"`
	GainPerLevel float64 `yaml:"gain_per_level"`
	// RefIncome is the reference income rate forwarded from production.
	RefIncome float64 `yaml:"ref_income"`
}

// Targets is the desired per-level TTU band and level-over-level slope.
type Targets struct {
	BandLo    float64 `yaml:"band_lo"`
	BandHi    float64 `yaml:"band_hi"`
	SlopePref float64 `yaml:"slope_pref"`
}

// Bounds is the admissible range per θ field.
type Bounds struct {
	BaseMin, BaseMax     float64
	GrowthMin, GrowthMax float64
	MultMin, MultMax     float64
}

// SoftBounds returns wide, stable defaults.
func SoftBounds() Bounds {
	return Bounds{
		BaseMin: 1, BaseMax: 1e9,
		GrowthMin: 1.01, GrowthMax: 2.5,
		MultMin: 0.1, MultMax: 100,
	}
}

// Gains are the per-field smoothing coefficients.
type Gains struct {
	Base   float64
	Growth float64
	Mult   float64
}

// DefaultGains returns the usual smoothing.
func DefaultGains() Gains {
	return Gains{Base: 0.6, Growth: 0.4, Mult: 0.5}
}

// Obs summarises the curve under the reference income.
type Obs struct {
	TTUMean  float64 `yaml:"ttu_mean"`
	TTUSlope float64 `yaml:"ttu_slope"`
}

// Mechanic is a hook that can modulate this system.
type Mechanic = hook.Hook[Params, Env, Targets, Obs]
