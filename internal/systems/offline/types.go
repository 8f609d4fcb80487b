package offline

import "github.com/avila-gabriel/game-balance/internal/hook"

// Params is θ for offline accumulation.
type Params struct {
	CapMinutes float64 `yaml:"cap_minutes"`
	Decay      float64 `yaml:"decay"`
	Efficiency float64 `yaml:"efficiency"`
}

// Seed is the conventional starting θ: a 12h cap at 60% efficiency.
func Seed() Params {
	return Params{CapMinutes: 12 * 60, Decay: 0.02, Efficiency: 0.6}
}

type Env struct {
	TypicalAFKMinutes float64 `yaml:"typical_afk_minutes"`
}

type Targets struct {
	// RetainRatio is the wanted offline/online income ratio for a typical AFK.
	RetainRatio float64 `yaml:"retain_ratio"`
}

type Bounds struct {
	CMin, CMax float64
	DMin, DMax float64
	EMin, EMax float64
}

func SoftBounds() Bounds {
	return Bounds{CMin: 10, CMax: 72 * 60, DMin: 0, DMax: 0.1, EMin: 0, EMax: 1}
}

type Gains struct {
	Cap        float64
	Decay      float64
	Efficiency float64
}

func DefaultGains() Gains {
	return Gains{Cap: 0.6, Decay: 0.4, Efficiency: 0.6}
}

type Obs struct {
	Retain float64 `yaml:"retain"`
}

// Mechanic is a hook that can modulate this system.
type Mechanic = hook.Hook[Params, Env, Targets, Obs]
