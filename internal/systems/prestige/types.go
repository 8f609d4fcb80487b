package prestige

import "github.com/avila-gabriel/game-balance/internal/hook"

// Params is θ for the reset/prestige cycle.
type Params struct {
	RewardMult float64 `yaml:"reward_mult"`
	Decay      float64 `yaml:"decay"`
	ReqScore   float64 `yaml:"req_score"`
}

// Seed is the conventional starting θ.
func Seed() Params {
	return Params{RewardMult: 1, Decay: 0.02, ReqScore: 1000}
}

type Env struct {
	SessionGoalMinutes float64 `yaml:"session_goal_minutes"`
	// RefIncome is the reference income rate forwarded from production.
	RefIncome float64 `yaml:"ref_income"`
}

type Targets struct {
	CycleMinutes float64 `yaml:"cycle_minutes"`
	// RewardGrowth is the net multiplier growth wanted per cycle.
	RewardGrowth float64 `yaml:"reward_growth"`
}

type Bounds struct {
	RMin, RMax float64
	DMin, DMax float64
	QMin, QMax float64
}

func SoftBounds() Bounds {
	return Bounds{RMin: 1, RMax: 1e6, DMin: 0, DMax: 0.5, QMin: 1, QMax: 1e12}
}

type Gains struct {
	Reward float64
	Decay  float64
	Req    float64
}

func DefaultGains() Gains {
	return Gains{Reward: 0.6, Decay: 0.4, Req: 0.6}
}

type Obs struct {
	CycleMins  float64 `yaml:"cycle_mins"`
	RewardRate float64 `yaml:"reward_rate"`
}

// Mechanic is a hook that can modulate this system.
type Mechanic = hook.Hook[Params, Env, Targets, Obs]
