package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avila-gabriel/game-balance/internal/audit"
	"github.com/avila-gabriel/game-balance/internal/systems/production"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string                  `json:"description"`
	Config          FixtureConfig           `json:"config"`
	Scenarios       []FixtureScenario       `json:"scenarios"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureParams mirrors production.Params with JSON tags.
type FixtureParams struct {
	GenPerSec  float64 `json:"gen_per_sec"`
	SpendRate  float64 `json:"spend_rate"`
	Multiplier float64 `json:"multiplier"`
}

// FixtureEnv mirrors production.Env with JSON tags.
type FixtureEnv struct {
	UpgradeCostBase   float64 `json:"upgrade_cost_base"`
	UpgradeCostGrowth float64 `json:"upgrade_cost_growth"`
	GainPerLevel      float64 `json:"gain_per_level"`
	Leak              float64 `json:"leak"`
	StorageCap        float64 `json:"storage_cap"`
}

// FixtureTargets mirrors production.Targets with JSON tags.
type FixtureTargets struct {
	TTU    float64 `json:"ttu"`
	Util   float64 `json:"util"`
	Growth float64 `json:"growth"`
}

// FixtureScenario is one scenario. A missing theta0 starts from the seed;
// income_mult, when non-zero, attaches a fixed income multiplier hook.
type FixtureScenario struct {
	Name       string         `json:"name"`
	Theta0     *FixtureParams `json:"theta0,omitempty"`
	Env        FixtureEnv     `json:"env"`
	Targets    FixtureTargets `json:"targets"`
	IncomeMult float64        `json:"income_mult,omitempty"`
	MaxIters   int            `json:"max_iters,omitempty"`
}

// FixtureExpectedResult captures the expected action per scenario.
type FixtureExpectedResult struct {
	Name   string `json:"name"`
	Action string `json:"action"`
}

// FixtureConfig overrides parts of DefaultReplayConfig.
type FixtureConfig struct {
	MaxIters         int  `json:"max_iters,omitempty"`
	RequireConverged bool `json:"require_converged,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToScenario converts a FixtureScenario to a domain Scenario. Each call
// builds new hook instances.
func (fs *FixtureScenario) ToScenario() Scenario {
	theta := production.Seed()
	if fs.Theta0 != nil {
		theta = production.Params{
			GenPerSec:  fs.Theta0.GenPerSec,
			SpendRate:  fs.Theta0.SpendRate,
			Multiplier: fs.Theta0.Multiplier,
		}
	}
	var hooks []production.Mechanic
	if fs.IncomeMult != 0 {
		hooks = append(hooks, production.IncomeMult{Mult: fs.IncomeMult})
	}
	return Scenario{
		Name:   fs.Name,
		Theta0: theta,
		Env: production.Env{
			UpgradeCostBase:   fs.Env.UpgradeCostBase,
			UpgradeCostGrowth: fs.Env.UpgradeCostGrowth,
			GainPerLevel:      fs.Env.GainPerLevel,
			Leak:              fs.Env.Leak,
			StorageCap:        fs.Env.StorageCap,
		},
		Targets: production.Targets{
			TTU:    fs.Targets.TTU,
			Util:   fs.Targets.Util,
			Growth: fs.Targets.Growth,
		},
		Hooks:    hooks,
		MaxIters: fs.MaxIters,
	}
}

// ToScenarios converts every fixture scenario in order.
func (f *Fixture) ToScenarios() []Scenario {
	out := make([]Scenario, len(f.Scenarios))
	for i := range f.Scenarios {
		out[i] = f.Scenarios[i].ToScenario()
	}
	return out
}

// ToReplayConfig applies the fixture overrides to DefaultReplayConfig.
func (fc *FixtureConfig) ToReplayConfig() ReplayConfig {
	cfg := DefaultReplayConfig()
	if fc.MaxIters > 0 {
		cfg.MaxIters = fc.MaxIters
	}
	cfg.Audit = audit.Config{RequireConverged: fc.RequireConverged}
	return cfg
}

// FromScenario builds the JSON form of a hook-free scenario, the inverse of
// ToScenario for fixtures exported from archived runs.
func FromScenario(name string, theta production.Params, env production.Env, tgt production.Targets) FixtureScenario {
	return FixtureScenario{
		Name: name,
		Theta0: &FixtureParams{
			GenPerSec:  theta.GenPerSec,
			SpendRate:  theta.SpendRate,
			Multiplier: theta.Multiplier,
		},
		Env: FixtureEnv{
			UpgradeCostBase:   env.UpgradeCostBase,
			UpgradeCostGrowth: env.UpgradeCostGrowth,
			GainPerLevel:      env.GainPerLevel,
			Leak:              env.Leak,
			StorageCap:        env.StorageCap,
		},
		Targets: FixtureTargets{TTU: tgt.TTU, Util: tgt.Util, Growth: tgt.Growth},
	}
}

// #endregion fixture-loader
