package replay

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/avila-gabriel/game-balance/internal/config"
	"github.com/avila-gabriel/game-balance/internal/ledger"
	"github.com/avila-gabriel/game-balance/internal/systems/production"
)

// #region from-ledger
// FromLedger builds a fixture from the most recent archived runs. Each run
// becomes the first-pass production scenario it started from, expected to
// reproduce the convergence the run recorded. Runs that drafted a hook are
// skipped: the picked mechanic is not archived, so their first pass cannot
// be replayed. It returns the fixture and the number of skipped runs.
func FromLedger(store *ledger.Store, last int) (*Fixture, int, error) {
	runs, err := store.List(last)
	if err != nil {
		return nil, 0, err
	}

	f := &Fixture{}
	skipped := 0
	// oldest first
	for i := len(runs) - 1; i >= 0; i-- {
		run := runs[i]

		var cfg config.Run
		if err := yaml.Unmarshal([]byte(run.ConfigYAML), &cfg); err != nil {
			return nil, 0, fmt.Errorf("decode config of run %s: %w", run.ID, err)
		}
		if cfg.Draft.Pick >= 0 {
			skipped++
			continue
		}

		systems, err := store.Systems(run.ID)
		if err != nil {
			return nil, 0, err
		}
		action, ok := firstProductionAction(systems)
		if !ok {
			skipped++
			continue
		}

		envs := cfg.Envs()
		t := cfg.IdleTargets()
		sc := FromScenario(run.ID, production.Seed(), envs.Core,
			production.Targets{TTU: t.TTUTargetSecs, Util: t.UtilTarget, Growth: t.GrowthTarget})
		sc.MaxIters = cfg.Balance.MaxItersPerSystem

		f.Scenarios = append(f.Scenarios, sc)
		f.ExpectedResults = append(f.ExpectedResults, FixtureExpectedResult{Name: run.ID, Action: action})
	}

	f.Description = fmt.Sprintf("ledger export: %d runs, %d skipped", len(f.Scenarios), skipped)
	return f, skipped, nil
}

func firstProductionAction(systems []ledger.SystemEntry) (string, bool) {
	for _, e := range systems {
		if e.Pass != 0 || e.System != "production" {
			continue
		}
		if e.Converged {
			return ActionConverged, true
		}
		return ActionNotConverged, true
	}
	return "", false
}

// #endregion from-ledger
