// Package replay re-runs recorded production scenarios through the balancing
// loop and the post-run audit, so a change in the loop shows up as a change
// in each scenario's action.
package replay

import (
	"github.com/avila-gabriel/game-balance/internal/audit"
	"github.com/avila-gabriel/game-balance/internal/systems/production"
)

// #region actions
// Replay actions, one per scenario.
const (
	ActionConverged    = "converged"
	ActionNotConverged = "not_converged"
	ActionAuditFail    = "audit_fail"
)

// #endregion actions

// #region types
// Scenario is one production balance problem to replay.
type Scenario struct {
	Name    string
	Theta0  production.Params
	Env     production.Env
	Targets production.Targets
	// Hooks are fresh mechanic instances owned by this scenario.
	Hooks []production.Mechanic
	// MaxIters overrides ReplayConfig.MaxIters when positive.
	MaxIters int
}

// ReplayConfig bundles the loop and audit settings for a replay run.
type ReplayConfig struct {
	Bounds   production.Bounds
	Gains    production.Gains
	MaxIters int
	Audit    audit.Config
}

// DefaultReplayConfig returns soft bounds, default gains, 120000 iterations
// and the default audit policy.
func DefaultReplayConfig() ReplayConfig {
	return ReplayConfig{
		Bounds:   production.SoftBounds(),
		Gains:    production.DefaultGains(),
		MaxIters: 120_000,
		Audit:    audit.DefaultConfig(),
	}
}

// ReplayResult captures the outcome of replaying one scenario.
type ReplayResult struct {
	Name    string
	Action  string
	Reason  string
	Outcome production.Outcome
	Audit   audit.Result
}

// ReplaySummary provides aggregate stats from a replay run.
type ReplaySummary struct {
	Total        int
	Converged    int
	NotConverged int
	AuditFails   int
}

// #endregion types

// #region replay
// Replay balances every scenario in order, then audits the final θ.
// Scenarios are independent: nothing carries from one to the next.
func Replay(scenarios []Scenario, config ReplayConfig) []ReplayResult {
	auditor := audit.NewAuditor(config.Audit)
	results := make([]ReplayResult, 0, len(scenarios))

	for _, sc := range scenarios {
		maxIters := config.MaxIters
		if sc.MaxIters > 0 {
			maxIters = sc.MaxIters
		}

		// 1. Balance
		out := production.Balance(sc.Theta0, sc.Env, sc.Targets, config.Bounds, config.Gains, sc.Hooks, maxIters)

		// 2. Audit
		res := auditor.Run(production.AuditFields(out.Theta, config.Bounds), out.Converged)

		// 3. Classify
		action := ActionConverged
		reason := res.Reason
		switch {
		case !res.Passed:
			action = ActionAuditFail
		case !out.Converged:
			action = ActionNotConverged
			reason = "iteration budget exhausted"
		}

		results = append(results, ReplayResult{
			Name:    sc.Name,
			Action:  action,
			Reason:  reason,
			Outcome: out,
			Audit:   res,
		})
	}
	return results
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []ReplayResult) ReplaySummary {
	s := ReplaySummary{Total: len(results)}
	for _, r := range results {
		switch r.Action {
		case ActionConverged:
			s.Converged++
		case ActionNotConverged:
			s.NotConverged++
		case ActionAuditFail:
			s.AuditFails++
		}
	}
	return s
}

// #endregion replay
