// Package audit validates a finished balance outcome: every θ field must be
// finite and inside its bounds. The harness itself never recovers from bad
// values, so callers run this afterwards to report them.
package audit

import (
	"fmt"
	"math"
)

// #region auditor
// Auditor runs post-run checks on outcomes.
type Auditor struct {
	config Config
}

// NewAuditor creates an auditor with the given configuration.
func NewAuditor(config Config) *Auditor {
	return &Auditor{config: config}
}

// Run checks fields and the convergence flag of one outcome.
func (a *Auditor) Run(fields []Field, converged bool) Result {
	var metrics []Metric
	var violations []Violation

	// 1. Finite and in-bounds per field
	for _, f := range fields {
		finite := !math.IsNaN(f.Value) && !math.IsInf(f.Value, 0)
		inBounds := finite && f.Value >= f.Lo && f.Value <= f.Hi
		metrics = append(metrics, Metric{Name: f.Name, Value: f.Value, Pass: inBounds})

		switch {
		case !finite:
			violations = append(violations, Violation{
				Kind:   KindNonFinite,
				Field:  f.Name,
				Reason: fmt.Sprintf("%s is %v", f.Name, f.Value),
			})
		case !inBounds:
			violations = append(violations, Violation{
				Kind:   KindOutOfBounds,
				Field:  f.Name,
				Reason: fmt.Sprintf("%s %.6g outside [%.6g, %.6g]", f.Name, f.Value, f.Lo, f.Hi),
			})
		}
	}

	// 2. Convergence: informational unless required
	convergedValue := 0.0
	if converged {
		convergedValue = 1
	}
	metrics = append(metrics, Metric{Name: "converged", Value: convergedValue, Pass: converged})
	if !converged && a.config.RequireConverged {
		violations = append(violations, Violation{
			Kind:   KindNotConverged,
			Reason: "outcome did not converge",
		})
	}

	reason := "all checks passed"
	switch {
	case len(violations) == 1:
		reason = fmt.Sprintf("audit failed: %s", violations[0].Reason)
	case len(violations) > 1:
		reason = fmt.Sprintf("audit failed: %d checks: %s", len(violations), violations[0].Reason)
	}

	return Result{
		Passed:     len(violations) == 0,
		Metrics:    metrics,
		Violations: violations,
		Reason:     reason,
	}
}

// #endregion auditor

// Check audits fields with the default configuration, ignoring convergence.
func Check(fields []Field) Result {
	return NewAuditor(DefaultConfig()).Run(fields, true)
}
