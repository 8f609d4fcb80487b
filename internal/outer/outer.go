// Package outer runs a fixed number of orchestration passes, threading a
// shared signal value from one pass to the next.
package outer

// Signals is the shared record the idle genre forwards between passes.
type Signals struct {
	// RefIncome is the reference income rate produced upstream.
	RefIncome float64 `yaml:"ref_income"`
}

// #region run
// Run calls step exactly passes times, sequentially, feeding each call the
// signals returned by the previous one. It is a fixed-count relaxation: it
// never stops early and never retries, whatever the outcomes report.
//
// It returns the final signals and the per-pass outcomes in order. A
// non-positive pass count returns signals0 and no outcomes.
func Run[S, O any](signals0 S, passes int, step func(pass int, signals S) (S, O)) (S, []O) {
	if passes <= 0 {
		return signals0, nil
	}
	signals := signals0
	outcomes := make([]O, 0, passes)
	for i := 0; i < passes; i++ {
		next, out := step(i, signals)
		signals = next
		outcomes = append(outcomes, out)
	}
	return signals, outcomes
}

// #endregion run
