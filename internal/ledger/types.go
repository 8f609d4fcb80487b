package ledger

import "time"

// #region run
// Run is one archived orchestration run.
type Run struct {
	ID           string
	CreatedAt    time.Time
	Passes       int
	ConvergedAll bool
	// ConfigYAML is the resolved configuration the run used.
	ConfigYAML string
	// ReportYAML is the report the driver printed.
	ReportYAML string
}

// #endregion run

// #region system-entry
// SystemEntry records how one system finished within one pass.
type SystemEntry struct {
	RunID     string
	Pass      int
	System    string
	Iters     int
	Converged bool
	ThetaYAML string
}

// #endregion system-entry
