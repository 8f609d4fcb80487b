package audit

// #region kind
// Kind enumerates audit violation categories.
type Kind string

const (
	KindNonFinite    Kind = "non_finite"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindNotConverged Kind = "not_converged"
)

// #endregion kind

// #region field
// Field is one θ value with the bounds it must respect.
type Field struct {
	Name  string
	Value float64
	Lo    float64
	Hi    float64
}

// #endregion field

// #region audit-config
// Config holds audit policy.
type Config struct {
	// RequireConverged turns a non-converged outcome into a failure instead
	// of an informational metric.
	RequireConverged bool
}

// DefaultConfig treats non-convergence as informational.
func DefaultConfig() Config {
	return Config{RequireConverged: false}
}

// #endregion audit-config

// #region audit-result
// Metric captures a single check result.
type Metric struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
	Pass  bool    `yaml:"pass"`
}

// Violation is a failed check.
type Violation struct {
	Kind   Kind   `yaml:"kind"`
	Field  string `yaml:"field"`
	Reason string `yaml:"reason"`
}

// Result is the output of one audit.
type Result struct {
	Passed     bool        `yaml:"passed"`
	Metrics    []Metric    `yaml:"metrics"`
	Violations []Violation `yaml:"violations,omitempty"`
	Reason     string      `yaml:"reason"`
}

// #endregion audit-result
