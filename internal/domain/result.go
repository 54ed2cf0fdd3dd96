package domain

// ValidationResult is the outcome of validating one file. It is created
// empty, filled by append-only AddIssue calls during checker execution,
// and treated as immutable once handed back to the caller. A result is
// never reused across files.
type ValidationResult struct {
	Issues   []Issue        `json:"issues"`
	Passed   bool           `json:"passed"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Recognized metadata keys. Adapters may add more under their own names;
// checkers stick to this set.
const (
	MetaAxes      = "axes"
	MetaCounts    = "counts"
	MetaFile      = "file"
	MetaFramework = "framework"
	MetaStyling   = "styling"
	MetaCommit    = "commit"
)

// NewValidationResult returns an empty passing result with score 1.0.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Issues:   []Issue{},
		Passed:   true,
		Score:    1.0,
		Metadata: map[string]any{},
	}
}

// AddIssue appends an issue, flipping Passed to false iff the issue is
// error severity. Passed never flips back to true.
func (r *ValidationResult) AddIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
	if issue.Severity == SeverityError {
		r.Passed = false
	}
}

// Errors returns the error-severity issues in insertion order.
func (r *ValidationResult) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns the warning-severity issues in insertion order.
func (r *ValidationResult) Warnings() []Issue { return r.filter(SeverityWarning) }

// Infos returns the info-severity issues in insertion order.
func (r *ValidationResult) Infos() []Issue { return r.filter(SeverityInfo) }

func (r *ValidationResult) filter(severity string) []Issue {
	out := []Issue{}
	for _, i := range r.Issues {
		if i.Severity == severity {
			out = append(out, i)
		}
	}
	return out
}

// HasErrors reports whether any issue carries error severity.
func (r *ValidationResult) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// CountBySeverity returns the number of issues per severity.
func (r *ValidationResult) CountBySeverity() map[string]int {
	counts := map[string]int{
		SeverityError:   0,
		SeverityWarning: 0,
		SeverityInfo:    0,
	}
	for _, i := range r.Issues {
		counts[i.Severity]++
	}
	return counts
}

// Penalties holds the per-severity score deductions. Overridable via
// .uiforge.yaml; every caller that skips the override gets the defaults.
type Penalties struct {
	Error   float64 `yaml:"error"   json:"error"`
	Warning float64 `yaml:"warning" json:"warning"`
	Info    float64 `yaml:"info"    json:"info"`
}

// DefaultPenalties returns the standard deduction model.
func DefaultPenalties() Penalties {
	return Penalties{Error: 0.2, Warning: 0.1, Info: 0.05}
}

// CalculateScore computes the score from the issue list under the default
// penalties. Pure and idempotent: the same issue list always yields the
// same value. It does not modify the result.
func (r *ValidationResult) CalculateScore() float64 {
	return r.CalculateScoreWith(DefaultPenalties())
}

// CalculateScoreWith computes the score under explicit penalties: start
// at 1.0, subtract per issue by severity, clamp to [0, 1]. No issues
// means a perfect 1.0 regardless of any other state.
func (r *ValidationResult) CalculateScoreWith(p Penalties) float64 {
	score := 1.0
	for _, i := range r.Issues {
		switch i.Severity {
		case SeverityError:
			score -= p.Error
		case SeverityWarning:
			score -= p.Warning
		case SeverityInfo:
			score -= p.Info
		}
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
