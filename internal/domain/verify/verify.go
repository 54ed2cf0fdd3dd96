// Package verify implements the regression check that gates every
// autofix: a fix that makes validation worse must never be accepted.
package verify

import (
	"fmt"

	"github.com/uiforge/uiforge/internal/domain"
)

// Clauses a fixed result must satisfy relative to the original.
const (
	ClauseNewErrors  = "no-new-errors"
	ClauseIssueCount = "issue-count"
	ClauseScore      = "score"
	ClauseInput      = "input"
)

// Violation is one failed clause.
type Violation struct {
	Clause string `json:"clause"`
	Detail string `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Clause, v.Detail)
}

// Report is the full comparison between the original and fixed results.
type Report struct {
	Violations     []Violation    `json:"violations,omitempty"`
	OriginalScore  float64        `json:"original_score"`
	FixedScore     float64        `json:"fixed_score"`
	OriginalIssues int            `json:"original_issues"`
	FixedIssues    int            `json:"fixed_issues"`
	NewErrors      []domain.Issue `json:"new_errors,omitempty"`
}

// OK reports whether every clause held.
func (r Report) OK() bool { return len(r.Violations) == 0 }

// Compare evaluates the three regression clauses: the fixed result
// introduces no error absent from the original, has no more issues, and
// scores no lower. Error identity is the (type, message) pair, counted
// as a multiset so duplicated errors are not hidden by a single original.
func Compare(original, fixed *domain.ValidationResult) Report {
	if original == nil || fixed == nil {
		return Report{Violations: []Violation{{
			Clause: ClauseInput,
			Detail: "comparison requires both validation results",
		}}}
	}

	r := Report{
		OriginalScore:  original.Score,
		FixedScore:     fixed.Score,
		OriginalIssues: len(original.Issues),
		FixedIssues:    len(fixed.Issues),
	}

	budget := map[[2]string]int{}
	for _, iss := range original.Errors() {
		budget[errorKey(iss)]++
	}
	for _, iss := range fixed.Errors() {
		key := errorKey(iss)
		if budget[key] > 0 {
			budget[key]--
			continue
		}
		r.NewErrors = append(r.NewErrors, iss)
	}
	if len(r.NewErrors) > 0 {
		r.Violations = append(r.Violations, Violation{
			Clause: ClauseNewErrors,
			Detail: fmt.Sprintf("fix introduced %d new error(s), first: %s", len(r.NewErrors), r.NewErrors[0].Message),
		})
	}

	if r.FixedIssues > r.OriginalIssues {
		r.Violations = append(r.Violations, Violation{
			Clause: ClauseIssueCount,
			Detail: fmt.Sprintf("issue count rose from %d to %d", r.OriginalIssues, r.FixedIssues),
		})
	}

	if r.FixedScore < r.OriginalScore {
		r.Violations = append(r.Violations, Violation{
			Clause: ClauseScore,
			Detail: fmt.Sprintf("score dropped from %.2f to %.2f", r.OriginalScore, r.FixedScore),
		})
	}

	return r
}

// Verify reports whether the fixed result regresses nothing.
func Verify(original, fixed *domain.ValidationResult) bool {
	return Compare(original, fixed).OK()
}

func errorKey(iss domain.Issue) [2]string {
	return [2]string{string(iss.Type), iss.Message}
}
