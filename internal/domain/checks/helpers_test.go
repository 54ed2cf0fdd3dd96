package checks_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uiforge/uiforge/internal/domain"
)

// findIssue returns the first issue whose message contains substr and
// fails the test when none does.
func findIssue(t *testing.T, issues []domain.Issue, substr string) domain.Issue {
	t.Helper()
	for _, iss := range issues {
		if strings.Contains(iss.Message, substr) {
			return iss
		}
	}
	require.Failf(t, "issue not found", "no issue message contains %q in %+v", substr, issues)
	return domain.Issue{}
}

func countIssues(issues []domain.Issue, substr string) int {
	n := 0
	for _, iss := range issues {
		if strings.Contains(iss.Message, substr) {
			n++
		}
	}
	return n
}

func hasIssue(issues []domain.Issue, substr string) bool {
	return countIssues(issues, substr) > 0
}
