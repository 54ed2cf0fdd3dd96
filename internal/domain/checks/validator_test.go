package checks_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/checks"
)

// stubChecker emits a fixed issue list for one axis.
type stubChecker struct {
	axis   domain.ValidationType
	issues []domain.Issue
}

func (s stubChecker) Type() domain.ValidationType           { return s.axis }
func (s stubChecker) Supports(t domain.ValidationType) bool { return t == s.axis }
func (s stubChecker) Check(string, checks.Context) []domain.Issue {
	return s.issues
}

// panickyChecker blows up on every call.
type panickyChecker struct{ axis domain.ValidationType }

func (p panickyChecker) Type() domain.ValidationType           { return p.axis }
func (p panickyChecker) Supports(t domain.ValidationType) bool { return t == p.axis }
func (p panickyChecker) Check(string, checks.Context) []domain.Issue {
	panic("stack overflow in rule table")
}

func stubIssue(axis domain.ValidationType, severity, msg string) domain.Issue {
	return domain.Issue{Type: axis, Severity: severity, Message: msg}
}

func TestValidator_MergesInAxisOrder(t *testing.T) {
	// registered backwards on purpose; the fold must still follow the
	// fixed axis order
	v := checks.NewValidator(checks.WithCheckers(
		stubChecker{axis: domain.ValidationSecurity, issues: []domain.Issue{stubIssue(domain.ValidationSecurity, domain.SeverityError, "sec")}},
		stubChecker{axis: domain.ValidationStyling, issues: []domain.Issue{stubIssue(domain.ValidationStyling, domain.SeverityWarning, "sty")}},
		stubChecker{axis: domain.ValidationTypescript, issues: []domain.Issue{stubIssue(domain.ValidationTypescript, domain.SeverityInfo, "ts")}},
	))

	for run := 0; run < 50; run++ {
		result := v.Validate("const x = 1;\n", checks.Context{})
		require.Len(t, result.Issues, 3)
		assert.Equal(t, "ts", result.Issues[0].Message)
		assert.Equal(t, "sty", result.Issues[1].Message)
		assert.Equal(t, "sec", result.Issues[2].Message)
	}
}

func TestValidator_ScoreAndPassed(t *testing.T) {
	v := checks.NewValidator(checks.WithCheckers(
		stubChecker{axis: domain.ValidationTypescript, issues: []domain.Issue{
			stubIssue(domain.ValidationTypescript, domain.SeverityError, "e"),
			stubIssue(domain.ValidationTypescript, domain.SeverityWarning, "w"),
			stubIssue(domain.ValidationTypescript, domain.SeverityInfo, "i"),
		}},
	))

	result := v.Validate("", checks.Context{})
	assert.False(t, result.Passed)
	assert.InDelta(t, 0.65, result.Score, 1e-9)
}

func TestValidator_CustomPenalties(t *testing.T) {
	v := checks.NewValidator(
		checks.WithCheckers(stubChecker{axis: domain.ValidationTypescript, issues: []domain.Issue{
			stubIssue(domain.ValidationTypescript, domain.SeverityError, "e"),
		}}),
		checks.WithPenalties(domain.Penalties{Error: 0.5, Warning: 0.25, Info: 0.1}),
	)

	result := v.Validate("", checks.Context{})
	assert.InDelta(t, 0.5, result.Score, 1e-9)
}

func TestValidator_PanickingCheckerDegradesToInfo(t *testing.T) {
	v := checks.NewValidator(checks.WithCheckers(
		panickyChecker{axis: domain.ValidationTypescript},
		stubChecker{axis: domain.ValidationImports, issues: []domain.Issue{stubIssue(domain.ValidationImports, domain.SeverityWarning, "late import")}},
	))

	result := v.Validate("", checks.Context{FilePath: "Button.tsx"})
	require.Len(t, result.Issues, 2)
	assert.Equal(t, domain.SeverityInfo, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Message, "typescript checker failed")
	assert.Equal(t, "late import", result.Issues[1].Message)
	assert.True(t, result.Passed)
}

func TestValidator_SkipAxes(t *testing.T) {
	v := checks.NewValidator(
		checks.WithCheckers(
			stubChecker{axis: domain.ValidationTypescript, issues: []domain.Issue{stubIssue(domain.ValidationTypescript, domain.SeverityError, "ts")}},
			stubChecker{axis: domain.ValidationSecurity, issues: []domain.Issue{stubIssue(domain.ValidationSecurity, domain.SeverityError, "sec")}},
		),
		checks.WithSkip(domain.ValidationSecurity),
	)

	result := v.Validate("", checks.Context{})
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "ts", result.Issues[0].Message)

	axes, ok := result.Metadata[domain.MetaAxes].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"typescript"}, axes)
}

func TestValidator_Metadata(t *testing.T) {
	v := checks.NewValidator(checks.WithCheckers(
		stubChecker{axis: domain.ValidationTypescript, issues: []domain.Issue{
			stubIssue(domain.ValidationTypescript, domain.SeverityWarning, "w"),
		}},
	))

	ctx := checks.Context{FilePath: "components/Card.tsx", Framework: domain.FrameworkNext, Styling: domain.StylingTailwind}
	result := v.Validate("", ctx)

	assert.Equal(t, "components/Card.tsx", result.Metadata[domain.MetaFile])
	assert.Equal(t, "next", result.Metadata[domain.MetaFramework])
	assert.Equal(t, "tailwind", result.Metadata[domain.MetaStyling])
	counts, ok := result.Metadata[domain.MetaCounts].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 1, counts[domain.SeverityWarning])
	assert.Equal(t, 0, counts[domain.SeverityError])
}

func TestValidator_ValidateAxis(t *testing.T) {
	v := checks.NewValidator()

	content := "import { useState } from 'react';\nimport { useCallback } from 'react';\n\nexport default function Counter() {\n  const [n] = useState(0);\n  return <div>{n}</div>;\n}\n"
	result := v.ValidateImports(content, checks.Context{FilePath: "Counter.tsx"})

	assert.True(t, hasIssue(result.Issues, "collapse to one"))
	for _, iss := range result.Issues {
		assert.Equal(t, domain.ValidationImports, iss.Type)
	}
}

func TestValidator_ValidateAxisUnknown(t *testing.T) {
	v := checks.NewValidator()

	result := v.ValidateAxis(domain.ValidationType("linting"), "const x = 1;\n", checks.Context{})
	require.Len(t, result.Issues, 1)
	assert.Equal(t, domain.SeverityInfo, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Message, `unknown validation axis "linting"`)
	assert.True(t, result.Passed)
}

func TestValidator_ValidateAxisUnsupported(t *testing.T) {
	v := checks.NewValidator(checks.WithCheckers(
		stubChecker{axis: domain.ValidationTypescript},
	))

	result := v.ValidateAxis(domain.ValidationSecurity, "const x = 1;\n", checks.Context{})
	require.Len(t, result.Issues, 1)
	assert.Equal(t, domain.SeverityInfo, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Message, "no checker supports")
}

func TestValidator_NarrowEntryPoints(t *testing.T) {
	v := checks.NewValidator()
	content := "export default function Button(props: any) {\n  return <button className=\"p-2-2\">x</button>;\n}\n"
	ctx := checks.Context{FilePath: "Button.tsx", TypeScript: true, Styling: domain.StylingTailwind}

	ts := v.ValidateTypescript(content, ctx)
	assert.True(t, hasIssue(ts.Issues, "explicit any"))
	assert.False(t, hasIssue(ts.Issues, "p-2-2"))

	sty := v.ValidateStyling(content, ctx)
	assert.True(t, hasIssue(sty.Issues, "p-2-2"))
	assert.False(t, hasIssue(sty.Issues, "explicit any"))
}

func TestValidator_FullRunOnDirtyComponent(t *testing.T) {
	content := "import { useState } from 'react';\nimport { useState } from 'react';\n'use client';\n\nfunction myCard(props: any) {\n  return <div onClick={() => {}} className=\"p-4 bg-gray-100-100-100\"><img src=\"http://cdn.example.com/x.png\" /></div>;\n}\n"
	ctx := checks.Context{FilePath: "components/myCard.tsx", TypeScript: true, Styling: domain.StylingTailwind}

	result := checks.NewValidator().Validate(content, ctx)

	assert.False(t, result.Passed)
	assert.Greater(t, len(result.Errors()), 0)
	assert.True(t, hasIssue(result.Issues, "bg-gray-100-100-100"))
	assert.True(t, hasIssue(result.Issues, "first statement"))
	assert.Equal(t, result.CalculateScoreWith(domain.DefaultPenalties()), result.Score)

	// issue order groups by axis following the fixed order
	lastRank := -1
	rank := map[domain.ValidationType]int{}
	for i, a := range domain.AxisOrder {
		rank[a] = i
	}
	for _, iss := range result.Issues {
		r := rank[iss.Type]
		assert.GreaterOrEqual(t, r, lastRank, fmt.Sprintf("issue %q out of axis order", iss.Message))
		if r > lastRank {
			lastRank = r
		}
	}
}
