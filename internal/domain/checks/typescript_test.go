package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/checks"
)

const cleanButton = `import React from 'react';

interface ButtonProps {
  label: string;
}

export default function Button({ label }: ButtonProps) {
  return <button type="button">{label}</button>;
}
`

func tsCtx() checks.Context {
	return checks.Context{FilePath: "components/Button.tsx", TypeScript: true}
}

func TestTypescriptChecker_Supports(t *testing.T) {
	c := checks.NewTypescriptChecker()
	assert.True(t, c.Supports(domain.ValidationTypescript))
	assert.False(t, c.Supports(domain.ValidationStyling))
}

func TestTypescriptChecker_CleanComponent(t *testing.T) {
	c := checks.NewTypescriptChecker()
	assert.Empty(t, c.Check(cleanButton, tsCtx()))
}

func TestTypescriptChecker_TruncatedOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "cut off mid string",
			content: "export default function Button() {\n  return <button>{'Sav",
			want:    "truncated",
		},
		{
			name:    "unbalanced braces",
			content: "export default function Button() {\n  return <div>x</div>;\n",
			want:    "unbalanced braces",
		},
		{
			name:    "unbalanced parentheses",
			content: "export default function Button( { return null; }\n",
			want:    "unbalanced parentheses",
		},
	}
	c := checks.NewTypescriptChecker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := c.Check(tt.content, tsCtx())
			iss := findIssue(t, issues, tt.want)
			assert.Equal(t, domain.SeverityError, iss.Severity)
		})
	}
}

func TestTypescriptChecker_AnyUsage(t *testing.T) {
	content := "export default function Button(props: any) {\n  const data: any = props;\n  return null;\n}\n"

	c := checks.NewTypescriptChecker()
	issues := c.Check(content, tsCtx())
	assert.Equal(t, 2, countIssues(issues, "explicit any"))
	iss := findIssue(t, issues, "explicit any")
	assert.Equal(t, domain.SeverityWarning, iss.Severity)
	assert.NotZero(t, iss.Line)
}

func TestTypescriptChecker_AnyIgnoredInPlainJS(t *testing.T) {
	content := "export default function Button(props: any) { return null; }\n"
	ctx := tsCtx()
	ctx.TypeScript = false

	issues := checks.NewTypescriptChecker().Check(content, ctx)
	assert.False(t, hasIssue(issues, "explicit any"))
}

func TestTypescriptChecker_SuppressionComments(t *testing.T) {
	content := "// @ts-ignore\nexport default function Button() { return null; }\n"

	issues := checks.NewTypescriptChecker().Check(content, tsCtx())
	iss := findIssue(t, issues, "suppression")
	assert.Equal(t, domain.SeverityWarning, iss.Severity)
	assert.Equal(t, 1, iss.Line)
}

func TestTypescriptChecker_UnexportedComponent(t *testing.T) {
	content := "function Button() {\n  return <button>save</button>;\n}\n"

	issues := checks.NewTypescriptChecker().Check(content, tsCtx())
	iss := findIssue(t, issues, "exports nothing")
	require.Equal(t, domain.SeverityError, iss.Severity)
	assert.Contains(t, iss.Suggestion, "export default Button")
}

func TestTypescriptChecker_TemplatePlaceholder(t *testing.T) {
	content := "export default function Card() {\n  return <div>{{title}}</div>;\n}\n"

	issues := checks.NewTypescriptChecker().Check(content, tsCtx())
	iss := findIssue(t, issues, "template placeholder")
	assert.Equal(t, domain.SeverityError, iss.Severity)
}

func TestTypescriptChecker_TodoMarker(t *testing.T) {
	content := "export default function Card() {\n  // TODO: wire up the click handler\n  return <div />;\n}\n"

	issues := checks.NewTypescriptChecker().Check(content, tsCtx())
	iss := findIssue(t, issues, "unfinished marker")
	assert.Equal(t, domain.SeverityInfo, iss.Severity)
	assert.Equal(t, 2, iss.Line)
}
