package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/checks"
)

func TestStructureChecker_MissingDefaultExport(t *testing.T) {
	content := "export function Button() {\n  return <button>x</button>;\n}\n"

	issues := checks.NewStructureChecker().Check(content, checks.Context{FilePath: "Button.tsx"})
	iss := findIssue(t, issues, "no default export")
	require.Equal(t, domain.SeverityError, iss.Severity)
	assert.Contains(t, iss.Suggestion, "export default")
}

func TestStructureChecker_MultipleDefaultExports(t *testing.T) {
	content := "export default function A() {\n  return <div />;\n}\n\nconst B = () => <span />;\nexport default B;\n"

	issues := checks.NewStructureChecker().Check(content, checks.Context{FilePath: "A.tsx"})
	iss := findIssue(t, issues, "2 default exports")
	assert.Equal(t, domain.SeverityError, iss.Severity)
	assert.Equal(t, 6, iss.Line)
}

func TestStructureChecker_AnonymousDefaultExport(t *testing.T) {
	content := "export default () => <div />;\n"

	issues := checks.NewStructureChecker().Check(content, checks.Context{FilePath: "Card.tsx"})
	iss := findIssue(t, issues, "anonymous")
	assert.Equal(t, domain.SeverityInfo, iss.Severity)
}

func TestStructureChecker_DirectivePlacement(t *testing.T) {
	misplaced := "import { useState } from 'react';\n'use client';\n\nexport default function Counter() {\n  const [n, setN] = useState(0);\n  return <button onClick={() => setN(n + 1)}>{n}</button>;\n}\n"

	issues := checks.NewStructureChecker().Check(misplaced, checks.Context{FilePath: "Counter.tsx"})
	iss := findIssue(t, issues, "must be the first statement")
	require.Equal(t, domain.SeverityError, iss.Severity)
	assert.Equal(t, 2, iss.Line)
	assert.Contains(t, iss.Suggestion, "line 1")

	first := "'use client';\n\nimport { useState } from 'react';\n\nexport default function Counter() {\n  const [n] = useState(0);\n  return <div>{n}</div>;\n}\n"
	issues = checks.NewStructureChecker().Check(first, checks.Context{FilePath: "Counter.tsx"})
	assert.False(t, hasIssue(issues, "first statement"))
}

func TestStructureChecker_DuplicateDirectives(t *testing.T) {
	content := "'use client';\n'use client';\n\nexport default function A() {\n  return <div />;\n}\n"

	issues := checks.NewStructureChecker().Check(content, checks.Context{FilePath: "A.tsx"})
	iss := findIssue(t, issues, "2 runtime directives")
	assert.Equal(t, domain.SeverityWarning, iss.Severity)
}

func TestStructureChecker_NextClientBoundary(t *testing.T) {
	content := "import { useState } from 'react';\n\nexport default function Counter() {\n  const [n] = useState(0);\n  return <div>{n}</div>;\n}\n"

	ctx := checks.Context{FilePath: "Counter.tsx", Framework: domain.FrameworkNext}
	issues := checks.NewStructureChecker().Check(content, ctx)
	iss := findIssue(t, issues, "'use client' directive")
	require.Equal(t, domain.SeverityWarning, iss.Severity)
	assert.Contains(t, iss.Suggestion, "use client")

	// other frameworks have no client boundary
	ctx.Framework = domain.FrameworkVite
	issues = checks.NewStructureChecker().Check(content, ctx)
	assert.False(t, hasIssue(issues, "use client"))
}

func TestStructureChecker_UndeclaredPropsType(t *testing.T) {
	content := "export default function Button({ label }: ButtonProps) {\n  return <button>{label}</button>;\n}\n"

	issues := checks.NewStructureChecker().Check(content, structTSCtx("Button.tsx"))
	iss := findIssue(t, issues, `props type "ButtonProps"`)
	require.Equal(t, domain.SeverityError, iss.Severity)
	assert.Equal(t, domain.ValidationStructure, iss.Type)
	assert.Contains(t, iss.Suggestion, "interface ButtonProps")
}

func TestStructureChecker_PropsTypeResolvedInFile(t *testing.T) {
	content := "interface ButtonProps {\n  label: string;\n}\n\nexport default function Button({ label }: ButtonProps) {\n  return <button>{label}</button>;\n}\n"

	issues := checks.NewStructureChecker().Check(content, structTSCtx("Button.tsx"))
	assert.False(t, hasIssue(issues, "props type"))
}

func TestStructureChecker_PropsTypeResolvedByImport(t *testing.T) {
	content := "import { ButtonProps } from './types';\n\nexport default function Button(props: ButtonProps) {\n  return null;\n}\n"

	issues := checks.NewStructureChecker().Check(content, structTSCtx("Button.tsx"))
	assert.False(t, hasIssue(issues, "props type"))
}

func TestStructureChecker_FCAnnotation(t *testing.T) {
	content := "import React from 'react';\n\nconst Card: React.FC<CardProps> = () => <div />;\n\nexport default Card;\n"

	issues := checks.NewStructureChecker().Check(content, structTSCtx("Card.tsx"))
	iss := findIssue(t, issues, `props type "CardProps"`)
	assert.Equal(t, domain.SeverityError, iss.Severity)
}

func TestStructureChecker_BuiltinTypesNotFlagged(t *testing.T) {
	content := "export default function Panel(props: PropsWithChildren) {\n  return <div>{props.children}</div>;\n}\n"

	issues := checks.NewStructureChecker().Check(content, structTSCtx("Panel.tsx"))
	assert.False(t, hasIssue(issues, "props type"))
}

func TestStructureChecker_PropsTypeIgnoredInPlainJS(t *testing.T) {
	content := "export default function Button({ label }: ButtonProps) {\n  return <button>{label}</button>;\n}\n"

	issues := checks.NewStructureChecker().Check(content, checks.Context{FilePath: "Button.tsx"})
	assert.False(t, hasIssue(issues, "props type"))
}

func structTSCtx(file string) checks.Context {
	return checks.Context{FilePath: "components/" + file, TypeScript: true}
}

func TestStructureChecker_NoJSX(t *testing.T) {
	content := "export default function compute() {\n  return 42;\n}\n"

	issues := checks.NewStructureChecker().Check(content, checks.Context{FilePath: "compute.ts"})
	iss := findIssue(t, issues, "no JSX markup")
	assert.Equal(t, domain.SeverityInfo, iss.Severity)
}
