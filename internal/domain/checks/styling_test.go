package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/checks"
)

func stylingCtx(s domain.Styling) checks.Context {
	return checks.Context{FilePath: "components/Card.tsx", Styling: s, TypeScript: true}
}

func TestStylingChecker_RepeatedScaleToken(t *testing.T) {
	content := "export default function Card() {\n  return <div className=\"p-4 bg-gray-100-100-100 rounded\">x</div>;\n}\n"

	issues := checks.NewStylingChecker().Check(content, stylingCtx(domain.StylingTailwind))
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "bg-gray-100-100-100")
	assert.Equal(t, "bg-gray-100", issues[0].Suggestion)
	assert.Equal(t, 2, issues[0].Line)
}

func TestStylingChecker_ValidSuffixNotFlagged(t *testing.T) {
	content := "export default function Card() {\n  return <div className=\"p-4 bg-gray-100-hover rounded\">x</div>;\n}\n"

	issues := checks.NewStylingChecker().Check(content, stylingCtx(domain.StylingTailwind))
	assert.Empty(t, issues)
}

func TestStylingChecker_AppliesWithUnsetStyling(t *testing.T) {
	content := "export default function Card() {\n  return <div className=\"mt-2-2\">x</div>;\n}\n"

	issues := checks.NewStylingChecker().Check(content, stylingCtx(""))
	assert.True(t, hasIssue(issues, "mt-2-2"))
}

func TestStylingChecker_TemplateArtifactInClass(t *testing.T) {
	content := "export default function Card() {\n  return <div className=\"btn {color} p-2\">x</div>;\n}\n"

	issues := checks.NewStylingChecker().Check(content, stylingCtx(domain.StylingTailwind))
	iss := findIssue(t, issues, "template artifact")
	assert.Equal(t, domain.SeverityWarning, iss.Severity)
	assert.Contains(t, iss.Message, "{color}")
}

func TestStylingChecker_CSSModulesRequireImport(t *testing.T) {
	missing := "export default function Card() {\n  return <div className={styles.card}>x</div>;\n}\n"
	issues := checks.NewStylingChecker().Check(missing, stylingCtx(domain.StylingCSSModules))
	iss := findIssue(t, issues, "no CSS module is imported")
	require.Equal(t, domain.SeverityError, iss.Severity)
	assert.Contains(t, iss.Suggestion, ".module.css")

	present := "import styles from './Card.module.css';\n\nexport default function Card() {\n  return <div className={styles.card}>x</div>;\n}\n"
	assert.Empty(t, checks.NewStylingChecker().Check(present, stylingCtx(domain.StylingCSSModules)))
}

func TestStylingChecker_StyledComponentsRequireImport(t *testing.T) {
	missing := "const Box = styled.div`color: red;`;\n\nexport default Box;\n"
	issues := checks.NewStylingChecker().Check(missing, stylingCtx(domain.StylingStyledComponents))
	iss := findIssue(t, issues, "styled-components is not imported")
	assert.Equal(t, domain.SeverityError, iss.Severity)

	present := "import styled from 'styled-components';\n\nconst Box = styled.div`color: red;`;\n\nexport default Box;\n"
	assert.Empty(t, checks.NewStylingChecker().Check(present, stylingCtx(domain.StylingStyledComponents)))
}

func TestStylingChecker_StyledComponentsUtilityStack(t *testing.T) {
	content := "import styled from 'styled-components';\n\nconst Wrap = styled.div`padding: 1rem;`;\n\nexport default function Card() {\n  return <div className=\"flex items-center gap-2\">x</div>;\n}\n"
	issues := checks.NewStylingChecker().Check(content, stylingCtx(domain.StylingStyledComponents))
	iss := findIssue(t, issues, "utility class stack")
	assert.Equal(t, domain.SeverityWarning, iss.Severity)
	assert.Contains(t, iss.Suggestion, "styled component")

	// one class token is a name, not a stack
	single := "import styled from 'styled-components';\n\nexport default function Card() {\n  return <div className=\"card\">x</div>;\n}\n"
	assert.False(t, hasIssue(checks.NewStylingChecker().Check(single, stylingCtx(domain.StylingStyledComponents)), "utility class stack"))

	// component elements own their className prop
	component := "import styled from 'styled-components';\nimport Card from './Card';\n\nexport default function Page() {\n  return <Card className=\"flex items-center gap-2\" />;\n}\n"
	assert.False(t, hasIssue(checks.NewStylingChecker().Check(component, stylingCtx(domain.StylingStyledComponents)), "utility class stack"))
}

func TestStylingChecker_InlineStyleInfo(t *testing.T) {
	content := "export default function Card() {\n  return <div style={{ color: 'red' }}>x</div>;\n}\n"

	issues := checks.NewStylingChecker().Check(content, stylingCtx(domain.StylingTailwind))
	iss := findIssue(t, issues, "inline style object")
	assert.Equal(t, domain.SeverityInfo, iss.Severity)
}
