package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/source"
)

// TypescriptChecker scans for type-level red flags detectable without a
// compiler: truncated output, escape hatches, and components that are
// never exported. Whether referenced types are actually declared is a
// file-shape concern and belongs to StructureChecker.
type TypescriptChecker struct{}

func NewTypescriptChecker() *TypescriptChecker { return &TypescriptChecker{} }

func (c *TypescriptChecker) Type() domain.ValidationType { return domain.ValidationTypescript }

func (c *TypescriptChecker) Supports(t domain.ValidationType) bool {
	return t == domain.ValidationTypescript
}

var (
	anyAnnotation   = regexp.MustCompile(`:\s*any\b|<any>|\bas\s+any\b`)
	tsSuppression   = regexp.MustCompile(`@ts-(ignore|nocheck|expect-error)`)
	mustachePattern = regexp.MustCompile(`\{\{\s*[A-Za-z_]+\s*\}\}`)
	todoPattern     = regexp.MustCompile(`//\s*(TODO|FIXME)\b`)
)

func (c *TypescriptChecker) Check(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue

	masked, unterminated := source.MaskLiterals(content)

	// 1. truncation: unterminated literals or unbalanced delimiters
	if unterminated {
		issues = append(issues, issue(c.Type(), domain.SeverityError, ctx,
			"unterminated string or comment at end of file; output looks truncated"))
	}
	for _, pair := range []struct {
		open, close byte
		name        string
	}{{'{', '}', "braces"}, {'(', ')', "parentheses"}, {'[', ']', "brackets"}} {
		opens := strings.Count(masked, string(pair.open))
		closes := strings.Count(masked, string(pair.close))
		if opens != closes {
			issues = append(issues, issue(c.Type(), domain.SeverityError, ctx,
				fmt.Sprintf("unbalanced %s (%d opening, %d closing); output looks truncated or malformed",
					pair.name, opens, closes)))
		}
	}

	// 2. type escape hatches
	if ctx.TypeScript {
		for _, m := range anyAnnotation.FindAllStringIndex(masked, -1) {
			iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0],
				"explicit any defeats type checking")
			iss.Suggestion = "use a precise type, or unknown when the shape is truly open"
			issues = append(issues, iss)
		}
	}
	for _, m := range tsSuppression.FindAllStringIndex(content, -1) {
		issues = append(issues, issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0],
			"TypeScript error suppression comment hides real problems"))
	}

	// 3. component declared but never exported
	if iss, ok := c.checkUnexportedComponent(content, ctx); ok {
		issues = append(issues, iss)
	}

	// 4. leftover template placeholders
	for _, m := range mustachePattern.FindAllStringIndex(content, -1) {
		issues = append(issues, issueAt(c.Type(), domain.SeverityError, ctx, content, m[0],
			"unresolved template placeholder in generated output"))
	}
	for _, m := range todoPattern.FindAllStringIndex(content, -1) {
		issues = append(issues, issueAt(c.Type(), domain.SeverityInfo, ctx, content, m[0],
			"unfinished marker left in generated output"))
	}

	return issues
}

// checkUnexportedComponent reports a PascalCase component declaration in
// a file that exports nothing at all.
func (c *TypescriptChecker) checkUnexportedComponent(content string, ctx Context) (domain.Issue, bool) {
	if strings.Contains(content, "export ") || strings.Contains(content, "export{") ||
		strings.Contains(content, "export default") {
		return domain.Issue{}, false
	}
	for _, d := range source.TopLevelDecls(content) {
		if d.Name != "" && d.Name[0] >= 'A' && d.Name[0] <= 'Z' {
			iss := issue(c.Type(), domain.SeverityError, ctx,
				fmt.Sprintf("component %q is declared but the file exports nothing", d.Name))
			iss.Line = d.Line
			iss.Suggestion = fmt.Sprintf("add `export default %s;`", d.Name)
			return iss, true
		}
	}
	return domain.Issue{}, false
}
