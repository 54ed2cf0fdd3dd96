package checks

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/source"
)

// NamingChecker enforces component naming conventions: PascalCase
// components, use-prefixed camelCase hooks, and file names that match
// the component they export.
type NamingChecker struct{}

func NewNamingChecker() *NamingChecker { return &NamingChecker{} }

func (c *NamingChecker) Type() domain.ValidationType { return domain.ValidationNaming }

func (c *NamingChecker) Supports(t domain.ValidationType) bool {
	return t == domain.ValidationNaming
}

var (
	pascalCasePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	hookPattern       = regexp.MustCompile(`^use[A-Z]`)
	casedHookPattern  = regexp.MustCompile(`^Use[A-Z]`)

	// `export default Name` with nothing but the identifier: the only
	// form whose referent a text scanner can resolve
	bareDefaultExport = regexp.MustCompile(`(?m)^[ \t]*export[ \t]+default[ \t]+([A-Za-z_$][\w$]*)[ \t]*;?[ \t]*\r?$`)
)

// generic placeholder names a generator falls back to when the prompt
// gave it nothing better
var genericNames = map[string]bool{
	"Component":   true,
	"MyComponent": true,
	"App":         true,
	"Temp":        true,
	"Test":        true,
	"Example":     true,
	"Untitled":    true,
}

func (c *NamingChecker) Check(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue

	decls := source.TopLevelDecls(content)
	defaults := source.DefaultExports(content)

	flagged := map[string]bool{}
	for _, d := range decls {
		switch {
		case casedHookPattern.MatchString(d.Name):
			iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, d.Start,
				fmt.Sprintf("hook %q must be camelCase with a use prefix", d.Name))
			iss.Suggestion = "use" + d.Name[3:]
			issues = append(issues, iss)
		case hookPattern.MatchString(d.Name):
			// valid hook name
		case d.Export && !pascalCasePattern.MatchString(d.Name):
			iss := issueAt(c.Type(), domain.SeverityError, ctx, content, d.Start,
				fmt.Sprintf("exported component %q is not PascalCase", d.Name))
			iss.Suggestion = toPascalCase(d.Name)
			issues = append(issues, iss)
			flagged[d.Name] = true
		}
	}

	for _, d := range defaults {
		if d.Name == "" {
			continue
		}
		if !flagged[d.Name] && !hookPattern.MatchString(d.Name) && !pascalCasePattern.MatchString(d.Name) {
			iss := issueAt(c.Type(), domain.SeverityError, ctx, content, d.Start,
				fmt.Sprintf("default export %q is not PascalCase", d.Name))
			iss.Suggestion = toPascalCase(d.Name)
			issues = append(issues, iss)
		}
		if genericNames[d.Name] {
			issues = append(issues, issueAt(c.Type(), domain.SeverityInfo, ctx, content, d.Start,
				fmt.Sprintf("component name %q is generic; use a descriptive name", d.Name)))
		}
		if iss, ok := c.checkFileName(ctx, d.Name); ok {
			issues = append(issues, iss)
		}
	}

	issues = append(issues, c.checkExportConsistency(content, ctx, decls)...)

	return issues
}

// checkExportConsistency verifies that a bare `export default Name`
// statement references something that exists: a top-level declaration or
// an imported binding. Expression exports (memo(Card), HOC wrappers) are
// beyond a text scanner and left alone.
func (c *NamingChecker) checkExportConsistency(content string, ctx Context, decls []source.Decl) []domain.Issue {
	known := map[string]bool{}
	for _, d := range decls {
		known[d.Name] = true
	}
	for _, s := range source.ParseImports(content) {
		for _, b := range s.Bindings() {
			known[b] = true
		}
	}

	var issues []domain.Issue
	for _, m := range bareDefaultExport.FindAllStringSubmatchIndex(content, -1) {
		name := content[m[2]:m[3]]
		if known[name] {
			continue
		}
		iss := issueAt(c.Type(), domain.SeverityError, ctx, content, m[0],
			fmt.Sprintf("default export %q has no matching declaration or import in this file", name))
		iss.Suggestion = fmt.Sprintf("export the component that is declared, or declare %s", name)
		issues = append(issues, iss)
	}
	return issues
}

// checkFileName compares the default export against the file basename.
// index files are conventional re-export points and exempt.
func (c *NamingChecker) checkFileName(ctx Context, name string) (domain.Issue, bool) {
	if ctx.FilePath == "" {
		return domain.Issue{}, false
	}
	base := filepath.Base(ctx.FilePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "index" || strings.EqualFold(base, name) {
		return domain.Issue{}, false
	}
	iss := issue(c.Type(), domain.SeverityInfo, ctx,
		fmt.Sprintf("file %q does not match exported component %q", filepath.Base(ctx.FilePath), name))
	return iss, true
}

// toPascalCase rebuilds an identifier as PascalCase from its camel-case
// and separator segments.
func toPascalCase(name string) string {
	var b strings.Builder
	for _, word := range camelcase.Split(name) {
		runes := []rune(word)
		if len(runes) == 0 || !unicode.IsLetter(runes[0]) && !unicode.IsDigit(runes[0]) {
			continue
		}
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
