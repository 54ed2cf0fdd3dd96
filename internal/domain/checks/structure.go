package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/source"
)

// StructureChecker validates component shape: a single default export,
// runtime directives on the first line, client hooks only in files
// marked as client components, and referenced types that actually
// resolve to an in-file declaration or an import.
type StructureChecker struct{}

func NewStructureChecker() *StructureChecker { return &StructureChecker{} }

func (c *StructureChecker) Type() domain.ValidationType { return domain.ValidationStructure }

func (c *StructureChecker) Supports(t domain.ValidationType) bool {
	return t == domain.ValidationStructure
}

var (
	clientHookCall  = regexp.MustCompile(`\buse(State|Effect|Ref|Reducer|Context|Callback|Memo|LayoutEffect|Transition|ImperativeHandle)\s*\(`)
	jsxElement      = regexp.MustCompile(`<[A-Za-z][^>]*>`)
	fcAnnotation    = regexp.MustCompile(`(?:React\.)?FC<\s*([A-Za-z_$][\w$]*)\s*>`)
	propsAnnotation = regexp.MustCompile(`\(\s*(?:\{[^)]*\}|props)\s*:\s*([A-Za-z_$][\w$]*)\s*\)`)
)

func (c *StructureChecker) Check(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue

	defaults := source.DefaultExports(content)
	switch {
	case len(defaults) == 0:
		iss := issue(c.Type(), domain.SeverityError, ctx, "component has no default export")
		iss.Suggestion = "export default the component function"
		issues = append(issues, iss)
	case len(defaults) > 1:
		issues = append(issues, issueAt(c.Type(), domain.SeverityError, ctx, content, defaults[1].Start,
			fmt.Sprintf("%d default exports found; a module allows exactly one", len(defaults))))
	default:
		if defaults[0].Name == "" {
			issues = append(issues, issueAt(c.Type(), domain.SeverityInfo, ctx, content, defaults[0].Start,
				"default export is anonymous; name the component for stack traces and devtools"))
		}
	}

	issues = append(issues, c.checkDirectives(content, ctx)...)

	if ctx.Framework == domain.FrameworkNext {
		if iss, ok := c.checkClientBoundary(content, ctx); ok {
			issues = append(issues, iss)
		}
	}

	if ctx.TypeScript {
		issues = append(issues, c.checkReferencedTypes(content, ctx)...)
	}

	if len(defaults) > 0 && !jsxElement.MatchString(content) {
		issues = append(issues, issue(c.Type(), domain.SeverityInfo, ctx,
			"no JSX markup found in component file"))
	}

	return issues
}

// checkReferencedTypes verifies that every props type annotation resolves
// to a declaration in this file or an imported binding.
func (c *StructureChecker) checkReferencedTypes(content string, ctx Context) []domain.Issue {
	masked, _ := source.MaskLiterals(content)

	known := map[string]bool{}
	for _, t := range source.DeclaredTypes(content) {
		known[t] = true
	}
	for _, s := range source.ParseImports(content) {
		for _, b := range s.Bindings() {
			known[b] = true
		}
	}

	var issues []domain.Issue
	seen := map[string]bool{}
	report := func(offset int, name string) {
		// lowercase annotations are TS primitives (any, object, ...);
		// declared props types are PascalCase by convention
		if name == "" || name[0] >= 'a' && name[0] <= 'z' {
			return
		}
		if seen[name] || known[name] || builtinReactType(name) {
			return
		}
		seen[name] = true
		iss := issueAt(c.Type(), domain.SeverityError, ctx, content, offset,
			fmt.Sprintf("props type %q is neither declared in this file nor imported", name))
		iss.Suggestion = fmt.Sprintf("declare `interface %s { … }` or import it", name)
		issues = append(issues, iss)
	}

	for _, m := range fcAnnotation.FindAllStringSubmatchIndex(masked, -1) {
		report(m[0], masked[m[2]:m[3]])
	}
	for _, m := range propsAnnotation.FindAllStringSubmatchIndex(masked, -1) {
		report(m[0], masked[m[2]:m[3]])
	}
	return issues
}

// builtinReactType filters annotations that resolve via the global React
// and DOM type namespaces rather than file-local declarations.
func builtinReactType(name string) bool {
	switch name {
	case "React", "JSX", "ReactNode", "ReactElement", "FC", "PropsWithChildren",
		"CSSProperties", "MouseEvent", "KeyboardEvent", "ChangeEvent", "FormEvent",
		"HTMLElement", "HTMLInputElement", "HTMLButtonElement", "HTMLDivElement":
		return true
	}
	return strings.HasPrefix(name, "HTML") || strings.HasPrefix(name, "SVG")
}

// checkDirectives flags directives that are present but not the first
// statement, and duplicated directives.
func (c *StructureChecker) checkDirectives(content string, ctx Context) []domain.Issue {
	directives := source.Directives(content)
	if len(directives) == 0 {
		return nil
	}

	var issues []domain.Issue
	if !source.DirectiveIsFirst(content, directives[0]) {
		name := "use " + directives[0].Value
		iss := issueAt(c.Type(), domain.SeverityError, ctx, content, directives[0].Start,
			fmt.Sprintf("%q directive must be the first statement in the file", name))
		iss.Suggestion = fmt.Sprintf("move %q to line 1", name)
		issues = append(issues, iss)
	}
	if len(directives) > 1 {
		issues = append(issues, issueAt(c.Type(), domain.SeverityWarning, ctx, content, directives[1].Start,
			fmt.Sprintf("%d runtime directives found; keep a single one", len(directives))))
	}
	return issues
}

// checkClientBoundary warns when a Next.js component calls client hooks
// without declaring 'use client'.
func (c *StructureChecker) checkClientBoundary(content string, ctx Context) (domain.Issue, bool) {
	m := clientHookCall.FindStringIndex(content)
	if m == nil {
		return domain.Issue{}, false
	}
	for _, d := range source.Directives(content) {
		if d.Value == "client" {
			return domain.Issue{}, false
		}
	}
	iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0],
		"client hooks are used without a 'use client' directive")
	iss.Suggestion = "add 'use client' as the first line"
	return iss, true
}
