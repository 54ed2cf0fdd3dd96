package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/source"
)

// StylingChecker validates class usage against the styling approach the
// project actually uses. Malformed utility tokens are the headline case:
// generators love to emit bg-gray-100-100-100 where bg-gray-100 was meant.
type StylingChecker struct{}

func NewStylingChecker() *StylingChecker { return &StylingChecker{} }

func (c *StylingChecker) Type() domain.ValidationType { return domain.ValidationStyling }

func (c *StylingChecker) Supports(t domain.ValidationType) bool {
	return t == domain.ValidationStyling
}

var (
	templateArtifact = regexp.MustCompile(`[{}$]`)
	inlineStyleAttr  = regexp.MustCompile(`<[a-z][a-z0-9]*\b[^>]*\bstyle=\{\{`)
	cssModuleUsage   = regexp.MustCompile(`\bstyles\.[A-Za-z_$][\w$]*`)
	styledUsage      = regexp.MustCompile(`\bstyled[.(]`)
)

func (c *StylingChecker) Check(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue

	if usesUtilityClasses(ctx.Styling) {
		issues = append(issues, c.checkUtilityTokens(content, ctx)...)
	}
	issues = append(issues, c.checkTemplateArtifacts(content, ctx)...)

	switch ctx.Styling {
	case domain.StylingCSSModules:
		issues = append(issues, c.checkCSSModules(content, ctx)...)
	case domain.StylingStyledComponents:
		issues = append(issues, c.checkStyledComponents(content, ctx)...)
	}

	if m := inlineStyleAttr.FindStringIndex(content); m != nil && ctx.Styling != domain.StylingStyledComponents {
		issues = append(issues, issueAt(c.Type(), domain.SeverityInfo, ctx, content, m[0],
			"inline style object on a DOM element; prefer the project styling approach"))
	}

	return issues
}

// usesUtilityClasses reports whether utility-token checks apply. An
// unset styling context gets them too: utility classes are the common
// case for generated components and the malformed-token check is cheap.
func usesUtilityClasses(s domain.Styling) bool {
	return s == domain.StylingTailwind || s == ""
}

func (c *StylingChecker) checkUtilityTokens(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue
	for _, m := range source.FindRepeatedScaleTokens(content) {
		iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, m.Start,
			fmt.Sprintf("malformed utility class %q: repeated scale suffix", m.Token))
		iss.Suggestion = m.Canonical
		issues = append(issues, iss)
	}
	return issues
}

// checkTemplateArtifacts flags leftover interpolation syntax inside
// literal class attributes, a frequent generator artifact.
func (c *StylingChecker) checkTemplateArtifacts(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue
	for _, attr := range source.ClassAttributes(content) {
		for _, token := range strings.Fields(attr.Value) {
			if templateArtifact.MatchString(token) {
				issues = append(issues, issueAt(c.Type(), domain.SeverityWarning, ctx, content, attr.Start,
					fmt.Sprintf("class attribute contains template artifact %q", token)))
			}
		}
	}
	return issues
}

// checkCSSModules requires a .module.css import whenever styles.* is
// referenced.
func (c *StylingChecker) checkCSSModules(content string, ctx Context) []domain.Issue {
	m := cssModuleUsage.FindStringIndex(content)
	if m == nil {
		return nil
	}
	for _, imp := range source.ParseImports(content) {
		if strings.Contains(imp.Module, ".module.") {
			return nil
		}
	}
	iss := issueAt(c.Type(), domain.SeverityError, ctx, content, m[0],
		"styles.* is referenced but no CSS module is imported")
	iss.Suggestion = "import styles from './Component.module.css'"
	return []domain.Issue{iss}
}

// checkStyledComponents requires the styled-components import whenever
// the styled factory is used, and flags utility-class stacks on DOM
// elements as an approach mismatch.
func (c *StylingChecker) checkStyledComponents(content string, ctx Context) []domain.Issue {
	issues := c.checkUtilityStacks(content, ctx)

	m := styledUsage.FindStringIndex(content)
	if m == nil {
		return issues
	}
	for _, imp := range source.ParseImports(content) {
		if imp.Module == "styled-components" || imp.Module == "@emotion/styled" {
			return issues
		}
	}
	iss := issueAt(c.Type(), domain.SeverityError, ctx, content, m[0],
		"styled.* is used but styled-components is not imported")
	iss.Suggestion = "import styled from 'styled-components'"
	return append(issues, iss)
}

// checkUtilityStacks flags multi-token class literals on DOM elements.
// The project styles with styled-components; a utility stack means the
// generator fell back to the wrong approach.
func (c *StylingChecker) checkUtilityStacks(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue
	for _, attr := range source.ClassAttributes(content) {
		if len(strings.Fields(attr.Value)) < 2 || !onDOMElement(content, attr.Start) {
			continue
		}
		iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, attr.Start,
			fmt.Sprintf("utility class stack %q on a DOM element in a styled-components project", attr.Value))
		iss.Suggestion = "move these styles into a styled component"
		issues = append(issues, iss)
	}
	return issues
}

// onDOMElement reports whether the attribute at offset sits on a
// lowercase (DOM) element rather than a component.
func onDOMElement(content string, offset int) bool {
	open := strings.LastIndexByte(content[:offset], '<')
	if open < 0 || open+1 >= len(content) {
		return false
	}
	ch := content[open+1]
	return ch >= 'a' && ch <= 'z'
}
