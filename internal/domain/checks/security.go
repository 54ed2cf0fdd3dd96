package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/source"
)

// SecurityChecker scans for the injection sinks and credential leaks
// that make generated code unsafe to merge: raw HTML rendering,
// hardcoded secrets, dynamic code evaluation, and unsafe link targets.
type SecurityChecker struct{}

func NewSecurityChecker() *SecurityChecker { return &SecurityChecker{} }

func (c *SecurityChecker) Type() domain.ValidationType { return domain.ValidationSecurity }

func (c *SecurityChecker) Supports(t domain.ValidationType) bool {
	return t == domain.ValidationSecurity
}

var (
	dangerousHTML  = regexp.MustCompile(`dangerouslySetInnerHTML=\{\{`)
	sanitizerCall  = regexp.MustCompile(`DOMPurify\.sanitize|\bsanitize(?:Html)?\s*\(`)
	secretAssign   = regexp.MustCompile(`(?i)\b(api[_-]?key|secret|token|password|private[_-]?key)\s*[:=]\s*['"]([^'"]{8,})['"]`)
	credentialLike = regexp.MustCompile(`\b(sk-[A-Za-z0-9]{16,}|AIza[A-Za-z0-9_\-]{20,}|ghp_[A-Za-z0-9]{20,})\b`)
	evalCall       = regexp.MustCompile(`\beval\s*\(|\bnew\s+Function\s*\(`)
	insecureURL    = regexp.MustCompile(`http://[^\s'"<>\x60]+`)
	anchorBlank    = regexp.MustCompile(`<a\b[^>]*\btarget=["']_blank["'][^>]*>`)
	relNoopener    = regexp.MustCompile(`\brel=["'][^"']*noopener`)
)

func (c *SecurityChecker) Check(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue

	masked, _ := source.MaskLiterals(content)

	for _, m := range dangerousHTML.FindAllStringIndex(content, -1) {
		window := content[m[1]:]
		if len(window) > 300 {
			window = window[:300]
		}
		if sanitizerCall.MatchString(window) {
			issues = append(issues, issueAt(c.Type(), domain.SeverityInfo, ctx, content, m[0],
				"dangerouslySetInnerHTML is sanitized; verify the sanitizer configuration"))
			continue
		}
		iss := issueAt(c.Type(), domain.SeverityError, ctx, content, m[0],
			"dangerouslySetInnerHTML renders unsanitized markup")
		iss.Suggestion = "sanitize the value with DOMPurify.sanitize or render text content"
		issues = append(issues, iss)
	}

	for _, m := range secretAssign.FindAllStringSubmatchIndex(content, -1) {
		name := content[m[2]:m[3]]
		issues = append(issues, issueAt(c.Type(), domain.SeverityError, ctx, content, m[0],
			fmt.Sprintf("hardcoded %s in source; read it from the environment", strings.ToLower(name))))
	}

	for _, m := range credentialLike.FindAllStringIndex(content, -1) {
		issues = append(issues, issueAt(c.Type(), domain.SeverityError, ctx, content, m[0],
			"string matches a known credential format"))
	}

	if m := evalCall.FindStringIndex(masked); m != nil {
		issues = append(issues, issueAt(c.Type(), domain.SeverityError, ctx, content, m[0],
			"dynamic code evaluation is not allowed in components"))
	}

	for _, m := range insecureURL.FindAllStringIndex(content, -1) {
		url := content[m[0]:m[1]]
		if isLoopbackURL(url) {
			continue
		}
		iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0],
			fmt.Sprintf("insecure URL %q; use https", url))
		iss.Suggestion = "https://" + strings.TrimPrefix(url, "http://")
		issues = append(issues, iss)
	}

	for _, m := range anchorBlank.FindAllStringIndex(content, -1) {
		tag := content[m[0]:m[1]]
		if !relNoopener.MatchString(tag) {
			iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0],
				`target="_blank" link without rel="noopener"`)
			iss.Suggestion = `add rel="noopener noreferrer"`
			issues = append(issues, iss)
		}
	}

	return issues
}

func isLoopbackURL(url string) bool {
	host := strings.TrimPrefix(url, "http://")
	for _, loopback := range []string{"localhost", "127.0.0.1", "0.0.0.0", "[::1]"} {
		if strings.HasPrefix(host, loopback) {
			return true
		}
	}
	return false
}
