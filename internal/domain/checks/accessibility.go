package checks

import (
	"regexp"
	"strings"

	"github.com/uiforge/uiforge/internal/domain"
)

// AccessibilityChecker covers the accessibility defects generators hit
// most: images without alternative text, icon-only buttons with no
// accessible name, and click handlers on non-interactive elements.
type AccessibilityChecker struct{}

func NewAccessibilityChecker() *AccessibilityChecker { return &AccessibilityChecker{} }

func (c *AccessibilityChecker) Type() domain.ValidationType { return domain.ValidationAccessibility }

func (c *AccessibilityChecker) Supports(t domain.ValidationType) bool {
	return t == domain.ValidationAccessibility
}

var (
	imgTag          = regexp.MustCompile(`<(?:img|Image)\b[^>]*>`)
	altAttr         = regexp.MustCompile(`\balt=`)
	buttonOpenTag   = regexp.MustCompile(`<button\b[^>]*>`)
	buttonClose     = "</button>"
	accessibleName  = regexp.MustCompile(`\baria-label(?:ledby)?=|\btitle=`)
	innerTag        = regexp.MustCompile(`<[^>]*>`)
	innerExpression = regexp.MustCompile(`\{[^}]*\}`)
	clickableDiv    = regexp.MustCompile(`<(?:div|span)\b[^>]*\bonClick=`)
	roleAttr        = regexp.MustCompile(`\brole=`)
)

func (c *AccessibilityChecker) Check(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue

	for _, m := range imgTag.FindAllStringIndex(content, -1) {
		tag := content[m[0]:m[1]]
		if !altAttr.MatchString(tag) {
			iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0],
				"image element has no alt attribute")
			iss.Suggestion = `add alt="" for decorative images or descriptive text otherwise`
			issues = append(issues, iss)
		}
	}

	for _, m := range buttonOpenTag.FindAllStringIndex(content, -1) {
		tag := content[m[0]:m[1]]
		if accessibleName.MatchString(tag) {
			continue
		}
		if hasTextContent(content, m[1]) {
			continue
		}
		iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0],
			"icon-only button has no accessible name")
		iss.Suggestion = "add an aria-label describing the action"
		issues = append(issues, iss)
	}

	for _, m := range clickableDiv.FindAllStringIndex(content, -1) {
		tag := content[m[0]:m[1]]
		if !roleAttr.MatchString(tag) {
			issues = append(issues, issueAt(c.Type(), domain.SeverityInfo, ctx, content, m[0],
				"onClick on a non-interactive element; use a button or add a role"))
		}
	}

	return issues
}

// hasTextContent reports whether the button body starting at offset
// contains visible text or a rendered expression. Nested markup is
// stripped first so <svg .../> icons do not count as text.
func hasTextContent(content string, bodyStart int) bool {
	end := strings.Index(content[bodyStart:], buttonClose)
	if end < 0 {
		return true
	}
	body := content[bodyStart : bodyStart+end]
	body = innerTag.ReplaceAllString(body, "")
	if innerExpression.MatchString(body) {
		return true
	}
	return strings.TrimSpace(body) != ""
}
