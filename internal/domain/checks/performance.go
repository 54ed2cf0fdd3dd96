package checks

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/uiforge/uiforge/internal/domain"
)

// PerformanceChecker flags render-path patterns that degrade under
// load: unstable prop identities, keyless list rendering, and huge
// synthetic collections.
type PerformanceChecker struct{}

func NewPerformanceChecker() *PerformanceChecker { return &PerformanceChecker{} }

func (c *PerformanceChecker) Type() domain.ValidationType { return domain.ValidationPerformance }

func (c *PerformanceChecker) Supports(t domain.ValidationType) bool {
	return t == domain.ValidationPerformance
}

const largeCollectionThreshold = 10000

var (
	componentTag  = regexp.MustCompile(`<[A-Z][A-Za-z0-9]*\b[^>]*>`)
	inlineObject  = regexp.MustCompile(`\b[a-zA-Z]\w*=\{\{`)
	inlineArray   = regexp.MustCompile(`\b[a-zA-Z]\w*=\{\[`)
	inlineArrow   = regexp.MustCompile(`\bon[A-Z]\w*=\{\s*(?:async\s*)?\(`)
	mapCall       = regexp.MustCompile(`\.map\s*\(`)
	keyAttr       = regexp.MustCompile(`\bkey=`)
	indexKey      = regexp.MustCompile(`\.map\s*\(\s*\(\s*\w+\s*,\s*(\w+)\s*\)`)
	arrayFromSize = regexp.MustCompile(`Array(?:\.from\s*\(\s*\{\s*length:\s*|\s*\(\s*)(\d+)`)
)

func (c *PerformanceChecker) Check(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue

	for _, m := range componentTag.FindAllStringIndex(content, -1) {
		tag := content[m[0]:m[1]]
		if loc := inlineObject.FindStringIndex(tag); loc != nil {
			issues = append(issues, issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0]+loc[0],
				"inline object literal prop creates a new identity every render"))
		}
		if loc := inlineArray.FindStringIndex(tag); loc != nil {
			issues = append(issues, issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0]+loc[0],
				"inline array literal prop creates a new identity every render"))
		}
		if loc := inlineArrow.FindStringIndex(tag); loc != nil {
			iss := issueAt(c.Type(), domain.SeverityInfo, ctx, content, m[0]+loc[0],
				"inline handler prop on a component; consider useCallback")
			issues = append(issues, iss)
		}
	}

	issues = append(issues, c.checkKeylessMap(content, ctx)...)

	for _, m := range arrayFromSize.FindAllStringSubmatchIndex(content, -1) {
		size, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil || size < largeCollectionThreshold {
			continue
		}
		issues = append(issues, issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0],
			fmt.Sprintf("synthetic collection of %d elements built in the render path", size)))
	}

	if m := indexKey.FindStringSubmatchIndex(content); m != nil {
		index := content[m[2]:m[3]]
		if keyAttr.MatchString(content[m[1]:]) && strings.Contains(content[m[1]:], "key={"+index+"}") {
			issues = append(issues, issueAt(c.Type(), domain.SeverityInfo, ctx, content, m[0],
				"array index used as list key; prefer a stable identifier"))
		}
	}

	return issues
}

// checkKeylessMap flags map callbacks that render JSX without a key
// attribute on the first element. The scan window is capped so a map
// over plain data never triggers a long lookahead.
func (c *PerformanceChecker) checkKeylessMap(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue
	for _, m := range mapCall.FindAllStringIndex(content, -1) {
		window := content[m[1]:]
		if len(window) > 400 {
			window = window[:400]
		}
		tagStart := strings.IndexByte(window, '<')
		if tagStart < 0 || tagStart+1 >= len(window) || !isTagNameByte(window[tagStart+1]) {
			continue
		}
		tagEnd := strings.IndexByte(window[tagStart:], '>')
		if tagEnd < 0 {
			continue
		}
		tag := window[tagStart : tagStart+tagEnd]
		if !keyAttr.MatchString(tag) {
			issues = append(issues, issueAt(c.Type(), domain.SeverityWarning, ctx, content, m[0],
				"list rendered with .map has no key attribute"))
		}
	}
	return issues
}

func isTagNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
