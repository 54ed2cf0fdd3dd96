package source

import (
	"regexp"
	"strings"
)

// TokenMatch is one malformed utility-class token found in content.
type TokenMatch struct {
	Token     string // the full malformed token, e.g. bg-gray-100-100-100
	Canonical string // the single-suffix form, e.g. bg-gray-100
	Start     int    // byte offset of the token
	Line      int
	Column    int
}

// repeatedScaleCandidate finds utility tokens whose numeric scale suffix
// may be repeated: base segments, a scale, then one or more extra numeric
// suffixes. RE2 has no backreferences, so equality of the extra suffixes
// with the scale is verified in code.
var repeatedScaleCandidate = regexp.MustCompile(`((?:-?[a-z][a-z0-9]*-)+)(\d{1,4})((?:-\d{1,4})+)`)

// FindRepeatedScaleTokens locates tokens like bg-gray-100-100-100 where a
// numeric scale is accidentally repeated. Matching is word-boundary
// anchored: a token embedded in a larger identifier is not flagged, and a
// non-numeric continuation (bg-gray-100-hover) never matches because the
// repeats must be numeric and equal to the scale.
func FindRepeatedScaleTokens(content string) []TokenMatch {
	var out []TokenMatch
	for _, m := range repeatedScaleCandidate.FindAllStringSubmatchIndex(content, -1) {
		start, end := m[0], m[1]
		if !boundaryBefore(content, start) || !boundaryAfter(content, end) {
			continue
		}
		scale := content[m[4]:m[5]]
		if !suffixesAllEqual(content[m[6]:m[7]], scale) {
			continue
		}
		tm := TokenMatch{
			Token:     content[start:end],
			Canonical: content[m[2]:m[3]] + scale,
			Start:     start,
		}
		tm.Line, tm.Column = LineColumn(content, start)
		out = append(out, tm)
	}
	return out
}

// CollapseRepeatedScaleTokens rewrites every repeated-scale token to its
// canonical form and reports how many tokens changed. Idempotent: a
// second pass finds nothing.
func CollapseRepeatedScaleTokens(content string) (string, int) {
	matches := FindRepeatedScaleTokens(content)
	if len(matches) == 0 {
		return content, 0
	}
	var b strings.Builder
	b.Grow(len(content))
	prev := 0
	for _, m := range matches {
		b.WriteString(content[prev:m.Start])
		b.WriteString(m.Canonical)
		prev = m.Start + len(m.Token)
	}
	b.WriteString(content[prev:])
	return b.String(), len(matches)
}

// suffixesAllEqual reports whether every dash-separated group in suffixes
// ("-100-100") equals scale.
func suffixesAllEqual(suffixes, scale string) bool {
	for _, part := range strings.Split(strings.TrimPrefix(suffixes, "-"), "-") {
		if part != scale {
			return false
		}
	}
	return true
}

// ClassAttr is the value of one className attribute.
type ClassAttr struct {
	Value string
	Start int // byte offset of the value within the file
}

var classAttrPattern = regexp.MustCompile("(?:className|class)\\s*=\\s*[{]?[\"'`]([^\"'`]*)[\"'`][}]?")

// ClassAttributes extracts string-literal className values. Expression
// values (clsx calls, ternaries) are out of reach for a text scanner and
// are skipped.
func ClassAttributes(content string) []ClassAttr {
	var out []ClassAttr
	for _, m := range classAttrPattern.FindAllStringSubmatchIndex(content, -1) {
		out = append(out, ClassAttr{Value: content[m[2]:m[3]], Start: m[2]})
	}
	return out
}
