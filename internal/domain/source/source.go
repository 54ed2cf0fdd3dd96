// Package source provides pure-text scanning helpers over TSX/JSX
// component source. Checkers and autofix rules share these primitives;
// nothing here builds a real syntax tree — validation is heuristic by
// design and must stay cheap and deterministic.
package source

import "strings"

// LineColumn converts a byte offset into 1-based line and column numbers.
func LineColumn(content string, offset int) (int, int) {
	if offset > len(content) {
		offset = len(content)
	}
	line := 1
	col := 1
	for _, r := range content[:offset] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// LineOf returns the 1-based line number containing the byte offset.
func LineOf(content string, offset int) int {
	line, _ := LineColumn(content, offset)
	return line
}

// Snippet extracts the line containing offset, trimmed and capped at max runes.
func Snippet(content string, offset, max int) string {
	if offset > len(content) {
		offset = len(content)
	}
	start := strings.LastIndexByte(content[:offset], '\n') + 1
	end := strings.IndexByte(content[offset:], '\n')
	if end < 0 {
		end = len(content)
	} else {
		end += offset
	}
	s := strings.TrimSpace(content[start:end])
	if max > 0 && len(s) > max {
		runes := []rune(s)
		if len(runes) > max {
			s = string(runes[:max]) + "…"
		}
	}
	return s
}

// FirstCodeOffset returns the byte offset of the first top-level code in
// the file, skipping blank lines and // and /* */ comments. Returns
// len(content) when the file holds no code at all.
func FirstCodeOffset(content string) int {
	i := 0
	for i < len(content) {
		rest := content[i:]
		switch {
		case rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\r':
			i++
		case strings.HasPrefix(rest, "//"):
			nl := strings.IndexByte(rest, '\n')
			if nl < 0 {
				return len(content)
			}
			i += nl + 1
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest, "*/")
			if end < 0 {
				return len(content)
			}
			i += end + 2
		default:
			return i
		}
	}
	return len(content)
}

// MaskLiterals returns content with the interiors of string literals,
// template literals, and comments replaced by spaces, preserving length
// and all offsets. Delimiters are kept. The second result reports an
// unterminated literal or comment at end of file — a strong truncation
// signal for generated output.
func MaskLiterals(content string) (string, bool) {
	out := []byte(content)
	const (
		code = iota
		lineComment
		blockComment
		single
		double
		backtick
	)
	state := code
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch state {
		case code:
			switch {
			case c == '/' && i+1 < len(out) && out[i+1] == '/':
				state = lineComment
				i++
			case c == '/' && i+1 < len(out) && out[i+1] == '*':
				state = blockComment
				i++
			case c == '\'':
				// an apostrophe in JSX text (Don't, it's) is not a
				// string opener; disambiguate by the preceding token
				if singleQuoteOpensString(content, i) {
					state = single
				}
			case c == '"':
				state = double
			case c == '`':
				state = backtick
			}
		case lineComment:
			if c == '\n' {
				state = code
			} else {
				out[i] = ' '
			}
		case blockComment:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i] = ' '
				i++
				state = code
			} else if c != '\n' {
				out[i] = ' '
			}
		case single, double:
			quote := byte('\'')
			if state == double {
				quote = '"'
			}
			switch {
			case c == '\\' && i+1 < len(out):
				out[i] = ' '
				out[i+1] = ' '
				i++
			case c == quote:
				state = code
			case c == '\n':
				// strings do not span lines; treat as terminated
				state = code
			default:
				out[i] = ' '
			}
		case backtick:
			switch {
			case c == '\\' && i+1 < len(out):
				out[i] = ' '
				out[i+1] = ' '
				i++
			case c == '`':
				state = code
			case c != '\n':
				out[i] = ' '
			}
		}
	}
	return string(out), state != code && state != lineComment
}

// stringKeywords are the keywords after which a quote starts a string
// even though the preceding byte is a letter.
var stringKeywords = map[string]bool{
	"from": true, "return": true, "case": true, "of": true, "in": true,
	"typeof": true, "do": true, "else": true, "void": true, "new": true,
	"throw": true, "delete": true, "instanceof": true, "yield": true,
	"await": true, "import": true,
}

// singleQuoteOpensString decides whether the quote at offset begins a
// string literal. After an identifier byte or a closing bracket the
// quote is an apostrophe inside JSX text, unless the identifier is a
// keyword like from or return.
func singleQuoteOpensString(content string, offset int) bool {
	j := offset - 1
	for j >= 0 && (content[j] == ' ' || content[j] == '\t' || content[j] == '\n' || content[j] == '\r') {
		j--
	}
	if j < 0 {
		return true
	}
	c := content[j]
	if isWordByte(c) {
		start := j
		for start > 0 && isWordByte(content[start-1]) {
			start--
		}
		return stringKeywords[content[start:j+1]]
	}
	switch c {
	case ')', ']', '}', '"', '\'', '.', '>':
		return false
	}
	return true
}

// boundaryBefore reports whether the byte before offset ends a token,
// i.e. the match is not preceded by an identifier character or a hyphen
// (which would mean we are inside a larger token).
func boundaryBefore(content string, offset int) bool {
	if offset == 0 {
		return true
	}
	c := content[offset-1]
	return !isWordByte(c) && c != '-'
}

// boundaryAfter reports whether the byte at offset starts something
// outside the matched token. A trailing hyphen is allowed so that a
// valid continuation (e.g. a state suffix) survives collapsing.
func boundaryAfter(content string, offset int) bool {
	if offset >= len(content) {
		return true
	}
	return !isWordByte(content[offset])
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
