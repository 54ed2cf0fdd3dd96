package source

import "regexp"

// Directive is a runtime-mode pragma such as "use client". Frameworks
// that honor these require them before any other statement.
type Directive struct {
	Value string // client or server
	Raw   string // statement text as written
	Line  int
	Start int // byte offset of the statement start
	End   int // byte offset just past the statement and its newline
}

var directivePattern = regexp.MustCompile(`(?m)^[ \t]*(['"])use (client|server)(['"])[ \t]*;?[ \t]*\r?\n?`)

// Directives returns every use-client/use-server directive statement in
// source order.
func Directives(content string) []Directive {
	var out []Directive
	for _, m := range directivePattern.FindAllStringSubmatchIndex(content, -1) {
		d := Directive{
			Value: content[m[4]:m[5]],
			Raw:   content[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
		}
		d.Line = LineOf(content, m[0])
		out = append(out, d)
	}
	return out
}

// DirectiveIsFirst reports whether the directive occupies the first
// statement position: nothing but blank lines and comments before its
// opening quote.
func DirectiveIsFirst(content string, d Directive) bool {
	return FirstCodeOffset(content) == d.Start+indexOfQuote(d.Raw)
}

func indexOfQuote(raw string) int {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\'' || raw[i] == '"' {
			return i
		}
	}
	return 0
}
