package source

import "regexp"

// Decl is one top-level declaration that may be a component.
type Decl struct {
	Name   string
	Kind   string // function | arrow | class
	Line   int
	Start  int
	Export bool // declared with a leading export keyword
}

var (
	funcDecl  = regexp.MustCompile(`(?m)^[ \t]*(export[ \t]+)?(?:default[ \t]+)?(?:async[ \t]+)?function[ \t]+([A-Za-z_$][\w$]*)[ \t]*(?:<[^>\n]*>)?[ \t]*\(`)
	arrowDecl = regexp.MustCompile(`(?m)^[ \t]*(export[ \t]+)?const[ \t]+([A-Za-z_$][\w$]*)(?:[ \t]*:[ \t]*[^=\n]+)?[ \t]*=[ \t]*(?:async[ \t]+)?(?:\(|[A-Za-z_$][\w$]*[ \t]*=>|React\.(?:forwardRef|memo)|forwardRef|memo)`)
	classDecl = regexp.MustCompile(`(?m)^[ \t]*(export[ \t]+)?(?:default[ \t]+)?class[ \t]+([A-Za-z_$][\w$]*)`)
)

// TopLevelDecls scans for function, arrow-const, and class declarations
// at the start of a line. Nested declarations are indistinguishable from
// indented top-level code to a text scanner; generated components keep
// their declarations flush-left, which is what this targets.
func TopLevelDecls(content string) []Decl {
	var out []Decl
	collect := func(re *regexp.Regexp, kind string) {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			d := Decl{
				Name:   content[m[4]:m[5]],
				Kind:   kind,
				Start:  m[0],
				Export: m[2] >= 0,
			}
			d.Line = LineOf(content, m[0])
			out = append(out, d)
		}
	}
	collect(funcDecl, "function")
	collect(arrowDecl, "arrow")
	collect(classDecl, "class")
	return out
}

// DefaultExport is one `export default …` statement.
type DefaultExport struct {
	Name  string // referenced or declared identifier; empty when anonymous
	Line  int
	Start int
}

var defaultExportPattern = regexp.MustCompile(`(?m)^[ \t]*export[ \t]+default[ \t]+(?:(?:async[ \t]+)?function[ \t]*([A-Za-z_$][\w$]*)?|class[ \t]+([A-Za-z_$][\w$]*)?|([A-Za-z_$][\w$]*))?`)

// DefaultExports returns every default export statement in source order.
func DefaultExports(content string) []DefaultExport {
	var out []DefaultExport
	for _, m := range defaultExportPattern.FindAllStringSubmatchIndex(content, -1) {
		d := DefaultExport{Start: m[0]}
		for _, g := range []int{2, 4, 6} {
			if m[g] >= 0 {
				d.Name = content[m[g]:m[g+1]]
				break
			}
		}
		// anonymous forms leak keywords into the identifier alternative
		if d.Name == "async" || d.Name == "function" || d.Name == "class" || d.Name == "new" {
			d.Name = ""
		}
		d.Line = LineOf(content, m[0])
		out = append(out, d)
	}
	return out
}

var (
	interfaceDecl = regexp.MustCompile(`(?m)^[ \t]*(?:export[ \t]+)?interface[ \t]+([A-Za-z_$][\w$]*)`)
	typeAliasDecl = regexp.MustCompile(`(?m)^[ \t]*(?:export[ \t]+)?type[ \t]+([A-Za-z_$][\w$]*)[ \t]*(?:<[^>\n]*>)?[ \t]*=`)
)

// DeclaredTypes returns the names of interfaces and type aliases declared
// in the file.
func DeclaredTypes(content string) []string {
	var out []string
	for _, re := range []*regexp.Regexp{interfaceDecl, typeAliasDecl} {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			out = append(out, m[1])
		}
	}
	return out
}
