package source

import (
	"regexp"
	"strings"
)

// ImportStatement is one parsed top-level import.
type ImportStatement struct {
	Raw        string   // statement text as written, without trailing newline
	Module     string   // module specifier
	Default    string   // default binding, if any
	Namespace  string   // namespace alias from `* as X`, if any
	Named      []string // named bindings, including `a as b` forms
	TypeOnly   bool     // `import type …`
	SideEffect bool     // `import './x.css'` — no bindings
	Quote      byte     // quote style of the specifier
	Line       int      // 1-based line of the statement start
	Start      int      // byte offset of the statement start
	End        int      // byte offset just past the statement (and its semicolon)
}

// Bindings returns every name the statement introduces.
func (s ImportStatement) Bindings() []string {
	var out []string
	if s.Default != "" {
		out = append(out, s.Default)
	}
	if s.Namespace != "" {
		out = append(out, s.Namespace)
	}
	for _, n := range s.Named {
		// `orig as alias` binds the alias
		if idx := strings.Index(n, " as "); idx >= 0 {
			out = append(out, strings.TrimSpace(n[idx+4:]))
			continue
		}
		out = append(out, strings.TrimSpace(n))
	}
	return out
}

// statement start: `import` at the beginning of a line (leading blanks ok).
var importStart = regexp.MustCompile(`(?m)^[ \t]*import\b`)

// specifier: the quoted module at the end of the statement.
var importSpecifier = regexp.MustCompile(`(['"])([^'"]+)(['"])`)

// ParseImports scans content for top-level import statements in source
// order. Dynamic import() calls are not statements and are ignored.
func ParseImports(content string) []ImportStatement {
	var out []ImportStatement
	for _, loc := range importStart.FindAllStringIndex(content, -1) {
		start := loc[0]
		// skip indentation inside the match
		kw := start + strings.Index(content[start:loc[1]], "import")

		rest := content[kw:]
		if strings.HasPrefix(rest, "import(") || strings.HasPrefix(rest, "import (") {
			continue
		}

		spec := importSpecifier.FindStringSubmatchIndex(rest)
		if spec == nil {
			continue
		}
		// a well-formed clause never crosses a semicolon or runs long;
		// skip malformed statements instead of swallowing the file
		clauseText := rest[len("import"):spec[0]]
		if strings.ContainsRune(clauseText, ';') || len(clauseText) > 400 {
			continue
		}
		end := kw + spec[1]
		if end < len(content) && content[end] == ';' {
			end++
		}

		stmt := ImportStatement{
			Raw:    strings.TrimRight(content[start:end], " \t"),
			Module: rest[spec[4]:spec[5]],
			Quote:  rest[spec[2]],
			Start:  start,
			End:    end,
		}
		stmt.Line = LineOf(content, kw)

		parseImportClause(strings.TrimSpace(clauseText), &stmt)
		out = append(out, stmt)
	}
	return out
}

// parseImportClause fills in bindings from the text between `import` and
// the module specifier.
func parseImportClause(clause string, stmt *ImportStatement) {
	clause = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(clause), "from"))
	clause = strings.TrimSpace(clause)
	if clause == "" {
		stmt.SideEffect = true
		return
	}
	if strings.HasPrefix(clause, "type ") || clause == "type" {
		stmt.TypeOnly = true
		clause = strings.TrimSpace(strings.TrimPrefix(clause, "type"))
		if clause == "" {
			stmt.SideEffect = true
			return
		}
	}

	if open := strings.IndexByte(clause, '{'); open >= 0 {
		closeIdx := strings.LastIndexByte(clause, '}')
		if closeIdx > open {
			for _, part := range strings.Split(clause[open+1:closeIdx], ",") {
				if name := strings.Join(strings.Fields(part), " "); name != "" {
					stmt.Named = append(stmt.Named, name)
				}
			}
		}
		clause = strings.TrimSpace(clause[:open])
		clause = strings.TrimSuffix(clause, ",")
		clause = strings.TrimSpace(clause)
	}

	if idx := strings.Index(clause, "* as "); idx >= 0 {
		stmt.Namespace = strings.TrimSpace(clause[idx+len("* as "):])
		clause = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(clause[:idx]), ","))
	}

	if clause != "" {
		stmt.Default = clause
	}
}

// MergedStatement builds one import statement combining the default and
// named bindings of every statement in the group (all must share a
// module). Named bindings are deduplicated in first-seen order. The
// caller keeps namespace and side-effect statements separate — they
// cannot legally merge with named bindings.
func MergedStatement(group []ImportStatement) string {
	if len(group) == 0 {
		return ""
	}
	module := group[0].Module
	quote := string(group[0].Quote)
	typeOnly := true

	var def string
	seen := map[string]bool{}
	var named []string
	for _, s := range group {
		if !s.TypeOnly {
			typeOnly = false
		}
		if def == "" && s.Default != "" {
			def = s.Default
		}
		for _, n := range s.Named {
			key := n
			if s.TypeOnly {
				key = "type " + n
			}
			if !seen[key] {
				seen[key] = true
				named = append(named, key)
			}
		}
	}

	// inline `type` markers are redundant on a fully type-only statement
	if typeOnly {
		for i, n := range named {
			named[i] = strings.TrimPrefix(n, "type ")
		}
	}

	var b strings.Builder
	b.WriteString("import ")
	if typeOnly {
		b.WriteString("type ")
	}
	if def != "" {
		b.WriteString(def)
		if len(named) > 0 {
			b.WriteString(", ")
		}
	}
	if len(named) > 0 {
		b.WriteString("{ ")
		b.WriteString(strings.Join(named, ", "))
		b.WriteString(" }")
	}
	if def != "" || len(named) > 0 {
		b.WriteString(" from ")
	}
	b.WriteString(quote)
	b.WriteString(module)
	b.WriteString(quote)
	b.WriteString(";")
	return b.String()
}

// GroupByModule buckets statements by module specifier, preserving the
// order in which each module first appears.
func GroupByModule(stmts []ImportStatement) ([]string, map[string][]ImportStatement) {
	var order []string
	groups := map[string][]ImportStatement{}
	for _, s := range stmts {
		if _, ok := groups[s.Module]; !ok {
			order = append(order, s.Module)
		}
		groups[s.Module] = append(groups[s.Module], s)
	}
	return order, groups
}
