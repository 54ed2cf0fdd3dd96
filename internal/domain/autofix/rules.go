package autofix

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/uiforge/uiforge/internal/domain/source"
)

// Rule is one (detection, canonicalization) pair. Detect is cheap and
// side-effect free; Apply rewrites content to its canonical form and
// reports how many sites changed. Every rule is idempotent: applying it
// to its own output changes nothing.
type Rule struct {
	Name        string
	Description string
	Detect      func(content string) bool
	Apply       func(content string) (string, int)
}

// DefaultRules returns the rule table in application order. Order
// matters: directives move before imports collapse so the collapsed
// block lands below the directive, and token fixes run on settled text.
func DefaultRules() []Rule {
	return []Rule{
		directiveFirstRule(),
		collapseDuplicateImportsRule(),
		repeatedScaleTokenRule(),
		brokenAssetRefRule(),
	}
}

// directiveFirstRule moves a use-client/use-server directive to the very
// first line and drops duplicates. The canonical form is double-quoted
// with a semicolon.
func directiveFirstRule() Rule {
	needsWork := func(content string) ([]source.Directive, bool) {
		ds := source.Directives(content)
		if len(ds) == 0 {
			return nil, false
		}
		if len(ds) > 1 {
			return ds, true
		}
		return ds, ds[0].Start != 0 || !strings.HasPrefix(ds[0].Raw, `"`)
	}
	return Rule{
		Name:        "directive-first",
		Description: "move the runtime directive to the first line and drop duplicates",
		Detect: func(content string) bool {
			_, ok := needsWork(content)
			return ok
		},
		Apply: func(content string) (string, int) {
			ds, ok := needsWork(content)
			if !ok {
				return content, 0
			}
			var b strings.Builder
			b.Grow(len(content))
			prev := 0
			for _, d := range ds {
				b.WriteString(content[prev:d.Start])
				prev = d.End
			}
			b.WriteString(content[prev:])
			stripped := strings.TrimLeft(b.String(), "\r\n")
			return fmt.Sprintf("\"use %s\";\n%s", ds[0].Value, stripped), len(ds)
		},
	}
}

// collapseDuplicateImportsRule merges repeated import statements for the
// same module into one. Namespace and side-effect imports cannot merge
// and are left alone.
func collapseDuplicateImportsRule() Rule {
	duplicates := func(content string) map[string][]source.ImportStatement {
		_, groups := source.GroupByModule(source.ParseImports(content))
		out := map[string][]source.ImportStatement{}
		for module, group := range groups {
			var mergeable []source.ImportStatement
			for _, s := range group {
				if s.Namespace == "" && !s.SideEffect {
					mergeable = append(mergeable, s)
				}
			}
			if len(mergeable) > 1 {
				out[module] = mergeable
			}
		}
		return out
	}
	return Rule{
		Name:        "collapse-duplicate-imports",
		Description: "merge repeated import statements for the same module",
		Detect: func(content string) bool {
			return len(duplicates(content)) > 0
		},
		Apply: func(content string) (string, int) {
			dups := duplicates(content)
			if len(dups) == 0 {
				return content, 0
			}

			type edit struct {
				start, end  int
				replacement string
			}
			var edits []edit
			count := 0
			for _, group := range dups {
				merged := source.MergedStatement(group)
				edits = append(edits, edit{group[0].Start, group[0].End, merged})
				for _, s := range group[1:] {
					end := s.End
					// take the statement's newline with it
					if end < len(content) && content[end] == '\r' {
						end++
					}
					if end < len(content) && content[end] == '\n' {
						end++
					}
					edits = append(edits, edit{s.Start, end, ""})
				}
				count += len(group) - 1
			}

			sort.Slice(edits, func(i, j int) bool { return edits[i].start > edits[j].start })
			out := content
			for _, e := range edits {
				out = out[:e.start] + e.replacement + out[e.end:]
			}
			return out, count
		},
	}
}

// repeatedScaleTokenRule collapses malformed utility classes like
// bg-gray-100-100-100 to their single-suffix form.
func repeatedScaleTokenRule() Rule {
	return Rule{
		Name:        "repeated-scale-token",
		Description: "collapse repeated numeric scale suffixes in utility classes",
		Detect: func(content string) bool {
			return len(source.FindRepeatedScaleTokens(content)) > 0
		},
		Apply: source.CollapseRepeatedScaleTokens,
	}
}

var (
	emptySrcAttr       = regexp.MustCompile(`\bsrc=(["'])(?:undefined|null)?(["'])`)
	placeholderAPIPath = regexp.MustCompile(`(["'])/api/placeholder/(\d+)/(\d+)`)
)

const fallbackAsset = "https://placehold.co/600x400"

// brokenAssetRefRule rewrites asset references a generator left dangling:
// empty or literal-undefined src values and /api/placeholder/W/H paths
// that exist in no real project.
func brokenAssetRefRule() Rule {
	return Rule{
		Name:        "broken-asset-ref",
		Description: "replace dangling asset references with a hosted placeholder",
		Detect: func(content string) bool {
			return emptySrcAttr.MatchString(content) || placeholderAPIPath.MatchString(content)
		},
		Apply: func(content string) (string, int) {
			count := 0
			out := emptySrcAttr.ReplaceAllStringFunc(content, func(m string) string {
				count++
				sub := emptySrcAttr.FindStringSubmatch(m)
				return "src=" + sub[1] + fallbackAsset + sub[2]
			})
			out = placeholderAPIPath.ReplaceAllStringFunc(out, func(m string) string {
				count++
				sub := placeholderAPIPath.FindStringSubmatch(m)
				return sub[1] + "https://placehold.co/" + sub[2] + "x" + sub[3]
			})
			return out, count
		},
	}
}
