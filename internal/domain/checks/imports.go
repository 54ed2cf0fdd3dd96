package checks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/source"
)

// ImportsChecker resolves import statements against the project tree.
// All filesystem access is a bounded existence probe: a fixed candidate
// list per import, one package.json read per invocation, no walks. When
// the project root is missing the checker degrades to a single info
// issue instead of failing the run.
type ImportsChecker struct{}

func NewImportsChecker() *ImportsChecker { return &ImportsChecker{} }

func (c *ImportsChecker) Type() domain.ValidationType { return domain.ValidationImports }

func (c *ImportsChecker) Supports(t domain.ValidationType) bool {
	return t == domain.ValidationImports
}

// resolution candidates for extensionless relative imports
var importExtensions = []string{".tsx", ".ts", ".jsx", ".js"}

func (c *ImportsChecker) Check(content string, ctx Context) []domain.Issue {
	var issues []domain.Issue

	imports := source.ParseImports(content)
	if len(imports) == 0 {
		return nil
	}

	// 1. duplicate statements per module, and bindings pulled from two places
	issues = append(issues, c.checkDuplicates(content, ctx, imports)...)

	// 2. imports must precede other top-level statements
	if iss, ok := c.checkPlacement(content, ctx, imports); ok {
		issues = append(issues, iss)
	}

	// 3. resolve specifiers against the project tree
	root, ok, failure := probeRoot(ctx)
	if !ok {
		issues = append(issues, issue(c.Type(), domain.SeverityInfo, ctx, failure))
		return issues
	}
	deps := readPackageDeps(root)
	baseDir := importBaseDir(root, ctx.FilePath)

	for _, imp := range imports {
		switch {
		case strings.HasPrefix(imp.Module, "./"), strings.HasPrefix(imp.Module, "../"):
			if !resolveRelative(baseDir, imp.Module) {
				iss := issueAt(c.Type(), domain.SeverityError, ctx, content, imp.Start,
					fmt.Sprintf("unresolved relative import %q", imp.Module))
				iss.Suggestion = "create the referenced file or correct the path"
				issues = append(issues, iss)
			}
		case strings.HasPrefix(imp.Module, "@/"):
			if !resolveAlias(root, imp.Module) {
				issues = append(issues, issueAt(c.Type(), domain.SeverityWarning, ctx, content, imp.Start,
					fmt.Sprintf("aliased import %q does not resolve under the project root", imp.Module)))
			}
		case strings.HasPrefix(imp.Module, "~"), strings.HasPrefix(imp.Module, "#"):
			// custom alias maps live in bundler config; out of probing reach
		default:
			pkg := packageName(imp.Module)
			if deps == nil {
				if !probedNodeModules(root, pkg) {
					issues = append(issues, issue(c.Type(), domain.SeverityInfo, ctx,
						fmt.Sprintf("cannot verify external import %q: no package.json or node_modules under %s", imp.Module, root)))
				}
				continue
			}
			if !deps[pkg] && !probedNodeModules(root, pkg) {
				iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, imp.Start,
					fmt.Sprintf("external dependency %q is not declared in package.json", pkg))
				iss.Suggestion = fmt.Sprintf("add %q to dependencies or remove the import", pkg)
				issues = append(issues, iss)
			}
		}
	}

	return issues
}

// checkDuplicates flags modules imported by more than one statement and
// bindings imported from more than one module.
func (c *ImportsChecker) checkDuplicates(content string, ctx Context, imports []source.ImportStatement) []domain.Issue {
	var issues []domain.Issue

	order, groups := source.GroupByModule(imports)
	for _, module := range order {
		group := groups[module]
		if len(group) < 2 {
			continue
		}
		// namespace and side-effect statements cannot merge; only flag
		// when two statements could legally collapse into one
		mergeable := mergeableStatements(group)
		if len(mergeable) < 2 {
			continue
		}
		iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, group[1].Start,
			fmt.Sprintf("%d import statements for module %q; collapse to one", len(mergeable), module))
		iss.Suggestion = source.MergedStatement(mergeable)
		issues = append(issues, iss)
	}

	boundFrom := map[string]string{}
	for _, imp := range imports {
		for _, b := range imp.Bindings() {
			if prev, seen := boundFrom[b]; seen && prev != imp.Module {
				issues = append(issues, issueAt(c.Type(), domain.SeverityError, ctx, content, imp.Start,
					fmt.Sprintf("binding %q imported from both %q and %q", b, prev, imp.Module)))
				continue
			}
			boundFrom[b] = imp.Module
		}
	}

	return issues
}

// mergeableStatements filters a same-module group down to the statements
// a single combined import could replace.
func mergeableStatements(group []source.ImportStatement) []source.ImportStatement {
	var out []source.ImportStatement
	for _, s := range group {
		if s.Namespace == "" && !s.SideEffect {
			out = append(out, s)
		}
	}
	return out
}

// checkPlacement reports imports that appear after other top-level code.
func (c *ImportsChecker) checkPlacement(content string, ctx Context, imports []source.ImportStatement) (domain.Issue, bool) {
	other := firstNonImportCode(content, imports)
	if other < 0 {
		return domain.Issue{}, false
	}
	late := 0
	var firstLate source.ImportStatement
	for _, imp := range imports {
		if imp.Start > other {
			if late == 0 {
				firstLate = imp
			}
			late++
		}
	}
	if late == 0 {
		return domain.Issue{}, false
	}
	iss := issueAt(c.Type(), domain.SeverityWarning, ctx, content, firstLate.Start,
		fmt.Sprintf("%d import statement(s) appear after other top-level code; move imports to the top", late))
	return iss, true
}

// firstNonImportCode returns the offset of the first top-level code that
// is neither an import statement nor a runtime directive, or -1.
func firstNonImportCode(content string, imports []source.ImportStatement) int {
	type span struct{ start, end int }
	var spans []span
	for _, imp := range imports {
		spans = append(spans, span{imp.Start, imp.End})
	}
	for _, d := range source.Directives(content) {
		spans = append(spans, span{d.Start, d.End})
	}

	i := 0
	for i < len(content) {
		off := source.FirstCodeOffset(content[i:])
		if off == len(content[i:]) {
			return -1
		}
		abs := i + off
		inSpan := false
		for _, s := range spans {
			if abs >= s.start && abs < s.end {
				i = s.end
				inSpan = true
				break
			}
		}
		if !inSpan {
			return abs
		}
	}
	return -1
}

// probeRoot validates the project root for resolution. A missing or
// bogus root is caller misuse and must degrade, never abort.
func probeRoot(ctx Context) (string, bool, string) {
	if ctx.ProjectRoot == "" {
		return "", false, "no project root supplied; import resolution skipped"
	}
	info, err := os.Stat(ctx.ProjectRoot)
	if err != nil || !info.IsDir() {
		return "", false, fmt.Sprintf("project root %q does not exist; import resolution skipped", ctx.ProjectRoot)
	}
	return ctx.ProjectRoot, true, ""
}

// importBaseDir is the directory relative imports resolve from.
func importBaseDir(root, filePath string) string {
	if filePath == "" {
		return root
	}
	if filepath.IsAbs(filePath) {
		return filepath.Dir(filePath)
	}
	return filepath.Dir(filepath.Join(root, filePath))
}

// resolveRelative probes the fixed candidate list for a relative import.
func resolveRelative(baseDir, module string) bool {
	target := filepath.Join(baseDir, filepath.FromSlash(module))
	if filepath.Ext(module) != "" {
		return fileExists(target)
	}
	for _, ext := range importExtensions {
		if fileExists(target + ext) {
			return true
		}
	}
	for _, ext := range importExtensions {
		if fileExists(filepath.Join(target, "index"+ext)) {
			return true
		}
	}
	return false
}

// resolveAlias probes the conventional @/ mappings: project root and
// root/src.
func resolveAlias(root, module string) bool {
	rest := strings.TrimPrefix(module, "@/")
	return resolveRelative(root, "./"+rest) || resolveRelative(filepath.Join(root, "src"), "./"+rest)
}

// packageName extracts the npm package from a specifier, keeping the
// scope segment for @scope/name packages.
func packageName(module string) string {
	parts := strings.Split(module, "/")
	if strings.HasPrefix(module, "@") && len(parts) >= 2 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}

func probedNodeModules(root, pkg string) bool {
	info, err := os.Stat(filepath.Join(root, "node_modules", filepath.FromSlash(pkg)))
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// readPackageDeps loads the dependency names from package.json. Returns
// nil when the manifest is missing or unreadable.
func readPackageDeps(root string) map[string]bool {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}
	var manifest struct {
		Dependencies     map[string]string `json:"dependencies"`
		DevDependencies  map[string]string `json:"devDependencies"`
		PeerDependencies map[string]string `json:"peerDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil
	}
	deps := map[string]bool{}
	for name := range manifest.Dependencies {
		deps[name] = true
	}
	for name := range manifest.DevDependencies {
		deps[name] = true
	}
	for name := range manifest.PeerDependencies {
		deps[name] = true
	}
	return deps
}
