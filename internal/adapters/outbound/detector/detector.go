package detector

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/uiforge/uiforge/internal/domain"
)

// ContextDetector implements domain.ContextDetector by reading project
// manifests. package.json dependencies decide the framework and styling;
// tsconfig.json decides the TypeScript flag. Config overrides are the
// caller's business.
type ContextDetector struct{}

func New() *ContextDetector {
	return &ContextDetector{}
}

// componentDirCandidates are probed in order; the first existing
// directory wins.
var componentDirCandidates = []string{
	"src/components",
	"components",
	"app/components",
	"src/ui",
}

func (d *ContextDetector) Detect(root string) (*domain.ProjectContext, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("project root %q is not a directory", root)
	}

	deps := readDependencies(absPath)

	return &domain.ProjectContext{
		Root:         absPath,
		Framework:    detectFramework(absPath, deps),
		Styling:      detectStyling(absPath, deps),
		TypeScript:   detectTypeScript(absPath, deps),
		ComponentDir: detectComponentDir(absPath),
		DetectedAt:   time.Now(),
	}, nil
}

// readDependencies merges dependencies and devDependencies from
// package.json. A missing or malformed manifest yields an empty map,
// leaving detection to the file probes.
func readDependencies(root string) map[string]string {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return map[string]string{}
	}

	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return map[string]string{}
	}

	deps := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for k, v := range pkg.Dependencies {
		deps[k] = v
	}
	for k, v := range pkg.DevDependencies {
		deps[k] = v
	}
	return deps
}

func detectFramework(root string, deps map[string]string) domain.Framework {
	switch {
	case hasDep(deps, "next") || hasConfig(root, "next.config"):
		return domain.FrameworkNext
	case hasDep(deps, "@remix-run/react") || hasDep(deps, "@remix-run/node"):
		return domain.FrameworkRemix
	case hasDep(deps, "vite") && hasDep(deps, "react"):
		return domain.FrameworkVite
	default:
		return domain.FrameworkReact
	}
}

func detectStyling(root string, deps map[string]string) domain.Styling {
	switch {
	case hasDep(deps, "tailwindcss") || hasConfig(root, "tailwind.config"):
		return domain.StylingTailwind
	case hasDep(deps, "styled-components") || hasDep(deps, "@emotion/styled"):
		return domain.StylingStyledComponents
	case hasModuleCSS(root):
		return domain.StylingCSSModules
	default:
		return domain.StylingCSS
	}
}

func detectTypeScript(root string, deps map[string]string) bool {
	if _, err := os.Stat(filepath.Join(root, "tsconfig.json")); err == nil {
		return true
	}
	return hasDep(deps, "typescript")
}

func detectComponentDir(root string) string {
	for _, candidate := range componentDirCandidates {
		path := filepath.Join(root, filepath.FromSlash(candidate))
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ""
}

func hasDep(deps map[string]string, name string) bool {
	_, ok := deps[name]
	return ok
}

// hasConfig reports whether a root-level config file with the given stem
// exists under any of the usual extensions.
func hasConfig(root, stem string) bool {
	for _, ext := range []string{".js", ".cjs", ".mjs", ".ts"} {
		if _, err := os.Stat(filepath.Join(root, stem+ext)); err == nil {
			return true
		}
	}
	return false
}

// hasModuleCSS probes a few levels of the source tree for *.module.css
// files. Bounded so detection stays cheap on large projects.
func hasModuleCSS(root string) bool {
	found := false
	maxDepth := strings.Count(filepath.ToSlash(root), "/") + 4

	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || found {
			return filepath.SkipAll
		}
		if d.IsDir() {
			if d.Name() == "node_modules" || d.Name() == ".git" ||
				strings.Count(filepath.ToSlash(path), "/") > maxDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".module.css") || strings.HasSuffix(d.Name(), ".module.scss") {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}
