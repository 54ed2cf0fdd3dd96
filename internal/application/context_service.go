package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uiforge/uiforge/internal/domain"
)

// ContextService resolves the project context the other services run
// under: detected framework and styling, merged configuration, and the
// current commit. Detection results are cached between invocations so
// repeated runs skip the package.json walk.
type ContextService struct {
	detector domain.ContextDetector
	loader   domain.ConfigLoader
	cache    domain.ContextCache
	git      domain.GitInfo
}

func NewContextService(
	detector domain.ContextDetector,
	loader domain.ConfigLoader,
	cache domain.ContextCache,
	git domain.GitInfo,
) *ContextService {
	return &ContextService{detector: detector, loader: loader, cache: cache, git: git}
}

// Resolve returns the project context and merged configuration for root.
// A cached context is reused when present; .uiforge.yaml overrides are
// applied on top either way.
func (s *ContextService) Resolve(root string) (*domain.ProjectContext, domain.ProjectConfig, error) {
	// 1. Load config (defaults merged with .uiforge.yaml)
	cfg, err := s.loader.Load(root)
	if err != nil {
		return nil, domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}

	// 2. Reuse the cached detection or run a fresh one
	pctx, ok := s.cache.Load(root)
	if !ok {
		pctx, err = s.detect(root)
		if err != nil {
			return nil, domain.ProjectConfig{}, err
		}
	}

	// 3. Config wins over detection
	applyOverrides(pctx, cfg)

	return pctx, cfg, nil
}

// Refresh re-detects the project context, replacing any cached copy.
func (s *ContextService) Refresh(root string) (*domain.ProjectContext, error) {
	pctx, err := s.detect(root)
	if err != nil {
		return nil, err
	}
	cfg, err := s.loader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyOverrides(pctx, cfg)
	return pctx, nil
}

func (s *ContextService) detect(root string) (*domain.ProjectContext, error) {
	pctx, err := s.detector.Detect(root)
	if err != nil {
		return nil, fmt.Errorf("detecting project context: %w", err)
	}
	if commit, err := s.git.CommitHash(root); err == nil {
		pctx.Commit = commit
	}
	_ = s.cache.Store(root, pctx)
	return pctx, nil
}

func applyOverrides(pctx *domain.ProjectContext, cfg domain.ProjectConfig) {
	if cfg.Framework != "" {
		pctx.Framework = cfg.Framework
	}
	if cfg.Styling != "" {
		pctx.Styling = cfg.Styling
	}
	if cfg.ComponentDir != "" {
		pctx.ComponentDir = cfg.ComponentDir
	}
}

// FindRoot walks up from path to the nearest directory holding a
// package.json. When nothing is found it falls back to the starting
// directory, which downgrades project-level checks instead of failing.
func FindRoot(path string) string {
	dir := path
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		dir = filepath.Dir(path)
	}

	start := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// displayPath prefers the root-relative form of path for diagnostics.
func displayPath(root, path string) string {
	if root == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
