package application

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/checks"
)

// ValidateService runs the rule checkers over component source and
// records each run in the project history.
type ValidateService struct {
	contexts *ContextService
	history  domain.HistoryStore
}

func NewValidateService(contexts *ContextService, history domain.HistoryStore) *ValidateService {
	return &ValidateService{contexts: contexts, history: history}
}

// runEnv bundles everything one validation run needs: a validator built
// from the project config and the checker context derived from the
// detected project.
type runEnv struct {
	validator *checks.Validator
	cctx      checks.Context
	pctx      *domain.ProjectContext
	cfg       domain.ProjectConfig
}

// ValidateFile validates one component file on disk. The project root is
// located by walking up from the file.
func (s *ValidateService) ValidateFile(path string) (*domain.ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	root := FindRoot(path)
	result, err := s.ValidateContent(root, path, string(data))
	if err != nil {
		return nil, err
	}

	recordHistory(s.history, root, displayPath(root, path), "validate", result, 0)
	return result, nil
}

// ValidateContent validates component source held in memory. An empty
// root skips project-level concerns such as import resolution; the
// checkers degrade those to advisory issues rather than failing.
func (s *ValidateService) ValidateContent(root, filePath, content string) (*domain.ValidationResult, error) {
	env, err := s.prepare(root, filePath)
	if err != nil {
		return nil, err
	}

	result := env.validator.Validate(content, env.cctx)
	if env.pctx != nil && env.pctx.Commit != "" {
		result.Metadata[domain.MetaCommit] = env.pctx.Commit
	}
	return result, nil
}

// ValidateAxis runs a single validation axis over content.
func (s *ValidateService) ValidateAxis(root, filePath, content string, axis domain.ValidationType) (*domain.ValidationResult, error) {
	env, err := s.prepare(root, filePath)
	if err != nil {
		return nil, err
	}
	return env.validator.ValidateAxis(axis, content, env.cctx), nil
}

// prepare resolves the project context and builds a validator configured
// for it. An empty root yields a default validator and a bare context.
func (s *ValidateService) prepare(root, filePath string) (runEnv, error) {
	if root == "" {
		// No project to consult: infer TypeScript from the extension
		// and let project-level checks degrade on their own.
		ts := filePath == "" ||
			strings.HasSuffix(filePath, ".ts") || strings.HasSuffix(filePath, ".tsx")
		return runEnv{
			validator: checks.NewValidator(),
			cctx:      checks.Context{FilePath: filePath, TypeScript: ts},
			cfg:       domain.DefaultConfig(),
		}, nil
	}

	pctx, cfg, err := s.contexts.Resolve(root)
	if err != nil {
		return runEnv{}, err
	}

	opts := []checks.Option{checks.WithPenalties(cfg.Validation.Penalties)}
	if len(cfg.Validation.Skip) > 0 {
		axes := make([]domain.ValidationType, 0, len(cfg.Validation.Skip))
		for _, skip := range cfg.Validation.Skip {
			axes = append(axes, domain.ValidationType(skip))
		}
		opts = append(opts, checks.WithSkip(axes...))
	}

	return runEnv{
		validator: checks.NewValidator(opts...),
		cctx: checks.Context{
			FilePath:    displayPath(root, filePath),
			ProjectRoot: pctx.Root,
			Framework:   pctx.Framework,
			Styling:     pctx.Styling,
			TypeScript:  pctx.TypeScript,
		},
		pctx: pctx,
		cfg:  cfg,
	}, nil
}

// recordHistory appends a run to the project history, best effort. Runs
// without a project root have nowhere to persist and are skipped.
func recordHistory(store domain.HistoryStore, root, file, action string, result *domain.ValidationResult, fixes int) {
	if store == nil || root == "" {
		return
	}
	counts := result.CountBySeverity()
	entry := domain.HistoryEntry{
		Timestamp:    time.Now(),
		File:         file,
		Action:       action,
		Score:        result.Score,
		Passed:       result.Passed,
		Errors:       counts[domain.SeverityError],
		Warnings:     counts[domain.SeverityWarning],
		Infos:        counts[domain.SeverityInfo],
		FixesApplied: fixes,
	}
	if commit, ok := result.Metadata[domain.MetaCommit].(string); ok {
		entry.Commit = commit
	}
	_ = store.Append(root, entry)
}
