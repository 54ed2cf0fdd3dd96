package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/autofix"
	"github.com/uiforge/uiforge/internal/domain/golden"
)

// fallbackComponentDir is used when neither detection nor config name
// a component directory.
const fallbackComponentDir = "src/components"

// GenerateService turns a natural-language description into validated
// component source. Failed attempts feed their issues back into the next
// prompt; the final candidate goes through the autofix pipeline before
// the write gate.
type GenerateService struct {
	contexts  *ContextService
	validate  *ValidateService
	engine    *autofix.Engine
	generator domain.ComponentGenerator
	scanner   domain.ComponentScanner
	writer    domain.FileWriter
	history   domain.HistoryStore
}

func NewGenerateService(
	contexts *ContextService,
	validate *ValidateService,
	engine *autofix.Engine,
	generator domain.ComponentGenerator,
	scanner domain.ComponentScanner,
	writer domain.FileWriter,
	history domain.HistoryStore,
) *GenerateService {
	return &GenerateService{
		contexts: contexts, validate: validate, engine: engine,
		generator: generator, scanner: scanner, writer: writer, history: history,
	}
}

// Generate runs the full generation loop for one component.
func (s *GenerateService) Generate(ctx context.Context, root string, req domain.GenerateRequest) (*domain.GenerateOutcome, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, errors.New("component description is empty")
	}

	// 1. Name and target path
	name := req.Name
	if name == "" {
		name = ComponentName(req.Description)
	}

	env, err := s.validate.prepare(root, "")
	if err != nil {
		return nil, err
	}

	relPath := req.Path
	if relPath == "" {
		relPath = filepath.ToSlash(filepath.Join(s.componentDir(env), name+componentExt(env)))
	}
	env.cctx.FilePath = relPath

	// 2. Ground the prompt in the project's own components
	preq := domain.PromptRequest{
		Description: req.Description,
		Name:        name,
		Framework:   env.cctx.Framework,
		Styling:     env.cctx.Styling,
		TypeScript:  env.cctx.TypeScript,
		Examples:    s.collectExamples(root, s.componentDir(env), env.cfg.Generator.MaxExamples),
	}

	// 3. Generate, validate, and retry with the issues as feedback
	var (
		code   string
		result *domain.ValidationResult
	)
	attempts := 0
	for attempts < maxAttempts(env.cfg) {
		attempts++

		code, err = s.generator.Generate(ctx, preq)
		if err != nil {
			return nil, fmt.Errorf("generating component: %w", err)
		}

		result = env.validator.Validate(code, env.cctx)
		if result.Passed && result.Score >= env.cfg.Validation.MinScore {
			break
		}

		preq.PreviousCode = code
		preq.Issues = append(result.Errors(), result.Warnings()...)
	}

	// 4. Final mechanical cleanup, kept only if the verifier agrees
	var applied []domain.AppliedFix
	if env.cfg.Autofix.IsEnabled() {
		fixed, fixes, fres, violations := runFixPipeline(
			s.engine, env.validator, env.cctx, code, result, env.cfg.Autofix.MaxPasses)
		if len(violations) == 0 && len(fixes) > 0 {
			code, result, applied = fixed, fres, fixes
		}
	}

	outcome := &domain.GenerateOutcome{
		ID:       uuid.NewString(),
		Name:     name,
		Path:     relPath,
		Code:     code,
		Result:   result,
		Applied:  applied,
		Attempts: attempts,
	}

	// 5. Persist through the write gate
	if req.Write && root != "" {
		target := filepath.Join(root, filepath.FromSlash(relPath))
		err := s.writer.WriteComponent(target, code, result, req.Force)
		switch {
		case err == nil:
			outcome.Written = true
		case errors.Is(err, domain.ErrNotValidated):
			outcome.Written = false
		default:
			return nil, fmt.Errorf("writing %s: %w", relPath, err)
		}
	}

	fixes := 0
	for _, f := range applied {
		fixes += f.Count
	}
	recordHistory(s.history, root, relPath, "generate", result, fixes)

	return outcome, nil
}

func (s *GenerateService) componentDir(env runEnv) string {
	if env.cfg.ComponentDir != "" {
		return env.cfg.ComponentDir
	}
	if env.pctx != nil && env.pctx.ComponentDir != "" {
		return env.pctx.ComponentDir
	}
	return fallbackComponentDir
}

// collectExamples ranks the project's own components and loads the best
// ones as prompt examples. Everything here is best effort: a project
// with nothing to offer just yields an example-free prompt.
func (s *GenerateService) collectExamples(root, componentDir string, limit int) []domain.Example {
	if root == "" || s.scanner == nil {
		return nil
	}
	scan, err := s.scanner.Scan(root)
	if err != nil {
		return nil
	}
	ranked, err := golden.SelectExamples(scan, componentDir, limit)
	if err != nil {
		return nil
	}

	var examples []domain.Example
	for _, rc := range ranked {
		content, err := s.scanner.Read(rc.File.Path)
		if err != nil {
			continue
		}
		ex, err := golden.BuildExample(rc.File.RelativePath, content, golden.DefaultExcerptLines)
		if err != nil {
			continue
		}
		examples = append(examples, ex)
	}
	return examples
}

func componentExt(env runEnv) string {
	if env.cctx.TypeScript {
		return ".tsx"
	}
	return ".jsx"
}

func maxAttempts(cfg domain.ProjectConfig) int {
	if cfg.Generator.MaxAttempts < 1 {
		return 1
	}
	return cfg.Generator.MaxAttempts
}

// nameStopwords are filler words skipped when deriving a component name
// from a description.
var nameStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "with": true, "and": true,
	"for": true, "of": true, "to": true, "in": true, "on": true,
	"that": true, "this": true, "my": true,
}

// ComponentName derives a PascalCase component name from a description,
// keeping the first three significant words.
func ComponentName(description string) string {
	words := strings.FieldsFunc(description, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var parts []string
	for _, w := range words {
		if nameStopwords[strings.ToLower(w)] {
			continue
		}
		runes := []rune(strings.ToLower(w))
		if !unicode.IsLetter(runes[0]) {
			continue
		}
		runes[0] = unicode.ToUpper(runes[0])
		parts = append(parts, string(runes))
		if len(parts) == 3 {
			break
		}
	}
	if len(parts) == 0 {
		return "GeneratedComponent"
	}
	return strings.Join(parts, "")
}
