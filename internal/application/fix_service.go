package application

import (
	"errors"
	"fmt"
	"os"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/autofix"
	"github.com/uiforge/uiforge/internal/domain/checks"
	"github.com/uiforge/uiforge/internal/domain/verify"
)

// FixService runs the validate, autofix, revalidate, verify pipeline.
// A rewrite only survives when the regression verifier accepts it;
// otherwise the outcome falls back to the original content unchanged.
type FixService struct {
	validate *ValidateService
	engine   *autofix.Engine
	writer   domain.FileWriter
	history  domain.HistoryStore
}

func NewFixService(
	validate *ValidateService,
	engine *autofix.Engine,
	writer domain.FileWriter,
	history domain.HistoryStore,
) *FixService {
	return &FixService{validate: validate, engine: engine, writer: writer, history: history}
}

// FixFile runs the pipeline over one file on disk and optionally writes
// the accepted result back.
func (s *FixService) FixFile(path string, opts domain.FixOptions) (*domain.FixOutcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	root := FindRoot(path)
	outcome, err := s.FixContent(root, path, string(data))
	if err != nil {
		return nil, err
	}

	// Write only an accepted rewrite; the writer gate still refuses
	// content that fails validation unless forced.
	if opts.Write && !opts.DryRun && outcome.Accepted {
		err := s.writer.WriteComponent(path, outcome.Content, outcome.Fixed, opts.Force)
		switch {
		case err == nil:
			outcome.Written = true
		case errors.Is(err, domain.ErrNotValidated):
			outcome.Written = false
		default:
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
	}

	fixes := 0
	for _, f := range outcome.Applied {
		fixes += f.Count
	}
	recordHistory(s.history, root, outcome.File, "fix", finalResult(outcome), fixes)

	return outcome, nil
}

// FixContent runs the pipeline over in-memory content.
func (s *FixService) FixContent(root, filePath, content string) (*domain.FixOutcome, error) {
	// 1. Resolve context and validate the original
	env, err := s.validate.prepare(root, filePath)
	if err != nil {
		return nil, err
	}
	original := env.validator.Validate(content, env.cctx)

	outcome := &domain.FixOutcome{
		File:     env.cctx.FilePath,
		Original: original,
		Content:  content,
	}

	// 2. Respect the project's autofix settings
	if !env.cfg.Autofix.IsEnabled() {
		outcome.Fixed = original
		outcome.Accepted = true
		return outcome, nil
	}

	// 3. Rewrite, revalidate, and let the verifier judge
	fixed, applied, result, violations := runFixPipeline(
		s.engine, env.validator, env.cctx, content, original, env.cfg.Autofix.MaxPasses)
	outcome.Applied = applied
	outcome.Fixed = result
	outcome.Violations = violations

	if len(violations) == 0 {
		outcome.Accepted = true
		outcome.Content = fixed
	}
	return outcome, nil
}

// runFixPipeline applies the rule table up to maxPasses times, then
// compares the revalidated result against the original. On rejection the
// caller keeps the original content; the rejected result and violations
// are returned so the caller can report what went wrong.
func runFixPipeline(
	engine *autofix.Engine,
	v *checks.Validator,
	cctx checks.Context,
	content string,
	original *domain.ValidationResult,
	maxPasses int,
) (string, []domain.AppliedFix, *domain.ValidationResult, []string) {
	if maxPasses < 1 {
		maxPasses = 1
	}

	fixed := content
	var applied []domain.AppliedFix
	for pass := 0; pass < maxPasses; pass++ {
		next, fixes := engine.Apply(fixed)
		if len(fixes) == 0 {
			break
		}
		fixed = next
		applied = mergeFixes(applied, fixes)
	}

	if len(applied) == 0 {
		return content, nil, original, nil
	}

	result := v.Validate(fixed, cctx)
	report := verify.Compare(original, result)
	if report.OK() {
		return fixed, applied, result, nil
	}

	violations := make([]string, 0, len(report.Violations))
	for _, viol := range report.Violations {
		violations = append(violations, viol.String())
	}
	return content, applied, result, violations
}

// mergeFixes folds a pass's fixes into the running list, summing counts
// for rules that fired on an earlier pass.
func mergeFixes(acc, fixes []domain.AppliedFix) []domain.AppliedFix {
	for _, f := range fixes {
		merged := false
		for i := range acc {
			if acc[i].Rule == f.Rule {
				acc[i].Count += f.Count
				merged = true
				break
			}
		}
		if !merged {
			acc = append(acc, f)
		}
	}
	return acc
}

// finalResult is the result the history entry reflects: the fixed result
// when the rewrite was accepted, the original otherwise.
func finalResult(o *domain.FixOutcome) *domain.ValidationResult {
	if o.Accepted && o.Fixed != nil {
		return o.Fixed
	}
	return o.Original
}
