package checks

import (
	"fmt"
	"sync"

	"github.com/uiforge/uiforge/internal/domain"
)

// Validator fans component content out to every registered checker and
// folds the issues into a single ValidationResult. Checkers run
// concurrently; the fold is single-writer, so issue order is always the
// fixed axis order regardless of scheduling.
type Validator struct {
	checkers  []Checker
	penalties domain.Penalties
	skip      map[domain.ValidationType]bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithPenalties overrides the default scoring deductions.
func WithPenalties(p domain.Penalties) Option {
	return func(v *Validator) { v.penalties = p }
}

// WithCheckers replaces the default checker set.
func WithCheckers(checkers ...Checker) Option {
	return func(v *Validator) { v.checkers = checkers }
}

// WithSkip disables the given axes.
func WithSkip(axes ...domain.ValidationType) Option {
	return func(v *Validator) {
		for _, a := range axes {
			v.skip[a] = true
		}
	}
}

// DefaultCheckers returns the full checker set in axis order.
func DefaultCheckers() []Checker {
	return []Checker{
		NewTypescriptChecker(),
		NewImportsChecker(),
		NewStylingChecker(),
		NewNamingChecker(),
		NewStructureChecker(),
		NewAccessibilityChecker(),
		NewPerformanceChecker(),
		NewSecurityChecker(),
	}
}

// NewValidator builds a Validator with all checkers and default
// penalties unless options say otherwise.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		checkers:  DefaultCheckers(),
		penalties: domain.DefaultPenalties(),
		skip:      map[domain.ValidationType]bool{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every non-skipped checker against the content and
// merges the findings. A panicking checker contributes a single info
// issue; it never aborts the run or poisons other checkers.
func (v *Validator) Validate(content string, ctx Context) *domain.ValidationResult {
	active := make([]Checker, 0, len(v.checkers))
	for _, c := range v.checkers {
		if !v.skip[c.Type()] {
			active = append(active, c)
		}
	}

	slots := make([][]domain.Issue, len(active))
	var wg sync.WaitGroup
	for i, c := range active {
		wg.Add(1)
		go func(i int, c Checker) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					slots[i] = []domain.Issue{{
						Type:     c.Type(),
						Severity: domain.SeverityInfo,
						Message:  fmt.Sprintf("%s checker failed: %v", c.Type(), r),
						File:     ctx.FilePath,
					}}
				}
			}()
			slots[i] = c.Check(content, ctx)
		}(i, c)
	}
	wg.Wait()

	result := domain.NewValidationResult()
	axes := make([]string, 0, len(active))
	for _, i := range foldOrder(active) {
		axes = append(axes, string(active[i].Type()))
		for _, iss := range slots[i] {
			result.AddIssue(iss)
		}
	}
	result.Score = result.CalculateScoreWith(v.penalties)
	v.stampMetadata(result, ctx, axes)
	return result
}

// foldOrder returns slot indices sorted by the fixed axis order, so the
// merged issue list is stable no matter how checkers were registered or
// scheduled. Checkers for axes outside the known order keep their
// registration order at the tail.
func foldOrder(active []Checker) []int {
	rank := make(map[domain.ValidationType]int, len(domain.AxisOrder))
	for i, a := range domain.AxisOrder {
		rank[a] = i
	}
	order := make([]int, 0, len(active))
	for _, axis := range domain.AxisOrder {
		for i, c := range active {
			if c.Type() == axis {
				order = append(order, i)
			}
		}
	}
	for i, c := range active {
		if _, known := rank[c.Type()]; !known {
			order = append(order, i)
		}
	}
	return order
}

// ValidateAxis runs the checkers supporting a single axis. An unknown
// or unsupported axis yields an info issue, not a failure: misuse must
// stay visible without breaking pipelines.
func (v *Validator) ValidateAxis(t domain.ValidationType, content string, ctx Context) *domain.ValidationResult {
	result := domain.NewValidationResult()

	if !domain.IsValidValidationType(t) {
		result.AddIssue(domain.Issue{
			Type:     t,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("unknown validation axis %q", t),
			File:     ctx.FilePath,
		})
		result.Score = result.CalculateScoreWith(v.penalties)
		v.stampMetadata(result, ctx, nil)
		return result
	}

	ran := []string{}
	for _, c := range v.checkers {
		if v.skip[c.Type()] || !c.Supports(t) {
			continue
		}
		ran = append(ran, string(c.Type()))
		for _, iss := range v.runChecker(c, content, ctx) {
			result.AddIssue(iss)
		}
	}
	if len(ran) == 0 {
		result.AddIssue(domain.Issue{
			Type:     t,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("no checker supports axis %q", t),
			File:     ctx.FilePath,
		})
	}
	result.Score = result.CalculateScoreWith(v.penalties)
	v.stampMetadata(result, ctx, ran)
	return result
}

// ValidateTypescript checks only the typescript axis.
func (v *Validator) ValidateTypescript(content string, ctx Context) *domain.ValidationResult {
	return v.ValidateAxis(domain.ValidationTypescript, content, ctx)
}

// ValidateImports checks only the imports axis.
func (v *Validator) ValidateImports(content string, ctx Context) *domain.ValidationResult {
	return v.ValidateAxis(domain.ValidationImports, content, ctx)
}

// ValidateStyling checks only the styling axis.
func (v *Validator) ValidateStyling(content string, ctx Context) *domain.ValidationResult {
	return v.ValidateAxis(domain.ValidationStyling, content, ctx)
}

func (v *Validator) runChecker(c Checker, content string, ctx Context) (issues []domain.Issue) {
	defer func() {
		if r := recover(); r != nil {
			issues = []domain.Issue{{
				Type:     c.Type(),
				Severity: domain.SeverityInfo,
				Message:  fmt.Sprintf("%s checker failed: %v", c.Type(), r),
				File:     ctx.FilePath,
			}}
		}
	}()
	return c.Check(content, ctx)
}

func (v *Validator) stampMetadata(result *domain.ValidationResult, ctx Context, axes []string) {
	if axes != nil {
		result.Metadata[domain.MetaAxes] = axes
	}
	result.Metadata[domain.MetaCounts] = result.CountBySeverity()
	if ctx.FilePath != "" {
		result.Metadata[domain.MetaFile] = ctx.FilePath
	}
	if ctx.Framework != "" {
		result.Metadata[domain.MetaFramework] = string(ctx.Framework)
	}
	if ctx.Styling != "" {
		result.Metadata[domain.MetaStyling] = string(ctx.Styling)
	}
}
