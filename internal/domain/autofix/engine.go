// Package autofix rewrites generated component source to canonical form
// through an ordered table of detection/canonicalization rules. The
// engine never judges whether a rewrite helped — that is the regression
// verifier's job.
package autofix

import "github.com/uiforge/uiforge/internal/domain"

// Engine applies a fixed rule table in order.
type Engine struct {
	rules []Rule
}

// New returns an engine with the default rule table.
func New() *Engine {
	return &Engine{rules: DefaultRules()}
}

// NewWithRules returns an engine with a custom rule table, in the order
// given. Used for targeted fixing and for exercising the verifier with
// adversarial rules.
func NewWithRules(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the engine's rule table in application order.
func (e *Engine) Rules() []Rule { return e.rules }

// Apply runs every rule once, in table order, threading the content
// through. Because each rule is idempotent and later rules do not
// reintroduce earlier defects, Apply itself is idempotent: a second pass
// returns the input unchanged with an empty fix list.
func (e *Engine) Apply(content string) (string, []domain.AppliedFix) {
	fixed := content
	applied := []domain.AppliedFix{}
	for _, r := range e.rules {
		if !r.Detect(fixed) {
			continue
		}
		next, n := r.Apply(fixed)
		if n == 0 || next == fixed {
			continue
		}
		fixed = next
		applied = append(applied, domain.AppliedFix{
			Rule:        r.Name,
			Description: r.Description,
			Count:       n,
		})
	}
	return fixed, applied
}
