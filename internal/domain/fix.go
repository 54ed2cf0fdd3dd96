package domain

import "errors"

// ErrNotValidated is returned by the writer gate when asked to persist
// content whose result did not pass and no override was given.
var ErrNotValidated = errors.New("content failed validation and no override was given")

// AppliedFix describes one autofix rule application.
type AppliedFix struct {
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// FixOptions controls the fix pipeline.
type FixOptions struct {
	DryRun bool `json:"dry_run"`
	Write  bool `json:"write"`
	Force  bool `json:"force"`
}

// FixOutcome is the full record of one validate→autofix→revalidate→verify
// cycle. When the verifier rejects the fix, Accepted is false, Content
// holds the original text unchanged and Fixed still carries the rejected
// result so callers can report what went wrong.
type FixOutcome struct {
	File       string            `json:"file"`
	Original   *ValidationResult `json:"original"`
	Fixed      *ValidationResult `json:"fixed,omitempty"`
	Applied    []AppliedFix      `json:"applied,omitempty"`
	Content    string            `json:"-"`
	Accepted   bool              `json:"accepted"`
	Violations []string          `json:"violations,omitempty"`
	Written    bool              `json:"written"`
}

// Changed reports whether the pipeline produced different content.
func (o FixOutcome) Changed() bool { return len(o.Applied) > 0 && o.Accepted }

// GenerateRequest asks the generator for a new component.
type GenerateRequest struct {
	Description string `json:"description"`
	Name        string `json:"name,omitempty"`
	Path        string `json:"path,omitempty"`
	Write       bool   `json:"write"`
	Force       bool   `json:"force"`
}

// GenerateOutcome is the record of one generation run.
type GenerateOutcome struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Path     string            `json:"path,omitempty"`
	Code     string            `json:"code"`
	Result   *ValidationResult `json:"result"`
	Applied  []AppliedFix      `json:"applied,omitempty"`
	Attempts int               `json:"attempts"`
	Written  bool              `json:"written"`
}
