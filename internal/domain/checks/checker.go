// Package checks implements the per-axis rule checkers and the validator
// that orchestrates them. Checkers are pure functions over immutable
// source text and read-only project context; they never share state and
// may run concurrently.
package checks

import (
	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/source"
)

// Context is the read-only metadata a checker may consult. FilePath is
// used for diagnostics and import resolution; ProjectRoot for the import
// checker's bounded existence probes.
type Context struct {
	FilePath    string
	ProjectRoot string
	Framework   domain.Framework
	Styling     domain.Styling
	TypeScript  bool
}

// Checker is one validation axis. Check must be pure and side-effect
// free: same content and context, same issues, regardless of execution
// order or concurrency.
type Checker interface {
	Type() domain.ValidationType
	Supports(t domain.ValidationType) bool
	Check(content string, ctx Context) []domain.Issue
}

// issueAt builds an issue pinned to a byte offset in content.
func issueAt(t domain.ValidationType, severity string, ctx Context, content string, offset int, message string) domain.Issue {
	line, col := source.LineColumn(content, offset)
	return domain.Issue{
		Type:     t,
		Severity: severity,
		Message:  message,
		File:     ctx.FilePath,
		Line:     line,
		Column:   col,
		Snippet:  source.Snippet(content, offset, 120),
	}
}

// issue builds a file-level issue with no position.
func issue(t domain.ValidationType, severity string, ctx Context, message string) domain.Issue {
	return domain.Issue{
		Type:     t,
		Severity: severity,
		Message:  message,
		File:     ctx.FilePath,
	}
}
