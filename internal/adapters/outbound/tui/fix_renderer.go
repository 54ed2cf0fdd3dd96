package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/uiforge/uiforge/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	warningItemStyle   = lipgloss.NewStyle().Foreground(warning)
)

// RenderFixOutcome renders an autofix run: score transition, the rules
// that fired, and the verifier's objections when the fix was rejected.
func RenderFixOutcome(o *domain.FixOutcome) string {
	var b strings.Builder

	// Header
	final := o.Original
	if o.Fixed != nil {
		final = o.Fixed
	}
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(final.Score)).
		Render(fmt.Sprintf("%.2f", final.Score))

	fileLine := titleStyle.Render(shortenPath(o.File)) + "  " + scoreStyled
	b.WriteString(boxStyle.Render(fileLine + "\n" + dimStyle.Render("autofix · "+transition(o))))
	b.WriteString("\n")

	renderAppliedSection(&b, o.Applied)

	if !o.Accepted && len(o.Violations) > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s\n",
			sectionHeaderStyle.Render("Rejected"),
			dimStyle.Render(fmt.Sprintf("(%d)", len(o.Violations))),
		))
		for _, v := range o.Violations {
			b.WriteString(fmt.Sprintf("    %s %s\n", failStyle.Render("●"), v))
		}
		b.WriteString("    " + hintStyle.Render("Original content kept unchanged.") + "\n")
	}

	// Footer
	b.WriteString("\n")
	switch {
	case o.Written:
		b.WriteString("  " + passStyle.Render("Written.") + "\n")
	case o.Changed():
		b.WriteString("  " + hintStyle.Render("Run with --write to persist the fixed content.") + "\n")
	}

	return b.String()
}

func transition(o *domain.FixOutcome) string {
	switch {
	case len(o.Applied) == 0:
		return "no fixes applied"
	case !o.Accepted:
		return "fix rejected"
	default:
		return fmt.Sprintf("score %.2f → %.2f", o.Original.Score, o.Fixed.Score)
	}
}

// RenderGenerateOutcome renders a generation run: the component, its
// final score, attempts used, and any autofix cleanup that happened.
func RenderGenerateOutcome(o *domain.GenerateOutcome) string {
	var b strings.Builder

	// Header
	verdict := passStyle.Bold(true).Render("PASS")
	if o.Result != nil && !o.Result.Passed {
		verdict = failStyle.Bold(true).Render("FAIL")
	}
	score := 0.0
	if o.Result != nil {
		score = o.Result.Score
	}
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(score)).
		Render(fmt.Sprintf("%.2f", score))

	nameLine := titleStyle.Render(o.Name) + "  " + scoreStyled + "  " + verdict
	detail := fmt.Sprintf("%s · %d %s", o.Path, o.Attempts, plural(o.Attempts, "attempt"))
	b.WriteString(boxStyle.Render(nameLine + "\n" + dimStyle.Render(detail)))
	b.WriteString("\n")

	renderAppliedSection(&b, o.Applied)

	// Footer
	b.WriteString("\n")
	if o.Written {
		b.WriteString("  " + passStyle.Render("Written to "+o.Path+".") + "\n")
	} else {
		b.WriteString("  " + hintStyle.Render("Run with --write to save the component.") + "\n")
	}

	return b.String()
}

func renderAppliedSection(b *strings.Builder, applied []domain.AppliedFix) {
	if len(applied) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		sectionHeaderStyle.Render("Applied Fixes"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(applied))),
	))

	for _, fix := range applied {
		line := fmt.Sprintf("    %s %s", warningItemStyle.Render("●"), fix.Rule)
		if fix.Count > 1 {
			line += dimStyle.Render(fmt.Sprintf(" ×%d", fix.Count))
		}
		if fix.Description != "" {
			line += "  " + faintStyle.Render(fix.Description)
		}
		b.WriteString(line + "\n")
	}
}
