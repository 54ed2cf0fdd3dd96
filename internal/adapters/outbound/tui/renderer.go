package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/uiforge/uiforge/internal/domain"
)

// ── Warm amber palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	axisNameStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult formats a validation report: a score box, one row per
// axis, then every issue in the merged order the validator produced.
func RenderResult(result *domain.ValidationResult) string {
	var b strings.Builder

	// ── Header ──
	verdict := passStyle.Bold(true).Render("PASS")
	if !result.Passed {
		verdict = failStyle.Bold(true).Render("FAIL")
	}
	title := headerStyle.Render("uiforge")
	subtitle := dimStyle.Render("Component Quality")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(result.Score)).
		Render(fmt.Sprintf("%.2f / 1.00", result.Score))

	header := title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + verdict
	if file := metaString(result, domain.MetaFile); file != "" {
		header += "\n" + faintStyle.Render(shortenPath(file))
	}
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	// ── Axes ──
	grouped := groupByAxis(result.Issues)
	ran := axesRun(result)
	for _, axis := range domain.AxisOrder {
		renderAxisRow(&b, axis, grouped[axis], ran)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Issues ──
	if len(result.Issues) > 0 {
		errorCount, warnCount, infoCount := countSeverities(result.Issues)
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Issues"))
		b.WriteString("  ")
		if errorCount > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", errorCount)))
			b.WriteString("  ")
		}
		if warnCount > 0 {
			b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", warnCount)))
			b.WriteString("  ")
		}
		if infoCount > 0 {
			b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", infoCount)))
		}
		b.WriteString("\n\n")

		for _, issue := range result.Issues {
			renderIssue(&b, issue)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderAxisRow(b *strings.Builder, axis domain.ValidationType, issues []domain.Issue, ran map[string]bool) {
	name := padRight(string(axis), 16)

	if ran != nil && !ran[string(axis)] {
		fmt.Fprintf(b, "    %s %s %s\n",
			skipStyle.Render("○"),
			skipStyle.Render(name),
			skipStyle.Render("skipped"),
		)
		return
	}

	if len(issues) == 0 {
		fmt.Fprintf(b, "    %s %s %s\n",
			passStyle.Render("●"),
			axisNameStyle.Render(name),
			faintStyle.Render("clean"),
		)
		return
	}

	errorCount, warnCount, infoCount := countSeverities(issues)
	var icon string
	switch {
	case errorCount > 0:
		icon = failStyle.Render("●")
	case warnCount > 0:
		icon = warnStyle.Render("●")
	default:
		icon = infoTagStyle.Render("●")
	}

	fmt.Fprintf(b, "    %s %s %s\n",
		icon,
		axisNameStyle.Render(name),
		dimStyle.Render(tally(errorCount, warnCount, infoCount)),
	)
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := severityTag(issue.Severity)
	loc := issueLocation(issue)

	if loc != "" {
		fmt.Fprintf(b, "    %s %s  %s\n", tag, faintStyle.Render(string(issue.Type)), fileStyle.Render(loc))
		fmt.Fprintf(b, "         %s\n", dimStyle.Render(issue.Message))
	} else {
		fmt.Fprintf(b, "    %s %s  %s\n", tag, faintStyle.Render(string(issue.Type)), dimStyle.Render(issue.Message))
	}
	if issue.Suggestion != "" {
		fmt.Fprintf(b, "         %s\n", hintStyle.Render("fix: "+issue.Suggestion))
	}
}

func issueLocation(issue domain.Issue) string {
	if issue.File == "" {
		return ""
	}
	loc := shortenPath(issue.File)
	if issue.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, issue.Line)
	}
	return loc
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func countSeverities(issues []domain.Issue) (errors, warnings, infos int) {
	for _, i := range issues {
		switch i.Severity {
		case domain.SeverityError:
			errors++
		case domain.SeverityWarning:
			warnings++
		default:
			infos++
		}
	}
	return
}

func tally(errors, warnings, infos int) string {
	parts := make([]string, 0, 3)
	if errors > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", errors, plural(errors, "error")))
	}
	if warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", warnings, plural(warnings, "warning")))
	}
	if infos > 0 {
		parts = append(parts, fmt.Sprintf("%d info", infos))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func groupByAxis(issues []domain.Issue) map[domain.ValidationType][]domain.Issue {
	grouped := make(map[domain.ValidationType][]domain.Issue)
	for _, issue := range issues {
		grouped[issue.Type] = append(grouped[issue.Type], issue)
	}
	return grouped
}

// axesRun reads the axes the validator actually executed. A nil map
// means the metadata was absent and every axis is assumed to have run.
func axesRun(result *domain.ValidationResult) map[string]bool {
	raw, ok := result.Metadata[domain.MetaAxes]
	if !ok {
		return nil
	}
	axes, ok := raw.([]string)
	if !ok {
		return nil
	}
	ran := make(map[string]bool, len(axes))
	for _, a := range axes {
		ran[a] = true
	}
	return ran
}

func metaString(result *domain.ValidationResult, key string) string {
	if raw, ok := result.Metadata[key]; ok {
		if s, ok := raw.(string); ok {
			return s
		}
	}
	return ""
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 0.8:
		return success
	case score >= 0.6:
		return lipgloss.Color("#A3E635") // lime
	case score >= 0.4:
		return warning
	default:
		return danger
	}
}

func shortenPath(path string) string {
	if idx := strings.Index(path, "src/"); idx >= 0 {
		return path[idx:]
	}
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats past runs for terminal output, oldest first,
// with a score arrow against the preceding entry.
func RenderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No history found. Run a validation first.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.Commit
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Score)).
			Render(fmt.Sprintf("%.2f", e.Score))

		verdict := passStyle.Render("pass")
		if !e.Passed {
			verdict = failStyle.Render("fail")
		}

		line := fmt.Sprintf("  %s  %s  %s %s  %s  %s",
			dimStyle.Render(e.Timestamp.Format("2006-01-02")),
			faintStyle.Render(hash),
			padRight(e.Action, 8),
			scoreStyled,
			verdict,
			fileStyle.Render(shortenPath(e.File)),
		)

		if i > 0 {
			diff := e.Score - entries[i-1].Score
			if diff > 0.001 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%.2f", diff))
			} else if diff < -0.001 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%.2f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
