package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/uiforge/uiforge/internal/domain"
)

// RenderContext renders the resolved project context together with the
// effective configuration that will shape validation and generation.
func RenderContext(pctx *domain.ProjectContext, cfg domain.ProjectConfig) string {
	if pctx == nil {
		return "\n  " + dimStyle.Render("No project context available (no package.json found).") + "\n\n"
	}

	var b strings.Builder

	// ── Header box ──
	language := "JavaScript"
	if pctx.TypeScript {
		language = "TypeScript"
	}
	title := headerStyle.Render("Project Context")
	rootLine := lipgloss.NewStyle().Bold(true).Foreground(fg).Render(pctx.Root)
	stats := dimStyle.Render(fmt.Sprintf("%s  ·  %s  ·  %s", pctx.Framework, pctx.Styling, language))

	b.WriteString(boxStyle.Render(title + "\n\n" + rootLine + "\n" + stats))
	b.WriteString("\n\n")

	// ── Detection ──
	renderContextRow(&b, "framework", string(pctx.Framework), cfg.Framework != "")
	renderContextRow(&b, "styling", string(pctx.Styling), cfg.Styling != "")
	renderContextRow(&b, "language", language, false)
	renderContextRow(&b, "components", pctx.ComponentDir, cfg.ComponentDir != "")
	if pctx.Commit != "" {
		hash := pctx.Commit
		if len(hash) > 7 {
			hash = hash[:7]
		}
		renderContextRow(&b, "commit", hash, false)
	}
	if !pctx.DetectedAt.IsZero() {
		renderContextRow(&b, "detected", pctx.DetectedAt.Format("2006-01-02 15:04"), false)
	}

	// ── Config ──
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Config") + "\n")
	renderContextRow(&b, "min score", fmt.Sprintf("%.2f", cfg.Validation.MinScore), false)

	autofix := "off"
	if cfg.Autofix.IsEnabled() {
		autofix = fmt.Sprintf("on · %d-pass limit", cfg.Autofix.MaxPasses)
	}
	renderContextRow(&b, "autofix", autofix, false)
	renderContextRow(&b, "model", cfg.Generator.Model, false)

	if len(cfg.Validation.Skip) > 0 {
		b.WriteString(fmt.Sprintf("    %s %s\n",
			dimStyle.Render(padRight("skipped", 14)),
			skipStyle.Render(strings.Join(cfg.Validation.Skip, ", ")),
		))
	}

	b.WriteString("\n")
	return b.String()
}

// renderContextRow draws one aligned key/value line. Rows whose value
// came from .uiforge.yaml rather than detection are marked.
func renderContextRow(b *strings.Builder, label, value string, fromConfig bool) {
	if value == "" {
		value = "—"
	}
	line := fmt.Sprintf("    %s %s",
		dimStyle.Render(padRight(label, 14)),
		lipgloss.NewStyle().Foreground(fg).Render(value),
	)
	if fromConfig {
		line += "  " + faintStyle.Render("(.uiforge.yaml)")
	}
	b.WriteString(line + "\n")
}
