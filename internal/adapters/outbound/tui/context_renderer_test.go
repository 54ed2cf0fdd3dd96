package tui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/uiforge/uiforge/internal/adapters/outbound/tui"
	"github.com/uiforge/uiforge/internal/domain"
)

func sampleContext() *domain.ProjectContext {
	return &domain.ProjectContext{
		Root:         "/work/shop",
		Framework:    domain.FrameworkNext,
		Styling:      domain.StylingTailwind,
		TypeScript:   true,
		ComponentDir: "src/components",
		Commit:       "abcdef1234567890",
		DetectedAt:   time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
	}
}

func TestRenderContext_ShowsDetection(t *testing.T) {
	output := tui.RenderContext(sampleContext(), domain.DefaultConfig())
	assert.Contains(t, output, "/work/shop")
	assert.Contains(t, output, "next")
	assert.Contains(t, output, "tailwind")
	assert.Contains(t, output, "TypeScript")
	assert.Contains(t, output, "src/components")
}

func TestRenderContext_ShortensCommit(t *testing.T) {
	output := tui.RenderContext(sampleContext(), domain.DefaultConfig())
	assert.Contains(t, output, "abcdef1")
	assert.NotContains(t, output, "abcdef1234567890")
}

func TestRenderContext_ShowsDetectionTime(t *testing.T) {
	output := tui.RenderContext(sampleContext(), domain.DefaultConfig())
	assert.Contains(t, output, "2025-03-10 14:30")
}

func TestRenderContext_MarksConfigOverrides(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Framework = domain.FrameworkNext

	output := tui.RenderContext(sampleContext(), cfg)
	assert.Contains(t, output, "(.uiforge.yaml)")
}

func TestRenderContext_NoOverrideNoMarker(t *testing.T) {
	output := tui.RenderContext(sampleContext(), domain.DefaultConfig())
	assert.NotContains(t, output, "(.uiforge.yaml)")
}

func TestRenderContext_ShowsConfig(t *testing.T) {
	output := tui.RenderContext(sampleContext(), domain.DefaultConfig())
	assert.Contains(t, output, "Config")
	assert.Contains(t, output, "min score")
	assert.Contains(t, output, "0.80")
	assert.Contains(t, output, "autofix")
	assert.Contains(t, output, "2-pass limit")
	assert.Contains(t, output, "gemini-1.5-flash")
}

func TestRenderContext_ShowsSkippedAxes(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Validation.Skip = []string{"security", "performance"}

	output := tui.RenderContext(sampleContext(), cfg)
	assert.Contains(t, output, "skipped")
	assert.Contains(t, output, "security, performance")
}

func TestRenderContext_NilContext(t *testing.T) {
	output := tui.RenderContext(nil, domain.DefaultConfig())
	assert.Contains(t, output, "No project context available")
}

func TestRenderContext_JavaScriptProject(t *testing.T) {
	pctx := sampleContext()
	pctx.TypeScript = false

	output := tui.RenderContext(pctx, domain.DefaultConfig())
	assert.Contains(t, output, "JavaScript")
}
