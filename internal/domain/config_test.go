package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uiforge/uiforge/internal/domain"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Empty(t, cfg.Framework)
	assert.Empty(t, cfg.Styling)
	assert.InDelta(t, 0.8, cfg.Validation.MinScore, 0.001)
	assert.Equal(t, domain.DefaultPenalties(), cfg.Validation.Penalties)
	assert.True(t, cfg.Autofix.IsEnabled())
	assert.Equal(t, 2, cfg.Autofix.MaxPasses)
	assert.Equal(t, "gemini-1.5-flash", cfg.Generator.Model)
	assert.Equal(t, 2, cfg.Generator.MaxAttempts)
}

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, domain.DefaultConfig().Validate())
}

func TestConfig_Merge_PartialOverlay(t *testing.T) {
	base := domain.DefaultConfig()
	merged := base.Merge(domain.ProjectConfig{
		Styling:    domain.StylingCSSModules,
		Validation: domain.ValidationConfig{MinScore: 0.9},
	})

	assert.Equal(t, domain.StylingCSSModules, merged.Styling)
	assert.InDelta(t, 0.9, merged.Validation.MinScore, 0.001)
	// untouched fields keep defaults
	assert.Equal(t, domain.DefaultPenalties(), merged.Validation.Penalties)
	assert.Equal(t, "gemini-1.5-flash", merged.Generator.Model)
}

func TestConfig_Merge_AutofixPassesOnlyKeepsEnabled(t *testing.T) {
	merged := domain.DefaultConfig().Merge(domain.ProjectConfig{
		Autofix: domain.AutofixConfig{MaxPasses: 3},
	})

	assert.True(t, merged.Autofix.IsEnabled())
	assert.Equal(t, 3, merged.Autofix.MaxPasses)
}

func TestConfig_Merge_AutofixDisableOnlyKeepsPasses(t *testing.T) {
	disabled := false
	merged := domain.DefaultConfig().Merge(domain.ProjectConfig{
		Autofix: domain.AutofixConfig{Enabled: &disabled},
	})

	assert.False(t, merged.Autofix.IsEnabled())
	assert.Equal(t, 2, merged.Autofix.MaxPasses)
}

func TestConfig_Merge_PenaltiesOverride(t *testing.T) {
	merged := domain.DefaultConfig().Merge(domain.ProjectConfig{
		Validation: domain.ValidationConfig{
			Penalties: domain.Penalties{Error: 0.3, Warning: 0.1, Info: 0.05},
		},
	})
	assert.InDelta(t, 0.3, merged.Validation.Penalties.Error, 0.001)
}

func TestConfig_Validate_UnknownFramework(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Framework = "angular"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown framework")
	assert.Contains(t, err.Error(), "next, react, remix, vite")
}

func TestConfig_Validate_UnknownStyling(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Styling = "sass"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown styling")
	assert.Contains(t, err.Error(), "tailwind, css, css-modules, styled-components")
}

func TestConfig_Validate_MinScoreBounds(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Validation.MinScore = 1.5
	assert.Error(t, cfg.Validate())

	cfg.Validation.MinScore = -0.1
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_UnknownSkipAxis(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Validation.Skip = []string{"linting"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown axis")
}

func TestConfig_Validate_CannotSkipAllAxes(t *testing.T) {
	cfg := domain.DefaultConfig()
	for _, axis := range domain.AxisOrder {
		cfg.Validation.Skip = append(cfg.Validation.Skip, string(axis))
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot skip all")
}

func TestConfig_Validate_NegativePenalty(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Validation.Penalties.Error = -0.2
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_GeneratorBounds(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Generator.MaxAttempts = 9
	assert.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.Generator.Temperature = 3.0
	assert.Error(t, cfg.Validate())
}

func TestConfig_IsSkippedAxis(t *testing.T) {
	cfg := domain.ProjectConfig{
		Validation: domain.ValidationConfig{Skip: []string{"performance", "security"}},
	}
	assert.True(t, cfg.IsSkippedAxis(domain.ValidationPerformance))
	assert.True(t, cfg.IsSkippedAxis(domain.ValidationSecurity))
	assert.False(t, cfg.IsSkippedAxis(domain.ValidationImports))
}

func TestIsValidFramework(t *testing.T) {
	assert.True(t, domain.IsValidFramework(domain.FrameworkNext))
	assert.True(t, domain.IsValidFramework(domain.FrameworkVite))
	assert.False(t, domain.IsValidFramework("svelte"))
}

func TestIsValidStyling(t *testing.T) {
	assert.True(t, domain.IsValidStyling(domain.StylingTailwind))
	assert.True(t, domain.IsValidStyling(domain.StylingStyledComponents))
	assert.False(t, domain.IsValidStyling("emotion"))
}
