package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/uiforge/uiforge/internal/adapters/outbound/config"
	"github.com/uiforge/uiforge/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".uiforge.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
framework: next
validation:
  min_score: 0.9
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.FrameworkNext, cfg.Framework)
	assert.InDelta(t, 0.9, cfg.Validation.MinScore, 0.001)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .uiforge.yaml")
}

func TestYAMLLoader_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `styling: styled-components`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.StylingStyledComponents, cfg.Styling)
	assert.InDelta(t, 0.8, cfg.Validation.MinScore, 0.001)
	assert.True(t, cfg.Autofix.IsEnabled())
	assert.Equal(t, "gemini-1.5-flash", cfg.Generator.Model)
}

func TestYAMLLoader_PartialAutofixBlock(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "autofix:\n  max_passes: 3\n")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Autofix.IsEnabled(), "enabled default must survive a passes-only block")
	assert.Equal(t, 3, cfg.Autofix.MaxPasses)
}

func TestYAMLLoader_AutofixDisabled(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "autofix:\n  enabled: false\n")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Autofix.IsEnabled())
	assert.Equal(t, 2, cfg.Autofix.MaxPasses, "max_passes default must survive a disable-only block")
}

func TestYAMLLoader_SkipAxes(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
validation:
  skip:
    - security
    - performance
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"security", "performance"}, cfg.Validation.Skip)
	assert.True(t, cfg.IsSkippedAxis(domain.ValidationSecurity))
	assert.False(t, cfg.IsSkippedAxis(domain.ValidationStyling))
}

func TestYAMLLoader_PenaltyOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
validation:
  penalties:
    error: 0.3
    warning: 0.15
    info: 0.01
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, cfg.Validation.Penalties.Error, 0.001)
	assert.InDelta(t, 0.15, cfg.Validation.Penalties.Warning, 0.001)
	assert.InDelta(t, 0.01, cfg.Validation.Penalties.Info, 0.001)
}

func TestYAMLLoader_RejectsUnknownFramework(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `framework: svelte`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .uiforge.yaml")
	assert.Contains(t, err.Error(), "svelte")
}

func TestYAMLLoader_RejectsOutOfRangeMinScore(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
validation:
  min_score: 1.5
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_score")
}

func TestYAMLLoader_RejectsUnknownSkipAxis(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
validation:
  skip:
    - vibes
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vibes")
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_GeneratorOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
generator:
  model: gemini-1.5-pro
  max_attempts: 3
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-pro", cfg.Generator.Model)
	assert.Equal(t, 3, cfg.Generator.MaxAttempts)
	assert.InDelta(t, 0.2, cfg.Generator.Temperature, 0.001)
}
