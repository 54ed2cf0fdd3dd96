package domain

import "fmt"

// ProjectConfig holds project-level configuration loaded from .uiforge.yaml.
// Empty fields fall back to detected or default values.
type ProjectConfig struct {
	Framework    Framework        `yaml:"framework"     json:"framework,omitempty"`
	Styling      Styling          `yaml:"styling"       json:"styling,omitempty"`
	ComponentDir string           `yaml:"component_dir" json:"component_dir,omitempty"`
	Validation   ValidationConfig `yaml:"validation"    json:"validation,omitempty"`
	Autofix      AutofixConfig    `yaml:"autofix"       json:"autofix,omitempty"`
	Generator    GeneratorConfig  `yaml:"generator"     json:"generator,omitempty"`
}

// ValidationConfig tunes the validator: the score threshold below which
// the fix pipeline engages, axes to skip, and the penalty model.
type ValidationConfig struct {
	MinScore  float64   `yaml:"min_score" json:"min_score"`
	Skip      []string  `yaml:"skip"      json:"skip,omitempty"`
	Penalties Penalties `yaml:"penalties" json:"penalties"`
}

// AutofixConfig tunes the autofix engine. Enabled is a pointer so a
// partial .uiforge.yaml can leave it unset without clobbering the
// default, and an explicit `enabled: false` survives the merge.
type AutofixConfig struct {
	Enabled   *bool `yaml:"enabled"    json:"enabled"`
	MaxPasses int   `yaml:"max_passes" json:"max_passes"`
}

// IsEnabled reports whether autofix runs. Unset means enabled.
func (c AutofixConfig) IsEnabled() bool { return c.Enabled == nil || *c.Enabled }

// GeneratorConfig tunes the LLM-backed component generator.
type GeneratorConfig struct {
	Model       string  `yaml:"model"        json:"model"`
	Temperature float32 `yaml:"temperature"  json:"temperature"`
	MaxAttempts int     `yaml:"max_attempts" json:"max_attempts"`
	MaxExamples int     `yaml:"max_examples" json:"max_examples"`
}

// DefaultConfig returns the configuration used when no .uiforge.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Validation: ValidationConfig{
			MinScore:  0.8,
			Penalties: DefaultPenalties(),
		},
		Autofix: AutofixConfig{
			Enabled:   boolPtr(true),
			MaxPasses: 2,
		},
		Generator: GeneratorConfig{
			Model:       "gemini-1.5-flash",
			Temperature: 0.2,
			MaxAttempts: 2,
			MaxExamples: 3,
		},
	}
}

// Merge overlays the non-zero fields of other onto c and returns the result.
// Used by the loader to apply a partial .uiforge.yaml over defaults.
func (c ProjectConfig) Merge(other ProjectConfig) ProjectConfig {
	out := c
	if other.Framework != "" {
		out.Framework = other.Framework
	}
	if other.Styling != "" {
		out.Styling = other.Styling
	}
	if other.ComponentDir != "" {
		out.ComponentDir = other.ComponentDir
	}
	if other.Validation.MinScore != 0 {
		out.Validation.MinScore = other.Validation.MinScore
	}
	if len(other.Validation.Skip) > 0 {
		out.Validation.Skip = other.Validation.Skip
	}
	if other.Validation.Penalties != (Penalties{}) {
		out.Validation.Penalties = other.Validation.Penalties
	}
	if other.Autofix.Enabled != nil {
		out.Autofix.Enabled = other.Autofix.Enabled
	}
	if other.Autofix.MaxPasses != 0 {
		out.Autofix.MaxPasses = other.Autofix.MaxPasses
	}
	if other.Generator.Model != "" {
		out.Generator.Model = other.Generator.Model
	}
	if other.Generator.Temperature != 0 {
		out.Generator.Temperature = other.Generator.Temperature
	}
	if other.Generator.MaxAttempts != 0 {
		out.Generator.MaxAttempts = other.Generator.MaxAttempts
	}
	if other.Generator.MaxExamples != 0 {
		out.Generator.MaxExamples = other.Generator.MaxExamples
	}
	return out
}

func boolPtr(b bool) *bool { return &b }

// IsSkippedAxis reports whether the named axis is excluded from validation.
func (c ProjectConfig) IsSkippedAxis(t ValidationType) bool {
	for _, s := range c.Validation.Skip {
		if s == string(t) {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. framework must be known or empty
	if c.Framework != "" && !IsValidFramework(c.Framework) {
		return fmt.Errorf("unknown framework %q (valid: next, react, remix, vite)", c.Framework)
	}

	// 2. styling must be known or empty
	if c.Styling != "" && !IsValidStyling(c.Styling) {
		return fmt.Errorf("unknown styling %q (valid: tailwind, css, css-modules, styled-components)", c.Styling)
	}

	// 3. min_score must be in [0, 1]
	if c.Validation.MinScore < 0 || c.Validation.MinScore > 1 {
		return fmt.Errorf("validation.min_score = %.2f (must be between 0.0 and 1.0)", c.Validation.MinScore)
	}

	// 4. skip entries must name valid axes
	for _, s := range c.Validation.Skip {
		if !IsValidValidationType(ValidationType(s)) {
			return fmt.Errorf("unknown axis %q in validation.skip", s)
		}
	}

	// 5. cannot skip all axes
	if len(c.Validation.Skip) >= len(AxisOrder) {
		return fmt.Errorf("cannot skip all validation axes (must have at least one active)")
	}

	// 6. penalties must be non-negative
	p := c.Validation.Penalties
	if p.Error < 0 || p.Warning < 0 || p.Info < 0 {
		return fmt.Errorf("validation.penalties must be non-negative (got error=%.2f warning=%.2f info=%.2f)",
			p.Error, p.Warning, p.Info)
	}

	// 7. autofix.max_passes must be >= 1 when autofix is enabled
	if c.Autofix.IsEnabled() && c.Autofix.MaxPasses < 1 {
		return fmt.Errorf("autofix.max_passes must be >= 1 (got %d)", c.Autofix.MaxPasses)
	}

	// 8. generator bounds
	if c.Generator.MaxAttempts < 1 || c.Generator.MaxAttempts > 5 {
		return fmt.Errorf("generator.max_attempts must be between 1 and 5 (got %d)", c.Generator.MaxAttempts)
	}
	if c.Generator.Temperature < 0 || c.Generator.Temperature > 2 {
		return fmt.Errorf("generator.temperature must be between 0.0 and 2.0 (got %.2f)", c.Generator.Temperature)
	}
	if c.Generator.MaxExamples < 0 || c.Generator.MaxExamples > 10 {
		return fmt.Errorf("generator.max_examples must be between 0 and 10 (got %d)", c.Generator.MaxExamples)
	}

	return nil
}
