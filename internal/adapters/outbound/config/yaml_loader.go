package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uiforge/uiforge/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".uiforge.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .uiforge.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .uiforge.yaml from root and merges it over the defaults.
// A missing file is not an error; the defaults apply as-is.
func (l *YAMLLoader) Load(root string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var overrides domain.ProjectConfig
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Merge first: a partial file is legal, so validation has to see
	// the effective config, not the raw fragment.
	cfg := domain.DefaultConfig().Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
