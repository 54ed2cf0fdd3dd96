package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cacheAdapter "github.com/uiforge/uiforge/internal/adapters/outbound/cache"
	"github.com/uiforge/uiforge/internal/adapters/outbound/config"
	"github.com/uiforge/uiforge/internal/adapters/outbound/detector"
	"github.com/uiforge/uiforge/internal/adapters/outbound/gitinfo"
	"github.com/uiforge/uiforge/internal/adapters/outbound/history"
	"github.com/uiforge/uiforge/internal/adapters/outbound/tui"
	"github.com/uiforge/uiforge/internal/application"
	"github.com/uiforge/uiforge/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		axis       string
		noCache    bool
		ciMode     bool
		minScore   float64
	)

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a component file against the quality gate",
		Long:  "Run the eight-axis validator over one component file: typescript, imports, styling, naming, structure, accessibility, performance, and security.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if noCache {
				_ = cacheAdapter.New().Invalidate(application.FindRoot(absPath))
			}

			contexts := application.NewContextService(
				detector.New(),
				config.New(),
				cacheAdapter.New(),
				gitinfo.New(),
			)
			svc := application.NewValidateService(contexts, history.New())

			var result *domain.ValidationResult
			if axis != "" {
				if !domain.IsValidValidationType(domain.ValidationType(axis)) {
					return fmt.Errorf("unknown axis %q (valid: %s)", axis, axisNames())
				}
				data, err := os.ReadFile(absPath)
				if err != nil {
					return fmt.Errorf("reading %s: %w", absPath, err)
				}
				root := application.FindRoot(absPath)
				result, err = svc.ValidateAxis(root, absPath, string(data), domain.ValidationType(axis))
				if err != nil {
					return fmt.Errorf("validate failed: %w", err)
				}
			} else {
				result, err = svc.ValidateFile(absPath)
				if err != nil {
					return fmt.Errorf("validate failed: %w", err)
				}
			}

			if jsonOutput {
				if err := printJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(result))
			}

			if !result.Passed {
				return fmt.Errorf("%w: %d error(s) in %s", errValidationFailed, len(result.Errors()), args[0])
			}
			if ciMode && result.Score < minScore {
				return fmt.Errorf("%w: score %.2f is below minimum %.2f", errValidationFailed, result.Score, minScore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().StringVar(&axis, "axis", "", "Run a single axis instead of the full gate")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Force fresh project detection")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if score is below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum score for CI mode")

	return cmd
}

func axisNames() string {
	names := ""
	for i, a := range domain.AxisOrder {
		if i > 0 {
			names += ", "
		}
		names += string(a)
	}
	return names
}
