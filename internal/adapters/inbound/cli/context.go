package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	cacheAdapter "github.com/uiforge/uiforge/internal/adapters/outbound/cache"
	"github.com/uiforge/uiforge/internal/adapters/outbound/config"
	"github.com/uiforge/uiforge/internal/adapters/outbound/detector"
	"github.com/uiforge/uiforge/internal/adapters/outbound/gitinfo"
	"github.com/uiforge/uiforge/internal/adapters/outbound/tui"
	"github.com/uiforge/uiforge/internal/application"
	"github.com/uiforge/uiforge/internal/domain"
)

func newContextCmd() *cobra.Command {
	var (
		refresh    bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "context [path]",
		Short: "Show the detected project context",
		Long:  "Detect (or read from cache) the project's framework, styling system, language, and component directory, plus the effective configuration.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			contexts := application.NewContextService(
				detector.New(),
				config.New(),
				cacheAdapter.New(),
				gitinfo.New(),
			)

			if refresh {
				if _, err := contexts.Refresh(absPath); err != nil {
					return fmt.Errorf("refreshing context: %w", err)
				}
			}

			pctx, cfg, err := contexts.Resolve(absPath)
			if err != nil {
				return fmt.Errorf("resolving context: %w", err)
			}

			if jsonOutput {
				return printJSON(cmd, struct {
					Context *domain.ProjectContext `json:"context"`
					Config  domain.ProjectConfig   `json:"config"`
				}{pctx, cfg})
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderContext(pctx, cfg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the cache and re-detect")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output context and config as JSON")

	return cmd
}
