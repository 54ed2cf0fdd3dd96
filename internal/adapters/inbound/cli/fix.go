package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	cacheAdapter "github.com/uiforge/uiforge/internal/adapters/outbound/cache"
	"github.com/uiforge/uiforge/internal/adapters/outbound/config"
	"github.com/uiforge/uiforge/internal/adapters/outbound/detector"
	"github.com/uiforge/uiforge/internal/adapters/outbound/gitinfo"
	"github.com/uiforge/uiforge/internal/adapters/outbound/history"
	"github.com/uiforge/uiforge/internal/adapters/outbound/tui"
	"github.com/uiforge/uiforge/internal/adapters/outbound/writer"
	"github.com/uiforge/uiforge/internal/application"
	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/autofix"
)

func newFixCmd() *cobra.Command {
	var (
		write        bool
		dryRun       bool
		force        bool
		jsonOutput   bool
		printContent bool
	)

	cmd := &cobra.Command{
		Use:   "fix <file>",
		Short: "Apply safe autofixes to a component file",
		Long:  "Validate a component, apply the deterministic fix rules, revalidate, and keep the rewrite only when it is provably no worse than the original.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			contexts := application.NewContextService(
				detector.New(),
				config.New(),
				cacheAdapter.New(),
				gitinfo.New(),
			)
			validateSvc := application.NewValidateService(contexts, history.New())
			fixSvc := application.NewFixService(validateSvc, autofix.New(), writer.New(), history.New())

			opts := domain.FixOptions{
				DryRun: dryRun,
				Write:  write,
				Force:  force,
			}

			outcome, err := fixSvc.FixFile(absPath, opts)
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}

			switch {
			case jsonOutput:
				return printJSON(cmd, outcome)
			case printContent:
				fmt.Fprint(cmd.OutOrStdout(), outcome.Content)
				return nil
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixOutcome(outcome))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write the fixed content back to the file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without writing")
	cmd.Flags().BoolVar(&force, "force", false, "Write even when the result still fails validation")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the outcome as JSON")
	cmd.Flags().BoolVar(&printContent, "print", false, "Print the resulting content to stdout")

	return cmd
}
