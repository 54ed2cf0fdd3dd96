package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	cacheAdapter "github.com/uiforge/uiforge/internal/adapters/outbound/cache"
	"github.com/uiforge/uiforge/internal/adapters/outbound/config"
	"github.com/uiforge/uiforge/internal/adapters/outbound/detector"
	"github.com/uiforge/uiforge/internal/adapters/outbound/generator"
	"github.com/uiforge/uiforge/internal/adapters/outbound/gitinfo"
	"github.com/uiforge/uiforge/internal/adapters/outbound/history"
	"github.com/uiforge/uiforge/internal/adapters/outbound/keystore"
	"github.com/uiforge/uiforge/internal/adapters/outbound/scanner"
	"github.com/uiforge/uiforge/internal/adapters/outbound/tui"
	"github.com/uiforge/uiforge/internal/adapters/outbound/writer"
	"github.com/uiforge/uiforge/internal/application"
	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/autofix"
)

func newGenerateCmd() *cobra.Command {
	var (
		name       string
		outPath    string
		write      bool
		force      bool
		jsonOutput bool
		printCode  bool
	)

	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate a component that passes the quality gate",
		Long:  "Describe a component in plain words. UIForge prompts the model with your project's conventions, validates the result, autofixes what it can, and retries on failure.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")

			root, err := filepath.Abs(".")
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			apiKey, err := keystore.New().Get()
			if err != nil {
				return err
			}

			contexts := application.NewContextService(
				detector.New(),
				config.New(),
				cacheAdapter.New(),
				gitinfo.New(),
			)

			_, cfg, err := contexts.Resolve(root)
			if err != nil {
				return fmt.Errorf("resolving project context: %w", err)
			}

			gen, err := generator.NewGemini(cmd.Context(), apiKey, cfg.Generator)
			if err != nil {
				return fmt.Errorf("starting generator: %w", err)
			}
			defer gen.Close()

			validateSvc := application.NewValidateService(contexts, history.New())
			svc := application.NewGenerateService(
				contexts,
				validateSvc,
				autofix.New(),
				gen,
				scanner.New(),
				writer.New(),
				history.New(),
			)

			req := domain.GenerateRequest{
				Description: description,
				Name:        name,
				Path:        outPath,
				Write:       write,
				Force:       force,
			}

			outcome, err := svc.Generate(cmd.Context(), root, req)
			if err != nil {
				return fmt.Errorf("generate failed: %w", err)
			}

			switch {
			case jsonOutput:
				return printJSON(cmd, outcome)
			case printCode:
				fmt.Fprint(cmd.OutOrStdout(), outcome.Code)
				return nil
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderGenerateOutcome(outcome))
				if !outcome.Written {
					fmt.Fprintln(cmd.OutOrStdout())
					fmt.Fprint(cmd.OutOrStdout(), outcome.Code)
				}
			}

			if outcome.Result != nil && !outcome.Result.Passed {
				return fmt.Errorf("%w: generated component still has errors after %d attempt(s)", errValidationFailed, outcome.Attempts)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Component name (derived from the description when omitted)")
	cmd.Flags().StringVar(&outPath, "path", "", "Output path relative to the project root")
	cmd.Flags().BoolVar(&write, "write", false, "Write the component into the project")
	cmd.Flags().BoolVar(&force, "force", false, "Write even when validation fails")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the outcome as JSON")
	cmd.Flags().BoolVar(&printCode, "print", false, "Print only the generated code")

	return cmd
}
