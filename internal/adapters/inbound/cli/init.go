package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configFileName = ".uiforge.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .uiforge.yaml configuration file",
		Long:  "Create a .uiforge.yaml with the default quality gate settings. Framework and styling stay auto-detected unless you uncomment the overrides.",
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

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(defaultConfigYAML), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing .uiforge.yaml")

	return cmd
}

const defaultConfigYAML = `# uiforge configuration
# Framework, styling, and component_dir are auto-detected from the
# project. Uncomment to override.

# framework: next            # next | react | remix | vite
# styling: tailwind          # tailwind | css | css-modules | styled-components
# component_dir: src/components

validation:
  min_score: 0.8
  # skip:
  #   - security
  # penalties:
  #   error: 0.2
  #   warning: 0.1
  #   info: 0.05

autofix:
  enabled: true
  max_passes: 2

generator:
  model: gemini-1.5-flash
  temperature: 0.2
  max_attempts: 2
  max_examples: 3
`
