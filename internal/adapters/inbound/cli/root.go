package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// errValidationFailed marks a run that completed but did not pass.
// main translates it to exit code 1; every other error exits 2.
var errValidationFailed = errors.New("validation failed")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "uiforge",
		Short:         "Quality gate for AI-generated UI components",
		Long:          "UIForge validates, repairs, and generates React components. Every component passes the same eight-axis quality gate before it reaches your codebase.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newContextCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newKeyCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// ExitCode maps an Execute error to the process exit code: 0 for
// success, 1 for a failed quality gate, 2 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errValidationFailed):
		return 1
	default:
		return 2
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
