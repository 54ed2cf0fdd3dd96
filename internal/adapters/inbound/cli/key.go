package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/uiforge/uiforge/internal/adapters/outbound/keystore"
)

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the Gemini API key",
		Long:  "Store, inspect, or remove the Gemini API key used by generate. Keys go to the OS keychain when available, with a file fallback under ~/.uiforge.",
	}
	cmd.AddCommand(newKeySetCmd())
	cmd.AddCommand(newKeyShowCmd())
	cmd.AddCommand(newKeyClearCmd())
	return cmd
}

func newKeySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key]",
		Short: "Store the Gemini API key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) > 0 {
				key = args[0]
			} else {
				read, err := promptForKey(cmd)
				if err != nil {
					return err
				}
				key = read
			}

			if err := keystore.New().Set(key); err != nil {
				return fmt.Errorf("storing key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "API key saved.")
			return nil
		},
	}
}

func newKeyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored API key (masked)",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keystore.New().Get()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), maskKey(key))
			return nil
		},
	}
}

func newKeyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := keystore.New().Delete(); err != nil {
				return fmt.Errorf("removing key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key removed.")
			return nil
		},
	}
}

// promptForKey reads the key without echoing when stdin is a terminal,
// falling back to a plain line read when piped.
func promptForKey(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.OutOrStdout(), "Gemini API key: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("reading key: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "••••••••"
	}
	return key[:4] + "…" + key[len(key)-4:]
}
