package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/uiforge/uiforge/internal/adapters/inbound/httpapi"
)

func newServeCmd() *cobra.Command {
	var (
		addr        string
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the UIForge HTTP API",
		Long:  "Serve the quality gate over HTTP: validate, fix, and generate endpoints plus health and Prometheus metrics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(projectPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			srv, err := httpapi.NewServer(absPath)
			if err != nil {
				return fmt.Errorf("starting server: %w", err)
			}
			return srv.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8787", "Listen address")
	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path the API operates on")

	return cmd
}
