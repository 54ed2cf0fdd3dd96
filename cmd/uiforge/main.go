package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/uiforge/uiforge/internal/adapters/inbound/cli"
	"github.com/uiforge/uiforge/internal/logging"
)

func main() {
	_ = godotenv.Load()

	err := cli.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
