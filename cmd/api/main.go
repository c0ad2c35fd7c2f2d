package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-api",
		Short: "Clinic booking API server",
	}

	serve := serveCmd()
	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(seedCmd())
	// Running the binary without a subcommand starts the server.
	rootCmd.RunE = serve.RunE

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
