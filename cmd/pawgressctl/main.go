package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pawgressctl",
	Short: "Run and administer the Pawgress API server",
	Long: `Run and administer the Pawgress API server.

Most commands need DATABASE_URL to point at the PostgreSQL database.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
