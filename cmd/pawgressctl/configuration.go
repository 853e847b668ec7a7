package main

import (
	"github.com/spf13/cobra"
)

// configurationCmd represents the configuration command
var configurationCmd = &cobra.Command{
	Use:   "configuration",
	Short: "Manage Pawgress configuration",
	Long:  `Manage Pawgress configuration settings.`,
}

func init() {
	rootCmd.AddCommand(configurationCmd)
}
