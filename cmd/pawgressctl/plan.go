package main

import (
	"github.com/spf13/cobra"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage training plans",
}

func init() {
	rootCmd.AddCommand(planCmd)
}
