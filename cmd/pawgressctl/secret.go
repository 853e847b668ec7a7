package main

import (
	"github.com/spf13/cobra"
)

// secretCmd represents the secret command
var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage the token signing secret",
}

func init() {
	rootCmd.AddCommand(secretCmd)
}
