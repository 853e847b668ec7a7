package main

import (
	"github.com/spf13/cobra"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Work with session tokens",
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
