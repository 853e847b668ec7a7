package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/annie-elequin/pawgress/pkg/config"
	"github.com/annie-elequin/pawgress/pkg/db"
)

// configurationApplyCmd represents the configuration apply command
var configurationApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Reload the Pawgress server to apply new configuration",
	Long: `Validate the current state of the configuration file and then signal the
running server to pick up any changes.

Note that this will NOT incorporate changes to environment variables because
process environments are static once a process has started.

Use --test to validate configuration without signalling the server.

Example:
  pawgressctl configuration apply
  pawgressctl configuration apply --test`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		testMode, _ := cmd.Flags().GetBool("test")
		return applyConfiguration(testMode)
	},
}

func init() {
	configurationCmd.AddCommand(configurationApplyCmd)
	configurationApplyCmd.Flags().Bool("test", false, "Validate configuration without reloading")
}

func applyConfiguration(testMode bool) error {
	fmt.Println("Validating configuration...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	fmt.Printf("Config file: %s\n", cfg.ConfigFilePath())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if db.URL() == "" {
		return errors.New("DATABASE_URL is not set")
	}
	if cfg.UsingDefaultSecret() {
		fmt.Println("Warning: no JWT secret configured, tokens will be signed with the built-in default")
	}

	fmt.Println("Configuration is valid.")

	if testMode {
		fmt.Println("Test mode: not reloading server.")
		return nil
	}

	fmt.Println("Sending reload signal to server...")

	output, err := exec.Command("pgrep", "-f", "pawgressctl server").Output()
	if err != nil {
		return errors.New("no running pawgressctl server found")
	}

	var pid int
	if _, err := fmt.Sscanf(string(output), "%d", &pid); err != nil {
		return fmt.Errorf("failed to parse PID: %w", err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}
	if err := process.Signal(syscall.SIGHUP); err != nil {
		return fmt.Errorf("failed to send signal: %w", err)
	}

	fmt.Printf("Sent reload signal to process %d\n", pid)
	return nil
}
