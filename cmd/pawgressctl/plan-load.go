package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/annie-elequin/pawgress/pkg/config"
	"github.com/annie-elequin/pawgress/pkg/db"
	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/plan"
	gormstore "github.com/annie-elequin/pawgress/pkg/server/store/gorm"
)

// planLoadCmd represents the plan load command
var planLoadCmd = &cobra.Command{
	Use:   "load <email> <file>",
	Short: "Load a training plan for a user",
	Long: `Load a YAML training plan into a user's account.

A plan lists dogs, behaviors and criteria as tagged statements:

  - !dog Rex
  - !behavior
    title: Sit
    category: basics
  - !criterion
    name: Duration
    difficultyLevel: beginner

The whole plan is created in one transaction. Use --dry-run to validate it
against the database without keeping anything.

Example:
  pawgressctl plan load annie@example.com plans/puppy-basics.yml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		email := strings.ToLower(strings.TrimSpace(args[0]))

		file, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open plan file: %w", err)
		}
		defer func() { _ = file.Close() }()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		database, err := db.Connect(db.Config{LogLevel: cfg.LogLevel})
		if err != nil {
			return err
		}

		user, err := gormstore.NewUsersStore(database).FindByEmail(cmd.Context(), email)
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("user not found: %s", email)
		}
		if err != nil {
			return err
		}

		result, err := plan.NewLoader(database, user.ID).WithDryRun(dryRun).LoadFromReader(cmd.Context(), file)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	planCmd.AddCommand(planLoadCmd)
	planLoadCmd.Flags().Bool("dry-run", false, "Validate the plan without keeping any records")
}
