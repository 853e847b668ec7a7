package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/annie-elequin/pawgress/pkg/config"
	"github.com/annie-elequin/pawgress/pkg/db"
	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server/store"
	gormstore "github.com/annie-elequin/pawgress/pkg/server/store/gorm"
	"github.com/annie-elequin/pawgress/pkg/token"
)

// tokenIssueCmd represents the token issue command
var tokenIssueCmd = &cobra.Command{
	Use:   "issue <email>",
	Short: "Issue a session token for an existing user",
	Long: `Issue a 24 hour session token for an existing user, signed with the
configured JWT secret. Useful for smoke tests and support sessions.

Example:
  pawgressctl token issue annie@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		database, err := db.Connect(db.Config{LogLevel: cfg.LogLevel})
		if err != nil {
			return err
		}

		raw, err := issueToken(cmd.Context(), gormstore.NewUsersStore(database), token.New(cfg.JWTSecret), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), raw)
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenIssueCmd)
}

func issueToken(ctx context.Context, users store.UsersStore, tokens *token.Service, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", fmt.Errorf("user not found: %s", email)
	}
	if err != nil {
		return "", err
	}
	return tokens.Issue(user.ID, user.Email)
}
