package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/spf13/cobra"

	"github.com/annie-elequin/pawgress/pkg/authenticator/password"
	"github.com/annie-elequin/pawgress/pkg/config"
	"github.com/annie-elequin/pawgress/pkg/db"
	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server/store"
	gormstore "github.com/annie-elequin/pawgress/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create <email>",
	Short: "Create a user account",
	Long: `Create a user account without going through the signup endpoint.

The password is read from PAWGRESS_USER_PASSWORD so it never appears in the
process list. The new user's id is printed to stdout.

Example:
  PAWGRESS_USER_PASSWORD=... pawgressctl user create annie@example.com --name Annie`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		database, err := db.Connect(db.Config{LogLevel: cfg.LogLevel})
		if err != nil {
			return err
		}

		user, err := createUser(cmd.Context(), gormstore.NewUsersStore(database), cfg.BcryptCost,
			args[0], os.Getenv("PAWGRESS_USER_PASSWORD"), name)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), user.ID)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().String("name", "", "Display name")
}

func createUser(ctx context.Context, users store.UsersStore, cost int, email, plain, name string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !govalidator.IsEmail(email) {
		return nil, fmt.Errorf("invalid email: %q", email)
	}
	if utf8.RuneCountInString(plain) < password.MinLength {
		return nil, fmt.Errorf("PAWGRESS_USER_PASSWORD must be at least %d characters", password.MinLength)
	}
	if len(plain) > password.MaxLength {
		return nil, fmt.Errorf("PAWGRESS_USER_PASSWORD must be at most %d bytes", password.MaxLength)
	}

	hash, err := password.Hash(plain, cost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           model.NewID(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	}
	if err := users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("user already exists: %s", email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
