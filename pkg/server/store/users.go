package store

import (
	"context"

	"github.com/annie-elequin/pawgress/pkg/model"
)

// UsersStore abstracts credential storage
type UsersStore interface {
	// FindByEmail looks a user up by login email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FetchUser retrieves a user with their pets.
	FetchUser(ctx context.Context, id string) (*model.User, error)

	// CreateUser inserts a new user.
	// Returns ErrDuplicate if the email is already registered.
	CreateUser(ctx context.Context, user *model.User) error
}
