// Package password implements email and password login backed by bcrypt.
package password

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/annie-elequin/pawgress/pkg/authenticator"
	"github.com/annie-elequin/pawgress/pkg/model"
)

// Name is the registry name of this authenticator.
const Name = "password"

// MinLength is the shortest password accepted at signup.
const MinLength = 6

// MaxLength is the longest password bcrypt can hash, in bytes.
const MaxLength = 72

// UserFinder is the slice of the users store this package needs.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// Authenticator checks an email and password against stored bcrypt hashes.
type Authenticator struct {
	users UserFinder
	// dummyHash is compared against when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

var _ authenticator.Authenticator = (*Authenticator)(nil)

// New creates a password authenticator. cost must match the cost used by
// Hash so failed lookups take as long as wrong passwords.
func New(users UserFinder, cost int) (*Authenticator, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("pawgress-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("password authenticator: %w", err)
	}
	return &Authenticator{users: users, dummyHash: dummy}, nil
}

// Name returns the authenticator name
func (a *Authenticator) Name() string {
	return Name
}

// Authenticate validates an email and password and returns the user.
func (a *Authenticator) Authenticate(ctx context.Context, input authenticator.AuthenticatorInput) (*authenticator.Result, error) {
	if input.Login == "" || len(input.Credentials) == 0 {
		return nil, authenticator.ErrInvalidCredentials
	}

	user, err := a.users.FindByEmail(ctx, input.Login)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(a.dummyHash, input.Credentials)
			return nil, authenticator.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), input.Credentials); err != nil {
		return nil, authenticator.ErrInvalidCredentials
	}

	return &authenticator.Result{UserID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// Hash returns the bcrypt hash of password at the given cost.
func Hash(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
