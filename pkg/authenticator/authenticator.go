package authenticator

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned for any failed login. Callers must not
// be able to tell an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator defines the interface for all authenticators
type Authenticator interface {
	// Name returns the authenticator name (e.g., "password")
	Name() string

	// Authenticate validates credentials and returns the user id on success
	Authenticate(ctx context.Context, input AuthenticatorInput) (*Result, error)
}

// AuthenticatorInput contains the input for authentication
type AuthenticatorInput struct {
	Login       string
	Credentials []byte
	ClientIP    string
}

// Result identifies the authenticated user.
type Result struct {
	UserID string
	Email  string
	Name   string
}

// Registry holds the authenticators the server was built with. It is filled
// once at startup and only read afterwards.
type Registry struct {
	authenticators map[string]Authenticator
}

// NewRegistry creates a registry holding auths
func NewRegistry(auths ...Authenticator) *Registry {
	r := &Registry{authenticators: make(map[string]Authenticator, len(auths))}
	for _, a := range auths {
		r.authenticators[a.Name()] = a
	}
	return r
}

// Get returns an authenticator by name
func (r *Registry) Get(name string) (Authenticator, error) {
	auth, ok := r.authenticators[name]
	if !ok {
		return nil, fmt.Errorf("authenticator %q not found", name)
	}
	return auth, nil
}

// Installed returns all installed authenticator names
func (r *Registry) Installed() []string {
	names := make([]string, 0, len(r.authenticators))
	for name := range r.authenticators {
		names = append(names, name)
	}
	return names
}
