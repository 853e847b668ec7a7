// Package authenticator defines the interface for Pawgress login mechanisms.
//
// # Authenticator Interface
//
//	type Authenticator interface {
//	    Name() string
//	    Authenticate(ctx context.Context, input AuthenticatorInput) (*Result, error)
//	}
//
// A failed login of any kind returns ErrInvalidCredentials.
//
// # Built-in Authenticators
//
//   - password: email and bcrypt password - see [github.com/annie-elequin/pawgress/pkg/authenticator/password]
package authenticator
