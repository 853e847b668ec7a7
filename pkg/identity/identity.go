package identity

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/annie-elequin/pawgress/pkg/token"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated caller of a request.
type Identity struct {
	// Token claims
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time

	// Request context
	RemoteIP net.IP
}

// FromClaims creates an Identity from verified token claims.
func FromClaims(claims *token.Claims) *Identity {
	return &Identity{
		UserID:    claims.UserID,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAtTime(),
		ExpiresAt: claims.ExpiresAtTime(),
	}
}

// WithRemoteIP sets the remote IP address.
func (i *Identity) WithRemoteIP(ip net.IP) *Identity {
	i.RemoteIP = ip
	return i
}

// Owns reports whether ownerID names this identity.
func (i *Identity) Owns(ownerID string) bool {
	return i != nil && i.UserID != "" && i.UserID == ownerID
}

// ClientIP returns the address of the peer that sent the request.
// Forwarding headers are client-controlled and ignored.
func ClientIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return net.ParseIP(host)
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok && id != nil
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
