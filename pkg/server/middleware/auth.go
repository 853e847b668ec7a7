package middleware

import (
	"net/http"
	"strings"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/identity"
	"github.com/annie-elequin/pawgress/pkg/token"
)

// TokenVerifier checks a raw session token.
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// BearerAuthenticator is middleware that admits requests carrying a valid
// session token and attaches the caller's identity to the request context.
type BearerAuthenticator struct {
	verifier TokenVerifier
	audit    *audit.Logger
}

// NewBearerAuthenticator creates the middleware. auditLogger may be nil.
func NewBearerAuthenticator(verifier TokenVerifier, auditLogger *audit.Logger) *BearerAuthenticator {
	return &BearerAuthenticator{verifier: verifier, audit: auditLogger}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is case-insensitive.
func BearerToken(header string) (string, bool) {
	scheme, raw, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	return raw, true
}

// Middleware returns an HTTP middleware that validates session tokens.
// A missing token is answered with 401 and an invalid one with 403; in
// both cases next is not called.
func (a *BearerAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := BearerToken(r.Header.Get("Authorization"))
		if !ok {
			a.reject(r, "missing")
			apierr.Write(w, apierr.TokenRequired())
			return
		}

		claims, err := a.verifier.Verify(raw)
		if err != nil {
			a.reject(r, "invalid")
			apierr.Write(w, apierr.InvalidToken(err))
			return
		}

		id := identity.FromClaims(claims).WithRemoteIP(identity.ClientIP(r))
		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}

func (a *BearerAuthenticator) reject(r *http.Request, reason string) {
	a.audit.Log(audit.TokenEvent{
		ClientIP: identity.ClientIP(r).String(),
		Method:   r.Method,
		Path:     r.URL.Path,
		Reason:   reason,
	})
}
