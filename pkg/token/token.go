package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TTL is the fixed validity window of a session token.
	TTL = 24 * time.Hour

	// DefaultSecret is the signing secret used when none is configured.
	// It is publicly known; deployments must set their own.
	DefaultSecret = "your-secret-key"
)

// ErrInvalidToken is returned by Verify for any token that must not be
// trusted: bad signature, wrong algorithm, expired, or malformed.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload of a session token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// IssuedAtTime returns the issuance time, or the zero time if unset.
func (c *Claims) IssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// ExpiresAtTime returns the expiry time, or the zero time if unset.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Service signs and verifies session tokens with a single shared secret.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	secret        []byte
	defaultSecret bool
	now           func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a token service signing with secret. An empty secret falls
// back to DefaultSecret.
func New(secret string, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		now:    time.Now,
	}
	if secret == "" || secret == DefaultSecret {
		s.secret = []byte(DefaultSecret)
		s.defaultSecret = true
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UsingDefaultSecret reports whether the service signs with DefaultSecret.
func (s *Service) UsingDefaultSecret() bool {
	return s.defaultSecret
}

// Issue returns a signed token for the user, valid for TTL.
func (s *Service) Issue(userID, email string) (string, error) {
	if userID == "" {
		return "", errors.New("token: user id is required")
	}

	now := s.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: failed to sign: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry of raw and returns its claims.
// Every failure wraps ErrInvalidToken.
func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(
		raw,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
