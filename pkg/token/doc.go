// Package token issues and verifies Pawgress session tokens.
//
// A session token is an HS256-signed JWT carrying the user id and email of
// the authenticated user. Tokens are stateless: nothing is stored server
// side, so a token stays valid until it expires 24 hours after issuance.
// Logging out is a client-side discard.
//
// # Basic Usage
//
//	tokens := token.New(cfg.JWTSecret)
//
//	raw, err := tokens.Issue(user.ID, user.Email)
//	if err != nil {
//	    return err
//	}
//
//	claims, err := tokens.Verify(raw)
//	if errors.Is(err, token.ErrInvalidToken) {
//	    // expired, tampered, or signed with another secret
//	}
//
// # Claims
//
// The decoded payload has the shape:
//
//	{"userId": "...", "email": "...", "iat": 1700000000, "exp": 1700086400}
package token
