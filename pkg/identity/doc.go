// Package identity carries the authenticated caller through a request.
//
// The token package verifies the raw session token. This package turns the
// verified claims into an Identity and stores it in the request context so
// handlers and ownership checks can read it without touching the token again.
//
// # Basic Usage
//
//	// Build from verified claims
//	id := identity.FromClaims(claims).WithRemoteIP(clientIP)
//
//	// Store in request context
//	ctx = identity.Set(ctx, id)
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
//
// An Identity is immutable once it is attached to a context; handlers only
// read it.
package identity
