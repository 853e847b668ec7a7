// Package middleware holds the HTTP middleware that guards the API.
//
// BearerAuthenticator reads "Authorization: Bearer <token>", verifies the
// session token and stores the caller's identity.Identity in the request
// context for the handlers behind it.
package middleware
