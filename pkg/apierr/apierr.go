package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// Kind classifies an error by how it is reported to the client.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindInvalidToken
	KindForbidden
	KindNotFound
	KindValidation
	KindUnavailable
)

// Client-facing messages.
const (
	MsgTokenRequired      = "Access token required"
	MsgInvalidToken       = "Invalid or expired token"
	MsgAccessDenied       = "Access denied"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUserExists         = "User already exists"
	MsgInternal           = "Something went wrong"
	MsgUnavailable        = "Service unavailable"
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindInvalidToken:
		return "invalid_token"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInvalidToken, KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a failure with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause. It is logged, never sent to clients.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so errors.Is(err,
// apierr.Forbidden()) works without comparing messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Status returns the HTTP status code for the error.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// Unauthenticated is returned when no usable credentials were presented.
func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

// TokenRequired is the Unauthenticated error for a missing bearer token.
func TokenRequired() *Error {
	return Unauthenticated(MsgTokenRequired)
}

// InvalidCredentials is the Unauthenticated error for a failed login.
func InvalidCredentials() *Error {
	return Unauthenticated(MsgInvalidCredentials)
}

// InvalidToken is returned when a presented token fails verification.
func InvalidToken(cause error) *Error {
	return &Error{Kind: KindInvalidToken, Message: MsgInvalidToken, Err: cause}
}

// Forbidden is returned when the caller does not own the resource.
func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: MsgAccessDenied}
}

// NotFound is returned when the named resource does not exist.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Validation is returned for malformed or rejected input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Validationf formats a validation message.
func Validationf(format string, args ...interface{}) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// Internal wraps an unexpected failure.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: cause}
}

// Unavailable wraps a dependency outage.
func Unavailable(cause error) *Error {
	return &Error{Kind: KindUnavailable, Message: MsgUnavailable, Err: cause}
}

// From converts any error into an *Error. Errors that are not already typed
// become Internal.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}

// Write sends err to the client as {"error": message} with the matching
// status code. Internal and Unavailable errors are logged with their cause.
func Write(w http.ResponseWriter, err error) {
	apiErr := From(err)
	if apiErr.Kind == KindInternal || apiErr.Kind == KindUnavailable {
		log.Printf("%s error: %v", apiErr.Kind, apiErr.Err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status())
	_ = json.NewEncoder(w).Encode(map[string]string{"error": apiErr.Message})
}
