package ownership

import (
	"errors"
	"fmt"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/model"
)

// Decision is the result of an ownership check.
type Decision int

const (
	// NotFound means the resource does not exist.
	NotFound Decision = iota
	// Forbidden means the resource exists but the caller does not own it.
	Forbidden
	// Authorized means the caller owns the resource.
	Authorized
)

func (d Decision) String() string {
	switch d {
	case Authorized:
		return "authorized"
	case Forbidden:
		return "forbidden"
	default:
		return "not_found"
	}
}

// Err converts a non-authorized decision into the error reported to the
// client. resource names the kind, e.g. "Dog". Authorized returns nil.
func (d Decision) Err(resource string) error {
	switch d {
	case Authorized:
		return nil
	case Forbidden:
		return apierr.Forbidden()
	default:
		return apierr.NotFound(resource)
	}
}

// Owned is implemented by every resource that records its owner.
type Owned interface {
	Owner() string
}

// Decide compares the caller with the owner of a resource. An empty caller
// or owner never authorizes.
func Decide(callerID, ownerID string, exists bool) Decision {
	if !exists {
		return NotFound
	}
	if callerID == "" || ownerID == "" || callerID != ownerID {
		return Forbidden
	}
	return Authorized
}

// Check decides on the result of a single store lookup. A lookupErr wrapping
// model.ErrNotFound yields NotFound; any other lookupErr is returned as is.
func Check[T Owned](callerID string, resource T, lookupErr error) (Decision, error) {
	if lookupErr != nil {
		if errors.Is(lookupErr, model.ErrNotFound) {
			return NotFound, nil
		}
		return NotFound, fmt.Errorf("ownership lookup: %w", lookupErr)
	}
	return Decide(callerID, resource.Owner(), true), nil
}
