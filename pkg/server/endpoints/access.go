package endpoints

import (
	"context"
	"net/http"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/ownership"
)

// target names the resource an operation is aimed at, for error messages
// and the audit trail.
type target struct {
	kind      string
	id        string
	operation string
}

// loadOwned fetches a resource and admits the caller only when they own it.
// Absent resources are reported as "<kind> not found", foreign ones as
// "Access denied"; denials are audited.
func loadOwned[T ownership.Owned](r *http.Request, auditLogger *audit.Logger, t target, fetch func(ctx context.Context, id string) (T, error)) (T, error) {
	var zero T

	id, err := caller(r)
	if err != nil {
		return zero, err
	}

	resource, lookupErr := fetch(r.Context(), t.id)
	decision, err := ownership.Check(id.UserID, resource, lookupErr)
	if err != nil {
		return zero, apierr.Internal(err)
	}

	if decision == ownership.Forbidden {
		auditLogger.Log(audit.AccessEvent{
			UserID:     id.UserID,
			ClientIP:   clientIP(r),
			Resource:   t.kind,
			ResourceID: t.id,
			Operation:  t.operation,
			Decision:   decision.String(),
		})
	}
	if decision != ownership.Authorized {
		return zero, decision.Err(t.kind)
	}
	return resource, nil
}
