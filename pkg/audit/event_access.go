package audit

import "fmt"

// AccessEvent represents an ownership check that did not authorize a request
type AccessEvent struct {
	UserID     string
	ClientIP   string
	Resource   string
	ResourceID string
	Operation  string
	// Decision is the ownership outcome, e.g. "forbidden".
	Decision string
}

func (e AccessEvent) MessageID() string {
	return "access"
}

func (e AccessEvent) Message() string {
	return fmt.Sprintf("%s tried to %s %s %s: %s", e.UserID, e.Operation, e.Resource, e.ResourceID, e.Decision)
}

func (e AccessEvent) Severity() Severity {
	return SeverityWarning
}

func (e AccessEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AccessEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"resource": e.Resource,
			"id":       e.ResourceID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    e.Decision,
		},
	}
}
