package audit

import "fmt"

// WhoamiEvent represents a caller reading its own identity
type WhoamiEvent struct {
	UserID   string
	ClientIP string
}

func (e WhoamiEvent) MessageID() string {
	return "identity-check"
}

func (e WhoamiEvent) Message() string {
	return fmt.Sprintf("%s checked its identity", e.UserID)
}

func (e WhoamiEvent) Severity() Severity {
	return SeverityInfo
}

func (e WhoamiEvent) Facility() int {
	return FacilityAuth
}

func (e WhoamiEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "whoami",
			"result":    "success",
		},
	}
}
