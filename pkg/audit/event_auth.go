package audit

import "fmt"

// SignupEvent represents an account creation attempt
type SignupEvent struct {
	Email        string
	UserID       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e SignupEvent) MessageID() string {
	return "signup"
}

func (e SignupEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s signed up as user %s", e.Email, e.UserID)
	}
	msg := fmt.Sprintf("%s failed to sign up", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e SignupEvent) Severity() Severity {
	return severity(e.Success)
}

func (e SignupEvent) Facility() int {
	return FacilityAuth
}

func (e SignupEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"email": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "signup",
			"result":    result(e.Success),
		},
	}
	if e.UserID != "" {
		sd[SDIDAuth]["user"] = e.UserID
	}
	return sd
}

// LoginEvent represents a password authentication attempt
type LoginEvent struct {
	Email             string
	UserID            string
	ClientIP          string
	AuthenticatorName string
	Success           bool
	ErrorMessage      string
}

func (e LoginEvent) MessageID() string {
	return "authn"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated with authenticator %s", e.Email, e.AuthenticatorName)
	}
	msg := fmt.Sprintf("%s failed to authenticate with authenticator %s", e.Email, e.AuthenticatorName)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoginEvent) Severity() Severity {
	return severity(e.Success)
}

func (e LoginEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"authenticator": e.AuthenticatorName,
			"email":         e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "login",
			"result":    result(e.Success),
		},
	}
	if e.UserID != "" {
		sd[SDIDAuth]["user"] = e.UserID
	}
	return sd
}

// TokenEvent represents a request the access guard turned away
type TokenEvent struct {
	ClientIP string
	Method   string
	Path     string
	// Reason is "missing" or "invalid".
	Reason string
}

func (e TokenEvent) MessageID() string {
	return "token"
}

func (e TokenEvent) Message() string {
	return fmt.Sprintf("rejected %s %s: %s token", e.Method, e.Path, e.Reason)
}

func (e TokenEvent) Severity() Severity {
	if e.Reason == "invalid" {
		return SeverityWarning
	}
	return SeverityNotice
}

func (e TokenEvent) Facility() int {
	return FacilityAuth
}

func (e TokenEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDSubject: {
			"path": e.Path,
		},
		SDIDAction: {
			"operation": "verify-token",
			"reason":    e.Reason,
			"result":    "failure",
		},
	}
}
