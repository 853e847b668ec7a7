// Package audit provides audit logging for security-relevant Pawgress
// operations.
//
// Events are written as RFC 5424 syslog lines and, when an audit database
// is configured, persisted to the audit_messages table.
//
// # Event Types
//
//   - SignupEvent: account creation
//   - LoginEvent: password authentication (success/failure)
//   - TokenEvent: a request rejected by the access guard
//   - AccessEvent: an ownership check that denied a request
//   - WhoamiEvent: a caller inspecting its own identity
//
// # Usage
//
//	logger := audit.NewLogger(os.Stdout)
//	logger.Log(audit.LoginEvent{Email: email, ClientIP: ip, Success: true})
//
// A nil *Logger discards events, which keeps handlers usable in tests
// without wiring an audit sink.
package audit
