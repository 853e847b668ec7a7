// Package config provides configuration management for the Pawgress server.
//
// Configuration is read from a YAML file and then overridden by environment
// variables. Every attribute remembers where its value came from, which
// `pawgressctl configuration show` prints.
//
// # Configuration Sources
//
//   - $PAWGRESS_CONFIG_PATH/pawgress.yml (default /etc/pawgress/pawgress.yml)
//   - Environment variables (take precedence)
//
// # Key Configuration Options
//
//   - PAWGRESS_JWT_SECRET (or JWT_SECRET): token signing secret
//   - PAWGRESS_CORS_ALLOWED_ORIGINS: comma separated list of origins
//   - PAWGRESS_BCRYPT_COST: password hashing cost
//   - PAWGRESS_AUDIT_ENABLED: emit audit events
//   - PAWGRESS_LOG_LEVEL: info, debug or silent
//
// DATABASE_URL, AUDIT_DATABASE_URL, PORT and BIND_ADDRESS are read by the
// pawgressctl commands directly.
package config
