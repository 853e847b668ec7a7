// Command pawgressctl runs the Pawgress pet training API and its
// maintenance tasks.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: storage interfaces, implemented on GORM in store/gorm
//   - pkg/token: session token signing and verification
//   - pkg/ownership: per-resource ownership decisions
//   - pkg/authenticator: email and password login
//   - pkg/audit: RFC 5424 audit trail
//   - pkg/config: configuration file and environment
//   - pkg/plan: YAML training plan loader
//
// # Quick Start
//
//	# Generate a signing secret
//	export PAWGRESS_JWT_SECRET=$(pawgressctl secret generate)
//
//	# Run database migrations
//	pawgressctl db migrate
//
//	# Start the server
//	pawgressctl server
//
//	# Seed an account with a training plan
//	pawgressctl plan load annie@example.com puppy-basics.yml
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - PAWGRESS_JWT_SECRET: HMAC secret for session tokens (JWT_SECRET is also read)
//   - PAWGRESS_CONFIG_PATH: directory holding pawgress.yml (default: /etc/pawgress)
//   - AUDIT_DATABASE_URL: optional database for persisted audit messages
//   - PORT: Server port (default: 3001)
//   - BIND_ADDRESS: Server bind address (default: 0.0.0.0)
//   - PAWGRESS_MIGRATIONS_PATH: migrations directory when not embedded (default: db/migrations)
//   - PAWGRESS_USER_PASSWORD: password for "user create"
package main
