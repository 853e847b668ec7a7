// Package server provides the HTTP server for the Pawgress API.
//
// It uses gorilla/mux for routing, gorilla/handlers for access logging and
// CORS, and owns the collaborators every endpoint needs: stores, the token
// service, the bearer-token guard and the audit logger.
//
// # Server Setup
//
//	srv, err := server.NewServer(server.Deps{
//	    Config: cfg,
//	    Stores: server.GormStores(db),
//	    Audit:  audit.NewLogger(os.Stdout),
//	}, "0.0.0.0", "3000")
//	endpoints.RegisterAll(srv)
//	err = srv.Start()
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - /api/auth/signup, /api/auth/login - public
//   - /api/auth/me, /api/users/{id} - the caller's own account
//   - /api/pets, /api/dogs, /api/activities - pets and their schedule
//   - /api/behaviors, /api/criteria - training notes
package server
