// Package server provides the HTTP server for the loanledger API.
//
// This package implements the core HTTP server that handles all ledger REST
// API requests. It uses gorilla/mux for routing, gorilla/handlers for
// access logging, and wires the gorm-backed stores into a Server value the
// endpoints register against.
//
// # Server Setup
//
//	srv := server.NewServer(db, resolver, "0.0.0.0", "8000")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Resolver: Caller identity resolution
//   - UsersStore, LoansStore, AccessStore, HealthStore: persistence
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers the ledger API:
//
//   - /users - User registration and listing
//   - /users/{id}/loans, /users/{id}/visible-loans - Loan listings
//   - /loans, /loans/{id} - Loan lifecycle
//   - /loans/{id}/share - Read-access grants
//   - /loans/{id}/schedule, /loans/{id}/summary - Amortization
//   - /, /health - Status and connectivity
package server
