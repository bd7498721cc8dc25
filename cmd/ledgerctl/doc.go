// Package main provides ledgerctl, the CLI for the loanledger server.
//
// loanledger is a multi-tenant ledger of fixed-rate loans. Users own loans,
// may share them read-only with other users, and read amortization
// schedules and summaries computed on demand.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/service: Existence checks, authorization, orchestration
//   - pkg/server/store: Persistence interfaces and gorm implementations
//   - pkg/amortization: Schedule and summary computation
//   - pkg/identity: Caller identity resolution
//   - pkg/model: Database models and input validation
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Run database migrations
//	ledgerctl db migrate
//
//	# Register a user
//	ledgerctl user create alice
//
//	# Start the server
//	ledgerctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - PORT, BIND_ADDRESS: Server listen address
//   - LOANLEDGER_LOG_LEVEL: Log level (debug, info, warn, error)
//   - LOANLEDGER_TOKEN_SECRET: Enables bearer-token identity resolution
//   - AUDIT_DATABASE_URL: Optional audit event sink
package main
