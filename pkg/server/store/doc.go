// Package store provides storage abstractions for the loan-ledger server.
//
// This package defines interfaces for database operations, allowing the
// service layer and endpoints to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// # Available Stores
//
//   - UsersStore: user creation and lookup
//   - LoansStore: loan creation, lookup and update
//   - AccessStore: the loan/user read-grant relation
//   - HealthStore: database connectivity checks
//
// Fetch operations return a nil record (with a nil error) when the requested
// row does not exist; the service layer classifies that as a not-found
// outcome. Store errors are reserved for unexpected persistence failures.
package store
