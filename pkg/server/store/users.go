package store

import "loanledger/pkg/model"

// UsersStore abstracts user storage operations
type UsersStore interface {
	// CreateUser persists a new user and returns it with its assigned ID.
	CreateUser(username string) (*model.User, error)

	// FetchUser retrieves a user by ID. Returns nil when no such user exists.
	FetchUser(id int64) (*model.User, error)

	// ListUsers returns all users ordered by ID.
	ListUsers() ([]model.User, error)
}
