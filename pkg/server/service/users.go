package service

import (
	"loanledger/pkg/model"
	"loanledger/pkg/server/store"
)

// UserService handles user creation and listing.
type UserService struct {
	users store.UsersStore
}

// NewUserService creates a new UserService
func NewUserService(users store.UsersStore) *UserService {
	return &UserService{users: users}
}

// CreateUser validates the display name and persists a new user.
func (s *UserService) CreateUser(rawUsername string) (*model.User, error) {
	username, err := model.NewUsername(rawUsername)
	if err != nil {
		return nil, err
	}
	return s.users.CreateUser(string(username))
}

// ListUsers returns all users.
func (s *UserService) ListUsers() ([]model.User, error) {
	return s.users.ListUsers()
}
