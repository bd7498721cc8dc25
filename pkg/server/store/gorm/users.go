package gorm

import (
	"errors"

	"gorm.io/gorm"

	"loanledger/pkg/model"
	"loanledger/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser persists a new user and returns it with its assigned ID.
func (s *UsersStore) CreateUser(username string) (*model.User, error) {
	user := model.User{Username: username}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchUser retrieves a user by ID. Returns nil when no such user exists.
func (s *UsersStore) FetchUser(id int64) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users ordered by ID.
func (s *UsersStore) ListUsers() ([]model.User, error) {
	users := make([]model.User, 0)
	err := s.db.Order("id").Find(&users).Error
	return users, err
}
