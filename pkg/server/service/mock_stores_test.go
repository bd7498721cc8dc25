package service

import (
	"github.com/stretchr/testify/mock"

	"loanledger/pkg/model"
)

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) CreateUser(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FetchUser(id int64) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) ListUsers() ([]model.User, error) {
	args := m.Called()
	return args.Get(0).([]model.User), args.Error(1)
}

// MockLoansStore implements store.LoansStore for testing using testify/mock
type MockLoansStore struct {
	mock.Mock
}

func NewMockLoansStore() *MockLoansStore {
	return &MockLoansStore{}
}

func (m *MockLoansStore) CreateLoan(loan *model.Loan) error {
	args := m.Called(loan)
	return args.Error(0)
}

func (m *MockLoansStore) FetchLoan(id int64) (*model.Loan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Loan), args.Error(1)
}

func (m *MockLoansStore) UpdateLoan(loan *model.Loan) error {
	args := m.Called(loan)
	return args.Error(0)
}

func (m *MockLoansStore) ListLoansByOwner(ownerID int64) ([]model.Loan, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]model.Loan), args.Error(1)
}

// MockAccessStore implements store.AccessStore for testing using testify/mock
type MockAccessStore struct {
	mock.Mock
}

func NewMockAccessStore() *MockAccessStore {
	return &MockAccessStore{}
}

func (m *MockAccessStore) Grant(loanID, userID int64) error {
	args := m.Called(loanID, userID)
	return args.Error(0)
}

func (m *MockAccessStore) HasAccess(loanID, userID int64) (bool, error) {
	args := m.Called(loanID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessStore) ListVisibleLoans(userID int64) ([]model.Loan, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Loan), args.Error(1)
}
