package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loanledger/pkg/model"
)

func TestCreateUserEndpoint(t *testing.T) {
	users := NewMockUsersStore()
	users.On("CreateUser", "alice").Return(&model.User{ID: 1, Username: "alice"}, nil)

	srv := NewTestServer(users, NewMockLoansStore(), NewMockAccessStore(), NewMockHealthStore())

	req := httptest.NewRequest("POST", "/users", jsonBody(t, CreateUserRequest{Username: "alice"}))
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "alice", created.Username)
}

func TestCreateUserEndpointRejectsShortUsername(t *testing.T) {
	users := NewMockUsersStore()

	srv := NewTestServer(users, NewMockLoansStore(), NewMockAccessStore(), NewMockHealthStore())

	req := httptest.NewRequest("POST", "/users", jsonBody(t, CreateUserRequest{Username: "al"}))
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username must be at least 3 characters")
	users.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestListUsersEndpoint(t *testing.T) {
	users := NewMockUsersStore()
	users.On("ListUsers").Return([]model.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}, nil)

	srv := NewTestServer(users, NewMockLoansStore(), NewMockAccessStore(), NewMockHealthStore())

	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestListOwnedLoansEndpoint(t *testing.T) {
	loans := NewMockLoansStore()
	loans.On("ListLoansByOwner", int64(1)).Return([]model.Loan{
		{ID: 7, Amount: 1000, APR: 0.1, Term: 12, Status: model.StatusActive, OwnerID: 1},
	}, nil)

	srv := NewTestServer(NewMockUsersStore(), loans, NewMockAccessStore(), NewMockHealthStore())

	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/1/loans", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []model.Loan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, int64(7), listed[0].ID)
}

func TestListVisibleLoansEndpoint(t *testing.T) {
	users := NewMockUsersStore()
	access := NewMockAccessStore()
	users.On("FetchUser", int64(2)).Return(&model.User{ID: 2, Username: "bob"}, nil)
	access.On("ListVisibleLoans", int64(2)).Return([]model.Loan{
		{ID: 7, OwnerID: 1},
		{ID: 9, OwnerID: 2},
	}, nil)

	srv := NewTestServer(users, NewMockLoansStore(), access, NewMockHealthStore())

	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/2/visible-loans", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []model.Loan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestListVisibleLoansEndpointUnknownUser(t *testing.T) {
	users := NewMockUsersStore()
	users.On("FetchUser", int64(99)).Return(nil, nil)

	srv := NewTestServer(users, NewMockLoansStore(), NewMockAccessStore(), NewMockHealthStore())

	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/99/visible-loans", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user 99 not found")
}
