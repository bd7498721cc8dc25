package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loanledger/pkg/model"
)

func TestCreateUser(t *testing.T) {
	users := NewMockUsersStore()
	users.On("CreateUser", "alice").Return(&model.User{ID: 1, Username: "alice"}, nil)

	svc := NewUserService(users)
	user, err := svc.CreateUser("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestCreateUserRejectsShortUsername(t *testing.T) {
	users := NewMockUsersStore()

	svc := NewUserService(users)
	_, err := svc.CreateUser("al")

	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	users.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestListUsers(t *testing.T) {
	users := NewMockUsersStore()
	users.On("ListUsers").Return([]model.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}, nil)

	svc := NewUserService(users)
	listed, err := svc.ListUsers()
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
