package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoanParams(t *testing.T) {
	params, err := NewLoanParams(1000, 0.1, 12, "active", 7)
	require.NoError(t, err)
	assert.Equal(t, LoanParams{
		Amount:  1000,
		APR:     0.1,
		Term:    12,
		Status:  StatusActive,
		OwnerID: 7,
	}, params)

	loan := params.Loan()
	assert.Zero(t, loan.ID)
	assert.Equal(t, int64(7), loan.OwnerID)
	assert.Equal(t, StatusActive, loan.Status)
}

func TestNewLoanParamsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		apr    float64
		term   int
		status string
		field  string
		reason string
	}{
		{"negative amount", -1, 0.1, 12, "active", "amount", "loan amount must be greater than zero"},
		{"zero amount", 0, 0.1, 12, "active", "amount", "loan amount must be greater than zero"},
		{"zero apr", 1000, 0, 12, "active", "apr", "loan apr must be greater than zero"},
		{"negative apr", 1000, -0.05, 12, "active", "apr", "loan apr must be greater than zero"},
		{"zero term", 1000, 0.1, 0, "active", "term", "loan term must be greater than zero"},
		{"negative term", 1000, 0.1, -12, "active", "term", "loan term must be greater than zero"},
		{"unknown status", 1000, 0.1, 12, "pending", "status", "loan status must be either 'active' or 'inactive'"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoanParams(tc.amount, tc.apr, tc.term, tc.status, 1)
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, tc.reason, vErr.Error())
		})
	}
}

func TestParseLoanStatus(t *testing.T) {
	for _, valid := range []string{"active", "inactive"} {
		status, err := ParseLoanStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, LoanStatus(valid), status)
	}

	_, err := ParseLoanStatus("ACTIVE")
	assert.Error(t, err)
}

func TestNewUsername(t *testing.T) {
	name, err := NewUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, Username("alice"), name)

	_, err = NewUsername("al")
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "username", vErr.Field)
}
