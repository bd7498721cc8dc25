package store

import "loanledger/pkg/model"

// LoansStore abstracts loan storage operations
type LoansStore interface {
	// CreateLoan persists a new loan, filling in its assigned ID.
	CreateLoan(loan *model.Loan) error

	// FetchLoan retrieves a loan by ID. Returns nil when no such loan exists.
	FetchLoan(id int64) (*model.Loan, error)

	// UpdateLoan overwrites the stored fields of an existing loan.
	UpdateLoan(loan *model.Loan) error

	// ListLoansByOwner returns all loans owned by a user, ordered by ID.
	ListLoansByOwner(ownerID int64) ([]model.Loan, error)
}
