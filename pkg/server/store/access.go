package store

import "loanledger/pkg/model"

// AccessStore abstracts the loan/user read-grant relation
type AccessStore interface {
	// Grant records that the user may view the loan. Granting an existing
	// pair succeeds without creating a duplicate row.
	Grant(loanID, userID int64) error

	// HasAccess checks whether a grant exists for the pair.
	HasAccess(loanID, userID int64) (bool, error)

	// ListVisibleLoans returns every loan the user holds a grant for,
	// owned and shared alike, ordered by loan ID.
	ListVisibleLoans(userID int64) ([]model.Loan, error)
}
