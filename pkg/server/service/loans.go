package service

import (
	"fmt"

	"loanledger/pkg/amortization"
	"loanledger/pkg/model"
	"loanledger/pkg/server/store"
)

// LoanService orchestrates loan operations: validation has already happened
// at the model boundary, so this layer handles existence checks,
// authorization, persistence, and delegation to the amortization engine.
//
// Every loan operation checks existence before access, so a missing loan is
// always reported as not-found rather than as a permission failure.
type LoanService struct {
	users  store.UsersStore
	loans  store.LoansStore
	access store.AccessStore
}

// NewLoanService creates a new LoanService
func NewLoanService(users store.UsersStore, loans store.LoansStore, access store.AccessStore) *LoanService {
	return &LoanService{users: users, loans: loans, access: access}
}

// CreateLoan persists a new loan and grants its owner read access. The owner
// must exist; if the lookup fails, no loan is created. The owner grant is
// written before the loan is reported created, so the owner can always see
// a loan the API has acknowledged.
func (s *LoanService) CreateLoan(params model.LoanParams) (*model.Loan, error) {
	owner, err := s.users.FetchUser(params.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, userNotFound(params.OwnerID)
	}

	loan := params.Loan()
	if err := s.loans.CreateLoan(loan); err != nil {
		return nil, err
	}
	if err := s.access.Grant(loan.ID, loan.OwnerID); err != nil {
		return nil, err
	}
	return loan, nil
}

// GetLoan returns a loan the user has read access to.
func (s *LoanService) GetLoan(loanID, userID int64) (*model.Loan, error) {
	return s.authorizeRead(loanID, userID)
}

// UpdateLoan overwrites a loan's fields. Only the loan's owner may update;
// shared access is read-only.
func (s *LoanService) UpdateLoan(loanID int64, params model.LoanParams, userID int64) (*model.Loan, error) {
	loan, err := s.loans.FetchLoan(loanID)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, loanNotFound(loanID)
	}
	if loan.OwnerID != userID {
		return nil, &PermissionError{
			Reason: fmt.Sprintf("user %d is not the owner of loan %d", userID, loanID),
		}
	}

	loan.Amount = params.Amount
	loan.APR = params.APR
	loan.Term = params.Term
	loan.Status = params.Status
	loan.OwnerID = params.OwnerID

	if err := s.loans.UpdateLoan(loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// ShareLoan grants the target user read access to the loan. The supplied
// ownerID must match the loan's stored owner. Sharing twice is a no-op.
func (s *LoanService) ShareLoan(loanID, ownerID, targetUserID int64) error {
	loan, err := s.loans.FetchLoan(loanID)
	if err != nil {
		return err
	}
	if loan == nil {
		return loanNotFound(loanID)
	}

	target, err := s.users.FetchUser(targetUserID)
	if err != nil {
		return err
	}
	if target == nil {
		return userNotFound(targetUserID)
	}

	if loan.OwnerID != ownerID {
		return &PermissionError{
			Reason: fmt.Sprintf("user %d is not the owner of loan %d", ownerID, loanID),
		}
	}

	return s.access.Grant(loanID, targetUserID)
}

// GetSchedule computes the full amortization schedule for a loan the user
// may read.
func (s *LoanService) GetSchedule(loanID, userID int64) ([]amortization.ScheduleRow, error) {
	loan, err := s.authorizeRead(loanID, userID)
	if err != nil {
		return nil, err
	}
	return amortization.BuildSchedule(loan.APR, loan.Amount, loan.Term), nil
}

// GetSummary reports the loan position after the given number of payments
// for a loan the user may read. A month outside [0, term] surfaces as the
// engine's range error.
func (s *LoanService) GetSummary(loanID int64, month int, userID int64) (amortization.Summary, error) {
	loan, err := s.authorizeRead(loanID, userID)
	if err != nil {
		return amortization.Summary{}, err
	}
	return amortization.Summarize(loan.APR, loan.Amount, loan.Term, month)
}

// ListLoansForOwner returns the loans a user owns.
func (s *LoanService) ListLoansForOwner(ownerID int64) ([]model.Loan, error) {
	return s.loans.ListLoansByOwner(ownerID)
}

// ListVisibleLoans returns every loan the user can read, owned and shared.
func (s *LoanService) ListVisibleLoans(userID int64) ([]model.Loan, error) {
	user, err := s.users.FetchUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, userNotFound(userID)
	}
	return s.access.ListVisibleLoans(userID)
}

func (s *LoanService) authorizeRead(loanID, userID int64) (*model.Loan, error) {
	loan, err := s.loans.FetchLoan(loanID)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, loanNotFound(loanID)
	}

	has, err := s.access.HasAccess(loanID, userID)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, &PermissionError{
			Reason: fmt.Sprintf("user %d may not view loan %d", userID, loanID),
		}
	}
	return loan, nil
}
