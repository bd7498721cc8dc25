package gorm

import (
	"errors"

	"gorm.io/gorm"

	"loanledger/pkg/model"
	"loanledger/pkg/server/store"
)

// Ensure LoansStore implements store.LoansStore
var _ store.LoansStore = (*LoansStore)(nil)

// LoansStore implements store.LoansStore using GORM
type LoansStore struct {
	db *gorm.DB
}

// NewLoansStore creates a new LoansStore
func NewLoansStore(db *gorm.DB) *LoansStore {
	return &LoansStore{db: db}
}

// CreateLoan persists a new loan, filling in its assigned ID.
func (s *LoansStore) CreateLoan(loan *model.Loan) error {
	return s.db.Create(loan).Error
}

// FetchLoan retrieves a loan by ID. Returns nil when no such loan exists.
func (s *LoansStore) FetchLoan(id int64) (*model.Loan, error) {
	var loan model.Loan
	err := s.db.First(&loan, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// UpdateLoan overwrites the stored fields of an existing loan.
func (s *LoansStore) UpdateLoan(loan *model.Loan) error {
	return s.db.Model(&model.Loan{}).
		Where("id = ?", loan.ID).
		Updates(map[string]interface{}{
			"amount":      loan.Amount,
			"apr":         loan.APR,
			"term_months": loan.Term,
			"status":      loan.Status,
			"owner_id":    loan.OwnerID,
		}).Error
}

// ListLoansByOwner returns all loans owned by a user, ordered by ID.
func (s *LoansStore) ListLoansByOwner(ownerID int64) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	err := s.db.Where("owner_id = ?", ownerID).Order("id").Find(&loans).Error
	return loans, err
}
