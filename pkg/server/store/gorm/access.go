package gorm

import (
	"gorm.io/gorm"

	"loanledger/pkg/model"
	"loanledger/pkg/server/store"
)

// Ensure AccessStore implements store.AccessStore
var _ store.AccessStore = (*AccessStore)(nil)

// AccessStore implements store.AccessStore using GORM
type AccessStore struct {
	db *gorm.DB
}

// NewAccessStore creates a new AccessStore
func NewAccessStore(db *gorm.DB) *AccessStore {
	return &AccessStore{db: db}
}

// Grant records that the user may view the loan. Check-then-insert: a grant
// that already exists is left alone.
func (s *AccessStore) Grant(loanID, userID int64) error {
	has, err := s.HasAccess(loanID, userID)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	return s.db.Create(&model.LoanAccess{LoanID: loanID, UserID: userID}).Error
}

// HasAccess checks whether a grant exists for the pair.
func (s *AccessStore) HasAccess(loanID, userID int64) (bool, error) {
	var count int64
	err := s.db.Model(&model.LoanAccess{}).
		Where("loan_id = ? AND user_id = ?", loanID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListVisibleLoans returns every loan the user holds a grant for. Owner
// visibility flows through the owner's own grant row; there is no separate
// owner shortcut in the query.
func (s *AccessStore) ListVisibleLoans(userID int64) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	err := s.db.Model(&model.Loan{}).
		Joins("JOIN loan_access ON loan_access.loan_id = loans.id").
		Where("loan_access.user_id = ?", userID).
		Order("loans.id").
		Find(&loans).Error
	return loans, err
}
