package model

// LoanAccess is a read grant: the user may view the loan. The loan's owner
// also receives a grant row at creation time, so owned and shared loans are
// listed through the same relation. At most one row exists per
// (loan, user) pair.
type LoanAccess struct {
	LoanID int64 `gorm:"column:loan_id;primaryKey"`
	UserID int64 `gorm:"column:user_id;primaryKey"`
}

func (LoanAccess) TableName() string {
	return "loan_access"
}
