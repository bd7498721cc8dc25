package model

import "fmt"

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	StatusActive   LoanStatus = "active"
	StatusInactive LoanStatus = "inactive"
)

// ParseLoanStatus validates a raw status string.
func ParseLoanStatus(raw string) (LoanStatus, error) {
	switch LoanStatus(raw) {
	case StatusActive, StatusInactive:
		return LoanStatus(raw), nil
	}
	return "", &ValidationError{
		Field:  "status",
		Reason: "loan status must be either 'active' or 'inactive'",
	}
}

// Loan represents a fixed-rate, fixed-term loan. Amount, APR and term are
// the amortization inputs; the schedule itself is never persisted.
type Loan struct {
	ID      int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Amount  float64    `gorm:"column:amount;not null" json:"amount"`
	APR     float64    `gorm:"column:apr;not null" json:"apr"`
	Term    int        `gorm:"column:term_months;not null" json:"term"`
	Status  LoanStatus `gorm:"column:status;not null" json:"status"`
	OwnerID int64      `gorm:"column:owner_id;not null" json:"owner_id"`
}

func (Loan) TableName() string {
	return "loans"
}

// LoanParams is a validated set of loan fields. Construct it with
// NewLoanParams; holders of a LoanParams may assume every invariant
// (positive amount, positive APR, positive integer term, recognized status)
// already holds.
type LoanParams struct {
	Amount  float64
	APR     float64
	Term    int
	Status  LoanStatus
	OwnerID int64
}

// NewLoanParams validates raw loan fields. APR is a fraction (0.1 = 10%).
func NewLoanParams(amount, apr float64, term int, status string, ownerID int64) (LoanParams, error) {
	if amount <= 0 {
		return LoanParams{}, &ValidationError{Field: "amount", Reason: "loan amount must be greater than zero"}
	}
	if apr <= 0 {
		return LoanParams{}, &ValidationError{Field: "apr", Reason: "loan apr must be greater than zero"}
	}
	if term <= 0 {
		return LoanParams{}, &ValidationError{Field: "term", Reason: "loan term must be greater than zero"}
	}
	parsedStatus, err := ParseLoanStatus(status)
	if err != nil {
		return LoanParams{}, err
	}
	return LoanParams{
		Amount:  amount,
		APR:     apr,
		Term:    term,
		Status:  parsedStatus,
		OwnerID: ownerID,
	}, nil
}

// Loan materializes a new, unpersisted Loan from the validated params.
func (p LoanParams) Loan() *Loan {
	return &Loan{
		Amount:  p.Amount,
		APR:     p.APR,
		Term:    p.Term,
		Status:  p.Status,
		OwnerID: p.OwnerID,
	}
}

// ValidationError reports a malformed or out-of-range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) String() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}
