package amortization

import (
	"fmt"
	"math"
)

// ScheduleRow is one month of a fixed-rate, fixed-payment amortization
// schedule. Months are 1-indexed.
type ScheduleRow struct {
	Month        int     `json:"month"`
	OpenBalance  float64 `json:"open_balance"`
	Payment      float64 `json:"total_payment"`
	Principal    float64 `json:"principal_payment"`
	Interest     float64 `json:"interest_payment"`
	CloseBalance float64 `json:"close_balance"`
}

// Summary describes the state of a loan after a given number of monthly
// payments have been made.
type Summary struct {
	CurrentPrincipal       float64 `json:"current_principal"`
	AggregatePrincipalPaid float64 `json:"aggregate_principal_paid"`
	AggregateInterestPaid  float64 `json:"aggregate_interest_paid"`
}

// OutOfRangeError reports a summary request for a month outside [0, term].
type OutOfRangeError struct {
	Month int
	Term  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("month %d is out of range [0, %d]", e.Month, e.Term)
}

// MonthlyPayment returns the constant payment that retires amount over term
// equal monthly payments at the given annual rate (apr as a fraction,
// 0.1 = 10%). Inputs are assumed pre-validated: amount > 0, apr > 0,
// term >= 1.
func MonthlyPayment(apr, amount float64, term int) float64 {
	r := apr / 12
	compound := math.Pow(1+r, float64(term))
	return amount * (r * compound) / (compound - 1)
}

// BuildSchedule computes the full amortization schedule for a loan. The
// result has exactly term rows, and the closing balance of each row is the
// opening balance of the next. Arithmetic is plain float64 with no rounding;
// the schedule is recomputed on every call.
func BuildSchedule(apr, amount float64, term int) []ScheduleRow {
	r := apr / 12
	payment := MonthlyPayment(apr, amount, term)

	rows := make([]ScheduleRow, 0, term)
	balance := amount
	for month := 1; month <= term; month++ {
		interest := balance * r
		principal := payment - interest
		open := balance
		balance -= principal
		rows = append(rows, ScheduleRow{
			Month:        month,
			OpenBalance:  open,
			Payment:      payment,
			Principal:    principal,
			Interest:     interest,
			CloseBalance: balance,
		})
	}
	return rows
}

// Summarize reports the loan position after month payments. Month 0 is the
// position before any payment. The summary is derived from the same schedule
// BuildSchedule produces, so single-month figures always agree with the full
// schedule.
func Summarize(apr, amount float64, term, month int) (Summary, error) {
	if month < 0 || month > term {
		return Summary{}, &OutOfRangeError{Month: month, Term: term}
	}
	if month == 0 {
		return Summary{CurrentPrincipal: amount}, nil
	}

	rows := BuildSchedule(apr, amount, term)

	var principalPaid, interestPaid float64
	for _, row := range rows[:month] {
		principalPaid += row.Principal
		interestPaid += row.Interest
	}

	return Summary{
		CurrentPrincipal:       rows[month-1].CloseBalance,
		AggregatePrincipalPaid: principalPaid,
		AggregateInterestPaid:  interestPaid,
	}, nil
}
