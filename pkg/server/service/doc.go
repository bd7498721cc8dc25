// Package service implements the loan-ledger business operations on top of
// the store abstractions.
//
// The service layer receives already-validated values (model.LoanParams,
// model.Username) and returns classified outcomes: a result, a
// *NotFoundError, a *PermissionError, or an unclassified store error. It
// knows nothing about HTTP; the endpoints package translates these outcomes
// into status codes.
package service
