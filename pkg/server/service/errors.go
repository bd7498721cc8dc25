package service

import "fmt"

// NotFoundError reports that a referenced user or loan does not exist.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// PermissionError reports that the claimed identity lacks the required
// relationship to the loan: not the owner for a mutation, or no grant for a
// read. It is deliberately distinct from NotFoundError; the API reveals
// that the loan exists.
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string {
	return e.Reason
}

func loanNotFound(id int64) *NotFoundError {
	return &NotFoundError{Kind: "loan", ID: id}
}

func userNotFound(id int64) *NotFoundError {
	return &NotFoundError{Kind: "user", ID: id}
}
