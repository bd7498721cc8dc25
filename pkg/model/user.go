package model

import "fmt"

// MinUsernameLength is the minimum accepted display-name length.
const MinUsernameLength = 3

// User represents an account holder. Users own loans and may be granted
// read access to loans owned by others.
type User struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;not null" json:"username"`
}

func (User) TableName() string {
	return "users"
}

// Username is a display name that has passed validation.
type Username string

// NewUsername validates a raw display name. It is the single validation
// boundary for user creation; code past this point only sees valid names.
func NewUsername(raw string) (Username, error) {
	if len(raw) < MinUsernameLength {
		return "", &ValidationError{
			Field:  "username",
			Reason: fmt.Sprintf("username must be at least %d characters", MinUsernameLength),
		}
	}
	return Username(raw), nil
}
