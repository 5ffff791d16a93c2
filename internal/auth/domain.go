package auth

import "time"

// User represents a credential record as read for authentication.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	FullName     string
	Email        string
	Phone        string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
