package users

import "time"

// User represents a directory record. PasswordHash never leaves the service
// boundary; handlers map to payload structs without it.
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

// Changes carries the profile fields supplied to an update. Empty fields
// are left untouched; Password is already hashed by the service.
type Changes struct {
	FullName     string
	Email        string
	Phone        string
	PasswordHash string
}

// Empty reports whether no field was supplied.
func (c Changes) Empty() bool {
	return c.FullName == "" && c.Email == "" && c.Phone == "" && c.PasswordHash == ""
}
