package domain

import "time"

// User is the domain model for registered accounts. There is a single
// account kind; elevated ticket permissions hang off the admin flag.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
