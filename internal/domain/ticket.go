package domain

import "time"

// Ticket is a flat support request owned by a single user. Category is
// optional and may be empty. CreatedAt is fixed at creation; UpdatedAt is
// refreshed on every mutation.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsResolved  bool
	UserID      string
}
