// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is a human parent/owner. AccountHash is the opaque UUID exposed
// outside the server; the internal numeric id never leaves the database.
type Account struct {
	ID            int64
	AccountHash   string
	Email         string
	PasswordHash  string
	DisplayName   string
	EmailVerified bool
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Account status values.
const (
	AccountStatusActive    = "active"
	AccountStatusSuspended = "suspended"
)
