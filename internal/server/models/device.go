package models

import "time"

// Device is an activated client binding a hardware identity to an account.
// HardwareID is unique per account, which makes device registration
// idempotent on re-activation.
type Device struct {
	ID         string
	AccountID  string
	Name       string
	DeviceType string
	OSVersion  string
	HardwareID string
	LastSeenAt time.Time
	CreatedAt  time.Time
	Status     string
}

// Device status values.
const (
	DeviceStatusActive  = "active"
	DeviceStatusRevoked = "revoked"
)
