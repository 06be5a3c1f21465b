package models

import "time"

// AuthToken is a minted refresh or device credential stored for revocation
// lookup. TokenHash is the SHA-256 of the secret; the plaintext is never
// persisted. Access tokens are stateless and have no row here.
type AuthToken struct {
	ID        string
	AccountID string
	DeviceID  string // empty when not bound to a device
	TokenHash string
	TokenType string
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}
