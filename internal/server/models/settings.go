package models

import "time"

// SettingsEntry is one keyed sync cell. Value is opaque to the server;
// Checksum is the SHA-256 of Value computed at write time. ModifiedAt is
// monotonic across accepted writes for a given (account, key).
type SettingsEntry struct {
	ID         string
	AccountID  string
	DeviceID   string // last writer, may be empty
	Key        string
	Value      []byte
	Category   string
	Checksum   string
	ModifiedAt time.Time
	CreatedAt  time.Time
}

// SettingsConflict reports a rejected write: the server held a newer value
// for the key than the client's modified_at.
type SettingsConflict struct {
	Key            string
	ServerValue    []byte
	ClientValue    []byte
	ServerModified int64
	ClientModified int64
}
