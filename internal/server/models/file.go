package models

import "time"

// FileRecord is metadata for one stored blob. StoragePath is the
// object-store key ({account_id}/{file_id}/{filename}) and is the canonical
// reference to the blob.
type FileRecord struct {
	ID          string
	AccountID   string
	Filename    string
	FileType    string
	ContentType string
	Size        int64
	Checksum    string
	StoragePath string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
