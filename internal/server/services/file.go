package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/server/config"
	"github.com/guardianos/guardian-sync/internal/server/models"
	"github.com/guardianos/guardian-sync/internal/server/objectstore"
	"github.com/guardianos/guardian-sync/internal/server/repositories/repomanager"
)

// Presigned URL operations.
const (
	URLOperationUpload   = "upload"
	URLOperationDownload = "download"
)

// PresignedURL is a time-bounded direct object-store URL plus the file
// record it refers to.
type PresignedURL struct {
	URL       string
	ExpiresAt time.Time
	File      *models.FileRecord
}

// FileService stores binary blobs in the object store and their metadata in
// the database. Access is owner-only: every read and delete checks that the
// record belongs to the caller.
type FileService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	store          objectstore.Store
	maxFileSize    int64
	verifyChecksum bool
	presignExpiry  time.Duration
}

// NewFileService constructs a FileService over the given object store.
func NewFileService(db *sql.DB, m repomanager.RepositoryManager, store objectstore.Store, cfg *config.Config) *FileService {
	return &FileService{
		db:             db,
		repomanager:    m,
		store:          store,
		maxFileSize:    cfg.MaxFileSizeBytes,
		verifyChecksum: cfg.VerifyUploadChecksum,
		presignExpiry:  cfg.PresignDefaultExpiry,
	}
}

// CheckUploadSize rejects a declared size over the configured maximum.
// Called by the gateway before it starts consuming chunks.
func (s *FileService) CheckUploadSize(declared int64) error {
	if declared > s.maxFileSize {
		return fmt.Errorf("%w: declared size %d exceeds %d bytes", common.ErrFileTooLarge, declared, s.maxFileSize)
	}
	return nil
}

// Upload writes data to the object store under {account}/{file}/{name} and
// registers the metadata row. data is the fully accumulated body; nothing is
// written to the store until the whole stream has arrived, so a cancelled
// upload leaves no partial blob. The blob is deleted again if the metadata
// insert fails.
func (s *FileService) Upload(ctx context.Context, accountID, deviceID string, meta *models.FileRecord, data []byte) (*models.FileRecord, error) {
	if meta.Filename == "" || strings.Contains(meta.Filename, "/") {
		return nil, fmt.Errorf("%w: invalid filename", common.ErrInvalidInput)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", common.ErrFileTooLarge, len(data), s.maxFileSize)
	}

	actualChecksum := valueChecksum(data)
	if s.verifyChecksum && meta.Checksum != "" && !strings.EqualFold(meta.Checksum, actualChecksum) {
		return nil, fmt.Errorf("%w: checksum mismatch", common.ErrInvalidInput)
	}

	record := &models.FileRecord{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Filename:    meta.Filename,
		FileType:    meta.FileType,
		ContentType: meta.ContentType,
		Size:        int64(len(data)),
		Checksum:    actualChecksum,
	}
	record.StoragePath = storagePath(accountID, record.ID, record.Filename)

	if err := s.store.Put(ctx, record.StoragePath, record.ContentType, data); err != nil {
		return nil, err
	}
	if err := s.repomanager.Files(s.db).Create(ctx, record); err != nil {
		_ = s.store.Delete(ctx, record.StoragePath)
		return nil, fmt.Errorf("error registering file: %w", err)
	}

	return record, nil
}

// Download returns the record and a stream over its body after the ownership
// check. The caller must close the stream.
func (s *FileService) Download(ctx context.Context, accountID, fileID string) (*models.FileRecord, io.ReadCloser, error) {
	record, err := s.getOwned(ctx, accountID, fileID)
	if err != nil {
		return nil, nil, err
	}
	body, err := s.store.Get(ctx, record.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return record, body, nil
}

// GetMetadata returns the record after the ownership check.
func (s *FileService) GetMetadata(ctx context.Context, accountID, fileID string) (*models.FileRecord, error) {
	return s.getOwned(ctx, accountID, fileID)
}

// List returns one page of the account's files, newest first, plus the total
// match count so callers can page. fileType filters when non-empty; limit
// defaults to 100.
func (s *FileService) List(ctx context.Context, accountID, fileType string, limit, offset int32) ([]*models.FileRecord, int64, error) {
	if limit <= 0 {
		limit = 100
	}
	repo := s.repomanager.Files(s.db)
	page, err := repo.List(ctx, accountID, fileType, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := repo.Count(ctx, accountID, fileType)
	if err != nil {
		return nil, 0, err
	}
	return page, total, nil
}

// Delete removes the blob first and the metadata row second. When the blob
// deletion fails the row stays, so a later retry or sweeper can reconcile.
func (s *FileService) Delete(ctx context.Context, accountID, fileID string) error {
	record, err := s.getOwned(ctx, accountID, fileID)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, record.StoragePath); err != nil {
		return err
	}
	return s.repomanager.Files(s.db).Delete(ctx, record.ID)
}

// PresignURL produces a direct object-store URL. For uploads the metadata
// row is created alongside the URL, so the returned file id is valid before
// the bytes arrive; the stored size and checksum stay zero until then.
func (s *FileService) PresignURL(ctx context.Context, accountID, operation, fileID, filename, fileType, contentType string, expires time.Duration) (*PresignedURL, error) {
	if expires <= 0 {
		expires = s.presignExpiry
	}

	switch operation {
	case URLOperationUpload:
		if filename == "" || strings.Contains(filename, "/") {
			return nil, fmt.Errorf("%w: invalid filename", common.ErrInvalidInput)
		}
		record := &models.FileRecord{
			ID:          uuid.NewString(),
			AccountID:   accountID,
			Filename:    filename,
			FileType:    fileType,
			ContentType: contentType,
		}
		record.StoragePath = storagePath(accountID, record.ID, filename)

		url, err := s.store.PresignPut(ctx, record.StoragePath, contentType, expires)
		if err != nil {
			return nil, err
		}
		if err := s.repomanager.Files(s.db).Create(ctx, record); err != nil {
			return nil, fmt.Errorf("error registering file: %w", err)
		}
		return &PresignedURL{URL: url, ExpiresAt: time.Now().Add(expires), File: record}, nil

	case URLOperationDownload:
		record, err := s.getOwned(ctx, accountID, fileID)
		if err != nil {
			return nil, err
		}
		url, err := s.store.PresignGet(ctx, record.StoragePath, expires)
		if err != nil {
			return nil, err
		}
		return &PresignedURL{URL: url, ExpiresAt: time.Now().Add(expires), File: record}, nil

	default:
		return nil, fmt.Errorf("%w: unknown url operation %q", common.ErrInvalidInput, operation)
	}
}

// StorageUsed returns total bytes across the account's live records.
func (s *FileService) StorageUsed(ctx context.Context, accountID string) (int64, error) {
	return s.repomanager.Files(s.db).SumSize(ctx, accountID)
}

func (s *FileService) getOwned(ctx context.Context, accountID, fileID string) (*models.FileRecord, error) {
	record, err := s.repomanager.Files(s.db).GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if record.AccountID != accountID {
		return nil, common.ErrPermissionDenied
	}
	return record, nil
}

func storagePath(accountID, fileID, filename string) string {
	return path.Join(accountID, fileID, filename)
}
