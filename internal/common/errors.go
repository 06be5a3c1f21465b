// Package common defines shared constants and sentinel errors used across
// the Guardian sync server. Callers should use errors.Is to match these
// values; the gRPC layer maps them onto status codes.
package common

import "errors"

var (
	// Repository-level errors.
	ErrAccountNotFound = errors.New("account not found")
	ErrDeviceNotFound  = errors.New("device not found")
	ErrFamilyNotFound  = errors.New("family not found")
	ErrChildNotFound   = errors.New("child not found")
	ErrFileNotFound    = errors.New("file not found")
	ErrTokenNotFound   = errors.New("token not found")

	// Uniqueness violations.
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrDeviceAlreadyExists  = errors.New("device already registered")
	ErrAlreadyMember        = errors.New("already a family member")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// Authorization.
	ErrPermissionDenied = errors.New("permission denied")

	// Validation.
	ErrInvalidInput = errors.New("invalid input")
	ErrFileTooLarge = errors.New("file too large")

	// Backend failures. Repositories and the object store wrap the
	// underlying error; these are used for errors.Is matching only.
	ErrStorage  = errors.New("storage error")
	ErrInternal = errors.New("internal error")
)
