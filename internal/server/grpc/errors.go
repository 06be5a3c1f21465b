package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/guardianos/guardian-sync/internal/common"
)

// statusFromError maps service errors onto gRPC status codes. Anything not
// in the taxonomy becomes Internal with a generic message so internals do
// not leak to clients.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())

	case errors.Is(err, common.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())

	case errors.Is(err, common.ErrAccountNotFound),
		errors.Is(err, common.ErrDeviceNotFound),
		errors.Is(err, common.ErrFamilyNotFound),
		errors.Is(err, common.ErrChildNotFound),
		errors.Is(err, common.ErrFileNotFound),
		errors.Is(err, common.ErrTokenNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, common.ErrAccountAlreadyExists),
		errors.Is(err, common.ErrDeviceAlreadyExists),
		errors.Is(err, common.ErrAlreadyMember):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrFileTooLarge):
		return status.Error(codes.InvalidArgument, err.Error())

	default:
		return status.Error(codes.Internal, "internal error")
	}
}
