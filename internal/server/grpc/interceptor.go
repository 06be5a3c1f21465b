package grpc

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/guardianos/guardian-sync/internal/common"
	pb "github.com/guardianos/guardian-sync/internal/proto"
)

type ctxKey string

const (
	accountIDKey ctxKey = "accountID"
	deviceIDKey  ctxKey = "deviceID"
)

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	pb.AuthService_Register_FullMethodName:             true,
	pb.AuthService_Login_FullMethodName:                true,
	pb.AuthService_RefreshToken_FullMethodName:         true,
	pb.AuthService_Logout_FullMethodName:               true,
	pb.AuthService_VerifyDevice_FullMethodName:         true,
	pb.AuthService_RequestPasswordReset_FullMethodName: true,
	pb.AuthService_ResetPassword_FullMethodName:        true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	ctx, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if publicMethods[info.FullMethod] {
		return handler(srv, ss)
	}

	ctx, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})
}

// authenticate extracts the bearer access token from metadata, verifies it
// and stores the account and device ids in the context.
func (s *GRPCServer) authenticate(ctx context.Context) (context.Context, error) {
	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AuthorizationHeaderName)
		if len(values) > 0 {
			token = strings.TrimPrefix(values[0], common.BearerPrefix)
		}
	}
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	accountID, deviceID, err := s.auth.VerifyAccessToken(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, accountIDKey, accountID)
	ctx = context.WithValue(ctx, deviceIDKey, deviceID)

	// any authenticated call from a device counts as being seen; a failed
	// bump must not fail the request
	if deviceID != "" {
		if err := s.auth.TouchDevice(ctx, deviceID); err != nil {
			s.logger.Warn(ctx, "Failed to update device last_seen", "device", deviceID, "error", err.Error())
		}
	}
	return ctx, nil
}

// wrappedStream overrides the stream's context with the authenticated one.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context { return w.ctx }

// accountFromContext returns the authenticated account id, failing the call
// when the interceptor did not run.
func accountFromContext(ctx context.Context) (string, error) {
	accountID, ok := ctx.Value(accountIDKey).(string)
	if !ok || accountID == "" {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return accountID, nil
}

func deviceFromContext(ctx context.Context) string {
	deviceID, _ := ctx.Value(deviceIDKey).(string)
	return deviceID
}
