package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/guardianos/guardian-sync/internal/proto"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.auth.Register(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Registered", "account", result.AccountHash)
	return &pb.RegisterResponse{
		AccountId:    result.AccountHash,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		ExpiresAt:    result.Tokens.ExpiresAt.Unix(),
	}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	result, err := s.auth.Login(ctx, req.Email, req.Password, req.DeviceId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.LoginResponse{
		AccountId:    result.AccountHash,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		ExpiresAt:    result.Tokens.ExpiresAt.Unix(),
		DisplayName:  result.DisplayName,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	pair, err := s.auth.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt.Unix(),
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	if err := s.auth.Logout(ctx, req.RefreshToken, req.AllDevices); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.LogoutResponse{Success: true}, nil
}

func (s *GRPCServer) RegisterDevice(ctx context.Context, req *pb.RegisterDeviceRequest) (*pb.RegisterDeviceResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	creds, err := s.auth.RegisterDevice(ctx, accountID, req.DeviceName, req.DeviceType, req.OsVersion, req.HardwareId)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Device registered", "device", creds.DeviceID)
	return &pb.RegisterDeviceResponse{
		DeviceId:       creds.DeviceID,
		DeviceToken:    creds.DeviceToken,
		TokenExpiresAt: creds.ExpiresAt.Unix(),
	}, nil
}

func (s *GRPCServer) VerifyDevice(ctx context.Context, req *pb.VerifyDeviceRequest) (*pb.VerifyDeviceResponse, error) {

	accountID, deviceID, err := s.auth.VerifyDevice(ctx, req.DeviceToken)
	if err != nil {
		// invalid credentials are a negative answer, not an error
		return &pb.VerifyDeviceResponse{Valid: false}, nil
	}

	return &pb.VerifyDeviceResponse{Valid: true, DeviceId: deviceID, AccountId: accountID}, nil
}

func (s *GRPCServer) ListDevices(ctx context.Context, req *pb.ListDevicesRequest) (*pb.ListDevicesResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	devices, err := s.auth.ListDevices(ctx, accountID)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.ListDevicesResponse{}
	current := deviceFromContext(ctx)
	for _, d := range devices {
		resp.Devices = append(resp.Devices, &pb.Device{
			DeviceId:   d.ID,
			DeviceName: d.Name,
			DeviceType: d.DeviceType,
			OsVersion:  d.OSVersion,
			LastSeen:   unixOrZero(d.LastSeenAt),
			IsCurrent:  current != "" && d.ID == current,
			CreatedAt:  unixOrZero(d.CreatedAt),
		})
	}
	return resp, nil
}

func (s *GRPCServer) RevokeDevice(ctx context.Context, req *pb.RevokeDeviceRequest) (*pb.RevokeDeviceResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.auth.RevokeDevice(ctx, accountID, req.DeviceId); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.RevokeDeviceResponse{Success: true}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.auth.ChangePassword(ctx, accountID, req.CurrentPassword, req.NewPassword); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.ChangePasswordResponse{Success: true}, nil
}

// RequestPasswordReset acknowledges the request without revealing whether the
// email exists. Reset delivery is not implemented; the response is the same
// either way.
func (s *GRPCServer) RequestPasswordReset(ctx context.Context, req *pb.RequestPasswordResetRequest) (*pb.RequestPasswordResetResponse, error) {
	return &pb.RequestPasswordResetResponse{
		Success: true,
		Message: "If the email exists, a reset link has been sent",
	}, nil
}

// ResetPassword fails until reset tokens are issued.
func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.ResetPasswordResponse, error) {
	return nil, status.Error(codes.Unimplemented, "password reset is not available")
}
