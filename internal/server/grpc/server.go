// Package grpc exposes the sync server's services over gRPC. It translates
// between wire messages and service types, enforces authentication through
// interceptors, and maps service errors onto status codes.
package grpc

import (
	"context"
	"io"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/guardianos/guardian-sync/internal/logging"
	pb "github.com/guardianos/guardian-sync/internal/proto"
	"github.com/guardianos/guardian-sync/internal/server/config"
	"github.com/guardianos/guardian-sync/internal/server/models"
	"github.com/guardianos/guardian-sync/internal/server/services"
)

// The gateway depends on the services through narrow interfaces so that
// handlers can be tested with fakes.
type authSvc interface {
	Register(ctx context.Context, email, password, displayName string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password, deviceID string) (*services.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string, allDevices bool) error
	RegisterDevice(ctx context.Context, accountHash, name, deviceType, osVersion, hardwareID string) (*services.DeviceCredentials, error)
	VerifyDevice(ctx context.Context, deviceToken string) (accountHash, deviceID string, err error)
	ListDevices(ctx context.Context, accountHash string) ([]*models.Device, error)
	RevokeDevice(ctx context.Context, accountHash, deviceID string) error
	ChangePassword(ctx context.Context, accountHash, current, newPassword string) error
	VerifyAccessToken(tokenString string) (accountHash, deviceID string, err error)
	TouchDevice(ctx context.Context, deviceID string) error
}

type syncSvc interface {
	Push(ctx context.Context, accountID, deviceID string, entries []*models.SettingsEntry) (*services.PushResult, error)
	Pull(ctx context.Context, accountID string, since time.Time, categories []string) ([]*models.SettingsEntry, time.Time, error)
	Diff(ctx context.Context, accountID string, since time.Time) ([]*models.SettingsEntry, time.Time, error)
	ResolveConflict(ctx context.Context, accountID, deviceID, key string, useClientValue bool, clientValue []byte, category string) error
	Status(ctx context.Context, accountID string) (*services.SyncStatus, error)
}

type fileSvc interface {
	CheckUploadSize(declared int64) error
	Upload(ctx context.Context, accountID, deviceID string, meta *models.FileRecord, data []byte) (*models.FileRecord, error)
	Download(ctx context.Context, accountID, fileID string) (*models.FileRecord, io.ReadCloser, error)
	GetMetadata(ctx context.Context, accountID, fileID string) (*models.FileRecord, error)
	List(ctx context.Context, accountID, fileType string, limit, offset int32) ([]*models.FileRecord, int64, error)
	Delete(ctx context.Context, accountID, fileID string) error
	PresignURL(ctx context.Context, accountID, operation, fileID, filename, fileType, contentType string, expires time.Duration) (*services.PresignedURL, error)
}

type familySvc interface {
	CreateFamily(ctx context.Context, ownerID, name string) (*models.Family, error)
	GetFamily(ctx context.Context, accountID, familyID string) (*services.FamilyView, error)
	InviteMember(ctx context.Context, familyID, inviterID string) (*services.Invitation, error)
	AcceptInvitation(ctx context.Context, accountID, inviteCode string) (*models.Family, error)
	RemoveMember(ctx context.Context, familyID, requesterID, targetID string) error
	AddChild(ctx context.Context, familyID, requesterID, name string, age int32, avatarURL string) (*models.Child, error)
	UpdateChild(ctx context.Context, requesterID, childID, name string, age int32, avatarURL string) (*models.Child, error)
	RemoveChild(ctx context.Context, requesterID, childID string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	pb.UnimplementedSyncServiceServer
	pb.UnimplementedFileServiceServer
	pb.UnimplementedFamilyServiceServer

	address   string
	logger    logging.Logger
	auth      authSvc
	sync      syncSvc
	files     fileSvc
	families  familySvc
	chunkSize int
}

func NewGRPCServer(l logging.Logger, cfg *config.Config,
	as *services.AuthService, ss *services.SyncService,
	fs *services.FileService, fams *services.FamilyService) (*GRPCServer, error) {
	return &GRPCServer{
		address:   cfg.EndpointAddrGRPC,
		logger:    l.With("module", "grpc_server"),
		auth:      as,
		sync:      ss,
		files:     fs,
		families:  fams,
		chunkSize: cfg.UploadChunkSize,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)

	// registers services
	pb.RegisterAuthServiceServer(srv, s)
	pb.RegisterSyncServiceServer(srv, s)
	pb.RegisterFileServiceServer(srv, s)
	pb.RegisterFamilyServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
