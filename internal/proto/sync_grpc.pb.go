package pb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	SyncService_PushSettings_FullMethodName    = "/guardian.sync.v1.SyncService/PushSettings"
	SyncService_PullSettings_FullMethodName    = "/guardian.sync.v1.SyncService/PullSettings"
	SyncService_GetSettingsDiff_FullMethodName = "/guardian.sync.v1.SyncService/GetSettingsDiff"
	SyncService_StreamChanges_FullMethodName   = "/guardian.sync.v1.SyncService/StreamChanges"
	SyncService_ResolveConflict_FullMethodName = "/guardian.sync.v1.SyncService/ResolveConflict"
	SyncService_GetSyncStatus_FullMethodName   = "/guardian.sync.v1.SyncService/GetSyncStatus"
)

// SyncServiceClient is the client API for SyncService.
type SyncServiceClient interface {
	PushSettings(ctx context.Context, in *PushSettingsRequest, opts ...grpc.CallOption) (*PushSettingsResponse, error)
	PullSettings(ctx context.Context, in *PullSettingsRequest, opts ...grpc.CallOption) (*PullSettingsResponse, error)
	GetSettingsDiff(ctx context.Context, in *GetSettingsDiffRequest, opts ...grpc.CallOption) (*GetSettingsDiffResponse, error)
	StreamChanges(ctx context.Context, in *StreamChangesRequest, opts ...grpc.CallOption) (SyncService_StreamChangesClient, error)
	ResolveConflict(ctx context.Context, in *ResolveConflictRequest, opts ...grpc.CallOption) (*ResolveConflictResponse, error)
	GetSyncStatus(ctx context.Context, in *GetSyncStatusRequest, opts ...grpc.CallOption) (*GetSyncStatusResponse, error)
}

type syncServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSyncServiceClient(cc grpc.ClientConnInterface) SyncServiceClient {
	return &syncServiceClient{cc}
}

func (c *syncServiceClient) PushSettings(ctx context.Context, in *PushSettingsRequest, opts ...grpc.CallOption) (*PushSettingsResponse, error) {
	out := new(PushSettingsResponse)
	if err := c.cc.Invoke(ctx, SyncService_PushSettings_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncServiceClient) PullSettings(ctx context.Context, in *PullSettingsRequest, opts ...grpc.CallOption) (*PullSettingsResponse, error) {
	out := new(PullSettingsResponse)
	if err := c.cc.Invoke(ctx, SyncService_PullSettings_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncServiceClient) GetSettingsDiff(ctx context.Context, in *GetSettingsDiffRequest, opts ...grpc.CallOption) (*GetSettingsDiffResponse, error) {
	out := new(GetSettingsDiffResponse)
	if err := c.cc.Invoke(ctx, SyncService_GetSettingsDiff_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncServiceClient) StreamChanges(ctx context.Context, in *StreamChangesRequest, opts ...grpc.CallOption) (SyncService_StreamChangesClient, error) {
	stream, err := c.cc.NewStream(ctx, &SyncService_ServiceDesc.Streams[0], SyncService_StreamChanges_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &syncServiceStreamChangesClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type SyncService_StreamChangesClient interface {
	Recv() (*SettingsChange, error)
	grpc.ClientStream
}

type syncServiceStreamChangesClient struct {
	grpc.ClientStream
}

func (x *syncServiceStreamChangesClient) Recv() (*SettingsChange, error) {
	m := new(SettingsChange)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *syncServiceClient) ResolveConflict(ctx context.Context, in *ResolveConflictRequest, opts ...grpc.CallOption) (*ResolveConflictResponse, error) {
	out := new(ResolveConflictResponse)
	if err := c.cc.Invoke(ctx, SyncService_ResolveConflict_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncServiceClient) GetSyncStatus(ctx context.Context, in *GetSyncStatusRequest, opts ...grpc.CallOption) (*GetSyncStatusResponse, error) {
	out := new(GetSyncStatusResponse)
	if err := c.cc.Invoke(ctx, SyncService_GetSyncStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncServiceServer is the server API for SyncService. Implementations
// should embed UnimplementedSyncServiceServer for forward compatibility.
type SyncServiceServer interface {
	PushSettings(context.Context, *PushSettingsRequest) (*PushSettingsResponse, error)
	PullSettings(context.Context, *PullSettingsRequest) (*PullSettingsResponse, error)
	GetSettingsDiff(context.Context, *GetSettingsDiffRequest) (*GetSettingsDiffResponse, error)
	StreamChanges(*StreamChangesRequest, SyncService_StreamChangesServer) error
	ResolveConflict(context.Context, *ResolveConflictRequest) (*ResolveConflictResponse, error)
	GetSyncStatus(context.Context, *GetSyncStatusRequest) (*GetSyncStatusResponse, error)
}

// UnimplementedSyncServiceServer provides Unimplemented fallbacks.
type UnimplementedSyncServiceServer struct{}

func (UnimplementedSyncServiceServer) PushSettings(context.Context, *PushSettingsRequest) (*PushSettingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PushSettings not implemented")
}
func (UnimplementedSyncServiceServer) PullSettings(context.Context, *PullSettingsRequest) (*PullSettingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PullSettings not implemented")
}
func (UnimplementedSyncServiceServer) GetSettingsDiff(context.Context, *GetSettingsDiffRequest) (*GetSettingsDiffResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSettingsDiff not implemented")
}
func (UnimplementedSyncServiceServer) StreamChanges(*StreamChangesRequest, SyncService_StreamChangesServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamChanges not implemented")
}
func (UnimplementedSyncServiceServer) ResolveConflict(context.Context, *ResolveConflictRequest) (*ResolveConflictResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveConflict not implemented")
}
func (UnimplementedSyncServiceServer) GetSyncStatus(context.Context, *GetSyncStatusRequest) (*GetSyncStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSyncStatus not implemented")
}

func RegisterSyncServiceServer(s grpc.ServiceRegistrar, srv SyncServiceServer) {
	s.RegisterService(&SyncService_ServiceDesc, srv)
}

func _SyncService_PushSettings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PushSettingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).PushSettings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SyncService_PushSettings_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).PushSettings(ctx, req.(*PushSettingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncService_PullSettings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PullSettingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).PullSettings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SyncService_PullSettings_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).PullSettings(ctx, req.(*PullSettingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncService_GetSettingsDiff_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSettingsDiffRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).GetSettingsDiff(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SyncService_GetSettingsDiff_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).GetSettingsDiff(ctx, req.(*GetSettingsDiffRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncService_StreamChanges_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StreamChangesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(SyncServiceServer).StreamChanges(m, &syncServiceStreamChangesServer{ServerStream: stream})
}

type SyncService_StreamChangesServer interface {
	Send(*SettingsChange) error
	grpc.ServerStream
}

type syncServiceStreamChangesServer struct {
	grpc.ServerStream
}

func (x *syncServiceStreamChangesServer) Send(m *SettingsChange) error {
	return x.ServerStream.SendMsg(m)
}

func _SyncService_ResolveConflict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveConflictRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).ResolveConflict(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SyncService_ResolveConflict_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).ResolveConflict(ctx, req.(*ResolveConflictRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncService_GetSyncStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSyncStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).GetSyncStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SyncService_GetSyncStatus_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).GetSyncStatus(ctx, req.(*GetSyncStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var SyncService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "guardian.sync.v1.SyncService",
	HandlerType: (*SyncServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PushSettings", Handler: _SyncService_PushSettings_Handler},
		{MethodName: "PullSettings", Handler: _SyncService_PullSettings_Handler},
		{MethodName: "GetSettingsDiff", Handler: _SyncService_GetSettingsDiff_Handler},
		{MethodName: "ResolveConflict", Handler: _SyncService_ResolveConflict_Handler},
		{MethodName: "GetSyncStatus", Handler: _SyncService_GetSyncStatus_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamChanges",
			Handler:       _SyncService_StreamChanges_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "proto/sync.proto",
}
