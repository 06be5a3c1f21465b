package pb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	FamilyService_CreateFamily_FullMethodName        = "/guardian.sync.v1.FamilyService/CreateFamily"
	FamilyService_GetFamily_FullMethodName           = "/guardian.sync.v1.FamilyService/GetFamily"
	FamilyService_InviteMember_FullMethodName        = "/guardian.sync.v1.FamilyService/InviteMember"
	FamilyService_AcceptInvitation_FullMethodName    = "/guardian.sync.v1.FamilyService/AcceptInvitation"
	FamilyService_RemoveMember_FullMethodName        = "/guardian.sync.v1.FamilyService/RemoveMember"
	FamilyService_AddChild_FullMethodName            = "/guardian.sync.v1.FamilyService/AddChild"
	FamilyService_UpdateChild_FullMethodName         = "/guardian.sync.v1.FamilyService/UpdateChild"
	FamilyService_RemoveChild_FullMethodName         = "/guardian.sync.v1.FamilyService/RemoveChild"
	FamilyService_LinkDeviceToChild_FullMethodName   = "/guardian.sync.v1.FamilyService/LinkDeviceToChild"
	FamilyService_GetChildDevices_FullMethodName     = "/guardian.sync.v1.FamilyService/GetChildDevices"
	FamilyService_SetScreenTimeRules_FullMethodName  = "/guardian.sync.v1.FamilyService/SetScreenTimeRules"
	FamilyService_GetScreenTimeRules_FullMethodName  = "/guardian.sync.v1.FamilyService/GetScreenTimeRules"
	FamilyService_GetScreenTimeUsage_FullMethodName  = "/guardian.sync.v1.FamilyService/GetScreenTimeUsage"
	FamilyService_SetContentFilters_FullMethodName   = "/guardian.sync.v1.FamilyService/SetContentFilters"
	FamilyService_GetContentFilters_FullMethodName   = "/guardian.sync.v1.FamilyService/GetContentFilters"
	FamilyService_ApproveAppRequest_FullMethodName   = "/guardian.sync.v1.FamilyService/ApproveAppRequest"
)

// FamilyServiceClient is the client API for FamilyService.
type FamilyServiceClient interface {
	CreateFamily(ctx context.Context, in *CreateFamilyRequest, opts ...grpc.CallOption) (*CreateFamilyResponse, error)
	GetFamily(ctx context.Context, in *GetFamilyRequest, opts ...grpc.CallOption) (*Family, error)
	InviteMember(ctx context.Context, in *InviteMemberRequest, opts ...grpc.CallOption) (*InviteMemberResponse, error)
	AcceptInvitation(ctx context.Context, in *AcceptInvitationRequest, opts ...grpc.CallOption) (*AcceptInvitationResponse, error)
	RemoveMember(ctx context.Context, in *RemoveMemberRequest, opts ...grpc.CallOption) (*RemoveMemberResponse, error)
	AddChild(ctx context.Context, in *AddChildRequest, opts ...grpc.CallOption) (*AddChildResponse, error)
	UpdateChild(ctx context.Context, in *UpdateChildRequest, opts ...grpc.CallOption) (*UpdateChildResponse, error)
	RemoveChild(ctx context.Context, in *RemoveChildRequest, opts ...grpc.CallOption) (*RemoveChildResponse, error)
	LinkDeviceToChild(ctx context.Context, in *LinkDeviceToChildRequest, opts ...grpc.CallOption) (*LinkDeviceToChildResponse, error)
	GetChildDevices(ctx context.Context, in *GetChildDevicesRequest, opts ...grpc.CallOption) (*GetChildDevicesResponse, error)
	SetScreenTimeRules(ctx context.Context, in *SetScreenTimeRulesRequest, opts ...grpc.CallOption) (*SetScreenTimeRulesResponse, error)
	GetScreenTimeRules(ctx context.Context, in *GetScreenTimeRulesRequest, opts ...grpc.CallOption) (*ScreenTimeRules, error)
	GetScreenTimeUsage(ctx context.Context, in *GetScreenTimeUsageRequest, opts ...grpc.CallOption) (*GetScreenTimeUsageResponse, error)
	SetContentFilters(ctx context.Context, in *SetContentFiltersRequest, opts ...grpc.CallOption) (*SetContentFiltersResponse, error)
	GetContentFilters(ctx context.Context, in *GetContentFiltersRequest, opts ...grpc.CallOption) (*ContentFilters, error)
	ApproveAppRequest(ctx context.Context, in *ApproveAppRequestRequest, opts ...grpc.CallOption) (*ApproveAppRequestResponse, error)
}

type familyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFamilyServiceClient(cc grpc.ClientConnInterface) FamilyServiceClient {
	return &familyServiceClient{cc}
}

func (c *familyServiceClient) CreateFamily(ctx context.Context, in *CreateFamilyRequest, opts ...grpc.CallOption) (*CreateFamilyResponse, error) {
	out := new(CreateFamilyResponse)
	if err := c.cc.Invoke(ctx, FamilyService_CreateFamily_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) GetFamily(ctx context.Context, in *GetFamilyRequest, opts ...grpc.CallOption) (*Family, error) {
	out := new(Family)
	if err := c.cc.Invoke(ctx, FamilyService_GetFamily_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) InviteMember(ctx context.Context, in *InviteMemberRequest, opts ...grpc.CallOption) (*InviteMemberResponse, error) {
	out := new(InviteMemberResponse)
	if err := c.cc.Invoke(ctx, FamilyService_InviteMember_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) AcceptInvitation(ctx context.Context, in *AcceptInvitationRequest, opts ...grpc.CallOption) (*AcceptInvitationResponse, error) {
	out := new(AcceptInvitationResponse)
	if err := c.cc.Invoke(ctx, FamilyService_AcceptInvitation_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) RemoveMember(ctx context.Context, in *RemoveMemberRequest, opts ...grpc.CallOption) (*RemoveMemberResponse, error) {
	out := new(RemoveMemberResponse)
	if err := c.cc.Invoke(ctx, FamilyService_RemoveMember_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) AddChild(ctx context.Context, in *AddChildRequest, opts ...grpc.CallOption) (*AddChildResponse, error) {
	out := new(AddChildResponse)
	if err := c.cc.Invoke(ctx, FamilyService_AddChild_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) UpdateChild(ctx context.Context, in *UpdateChildRequest, opts ...grpc.CallOption) (*UpdateChildResponse, error) {
	out := new(UpdateChildResponse)
	if err := c.cc.Invoke(ctx, FamilyService_UpdateChild_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) RemoveChild(ctx context.Context, in *RemoveChildRequest, opts ...grpc.CallOption) (*RemoveChildResponse, error) {
	out := new(RemoveChildResponse)
	if err := c.cc.Invoke(ctx, FamilyService_RemoveChild_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) LinkDeviceToChild(ctx context.Context, in *LinkDeviceToChildRequest, opts ...grpc.CallOption) (*LinkDeviceToChildResponse, error) {
	out := new(LinkDeviceToChildResponse)
	if err := c.cc.Invoke(ctx, FamilyService_LinkDeviceToChild_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) GetChildDevices(ctx context.Context, in *GetChildDevicesRequest, opts ...grpc.CallOption) (*GetChildDevicesResponse, error) {
	out := new(GetChildDevicesResponse)
	if err := c.cc.Invoke(ctx, FamilyService_GetChildDevices_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) SetScreenTimeRules(ctx context.Context, in *SetScreenTimeRulesRequest, opts ...grpc.CallOption) (*SetScreenTimeRulesResponse, error) {
	out := new(SetScreenTimeRulesResponse)
	if err := c.cc.Invoke(ctx, FamilyService_SetScreenTimeRules_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) GetScreenTimeRules(ctx context.Context, in *GetScreenTimeRulesRequest, opts ...grpc.CallOption) (*ScreenTimeRules, error) {
	out := new(ScreenTimeRules)
	if err := c.cc.Invoke(ctx, FamilyService_GetScreenTimeRules_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) GetScreenTimeUsage(ctx context.Context, in *GetScreenTimeUsageRequest, opts ...grpc.CallOption) (*GetScreenTimeUsageResponse, error) {
	out := new(GetScreenTimeUsageResponse)
	if err := c.cc.Invoke(ctx, FamilyService_GetScreenTimeUsage_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) SetContentFilters(ctx context.Context, in *SetContentFiltersRequest, opts ...grpc.CallOption) (*SetContentFiltersResponse, error) {
	out := new(SetContentFiltersResponse)
	if err := c.cc.Invoke(ctx, FamilyService_SetContentFilters_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) GetContentFilters(ctx context.Context, in *GetContentFiltersRequest, opts ...grpc.CallOption) (*ContentFilters, error) {
	out := new(ContentFilters)
	if err := c.cc.Invoke(ctx, FamilyService_GetContentFilters_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyServiceClient) ApproveAppRequest(ctx context.Context, in *ApproveAppRequestRequest, opts ...grpc.CallOption) (*ApproveAppRequestResponse, error) {
	out := new(ApproveAppRequestResponse)
	if err := c.cc.Invoke(ctx, FamilyService_ApproveAppRequest_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// FamilyServiceServer is the server API for FamilyService. Implementations
// should embed UnimplementedFamilyServiceServer for forward compatibility.
type FamilyServiceServer interface {
	CreateFamily(context.Context, *CreateFamilyRequest) (*CreateFamilyResponse, error)
	GetFamily(context.Context, *GetFamilyRequest) (*Family, error)
	InviteMember(context.Context, *InviteMemberRequest) (*InviteMemberResponse, error)
	AcceptInvitation(context.Context, *AcceptInvitationRequest) (*AcceptInvitationResponse, error)
	RemoveMember(context.Context, *RemoveMemberRequest) (*RemoveMemberResponse, error)
	AddChild(context.Context, *AddChildRequest) (*AddChildResponse, error)
	UpdateChild(context.Context, *UpdateChildRequest) (*UpdateChildResponse, error)
	RemoveChild(context.Context, *RemoveChildRequest) (*RemoveChildResponse, error)
	LinkDeviceToChild(context.Context, *LinkDeviceToChildRequest) (*LinkDeviceToChildResponse, error)
	GetChildDevices(context.Context, *GetChildDevicesRequest) (*GetChildDevicesResponse, error)
	SetScreenTimeRules(context.Context, *SetScreenTimeRulesRequest) (*SetScreenTimeRulesResponse, error)
	GetScreenTimeRules(context.Context, *GetScreenTimeRulesRequest) (*ScreenTimeRules, error)
	GetScreenTimeUsage(context.Context, *GetScreenTimeUsageRequest) (*GetScreenTimeUsageResponse, error)
	SetContentFilters(context.Context, *SetContentFiltersRequest) (*SetContentFiltersResponse, error)
	GetContentFilters(context.Context, *GetContentFiltersRequest) (*ContentFilters, error)
	ApproveAppRequest(context.Context, *ApproveAppRequestRequest) (*ApproveAppRequestResponse, error)
}

// UnimplementedFamilyServiceServer provides Unimplemented fallbacks.
type UnimplementedFamilyServiceServer struct{}

func (UnimplementedFamilyServiceServer) CreateFamily(context.Context, *CreateFamilyRequest) (*CreateFamilyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateFamily not implemented")
}
func (UnimplementedFamilyServiceServer) GetFamily(context.Context, *GetFamilyRequest) (*Family, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFamily not implemented")
}
func (UnimplementedFamilyServiceServer) InviteMember(context.Context, *InviteMemberRequest) (*InviteMemberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InviteMember not implemented")
}
func (UnimplementedFamilyServiceServer) AcceptInvitation(context.Context, *AcceptInvitationRequest) (*AcceptInvitationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AcceptInvitation not implemented")
}
func (UnimplementedFamilyServiceServer) RemoveMember(context.Context, *RemoveMemberRequest) (*RemoveMemberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveMember not implemented")
}
func (UnimplementedFamilyServiceServer) AddChild(context.Context, *AddChildRequest) (*AddChildResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddChild not implemented")
}
func (UnimplementedFamilyServiceServer) UpdateChild(context.Context, *UpdateChildRequest) (*UpdateChildResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateChild not implemented")
}
func (UnimplementedFamilyServiceServer) RemoveChild(context.Context, *RemoveChildRequest) (*RemoveChildResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveChild not implemented")
}
func (UnimplementedFamilyServiceServer) LinkDeviceToChild(context.Context, *LinkDeviceToChildRequest) (*LinkDeviceToChildResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LinkDeviceToChild not implemented")
}
func (UnimplementedFamilyServiceServer) GetChildDevices(context.Context, *GetChildDevicesRequest) (*GetChildDevicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetChildDevices not implemented")
}
func (UnimplementedFamilyServiceServer) SetScreenTimeRules(context.Context, *SetScreenTimeRulesRequest) (*SetScreenTimeRulesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetScreenTimeRules not implemented")
}
func (UnimplementedFamilyServiceServer) GetScreenTimeRules(context.Context, *GetScreenTimeRulesRequest) (*ScreenTimeRules, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScreenTimeRules not implemented")
}
func (UnimplementedFamilyServiceServer) GetScreenTimeUsage(context.Context, *GetScreenTimeUsageRequest) (*GetScreenTimeUsageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScreenTimeUsage not implemented")
}
func (UnimplementedFamilyServiceServer) SetContentFilters(context.Context, *SetContentFiltersRequest) (*SetContentFiltersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetContentFilters not implemented")
}
func (UnimplementedFamilyServiceServer) GetContentFilters(context.Context, *GetContentFiltersRequest) (*ContentFilters, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetContentFilters not implemented")
}
func (UnimplementedFamilyServiceServer) ApproveAppRequest(context.Context, *ApproveAppRequestRequest) (*ApproveAppRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveAppRequest not implemented")
}

func RegisterFamilyServiceServer(s grpc.ServiceRegistrar, srv FamilyServiceServer) {
	s.RegisterService(&FamilyService_ServiceDesc, srv)
}

func _FamilyService_CreateFamily_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFamilyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).CreateFamily(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_CreateFamily_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).CreateFamily(ctx, req.(*CreateFamilyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_GetFamily_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFamilyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).GetFamily(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_GetFamily_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).GetFamily(ctx, req.(*GetFamilyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_InviteMember_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InviteMemberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).InviteMember(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_InviteMember_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).InviteMember(ctx, req.(*InviteMemberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_AcceptInvitation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AcceptInvitationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).AcceptInvitation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_AcceptInvitation_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).AcceptInvitation(ctx, req.(*AcceptInvitationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_RemoveMember_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveMemberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).RemoveMember(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_RemoveMember_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).RemoveMember(ctx, req.(*RemoveMemberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_AddChild_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddChildRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).AddChild(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_AddChild_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).AddChild(ctx, req.(*AddChildRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_UpdateChild_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateChildRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).UpdateChild(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_UpdateChild_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).UpdateChild(ctx, req.(*UpdateChildRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_RemoveChild_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveChildRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).RemoveChild(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_RemoveChild_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).RemoveChild(ctx, req.(*RemoveChildRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_LinkDeviceToChild_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LinkDeviceToChildRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).LinkDeviceToChild(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_LinkDeviceToChild_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).LinkDeviceToChild(ctx, req.(*LinkDeviceToChildRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_GetChildDevices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetChildDevicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).GetChildDevices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_GetChildDevices_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).GetChildDevices(ctx, req.(*GetChildDevicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_SetScreenTimeRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetScreenTimeRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).SetScreenTimeRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_SetScreenTimeRules_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).SetScreenTimeRules(ctx, req.(*SetScreenTimeRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_GetScreenTimeRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScreenTimeRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).GetScreenTimeRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_GetScreenTimeRules_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).GetScreenTimeRules(ctx, req.(*GetScreenTimeRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_GetScreenTimeUsage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScreenTimeUsageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).GetScreenTimeUsage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_GetScreenTimeUsage_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).GetScreenTimeUsage(ctx, req.(*GetScreenTimeUsageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_SetContentFilters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetContentFiltersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).SetContentFilters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_SetContentFilters_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).SetContentFilters(ctx, req.(*SetContentFiltersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_GetContentFilters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetContentFiltersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).GetContentFilters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_GetContentFilters_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).GetContentFilters(ctx, req.(*GetContentFiltersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyService_ApproveAppRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveAppRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyServiceServer).ApproveAppRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyService_ApproveAppRequest_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyServiceServer).ApproveAppRequest(ctx, req.(*ApproveAppRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var FamilyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "guardian.sync.v1.FamilyService",
	HandlerType: (*FamilyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateFamily", Handler: _FamilyService_CreateFamily_Handler},
		{MethodName: "GetFamily", Handler: _FamilyService_GetFamily_Handler},
		{MethodName: "InviteMember", Handler: _FamilyService_InviteMember_Handler},
		{MethodName: "AcceptInvitation", Handler: _FamilyService_AcceptInvitation_Handler},
		{MethodName: "RemoveMember", Handler: _FamilyService_RemoveMember_Handler},
		{MethodName: "AddChild", Handler: _FamilyService_AddChild_Handler},
		{MethodName: "UpdateChild", Handler: _FamilyService_UpdateChild_Handler},
		{MethodName: "RemoveChild", Handler: _FamilyService_RemoveChild_Handler},
		{MethodName: "LinkDeviceToChild", Handler: _FamilyService_LinkDeviceToChild_Handler},
		{MethodName: "GetChildDevices", Handler: _FamilyService_GetChildDevices_Handler},
		{MethodName: "SetScreenTimeRules", Handler: _FamilyService_SetScreenTimeRules_Handler},
		{MethodName: "GetScreenTimeRules", Handler: _FamilyService_GetScreenTimeRules_Handler},
		{MethodName: "GetScreenTimeUsage", Handler: _FamilyService_GetScreenTimeUsage_Handler},
		{MethodName: "SetContentFilters", Handler: _FamilyService_SetContentFilters_Handler},
		{MethodName: "GetContentFilters", Handler: _FamilyService_GetContentFilters_Handler},
		{MethodName: "ApproveAppRequest", Handler: _FamilyService_ApproveAppRequest_Handler},
	},
	Metadata: "proto/family.proto",
}
