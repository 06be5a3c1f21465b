package grpc

import (
	"context"

	pb "github.com/guardianos/guardian-sync/internal/proto"
)

func (s *GRPCServer) CreateFamily(ctx context.Context, req *pb.CreateFamilyRequest) (*pb.CreateFamilyResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	family, err := s.families.CreateFamily(ctx, accountID, req.Name)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Family created", "family", family.ID)
	return &pb.CreateFamilyResponse{FamilyId: family.ID, InviteCode: family.InviteCode}, nil
}

func (s *GRPCServer) GetFamily(ctx context.Context, req *pb.GetFamilyRequest) (*pb.Family, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	view, err := s.families.GetFamily(ctx, accountID, req.FamilyId)
	if err != nil {
		return nil, statusFromError(err)
	}
	return familyViewToProto(view), nil
}

func (s *GRPCServer) InviteMember(ctx context.Context, req *pb.InviteMemberRequest) (*pb.InviteMemberResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	invitation, err := s.families.InviteMember(ctx, req.FamilyId, accountID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.InviteMemberResponse{
		InviteCode: invitation.InviteCode,
		ExpiresAt:  invitation.ExpiresAt.Unix(),
	}, nil
}

func (s *GRPCServer) AcceptInvitation(ctx context.Context, req *pb.AcceptInvitationRequest) (*pb.AcceptInvitationResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	family, err := s.families.AcceptInvitation(ctx, accountID, req.InviteCode)
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Member joined", "family", family.ID)
	return &pb.AcceptInvitationResponse{FamilyId: family.ID, Success: true}, nil
}

func (s *GRPCServer) RemoveMember(ctx context.Context, req *pb.RemoveMemberRequest) (*pb.RemoveMemberResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.families.RemoveMember(ctx, req.FamilyId, accountID, req.AccountId); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.RemoveMemberResponse{Success: true}, nil
}

func (s *GRPCServer) AddChild(ctx context.Context, req *pb.AddChildRequest) (*pb.AddChildResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	child, err := s.families.AddChild(ctx, req.FamilyId, accountID, req.Name, req.Age, req.AvatarUrl)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.AddChildResponse{ChildId: child.ID}, nil
}

func (s *GRPCServer) UpdateChild(ctx context.Context, req *pb.UpdateChildRequest) (*pb.UpdateChildResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.families.UpdateChild(ctx, accountID, req.ChildId, req.Name, req.Age, req.AvatarUrl); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.UpdateChildResponse{Success: true}, nil
}

func (s *GRPCServer) RemoveChild(ctx context.Context, req *pb.RemoveChildRequest) (*pb.RemoveChildResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.families.RemoveChild(ctx, accountID, req.ChildId); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.RemoveChildResponse{Success: true}, nil
}

// The policy RPCs below are placeholders: device policy lives on the devices
// themselves and the server does not store rules yet. They answer with fixed
// defaults so clients have a stable contract to build against.

func (s *GRPCServer) LinkDeviceToChild(ctx context.Context, req *pb.LinkDeviceToChildRequest) (*pb.LinkDeviceToChildResponse, error) {
	if _, err := accountFromContext(ctx); err != nil {
		return nil, err
	}
	return &pb.LinkDeviceToChildResponse{Success: true}, nil
}

func (s *GRPCServer) GetChildDevices(ctx context.Context, req *pb.GetChildDevicesRequest) (*pb.GetChildDevicesResponse, error) {
	if _, err := accountFromContext(ctx); err != nil {
		return nil, err
	}
	return &pb.GetChildDevicesResponse{}, nil
}

func (s *GRPCServer) SetScreenTimeRules(ctx context.Context, req *pb.SetScreenTimeRulesRequest) (*pb.SetScreenTimeRulesResponse, error) {
	if _, err := accountFromContext(ctx); err != nil {
		return nil, err
	}
	return &pb.SetScreenTimeRulesResponse{Success: true}, nil
}

func (s *GRPCServer) GetScreenTimeRules(ctx context.Context, req *pb.GetScreenTimeRulesRequest) (*pb.ScreenTimeRules, error) {
	if _, err := accountFromContext(ctx); err != nil {
		return nil, err
	}
	return &pb.ScreenTimeRules{DailyLimitMinutes: 120, Enabled: false}, nil
}

func (s *GRPCServer) GetScreenTimeUsage(ctx context.Context, req *pb.GetScreenTimeUsageRequest) (*pb.GetScreenTimeUsageResponse, error) {
	if _, err := accountFromContext(ctx); err != nil {
		return nil, err
	}
	return &pb.GetScreenTimeUsageResponse{}, nil
}

func (s *GRPCServer) SetContentFilters(ctx context.Context, req *pb.SetContentFiltersRequest) (*pb.SetContentFiltersResponse, error) {
	if _, err := accountFromContext(ctx); err != nil {
		return nil, err
	}
	return &pb.SetContentFiltersResponse{Success: true}, nil
}

func (s *GRPCServer) GetContentFilters(ctx context.Context, req *pb.GetContentFiltersRequest) (*pb.ContentFilters, error) {
	if _, err := accountFromContext(ctx); err != nil {
		return nil, err
	}
	return &pb.ContentFilters{
		SafeSearch:   true,
		ContentLevel: pb.ContentLevel_CONTENT_LEVEL_CHILD,
	}, nil
}

func (s *GRPCServer) ApproveAppRequest(ctx context.Context, req *pb.ApproveAppRequestRequest) (*pb.ApproveAppRequestResponse, error) {
	if _, err := accountFromContext(ctx); err != nil {
		return nil, err
	}
	return &pb.ApproveAppRequestResponse{Success: true}, nil
}
