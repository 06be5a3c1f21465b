package grpc

import (
	"context"
	"time"

	pb "github.com/guardianos/guardian-sync/internal/proto"
	"github.com/guardianos/guardian-sync/internal/server/models"
)

func (s *GRPCServer) PushSettings(ctx context.Context, req *pb.PushSettingsRequest) (*pb.PushSettingsResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}
	deviceID := req.DeviceId
	if deviceID == "" {
		deviceID = deviceFromContext(ctx)
	}

	entries := make([]*models.SettingsEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, &models.SettingsEntry{
			Key:        e.Key,
			Value:      e.Value,
			Category:   categoryToString(e.Category),
			ModifiedAt: time.Unix(e.ModifiedAt, 0),
		})
	}

	result, err := s.sync.Push(ctx, accountID, deviceID, entries)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	resp := &pb.PushSettingsResponse{
		Success:         true,
		ServerTimestamp: result.ServerTime.Unix(),
	}
	for _, c := range result.Conflicts {
		resp.Conflicts = append(resp.Conflicts, &pb.ConflictEntry{
			Key:            c.Key,
			ServerValue:    c.ServerValue,
			ClientValue:    c.ClientValue,
			ServerModified: c.ServerModified,
			ClientModified: c.ClientModified,
		})
	}
	return resp, nil
}

func (s *GRPCServer) PullSettings(ctx context.Context, req *pb.PullSettingsRequest) (*pb.PullSettingsResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var categories []string
	for _, c := range req.Categories {
		if name := categoryToString(c); name != "" {
			categories = append(categories, name)
		}
	}

	entries, serverTime, err := s.sync.Pull(ctx, accountID, time.Unix(req.SinceTimestamp, 0), categories)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.PullSettingsResponse{ServerTimestamp: serverTime.Unix()}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, settingsEntryToProto(e))
	}
	return resp, nil
}

func (s *GRPCServer) GetSettingsDiff(ctx context.Context, req *pb.GetSettingsDiffRequest) (*pb.GetSettingsDiffResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, serverTime, err := s.sync.Diff(ctx, accountID, time.Unix(req.SinceTimestamp, 0))
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.GetSettingsDiffResponse{ServerTimestamp: serverTime.Unix()}
	for _, e := range entries {
		resp.Changes = append(resp.Changes, &pb.SettingsDiffEntry{
			Key:        e.Key,
			Operation:  pb.DiffOperation_DIFF_OPERATION_UPDATE,
			NewValue:   e.Value,
			ModifiedAt: unixOrZero(e.ModifiedAt),
		})
	}
	return resp, nil
}

// StreamChanges closes the stream immediately. There is no server-side change
// feed yet; clients fall back to polling PullSettings.
func (s *GRPCServer) StreamChanges(req *pb.StreamChangesRequest, stream pb.SyncService_StreamChangesServer) error {
	if _, err := accountFromContext(stream.Context()); err != nil {
		return err
	}
	return nil
}

func (s *GRPCServer) ResolveConflict(ctx context.Context, req *pb.ResolveConflictRequest) (*pb.ResolveConflictResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}
	deviceID := req.DeviceId
	if deviceID == "" {
		deviceID = deviceFromContext(ctx)
	}

	if err := s.sync.ResolveConflict(ctx, accountID, deviceID, req.Key,
		req.UseClientValue, req.ClientValue, categoryToString(req.Category)); err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.ResolveConflictResponse{Success: true}
	if req.UseClientValue {
		resp.ResolvedEntry = &pb.SettingsEntry{
			Key:      req.Key,
			Value:    req.ClientValue,
			Category: req.Category,
		}
	}
	return resp, nil
}

func (s *GRPCServer) GetSyncStatus(ctx context.Context, req *pb.GetSyncStatusRequest) (*pb.GetSyncStatusResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.sync.Status(ctx, accountID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetSyncStatusResponse{
		LastSyncTimestamp: unixOrZero(st.LastModified),
		State:             pb.SyncState_SYNC_STATE_IDLE,
	}, nil
}
