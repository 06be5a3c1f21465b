package grpc

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/guardianos/guardian-sync/internal/common"
	pb "github.com/guardianos/guardian-sync/internal/proto"
	"github.com/guardianos/guardian-sync/internal/server/models"
	"github.com/guardianos/guardian-sync/internal/server/services"
)

// ---- fakes ----

type fakeAuthSvc struct {
	registerOut *services.AuthResult
	registerErr error

	loginOut *services.AuthResult
	loginErr error

	refreshOut *services.TokenPair
	refreshErr error

	logoutErr error

	regDevOut *services.DeviceCredentials
	regDevErr error

	verifyDevAccount string
	verifyDevDevice  string
	verifyDevErr     error

	devices []*models.Device
	listErr error

	revokeErr error
	changeErr error

	touchedDevice string
}

func (f *fakeAuthSvc) Register(ctx context.Context, email, password, displayName string) (*services.AuthResult, error) {
	return f.registerOut, f.registerErr
}
func (f *fakeAuthSvc) Login(ctx context.Context, email, password, deviceID string) (*services.AuthResult, error) {
	return f.loginOut, f.loginErr
}
func (f *fakeAuthSvc) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return f.refreshOut, f.refreshErr
}
func (f *fakeAuthSvc) Logout(ctx context.Context, refreshToken string, allDevices bool) error {
	return f.logoutErr
}
func (f *fakeAuthSvc) RegisterDevice(ctx context.Context, accountHash, name, deviceType, osVersion, hardwareID string) (*services.DeviceCredentials, error) {
	return f.regDevOut, f.regDevErr
}
func (f *fakeAuthSvc) VerifyDevice(ctx context.Context, deviceToken string) (string, string, error) {
	return f.verifyDevAccount, f.verifyDevDevice, f.verifyDevErr
}
func (f *fakeAuthSvc) ListDevices(ctx context.Context, accountHash string) ([]*models.Device, error) {
	return f.devices, f.listErr
}
func (f *fakeAuthSvc) RevokeDevice(ctx context.Context, accountHash, deviceID string) error {
	return f.revokeErr
}
func (f *fakeAuthSvc) ChangePassword(ctx context.Context, accountHash, current, newPassword string) error {
	return f.changeErr
}
func (f *fakeAuthSvc) VerifyAccessToken(tokenString string) (string, string, error) {
	return "", "", common.ErrInvalidToken
}
func (f *fakeAuthSvc) TouchDevice(ctx context.Context, deviceID string) error {
	f.touchedDevice = deviceID
	return nil
}

type fakeSyncSvc struct {
	pushOut     *services.PushResult
	pushErr     error
	pushDevice  string
	pushEntries []*models.SettingsEntry

	pullOut        []*models.SettingsEntry
	pullTime       time.Time
	pullErr        error
	pullCategories []string

	diffOut  []*models.SettingsEntry
	diffTime time.Time
	diffErr  error

	resolveErr error

	statusOut *services.SyncStatus
	statusErr error
}

func (f *fakeSyncSvc) Push(ctx context.Context, accountID, deviceID string, entries []*models.SettingsEntry) (*services.PushResult, error) {
	f.pushDevice = deviceID
	f.pushEntries = entries
	return f.pushOut, f.pushErr
}
func (f *fakeSyncSvc) Pull(ctx context.Context, accountID string, since time.Time, categories []string) ([]*models.SettingsEntry, time.Time, error) {
	f.pullCategories = categories
	return f.pullOut, f.pullTime, f.pullErr
}
func (f *fakeSyncSvc) Diff(ctx context.Context, accountID string, since time.Time) ([]*models.SettingsEntry, time.Time, error) {
	return f.diffOut, f.diffTime, f.diffErr
}
func (f *fakeSyncSvc) ResolveConflict(ctx context.Context, accountID, deviceID, key string, useClientValue bool, clientValue []byte, category string) error {
	return f.resolveErr
}
func (f *fakeSyncSvc) Status(ctx context.Context, accountID string) (*services.SyncStatus, error) {
	return f.statusOut, f.statusErr
}

type fakeFileSvc struct {
	checkErr error

	uploadOut  *models.FileRecord
	uploadErr  error
	uploadMeta *models.FileRecord
	uploadData []byte

	downloadRecord *models.FileRecord
	downloadBody   []byte
	downloadErr    error

	metaOut *models.FileRecord
	metaErr error

	listOut   []*models.FileRecord
	listTotal int64
	listErr   error

	deleteErr error

	presignOut *services.PresignedURL
	presignErr error
	presignOp  string
}

func (f *fakeFileSvc) CheckUploadSize(declared int64) error { return f.checkErr }
func (f *fakeFileSvc) Upload(ctx context.Context, accountID, deviceID string, meta *models.FileRecord, data []byte) (*models.FileRecord, error) {
	f.uploadMeta = meta
	f.uploadData = data
	return f.uploadOut, f.uploadErr
}
func (f *fakeFileSvc) Download(ctx context.Context, accountID, fileID string) (*models.FileRecord, io.ReadCloser, error) {
	if f.downloadErr != nil {
		return nil, nil, f.downloadErr
	}
	return f.downloadRecord, io.NopCloser(bytes.NewReader(f.downloadBody)), nil
}
func (f *fakeFileSvc) GetMetadata(ctx context.Context, accountID, fileID string) (*models.FileRecord, error) {
	return f.metaOut, f.metaErr
}
func (f *fakeFileSvc) List(ctx context.Context, accountID, fileType string, limit, offset int32) ([]*models.FileRecord, int64, error) {
	return f.listOut, f.listTotal, f.listErr
}
func (f *fakeFileSvc) Delete(ctx context.Context, accountID, fileID string) error {
	return f.deleteErr
}
func (f *fakeFileSvc) PresignURL(ctx context.Context, accountID, operation, fileID, filename, fileType, contentType string, expires time.Duration) (*services.PresignedURL, error) {
	f.presignOp = operation
	return f.presignOut, f.presignErr
}

type fakeFamilySvc struct {
	createOut *models.Family
	createErr error

	viewOut *services.FamilyView
	viewErr error

	inviteOut *services.Invitation
	inviteErr error

	acceptOut *models.Family
	acceptErr error

	removeErr error

	childOut       *models.Child
	childErr       error
	removeChildErr error
}

func (f *fakeFamilySvc) CreateFamily(ctx context.Context, ownerID, name string) (*models.Family, error) {
	return f.createOut, f.createErr
}
func (f *fakeFamilySvc) GetFamily(ctx context.Context, accountID, familyID string) (*services.FamilyView, error) {
	return f.viewOut, f.viewErr
}
func (f *fakeFamilySvc) InviteMember(ctx context.Context, familyID, inviterID string) (*services.Invitation, error) {
	return f.inviteOut, f.inviteErr
}
func (f *fakeFamilySvc) AcceptInvitation(ctx context.Context, accountID, inviteCode string) (*models.Family, error) {
	return f.acceptOut, f.acceptErr
}
func (f *fakeFamilySvc) RemoveMember(ctx context.Context, familyID, requesterID, targetID string) error {
	return f.removeErr
}
func (f *fakeFamilySvc) AddChild(ctx context.Context, familyID, requesterID, name string, age int32, avatarURL string) (*models.Child, error) {
	return f.childOut, f.childErr
}
func (f *fakeFamilySvc) UpdateChild(ctx context.Context, requesterID, childID, name string, age int32, avatarURL string) (*models.Child, error) {
	return f.childOut, f.childErr
}
func (f *fakeFamilySvc) RemoveChild(ctx context.Context, requesterID, childID string) error {
	return f.removeChildErr
}

// ---- helpers ----

func newHandlerServer(a authSvc, sy syncSvc, fi fileSvc, fa familySvc) *GRPCServer {
	return &GRPCServer{
		logger:    nopLogger{},
		auth:      a,
		sync:      sy,
		files:     fi,
		families:  fa,
		chunkSize: 4,
	}
}

func authedContext(accountID, deviceID string) context.Context {
	ctx := context.WithValue(context.Background(), accountIDKey, accountID)
	return context.WithValue(ctx, deviceIDKey, deviceID)
}

// ---- auth handlers ----

func TestRegister_OK(t *testing.T) {
	a := &fakeAuthSvc{registerOut: &services.AuthResult{
		AccountHash: "acc-1",
		Tokens:      services.TokenPair{AccessToken: "A", RefreshToken: "R", ExpiresAt: time.Unix(1000, 0)},
	}}
	s := newHandlerServer(a, nil, nil, nil)

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Email: "e@x.io", Password: "p", DisplayName: "E"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.AccountId != "acc-1" || resp.AccessToken != "A" || resp.RefreshToken != "R" || resp.ExpiresAt != 1000 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegister_AlreadyExists(t *testing.T) {
	a := &fakeAuthSvc{registerErr: common.ErrAccountAlreadyExists}
	s := newHandlerServer(a, nil, nil, nil)

	_, err := s.Register(context.Background(), &pb.RegisterRequest{Email: "e@x.io", Password: "p"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
}

func TestLogin_UnauthenticatedOnBadCredentials(t *testing.T) {
	a := &fakeAuthSvc{loginErr: common.ErrInvalidCredentials}
	s := newHandlerServer(a, nil, nil, nil)

	_, err := s.Login(context.Background(), &pb.LoginRequest{Email: "e@x.io", Password: "bad"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestResetPassword_Unimplemented(t *testing.T) {
	s := newHandlerServer(&fakeAuthSvc{}, nil, nil, nil)

	_, err := s.ResetPassword(context.Background(), &pb.ResetPasswordRequest{})
	if status.Code(err) != codes.Unimplemented {
		t.Fatalf("want Unimplemented, got %v", status.Code(err))
	}
}

func TestVerifyDevice_InvalidIsNegativeAnswer(t *testing.T) {
	a := &fakeAuthSvc{verifyDevErr: common.ErrInvalidToken}
	s := newHandlerServer(a, nil, nil, nil)

	resp, err := s.VerifyDevice(context.Background(), &pb.VerifyDeviceRequest{DeviceToken: "bad"})
	if err != nil {
		t.Fatalf("VerifyDevice should answer, not fail: %v", err)
	}
	if resp.Valid {
		t.Fatal("expected Valid=false for an invalid device token")
	}
}

func TestRegisterDevice_RequiresAuth(t *testing.T) {
	s := newHandlerServer(&fakeAuthSvc{}, nil, nil, nil)

	_, err := s.RegisterDevice(context.Background(), &pb.RegisterDeviceRequest{DeviceName: "d"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestListDevices_MarksCurrent(t *testing.T) {
	a := &fakeAuthSvc{devices: []*models.Device{
		{ID: "dev-1", Name: "Laptop"},
		{ID: "dev-2", Name: "Tablet"},
	}}
	s := newHandlerServer(a, nil, nil, nil)

	resp, err := s.ListDevices(authedContext("acc-1", "dev-2"), &pb.ListDevicesRequest{})
	if err != nil {
		t.Fatalf("ListDevices error: %v", err)
	}
	if len(resp.Devices) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(resp.Devices))
	}
	if resp.Devices[0].IsCurrent || !resp.Devices[1].IsCurrent {
		t.Fatalf("current device flag wrong: %+v", resp.Devices)
	}
}

// ---- sync handlers ----

func TestPushSettings_ConvertsEntriesAndConflicts(t *testing.T) {
	sy := &fakeSyncSvc{pushOut: &services.PushResult{
		ServerTime: time.Unix(5000, 0),
		Conflicts: []*models.SettingsConflict{{
			Key:            "desktop.wallpaper",
			ServerValue:    []byte("srv"),
			ClientValue:    []byte("cli"),
			ServerModified: 4000,
			ClientModified: 3000,
		}},
	}}
	s := newHandlerServer(nil, sy, nil, nil)

	resp, err := s.PushSettings(authedContext("acc-1", "dev-1"), &pb.PushSettingsRequest{
		Entries: []*pb.SettingsEntry{{
			Key:        "desktop.wallpaper",
			Value:      []byte("cli"),
			Category:   pb.SettingsCategory_SETTINGS_CATEGORY_DESKTOP,
			ModifiedAt: 3000,
		}},
	})
	if err != nil {
		t.Fatalf("PushSettings error: %v", err)
	}
	if !resp.Success || resp.ServerTimestamp != 5000 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Conflicts) != 1 || resp.Conflicts[0].ServerModified != 4000 {
		t.Fatalf("conflicts not surfaced: %+v", resp.Conflicts)
	}
	if len(sy.pushEntries) != 1 {
		t.Fatalf("expected 1 entry pushed, got %d", len(sy.pushEntries))
	}
	got := sy.pushEntries[0]
	if got.Category != "desktop" || !got.ModifiedAt.Equal(time.Unix(3000, 0)) {
		t.Fatalf("entry not converted: %+v", got)
	}
}

func TestPushSettings_DeviceIDFallsBackToContext(t *testing.T) {
	sy := &fakeSyncSvc{pushOut: &services.PushResult{ServerTime: time.Unix(1, 0)}}
	s := newHandlerServer(nil, sy, nil, nil)

	if _, err := s.PushSettings(authedContext("acc-1", "dev-ctx"), &pb.PushSettingsRequest{}); err != nil {
		t.Fatalf("PushSettings error: %v", err)
	}
	if sy.pushDevice != "dev-ctx" {
		t.Fatalf("expected device from context, got %q", sy.pushDevice)
	}

	if _, err := s.PushSettings(authedContext("acc-1", "dev-ctx"), &pb.PushSettingsRequest{DeviceId: "dev-req"}); err != nil {
		t.Fatalf("PushSettings error: %v", err)
	}
	if sy.pushDevice != "dev-req" {
		t.Fatalf("request device id should win, got %q", sy.pushDevice)
	}
}

func TestPullSettings_SkipsUnspecifiedCategory(t *testing.T) {
	sy := &fakeSyncSvc{pullTime: time.Unix(10, 0)}
	s := newHandlerServer(nil, sy, nil, nil)

	_, err := s.PullSettings(authedContext("acc-1", ""), &pb.PullSettingsRequest{
		Categories: []pb.SettingsCategory{
			pb.SettingsCategory_SETTINGS_CATEGORY_UNSPECIFIED,
			pb.SettingsCategory_SETTINGS_CATEGORY_THEME,
		},
	})
	if err != nil {
		t.Fatalf("PullSettings error: %v", err)
	}
	if len(sy.pullCategories) != 1 || sy.pullCategories[0] != "theme" {
		t.Fatalf("unexpected categories: %v", sy.pullCategories)
	}
}

func TestResolveConflict_EchoesClientValue(t *testing.T) {
	sy := &fakeSyncSvc{}
	s := newHandlerServer(nil, sy, nil, nil)

	resp, err := s.ResolveConflict(authedContext("acc-1", "dev-1"), &pb.ResolveConflictRequest{
		Key:            "desktop.wallpaper",
		UseClientValue: true,
		ClientValue:    []byte("cli"),
		Category:       pb.SettingsCategory_SETTINGS_CATEGORY_DESKTOP,
	})
	if err != nil {
		t.Fatalf("ResolveConflict error: %v", err)
	}
	if resp.ResolvedEntry == nil || !bytes.Equal(resp.ResolvedEntry.Value, []byte("cli")) {
		t.Fatalf("resolved entry not echoed: %+v", resp.ResolvedEntry)
	}

	resp, err = s.ResolveConflict(authedContext("acc-1", "dev-1"), &pb.ResolveConflictRequest{
		Key: "desktop.wallpaper",
	})
	if err != nil {
		t.Fatalf("ResolveConflict error: %v", err)
	}
	if resp.ResolvedEntry != nil {
		t.Fatal("keep-server resolution should not echo an entry")
	}
}

func TestGetSyncStatus_OK(t *testing.T) {
	sy := &fakeSyncSvc{statusOut: &services.SyncStatus{LastModified: time.Unix(777, 0)}}
	s := newHandlerServer(nil, sy, nil, nil)

	resp, err := s.GetSyncStatus(authedContext("acc-1", ""), &pb.GetSyncStatusRequest{})
	if err != nil {
		t.Fatalf("GetSyncStatus error: %v", err)
	}
	if resp.LastSyncTimestamp != 777 || resp.State != pb.SyncState_SYNC_STATE_IDLE {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

// ---- file handlers ----

type fakeUploadStream struct {
	pb.FileService_UploadFileServer
	ctx  context.Context
	msgs []*pb.UploadFileRequest
	resp *pb.UploadFileResponse
}

func (f *fakeUploadStream) Context() context.Context { return f.ctx }
func (f *fakeUploadStream) Recv() (*pb.UploadFileRequest, error) {
	if len(f.msgs) == 0 {
		return nil, io.EOF
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	return m, nil
}
func (f *fakeUploadStream) SendAndClose(resp *pb.UploadFileResponse) error {
	f.resp = resp
	return nil
}

type fakeDownloadStream struct {
	pb.FileService_DownloadFileServer
	ctx  context.Context
	sent []*pb.DownloadFileResponse
}

func (f *fakeDownloadStream) Context() context.Context { return f.ctx }
func (f *fakeDownloadStream) Send(resp *pb.DownloadFileResponse) error {
	f.sent = append(f.sent, resp)
	return nil
}

func TestUploadFile_AssemblesChunks(t *testing.T) {
	fi := &fakeFileSvc{uploadOut: &models.FileRecord{ID: "f1", StoragePath: "acc-1/f1/bg.png"}}
	s := newHandlerServer(nil, nil, fi, nil)

	stream := &fakeUploadStream{
		ctx: authedContext("acc-1", "dev-1"),
		msgs: []*pb.UploadFileRequest{
			{Header: &pb.UploadFileHeader{
				Filename: "bg.png",
				FileType: pb.FileType_FILE_TYPE_WALLPAPER,
				Size:     8,
			}},
			{Chunk: []byte("hell")},
			{Chunk: []byte("o!")},
		},
	}

	if err := s.UploadFile(stream); err != nil {
		t.Fatalf("UploadFile error: %v", err)
	}
	if !bytes.Equal(fi.uploadData, []byte("hello!")) {
		t.Fatalf("chunks not assembled: %q", fi.uploadData)
	}
	if fi.uploadMeta.Filename != "bg.png" || fi.uploadMeta.FileType != "wallpaper" {
		t.Fatalf("header not converted: %+v", fi.uploadMeta)
	}
	if stream.resp == nil || stream.resp.FileId != "f1" {
		t.Fatalf("unexpected response: %+v", stream.resp)
	}
}

func TestUploadFile_FirstMessageMustCarryHeader(t *testing.T) {
	s := newHandlerServer(nil, nil, &fakeFileSvc{}, nil)

	stream := &fakeUploadStream{
		ctx:  authedContext("acc-1", ""),
		msgs: []*pb.UploadFileRequest{{Chunk: []byte("data")}},
	}

	err := s.UploadFile(stream)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
}

func TestUploadFile_OversizeRejected(t *testing.T) {
	fi := &fakeFileSvc{checkErr: common.ErrFileTooLarge}
	s := newHandlerServer(nil, nil, fi, nil)

	stream := &fakeUploadStream{
		ctx: authedContext("acc-1", ""),
		msgs: []*pb.UploadFileRequest{
			{Header: &pb.UploadFileHeader{Filename: "big.bin", Size: 1 << 40}},
		},
	}

	err := s.UploadFile(stream)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
}

func TestDownloadFile_SendsMetadataThenChunks(t *testing.T) {
	fi := &fakeFileSvc{
		downloadRecord: &models.FileRecord{ID: "f1", Filename: "bg.png", FileType: "wallpaper", Size: 10},
		downloadBody:   []byte("0123456789"),
	}
	s := newHandlerServer(nil, nil, fi, nil)

	stream := &fakeDownloadStream{ctx: authedContext("acc-1", "")}
	if err := s.DownloadFile(&pb.DownloadFileRequest{FileId: "f1"}, stream); err != nil {
		t.Fatalf("DownloadFile error: %v", err)
	}

	if len(stream.sent) < 2 {
		t.Fatalf("expected metadata plus chunks, got %d messages", len(stream.sent))
	}
	if stream.sent[0].Metadata == nil || stream.sent[0].Metadata.FileId != "f1" {
		t.Fatalf("first message must carry metadata: %+v", stream.sent[0])
	}
	var body []byte
	for _, m := range stream.sent[1:] {
		if m.Metadata != nil {
			t.Fatal("metadata repeated in chunk message")
		}
		if len(m.Chunk) > 4 {
			t.Fatalf("chunk exceeds configured size: %d", len(m.Chunk))
		}
		body = append(body, m.Chunk...)
	}
	if !bytes.Equal(body, []byte("0123456789")) {
		t.Fatalf("body mismatch: %q", body)
	}
	// retained messages must keep their own bytes; a reused read buffer
	// would leave every chunk aliasing the final read
	if !bytes.Equal(stream.sent[1].Chunk, []byte("0123")) {
		t.Fatalf("first chunk was overwritten by later reads: %q", stream.sent[1].Chunk)
	}
}

func TestListFiles_TotalCountIsAccountTotal(t *testing.T) {
	fi := &fakeFileSvc{
		listOut: []*models.FileRecord{
			{ID: "f1", Filename: "a.png"},
			{ID: "f2", Filename: "b.png"},
		},
		listTotal: 41,
	}
	s := newHandlerServer(nil, nil, fi, nil)

	resp, err := s.ListFiles(authedContext("acc-1", ""), &pb.ListFilesRequest{Limit: 2, Offset: 10})
	if err != nil {
		t.Fatalf("ListFiles error: %v", err)
	}
	if len(resp.Files) != 2 {
		t.Fatalf("expected the page, got %d files", len(resp.Files))
	}
	if resp.TotalCount != 41 {
		t.Fatalf("total must be the account total, not the page length: %d", resp.TotalCount)
	}
}

func TestDownloadFile_NotOwnedIsPermissionDenied(t *testing.T) {
	fi := &fakeFileSvc{downloadErr: common.ErrPermissionDenied}
	s := newHandlerServer(nil, nil, fi, nil)

	stream := &fakeDownloadStream{ctx: authedContext("acc-2", "")}
	err := s.DownloadFile(&pb.DownloadFileRequest{FileId: "f1"}, stream)
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", status.Code(err))
	}
}

func TestGetPresignedUrl_MapsOperations(t *testing.T) {
	fi := &fakeFileSvc{presignOut: &services.PresignedURL{
		URL:       "https://s3.example/signed",
		ExpiresAt: time.Unix(9000, 0),
		File:      &models.FileRecord{ID: "f1"},
	}}
	s := newHandlerServer(nil, nil, fi, nil)

	resp, err := s.GetPresignedUrl(authedContext("acc-1", ""), &pb.GetPresignedUrlRequest{
		Operation: pb.UrlOperation_URL_OPERATION_DOWNLOAD,
		FileId:    "f1",
	})
	if err != nil {
		t.Fatalf("GetPresignedUrl error: %v", err)
	}
	if fi.presignOp != services.URLOperationDownload {
		t.Fatalf("unexpected operation: %q", fi.presignOp)
	}
	if resp.Url == "" || resp.FileId != "f1" || resp.ExpiresAt != 9000 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetPresignedUrl_UnknownOperation(t *testing.T) {
	s := newHandlerServer(nil, nil, &fakeFileSvc{}, nil)

	_, err := s.GetPresignedUrl(authedContext("acc-1", ""), &pb.GetPresignedUrlRequest{
		Operation: pb.UrlOperation_URL_OPERATION_UNSPECIFIED,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
}

// ---- family handlers ----

func TestGetFamily_View(t *testing.T) {
	fa := &fakeFamilySvc{viewOut: &services.FamilyView{
		Family: &models.Family{ID: "fam-1", Name: "Smiths", OwnerID: "acc-1"},
		Members: []*models.FamilyMember{
			{AccountID: "acc-1", Role: models.RoleOwner, Email: "o@x.io", DisplayName: "Owner"},
			{AccountID: "acc-2", Role: models.RoleMember, Email: "m@x.io"},
		},
		Children: []*models.Child{{ID: "ch-1", Name: "Kid", Age: 9}},
	}}
	s := newHandlerServer(nil, nil, nil, fa)

	resp, err := s.GetFamily(authedContext("acc-2", ""), &pb.GetFamilyRequest{FamilyId: "fam-1"})
	if err != nil {
		t.Fatalf("GetFamily error: %v", err)
	}
	if resp.FamilyId != "fam-1" || len(resp.Members) != 2 || len(resp.Children) != 1 {
		t.Fatalf("unexpected view: %+v", resp)
	}
	if resp.Members[0].Role != pb.FamilyRole_FAMILY_ROLE_OWNER || resp.Members[0].Email != "o@x.io" {
		t.Fatalf("member not converted: %+v", resp.Members[0])
	}
}

func TestGetFamily_NonMemberDenied(t *testing.T) {
	fa := &fakeFamilySvc{viewErr: common.ErrPermissionDenied}
	s := newHandlerServer(nil, nil, nil, fa)

	_, err := s.GetFamily(authedContext("acc-3", ""), &pb.GetFamilyRequest{FamilyId: "fam-1"})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", status.Code(err))
	}
}

func TestInviteMember_OK(t *testing.T) {
	fa := &fakeFamilySvc{inviteOut: &services.Invitation{
		InviteCode: "ABCD1234",
		ExpiresAt:  time.Unix(8000, 0),
	}}
	s := newHandlerServer(nil, nil, nil, fa)

	resp, err := s.InviteMember(authedContext("acc-1", ""), &pb.InviteMemberRequest{FamilyId: "fam-1"})
	if err != nil {
		t.Fatalf("InviteMember error: %v", err)
	}
	if resp.InviteCode != "ABCD1234" || resp.ExpiresAt != 8000 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetScreenTimeRules_Defaults(t *testing.T) {
	s := newHandlerServer(nil, nil, nil, &fakeFamilySvc{})

	resp, err := s.GetScreenTimeRules(authedContext("acc-1", ""), &pb.GetScreenTimeRulesRequest{ChildId: "ch-1"})
	if err != nil {
		t.Fatalf("GetScreenTimeRules error: %v", err)
	}
	if resp.DailyLimitMinutes != 120 || resp.Enabled {
		t.Fatalf("unexpected defaults: %+v", resp)
	}
}

func TestGetContentFilters_Defaults(t *testing.T) {
	s := newHandlerServer(nil, nil, nil, &fakeFamilySvc{})

	resp, err := s.GetContentFilters(authedContext("acc-1", ""), &pb.GetContentFiltersRequest{ChildId: "ch-1"})
	if err != nil {
		t.Fatalf("GetContentFilters error: %v", err)
	}
	if !resp.SafeSearch || resp.ContentLevel != pb.ContentLevel_CONTENT_LEVEL_CHILD {
		t.Fatalf("unexpected defaults: %+v", resp)
	}
}
