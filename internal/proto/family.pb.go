package pb

type CreateFamilyRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (x *CreateFamilyRequest) Reset()         { *x = CreateFamilyRequest{} }
func (x *CreateFamilyRequest) String() string { return messageString(x) }
func (*CreateFamilyRequest) ProtoMessage()    {}

func (x *CreateFamilyRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateFamilyResponse struct {
	FamilyId   string `protobuf:"bytes,1,opt,name=family_id,json=familyId,proto3" json:"family_id,omitempty"`
	InviteCode string `protobuf:"bytes,2,opt,name=invite_code,json=inviteCode,proto3" json:"invite_code,omitempty"`
}

func (x *CreateFamilyResponse) Reset()         { *x = CreateFamilyResponse{} }
func (x *CreateFamilyResponse) String() string { return messageString(x) }
func (*CreateFamilyResponse) ProtoMessage()    {}

func (x *CreateFamilyResponse) GetFamilyId() string {
	if x != nil {
		return x.FamilyId
	}
	return ""
}

func (x *CreateFamilyResponse) GetInviteCode() string {
	if x != nil {
		return x.InviteCode
	}
	return ""
}

type GetFamilyRequest struct {
	FamilyId string `protobuf:"bytes,1,opt,name=family_id,json=familyId,proto3" json:"family_id,omitempty"`
}

func (x *GetFamilyRequest) Reset()         { *x = GetFamilyRequest{} }
func (x *GetFamilyRequest) String() string { return messageString(x) }
func (*GetFamilyRequest) ProtoMessage()    {}

func (x *GetFamilyRequest) GetFamilyId() string {
	if x != nil {
		return x.FamilyId
	}
	return ""
}

type Family struct {
	FamilyId  string          `protobuf:"bytes,1,opt,name=family_id,json=familyId,proto3" json:"family_id,omitempty"`
	Name      string          `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	OwnerId   string          `protobuf:"bytes,3,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Members   []*FamilyMember `protobuf:"bytes,4,rep,name=members,proto3" json:"members,omitempty"`
	Children  []*Child        `protobuf:"bytes,5,rep,name=children,proto3" json:"children,omitempty"`
	CreatedAt int64           `protobuf:"varint,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (x *Family) Reset()         { *x = Family{} }
func (x *Family) String() string { return messageString(x) }
func (*Family) ProtoMessage()    {}

func (x *Family) GetFamilyId() string {
	if x != nil {
		return x.FamilyId
	}
	return ""
}

func (x *Family) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Family) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Family) GetMembers() []*FamilyMember {
	if x != nil {
		return x.Members
	}
	return nil
}

func (x *Family) GetChildren() []*Child {
	if x != nil {
		return x.Children
	}
	return nil
}

func (x *Family) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

type FamilyMember struct {
	AccountId   string     `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Email       string     `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	DisplayName string     `protobuf:"bytes,3,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Role        FamilyRole `protobuf:"varint,4,opt,name=role,proto3" json:"role,omitempty"`
	JoinedAt    int64      `protobuf:"varint,5,opt,name=joined_at,json=joinedAt,proto3" json:"joined_at,omitempty"`
}

func (x *FamilyMember) Reset()         { *x = FamilyMember{} }
func (x *FamilyMember) String() string { return messageString(x) }
func (*FamilyMember) ProtoMessage()    {}

func (x *FamilyMember) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *FamilyMember) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *FamilyMember) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *FamilyMember) GetRole() FamilyRole {
	if x != nil {
		return x.Role
	}
	return FamilyRole_FAMILY_ROLE_UNSPECIFIED
}

func (x *FamilyMember) GetJoinedAt() int64 {
	if x != nil {
		return x.JoinedAt
	}
	return 0
}

type Child struct {
	ChildId   string `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
	Name      string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	AvatarUrl string `protobuf:"bytes,3,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	Age       int32  `protobuf:"varint,4,opt,name=age,proto3" json:"age,omitempty"`
	CreatedAt int64  `protobuf:"varint,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (x *Child) Reset()         { *x = Child{} }
func (x *Child) String() string { return messageString(x) }
func (*Child) ProtoMessage()    {}

func (x *Child) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

func (x *Child) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Child) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

func (x *Child) GetAge() int32 {
	if x != nil {
		return x.Age
	}
	return 0
}

func (x *Child) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

type InviteMemberRequest struct {
	FamilyId string     `protobuf:"bytes,1,opt,name=family_id,json=familyId,proto3" json:"family_id,omitempty"`
	Email    string     `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Role     FamilyRole `protobuf:"varint,3,opt,name=role,proto3" json:"role,omitempty"`
}

func (x *InviteMemberRequest) Reset()         { *x = InviteMemberRequest{} }
func (x *InviteMemberRequest) String() string { return messageString(x) }
func (*InviteMemberRequest) ProtoMessage()    {}

func (x *InviteMemberRequest) GetFamilyId() string {
	if x != nil {
		return x.FamilyId
	}
	return ""
}

func (x *InviteMemberRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *InviteMemberRequest) GetRole() FamilyRole {
	if x != nil {
		return x.Role
	}
	return FamilyRole_FAMILY_ROLE_UNSPECIFIED
}

type InviteMemberResponse struct {
	InvitationId string `protobuf:"bytes,1,opt,name=invitation_id,json=invitationId,proto3" json:"invitation_id,omitempty"`
	InviteCode   string `protobuf:"bytes,2,opt,name=invite_code,json=inviteCode,proto3" json:"invite_code,omitempty"`
	ExpiresAt    int64  `protobuf:"varint,3,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
}

func (x *InviteMemberResponse) Reset()         { *x = InviteMemberResponse{} }
func (x *InviteMemberResponse) String() string { return messageString(x) }
func (*InviteMemberResponse) ProtoMessage()    {}

func (x *InviteMemberResponse) GetInvitationId() string {
	if x != nil {
		return x.InvitationId
	}
	return ""
}

func (x *InviteMemberResponse) GetInviteCode() string {
	if x != nil {
		return x.InviteCode
	}
	return ""
}

func (x *InviteMemberResponse) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

type AcceptInvitationRequest struct {
	InviteCode string `protobuf:"bytes,1,opt,name=invite_code,json=inviteCode,proto3" json:"invite_code,omitempty"`
}

func (x *AcceptInvitationRequest) Reset()         { *x = AcceptInvitationRequest{} }
func (x *AcceptInvitationRequest) String() string { return messageString(x) }
func (*AcceptInvitationRequest) ProtoMessage()    {}

func (x *AcceptInvitationRequest) GetInviteCode() string {
	if x != nil {
		return x.InviteCode
	}
	return ""
}

type AcceptInvitationResponse struct {
	FamilyId string `protobuf:"bytes,1,opt,name=family_id,json=familyId,proto3" json:"family_id,omitempty"`
	Success  bool   `protobuf:"varint,2,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *AcceptInvitationResponse) Reset()         { *x = AcceptInvitationResponse{} }
func (x *AcceptInvitationResponse) String() string { return messageString(x) }
func (*AcceptInvitationResponse) ProtoMessage()    {}

func (x *AcceptInvitationResponse) GetFamilyId() string {
	if x != nil {
		return x.FamilyId
	}
	return ""
}

func (x *AcceptInvitationResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type RemoveMemberRequest struct {
	FamilyId  string `protobuf:"bytes,1,opt,name=family_id,json=familyId,proto3" json:"family_id,omitempty"`
	AccountId string `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (x *RemoveMemberRequest) Reset()         { *x = RemoveMemberRequest{} }
func (x *RemoveMemberRequest) String() string { return messageString(x) }
func (*RemoveMemberRequest) ProtoMessage()    {}

func (x *RemoveMemberRequest) GetFamilyId() string {
	if x != nil {
		return x.FamilyId
	}
	return ""
}

func (x *RemoveMemberRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

type RemoveMemberResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *RemoveMemberResponse) Reset()         { *x = RemoveMemberResponse{} }
func (x *RemoveMemberResponse) String() string { return messageString(x) }
func (*RemoveMemberResponse) ProtoMessage()    {}

func (x *RemoveMemberResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type AddChildRequest struct {
	FamilyId  string `protobuf:"bytes,1,opt,name=family_id,json=familyId,proto3" json:"family_id,omitempty"`
	Name      string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Age       int32  `protobuf:"varint,3,opt,name=age,proto3" json:"age,omitempty"`
	AvatarUrl string `protobuf:"bytes,4,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
}

func (x *AddChildRequest) Reset()         { *x = AddChildRequest{} }
func (x *AddChildRequest) String() string { return messageString(x) }
func (*AddChildRequest) ProtoMessage()    {}

func (x *AddChildRequest) GetFamilyId() string {
	if x != nil {
		return x.FamilyId
	}
	return ""
}

func (x *AddChildRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddChildRequest) GetAge() int32 {
	if x != nil {
		return x.Age
	}
	return 0
}

func (x *AddChildRequest) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

type AddChildResponse struct {
	ChildId string `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
}

func (x *AddChildResponse) Reset()         { *x = AddChildResponse{} }
func (x *AddChildResponse) String() string { return messageString(x) }
func (*AddChildResponse) ProtoMessage()    {}

func (x *AddChildResponse) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

type UpdateChildRequest struct {
	ChildId   string `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
	Name      string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Age       int32  `protobuf:"varint,3,opt,name=age,proto3" json:"age,omitempty"`
	AvatarUrl string `protobuf:"bytes,4,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
}

func (x *UpdateChildRequest) Reset()         { *x = UpdateChildRequest{} }
func (x *UpdateChildRequest) String() string { return messageString(x) }
func (*UpdateChildRequest) ProtoMessage()    {}

func (x *UpdateChildRequest) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

func (x *UpdateChildRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateChildRequest) GetAge() int32 {
	if x != nil {
		return x.Age
	}
	return 0
}

func (x *UpdateChildRequest) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

type UpdateChildResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *UpdateChildResponse) Reset()         { *x = UpdateChildResponse{} }
func (x *UpdateChildResponse) String() string { return messageString(x) }
func (*UpdateChildResponse) ProtoMessage()    {}

func (x *UpdateChildResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type RemoveChildRequest struct {
	ChildId string `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
}

func (x *RemoveChildRequest) Reset()         { *x = RemoveChildRequest{} }
func (x *RemoveChildRequest) String() string { return messageString(x) }
func (*RemoveChildRequest) ProtoMessage()    {}

func (x *RemoveChildRequest) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

type RemoveChildResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *RemoveChildResponse) Reset()         { *x = RemoveChildResponse{} }
func (x *RemoveChildResponse) String() string { return messageString(x) }
func (*RemoveChildResponse) ProtoMessage()    {}

func (x *RemoveChildResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type LinkDeviceToChildRequest struct {
	ChildId  string `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
	DeviceId string `protobuf:"bytes,2,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
}

func (x *LinkDeviceToChildRequest) Reset()         { *x = LinkDeviceToChildRequest{} }
func (x *LinkDeviceToChildRequest) String() string { return messageString(x) }
func (*LinkDeviceToChildRequest) ProtoMessage()    {}

func (x *LinkDeviceToChildRequest) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

func (x *LinkDeviceToChildRequest) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

type LinkDeviceToChildResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *LinkDeviceToChildResponse) Reset()         { *x = LinkDeviceToChildResponse{} }
func (x *LinkDeviceToChildResponse) String() string { return messageString(x) }
func (*LinkDeviceToChildResponse) ProtoMessage()    {}

func (x *LinkDeviceToChildResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type GetChildDevicesRequest struct {
	ChildId string `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
}

func (x *GetChildDevicesRequest) Reset()         { *x = GetChildDevicesRequest{} }
func (x *GetChildDevicesRequest) String() string { return messageString(x) }
func (*GetChildDevicesRequest) ProtoMessage()    {}

func (x *GetChildDevicesRequest) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

type GetChildDevicesResponse struct {
	DeviceIds []string `protobuf:"bytes,1,rep,name=device_ids,json=deviceIds,proto3" json:"device_ids,omitempty"`
}

func (x *GetChildDevicesResponse) Reset()         { *x = GetChildDevicesResponse{} }
func (x *GetChildDevicesResponse) String() string { return messageString(x) }
func (*GetChildDevicesResponse) ProtoMessage()    {}

func (x *GetChildDevicesResponse) GetDeviceIds() []string {
	if x != nil {
		return x.DeviceIds
	}
	return nil
}

type ScreenTimeRules struct {
	DailyLimitMinutes int32    `protobuf:"varint,1,opt,name=daily_limit_minutes,json=dailyLimitMinutes,proto3" json:"daily_limit_minutes,omitempty"`
	Schedule          []string `protobuf:"bytes,2,rep,name=schedule,proto3" json:"schedule,omitempty"`
	Enabled           bool     `protobuf:"varint,3,opt,name=enabled,proto3" json:"enabled,omitempty"`
}

func (x *ScreenTimeRules) Reset()         { *x = ScreenTimeRules{} }
func (x *ScreenTimeRules) String() string { return messageString(x) }
func (*ScreenTimeRules) ProtoMessage()    {}

func (x *ScreenTimeRules) GetDailyLimitMinutes() int32 {
	if x != nil {
		return x.DailyLimitMinutes
	}
	return 0
}

func (x *ScreenTimeRules) GetSchedule() []string {
	if x != nil {
		return x.Schedule
	}
	return nil
}

func (x *ScreenTimeRules) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

type SetScreenTimeRulesRequest struct {
	ChildId string           `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
	Rules   *ScreenTimeRules `protobuf:"bytes,2,opt,name=rules,proto3" json:"rules,omitempty"`
}

func (x *SetScreenTimeRulesRequest) Reset()         { *x = SetScreenTimeRulesRequest{} }
func (x *SetScreenTimeRulesRequest) String() string { return messageString(x) }
func (*SetScreenTimeRulesRequest) ProtoMessage()    {}

func (x *SetScreenTimeRulesRequest) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

func (x *SetScreenTimeRulesRequest) GetRules() *ScreenTimeRules {
	if x != nil {
		return x.Rules
	}
	return nil
}

type SetScreenTimeRulesResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *SetScreenTimeRulesResponse) Reset()         { *x = SetScreenTimeRulesResponse{} }
func (x *SetScreenTimeRulesResponse) String() string { return messageString(x) }
func (*SetScreenTimeRulesResponse) ProtoMessage()    {}

func (x *SetScreenTimeRulesResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type GetScreenTimeRulesRequest struct {
	ChildId string `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
}

func (x *GetScreenTimeRulesRequest) Reset()         { *x = GetScreenTimeRulesRequest{} }
func (x *GetScreenTimeRulesRequest) String() string { return messageString(x) }
func (*GetScreenTimeRulesRequest) ProtoMessage()    {}

func (x *GetScreenTimeRulesRequest) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

type ScreenTimeUsage struct {
	Date    string `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	Minutes int32  `protobuf:"varint,2,opt,name=minutes,proto3" json:"minutes,omitempty"`
}

func (x *ScreenTimeUsage) Reset()         { *x = ScreenTimeUsage{} }
func (x *ScreenTimeUsage) String() string { return messageString(x) }
func (*ScreenTimeUsage) ProtoMessage()    {}

func (x *ScreenTimeUsage) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *ScreenTimeUsage) GetMinutes() int32 {
	if x != nil {
		return x.Minutes
	}
	return 0
}

type GetScreenTimeUsageRequest struct {
	ChildId string `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
	Days    int32  `protobuf:"varint,2,opt,name=days,proto3" json:"days,omitempty"`
}

func (x *GetScreenTimeUsageRequest) Reset()         { *x = GetScreenTimeUsageRequest{} }
func (x *GetScreenTimeUsageRequest) String() string { return messageString(x) }
func (*GetScreenTimeUsageRequest) ProtoMessage()    {}

func (x *GetScreenTimeUsageRequest) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

func (x *GetScreenTimeUsageRequest) GetDays() int32 {
	if x != nil {
		return x.Days
	}
	return 0
}

type GetScreenTimeUsageResponse struct {
	Usage        []*ScreenTimeUsage `protobuf:"bytes,1,rep,name=usage,proto3" json:"usage,omitempty"`
	TotalMinutes int32              `protobuf:"varint,2,opt,name=total_minutes,json=totalMinutes,proto3" json:"total_minutes,omitempty"`
}

func (x *GetScreenTimeUsageResponse) Reset()         { *x = GetScreenTimeUsageResponse{} }
func (x *GetScreenTimeUsageResponse) String() string { return messageString(x) }
func (*GetScreenTimeUsageResponse) ProtoMessage()    {}

func (x *GetScreenTimeUsageResponse) GetUsage() []*ScreenTimeUsage {
	if x != nil {
		return x.Usage
	}
	return nil
}

func (x *GetScreenTimeUsageResponse) GetTotalMinutes() int32 {
	if x != nil {
		return x.TotalMinutes
	}
	return 0
}

type ContentFilters struct {
	SafeSearch   bool         `protobuf:"varint,1,opt,name=safe_search,json=safeSearch,proto3" json:"safe_search,omitempty"`
	BlockedSites []string     `protobuf:"bytes,2,rep,name=blocked_sites,json=blockedSites,proto3" json:"blocked_sites,omitempty"`
	AllowedSites []string     `protobuf:"bytes,3,rep,name=allowed_sites,json=allowedSites,proto3" json:"allowed_sites,omitempty"`
	BlockedApps  []string     `protobuf:"bytes,4,rep,name=blocked_apps,json=blockedApps,proto3" json:"blocked_apps,omitempty"`
	ContentLevel ContentLevel `protobuf:"varint,5,opt,name=content_level,json=contentLevel,proto3" json:"content_level,omitempty"`
}

func (x *ContentFilters) Reset()         { *x = ContentFilters{} }
func (x *ContentFilters) String() string { return messageString(x) }
func (*ContentFilters) ProtoMessage()    {}

func (x *ContentFilters) GetSafeSearch() bool {
	if x != nil {
		return x.SafeSearch
	}
	return false
}

func (x *ContentFilters) GetBlockedSites() []string {
	if x != nil {
		return x.BlockedSites
	}
	return nil
}

func (x *ContentFilters) GetAllowedSites() []string {
	if x != nil {
		return x.AllowedSites
	}
	return nil
}

func (x *ContentFilters) GetBlockedApps() []string {
	if x != nil {
		return x.BlockedApps
	}
	return nil
}

func (x *ContentFilters) GetContentLevel() ContentLevel {
	if x != nil {
		return x.ContentLevel
	}
	return ContentLevel_CONTENT_LEVEL_UNSPECIFIED
}

type SetContentFiltersRequest struct {
	ChildId string          `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
	Filters *ContentFilters `protobuf:"bytes,2,opt,name=filters,proto3" json:"filters,omitempty"`
}

func (x *SetContentFiltersRequest) Reset()         { *x = SetContentFiltersRequest{} }
func (x *SetContentFiltersRequest) String() string { return messageString(x) }
func (*SetContentFiltersRequest) ProtoMessage()    {}

func (x *SetContentFiltersRequest) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

func (x *SetContentFiltersRequest) GetFilters() *ContentFilters {
	if x != nil {
		return x.Filters
	}
	return nil
}

type SetContentFiltersResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *SetContentFiltersResponse) Reset()         { *x = SetContentFiltersResponse{} }
func (x *SetContentFiltersResponse) String() string { return messageString(x) }
func (*SetContentFiltersResponse) ProtoMessage()    {}

func (x *SetContentFiltersResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type GetContentFiltersRequest struct {
	ChildId string `protobuf:"bytes,1,opt,name=child_id,json=childId,proto3" json:"child_id,omitempty"`
}

func (x *GetContentFiltersRequest) Reset()         { *x = GetContentFiltersRequest{} }
func (x *GetContentFiltersRequest) String() string { return messageString(x) }
func (*GetContentFiltersRequest) ProtoMessage()    {}

func (x *GetContentFiltersRequest) GetChildId() string {
	if x != nil {
		return x.ChildId
	}
	return ""
}

type ApproveAppRequestRequest struct {
	RequestId string `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Approved  bool   `protobuf:"varint,2,opt,name=approved,proto3" json:"approved,omitempty"`
}

func (x *ApproveAppRequestRequest) Reset()         { *x = ApproveAppRequestRequest{} }
func (x *ApproveAppRequestRequest) String() string { return messageString(x) }
func (*ApproveAppRequestRequest) ProtoMessage()    {}

func (x *ApproveAppRequestRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *ApproveAppRequestRequest) GetApproved() bool {
	if x != nil {
		return x.Approved
	}
	return false
}

type ApproveAppRequestResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *ApproveAppRequestResponse) Reset()         { *x = ApproveAppRequestResponse{} }
func (x *ApproveAppRequestResponse) String() string { return messageString(x) }
func (*ApproveAppRequestResponse) ProtoMessage()    {}

func (x *ApproveAppRequestResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}
