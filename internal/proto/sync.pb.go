package pb

type SettingsEntry struct {
	Key        string           `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value      []byte           `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Category   SettingsCategory `protobuf:"varint,3,opt,name=category,proto3" json:"category,omitempty"`
	ModifiedAt int64            `protobuf:"varint,4,opt,name=modified_at,json=modifiedAt,proto3" json:"modified_at,omitempty"`
	Checksum   string           `protobuf:"bytes,5,opt,name=checksum,proto3" json:"checksum,omitempty"`
}

func (x *SettingsEntry) Reset()         { *x = SettingsEntry{} }
func (x *SettingsEntry) String() string { return messageString(x) }
func (*SettingsEntry) ProtoMessage()    {}

func (x *SettingsEntry) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *SettingsEntry) GetValue() []byte {
	if x != nil {
		return x.Value
	}
	return nil
}

func (x *SettingsEntry) GetCategory() SettingsCategory {
	if x != nil {
		return x.Category
	}
	return SettingsCategory_SETTINGS_CATEGORY_UNSPECIFIED
}

func (x *SettingsEntry) GetModifiedAt() int64 {
	if x != nil {
		return x.ModifiedAt
	}
	return 0
}

func (x *SettingsEntry) GetChecksum() string {
	if x != nil {
		return x.Checksum
	}
	return ""
}

type PushSettingsRequest struct {
	DeviceId string           `protobuf:"bytes,1,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	Entries  []*SettingsEntry `protobuf:"bytes,2,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (x *PushSettingsRequest) Reset()         { *x = PushSettingsRequest{} }
func (x *PushSettingsRequest) String() string { return messageString(x) }
func (*PushSettingsRequest) ProtoMessage()    {}

func (x *PushSettingsRequest) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

func (x *PushSettingsRequest) GetEntries() []*SettingsEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ConflictEntry struct {
	Key            string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	ServerValue    []byte `protobuf:"bytes,2,opt,name=server_value,json=serverValue,proto3" json:"server_value,omitempty"`
	ClientValue    []byte `protobuf:"bytes,3,opt,name=client_value,json=clientValue,proto3" json:"client_value,omitempty"`
	ServerModified int64  `protobuf:"varint,4,opt,name=server_modified,json=serverModified,proto3" json:"server_modified,omitempty"`
	ClientModified int64  `protobuf:"varint,5,opt,name=client_modified,json=clientModified,proto3" json:"client_modified,omitempty"`
}

func (x *ConflictEntry) Reset()         { *x = ConflictEntry{} }
func (x *ConflictEntry) String() string { return messageString(x) }
func (*ConflictEntry) ProtoMessage()    {}

func (x *ConflictEntry) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *ConflictEntry) GetServerValue() []byte {
	if x != nil {
		return x.ServerValue
	}
	return nil
}

func (x *ConflictEntry) GetClientValue() []byte {
	if x != nil {
		return x.ClientValue
	}
	return nil
}

func (x *ConflictEntry) GetServerModified() int64 {
	if x != nil {
		return x.ServerModified
	}
	return 0
}

func (x *ConflictEntry) GetClientModified() int64 {
	if x != nil {
		return x.ClientModified
	}
	return 0
}

type PushSettingsResponse struct {
	Success         bool             `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	ServerTimestamp int64            `protobuf:"varint,2,opt,name=server_timestamp,json=serverTimestamp,proto3" json:"server_timestamp,omitempty"`
	Conflicts       []*ConflictEntry `protobuf:"bytes,3,rep,name=conflicts,proto3" json:"conflicts,omitempty"`
}

func (x *PushSettingsResponse) Reset()         { *x = PushSettingsResponse{} }
func (x *PushSettingsResponse) String() string { return messageString(x) }
func (*PushSettingsResponse) ProtoMessage()    {}

func (x *PushSettingsResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *PushSettingsResponse) GetServerTimestamp() int64 {
	if x != nil {
		return x.ServerTimestamp
	}
	return 0
}

func (x *PushSettingsResponse) GetConflicts() []*ConflictEntry {
	if x != nil {
		return x.Conflicts
	}
	return nil
}

type PullSettingsRequest struct {
	SinceTimestamp int64              `protobuf:"varint,1,opt,name=since_timestamp,json=sinceTimestamp,proto3" json:"since_timestamp,omitempty"`
	Categories     []SettingsCategory `protobuf:"varint,2,rep,packed,name=categories,proto3" json:"categories,omitempty"`
}

func (x *PullSettingsRequest) Reset()         { *x = PullSettingsRequest{} }
func (x *PullSettingsRequest) String() string { return messageString(x) }
func (*PullSettingsRequest) ProtoMessage()    {}

func (x *PullSettingsRequest) GetSinceTimestamp() int64 {
	if x != nil {
		return x.SinceTimestamp
	}
	return 0
}

func (x *PullSettingsRequest) GetCategories() []SettingsCategory {
	if x != nil {
		return x.Categories
	}
	return nil
}

type PullSettingsResponse struct {
	Entries           []*SettingsEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	ServerTimestamp   int64            `protobuf:"varint,2,opt,name=server_timestamp,json=serverTimestamp,proto3" json:"server_timestamp,omitempty"`
	HasMore           bool             `protobuf:"varint,3,opt,name=has_more,json=hasMore,proto3" json:"has_more,omitempty"`
	ContinuationToken string           `protobuf:"bytes,4,opt,name=continuation_token,json=continuationToken,proto3" json:"continuation_token,omitempty"`
}

func (x *PullSettingsResponse) Reset()         { *x = PullSettingsResponse{} }
func (x *PullSettingsResponse) String() string { return messageString(x) }
func (*PullSettingsResponse) ProtoMessage()    {}

func (x *PullSettingsResponse) GetEntries() []*SettingsEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

func (x *PullSettingsResponse) GetServerTimestamp() int64 {
	if x != nil {
		return x.ServerTimestamp
	}
	return 0
}

func (x *PullSettingsResponse) GetHasMore() bool {
	if x != nil {
		return x.HasMore
	}
	return false
}

func (x *PullSettingsResponse) GetContinuationToken() string {
	if x != nil {
		return x.ContinuationToken
	}
	return ""
}

type GetSettingsDiffRequest struct {
	SinceTimestamp int64 `protobuf:"varint,1,opt,name=since_timestamp,json=sinceTimestamp,proto3" json:"since_timestamp,omitempty"`
}

func (x *GetSettingsDiffRequest) Reset()         { *x = GetSettingsDiffRequest{} }
func (x *GetSettingsDiffRequest) String() string { return messageString(x) }
func (*GetSettingsDiffRequest) ProtoMessage()    {}

func (x *GetSettingsDiffRequest) GetSinceTimestamp() int64 {
	if x != nil {
		return x.SinceTimestamp
	}
	return 0
}

type SettingsDiffEntry struct {
	Key        string        `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Operation  DiffOperation `protobuf:"varint,2,opt,name=operation,proto3" json:"operation,omitempty"`
	NewValue   []byte        `protobuf:"bytes,3,opt,name=new_value,json=newValue,proto3" json:"new_value,omitempty"`
	ModifiedAt int64         `protobuf:"varint,4,opt,name=modified_at,json=modifiedAt,proto3" json:"modified_at,omitempty"`
}

func (x *SettingsDiffEntry) Reset()         { *x = SettingsDiffEntry{} }
func (x *SettingsDiffEntry) String() string { return messageString(x) }
func (*SettingsDiffEntry) ProtoMessage()    {}

func (x *SettingsDiffEntry) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *SettingsDiffEntry) GetOperation() DiffOperation {
	if x != nil {
		return x.Operation
	}
	return DiffOperation_DIFF_OPERATION_UNSPECIFIED
}

func (x *SettingsDiffEntry) GetNewValue() []byte {
	if x != nil {
		return x.NewValue
	}
	return nil
}

func (x *SettingsDiffEntry) GetModifiedAt() int64 {
	if x != nil {
		return x.ModifiedAt
	}
	return 0
}

type GetSettingsDiffResponse struct {
	Changes         []*SettingsDiffEntry `protobuf:"bytes,1,rep,name=changes,proto3" json:"changes,omitempty"`
	ServerTimestamp int64                `protobuf:"varint,2,opt,name=server_timestamp,json=serverTimestamp,proto3" json:"server_timestamp,omitempty"`
}

func (x *GetSettingsDiffResponse) Reset()         { *x = GetSettingsDiffResponse{} }
func (x *GetSettingsDiffResponse) String() string { return messageString(x) }
func (*GetSettingsDiffResponse) ProtoMessage()    {}

func (x *GetSettingsDiffResponse) GetChanges() []*SettingsDiffEntry {
	if x != nil {
		return x.Changes
	}
	return nil
}

func (x *GetSettingsDiffResponse) GetServerTimestamp() int64 {
	if x != nil {
		return x.ServerTimestamp
	}
	return 0
}

type StreamChangesRequest struct{}

func (x *StreamChangesRequest) Reset()         { *x = StreamChangesRequest{} }
func (x *StreamChangesRequest) String() string { return messageString(x) }
func (*StreamChangesRequest) ProtoMessage()    {}

type SettingsChange struct {
	Operation       DiffOperation  `protobuf:"varint,1,opt,name=operation,proto3" json:"operation,omitempty"`
	Entry           *SettingsEntry `protobuf:"bytes,2,opt,name=entry,proto3" json:"entry,omitempty"`
	ServerTimestamp int64          `protobuf:"varint,3,opt,name=server_timestamp,json=serverTimestamp,proto3" json:"server_timestamp,omitempty"`
}

func (x *SettingsChange) Reset()         { *x = SettingsChange{} }
func (x *SettingsChange) String() string { return messageString(x) }
func (*SettingsChange) ProtoMessage()    {}

func (x *SettingsChange) GetOperation() DiffOperation {
	if x != nil {
		return x.Operation
	}
	return DiffOperation_DIFF_OPERATION_UNSPECIFIED
}

func (x *SettingsChange) GetEntry() *SettingsEntry {
	if x != nil {
		return x.Entry
	}
	return nil
}

func (x *SettingsChange) GetServerTimestamp() int64 {
	if x != nil {
		return x.ServerTimestamp
	}
	return 0
}

type ResolveConflictRequest struct {
	Key            string           `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	UseClientValue bool             `protobuf:"varint,2,opt,name=use_client_value,json=useClientValue,proto3" json:"use_client_value,omitempty"`
	ClientValue    []byte           `protobuf:"bytes,3,opt,name=client_value,json=clientValue,proto3" json:"client_value,omitempty"`
	Category       SettingsCategory `protobuf:"varint,4,opt,name=category,proto3" json:"category,omitempty"`
	DeviceId       string           `protobuf:"bytes,5,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
}

func (x *ResolveConflictRequest) Reset()         { *x = ResolveConflictRequest{} }
func (x *ResolveConflictRequest) String() string { return messageString(x) }
func (*ResolveConflictRequest) ProtoMessage()    {}

func (x *ResolveConflictRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *ResolveConflictRequest) GetUseClientValue() bool {
	if x != nil {
		return x.UseClientValue
	}
	return false
}

func (x *ResolveConflictRequest) GetClientValue() []byte {
	if x != nil {
		return x.ClientValue
	}
	return nil
}

func (x *ResolveConflictRequest) GetCategory() SettingsCategory {
	if x != nil {
		return x.Category
	}
	return SettingsCategory_SETTINGS_CATEGORY_UNSPECIFIED
}

func (x *ResolveConflictRequest) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

type ResolveConflictResponse struct {
	Success       bool           `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	ResolvedEntry *SettingsEntry `protobuf:"bytes,2,opt,name=resolved_entry,json=resolvedEntry,proto3" json:"resolved_entry,omitempty"`
}

func (x *ResolveConflictResponse) Reset()         { *x = ResolveConflictResponse{} }
func (x *ResolveConflictResponse) String() string { return messageString(x) }
func (*ResolveConflictResponse) ProtoMessage()    {}

func (x *ResolveConflictResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ResolveConflictResponse) GetResolvedEntry() *SettingsEntry {
	if x != nil {
		return x.ResolvedEntry
	}
	return nil
}

type GetSyncStatusRequest struct{}

func (x *GetSyncStatusRequest) Reset()         { *x = GetSyncStatusRequest{} }
func (x *GetSyncStatusRequest) String() string { return messageString(x) }
func (*GetSyncStatusRequest) ProtoMessage()    {}

type GetSyncStatusResponse struct {
	LastSyncTimestamp int64     `protobuf:"varint,1,opt,name=last_sync_timestamp,json=lastSyncTimestamp,proto3" json:"last_sync_timestamp,omitempty"`
	PendingChanges    int32     `protobuf:"varint,2,opt,name=pending_changes,json=pendingChanges,proto3" json:"pending_changes,omitempty"`
	ConflictsCount    int32     `protobuf:"varint,3,opt,name=conflicts_count,json=conflictsCount,proto3" json:"conflicts_count,omitempty"`
	State             SyncState `protobuf:"varint,4,opt,name=state,proto3" json:"state,omitempty"`
}

func (x *GetSyncStatusResponse) Reset()         { *x = GetSyncStatusResponse{} }
func (x *GetSyncStatusResponse) String() string { return messageString(x) }
func (*GetSyncStatusResponse) ProtoMessage()    {}

func (x *GetSyncStatusResponse) GetLastSyncTimestamp() int64 {
	if x != nil {
		return x.LastSyncTimestamp
	}
	return 0
}

func (x *GetSyncStatusResponse) GetPendingChanges() int32 {
	if x != nil {
		return x.PendingChanges
	}
	return 0
}

func (x *GetSyncStatusResponse) GetConflictsCount() int32 {
	if x != nil {
		return x.ConflictsCount
	}
	return 0
}

func (x *GetSyncStatusResponse) GetState() SyncState {
	if x != nil {
		return x.State
	}
	return SyncState_SYNC_STATE_UNSPECIFIED
}
