package pb

import "strconv"

// SettingsCategory tags a settings entry with the subsystem it belongs to.
type SettingsCategory int32

const (
	SettingsCategory_SETTINGS_CATEGORY_UNSPECIFIED SettingsCategory = 0
	SettingsCategory_SETTINGS_CATEGORY_DESKTOP     SettingsCategory = 1
	SettingsCategory_SETTINGS_CATEGORY_PANEL       SettingsCategory = 2
	SettingsCategory_SETTINGS_CATEGORY_DOCK        SettingsCategory = 3
	SettingsCategory_SETTINGS_CATEGORY_KEYBOARD    SettingsCategory = 4
	SettingsCategory_SETTINGS_CATEGORY_DISPLAY     SettingsCategory = 5
	SettingsCategory_SETTINGS_CATEGORY_POWER       SettingsCategory = 6
	SettingsCategory_SETTINGS_CATEGORY_NETWORK     SettingsCategory = 7
	SettingsCategory_SETTINGS_CATEGORY_APPS        SettingsCategory = 8
	SettingsCategory_SETTINGS_CATEGORY_THEME       SettingsCategory = 9
	SettingsCategory_SETTINGS_CATEGORY_GUARDIAN    SettingsCategory = 10
)

var SettingsCategory_name = map[int32]string{
	0:  "SETTINGS_CATEGORY_UNSPECIFIED",
	1:  "SETTINGS_CATEGORY_DESKTOP",
	2:  "SETTINGS_CATEGORY_PANEL",
	3:  "SETTINGS_CATEGORY_DOCK",
	4:  "SETTINGS_CATEGORY_KEYBOARD",
	5:  "SETTINGS_CATEGORY_DISPLAY",
	6:  "SETTINGS_CATEGORY_POWER",
	7:  "SETTINGS_CATEGORY_NETWORK",
	8:  "SETTINGS_CATEGORY_APPS",
	9:  "SETTINGS_CATEGORY_THEME",
	10: "SETTINGS_CATEGORY_GUARDIAN",
}

var SettingsCategory_value = map[string]int32{
	"SETTINGS_CATEGORY_UNSPECIFIED": 0,
	"SETTINGS_CATEGORY_DESKTOP":     1,
	"SETTINGS_CATEGORY_PANEL":       2,
	"SETTINGS_CATEGORY_DOCK":        3,
	"SETTINGS_CATEGORY_KEYBOARD":    4,
	"SETTINGS_CATEGORY_DISPLAY":     5,
	"SETTINGS_CATEGORY_POWER":       6,
	"SETTINGS_CATEGORY_NETWORK":     7,
	"SETTINGS_CATEGORY_APPS":        8,
	"SETTINGS_CATEGORY_THEME":       9,
	"SETTINGS_CATEGORY_GUARDIAN":    10,
}

func (x SettingsCategory) String() string { return enumName(SettingsCategory_name, int32(x)) }

// DiffOperation marks whether a diff entry is an update or a deletion.
// Deletions are reserved until settings tombstones exist.
type DiffOperation int32

const (
	DiffOperation_DIFF_OPERATION_UNSPECIFIED DiffOperation = 0
	DiffOperation_DIFF_OPERATION_UPDATE      DiffOperation = 1
	DiffOperation_DIFF_OPERATION_DELETE      DiffOperation = 2
)

var DiffOperation_name = map[int32]string{
	0: "DIFF_OPERATION_UNSPECIFIED",
	1: "DIFF_OPERATION_UPDATE",
	2: "DIFF_OPERATION_DELETE",
}

var DiffOperation_value = map[string]int32{
	"DIFF_OPERATION_UNSPECIFIED": 0,
	"DIFF_OPERATION_UPDATE":      1,
	"DIFF_OPERATION_DELETE":      2,
}

func (x DiffOperation) String() string { return enumName(DiffOperation_name, int32(x)) }

// SyncState reports the account's sync health in GetSyncStatus.
type SyncState int32

const (
	SyncState_SYNC_STATE_UNSPECIFIED SyncState = 0
	SyncState_SYNC_STATE_IDLE        SyncState = 1
	SyncState_SYNC_STATE_SYNCING     SyncState = 2
	SyncState_SYNC_STATE_ERROR       SyncState = 3
)

var SyncState_name = map[int32]string{
	0: "SYNC_STATE_UNSPECIFIED",
	1: "SYNC_STATE_IDLE",
	2: "SYNC_STATE_SYNCING",
	3: "SYNC_STATE_ERROR",
}

var SyncState_value = map[string]int32{
	"SYNC_STATE_UNSPECIFIED": 0,
	"SYNC_STATE_IDLE":        1,
	"SYNC_STATE_SYNCING":     2,
	"SYNC_STATE_ERROR":       3,
}

func (x SyncState) String() string { return enumName(SyncState_name, int32(x)) }

// FileType tags stored blobs by their role on the device.
type FileType int32

const (
	FileType_FILE_TYPE_UNSPECIFIED FileType = 0
	FileType_FILE_TYPE_WALLPAPER   FileType = 1
	FileType_FILE_TYPE_THEME       FileType = 2
	FileType_FILE_TYPE_CONFIG      FileType = 3
	FileType_FILE_TYPE_ICON_PACK   FileType = 4
	FileType_FILE_TYPE_FONT        FileType = 5
	FileType_FILE_TYPE_DOCUMENT    FileType = 6
)

var FileType_name = map[int32]string{
	0: "FILE_TYPE_UNSPECIFIED",
	1: "FILE_TYPE_WALLPAPER",
	2: "FILE_TYPE_THEME",
	3: "FILE_TYPE_CONFIG",
	4: "FILE_TYPE_ICON_PACK",
	5: "FILE_TYPE_FONT",
	6: "FILE_TYPE_DOCUMENT",
}

var FileType_value = map[string]int32{
	"FILE_TYPE_UNSPECIFIED": 0,
	"FILE_TYPE_WALLPAPER":   1,
	"FILE_TYPE_THEME":       2,
	"FILE_TYPE_CONFIG":      3,
	"FILE_TYPE_ICON_PACK":   4,
	"FILE_TYPE_FONT":        5,
	"FILE_TYPE_DOCUMENT":    6,
}

func (x FileType) String() string { return enumName(FileType_name, int32(x)) }

// UrlOperation selects the direction of a presigned URL.
type UrlOperation int32

const (
	UrlOperation_URL_OPERATION_UNSPECIFIED UrlOperation = 0
	UrlOperation_URL_OPERATION_UPLOAD      UrlOperation = 1
	UrlOperation_URL_OPERATION_DOWNLOAD    UrlOperation = 2
)

var UrlOperation_name = map[int32]string{
	0: "URL_OPERATION_UNSPECIFIED",
	1: "URL_OPERATION_UPLOAD",
	2: "URL_OPERATION_DOWNLOAD",
}

var UrlOperation_value = map[string]int32{
	"URL_OPERATION_UNSPECIFIED": 0,
	"URL_OPERATION_UPLOAD":      1,
	"URL_OPERATION_DOWNLOAD":    2,
}

func (x UrlOperation) String() string { return enumName(UrlOperation_name, int32(x)) }

// FamilyRole is an account's role inside a family.
type FamilyRole int32

const (
	FamilyRole_FAMILY_ROLE_UNSPECIFIED FamilyRole = 0
	FamilyRole_FAMILY_ROLE_OWNER       FamilyRole = 1
	FamilyRole_FAMILY_ROLE_ADMIN       FamilyRole = 2
	FamilyRole_FAMILY_ROLE_MEMBER      FamilyRole = 3
)

var FamilyRole_name = map[int32]string{
	0: "FAMILY_ROLE_UNSPECIFIED",
	1: "FAMILY_ROLE_OWNER",
	2: "FAMILY_ROLE_ADMIN",
	3: "FAMILY_ROLE_MEMBER",
}

var FamilyRole_value = map[string]int32{
	"FAMILY_ROLE_UNSPECIFIED": 0,
	"FAMILY_ROLE_OWNER":       1,
	"FAMILY_ROLE_ADMIN":       2,
	"FAMILY_ROLE_MEMBER":      3,
}

func (x FamilyRole) String() string { return enumName(FamilyRole_name, int32(x)) }

// ContentLevel is the age tier content filters enforce for a child.
type ContentLevel int32

const (
	ContentLevel_CONTENT_LEVEL_UNSPECIFIED ContentLevel = 0
	ContentLevel_CONTENT_LEVEL_CHILD       ContentLevel = 1
	ContentLevel_CONTENT_LEVEL_TEEN        ContentLevel = 2
	ContentLevel_CONTENT_LEVEL_ADULT       ContentLevel = 3
)

var ContentLevel_name = map[int32]string{
	0: "CONTENT_LEVEL_UNSPECIFIED",
	1: "CONTENT_LEVEL_CHILD",
	2: "CONTENT_LEVEL_TEEN",
	3: "CONTENT_LEVEL_ADULT",
}

var ContentLevel_value = map[string]int32{
	"CONTENT_LEVEL_UNSPECIFIED": 0,
	"CONTENT_LEVEL_CHILD":       1,
	"CONTENT_LEVEL_TEEN":        2,
	"CONTENT_LEVEL_ADULT":       3,
}

func (x ContentLevel) String() string { return enumName(ContentLevel_name, int32(x)) }

func enumName(names map[int32]string, v int32) string {
	if s, ok := names[v]; ok {
		return s
	}
	return strconv.Itoa(int(v))
}
