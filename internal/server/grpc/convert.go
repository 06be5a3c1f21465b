package grpc

import (
	"time"

	pb "github.com/guardianos/guardian-sync/internal/proto"
	"github.com/guardianos/guardian-sync/internal/server/models"
	"github.com/guardianos/guardian-sync/internal/server/services"
)

// Enum values travel as the short lowercase strings stored in the database.

var categoryNames = map[pb.SettingsCategory]string{
	pb.SettingsCategory_SETTINGS_CATEGORY_DESKTOP:  "desktop",
	pb.SettingsCategory_SETTINGS_CATEGORY_PANEL:    "panel",
	pb.SettingsCategory_SETTINGS_CATEGORY_DOCK:     "dock",
	pb.SettingsCategory_SETTINGS_CATEGORY_KEYBOARD: "keyboard",
	pb.SettingsCategory_SETTINGS_CATEGORY_DISPLAY:  "display",
	pb.SettingsCategory_SETTINGS_CATEGORY_POWER:    "power",
	pb.SettingsCategory_SETTINGS_CATEGORY_NETWORK:  "network",
	pb.SettingsCategory_SETTINGS_CATEGORY_APPS:     "apps",
	pb.SettingsCategory_SETTINGS_CATEGORY_THEME:    "theme",
	pb.SettingsCategory_SETTINGS_CATEGORY_GUARDIAN: "guardian",
}

var categoryValues = invert(categoryNames)

var fileTypeNames = map[pb.FileType]string{
	pb.FileType_FILE_TYPE_WALLPAPER: "wallpaper",
	pb.FileType_FILE_TYPE_THEME:     "theme",
	pb.FileType_FILE_TYPE_CONFIG:    "config",
	pb.FileType_FILE_TYPE_ICON_PACK: "icon_pack",
	pb.FileType_FILE_TYPE_FONT:      "font",
	pb.FileType_FILE_TYPE_DOCUMENT:  "document",
}

var fileTypeValues = invert(fileTypeNames)

var roleNames = map[pb.FamilyRole]string{
	pb.FamilyRole_FAMILY_ROLE_OWNER:  models.RoleOwner,
	pb.FamilyRole_FAMILY_ROLE_ADMIN:  models.RoleAdmin,
	pb.FamilyRole_FAMILY_ROLE_MEMBER: models.RoleMember,
}

var roleValues = invert(roleNames)

func invert[E comparable](m map[E]string) map[string]E {
	out := make(map[string]E, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// categoryToString returns "" for unspecified or unknown values.
func categoryToString(c pb.SettingsCategory) string { return categoryNames[c] }

func categoryFromString(s string) pb.SettingsCategory { return categoryValues[s] }

func fileTypeToString(t pb.FileType) string { return fileTypeNames[t] }

func fileTypeFromString(s string) pb.FileType { return fileTypeValues[s] }

func roleFromString(s string) pb.FamilyRole { return roleValues[s] }

// unixOrZero maps the zero time to 0 instead of a negative epoch.
func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func settingsEntryToProto(e *models.SettingsEntry) *pb.SettingsEntry {
	return &pb.SettingsEntry{
		Key:        e.Key,
		Value:      e.Value,
		Category:   categoryFromString(e.Category),
		ModifiedAt: unixOrZero(e.ModifiedAt),
		Checksum:   e.Checksum,
	}
}

func fileMetadataToProto(f *models.FileRecord) *pb.FileMetadata {
	return &pb.FileMetadata{
		FileId:         f.ID,
		Filename:       f.Filename,
		FileType:       fileTypeFromString(f.FileType),
		Size:           f.Size,
		ContentType:    f.ContentType,
		ChecksumSha256: f.Checksum,
		CreatedAt:      unixOrZero(f.CreatedAt),
		UpdatedAt:      unixOrZero(f.UpdatedAt),
	}
}

func familyViewToProto(v *services.FamilyView) *pb.Family {
	out := &pb.Family{
		FamilyId:  v.Family.ID,
		Name:      v.Family.Name,
		OwnerId:   v.Family.OwnerID,
		CreatedAt: unixOrZero(v.Family.CreatedAt),
	}
	for _, m := range v.Members {
		out.Members = append(out.Members, &pb.FamilyMember{
			AccountId:   m.AccountID,
			Email:       m.Email,
			DisplayName: m.DisplayName,
			Role:        roleFromString(m.Role),
			JoinedAt:    unixOrZero(m.JoinedAt),
		})
	}
	for _, c := range v.Children {
		out.Children = append(out.Children, childToProto(c))
	}
	return out
}

func childToProto(c *models.Child) *pb.Child {
	return &pb.Child{
		ChildId:   c.ID,
		Name:      c.Name,
		AvatarUrl: c.AvatarURL,
		Age:       c.Age,
		CreatedAt: unixOrZero(c.CreatedAt),
	}
}
