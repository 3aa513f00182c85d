// file: internals/features/school/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   AnnouncementModel — map ke tabel announcements
   Papan pengumuman per cabang, tampil di dashboard yang sama
   dengan jadwal harian.
   ======================================================= */

type AnnouncementModel struct {
	// PK
	AnnouncementID uuid.UUID `json:"announcement_id" gorm:"type:uuid;primaryKey;column:announcement_id"`

	// Tenant / scope
	AnnouncementBranchID uuid.UUID `json:"announcement_branch_id" gorm:"type:uuid;not null;index;column:announcement_branch_id"`

	AnnouncementTitle string `json:"announcement_title" gorm:"type:text;not null;column:announcement_title"`
	AnnouncementBody  string `json:"announcement_body" gorm:"type:text;not null;column:announcement_body"`

	// Lampiran: array {name,url} sebagai JSONB
	AnnouncementAttachments datatypes.JSON `json:"announcement_attachments,omitempty" gorm:"column:announcement_attachments"`

	AnnouncementCreatedAt time.Time      `json:"announcement_created_at" gorm:"column:announcement_created_at;not null;autoCreateTime"`
	AnnouncementUpdatedAt time.Time      `json:"announcement_updated_at" gorm:"column:announcement_updated_at;not null;autoUpdateTime"`
	AnnouncementDeletedAt gorm.DeletedAt `json:"announcement_deleted_at" gorm:"column:announcement_deleted_at;index"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}

func (m *AnnouncementModel) BeforeCreate(tx *gorm.DB) error {
	if m.AnnouncementID == uuid.Nil {
		m.AnnouncementID = uuid.New()
	}
	return nil
}
