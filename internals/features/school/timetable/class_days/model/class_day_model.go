// file: internals/features/school/timetable/class_days/model/class_day_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ClassDayModel — map ke tabel class_days
   Satu baris = satu hari-ajar (weekday) milik satu cabang.
   ======================================================= */

type ClassDayModel struct {
	// PK
	ClassDayID uuid.UUID `json:"class_day_id" gorm:"type:uuid;primaryKey;column:class_day_id"`

	// Tenant / scope. Unique komposit (branch, weekday): duplikat harus gagal, bukan upsert.
	ClassDayBranchID uuid.UUID `json:"class_day_branch_id" gorm:"type:uuid;not null;column:class_day_branch_id;uniqueIndex:uq_class_days_branch_dow"`

	// ISO day of week: Senin=1 .. Minggu=7
	ClassDayOfWeek int `json:"class_day_of_week" gorm:"type:int;not null;column:class_day_of_week;uniqueIndex:uq_class_days_branch_dow"`

	ClassDayCreatedAt time.Time `json:"class_day_created_at" gorm:"column:class_day_created_at;not null;autoCreateTime"`
	ClassDayUpdatedAt time.Time `json:"class_day_updated_at" gorm:"column:class_day_updated_at;not null;autoUpdateTime"`
}

func (ClassDayModel) TableName() string {
	return "class_days"
}

func (m *ClassDayModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassDayID == uuid.Nil {
		m.ClassDayID = uuid.New()
	}
	return nil
}
