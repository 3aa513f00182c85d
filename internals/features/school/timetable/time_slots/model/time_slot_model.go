// file: internals/features/school/timetable/time_slots/model/time_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/helpers/clock"
)

/* =======================================================
   Enum kind (instructional | break)
   ======================================================= */

type TimeSlotKind string

const (
	TimeSlotInstructional TimeSlotKind = "instructional"
	TimeSlotBreak         TimeSlotKind = "break"
)

func (k TimeSlotKind) Valid() bool {
	return k == TimeSlotInstructional || k == TimeSlotBreak
}

/* =======================================================
   TimeSlotModel — map ke tabel time_slots
   Interval disimpan sebagai pasangan menit-dari-tengah-malam,
   bukan teks bebas, supaya overlap bisa dibandingkan.
   ======================================================= */

type TimeSlotModel struct {
	// PK
	TimeSlotID uuid.UUID `json:"time_slot_id" gorm:"type:uuid;primaryKey;column:time_slot_id"`

	// Tenant / scope
	TimeSlotBranchID uuid.UUID `json:"time_slot_branch_id" gorm:"type:uuid;not null;index;column:time_slot_branch_id"`

	// Induk hari-ajar
	TimeSlotClassDayID uuid.UUID `json:"time_slot_class_day_id" gorm:"type:uuid;not null;column:time_slot_class_day_id;uniqueIndex:uq_time_slots_day_range"`

	// Range menit: [start, end), end > start
	TimeSlotStartMinutes int `json:"time_slot_start_minutes" gorm:"type:int;not null;column:time_slot_start_minutes;uniqueIndex:uq_time_slots_day_range"`
	TimeSlotEndMinutes   int `json:"time_slot_end_minutes" gorm:"type:int;not null;column:time_slot_end_minutes;uniqueIndex:uq_time_slots_day_range"`

	TimeSlotKind TimeSlotKind `json:"time_slot_kind" gorm:"type:text;not null;column:time_slot_kind"`

	TimeSlotCreatedAt time.Time `json:"time_slot_created_at" gorm:"column:time_slot_created_at;not null;autoCreateTime"`
	TimeSlotUpdatedAt time.Time `json:"time_slot_updated_at" gorm:"column:time_slot_updated_at;not null;autoUpdateTime"`
}

func (TimeSlotModel) TableName() string {
	return "time_slots"
}

func (m *TimeSlotModel) BeforeCreate(tx *gorm.DB) error {
	if m.TimeSlotID == uuid.Nil {
		m.TimeSlotID = uuid.New()
	}
	return nil
}

// Interval merender label "8:00 AM - 9:00 AM" untuk response.
func (m *TimeSlotModel) Interval() string {
	return clock.FormatInterval(m.TimeSlotStartMinutes, m.TimeSlotEndMinutes)
}
