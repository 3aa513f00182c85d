// file: internals/features/school/timetable/slot_assignments/model/slot_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Enum kind (homeroom | subject)
   ======================================================= */

type SlotAssignmentKind string

const (
	AssignmentHomeroom SlotAssignmentKind = "homeroom"
	AssignmentSubject  SlotAssignmentKind = "subject"
)

func (k SlotAssignmentKind) Valid() bool {
	return k == AssignmentHomeroom || k == AssignmentSubject
}

/* =======================================================
   SlotAssignmentModel — map ke tabel slot_assignments
   Mengikat (teacher, subject, class, section) ke satu slot instructional.
   class/section/subject/teacher adalah ID terbitan service records
   (di sini tidak ada tabelnya, hanya referensi).
   ======================================================= */

type SlotAssignmentModel struct {
	// PK
	SlotAssignmentID uuid.UUID `json:"slot_assignment_id" gorm:"type:uuid;primaryKey;column:slot_assignment_id"`

	SlotAssignmentClassDayID uuid.UUID `json:"slot_assignment_class_day_id" gorm:"type:uuid;not null;index;column:slot_assignment_class_day_id"`

	// Satu slot maksimal satu assignment.
	SlotAssignmentTimeSlotID uuid.UUID `json:"slot_assignment_time_slot_id" gorm:"type:uuid;not null;uniqueIndex:uq_slot_assignments_slot;column:slot_assignment_time_slot_id"`

	SlotAssignmentClassID   uuid.UUID `json:"slot_assignment_class_id" gorm:"type:uuid;not null;column:slot_assignment_class_id"`
	SlotAssignmentSectionID uuid.UUID `json:"slot_assignment_section_id" gorm:"type:uuid;not null;index;column:slot_assignment_section_id"`
	SlotAssignmentSubjectID uuid.UUID `json:"slot_assignment_subject_id" gorm:"type:uuid;not null;column:slot_assignment_subject_id"`
	SlotAssignmentTeacherID uuid.UUID `json:"slot_assignment_teacher_id" gorm:"type:uuid;not null;index;column:slot_assignment_teacher_id"`

	SlotAssignmentKind SlotAssignmentKind `json:"slot_assignment_kind" gorm:"type:text;not null;column:slot_assignment_kind"`

	SlotAssignmentCreatedAt time.Time `json:"slot_assignment_created_at" gorm:"column:slot_assignment_created_at;not null;autoCreateTime"`
	SlotAssignmentUpdatedAt time.Time `json:"slot_assignment_updated_at" gorm:"column:slot_assignment_updated_at;not null;autoUpdateTime"`
}

func (SlotAssignmentModel) TableName() string {
	return "slot_assignments"
}

func (m *SlotAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.SlotAssignmentID == uuid.Nil {
		m.SlotAssignmentID = uuid.New()
	}
	return nil
}
