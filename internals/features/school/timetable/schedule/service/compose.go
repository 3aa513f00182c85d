// file: internals/features/school/timetable/schedule/service/compose.go
//
// Composer: proyeksi read-only yang menggabungkan slot assignment + slot break
// jadi satu daftar urut kronologis untuk satu (class day, section, branch).
// Satu algoritma dipakai tiga audiens: admin melihat semua, guru dapat filter
// teacher_id, murid melihat section-nya sendiri.
package service

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDayModel "sekolahku_backend/internals/features/school/timetable/class_days/model"
	assignmentModel "sekolahku_backend/internals/features/school/timetable/slot_assignments/model"
	timeSlotModel "sekolahku_backend/internals/features/school/timetable/time_slots/model"
	"sekolahku_backend/internals/helpers/clock"
)

/* =========================
   Entry shape
   ========================= */

const (
	EntryInstructional = "instructional"
	EntryBreak         = "break"
)

// ScheduleEntry adalah bentuk seragam untuk entri instructional maupun break;
// field binding nil untuk entri break.
type ScheduleEntry struct {
	SlotID         uuid.UUID  `json:"slot_id"`
	TimeSlotID     uuid.UUID  `json:"time_slot_id"`
	Kind           string     `json:"kind"`
	Interval       string     `json:"interval"`
	StartMinutes   int        `json:"start_minutes"`
	EndMinutes     int        `json:"end_minutes"`
	ClassID        *uuid.UUID `json:"class_id"`
	SectionID      *uuid.UUID `json:"section_id"`
	SubjectID      *uuid.UUID `json:"subject_id"`
	TeacherID      *uuid.UUID `json:"teacher_id"`
	AssignmentKind *string    `json:"assignment_kind"`
}

type assignmentRow struct {
	assignmentModel.SlotAssignmentModel
	TimeSlotStartMinutes int `gorm:"column:time_slot_start_minutes"`
	TimeSlotEndMinutes   int `gorm:"column:time_slot_end_minutes"`
}

/* =========================
   Compose
   ========================= */

// ComposeDaySchedule mengembalikan jadwal harian terurut untuk satu section.
// teacherID != nil mempersempit langkah fetch assignment (view guru).
// Hasil kosong itu valid ("belum ada jadwal"), bukan error.
func ComposeDaySchedule(db *gorm.DB, classDayID, sectionID, branchID uuid.UUID, teacherID *uuid.UUID) ([]ScheduleEntry, error) {
	var day classDayModel.ClassDayModel
	if err := db.Where("class_day_id = ?", classDayID).First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "class day not found")
		}
		return nil, err
	}

	// Cek konsistensi lintas-entitas, pengganti FK constraint antar service.
	if day.ClassDayBranchID != branchID {
		return nil, fiber.NewError(http.StatusBadRequest, "class day does not belong to the specified branch")
	}

	q := db.Model(&assignmentModel.SlotAssignmentModel{}).
		Select("slot_assignments.*, time_slots.time_slot_start_minutes, time_slots.time_slot_end_minutes").
		Joins("JOIN time_slots ON time_slots.time_slot_id = slot_assignments.slot_assignment_time_slot_id").
		Where("slot_assignments.slot_assignment_class_day_id = ? AND slot_assignments.slot_assignment_section_id = ?",
			classDayID, sectionID)
	if teacherID != nil {
		q = q.Where("slot_assignments.slot_assignment_teacher_id = ?", *teacherID)
	}
	var assignments []assignmentRow
	if err := q.Find(&assignments).Error; err != nil {
		return nil, err
	}

	var breaks []timeSlotModel.TimeSlotModel
	if err := db.
		Where("time_slot_class_day_id = ? AND time_slot_branch_id = ? AND time_slot_kind = ?",
			classDayID, branchID, timeSlotModel.TimeSlotBreak).
		Find(&breaks).Error; err != nil {
		return nil, err
	}

	return mergeEntries(assignments, breaks), nil
}

// mergeEntries memetakan dua sumber ke bentuk seragam lalu sort stabil
// ascending by start-minute (tie mempertahankan urutan insert).
func mergeEntries(assignments []assignmentRow, breaks []timeSlotModel.TimeSlotModel) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(assignments)+len(breaks))

	for i := range assignments {
		a := &assignments[i]
		kind := string(a.SlotAssignmentKind)
		entries = append(entries, ScheduleEntry{
			SlotID:         a.SlotAssignmentID,
			TimeSlotID:     a.SlotAssignmentTimeSlotID,
			Kind:           EntryInstructional,
			Interval:       clock.FormatInterval(a.TimeSlotStartMinutes, a.TimeSlotEndMinutes),
			StartMinutes:   a.TimeSlotStartMinutes,
			EndMinutes:     a.TimeSlotEndMinutes,
			ClassID:        &a.SlotAssignmentClassID,
			SectionID:      &a.SlotAssignmentSectionID,
			SubjectID:      &a.SlotAssignmentSubjectID,
			TeacherID:      &a.SlotAssignmentTeacherID,
			AssignmentKind: &kind,
		})
	}

	for i := range breaks {
		b := &breaks[i]
		entries = append(entries, ScheduleEntry{
			SlotID:       b.TimeSlotID, // break tidak punya assignment, slot_id = time_slot_id
			TimeSlotID:   b.TimeSlotID,
			Kind:         EntryBreak,
			Interval:     b.Interval(),
			StartMinutes: b.TimeSlotStartMinutes,
			EndMinutes:   b.TimeSlotEndMinutes,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartMinutes < entries[j].StartMinutes
	})
	return entries
}
