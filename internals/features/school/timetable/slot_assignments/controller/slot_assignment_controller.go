// file: internals/features/school/timetable/slot_assignments/controller/slot_assignment_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/timetable/slot_assignments/dto"
	m "sekolahku_backend/internals/features/school/timetable/slot_assignments/model"
	timeSlotModel "sekolahku_backend/internals/features/school/timetable/time_slots/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/clock"
)

/* =========================
   Controller & Constructor
   ========================= */

type SlotAssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SlotAssignmentController {
	return &SlotAssignmentController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writeDBError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return helper.JsonError(c, http.StatusConflict, "time slot already has an assignment")
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "time slot already has an assignment")
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "referensi tidak ditemukan (FK violation)")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

// validateAssignment menjalankan cek invariant sebelum insert/update:
// (a) slot ada, milik class day yang sama, dan instructional;
// (b) slot belum dipakai assignment lain;
// (c) guru & section tidak double-book pada range yang overlap di hari itu.
// Dipanggil di dalam transaction supaya check-then-insert tidak race
// (unique index di storage tetap penjaga terakhir).
func validateAssignment(tx *gorm.DB, a *m.SlotAssignmentModel, excludeID uuid.UUID) *fiber.Error {
	var slot timeSlotModel.TimeSlotModel
	if err := tx.Where("time_slot_id = ?", a.SlotAssignmentTimeSlotID).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(http.StatusNotFound, "time slot not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if slot.TimeSlotClassDayID != a.SlotAssignmentClassDayID {
		return fiber.NewError(http.StatusBadRequest, "time slot does not belong to the specified class day")
	}
	if slot.TimeSlotKind != timeSlotModel.TimeSlotInstructional {
		return fiber.NewError(http.StatusBadRequest, "assignments are only allowed on instructional slots")
	}

	// (b) satu slot satu assignment
	dupQ := tx.Model(&m.SlotAssignmentModel{}).
		Where("slot_assignment_time_slot_id = ?", a.SlotAssignmentTimeSlotID)
	if excludeID != uuid.Nil {
		dupQ = dupQ.Where("slot_assignment_id <> ?", excludeID)
	}
	var dup int64
	if err := dupQ.Count(&dup).Error; err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return fiber.NewError(http.StatusConflict, "time slot already has an assignment")
	}

	// (c) double-booking guru / section pada range yang overlap di hari yang sama
	overlapQ := tx.Model(&m.SlotAssignmentModel{}).
		Select("slot_assignments.slot_assignment_teacher_id, slot_assignments.slot_assignment_section_id, time_slots.time_slot_start_minutes, time_slots.time_slot_end_minutes").
		Joins("JOIN time_slots ON time_slots.time_slot_id = slot_assignments.slot_assignment_time_slot_id").
		Where("slot_assignments.slot_assignment_class_day_id = ?", a.SlotAssignmentClassDayID).
		Where("(slot_assignments.slot_assignment_teacher_id = ? OR slot_assignments.slot_assignment_section_id = ?)",
			a.SlotAssignmentTeacherID, a.SlotAssignmentSectionID).
		Where("time_slots.time_slot_start_minutes < ? AND time_slots.time_slot_end_minutes > ?",
			slot.TimeSlotEndMinutes, slot.TimeSlotStartMinutes)
	if excludeID != uuid.Nil {
		overlapQ = overlapQ.Where("slot_assignments.slot_assignment_id <> ?", excludeID)
	}

	var hit struct {
		SlotAssignmentTeacherID uuid.UUID
		SlotAssignmentSectionID uuid.UUID
		TimeSlotStartMinutes    int
		TimeSlotEndMinutes      int
	}
	err := overlapQ.Take(&hit).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if err == nil {
		dimension := "section"
		if hit.SlotAssignmentTeacherID == a.SlotAssignmentTeacherID {
			dimension = "teacher"
		}
		return fiber.NewError(http.StatusConflict,
			fmt.Sprintf("%s already booked at %s", dimension,
				clock.FormatInterval(hit.TimeSlotStartMinutes, hit.TimeSlotEndMinutes)))
	}

	return nil
}

/* =========================
   Create
   ========================= */

func (ctl *SlotAssignmentController) Create(c *fiber.Ctx) error {
	var req d.CreateSlotAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	model, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if ferr := validateAssignment(tx, model, uuid.Nil); ferr != nil {
			return ferr
		}
		return tx.Create(model).Error
	}); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return writeDBError(c, err)
	}

	return helper.JsonCreated(c, "slot assignment created", d.NewSlotAssignmentResponse(model, "", ""))
}

/* =========================
   Patch (partial merge)
   ========================= */

func (ctl *SlotAssignmentController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchSlotAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.SlotAssignmentModel
	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Where("slot_assignment_id = ?", id).First(&existing).Error; er != nil {
			if errors.Is(er, gorm.ErrRecordNotFound) {
				return fiber.NewError(http.StatusNotFound, "slot assignment not found")
			}
			return er
		}
		if er := req.ApplyToModel(&existing); er != nil {
			return fiber.NewError(http.StatusBadRequest, er.Error())
		}
		if ferr := validateAssignment(tx, &existing, existing.SlotAssignmentID); ferr != nil {
			return ferr
		}
		return tx.Save(&existing).Error
	}); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return writeDBError(c, err)
	}

	return helper.JsonUpdated(c, "slot assignment updated", d.NewSlotAssignmentResponse(&existing, "", ""))
}

/* =========================
   Delete
   ========================= */

func (ctl *SlotAssignmentController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	var existing m.SlotAssignmentModel
	if err := db.Where("slot_assignment_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "slot assignment not found")
		}
		return writeDBError(c, err)
	}

	if err := db.Delete(&existing).Error; err != nil {
		return writeDBError(c, err)
	}

	return helper.JsonDeleted(c, "slot assignment deleted", d.NewSlotAssignmentResponse(&existing, "", ""))
}

/* =========================
   ListByTeacher
   ========================= */

type teacherRow struct {
	m.SlotAssignmentModel
	TimeSlotStartMinutes int `gorm:"column:time_slot_start_minutes"`
	TimeSlotEndMinutes   int `gorm:"column:time_slot_end_minutes"`
	ClassDayOfWeek       int `gorm:"column:class_day_of_week"`
}

// ListByTeacher membangun view mingguan personal seorang guru.
// Guru tanpa query param pakai teacher_id dari token.
func (ctl *SlotAssignmentController) ListByTeacher(c *fiber.Ctx) error {
	teacherIDStr := strings.TrimSpace(c.Query("teacher_id"))
	var teacherID uuid.UUID
	if teacherIDStr != "" {
		id, err := uuid.Parse(teacherIDStr)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id invalid")
		}
		teacherID = id
	} else {
		id, err := helperAuth.GetTeacherIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id is required")
		}
		teacherID = id
	}

	var rows []teacherRow
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.SlotAssignmentModel{}).
		Select("slot_assignments.*, time_slots.time_slot_start_minutes, time_slots.time_slot_end_minutes, class_days.class_day_of_week").
		Joins("JOIN time_slots ON time_slots.time_slot_id = slot_assignments.slot_assignment_time_slot_id").
		Joins("JOIN class_days ON class_days.class_day_id = slot_assignments.slot_assignment_class_day_id").
		Where("slot_assignments.slot_assignment_teacher_id = ?", teacherID).
		Order("class_days.class_day_of_week ASC, time_slots.time_slot_start_minutes ASC").
		Find(&rows).Error; err != nil {
		return writeDBError(c, err)
	}

	// list kosong tetap 200, bukan 404
	out := make([]d.SlotAssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewSlotAssignmentResponse(
			&rows[i].SlotAssignmentModel,
			clock.FormatInterval(rows[i].TimeSlotStartMinutes, rows[i].TimeSlotEndMinutes),
			clock.WeekdayLabel(rows[i].ClassDayOfWeek),
		))
	}
	return helper.JsonOK(c, "ok", out)
}
