// file: internals/features/school/timetable/time_slots/controller/time_slot_controller.go
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

	classDayModel "sekolahku_backend/internals/features/school/timetable/class_days/model"
	assignmentModel "sekolahku_backend/internals/features/school/timetable/slot_assignments/model"
	d "sekolahku_backend/internals/features/school/timetable/time_slots/dto"
	m "sekolahku_backend/internals/features/school/timetable/time_slots/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/clock"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimeSlotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TimeSlotController {
	return &TimeSlotController{DB: db, Validate: v}
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
		return helper.JsonError(c, http.StatusConflict, "slot already assigned for this day")
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "slot already assigned for this day")
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "referensi tidak ditemukan (FK violation)")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

// loadClassDay ambil hari-ajar + cek kepemilikan cabang.
func loadClassDay(db *gorm.DB, dayID, branchID uuid.UUID) (*classDayModel.ClassDayModel, *fiber.Error) {
	var day classDayModel.ClassDayModel
	if err := db.Where("class_day_id = ?", dayID).First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "class day not found")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if day.ClassDayBranchID != branchID {
		return nil, fiber.NewError(http.StatusBadRequest, "class day does not belong to the specified branch")
	}
	return &day, nil
}

// checkOverlap menolak slot yang range-nya memotong slot lain di hari yang sama.
// excludeID != Nil dipakai saat update supaya tidak bentrok dengan dirinya sendiri.
func checkOverlap(db *gorm.DB, slot *m.TimeSlotModel, excludeID uuid.UUID) *fiber.Error {
	q := db.Model(&m.TimeSlotModel{}).
		Where("time_slot_class_day_id = ?", slot.TimeSlotClassDayID).
		Where("time_slot_start_minutes < ? AND time_slot_end_minutes > ?",
			slot.TimeSlotEndMinutes, slot.TimeSlotStartMinutes)
	if excludeID != uuid.Nil {
		q = q.Where("time_slot_id <> ?", excludeID)
	}

	var hit m.TimeSlotModel
	err := q.First(&hit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if hit.TimeSlotStartMinutes == slot.TimeSlotStartMinutes && hit.TimeSlotEndMinutes == slot.TimeSlotEndMinutes {
		return fiber.NewError(http.StatusConflict, "slot already assigned for this day")
	}
	return fiber.NewError(http.StatusConflict,
		fmt.Sprintf("time slot overlaps existing slot %s", clock.FormatInterval(hit.TimeSlotStartMinutes, hit.TimeSlotEndMinutes)))
}

/* =========================
   Create
   ========================= */

func (ctl *TimeSlotController) Create(c *fiber.Ctx) error {
	var req d.CreateTimeSlotRequest
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

	db := ctl.DB.WithContext(c.UserContext())

	day, ferr := loadClassDay(db, model.TimeSlotClassDayID, model.TimeSlotBranchID)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	if ferr := checkOverlap(db, model, uuid.Nil); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	if err := db.Create(model).Error; err != nil {
		return writeDBError(c, err)
	}

	return helper.JsonCreated(c, "time slot created",
		d.NewTimeSlotResponse(model, clock.WeekdayLabel(day.ClassDayOfWeek)))
}

/* =========================
   Update (PUT, partial)
   ========================= */

func (ctl *TimeSlotController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	var existing m.TimeSlotModel
	if err := db.Where("time_slot_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "time slot not found")
		}
		return writeDBError(c, err)
	}

	var req d.UpdateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.ApplyToModel(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// Branch/day bisa berubah: validasi ulang kepemilikan pada kombinasi baru.
	day, ferr := loadClassDay(db, existing.TimeSlotClassDayID, existing.TimeSlotBranchID)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	if ferr := checkOverlap(db, &existing, existing.TimeSlotID); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	if err := db.Save(&existing).Error; err != nil {
		return writeDBError(c, err)
	}

	return helper.JsonUpdated(c, "time slot updated",
		d.NewTimeSlotResponse(&existing, clock.WeekdayLabel(day.ClassDayOfWeek)))
}

/* =========================
   ListByClassDay
   ========================= */

func (ctl *TimeSlotController) ListByClassDay(c *fiber.Ctx) error {
	dayID, err := parseUUIDParam(c, "classDayId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	var day classDayModel.ClassDayModel
	if err := db.Where("class_day_id = ?", dayID).First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class day not found")
		}
		return writeDBError(c, err)
	}

	var rows []m.TimeSlotModel
	if err := db.Where("time_slot_class_day_id = ?", dayID).
		Order("time_slot_start_minutes ASC").
		Find(&rows).Error; err != nil {
		return writeDBError(c, err)
	}

	weekday := clock.WeekdayLabel(day.ClassDayOfWeek)
	out := make([]d.TimeSlotResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewTimeSlotResponse(&rows[i], weekday))
	}
	return helper.JsonOK(c, "ok", out)
}

/* =========================
   Delete (RESTRICT)
   ========================= */

func (ctl *TimeSlotController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	var existing m.TimeSlotModel
	if err := db.Where("time_slot_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "time slot not found")
		}
		return writeDBError(c, err)
	}

	var dependents int64
	if err := db.Model(&assignmentModel.SlotAssignmentModel{}).
		Where("slot_assignment_time_slot_id = ?", id).
		Count(&dependents).Error; err != nil {
		return writeDBError(c, err)
	}
	if dependents > 0 {
		return helper.JsonError(c, http.StatusConflict,
			fmt.Sprintf("cannot delete: %d dependent assignments exist", dependents))
	}

	if err := db.Delete(&existing).Error; err != nil {
		return writeDBError(c, err)
	}

	return helper.JsonDeleted(c, "time slot deleted", d.NewTimeSlotResponse(&existing, ""))
}
