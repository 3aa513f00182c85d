// file: internals/features/school/timetable/class_days/controller/class_day_controller.go
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

	d "sekolahku_backend/internals/features/school/timetable/class_days/dto"
	m "sekolahku_backend/internals/features/school/timetable/class_days/model"
	slotModel "sekolahku_backend/internals/features/school/timetable/time_slots/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassDayController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassDayController {
	return &ClassDayController{DB: db, Validate: v}
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

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writeDBError(c *fiber.Ctx, err error) error {
	// 23505 = unique_violation, 23503 = foreign_key_violation
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return helper.JsonError(c, http.StatusConflict, "class day already exists for this branch and weekday")
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "class day already exists for this branch and weekday")
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "referensi tidak ditemukan (FK violation)")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

/* =========================
   List
   ========================= */

func (ctl *ClassDayController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext()).Model(&m.ClassDayModel{})

	if branchID := strings.TrimSpace(c.Query("branch_id")); branchID != "" {
		if _, err := uuid.Parse(branchID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "branch_id invalid")
		}
		db = db.Where("class_day_branch_id = ?", branchID)
	}

	var rows []m.ClassDayModel
	// urut weekday supaya tampilan stabil
	if err := db.Order("class_day_of_week ASC").Find(&rows).Error; err != nil {
		return writeDBError(c, err)
	}

	out := make([]d.ClassDayResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewClassDayResponse(&rows[i]))
	}
	return helper.JsonOK(c, "ok", out)
}

/* =========================
   GetByID
   ========================= */

func (ctl *ClassDayController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.ClassDayModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_day_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class day not found")
		}
		return writeDBError(c, err)
	}

	return helper.JsonOK(c, "ok", d.NewClassDayResponse(&row))
}

/* =========================
   Create
   ========================= */

func (ctl *ClassDayController) Create(c *fiber.Ctx) error {
	var req d.CreateClassDayRequest
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

	// Fast-fail duplikat sebelum kena unique index (pesan lebih ramah).
	// Constraint di storage tetap jadi penjaga terakhir untuk race check-then-insert.
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.ClassDayModel{}).
		Where("class_day_branch_id = ? AND class_day_of_week = ?", model.ClassDayBranchID, model.ClassDayOfWeek).
		Count(&count).Error; err != nil {
		return writeDBError(c, err)
	}
	if count > 0 {
		return helper.JsonError(c, http.StatusConflict, "class day already exists for this branch and weekday")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(model).Error; err != nil {
		return writeDBError(c, err)
	}

	return helper.JsonCreated(c, "class day created", d.NewClassDayResponse(model))
}

/* =========================
   Delete (RESTRICT)
   ========================= */

func (ctl *ClassDayController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassDayModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_day_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class day not found")
		}
		return writeDBError(c, err)
	}

	// Guard dependen: jangan pernah orphan time slot di bawahnya.
	var dependents int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&slotModel.TimeSlotModel{}).
		Where("time_slot_class_day_id = ?", id).
		Count(&dependents).Error; err != nil {
		return writeDBError(c, err)
	}
	if dependents > 0 {
		return helper.JsonError(c, http.StatusConflict,
			fmt.Sprintf("cannot delete: %d dependent time slots exist", dependents))
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&existing).Error; err != nil {
		return writeDBError(c, err)
	}

	return helper.JsonDeleted(c, "class day deleted", d.NewClassDayResponse(&existing))
}
