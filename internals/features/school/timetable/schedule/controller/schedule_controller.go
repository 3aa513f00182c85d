// file: internals/features/school/timetable/schedule/controller/schedule_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	svc "sekolahku_backend/internals/features/school/timetable/schedule/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

func parseUUIDQuery(c *fiber.Ctx, name string) (uuid.UUID, *fiber.Error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return uuid.Nil, fiber.NewError(http.StatusBadRequest, name+" is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(http.StatusBadRequest, name+" invalid")
	}
	return id, nil
}

func (ctl *ScheduleController) compose(c *fiber.Ctx, teacherID *uuid.UUID) error {
	classDayID, ferr := parseUUIDQuery(c, "class_day_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	sectionID, ferr := parseUUIDQuery(c, "section_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	branchID, ferr := parseUUIDQuery(c, "branch_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	entries, err := svc.ComposeDaySchedule(ctl.DB.WithContext(c.UserContext()), classDayID, sectionID, branchID, teacherID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", entries)
}

/* =========================
   Handlers: satu algoritma, tiga audiens
   ========================= */

// DaySchedule: overview admin; teacher_id opsional sebagai filter tambahan.
func (ctl *ScheduleController) DaySchedule(c *fiber.Ctx) error {
	var teacherID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("teacher_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id invalid")
		}
		teacherID = &id
	}
	return ctl.compose(c, teacherID)
}

// TeacherDaySchedule: slot milik guru yang sedang login saja.
func (ctl *ScheduleController) TeacherDaySchedule(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		// fallback query param (mis. admin membuka view guru)
		raw := strings.TrimSpace(c.Query("teacher_id"))
		if raw == "" {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id is required")
		}
		id, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id invalid")
		}
		teacherID = id
	}
	return ctl.compose(c, &teacherID)
}

// SectionDaySchedule: view murid untuk section-nya sendiri.
func (ctl *ScheduleController) SectionDaySchedule(c *fiber.Ctx) error {
	return ctl.compose(c, nil)
}
