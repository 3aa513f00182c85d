// file: internals/features/school/announcements/controller/announcement_controller.go
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

	d "sekolahku_backend/internals/features/school/announcements/dto"
	m "sekolahku_backend/internals/features/school/announcements/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AnnouncementController {
	return &AnnouncementController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create
   ========================= */

func (ctl *AnnouncementController) Create(c *fiber.Ctx) error {
	var req d.CreateAnnouncementRequest
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

	if err := ctl.DB.WithContext(c.UserContext()).Create(model).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "announcement created", d.NewAnnouncementResponse(model))
}

/* =========================
   List (paginated)
   ========================= */

func (ctl *AnnouncementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&m.AnnouncementModel{})
	if branchID := strings.TrimSpace(c.Query("branch_id")); branchID != "" {
		if _, err := uuid.Parse(branchID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "branch_id invalid")
		}
		db = db.Where("announcement_branch_id = ?", branchID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.AnnouncementModel
	if err := db.Order("announcement_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]d.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewAnnouncementResponse(&rows[i]))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(out)
	return helper.JsonList(c, "ok", out, &pagination)
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	var existing m.AnnouncementModel
	if err := db.Where("announcement_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "announcement not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// GORM soft delete → set announcement_deleted_at
	if err := db.Delete(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "announcement deleted", d.NewAnnouncementResponse(&existing))
}
