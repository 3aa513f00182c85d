// file: internals/features/school/announcements/dto/announcement_dto.go
package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/school/announcements/model"
)

type Attachment struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url"  validate:"required,url"`
}

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateAnnouncementRequest struct {
	AnnouncementBranchID    string       `json:"announcement_branch_id" validate:"required,uuid4"`
	AnnouncementTitle       string       `json:"announcement_title"     validate:"required,min=3"`
	AnnouncementBody        string       `json:"announcement_body"      validate:"required"`
	AnnouncementAttachments []Attachment `json:"announcement_attachments,omitempty" validate:"omitempty,dive"`
}

func (r *CreateAnnouncementRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

func (r *CreateAnnouncementRequest) ToModel() (*m.AnnouncementModel, error) {
	branchID, err := uuid.Parse(strings.TrimSpace(r.AnnouncementBranchID))
	if err != nil {
		return nil, fmt.Errorf("announcement_branch_id invalid: %w", err)
	}
	out := &m.AnnouncementModel{
		AnnouncementBranchID: branchID,
		AnnouncementTitle:    strings.TrimSpace(r.AnnouncementTitle),
		AnnouncementBody:     r.AnnouncementBody,
	}
	if len(r.AnnouncementAttachments) > 0 {
		raw, err := json.Marshal(r.AnnouncementAttachments)
		if err != nil {
			return nil, fmt.Errorf("announcement_attachments invalid: %w", err)
		}
		out.AnnouncementAttachments = datatypes.JSON(raw)
	}
	return out, nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type AnnouncementResponse struct {
	AnnouncementID          uuid.UUID    `json:"announcement_id"`
	AnnouncementBranchID    uuid.UUID    `json:"announcement_branch_id"`
	AnnouncementTitle       string       `json:"announcement_title"`
	AnnouncementBody        string       `json:"announcement_body"`
	AnnouncementAttachments []Attachment `json:"announcement_attachments,omitempty"`
	AnnouncementCreatedAt   time.Time    `json:"announcement_created_at"`
}

func NewAnnouncementResponse(model *m.AnnouncementModel) AnnouncementResponse {
	out := AnnouncementResponse{
		AnnouncementID:        model.AnnouncementID,
		AnnouncementBranchID:  model.AnnouncementBranchID,
		AnnouncementTitle:     model.AnnouncementTitle,
		AnnouncementBody:      model.AnnouncementBody,
		AnnouncementCreatedAt: model.AnnouncementCreatedAt,
	}
	if len(model.AnnouncementAttachments) > 0 {
		// abaikan error decode: kolom diisi dari DTO yang sudah tervalidasi
		_ = json.Unmarshal(model.AnnouncementAttachments, &out.AnnouncementAttachments)
	}
	return out
}
