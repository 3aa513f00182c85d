// file: internals/features/school/timetable/class_days/dto/class_day_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/class_days/model"
	"sekolahku_backend/internals/helpers/clock"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateClassDayRequest struct {
	ClassDayBranchID string `json:"class_day_branch_id" validate:"required,uuid4"`
	ClassDayOfWeek   int    `json:"class_day_of_week"   validate:"required,gte=1,lte=7"`
}

func (r *CreateClassDayRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

func (r *CreateClassDayRequest) ToModel() (*m.ClassDayModel, error) {
	branchID, err := uuid.Parse(strings.TrimSpace(r.ClassDayBranchID))
	if err != nil {
		return nil, fmt.Errorf("class_day_branch_id invalid: %w", err)
	}
	return &m.ClassDayModel{
		ClassDayBranchID: branchID,
		ClassDayOfWeek:   r.ClassDayOfWeek,
	}, nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type ClassDayResponse struct {
	ClassDayID        uuid.UUID `json:"class_day_id"`
	ClassDayBranchID  uuid.UUID `json:"class_day_branch_id"`
	ClassDayOfWeek    int       `json:"class_day_of_week"`
	ClassDayWeekday   string    `json:"class_day_weekday"` // label, mis. "Monday"
	ClassDayCreatedAt time.Time `json:"class_day_created_at"`
	ClassDayUpdatedAt time.Time `json:"class_day_updated_at"`
}

func NewClassDayResponse(model *m.ClassDayModel) ClassDayResponse {
	return ClassDayResponse{
		ClassDayID:        model.ClassDayID,
		ClassDayBranchID:  model.ClassDayBranchID,
		ClassDayOfWeek:    model.ClassDayOfWeek,
		ClassDayWeekday:   clock.WeekdayLabel(model.ClassDayOfWeek),
		ClassDayCreatedAt: model.ClassDayCreatedAt,
		ClassDayUpdatedAt: model.ClassDayUpdatedAt,
	}
}
