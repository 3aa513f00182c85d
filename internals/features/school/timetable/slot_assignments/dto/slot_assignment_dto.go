// file: internals/features/school/timetable/slot_assignments/dto/slot_assignment_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/slot_assignments/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateSlotAssignmentRequest struct {
	SlotAssignmentClassDayID string `json:"slot_assignment_class_day_id" validate:"required,uuid4"`
	SlotAssignmentTimeSlotID string `json:"slot_assignment_time_slot_id" validate:"required,uuid4"`
	SlotAssignmentClassID    string `json:"slot_assignment_class_id"     validate:"required,uuid4"`
	SlotAssignmentSectionID  string `json:"slot_assignment_section_id"   validate:"required,uuid4"`
	SlotAssignmentSubjectID  string `json:"slot_assignment_subject_id"   validate:"required,uuid4"`
	SlotAssignmentTeacherID  string `json:"slot_assignment_teacher_id"   validate:"required,uuid4"`
	SlotAssignmentKind       string `json:"slot_assignment_kind"         validate:"required,oneof=homeroom subject"`
}

func (r *CreateSlotAssignmentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

func (r *CreateSlotAssignmentRequest) ToModel() (*m.SlotAssignmentModel, error) {
	out := &m.SlotAssignmentModel{
		SlotAssignmentKind: m.SlotAssignmentKind(r.SlotAssignmentKind),
	}
	fields := []struct {
		name string
		src  string
		dst  *uuid.UUID
	}{
		{"slot_assignment_class_day_id", r.SlotAssignmentClassDayID, &out.SlotAssignmentClassDayID},
		{"slot_assignment_time_slot_id", r.SlotAssignmentTimeSlotID, &out.SlotAssignmentTimeSlotID},
		{"slot_assignment_class_id", r.SlotAssignmentClassID, &out.SlotAssignmentClassID},
		{"slot_assignment_section_id", r.SlotAssignmentSectionID, &out.SlotAssignmentSectionID},
		{"slot_assignment_subject_id", r.SlotAssignmentSubjectID, &out.SlotAssignmentSubjectID},
		{"slot_assignment_teacher_id", r.SlotAssignmentTeacherID, &out.SlotAssignmentTeacherID},
	}
	for _, f := range fields {
		id, err := uuid.Parse(strings.TrimSpace(f.src))
		if err != nil {
			return nil, fmt.Errorf("%s invalid: %w", f.name, err)
		}
		*f.dst = id
	}
	return out, nil
}

type PatchSlotAssignmentRequest struct {
	SlotAssignmentClassDayID *string `json:"slot_assignment_class_day_id,omitempty" validate:"omitempty,uuid4"`
	SlotAssignmentTimeSlotID *string `json:"slot_assignment_time_slot_id,omitempty" validate:"omitempty,uuid4"`
	SlotAssignmentClassID    *string `json:"slot_assignment_class_id,omitempty"     validate:"omitempty,uuid4"`
	SlotAssignmentSectionID  *string `json:"slot_assignment_section_id,omitempty"   validate:"omitempty,uuid4"`
	SlotAssignmentSubjectID  *string `json:"slot_assignment_subject_id,omitempty"   validate:"omitempty,uuid4"`
	SlotAssignmentTeacherID  *string `json:"slot_assignment_teacher_id,omitempty"   validate:"omitempty,uuid4"`
	SlotAssignmentKind       *string `json:"slot_assignment_kind,omitempty"         validate:"omitempty,oneof=homeroom subject"`
}

func (r *PatchSlotAssignmentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

func (r *PatchSlotAssignmentRequest) ApplyToModel(model *m.SlotAssignmentModel) error {
	apply := func(name string, src *string, dst *uuid.UUID) error {
		if src == nil {
			return nil
		}
		id, err := uuid.Parse(strings.TrimSpace(*src))
		if err != nil {
			return fmt.Errorf("%s invalid: %w", name, err)
		}
		*dst = id
		return nil
	}
	if err := apply("slot_assignment_class_day_id", r.SlotAssignmentClassDayID, &model.SlotAssignmentClassDayID); err != nil {
		return err
	}
	if err := apply("slot_assignment_time_slot_id", r.SlotAssignmentTimeSlotID, &model.SlotAssignmentTimeSlotID); err != nil {
		return err
	}
	if err := apply("slot_assignment_class_id", r.SlotAssignmentClassID, &model.SlotAssignmentClassID); err != nil {
		return err
	}
	if err := apply("slot_assignment_section_id", r.SlotAssignmentSectionID, &model.SlotAssignmentSectionID); err != nil {
		return err
	}
	if err := apply("slot_assignment_subject_id", r.SlotAssignmentSubjectID, &model.SlotAssignmentSubjectID); err != nil {
		return err
	}
	if err := apply("slot_assignment_teacher_id", r.SlotAssignmentTeacherID, &model.SlotAssignmentTeacherID); err != nil {
		return err
	}
	if r.SlotAssignmentKind != nil {
		kind := m.SlotAssignmentKind(*r.SlotAssignmentKind)
		if !kind.Valid() {
			return fmt.Errorf("slot_assignment_kind invalid: %s", *r.SlotAssignmentKind)
		}
		model.SlotAssignmentKind = kind
	}
	return nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type SlotAssignmentResponse struct {
	SlotAssignmentID         uuid.UUID            `json:"slot_assignment_id"`
	SlotAssignmentClassDayID uuid.UUID            `json:"slot_assignment_class_day_id"`
	SlotAssignmentTimeSlotID uuid.UUID            `json:"slot_assignment_time_slot_id"`
	SlotAssignmentClassID    uuid.UUID            `json:"slot_assignment_class_id"`
	SlotAssignmentSectionID  uuid.UUID            `json:"slot_assignment_section_id"`
	SlotAssignmentSubjectID  uuid.UUID            `json:"slot_assignment_subject_id"`
	SlotAssignmentTeacherID  uuid.UUID            `json:"slot_assignment_teacher_id"`
	SlotAssignmentKind       m.SlotAssignmentKind `json:"slot_assignment_kind"`
	TimeSlotInterval         string               `json:"time_slot_interval,omitempty"` // enrichment dari slot
	ClassDayWeekday          string               `json:"class_day_weekday,omitempty"`  // enrichment dari hari
	SlotAssignmentCreatedAt  time.Time            `json:"slot_assignment_created_at"`
	SlotAssignmentUpdatedAt  time.Time            `json:"slot_assignment_updated_at"`
}

func NewSlotAssignmentResponse(model *m.SlotAssignmentModel, interval, weekday string) SlotAssignmentResponse {
	return SlotAssignmentResponse{
		SlotAssignmentID:         model.SlotAssignmentID,
		SlotAssignmentClassDayID: model.SlotAssignmentClassDayID,
		SlotAssignmentTimeSlotID: model.SlotAssignmentTimeSlotID,
		SlotAssignmentClassID:    model.SlotAssignmentClassID,
		SlotAssignmentSectionID:  model.SlotAssignmentSectionID,
		SlotAssignmentSubjectID:  model.SlotAssignmentSubjectID,
		SlotAssignmentTeacherID:  model.SlotAssignmentTeacherID,
		SlotAssignmentKind:       model.SlotAssignmentKind,
		TimeSlotInterval:         interval,
		ClassDayWeekday:          weekday,
		SlotAssignmentCreatedAt:  model.SlotAssignmentCreatedAt,
		SlotAssignmentUpdatedAt:  model.SlotAssignmentUpdatedAt,
	}
}
