// file: internals/features/school/timetable/time_slots/dto/time_slot_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/time_slots/model"
	"sekolahku_backend/internals/helpers/clock"
)

/* =======================================================
   Request DTOs
   - Jam dikirim sebagai string ("HH:mm" / "h:mm AM") biar simpel dari FE,
     atau satu field interval gabungan ("8:00 AM - 9:00 AM").
   ======================================================= */

type CreateTimeSlotRequest struct {
	TimeSlotBranchID   string `json:"time_slot_branch_id"    validate:"required,uuid4"`
	TimeSlotClassDayID string `json:"time_slot_class_day_id" validate:"required,uuid4"`

	// Pilih salah satu: start+end, atau interval gabungan
	TimeSlotStart    string `json:"time_slot_start,omitempty"`
	TimeSlotEnd      string `json:"time_slot_end,omitempty"`
	TimeSlotInterval string `json:"time_slot_interval,omitempty"`

	TimeSlotKind string `json:"time_slot_kind" validate:"required,oneof=instructional break"`
}

func (r *CreateTimeSlotRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.TimeSlotInterval) == "" &&
		(strings.TrimSpace(r.TimeSlotStart) == "" || strings.TrimSpace(r.TimeSlotEnd) == "") {
		return errors.New("time_slot_start and time_slot_end (or time_slot_interval) are required")
	}
	return nil
}

// ParseRange mengembalikan pasangan menit [start, end) dari request.
func (r *CreateTimeSlotRequest) ParseRange() (int, int, error) {
	return parseRange(r.TimeSlotStart, r.TimeSlotEnd, r.TimeSlotInterval)
}

func (r *CreateTimeSlotRequest) ToModel() (*m.TimeSlotModel, error) {
	branchID, err := uuid.Parse(strings.TrimSpace(r.TimeSlotBranchID))
	if err != nil {
		return nil, fmt.Errorf("time_slot_branch_id invalid: %w", err)
	}
	dayID, err := uuid.Parse(strings.TrimSpace(r.TimeSlotClassDayID))
	if err != nil {
		return nil, fmt.Errorf("time_slot_class_day_id invalid: %w", err)
	}
	start, end, err := r.ParseRange()
	if err != nil {
		return nil, err
	}
	return &m.TimeSlotModel{
		TimeSlotBranchID:     branchID,
		TimeSlotClassDayID:   dayID,
		TimeSlotStartMinutes: start,
		TimeSlotEndMinutes:   end,
		TimeSlotKind:         m.TimeSlotKind(r.TimeSlotKind),
	}, nil
}

type UpdateTimeSlotRequest struct {
	TimeSlotBranchID   *string `json:"time_slot_branch_id,omitempty"    validate:"omitempty,uuid4"`
	TimeSlotClassDayID *string `json:"time_slot_class_day_id,omitempty" validate:"omitempty,uuid4"`
	TimeSlotStart      *string `json:"time_slot_start,omitempty"`
	TimeSlotEnd        *string `json:"time_slot_end,omitempty"`
	TimeSlotInterval   *string `json:"time_slot_interval,omitempty"`
	TimeSlotKind       *string `json:"time_slot_kind,omitempty" validate:"omitempty,oneof=instructional break"`
}

func (r *UpdateTimeSlotRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

// ApplyToModel merge partial ke model existing. Range di-parse ulang jika
// salah satu komponen jam dikirim.
func (r *UpdateTimeSlotRequest) ApplyToModel(model *m.TimeSlotModel) error {
	if r.TimeSlotBranchID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*r.TimeSlotBranchID))
		if err != nil {
			return fmt.Errorf("time_slot_branch_id invalid: %w", err)
		}
		model.TimeSlotBranchID = id
	}
	if r.TimeSlotClassDayID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*r.TimeSlotClassDayID))
		if err != nil {
			return fmt.Errorf("time_slot_class_day_id invalid: %w", err)
		}
		model.TimeSlotClassDayID = id
	}
	if r.TimeSlotInterval != nil {
		start, end, err := clock.ParseInterval(*r.TimeSlotInterval)
		if err != nil {
			return err
		}
		if end <= start {
			return errors.New("time_slot_end must be after time_slot_start")
		}
		model.TimeSlotStartMinutes = start
		model.TimeSlotEndMinutes = end
	} else if r.TimeSlotStart != nil || r.TimeSlotEnd != nil {
		startStr := clock.FormatMinutes(model.TimeSlotStartMinutes)
		endStr := clock.FormatMinutes(model.TimeSlotEndMinutes)
		if r.TimeSlotStart != nil {
			startStr = *r.TimeSlotStart
		}
		if r.TimeSlotEnd != nil {
			endStr = *r.TimeSlotEnd
		}
		start, end, err := parseRange(startStr, endStr, "")
		if err != nil {
			return err
		}
		model.TimeSlotStartMinutes = start
		model.TimeSlotEndMinutes = end
	}
	if r.TimeSlotKind != nil {
		kind := m.TimeSlotKind(*r.TimeSlotKind)
		if !kind.Valid() {
			return fmt.Errorf("time_slot_kind invalid: %s", *r.TimeSlotKind)
		}
		model.TimeSlotKind = kind
	}
	return nil
}

func parseRange(startStr, endStr, interval string) (int, int, error) {
	if strings.TrimSpace(interval) != "" {
		start, end, err := clock.ParseInterval(interval)
		if err != nil {
			return 0, 0, err
		}
		if end <= start {
			return 0, 0, errors.New("time_slot_end must be after time_slot_start")
		}
		return start, end, nil
	}
	start, err := clock.ParseClock(startStr)
	if err != nil {
		return 0, 0, fmt.Errorf("time_slot_start: %w", err)
	}
	end, err := clock.ParseClock(endStr)
	if err != nil {
		return 0, 0, fmt.Errorf("time_slot_end: %w", err)
	}
	if end <= start {
		return 0, 0, errors.New("time_slot_end must be after time_slot_start")
	}
	return start, end, nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type TimeSlotResponse struct {
	TimeSlotID           uuid.UUID      `json:"time_slot_id"`
	TimeSlotBranchID     uuid.UUID      `json:"time_slot_branch_id"`
	TimeSlotClassDayID   uuid.UUID      `json:"time_slot_class_day_id"`
	TimeSlotStartMinutes int            `json:"time_slot_start_minutes"`
	TimeSlotEndMinutes   int            `json:"time_slot_end_minutes"`
	TimeSlotInterval     string         `json:"time_slot_interval"` // "8:00 AM - 9:00 AM"
	TimeSlotKind         m.TimeSlotKind `json:"time_slot_kind"`
	ClassDayWeekday      string         `json:"class_day_weekday,omitempty"` // label hari induk
	TimeSlotCreatedAt    time.Time      `json:"time_slot_created_at"`
	TimeSlotUpdatedAt    time.Time      `json:"time_slot_updated_at"`
}

func NewTimeSlotResponse(model *m.TimeSlotModel, weekday string) TimeSlotResponse {
	return TimeSlotResponse{
		TimeSlotID:           model.TimeSlotID,
		TimeSlotBranchID:     model.TimeSlotBranchID,
		TimeSlotClassDayID:   model.TimeSlotClassDayID,
		TimeSlotStartMinutes: model.TimeSlotStartMinutes,
		TimeSlotEndMinutes:   model.TimeSlotEndMinutes,
		TimeSlotInterval:     model.Interval(),
		TimeSlotKind:         model.TimeSlotKind,
		ClassDayWeekday:      weekday,
		TimeSlotCreatedAt:    model.TimeSlotCreatedAt,
		TimeSlotUpdatedAt:    model.TimeSlotUpdatedAt,
	}
}
