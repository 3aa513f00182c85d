package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	classDayModel "sekolahku_backend/internals/features/school/timetable/class_days/model"
	m "sekolahku_backend/internals/features/school/timetable/slot_assignments/model"
	timeSlotModel "sekolahku_backend/internals/features/school/timetable/time_slots/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&classDayModel.ClassDayModel{},
		&timeSlotModel.TimeSlotModel{},
		&m.SlotAssignmentModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctl := New(db, validator.New())
	app := fiber.New()
	app.Post("/slot-assignments", ctl.Create)
	app.Patch("/slot-assignments/:id", ctl.Patch)
	app.Delete("/slot-assignments/:id", ctl.Delete)
	app.Get("/slot-assignments/by-teacher", ctl.ListByTeacher)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode response %q: %v", raw, err)
		}
	}
	return resp.StatusCode, out
}

type fixture struct {
	day     classDayModel.ClassDayModel
	lesson1 timeSlotModel.TimeSlotModel
	lesson2 timeSlotModel.TimeSlotModel
	pause   timeSlotModel.TimeSlotModel
}

// seedSlots: satu hari dengan dua slot pelajaran berurutan + satu break.
func seedSlots(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{}
	f.day = classDayModel.ClassDayModel{ClassDayBranchID: uuid.New(), ClassDayOfWeek: 1}
	if err := db.Create(&f.day).Error; err != nil {
		t.Fatalf("seed class day: %v", err)
	}
	mk := func(start, end int, kind timeSlotModel.TimeSlotKind) timeSlotModel.TimeSlotModel {
		slot := timeSlotModel.TimeSlotModel{
			TimeSlotBranchID:     f.day.ClassDayBranchID,
			TimeSlotClassDayID:   f.day.ClassDayID,
			TimeSlotStartMinutes: start,
			TimeSlotEndMinutes:   end,
			TimeSlotKind:         kind,
		}
		if err := db.Create(&slot).Error; err != nil {
			t.Fatalf("seed slot: %v", err)
		}
		return slot
	}
	f.lesson1 = mk(480, 540, timeSlotModel.TimeSlotInstructional)
	f.lesson2 = mk(540, 600, timeSlotModel.TimeSlotInstructional)
	f.pause = mk(600, 615, timeSlotModel.TimeSlotBreak)
	return f
}

func assignmentBody(f fixture, slot timeSlotModel.TimeSlotModel) fiber.Map {
	return fiber.Map{
		"slot_assignment_class_day_id": f.day.ClassDayID.String(),
		"slot_assignment_time_slot_id": slot.TimeSlotID.String(),
		"slot_assignment_class_id":     uuid.NewString(),
		"slot_assignment_section_id":   uuid.NewString(),
		"slot_assignment_subject_id":   uuid.NewString(),
		"slot_assignment_teacher_id":   uuid.NewString(),
		"slot_assignment_kind":         "subject",
	}
}

func TestSlotAssignmentCreate(t *testing.T) {
	app, db := newTestApp(t)
	f := seedSlots(t, db)

	status, body := doJSON(t, app, http.MethodPost, "/slot-assignments", assignmentBody(f, f.lesson1))
	assert.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, f.lesson1.TimeSlotID.String(), data["slot_assignment_time_slot_id"])
	assert.Equal(t, "subject", data["slot_assignment_kind"])
}

func TestSlotAssignmentCreate_Validation(t *testing.T) {
	app, db := newTestApp(t)
	f := seedSlots(t, db)

	bad := assignmentBody(f, f.lesson1)
	bad["slot_assignment_kind"] = "pengganti"
	status, _ := doJSON(t, app, http.MethodPost, "/slot-assignments", bad)
	assert.Equal(t, http.StatusBadRequest, status)

	missing := assignmentBody(f, f.lesson1)
	delete(missing, "slot_assignment_teacher_id")
	status, _ = doJSON(t, app, http.MethodPost, "/slot-assignments", missing)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSlotAssignmentCreate_SlotGuards(t *testing.T) {
	app, db := newTestApp(t)
	f := seedSlots(t, db)

	// slot tidak ada
	body := assignmentBody(f, f.lesson1)
	body["slot_assignment_time_slot_id"] = uuid.NewString()
	status, resp := doJSON(t, app, http.MethodPost, "/slot-assignments", body)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, resp["message"], "time slot not found")

	// slot milik class day lain
	otherDay := classDayModel.ClassDayModel{ClassDayBranchID: f.day.ClassDayBranchID, ClassDayOfWeek: 2}
	assert.NoError(t, db.Create(&otherDay).Error)
	body = assignmentBody(f, f.lesson1)
	body["slot_assignment_class_day_id"] = otherDay.ClassDayID.String()
	status, resp = doJSON(t, app, http.MethodPost, "/slot-assignments", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, resp["message"], "does not belong to the specified class day")

	// slot break tidak boleh dipasangi assignment
	status, resp = doJSON(t, app, http.MethodPost, "/slot-assignments", assignmentBody(f, f.pause))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, resp["message"], "only allowed on instructional slots")
}

func TestSlotAssignmentCreate_OnePerSlot(t *testing.T) {
	app, db := newTestApp(t)
	f := seedSlots(t, db)

	status, _ := doJSON(t, app, http.MethodPost, "/slot-assignments", assignmentBody(f, f.lesson1))
	assert.Equal(t, http.StatusCreated, status)

	// slot sama, binding beda → tetap ditolak
	status, resp := doJSON(t, app, http.MethodPost, "/slot-assignments", assignmentBody(f, f.lesson1))
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, resp["message"], "already has an assignment")
}

func TestSlotAssignmentCreate_TeacherDoubleBooking(t *testing.T) {
	app, db := newTestApp(t)
	f := seedSlots(t, db)
	teacherID := uuid.NewString()

	first := assignmentBody(f, f.lesson1)
	first["slot_assignment_teacher_id"] = teacherID
	status, _ := doJSON(t, app, http.MethodPost, "/slot-assignments", first)
	assert.Equal(t, http.StatusCreated, status)

	// slot lain di hari yang sama, range memotong lesson1
	clash := timeSlotModel.TimeSlotModel{
		TimeSlotBranchID:     f.day.ClassDayBranchID,
		TimeSlotClassDayID:   f.day.ClassDayID,
		TimeSlotStartMinutes: 500,
		TimeSlotEndMinutes:   560,
		TimeSlotKind:         timeSlotModel.TimeSlotInstructional,
	}
	assert.NoError(t, db.Create(&clash).Error)

	second := assignmentBody(f, clash)
	second["slot_assignment_teacher_id"] = teacherID
	status, resp := doJSON(t, app, http.MethodPost, "/slot-assignments", second)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, resp["message"], "teacher already booked at 8:00 AM - 9:00 AM")

	// guru sama di slot yang tidak overlap itu sah
	third := assignmentBody(f, f.lesson2)
	third["slot_assignment_teacher_id"] = teacherID
	status, _ = doJSON(t, app, http.MethodPost, "/slot-assignments", third)
	assert.Equal(t, http.StatusCreated, status)
}

func TestSlotAssignmentCreate_SectionDoubleBooking(t *testing.T) {
	app, db := newTestApp(t)
	f := seedSlots(t, db)
	sectionID := uuid.NewString()

	clash := timeSlotModel.TimeSlotModel{
		TimeSlotBranchID:     f.day.ClassDayBranchID,
		TimeSlotClassDayID:   f.day.ClassDayID,
		TimeSlotStartMinutes: 500,
		TimeSlotEndMinutes:   560,
		TimeSlotKind:         timeSlotModel.TimeSlotInstructional,
	}
	assert.NoError(t, db.Create(&clash).Error)

	first := assignmentBody(f, f.lesson1)
	first["slot_assignment_section_id"] = sectionID
	status, _ := doJSON(t, app, http.MethodPost, "/slot-assignments", first)
	assert.Equal(t, http.StatusCreated, status)

	second := assignmentBody(f, clash)
	second["slot_assignment_section_id"] = sectionID
	status, resp := doJSON(t, app, http.MethodPost, "/slot-assignments", second)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, resp["message"], "section already booked at")
}

func TestSlotAssignmentPatch(t *testing.T) {
	app, db := newTestApp(t)
	f := seedSlots(t, db)

	status, body := doJSON(t, app, http.MethodPost, "/slot-assignments", assignmentBody(f, f.lesson1))
	assert.Equal(t, http.StatusCreated, status)
	id := body["data"].(map[string]any)["slot_assignment_id"].(string)

	// pindah ke slot lain yang masih kosong
	status, body = doJSON(t, app, http.MethodPatch, "/slot-assignments/"+id, fiber.Map{
		"slot_assignment_time_slot_id": f.lesson2.TimeSlotID.String(),
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, f.lesson2.TimeSlotID.String(),
		body["data"].(map[string]any)["slot_assignment_time_slot_id"])

	// pindah ke slot break ditolak
	status, body = doJSON(t, app, http.MethodPatch, "/slot-assignments/"+id, fiber.Map{
		"slot_assignment_time_slot_id": f.pause.TimeSlotID.String(),
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["message"], "only allowed on instructional slots")

	// patch tanpa perubahan slot tidak boleh bentrok dengan dirinya sendiri
	status, _ = doJSON(t, app, http.MethodPatch, "/slot-assignments/"+id, fiber.Map{
		"slot_assignment_kind": "homeroom",
	})
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodPatch, "/slot-assignments/"+uuid.NewString(), fiber.Map{
		"slot_assignment_kind": "homeroom",
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSlotAssignmentDelete(t *testing.T) {
	app, db := newTestApp(t)
	f := seedSlots(t, db)

	status, body := doJSON(t, app, http.MethodPost, "/slot-assignments", assignmentBody(f, f.lesson1))
	assert.Equal(t, http.StatusCreated, status)
	id := body["data"].(map[string]any)["slot_assignment_id"].(string)

	status, _ = doJSON(t, app, http.MethodDelete, "/slot-assignments/"+id, nil)
	assert.Equal(t, http.StatusOK, status)

	// slot kembali bebas dipakai
	status, _ = doJSON(t, app, http.MethodPost, "/slot-assignments", assignmentBody(f, f.lesson1))
	assert.Equal(t, http.StatusCreated, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/slot-assignments/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSlotAssignmentListByTeacher(t *testing.T) {
	app, db := newTestApp(t)
	f := seedSlots(t, db)
	teacherID := uuid.NewString()

	for _, slot := range []timeSlotModel.TimeSlotModel{f.lesson2, f.lesson1} {
		body := assignmentBody(f, slot)
		body["slot_assignment_teacher_id"] = teacherID
		status, _ := doJSON(t, app, http.MethodPost, "/slot-assignments", body)
		assert.Equal(t, http.StatusCreated, status)
	}

	status, body := doJSON(t, app, http.MethodGet, "/slot-assignments/by-teacher?teacher_id="+teacherID, nil)
	assert.Equal(t, http.StatusOK, status)
	rows := body["data"].([]any)
	assert.Len(t, rows, 2)
	// diurutkan weekday lalu jam mulai, plus interval & label hari terisi
	first := rows[0].(map[string]any)
	assert.Equal(t, "8:00 AM - 9:00 AM", first["time_slot_interval"])
	assert.Equal(t, "Monday", first["class_day_weekday"])

	// guru tanpa jadwal: 200 dengan list kosong
	status, body = doJSON(t, app, http.MethodGet, "/slot-assignments/by-teacher?teacher_id="+uuid.NewString(), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"].([]any), 0)

	status, _ = doJSON(t, app, http.MethodGet, "/slot-assignments/by-teacher?teacher_id=bukan-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// tanpa query dan tanpa token
	status, _ = doJSON(t, app, http.MethodGet, "/slot-assignments/by-teacher", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
