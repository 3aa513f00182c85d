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

	m "sekolahku_backend/internals/features/school/timetable/class_days/model"
	slotModel "sekolahku_backend/internals/features/school/timetable/time_slots/model"
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
	if err := db.AutoMigrate(&m.ClassDayModel{}, &slotModel.TimeSlotModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctl := New(db, validator.New())
	app := fiber.New()
	app.Post("/class-days", ctl.Create)
	app.Get("/class-days/list", ctl.List)
	app.Get("/class-days/:id", ctl.GetByID)
	app.Delete("/class-days/:id", ctl.Delete)
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

func TestClassDayCreate(t *testing.T) {
	app, _ := newTestApp(t)
	branchID := uuid.NewString()

	status, body := doJSON(t, app, http.MethodPost, "/class-days", fiber.Map{
		"class_day_branch_id": branchID,
		"class_day_of_week":   1,
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, branchID, data["class_day_branch_id"])
	assert.Equal(t, float64(1), data["class_day_of_week"])
	assert.Equal(t, "Monday", data["class_day_weekday"])
	assert.NotEmpty(t, data["class_day_id"])
}

func TestClassDayCreate_Validation(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing branch", fiber.Map{"class_day_of_week": 1}},
		{"weekday zero", fiber.Map{"class_day_branch_id": uuid.NewString(), "class_day_of_week": 0}},
		{"weekday eight", fiber.Map{"class_day_branch_id": uuid.NewString(), "class_day_of_week": 8}},
		{"branch not uuid", fiber.Map{"class_day_branch_id": "bukan-uuid", "class_day_of_week": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, http.MethodPost, "/class-days", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestClassDayCreate_Duplicate(t *testing.T) {
	app, _ := newTestApp(t)
	payload := fiber.Map{
		"class_day_branch_id": uuid.NewString(),
		"class_day_of_week":   2,
	}

	status, _ := doJSON(t, app, http.MethodPost, "/class-days", payload)
	assert.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/class-days", payload)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error_code"])
	assert.Contains(t, body["message"], "already exists")
}

func TestClassDayList_OrderedAndFiltered(t *testing.T) {
	app, db := newTestApp(t)
	branchA := uuid.New()
	branchB := uuid.New()

	for _, dow := range []int{5, 1, 3} {
		assert.NoError(t, db.Create(&m.ClassDayModel{ClassDayBranchID: branchA, ClassDayOfWeek: dow}).Error)
	}
	assert.NoError(t, db.Create(&m.ClassDayModel{ClassDayBranchID: branchB, ClassDayOfWeek: 2}).Error)

	status, body := doJSON(t, app, http.MethodGet, "/class-days/list?branch_id="+branchA.String(), nil)
	assert.Equal(t, http.StatusOK, status)

	rows := body["data"].([]any)
	assert.Len(t, rows, 3)
	got := make([]float64, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.(map[string]any)["class_day_of_week"].(float64))
	}
	assert.Equal(t, []float64{1, 3, 5}, got)
}

func TestClassDayGetByID(t *testing.T) {
	app, db := newTestApp(t)
	day := m.ClassDayModel{ClassDayBranchID: uuid.New(), ClassDayOfWeek: 7}
	assert.NoError(t, db.Create(&day).Error)

	status, body := doJSON(t, app, http.MethodGet, "/class-days/"+day.ClassDayID.String(), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Sunday", body["data"].(map[string]any)["class_day_weekday"])

	status, body = doJSON(t, app, http.MethodGet, "/class-days/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["error_code"])

	status, _ = doJSON(t, app, http.MethodGet, "/class-days/bukan-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestClassDayDelete(t *testing.T) {
	app, db := newTestApp(t)
	day := m.ClassDayModel{ClassDayBranchID: uuid.New(), ClassDayOfWeek: 4}
	assert.NoError(t, db.Create(&day).Error)

	status, _ := doJSON(t, app, http.MethodDelete, "/class-days/"+day.ClassDayID.String(), nil)
	assert.Equal(t, http.StatusOK, status)

	var count int64
	assert.NoError(t, db.Model(&m.ClassDayModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	status, _ = doJSON(t, app, http.MethodDelete, "/class-days/"+day.ClassDayID.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestClassDayDelete_RestrictWithDependents(t *testing.T) {
	app, db := newTestApp(t)
	day := m.ClassDayModel{ClassDayBranchID: uuid.New(), ClassDayOfWeek: 1}
	assert.NoError(t, db.Create(&day).Error)
	assert.NoError(t, db.Create(&slotModel.TimeSlotModel{
		TimeSlotBranchID:     day.ClassDayBranchID,
		TimeSlotClassDayID:   day.ClassDayID,
		TimeSlotStartMinutes: 480,
		TimeSlotEndMinutes:   540,
		TimeSlotKind:         slotModel.TimeSlotInstructional,
	}).Error)

	status, body := doJSON(t, app, http.MethodDelete, "/class-days/"+day.ClassDayID.String(), nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, body["message"], "1 dependent time slots")

	// baris induk tetap ada
	var count int64
	assert.NoError(t, db.Model(&m.ClassDayModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
