// file: internals/features/school/timetable/slot_assignments/route/slot_assignment_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "sekolahku_backend/internals/features/school/timetable/slot_assignments/controller"
)

/*
Admin routes:

	POST   /api/a/slot-assignments
	PATCH  /api/a/slot-assignments/:id
	DELETE /api/a/slot-assignments/:id
*/
func SlotAssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assignmentController.New(db, validator.New())

	assignments := r.Group("/slot-assignments")
	assignments.Post("/", ctl.Create)
	assignments.Patch("/:id", ctl.Patch)
	assignments.Delete("/:id", ctl.Delete)
}

/*
User routes:

	GET /api/u/slot-assignments/by-teacher?teacher_id=
*/
func SlotAssignmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assignmentController.New(db, validator.New())

	assignments := r.Group("/slot-assignments")
	assignments.Get("/by-teacher", ctl.ListByTeacher)
}
