// file: internals/features/school/timetable/time_slots/route/time_slot_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timeSlotController "sekolahku_backend/internals/features/school/timetable/time_slots/controller"
)

/*
Admin routes:

	POST   /api/a/time-slots
	PUT    /api/a/time-slots/:id
	DELETE /api/a/time-slots/:id
*/
func TimeSlotAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := timeSlotController.New(db, validator.New())

	slots := r.Group("/time-slots")
	slots.Post("/", ctl.Create)
	slots.Put("/:id", ctl.Update)
	slots.Delete("/:id", ctl.Delete)
}

/*
User routes: read-only, dipakai UI editor & composer

	GET /api/u/time-slots/by-class-day/:classDayId
*/
func TimeSlotUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := timeSlotController.New(db, validator.New())

	slots := r.Group("/time-slots")
	slots.Get("/by-class-day/:classDayId", ctl.ListByClassDay)
}
