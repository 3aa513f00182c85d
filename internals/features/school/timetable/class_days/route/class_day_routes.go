// file: internals/features/school/timetable/class_days/route/class_day_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classDayController "sekolahku_backend/internals/features/school/timetable/class_days/controller"
)

/*
Admin routes: full CRUD
Contoh mount: ClassDayAdminRoutes(app.Group("/api/a"), db)

	POST   /api/a/class-days
	DELETE /api/a/class-days/:id
*/
func ClassDayAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classDayController.New(db, validator.New())

	days := r.Group("/class-days")
	days.Post("/", ctl.Create)
	days.Delete("/:id", ctl.Delete)
}

/*
User routes: read-only (student/parent/teacher)

	GET /api/u/class-days/list
	GET /api/u/class-days/:id
*/
func ClassDayUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classDayController.New(db, validator.New())

	days := r.Group("/class-days")
	days.Get("/list", ctl.List)
	days.Get("/:id", ctl.GetByID)
}
