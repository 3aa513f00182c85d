// file: internals/features/school/announcements/route/announcement_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementController "sekolahku_backend/internals/features/school/announcements/controller"
)

/*
Admin routes:

	POST   /api/a/announcements
	DELETE /api/a/announcements/:id
*/
func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := announcementController.New(db, validator.New())

	ann := r.Group("/announcements")
	ann.Post("/", ctl.Create)
	ann.Delete("/:id", ctl.Delete)
}

/*
User routes:

	GET /api/u/announcements/list?branch_id=&page=&per_page=
*/
func AnnouncementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := announcementController.New(db, validator.New())

	ann := r.Group("/announcements")
	ann.Get("/list", ctl.List)
}
