// file: internals/route/details/timetable_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AnnouncementRoutes "sekolahku_backend/internals/features/school/announcements/route"
	ClassDayRoutes "sekolahku_backend/internals/features/school/timetable/class_days/route"
	ScheduleRoutes "sekolahku_backend/internals/features/school/timetable/schedule/route"
	SlotAssignmentRoutes "sekolahku_backend/internals/features/school/timetable/slot_assignments/route"
	TimeSlotRoutes "sekolahku_backend/internals/features/school/timetable/time_slots/route"
)

/* ===================== USER (PRIVATE) ===================== */
// Endpoint read-only untuk guru/murid/ortu (token user biasa)
func TimetableUserRoutes(r fiber.Router, db *gorm.DB) {
	ClassDayRoutes.ClassDayUserRoutes(r, db)
	TimeSlotRoutes.TimeSlotUserRoutes(r, db)
	SlotAssignmentRoutes.SlotAssignmentUserRoutes(r, db)
	ScheduleRoutes.ScheduleUserRoutes(r, db)
	AnnouncementRoutes.AnnouncementUserRoutes(r, db)
}

/* ===================== ADMIN ===================== */
// Endpoint tulis: khusus admin cabang
func TimetableAdminRoutes(r fiber.Router, db *gorm.DB) {
	ClassDayRoutes.ClassDayAdminRoutes(r, db)
	TimeSlotRoutes.TimeSlotAdminRoutes(r, db)
	SlotAssignmentRoutes.SlotAssignmentAdminRoutes(r, db)
	ScheduleRoutes.ScheduleAdminRoutes(r, db)
	AnnouncementRoutes.AnnouncementAdminRoutes(r, db)
}
