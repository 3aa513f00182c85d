// file: internals/features/school/timetable/schedule/route/schedule_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "sekolahku_backend/internals/features/school/timetable/schedule/controller"
)

/*
Admin routes:

	GET /api/a/day-schedule?class_day_id=&section_id=&branch_id=[&teacher_id=]
*/
func ScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scheduleController.New(db)

	r.Get("/day-schedule", ctl.DaySchedule)
}

/*
User routes:

	GET /api/u/day-schedule/teacher?class_day_id=&section_id=&branch_id=
	GET /api/u/day-schedule/section?class_day_id=&section_id=&branch_id=
*/
func ScheduleUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scheduleController.New(db)

	schedule := r.Group("/day-schedule")
	schedule.Get("/teacher", ctl.TeacherDaySchedule)
	schedule.Get("/section", ctl.SectionDaySchedule)
}
