// file: internals/features/attendance/route/attendance_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusiq_backend/internals/constants"
	attendanceCtl "campusiq_backend/internals/features/attendance/controller"
	authMw "campusiq_backend/internals/middlewares/auth"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := attendanceCtl.NewAttendanceController(db, v)

	staffOnly := authMw.OnlyRoles(constants.RoleErrorTeacher("absensi"), constants.StaffRoles...)
	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("absensi staf"), constants.AdminAndAbove...)

	r.Post("/attendance/bulk", staffOnly, ctl.BulkMark)
	r.Get("/attendance/students", staffOnly, ctl.StudentsForMarking)
	r.Get("/attendance/history/:student_id", ctl.StudentHistory)

	r.Post("/attendance/staff", adminOnly, ctl.MarkStaff)
	r.Get("/attendance/staff", adminOnly, ctl.ListStaff)
}
