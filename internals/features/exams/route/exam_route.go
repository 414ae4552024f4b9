// file: internals/features/exams/route/exam_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusiq_backend/internals/constants"
	examCtl "campusiq_backend/internals/features/exams/controller"
	authMw "campusiq_backend/internals/middlewares/auth"
)

func ExamRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := examCtl.NewExamController(db, v)

	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("pengelolaan exam"), constants.AdminAndAbove...)
	staffOnly := authMw.OnlyRoles(constants.RoleErrorTeacher("entri nilai"), constants.StaffRoles...)

	r.Get("/exams", ctl.List)
	r.Post("/exams", adminOnly, ctl.Create)
	r.Post("/exams/:id/publish", adminOnly, ctl.Publish)

	r.Post("/exams/results/bulk", staffOnly, ctl.BulkEnterResults)
	r.Get("/exams/:exam_id/report-card/:student_id", ctl.ReportCard)
}
