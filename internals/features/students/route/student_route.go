// file: internals/features/students/route/student_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusiq_backend/internals/constants"
	studentCtl "campusiq_backend/internals/features/students/controller"
	authMw "campusiq_backend/internals/middlewares/auth"
)

func StudentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	sCtl := studentCtl.NewStudentController(db, v)
	pCtl := studentCtl.NewParentController(db, v)

	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("pengelolaan siswa"), constants.AdminAndAbove...)
	staffOnly := authMw.OnlyRoles(constants.RoleErrorTeacher("data siswa"), constants.StaffRoles...)

	r.Get("/students", staffOnly, sCtl.List)
	r.Post("/students", adminOnly, sCtl.Create)
	r.Get("/students/:id", sCtl.GetByID)
	r.Put("/students/:id", adminOnly, sCtl.Update)
	r.Post("/students/:id/transfer", adminOnly, sCtl.Transfer)
	r.Patch("/students/:id/status", adminOnly, sCtl.SetStatus)

	r.Get("/parents", staffOnly, pCtl.List)
	r.Post("/parents", adminOnly, pCtl.Create)
}
