// file: internals/features/users/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusiq_backend/internals/constants"
	userCtl "campusiq_backend/internals/features/users/controller"
	"campusiq_backend/internals/middlewares"
	authMw "campusiq_backend/internals/middlewares/auth"
)

// PublicUserRoutes: login + pendaftaran mandiri guru, tanpa auth.
func PublicUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := userCtl.NewAuthController(db, v)

	r.Post("/auth/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Post("/auth/login/google", middlewares.LoginRateLimiter(), ctl.GoogleLogin)
	r.Post("/auth/register-teacher", middlewares.RegisterRateLimiter(), ctl.RegisterTeacher)
}

// UserRoutes: butuh auth + tenant scope.
func UserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	authCtl := userCtl.NewAuthController(db, v)
	teacherCtl := userCtl.NewTeacherController(db, v)

	r.Post("/auth/logout", authCtl.Logout)
	r.Get("/auth/me", authCtl.Me)

	r.Get("/teachers",
		authMw.OnlyRoles(constants.RoleErrorTeacher("daftar guru"), constants.StaffRoles...),
		teacherCtl.List)
	r.Get("/teachers/pending",
		authMw.OnlyRoles(constants.RoleErrorAdmin("approval guru"), constants.AdminAndAbove...),
		teacherCtl.Pending)
	r.Post("/teachers",
		authMw.OnlyRoles(constants.RoleErrorAdmin("pembuatan guru"), constants.AdminAndAbove...),
		teacherCtl.Create)
	r.Get("/teachers/:id", teacherCtl.GetByID)
	r.Put("/teachers/:id",
		authMw.OnlyRoles(constants.RoleErrorAdmin("update guru"), constants.AdminAndAbove...),
		teacherCtl.Update)
	r.Post("/teachers/:id/approve",
		authMw.OnlyRoles(constants.RoleErrorAdmin("approval guru"), constants.AdminAndAbove...),
		teacherCtl.Approve)
	r.Post("/teachers/:id/reject",
		authMw.OnlyRoles(constants.RoleErrorAdmin("approval guru"), constants.AdminAndAbove...),
		teacherCtl.Reject)
}
