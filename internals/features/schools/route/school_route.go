// file: internals/features/schools/route/school_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusiq_backend/internals/constants"
	schoolCtl "campusiq_backend/internals/features/schools/controller"
	authMw "campusiq_backend/internals/middlewares/auth"
)

// PublicSchoolRoutes: tanpa auth (directory lintas tenant, field publik saja).
func PublicSchoolRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := schoolCtl.NewSchoolController(db, v)
	r.Get("/schools/directory", ctl.Directory)
}

// SchoolRoutes: butuh auth + tenant scope.
func SchoolRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := schoolCtl.NewSchoolController(db, v)

	r.Get("/schools/:id", ctl.GetByID)
	r.Put("/schools/:id",
		authMw.OnlyRoles(constants.RoleErrorAdmin("update school"), constants.AdminAndAbove...),
		ctl.Update)
	r.Get("/schools/:id/verification-code",
		authMw.OnlyRoles(constants.RoleErrorAdmin("verification code"), constants.AdminAndAbove...),
		ctl.GetVerificationCode)
	r.Post("/schools/:id/regenerate-code",
		authMw.OnlyRoles(constants.RoleErrorAdmin("verification code"), constants.AdminAndAbove...),
		ctl.RegenerateVerificationCode)

	// operasi lifecycle tenant: super admin saja
	r.Post("/schools",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("pembuatan school"), constants.SuperAdminOnly...),
		ctl.Create)
	r.Get("/schools",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("daftar seluruh school"), constants.SuperAdminOnly...),
		ctl.List)
	r.Patch("/schools/:id/status",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("status school"), constants.SuperAdminOnly...),
		ctl.SetStatus)
}
