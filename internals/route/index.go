// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicRoute "campusiq_backend/internals/features/academics/route"
	attendanceRoute "campusiq_backend/internals/features/attendance/route"
	examRoute "campusiq_backend/internals/features/exams/route"
	feeRoute "campusiq_backend/internals/features/fees/route"
	schoolRoute "campusiq_backend/internals/features/schools/route"
	userRoute "campusiq_backend/internals/features/users/route"
	authMw "campusiq_backend/internals/middlewares/auth"
	tenantMw "campusiq_backend/internals/middlewares/tenant"

	studentRoute "campusiq_backend/internals/features/students/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	// ===================== PUBLIC =====================
	// login, pendaftaran guru, directory school, webhook Midtrans
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/v1")
	userRoute.PublicUserRoutes(public, db, v)
	schoolRoute.PublicSchoolRoutes(public, db, v)
	feeRoute.PublicFeeRoutes(public, db, v)

	// ===================== AUTHED (tenant-scoped) =====================
	// Urutan wajib: AuthMiddleware isi locals → BindScope turunkan tenant scope.
	log.Println("[INFO] Setting up AUTHED group (Auth + TenantScope)...")
	authed := app.Group("/api/v1",
		authMw.AuthMiddleware(db),
		tenantMw.BindScope(),
	)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserRoutes(authed, db, v)

	log.Println("[INFO] Mounting School routes...")
	schoolRoute.SchoolRoutes(authed, db, v)

	log.Println("[INFO] Mounting Academic routes...")
	academicRoute.AcademicRoutes(authed, db, v)

	log.Println("[INFO] Mounting Student routes...")
	studentRoute.StudentRoutes(authed, db, v)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(authed, db, v)

	log.Println("[INFO] Mounting Fee routes...")
	feeRoute.FeeRoutes(authed, db, v)

	log.Println("[INFO] Mounting Exam routes...")
	examRoute.ExamRoutes(authed, db, v)
}
