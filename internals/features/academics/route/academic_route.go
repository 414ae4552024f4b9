// file: internals/features/academics/route/academic_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusiq_backend/internals/constants"
	academicCtl "campusiq_backend/internals/features/academics/controller"
	authMw "campusiq_backend/internals/middlewares/auth"
)

// AcademicRoutes: struktur akademik school (kelas, section, subject, jadwal).
// Baca untuk semua staf; tulis hanya admin.
func AcademicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	classCtl := academicCtl.NewClassController(db, v)
	subjectCtl := academicCtl.NewSubjectController(db, v)
	ttCtl := academicCtl.NewTimetableController(db, v)

	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("pengelolaan akademik"), constants.AdminAndAbove...)

	r.Get("/classes", classCtl.ListClasses)
	r.Post("/classes", adminOnly, classCtl.CreateClass)
	r.Put("/classes/:id", adminOnly, classCtl.UpdateClass)
	r.Delete("/classes/:id", adminOnly, classCtl.DeleteClass)

	r.Get("/sections", classCtl.ListSections)
	r.Post("/sections", adminOnly, classCtl.CreateSection)
	r.Put("/sections/:id", adminOnly, classCtl.UpdateSection)

	r.Get("/subjects", subjectCtl.ListSubjects)
	r.Post("/subjects", adminOnly, subjectCtl.CreateSubject)

	r.Get("/subject-assignments", subjectCtl.ListAssignments)
	r.Post("/subject-assignments", adminOnly, subjectCtl.CreateAssignment)
	r.Delete("/subject-assignments/:id", adminOnly, subjectCtl.DeleteAssignment)

	r.Get("/periods", ttCtl.ListPeriods)
	r.Post("/periods", adminOnly, ttCtl.CreatePeriod)

	r.Post("/timetable", adminOnly, ttCtl.CreateEntry)
	r.Get("/timetable/section/:section_id", ttCtl.SectionTimetable)
	r.Get("/timetable/teacher/:teacher_id", ttCtl.TeacherTimetable)
	r.Delete("/timetable/:id", adminOnly, ttCtl.DeleteEntry)
}
