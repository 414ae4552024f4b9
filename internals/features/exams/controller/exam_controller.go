// file: internals/features/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusiq_backend/internals/constants"
	academicModel "campusiq_backend/internals/features/academics/model"
	"campusiq_backend/internals/features/exams/dto"
	"campusiq_backend/internals/features/exams/model"
	"campusiq_backend/internals/features/exams/service"
	studentModel "campusiq_backend/internals/features/students/model"
	helper "campusiq_backend/internals/helpers"
	authHelper "campusiq_backend/internals/helpers/auth"
	"campusiq_backend/internals/tenancy"
)

type ExamController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExamController(db *gorm.DB, v *validator.Validate) *ExamController {
	return &ExamController{DB: db, Validator: v}
}

/* ============================== EXAMS ============================== */

func (ctl *ExamController) Create(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	start, err := time.Parse("2006-01-02", req.ExamStartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_start_date invalid")
	}
	end, err := time.Parse("2006-01-02", req.ExamEndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_end_date invalid")
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai sebelum tanggal mulai")
	}

	// Kelas harus terlihat di scope caller; school exam ikut kelasnya.
	var cls academicModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &academicModel.ClassModel{})).
		First(&cls, "class_id = ?", req.ExamClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	m := model.ExamModel{
		ExamSchoolID:  cls.ClassSchoolID,
		ExamName:      strings.TrimSpace(req.ExamName),
		ExamClassID:   cls.ClassID,
		ExamStartDate: start,
		ExamEndDate:   end,
		ExamStatus:    model.ExamStatusDraft,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat exam")
	}

	return helper.JsonCreated(c, "Exam berhasil dibuat", m)
}

func (ctl *ExamController) List(c *fiber.Ctx) error {
	dbq := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.ExamModel{}))

	// Siswa/orang tua hanya melihat exam yang sudah published.
	p := authHelper.PrincipalFromLocals(c)
	if p.Role == constants.RoleStudent || p.Role == constants.RoleParent {
		dbq = dbq.Where("exam_status = ?", model.ExamStatusPublished)
	}

	var rows []model.ExamModel
	if err := dbq.Order("exam_start_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}

// Publish: draft → published, satu arah.
func (ctl *ExamController) Publish(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_id invalid")
	}

	var m model.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.ExamModel{})).
		First(&m, "exam_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if m.IsPublished() {
		return helper.JsonError(c, fiber.StatusConflict, "Exam sudah published")
	}

	m.ExamStatus = model.ExamStatusPublished
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal publish exam")
	}
	return helper.JsonOK(c, "Exam berhasil dipublish", m)
}

/* ============================== RESULTS ============================== */

// BulkEnterResults: entri nilai satu subject. Grade dihitung server-side;
// entri ulang meng-update nilai lama.
func (ctl *ExamController) BulkEnterResults(c *fiber.Ctx) error {
	var req dto.BulkEnterResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var exam model.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.ExamModel{})).
		First(&exam, "exam_id = ?", req.ExamResultExamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if exam.IsPublished() {
		return helper.JsonError(c, fiber.StatusConflict, "Exam sudah published, nilai tidak bisa diubah")
	}

	p := authHelper.PrincipalFromLocals(c)
	rows := make([]model.ExamResultModel, 0, len(req.Items))
	for i := range req.Items {
		if req.Items[i].ExamResultMarksObtained > req.ExamResultMaxMarks {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nilai melebihi nilai maksimum")
		}
		pct := req.Items[i].ExamResultMarksObtained / req.ExamResultMaxMarks * 100
		rows = append(rows, model.ExamResultModel{
			ExamResultSchoolID:      exam.ExamSchoolID,
			ExamResultExamID:        exam.ExamID,
			ExamResultStudentID:     req.Items[i].ExamResultStudentID,
			ExamResultSubjectID:     req.ExamResultSubjectID,
			ExamResultMarksObtained: req.Items[i].ExamResultMarksObtained,
			ExamResultMaxMarks:      req.ExamResultMaxMarks,
			ExamResultGrade:         service.GradeFor(pct),
			ExamResultEnteredBy:     &p.UserID,
		})
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "exam_result_school_id"},
				{Name: "exam_result_exam_id"},
				{Name: "exam_result_student_id"},
				{Name: "exam_result_subject_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"exam_result_marks_obtained", "exam_result_max_marks",
				"exam_result_grade", "exam_result_entered_by", "exam_result_updated_at",
			}),
		}).
		Create(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}

	return helper.JsonOK(c, "Nilai berhasil disimpan", fiber.Map{"saved": len(rows)})
}

/* ============================== REPORT CARD ============================== */

// ReportCard: rekap nilai satu siswa untuk satu exam.
// Siswa/orang tua hanya setelah exam published dan hanya record miliknya.
func (ctl *ExamController) ReportCard(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("exam_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_id invalid")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id invalid")
	}

	var exam model.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.ExamModel{})).
		First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var sp studentModel.StudentProfileModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &studentModel.StudentProfileModel{})).
		First(&sp, "student_profile_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	p := authHelper.PrincipalFromLocals(c)
	if p.Role == constants.RoleStudent || p.Role == constants.RoleParent {
		if !exam.IsPublished() {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
		}
		if !tenancy.CanAccessRecord(p, &sp) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
	}

	var results []model.ExamResultModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.ExamResultModel{})).
		Where("exam_result_exam_id = ?", examID).
		Where("exam_result_student_id = ?", studentID).
		Find(&results).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", service.BuildReportCard(results))
}
