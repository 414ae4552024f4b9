// file: internals/features/academics/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/features/academics/dto"
	"campusiq_backend/internals/features/academics/model"
	userModel "campusiq_backend/internals/features/users/model"
	helper "campusiq_backend/internals/helpers"
	"campusiq_backend/internals/tenancy"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validator: v}
}

/* ============================== SUBJECTS ============================== */

func (ctl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := model.SubjectModel{
		SubjectName: strings.TrimSpace(req.SubjectName),
		SubjectCode: strings.ToUpper(strings.TrimSpace(req.SubjectCode)),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if errors.Is(err, tenancy.ErrMissingTenant) {
			return helper.JsonFromDomainError(c, err, "School tidak ter-resolve")
		}
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Kode subject sudah dipakai di school ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat subject")
	}

	return helper.JsonCreated(c, "Subject berhasil dibuat", m)
}

func (ctl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	var rows []model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.SubjectModel{})).
		Order("subject_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}

/* ============================== ASSIGNMENTS ============================== */

// CreateAssignment: guru harus aktif dan se-school dengan subject & section.
func (ctl *SubjectController) CreateAssignment(c *fiber.Ctx) error {
	var req dto.CreateSubjectAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ctx := c.UserContext()

	var subj model.SubjectModel
	if err := ctl.DB.WithContext(ctx).
		Scopes(tenancy.Scoped(ctx, &model.SubjectModel{})).
		First(&subj, "subject_id = ?", req.SubjectAssignmentSubjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var sec model.SectionModel
	if err := ctl.DB.WithContext(ctx).
		Scopes(tenancy.Scoped(ctx, &model.SectionModel{})).
		First(&sec, "section_id = ?", req.SubjectAssignmentSectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var tch userModel.TeacherProfileModel
	if err := ctl.DB.WithContext(ctx).
		Scopes(tenancy.Scoped(ctx, &userModel.TeacherProfileModel{})).
		First(&tch, "teacher_profile_id = ?", req.SubjectAssignmentTeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !tch.IsVerified() {
		return helper.JsonError(c, fiber.StatusConflict, "Guru belum aktif, tidak bisa di-assign")
	}

	// Semua referensi harus dari school yang sama (relevan untuk super admin
	// yang scope-nya unrestricted).
	if subj.SubjectSchoolID != sec.SectionSchoolID || sec.SectionSchoolID != tch.TeacherProfileSchoolID {
		return helper.JsonError(c, fiber.StatusConflict, "Subject, section, dan guru harus dari school yang sama")
	}

	m := model.SubjectAssignmentModel{
		SubjectAssignmentSchoolID:  sec.SectionSchoolID,
		SubjectAssignmentSubjectID: subj.SubjectID,
		SubjectAssignmentSectionID: sec.SectionID,
		SubjectAssignmentTeacherID: tch.TeacherProfileID,
	}
	if err := ctl.DB.WithContext(ctx).Create(&m).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Subject di section ini sudah punya guru")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat penugasan")
	}

	return helper.JsonCreated(c, "Penugasan guru berhasil dibuat", m)
}

func (ctl *SubjectController) ListAssignments(c *fiber.Ctx) error {
	dbq := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.SubjectAssignmentModel{}))

	if sectionID := strings.TrimSpace(c.Query("section_id")); sectionID != "" {
		sid, err := uuid.Parse(sectionID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id invalid")
		}
		dbq = dbq.Where("subject_assignment_section_id = ?", sid)
	}
	if teacherID := strings.TrimSpace(c.Query("teacher_id")); teacherID != "" {
		tid, err := uuid.Parse(teacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id invalid")
		}
		dbq = dbq.Where("subject_assignment_teacher_id = ?", tid)
	}

	var rows []model.SubjectAssignmentModel
	if err := dbq.Order("subject_assignment_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}

func (ctl *SubjectController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_assignment_id invalid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.SubjectAssignmentModel{})).
		Delete(&model.SubjectAssignmentModel{}, "subject_assignment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus penugasan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
	}
	return helper.JsonOK(c, "Penugasan berhasil dihapus", nil)
}
