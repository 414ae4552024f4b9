// file: internals/features/academics/controller/class_controller.go
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
	helper "campusiq_backend/internals/helpers"
	"campusiq_backend/internals/tenancy"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{DB: db, Validator: v}
}

/* ============================== CLASSES ============================== */

func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := model.ClassModel{
		ClassName:         strings.TrimSpace(req.ClassName),
		ClassNumericLevel: req.ClassNumericLevel,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if errors.Is(err, tenancy.ErrMissingTenant) {
			return helper.JsonFromDomainError(c, err, "School tidak ter-resolve")
		}
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai di school ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", m)
}

func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	var rows []model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.ClassModel{})).
		Order("class_numeric_level ASC, class_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}

func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id invalid")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.ClassModel{})).
		First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if req.ClassName != nil {
		m.ClassName = strings.TrimSpace(*req.ClassName)
	}
	if req.ClassNumericLevel != nil {
		m.ClassNumericLevel = req.ClassNumericLevel
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update kelas")
	}
	return helper.JsonOK(c, "Kelas berhasil diupdate", m)
}

func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id invalid")
	}

	// Kelas yang masih punya section tidak boleh dihapus.
	var sectionCount int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.SectionModel{}).
		Scopes(tenancy.Scoped(c.UserContext(), &model.SectionModel{})).
		Where("section_class_id = ?", id).
		Count(&sectionCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if sectionCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kelas masih memiliki section aktif")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.ClassModel{})).
		Delete(&model.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonOK(c, "Kelas berhasil dihapus", nil)
}

/* ============================== SECTIONS ============================== */

func (ctl *ClassController) CreateSection(c *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Class harus terlihat dalam scope request (cegah referensi lintas school).
	var cls model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.ClassModel{})).
		First(&cls, "class_id = ?", req.SectionClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	capacity := 40
	if req.SectionCapacity != nil {
		capacity = *req.SectionCapacity
	}

	m := model.SectionModel{
		SectionSchoolID:       cls.ClassSchoolID,
		SectionClassID:        cls.ClassID,
		SectionName:           strings.ToUpper(strings.TrimSpace(req.SectionName)),
		SectionCapacity:       capacity,
		SectionClassTeacherID: req.SectionClassTeacherID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Section dengan nama ini sudah ada di kelas tersebut")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat section")
	}

	return helper.JsonCreated(c, "Section berhasil dibuat", m)
}

func (ctl *ClassController) ListSections(c *fiber.Ctx) error {
	dbq := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.SectionModel{}))

	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		cid, err := uuid.Parse(classID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id invalid")
		}
		dbq = dbq.Where("section_class_id = ?", cid)
	}

	var rows []model.SectionModel
	if err := dbq.Order("section_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}

func (ctl *ClassController) UpdateSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "section_id invalid")
	}

	var req dto.UpdateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.SectionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.SectionModel{})).
		First(&m, "section_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if req.SectionName != nil {
		m.SectionName = strings.ToUpper(strings.TrimSpace(*req.SectionName))
	}
	if req.SectionCapacity != nil {
		m.SectionCapacity = *req.SectionCapacity
	}
	if req.SectionClassTeacherID != nil {
		m.SectionClassTeacherID = req.SectionClassTeacherID
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update section")
	}
	return helper.JsonOK(c, "Section berhasil diupdate", m)
}
