// file: internals/features/schools/controller/school_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/features/schools/dto"
	mModel "campusiq_backend/internals/features/schools/model"
	helper "campusiq_backend/internals/helpers"
	authHelper "campusiq_backend/internals/helpers/auth"
	"campusiq_backend/internals/tenancy"
)

type SchoolController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSchoolController(db *gorm.DB, v *validator.Validate) *SchoolController {
	return &SchoolController{DB: db, Validator: v}
}

/* ============================== CREATE (super admin) ============================== */

func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := mModel.SchoolModel{
		SchoolName:        strings.TrimSpace(req.SchoolName),
		SchoolCode:        strings.ToUpper(strings.TrimSpace(req.SchoolCode)),
		SchoolAddress:     req.SchoolAddress,
		SchoolCity:        req.SchoolCity,
		SchoolState:       req.SchoolState,
		SchoolPincode:     req.SchoolPincode,
		SchoolEmail:       req.SchoolEmail,
		SchoolPhone:       req.SchoolPhone,
		SchoolWebsite:     req.SchoolWebsite,
		SchoolAffiliation: req.SchoolAffiliation,
		SchoolStatus:      mModel.SchoolStatusActive,
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Kode school sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat school")
	}

	return helper.JsonCreated(c, "School berhasil dibuat", dto.NewSchoolResponse(&m))
}

/* ============================== LIST (super admin) ============================== */

func (ctl *SchoolController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	dbq := tenancy.AcrossSchools(
		ctl.DB.WithContext(c.UserContext()).Model(&mModel.SchoolModel{}),
	)

	if st := strings.TrimSpace(c.Query("status")); st != "" {
		dbq = dbq.Where("school_status = ?", st)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where("LOWER(school_name) LIKE ? OR LOWER(school_code) LIKE ?", like, like)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []mModel.SchoolModel
	if err := dbq.Order("school_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	resp := make([]*dto.SchoolResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewSchoolResponse(&rows[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"list":       resp,
		"pagination": helper.BuildPagination(total, p, len(resp)),
	})
}

/* ============================== DETAIL ============================== */

// GetByID: super admin bebas; member school hanya school-nya sendiri.
// School lain disajikan sebagai not-found, bukan forbidden.
func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_id invalid")
	}

	sc := tenancy.ScopeFromContext(c.UserContext())
	if !sc.IsUnrestricted() {
		own, ok := sc.SchoolID()
		if !ok || own != id {
			return helper.JsonError(c, fiber.StatusNotFound, "School tidak ditemukan")
		}
	}

	var m mModel.SchoolModel
	if err := tenancy.AcrossSchools(ctl.DB.WithContext(c.UserContext())).
		First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", dto.NewSchoolResponse(&m))
}

/* ============================== UPDATE (admin school ybs / super admin) ============================== */

func (ctl *SchoolController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_id invalid")
	}

	p := authHelper.PrincipalFromLocals(c)
	if !tenancy.CanAdministerSchool(p, id) {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan admin school ini")
	}

	var req dto.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m mModel.SchoolModel
	if err := tenancy.AcrossSchools(ctl.DB.WithContext(c.UserContext())).
		First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if req.SchoolName != nil {
		m.SchoolName = strings.TrimSpace(*req.SchoolName)
	}
	if req.SchoolAddress != nil {
		m.SchoolAddress = req.SchoolAddress
	}
	if req.SchoolCity != nil {
		m.SchoolCity = req.SchoolCity
	}
	if req.SchoolState != nil {
		m.SchoolState = req.SchoolState
	}
	if req.SchoolPincode != nil {
		m.SchoolPincode = req.SchoolPincode
	}
	if req.SchoolEmail != nil {
		m.SchoolEmail = req.SchoolEmail
	}
	if req.SchoolPhone != nil {
		m.SchoolPhone = req.SchoolPhone
	}
	if req.SchoolWebsite != nil {
		m.SchoolWebsite = req.SchoolWebsite
	}
	if req.SchoolAffiliation != nil {
		m.SchoolAffiliation = req.SchoolAffiliation
	}
	if req.SchoolSettings != nil {
		m.SchoolSettings = *req.SchoolSettings
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update school")
	}

	return helper.JsonOK(c, "School berhasil diupdate", dto.NewSchoolResponse(&m))
}

/* ============================== STATUS (super admin) ============================== */

// SetStatus: school tidak pernah di-hard-delete; cukup transisi status.
func (ctl *SchoolController) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_id invalid")
	}

	var req dto.SetSchoolStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := tenancy.AcrossSchools(ctl.DB.WithContext(c.UserContext()).Model(&mModel.SchoolModel{})).
		Where("school_id = ?", id).
		Update("school_status", req.SchoolStatus)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "School tidak ditemukan")
	}

	return helper.JsonOK(c, "Status school diperbarui", fiber.Map{
		"school_id":     id,
		"school_status": req.SchoolStatus,
	})
}

/* ============================== VERIFICATION CODE ============================== */

func (ctl *SchoolController) GetVerificationCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_id invalid")
	}

	p := authHelper.PrincipalFromLocals(c)
	if !tenancy.CanAdministerSchool(p, id) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya admin school ini yang boleh melihat verification code")
	}

	var m mModel.SchoolModel
	if err := tenancy.AcrossSchools(ctl.DB.WithContext(c.UserContext())).
		Select("school_id", "school_verification_code").
		First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"school_verification_code": m.SchoolVerificationCode,
	})
}

func (ctl *SchoolController) RegenerateVerificationCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_id invalid")
	}

	p := authHelper.PrincipalFromLocals(c)
	if !tenancy.CanAdministerSchool(p, id) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya admin school ini yang boleh rotate verification code")
	}

	code := mModel.GenerateVerificationCode()
	res := tenancy.AcrossSchools(ctl.DB.WithContext(c.UserContext()).Model(&mModel.SchoolModel{})).
		Where("school_id = ?", id).
		Update("school_verification_code", code)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal regenerate code")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "School tidak ditemukan")
	}

	return helper.JsonOK(c, "Verification code berhasil di-regenerate", fiber.Map{
		"school_verification_code": code,
	})
}

/* ============================== DIRECTORY (public, lintas tenant) ============================== */

// Directory sengaja cross-tenant: daftar school aktif dengan field publik saja.
func (ctl *SchoolController) Directory(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	dbq := tenancy.AcrossSchools(
		ctl.DB.WithContext(c.UserContext()).Model(&mModel.SchoolModel{}),
	).Where("school_status = ?", mModel.SchoolStatusActive)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where("LOWER(school_name) LIKE ? OR LOWER(school_city) LIKE ?", like, like)
	}

	var rows []mModel.SchoolModel
	if err := dbq.Order("school_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	resp := make([]*dto.PublicSchoolResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewPublicSchoolResponse(&rows[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{"list": resp})
}
