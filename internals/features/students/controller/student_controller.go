// file: internals/features/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/constants"
	academicModel "campusiq_backend/internals/features/academics/model"
	"campusiq_backend/internals/features/students/dto"
	"campusiq_backend/internals/features/students/model"
	userModel "campusiq_backend/internals/features/users/model"
	userService "campusiq_backend/internals/features/users/service"
	helper "campusiq_backend/internals/helpers"
	authHelper "campusiq_backend/internals/helpers/auth"
	"campusiq_backend/internals/tenancy"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validator: v}
}

/* ============================== CREATE (admin) ============================== */

// Create mendaftarkan siswa + akun user dalam satu transaksi.
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	sc := tenancy.ScopeFromContext(c.UserContext())
	schoolID, ok := sc.SchoolID()
	if !ok {
		return helper.JsonFromDomainError(c, tenancy.ErrMissingTenant, "School tidak ter-resolve")
	}

	// Section (kalau diisi) harus milik school yang sama.
	if req.StudentProfileSectionID != nil {
		var sec academicModel.SectionModel
		if err := ctl.DB.WithContext(c.UserContext()).
			Scopes(tenancy.Scoped(c.UserContext(), &academicModel.SectionModel{})).
			First(&sec, "section_id = ?", *req.StudentProfileSectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if req.StudentProfileClassID == nil {
			req.StudentProfileClassID = &sec.SectionClassID
		}
	}

	hashed, err := userService.HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	admissionDate := time.Now()
	if req.StudentProfileAdmissionDate != nil {
		admissionDate = *req.StudentProfileAdmissionDate
	}

	var sp model.StudentProfileModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		u := userModel.UserModel{
			UserSchoolID: &schoolID,
			UserUserName: strings.TrimSpace(req.UserUserName),
			UserEmail:    req.UserEmail,
			UserPassword: hashed,
			UserFullName: strings.TrimSpace(req.UserFullName),
			UserRole:     constants.RoleStudent,
			UserIsActive: true,
		}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}

		sp = model.StudentProfileModel{
			StudentProfileUserID:          u.UserID,
			StudentProfileSchoolID:        schoolID,
			StudentProfileAdmissionNumber: strings.ToUpper(strings.TrimSpace(req.StudentProfileAdmissionNumber)),
			StudentProfileClassID:         req.StudentProfileClassID,
			StudentProfileSectionID:       req.StudentProfileSectionID,
			StudentProfileParentID:        req.StudentProfileParentID,
			StudentProfileDateOfBirth:     req.StudentProfileDateOfBirth,
			StudentProfileAdmissionDate:   admissionDate,
			StudentProfileAddress:         req.StudentProfileAddress,
			StudentProfileBloodGroup:      req.StudentProfileBloodGroup,
			StudentProfileStatus:          model.StudentStatusActive,
		}
		return tx.Create(&sp).Error
	})
	if txErr != nil {
		low := strings.ToLower(txErr.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Username atau nomor admisi sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil didaftarkan", sp)
}

/* ============================== LIST ============================== */

func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentProfileModel{}).
		Scopes(tenancy.Scoped(c.UserContext(), &model.StudentProfileModel{}))

	if sectionID := strings.TrimSpace(c.Query("section_id")); sectionID != "" {
		sid, err := uuid.Parse(sectionID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id invalid")
		}
		dbq = dbq.Where("student_profile_section_id = ?", sid)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		dbq = dbq.Where("student_profile_status = ?", st)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.StudentProfileModel
	if err := dbq.Order("student_profile_admission_number ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"list":       rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}

/* ============================== DETAIL ============================== */

// GetByID: siswa/orang tua hanya record miliknya; staf school bebas dalam scope.
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_profile_id invalid")
	}

	var m model.StudentProfileModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.StudentProfileModel{})).
		First(&m, "student_profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	p := authHelper.PrincipalFromLocals(c)
	allowed := tenancy.CanAccessRecord(p, &m)
	if !allowed && p.Role == constants.RoleParent && m.StudentProfileParentID != nil {
		var pp model.ParentProfileModel
		if err := ctl.DB.WithContext(c.UserContext()).
			Scopes(tenancy.Scoped(c.UserContext(), &model.ParentProfileModel{})).
			First(&pp, "parent_profile_id = ?", *m.StudentProfileParentID).Error; err == nil {
			allowed = pp.ParentProfileUserID == p.UserID
		}
	}
	if !allowed {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	return helper.JsonOK(c, "OK", m)
}

/* ============================== UPDATE ============================== */

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_profile_id invalid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.StudentProfileModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.StudentProfileModel{})).
		First(&m, "student_profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if req.StudentProfileParentID != nil {
		m.StudentProfileParentID = req.StudentProfileParentID
	}
	if req.StudentProfileDateOfBirth != nil {
		m.StudentProfileDateOfBirth = req.StudentProfileDateOfBirth
	}
	if req.StudentProfileAddress != nil {
		m.StudentProfileAddress = req.StudentProfileAddress
	}
	if req.StudentProfileBloodGroup != nil {
		m.StudentProfileBloodGroup = req.StudentProfileBloodGroup
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update siswa")
	}
	return helper.JsonOK(c, "Siswa berhasil diupdate", m)
}

/* ============================== TRANSFER SECTION ============================== */

// Transfer memindahkan siswa ke section lain. Class ikut section tujuan.
func (ctl *StudentController) Transfer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_profile_id invalid")
	}

	var req dto.TransferStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.StudentProfileModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.StudentProfileModel{})).
		First(&m, "student_profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if m.StudentProfileStatus != model.StudentStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya siswa aktif yang bisa dipindah section")
	}

	var sec academicModel.SectionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &academicModel.SectionModel{})).
		First(&sec, "section_id = ?", req.StudentProfileSectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section tujuan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if sec.SectionSchoolID != m.StudentProfileSchoolID {
		return helper.JsonError(c, fiber.StatusConflict, "Section tujuan harus dari school yang sama")
	}

	// Cek kapasitas section tujuan.
	var strength int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentProfileModel{}).
		Where("student_profile_section_id = ?", sec.SectionID).
		Where("student_profile_status = ?", model.StudentStatusActive).
		Count(&strength).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if int(strength) >= sec.SectionCapacity {
		return helper.JsonError(c, fiber.StatusConflict, "Section tujuan sudah penuh")
	}

	m.StudentProfileSectionID = &sec.SectionID
	m.StudentProfileClassID = &sec.SectionClassID
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memindahkan siswa")
	}

	return helper.JsonOK(c, "Siswa berhasil dipindahkan", m)
}

/* ============================== STATUS ============================== */

func (ctl *StudentController) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_profile_id invalid")
	}

	var req dto.SetStudentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentProfileModel{}).
		Scopes(tenancy.Scoped(c.UserContext(), &model.StudentProfileModel{})).
		Where("student_profile_id = ?", id).
		Update("student_profile_status", req.StudentProfileStatus)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update status siswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	return helper.JsonOK(c, "Status siswa diperbarui", fiber.Map{
		"student_profile_id":     id,
		"student_profile_status": req.StudentProfileStatus,
	})
}
