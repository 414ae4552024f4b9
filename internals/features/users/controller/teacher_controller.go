// file: internals/features/users/controller/teacher_controller.go
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
	"campusiq_backend/internals/features/users/dto"
	"campusiq_backend/internals/features/users/model"
	"campusiq_backend/internals/features/users/service"
	helper "campusiq_backend/internals/helpers"
	authHelper "campusiq_backend/internals/helpers/auth"
	"campusiq_backend/internals/tenancy"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validator: v}
}

func (ctl *TeacherController) findScoped(c *fiber.Ctx, id uuid.UUID) (*model.TeacherProfileModel, error) {
	var m model.TeacherProfileModel
	err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.TeacherProfileModel{})).
		First(&m, "teacher_profile_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

/* ============================== LIST ============================== */

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.WithContext(c.UserContext()).
		Model(&model.TeacherProfileModel{}).
		Scopes(tenancy.Scoped(c.UserContext(), &model.TeacherProfileModel{}))

	if st := strings.TrimSpace(c.Query("status")); st != "" {
		dbq = dbq.Where("teacher_profile_status = ?", st)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.TeacherProfileModel
	if err := dbq.Order("teacher_profile_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	resp := make([]*dto.TeacherResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewTeacherResponse(&rows[i], nil))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"list":       resp,
		"pagination": helper.BuildPagination(total, p, len(resp)),
	})
}

/* ============================== PENDING (admin) ============================== */

func (ctl *TeacherController) Pending(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.WithContext(c.UserContext()).
		Model(&model.TeacherProfileModel{}).
		Scopes(tenancy.Scoped(c.UserContext(), &model.TeacherProfileModel{})).
		Where("teacher_profile_status = ?", model.TeacherStatusPending)

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.TeacherProfileModel
	if err := dbq.Order("teacher_profile_created_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	resp := make([]*dto.TeacherResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewTeacherResponse(&rows[i], nil))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"list":       resp,
		"pagination": helper.BuildPagination(total, p, len(resp)),
	})
}

/* ============================== CREATE (admin, langsung aktif) ============================== */

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	sc := tenancy.ScopeFromContext(c.UserContext())
	schoolID, ok := sc.SchoolID()
	if !ok {
		// Termasuk super admin: create guru harus dalam konteks satu school.
		return helper.JsonFromDomainError(c, tenancy.ErrMissingTenant, "School tidak ter-resolve")
	}

	hashed, err := service.HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	joining := time.Now()
	if req.TeacherProfileJoiningDate != nil {
		joining = *req.TeacherProfileJoiningDate
	}

	var tp model.TeacherProfileModel
	var u model.UserModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		u = model.UserModel{
			UserSchoolID: &schoolID,
			UserUserName: strings.TrimSpace(req.UserUserName),
			UserEmail:    req.UserEmail,
			UserPassword: hashed,
			UserFullName: strings.TrimSpace(req.UserFullName),
			UserRole:     constants.RoleTeacher,
			UserIsActive: true,
		}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}

		tp = model.TeacherProfileModel{
			TeacherProfileUserID:          u.UserID,
			TeacherProfileSchoolID:        schoolID,
			TeacherProfileEmployeeID:      req.TeacherProfileEmployeeID,
			TeacherProfilePhone:           strings.TrimSpace(req.TeacherProfilePhone),
			TeacherProfileDateOfBirth:     req.TeacherProfileDateOfBirth,
			TeacherProfileJoiningDate:     joining,
			TeacherProfileQualification:   req.TeacherProfileQualification,
			TeacherProfileSpecializations: req.TeacherProfileSpecializations,
			TeacherProfileAddress:         req.TeacherProfileAddress,
			TeacherProfileStatus:          model.TeacherStatusActive,
		}
		return tx.Create(&tp).Error
	})
	if txErr != nil {
		low := strings.ToLower(txErr.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Username, email, atau employee ID sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat guru")
	}

	return helper.JsonCreated(c, "Guru berhasil dibuat", dto.NewTeacherResponse(&tp, &u))
}

/* ============================== DETAIL ============================== */

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_profile_id invalid")
	}

	m, err := ctl.findScoped(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	p := authHelper.PrincipalFromLocals(c)
	if !tenancy.CanAccessRecord(p, m) {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}

	return helper.JsonOK(c, "OK", dto.NewTeacherResponse(m, nil))
}

/* ============================== UPDATE ============================== */

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_profile_id invalid")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctl.findScoped(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	p := authHelper.PrincipalFromLocals(c)
	if !tenancy.CanAdministerSchool(p, m.TeacherProfileSchoolID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan admin school ini")
	}

	if req.TeacherProfileEmployeeID != nil {
		m.TeacherProfileEmployeeID = req.TeacherProfileEmployeeID
	}
	if req.TeacherProfilePhone != nil {
		m.TeacherProfilePhone = strings.TrimSpace(*req.TeacherProfilePhone)
	}
	if req.TeacherProfileDateOfBirth != nil {
		m.TeacherProfileDateOfBirth = req.TeacherProfileDateOfBirth
	}
	if req.TeacherProfileQualification != nil {
		m.TeacherProfileQualification = req.TeacherProfileQualification
	}
	if req.TeacherProfileSpecializations != nil {
		m.TeacherProfileSpecializations = req.TeacherProfileSpecializations
	}
	if req.TeacherProfileAddress != nil {
		m.TeacherProfileAddress = req.TeacherProfileAddress
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update guru")
	}

	return helper.JsonOK(c, "Guru berhasil diupdate", dto.NewTeacherResponse(m, nil))
}

/* ============================== APPROVE / REJECT (admin) ============================== */

// Approve mengaktifkan profil sekaligus user login-nya dalam satu transaksi.
func (ctl *TeacherController) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_profile_id invalid")
	}

	m, err := ctl.findScoped(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	p := authHelper.PrincipalFromLocals(c)
	if !tenancy.CanAdministerSchool(p, m.TeacherProfileSchoolID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan admin school ini")
	}
	if m.TeacherProfileStatus != model.TeacherStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya pendaftaran pending yang bisa di-approve")
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		m.TeacherProfileStatus = model.TeacherStatusActive
		m.TeacherProfileRejectionReason = nil
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		return tx.Model(&model.UserModel{}).
			Where("user_id = ?", m.TeacherProfileUserID).
			Update("user_is_active", true).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal approve guru")
	}

	return helper.JsonOK(c, "Pendaftaran guru disetujui", dto.NewTeacherResponse(m, nil))
}

func (ctl *TeacherController) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_profile_id invalid")
	}

	var req dto.RejectTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctl.findScoped(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	p := authHelper.PrincipalFromLocals(c)
	if !tenancy.CanAdministerSchool(p, m.TeacherProfileSchoolID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan admin school ini")
	}
	if m.TeacherProfileStatus != model.TeacherStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya pendaftaran pending yang bisa di-reject")
	}

	reason := strings.TrimSpace(req.RejectionReason)
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		m.TeacherProfileStatus = model.TeacherStatusRejected
		m.TeacherProfileRejectionReason = &reason
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		return tx.Model(&model.UserModel{}).
			Where("user_id = ?", m.TeacherProfileUserID).
			Update("user_is_active", false).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal reject guru")
	}

	return helper.JsonOK(c, "Pendaftaran guru ditolak", dto.NewTeacherResponse(m, nil))
}
