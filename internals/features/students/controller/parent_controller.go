// file: internals/features/students/controller/parent_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusiq_backend/internals/constants"
	"campusiq_backend/internals/features/students/dto"
	"campusiq_backend/internals/features/students/model"
	userModel "campusiq_backend/internals/features/users/model"
	userService "campusiq_backend/internals/features/users/service"
	helper "campusiq_backend/internals/helpers"
	"campusiq_backend/internals/tenancy"
)

type ParentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewParentController(db *gorm.DB, v *validator.Validate) *ParentController {
	return &ParentController{DB: db, Validator: v}
}

// Create mendaftarkan orang tua + akun user dalam satu transaksi.
func (ctl *ParentController) Create(c *fiber.Ctx) error {
	var req dto.CreateParentRequest
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

	hashed, err := userService.HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	var pp model.ParentProfileModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		u := userModel.UserModel{
			UserSchoolID: &schoolID,
			UserUserName: strings.TrimSpace(req.UserUserName),
			UserEmail:    req.UserEmail,
			UserPassword: hashed,
			UserFullName: strings.TrimSpace(req.UserFullName),
			UserRole:     constants.RoleParent,
			UserIsActive: true,
		}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}

		pp = model.ParentProfileModel{
			ParentProfileUserID:     u.UserID,
			ParentProfileSchoolID:   schoolID,
			ParentProfilePhone:      strings.TrimSpace(req.ParentProfilePhone),
			ParentProfileOccupation: req.ParentProfileOccupation,
			ParentProfileAddress:    req.ParentProfileAddress,
			ParentProfileRelation:   req.ParentProfileRelation,
		}
		return tx.Create(&pp).Error
	})
	if txErr != nil {
		low := strings.ToLower(txErr.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan orang tua")
	}

	return helper.JsonCreated(c, "Orang tua berhasil didaftarkan", pp)
}

func (ctl *ParentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ParentProfileModel{}).
		Scopes(tenancy.Scoped(c.UserContext(), &model.ParentProfileModel{}))

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.ParentProfileModel
	if err := dbq.Order("parent_profile_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"list":       rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}
