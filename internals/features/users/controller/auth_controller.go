// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"campusiq_backend/internals/configs"
	"campusiq_backend/internals/constants"
	schoolModel "campusiq_backend/internals/features/schools/model"
	"campusiq_backend/internals/features/users/dto"
	"campusiq_backend/internals/features/users/model"
	"campusiq_backend/internals/features/users/service"
	helper "campusiq_backend/internals/helpers"
	authHelper "campusiq_backend/internals/helpers/auth"
	"campusiq_backend/internals/tenancy"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validator: v}
}

func setAccessCookie(c *fiber.Ctx, token string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(service.AccessTokenTTL),
	})
}

// guardTeacherVerified menolak login guru yang belum/tidak lolos approval.
// JANGAN menulis response di sini: *fiber.Error dikembalikan supaya caller
// selalu menerima non-nil saat ditolak dan berhenti sebelum menerbitkan token.
func (ctl *AuthController) guardTeacherVerified(c *fiber.Ctx, u *model.UserModel) error {
	if u.UserRole != constants.RoleTeacher {
		return nil
	}

	var tp model.TeacherProfileModel
	err := tenancy.AcrossSchools(ctl.DB.WithContext(c.UserContext())).
		First(&tp, "teacher_profile_user_id = ?", u.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusForbidden, "Profil guru tidak ditemukan. Hubungi admin school Anda.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	switch tp.TeacherProfileStatus {
	case model.TeacherStatusActive:
		return nil
	case model.TeacherStatusPending:
		return fiber.NewError(fiber.StatusForbidden, "Pendaftaran Anda masih menunggu persetujuan admin school")
	case model.TeacherStatusRejected:
		return fiber.NewError(fiber.StatusForbidden, "Pendaftaran Anda ditolak admin school")
	default:
		return fiber.NewError(fiber.StatusForbidden, "Akun guru Anda tidak aktif")
	}
}

/* ==========================
   LOGIN
========================== */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var u model.UserModel
	err := tenancy.AcrossSchools(ctl.DB.WithContext(c.UserContext())).
		First(&u, "user_user_name = ?", strings.TrimSpace(req.UserUserName)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if !service.CheckPassword(u.UserPassword, req.UserPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if gerr := ctl.guardTeacherVerified(c, &u); gerr != nil {
		var fe *fiber.Error
		if errors.As(gerr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	token, err := service.CreateAccessToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	setAccessCookie(c, token, time.Now())

	return helper.JsonOK(c, "Login berhasil", dto.NewLoginResponse(token, service.AccessTokenTTL, &u))
}

/* ==========================
   LOGIN GOOGLE
========================== */

// GoogleLogin: hanya untuk akun yang sudah terdaftar (match by email).
// Tidak ada auto-provisioning — user tanpa school tidak boleh lahir dari sini.
func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID Token tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal decode ID Token")
	}

	var u model.UserModel
	err = tenancy.AcrossSchools(ctl.DB.WithContext(c.UserContext())).
		First(&u, "user_email = ?", claimSet.Email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email Google Anda belum terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if gerr := ctl.guardTeacherVerified(c, &u); gerr != nil {
		var fe *fiber.Error
		if errors.As(gerr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	token, err := service.CreateAccessToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	setAccessCookie(c, token, time.Now())

	return helper.JsonOK(c, "Login berhasil", dto.NewLoginResponse(token, service.AccessTokenTTL, &u))
}

/* ==========================
   REGISTER TEACHER (self-register, public)
========================== */

// RegisterTeacher: guru mendaftar sendiri dengan verification code school.
// Akun dibuat nonaktif + profil pending; aktif setelah admin approve.
func (ctl *AuthController) RegisterTeacher(c *fiber.Ctx) error {
	var req dto.RegisterTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	code := strings.ToUpper(strings.TrimSpace(req.SchoolVerificationCode))

	// Lookup cross-tenant by design: pendaftar belum punya scope.
	var sch schoolModel.SchoolModel
	err := tenancy.AcrossSchools(ctl.DB.WithContext(c.UserContext())).
		Where("school_status = ?", schoolModel.SchoolStatusActive).
		First(&sch, "school_verification_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Verification code tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
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
			UserSchoolID: &sch.SchoolID,
			UserUserName: strings.TrimSpace(req.UserUserName),
			UserEmail:    req.UserEmail,
			UserPassword: hashed,
			UserFullName: strings.TrimSpace(req.UserFullName),
			UserRole:     constants.RoleTeacher,
			UserIsActive: false,
		}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}

		tp = model.TeacherProfileModel{
			TeacherProfileUserID:          u.UserID,
			TeacherProfileSchoolID:        sch.SchoolID,
			TeacherProfilePhone:           strings.TrimSpace(req.TeacherProfilePhone),
			TeacherProfileJoiningDate:     joining,
			TeacherProfileQualification:   req.TeacherProfileQualification,
			TeacherProfileSpecializations: req.TeacherProfileSpecializations,
			TeacherProfileStatus:          model.TeacherStatusPending,
			TeacherProfileSelfRegistered:  true,
		}
		return tx.Create(&tp).Error
	})
	if txErr != nil {
		low := strings.ToLower(txErr.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan guru")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil. Menunggu persetujuan admin school.",
		dto.NewTeacherResponse(&tp, &u))
}

/* ==========================
   LOGOUT
========================== */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := authHelper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	// Ambil exp asli token supaya entry blacklist ikut kadaluarsa wajar.
	expiredAt := time.Now().Add(service.AccessTokenTTL)
	parser := jwt.Parser{SkipClaimsValidation: true}
	if tok, _, err := parser.ParseUnverified(raw, jwt.MapClaims{}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok {
			if expF, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(expF), 0)
			}
		}
	}

	if err := service.BlacklistToken(ctl.DB.WithContext(c.UserContext()), raw, expiredAt); err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate") && !strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   ME
========================== */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	uid, err := authHelper.GetUserID(c)
	if err != nil {
		return err
	}

	var u model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&u, "user_id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", dto.NewUserResponse(&u))
}
