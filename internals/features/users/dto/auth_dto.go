// file: internals/features/users/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"campusiq_backend/internals/features/users/model"
)

/* =========================
   Request
========================= */

type LoginRequest struct {
	UserUserName string `json:"user_user_name" validate:"required,min=3,max=60"`
	UserPassword string `json:"user_password"  validate:"required,min=6"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RegisterTeacherRequest: pendaftaran mandiri guru lewat verification code school.
type RegisterTeacherRequest struct {
	SchoolVerificationCode string `json:"school_verification_code" validate:"required,len=12"`

	UserUserName string  `json:"user_user_name" validate:"required,min=3,max=60"`
	UserEmail    *string `json:"user_email"     validate:"omitempty,email"`
	UserPassword string  `json:"user_password"  validate:"required,min=6"`
	UserFullName string  `json:"user_full_name" validate:"required,min=3,max=150"`

	TeacherProfilePhone           string     `json:"teacher_profile_phone"           validate:"required,min=6,max=30"`
	TeacherProfileJoiningDate     *time.Time `json:"teacher_profile_joining_date"    validate:"omitempty"`
	TeacherProfileQualification   *string    `json:"teacher_profile_qualification"   validate:"omitempty"`
	TeacherProfileSpecializations []string   `json:"teacher_profile_specializations" validate:"omitempty,dive,min=1"`
}

/* =========================
   Response
========================= */

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty"`
	UserUserName string     `json:"user_user_name"`
	UserEmail    *string    `json:"user_email,omitempty"`
	UserFullName string     `json:"user_full_name"`
	UserRole     string     `json:"user_role"`
	UserIsActive bool       `json:"user_is_active"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

func NewUserResponse(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:       m.UserID,
		UserSchoolID: m.UserSchoolID,
		UserUserName: m.UserUserName,
		UserEmail:    m.UserEmail,
		UserFullName: m.UserFullName,
		UserRole:     m.UserRole,
		UserIsActive: m.UserIsActive,
	}
}

func NewLoginResponse(token string, ttl time.Duration, u *model.UserModel) *LoginResponse {
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		User:        NewUserResponse(u),
	}
}
