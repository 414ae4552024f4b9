// file: internals/features/users/dto/teacher_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"campusiq_backend/internals/features/users/model"
)

/* =========================
   Request
========================= */

// CreateTeacherRequest: admin membuat guru langsung (status aktif, tanpa approval).
type CreateTeacherRequest struct {
	UserUserName string  `json:"user_user_name" validate:"required,min=3,max=60"`
	UserEmail    *string `json:"user_email"     validate:"omitempty,email"`
	UserPassword string  `json:"user_password"  validate:"required,min=6"`
	UserFullName string  `json:"user_full_name" validate:"required,min=3,max=150"`

	TeacherProfileEmployeeID      *string    `json:"teacher_profile_employee_id"     validate:"omitempty,max=50"`
	TeacherProfilePhone           string     `json:"teacher_profile_phone"           validate:"required,min=6,max=30"`
	TeacherProfileDateOfBirth     *time.Time `json:"teacher_profile_date_of_birth"   validate:"omitempty"`
	TeacherProfileJoiningDate     *time.Time `json:"teacher_profile_joining_date"    validate:"omitempty"`
	TeacherProfileQualification   *string    `json:"teacher_profile_qualification"   validate:"omitempty"`
	TeacherProfileSpecializations []string   `json:"teacher_profile_specializations" validate:"omitempty,dive,min=1"`
	TeacherProfileAddress         *string    `json:"teacher_profile_address"         validate:"omitempty"`
}

type UpdateTeacherRequest struct {
	TeacherProfileEmployeeID      *string    `json:"teacher_profile_employee_id"     validate:"omitempty,max=50"`
	TeacherProfilePhone           *string    `json:"teacher_profile_phone"           validate:"omitempty,min=6,max=30"`
	TeacherProfileDateOfBirth     *time.Time `json:"teacher_profile_date_of_birth"   validate:"omitempty"`
	TeacherProfileQualification   *string    `json:"teacher_profile_qualification"   validate:"omitempty"`
	TeacherProfileSpecializations []string   `json:"teacher_profile_specializations" validate:"omitempty,dive,min=1"`
	TeacherProfileAddress         *string    `json:"teacher_profile_address"         validate:"omitempty"`
}

type RejectTeacherRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"required,min=3"`
}

/* =========================
   Response
========================= */

type TeacherResponse struct {
	TeacherProfileID       uuid.UUID `json:"teacher_profile_id"`
	TeacherProfileUserID   uuid.UUID `json:"teacher_profile_user_id"`
	TeacherProfileSchoolID uuid.UUID `json:"teacher_profile_school_id"`

	TeacherProfileEmployeeID      *string    `json:"teacher_profile_employee_id,omitempty"`
	TeacherProfilePhone           string     `json:"teacher_profile_phone"`
	TeacherProfileDateOfBirth     *time.Time `json:"teacher_profile_date_of_birth,omitempty"`
	TeacherProfileJoiningDate     time.Time  `json:"teacher_profile_joining_date"`
	TeacherProfileQualification   *string    `json:"teacher_profile_qualification,omitempty"`
	TeacherProfileSpecializations []string   `json:"teacher_profile_specializations,omitempty"`
	TeacherProfileAddress         *string    `json:"teacher_profile_address,omitempty"`

	TeacherProfileStatus          string  `json:"teacher_profile_status"`
	TeacherProfileSelfRegistered  bool    `json:"teacher_profile_self_registered"`
	TeacherProfileRejectionReason *string `json:"teacher_profile_rejection_reason,omitempty"`

	TeacherProfileCreatedAt time.Time `json:"teacher_profile_created_at"`

	User *UserResponse `json:"user,omitempty"`
}

func NewTeacherResponse(m *model.TeacherProfileModel, u *model.UserModel) *TeacherResponse {
	if m == nil {
		return nil
	}
	return &TeacherResponse{
		TeacherProfileID:              m.TeacherProfileID,
		TeacherProfileUserID:          m.TeacherProfileUserID,
		TeacherProfileSchoolID:        m.TeacherProfileSchoolID,
		TeacherProfileEmployeeID:      m.TeacherProfileEmployeeID,
		TeacherProfilePhone:           m.TeacherProfilePhone,
		TeacherProfileDateOfBirth:     m.TeacherProfileDateOfBirth,
		TeacherProfileJoiningDate:     m.TeacherProfileJoiningDate,
		TeacherProfileQualification:   m.TeacherProfileQualification,
		TeacherProfileSpecializations: m.TeacherProfileSpecializations,
		TeacherProfileAddress:         m.TeacherProfileAddress,
		TeacherProfileStatus:          m.TeacherProfileStatus,
		TeacherProfileSelfRegistered:  m.TeacherProfileSelfRegistered,
		TeacherProfileRejectionReason: m.TeacherProfileRejectionReason,
		TeacherProfileCreatedAt:       m.TeacherProfileCreatedAt,
		User:                          NewUserResponse(u),
	}
}
