// file: internals/features/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Student
========================= */

// CreateStudentRequest: admin mendaftarkan siswa sekaligus akun login-nya.
type CreateStudentRequest struct {
	UserUserName string  `json:"user_user_name" validate:"required,min=3,max=60"`
	UserEmail    *string `json:"user_email"     validate:"omitempty,email"`
	UserPassword string  `json:"user_password"  validate:"required,min=6"`
	UserFullName string  `json:"user_full_name" validate:"required,min=3,max=150"`

	StudentProfileAdmissionNumber string     `json:"student_profile_admission_number" validate:"required,min=1,max=30"`
	StudentProfileClassID         *uuid.UUID `json:"student_profile_class_id"         validate:"omitempty"`
	StudentProfileSectionID       *uuid.UUID `json:"student_profile_section_id"       validate:"omitempty"`
	StudentProfileParentID        *uuid.UUID `json:"student_profile_parent_id"        validate:"omitempty"`
	StudentProfileDateOfBirth     *time.Time `json:"student_profile_date_of_birth"    validate:"omitempty"`
	StudentProfileAdmissionDate   *time.Time `json:"student_profile_admission_date"   validate:"omitempty"`
	StudentProfileAddress         *string    `json:"student_profile_address"          validate:"omitempty"`
	StudentProfileBloodGroup      *string    `json:"student_profile_blood_group"      validate:"omitempty,max=5"`
}

type UpdateStudentRequest struct {
	StudentProfileParentID    *uuid.UUID `json:"student_profile_parent_id"     validate:"omitempty"`
	StudentProfileDateOfBirth *time.Time `json:"student_profile_date_of_birth" validate:"omitempty"`
	StudentProfileAddress     *string    `json:"student_profile_address"       validate:"omitempty"`
	StudentProfileBloodGroup  *string    `json:"student_profile_blood_group"   validate:"omitempty,max=5"`
}

// TransferStudentRequest memindahkan siswa ke class/section lain di school yang sama.
type TransferStudentRequest struct {
	StudentProfileSectionID uuid.UUID `json:"student_profile_section_id" validate:"required"`
}

type SetStudentStatusRequest struct {
	StudentProfileStatus string `json:"student_profile_status" validate:"required,oneof=active inactive transferred graduated"`
}

/* =========================
   Parent
========================= */

type CreateParentRequest struct {
	UserUserName string  `json:"user_user_name" validate:"required,min=3,max=60"`
	UserEmail    *string `json:"user_email"     validate:"omitempty,email"`
	UserPassword string  `json:"user_password"  validate:"required,min=6"`
	UserFullName string  `json:"user_full_name" validate:"required,min=3,max=150"`

	ParentProfilePhone      string  `json:"parent_profile_phone"      validate:"required,min=6,max=30"`
	ParentProfileOccupation *string `json:"parent_profile_occupation" validate:"omitempty,max=100"`
	ParentProfileAddress    *string `json:"parent_profile_address"    validate:"omitempty"`
	ParentProfileRelation   string  `json:"parent_profile_relation"   validate:"required,oneof=father mother guardian"`
}
