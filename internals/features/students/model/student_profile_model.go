// file: internals/features/students/model/student_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

/* =========================
   Status student
========================= */

const (
	StudentStatusActive      = "active"
	StudentStatusInactive    = "inactive"
	StudentStatusTransferred = "transferred"
	StudentStatusGraduated   = "graduated"
)

type StudentProfileModel struct {
	StudentProfileID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_profile_id" json:"student_profile_id"`

	StudentProfileUserID   uuid.UUID `gorm:"type:uuid;not null;unique;column:student_profile_user_id" json:"student_profile_user_id"`
	StudentProfileSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_student_school_admission;column:student_profile_school_id" json:"student_profile_school_id"`

	StudentProfileAdmissionNumber string `gorm:"type:varchar(30);not null;uniqueIndex:uq_student_school_admission;column:student_profile_admission_number" json:"student_profile_admission_number"`

	StudentProfileClassID   *uuid.UUID `gorm:"type:uuid;index;column:student_profile_class_id"   json:"student_profile_class_id,omitempty"`
	StudentProfileSectionID *uuid.UUID `gorm:"type:uuid;index;column:student_profile_section_id" json:"student_profile_section_id,omitempty"`
	StudentProfileParentID  *uuid.UUID `gorm:"type:uuid;index;column:student_profile_parent_id"  json:"student_profile_parent_id,omitempty"`

	StudentProfileDateOfBirth   *time.Time `gorm:"type:date;column:student_profile_date_of_birth"    json:"student_profile_date_of_birth,omitempty"`
	StudentProfileAdmissionDate time.Time  `gorm:"type:date;not null;column:student_profile_admission_date" json:"student_profile_admission_date"`
	StudentProfileAddress       *string    `gorm:"type:text;column:student_profile_address"          json:"student_profile_address,omitempty"`
	StudentProfileBloodGroup    *string    `gorm:"type:varchar(5);column:student_profile_blood_group" json:"student_profile_blood_group,omitempty"`

	StudentProfileStatus string `gorm:"type:varchar(20);not null;default:'active';index;column:student_profile_status" json:"student_profile_status"`

	StudentProfileCreatedAt time.Time      `gorm:"autoCreateTime;column:student_profile_created_at" json:"student_profile_created_at"`
	StudentProfileUpdatedAt time.Time      `gorm:"autoUpdateTime;column:student_profile_updated_at" json:"student_profile_updated_at"`
	StudentProfileDeletedAt gorm.DeletedAt `gorm:"column:student_profile_deleted_at;index"          json:"student_profile_deleted_at,omitempty"`
}

func (StudentProfileModel) TableName() string { return "student_profiles" }

/* ===== kontrak tenant-scoped ===== */

func (StudentProfileModel) SchoolIDColumn() string { return "student_profile_school_id" }

func (m *StudentProfileModel) TenantSchoolID() uuid.UUID { return m.StudentProfileSchoolID }

func (m *StudentProfileModel) OwnerUserID() uuid.UUID { return m.StudentProfileUserID }

func (m *StudentProfileModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.StudentProfileSchoolID)
}

func IsValidStudentStatus(s string) bool {
	switch s {
	case StudentStatusActive, StudentStatusInactive, StudentStatusTransferred, StudentStatusGraduated:
		return true
	}
	return false
}
