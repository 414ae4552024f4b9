// file: internals/features/users/model/teacher_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

/* =========================
   Status teacher
========================= */

const (
	TeacherStatusPending  = "pending"
	TeacherStatusActive   = "active"
	TeacherStatusInactive = "inactive"
	TeacherStatusRejected = "rejected"
	TeacherStatusResigned = "resigned"
)

type TeacherProfileModel struct {
	TeacherProfileID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_profile_id" json:"teacher_profile_id"`

	TeacherProfileUserID   uuid.UUID `gorm:"type:uuid;not null;unique;column:teacher_profile_user_id"  json:"teacher_profile_user_id"`
	TeacherProfileSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_profile_school_id" json:"teacher_profile_school_id"`

	TeacherProfileEmployeeID      *string        `gorm:"type:varchar(50);unique;column:teacher_profile_employee_id"   json:"teacher_profile_employee_id,omitempty"`
	TeacherProfilePhone           string         `gorm:"type:varchar(30);not null;column:teacher_profile_phone"       json:"teacher_profile_phone"`
	TeacherProfileDateOfBirth     *time.Time     `gorm:"type:date;column:teacher_profile_date_of_birth"               json:"teacher_profile_date_of_birth,omitempty"`
	TeacherProfileJoiningDate     time.Time      `gorm:"type:date;not null;column:teacher_profile_joining_date"       json:"teacher_profile_joining_date"`
	TeacherProfileQualification   *string        `gorm:"type:text;column:teacher_profile_qualification"               json:"teacher_profile_qualification,omitempty"`
	TeacherProfileSpecializations pq.StringArray `gorm:"type:text[];column:teacher_profile_specializations"           json:"teacher_profile_specializations,omitempty"`
	TeacherProfileAddress         *string        `gorm:"type:text;column:teacher_profile_address"                     json:"teacher_profile_address,omitempty"`

	TeacherProfileStatus          string  `gorm:"type:varchar(20);not null;default:'active';index;column:teacher_profile_status" json:"teacher_profile_status"`
	TeacherProfileSelfRegistered  bool    `gorm:"type:boolean;not null;default:false;column:teacher_profile_self_registered"     json:"teacher_profile_self_registered"`
	TeacherProfileRejectionReason *string `gorm:"type:text;column:teacher_profile_rejection_reason"                              json:"teacher_profile_rejection_reason,omitempty"`

	TeacherProfileCreatedAt time.Time      `gorm:"autoCreateTime;column:teacher_profile_created_at" json:"teacher_profile_created_at"`
	TeacherProfileUpdatedAt time.Time      `gorm:"autoUpdateTime;column:teacher_profile_updated_at" json:"teacher_profile_updated_at"`
	TeacherProfileDeletedAt gorm.DeletedAt `gorm:"column:teacher_profile_deleted_at;index"          json:"teacher_profile_deleted_at,omitempty"`
}

func (TeacherProfileModel) TableName() string { return "teacher_profiles" }

/* ===== kontrak tenant-scoped ===== */

func (TeacherProfileModel) SchoolIDColumn() string { return "teacher_profile_school_id" }

func (m *TeacherProfileModel) TenantSchoolID() uuid.UUID { return m.TeacherProfileSchoolID }

func (m *TeacherProfileModel) OwnerUserID() uuid.UUID { return m.TeacherProfileUserID }

func (m *TeacherProfileModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.TeacherProfileSchoolID)
}

// IsVerified: hanya teacher aktif yang boleh login / di-assign.
func (m *TeacherProfileModel) IsVerified() bool {
	return m.TeacherProfileStatus == TeacherStatusActive
}
