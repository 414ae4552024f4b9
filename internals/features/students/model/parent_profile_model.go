// file: internals/features/students/model/parent_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

type ParentProfileModel struct {
	ParentProfileID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_profile_id" json:"parent_profile_id"`

	ParentProfileUserID   uuid.UUID `gorm:"type:uuid;not null;unique;column:parent_profile_user_id"  json:"parent_profile_user_id"`
	ParentProfileSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:parent_profile_school_id" json:"parent_profile_school_id"`

	ParentProfilePhone      string  `gorm:"type:varchar(30);not null;column:parent_profile_phone"     json:"parent_profile_phone"`
	ParentProfileOccupation *string `gorm:"type:varchar(100);column:parent_profile_occupation"        json:"parent_profile_occupation,omitempty"`
	ParentProfileAddress    *string `gorm:"type:text;column:parent_profile_address"                   json:"parent_profile_address,omitempty"`
	ParentProfileRelation   string  `gorm:"type:varchar(20);not null;default:'guardian';column:parent_profile_relation" json:"parent_profile_relation"`

	ParentProfileCreatedAt time.Time      `gorm:"autoCreateTime;column:parent_profile_created_at" json:"parent_profile_created_at"`
	ParentProfileUpdatedAt time.Time      `gorm:"autoUpdateTime;column:parent_profile_updated_at" json:"parent_profile_updated_at"`
	ParentProfileDeletedAt gorm.DeletedAt `gorm:"column:parent_profile_deleted_at;index"          json:"parent_profile_deleted_at,omitempty"`
}

func (ParentProfileModel) TableName() string { return "parent_profiles" }

func (ParentProfileModel) SchoolIDColumn() string { return "parent_profile_school_id" }

func (m *ParentProfileModel) TenantSchoolID() uuid.UUID { return m.ParentProfileSchoolID }

func (m *ParentProfileModel) OwnerUserID() uuid.UUID { return m.ParentProfileUserID }

func (m *ParentProfileModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.ParentProfileSchoolID)
}
