// file: internals/features/academics/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

// ClassModel: jenjang kelas (mis. "Grade 5"). Nama unik per school.
type ClassModel struct {
	ClassID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_class_school_name;column:class_school_id" json:"class_school_id"`

	ClassName         string `gorm:"type:varchar(60);not null;uniqueIndex:uq_class_school_name;column:class_name" json:"class_name"`
	ClassNumericLevel *int   `gorm:"column:class_numeric_level" json:"class_numeric_level,omitempty"`

	ClassCreatedAt time.Time      `gorm:"autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index"          json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

func (ClassModel) SchoolIDColumn() string { return "class_school_id" }

func (m *ClassModel) TenantSchoolID() uuid.UUID { return m.ClassSchoolID }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.ClassSchoolID)
}
