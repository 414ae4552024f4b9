// file: internals/features/academics/model/section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

// SectionModel: rombel dalam satu class (mis. "5A"). Class teacher opsional,
// dipakai cek kepemilikan saat guru menandai absensi.
type SectionModel struct {
	SectionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:section_id" json:"section_id"`
	SectionSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_section_school_class_name;column:section_school_id" json:"section_school_id"`

	SectionClassID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_section_school_class_name;column:section_class_id" json:"section_class_id"`
	SectionName    string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_section_school_class_name;column:section_name"    json:"section_name"`

	SectionCapacity       int        `gorm:"not null;default:40;column:section_capacity" json:"section_capacity"`
	SectionClassTeacherID *uuid.UUID `gorm:"type:uuid;index;column:section_class_teacher_id" json:"section_class_teacher_id,omitempty"`

	SectionCreatedAt time.Time      `gorm:"autoCreateTime;column:section_created_at" json:"section_created_at"`
	SectionUpdatedAt time.Time      `gorm:"autoUpdateTime;column:section_updated_at" json:"section_updated_at"`
	SectionDeletedAt gorm.DeletedAt `gorm:"column:section_deleted_at;index"          json:"section_deleted_at,omitempty"`
}

func (SectionModel) TableName() string { return "sections" }

func (SectionModel) SchoolIDColumn() string { return "section_school_id" }

func (m *SectionModel) TenantSchoolID() uuid.UUID { return m.SectionSchoolID }

func (m *SectionModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.SectionSchoolID)
}
