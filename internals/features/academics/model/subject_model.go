// file: internals/features/academics/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

// SubjectModel: mata pelajaran. Kode unik per school, bukan global.
type SubjectModel struct {
	SubjectID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_subject_school_code;column:subject_school_id" json:"subject_school_id"`

	SubjectName string `gorm:"type:varchar(100);not null;column:subject_name" json:"subject_name"`
	SubjectCode string `gorm:"type:varchar(20);not null;uniqueIndex:uq_subject_school_code;column:subject_code" json:"subject_code"`

	SubjectCreatedAt time.Time      `gorm:"autoCreateTime;column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"autoUpdateTime;column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index"          json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (SubjectModel) SchoolIDColumn() string { return "subject_school_id" }

func (m *SubjectModel) TenantSchoolID() uuid.UUID { return m.SubjectSchoolID }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.SubjectSchoolID)
}

// SubjectAssignmentModel: penugasan guru mengajar subject di satu section.
// Satu subject per section hanya dipegang satu guru.
type SubjectAssignmentModel struct {
	SubjectAssignmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_assignment_id" json:"subject_assignment_id"`
	SubjectAssignmentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_assignment_subject_section;column:subject_assignment_school_id" json:"subject_assignment_school_id"`

	SubjectAssignmentSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignment_subject_section;column:subject_assignment_subject_id" json:"subject_assignment_subject_id"`
	SubjectAssignmentSectionID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_assignment_subject_section;column:subject_assignment_section_id" json:"subject_assignment_section_id"`
	SubjectAssignmentTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:subject_assignment_teacher_id" json:"subject_assignment_teacher_id"`

	SubjectAssignmentCreatedAt time.Time      `gorm:"autoCreateTime;column:subject_assignment_created_at" json:"subject_assignment_created_at"`
	SubjectAssignmentDeletedAt gorm.DeletedAt `gorm:"column:subject_assignment_deleted_at;index"          json:"subject_assignment_deleted_at,omitempty"`
}

func (SubjectAssignmentModel) TableName() string { return "subject_assignments" }

func (SubjectAssignmentModel) SchoolIDColumn() string { return "subject_assignment_school_id" }

func (m *SubjectAssignmentModel) TenantSchoolID() uuid.UUID { return m.SubjectAssignmentSchoolID }

func (m *SubjectAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.SubjectAssignmentSchoolID)
}
