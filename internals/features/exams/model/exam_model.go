// file: internals/features/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

/* =========================
   Status exam
========================= */

const (
	ExamStatusDraft     = "draft"
	ExamStatusPublished = "published"
)

// ExamModel: satu ujian untuk satu class. Nilai hanya terlihat siswa/orang tua
// setelah status published.
type ExamModel struct {
	ExamID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_id" json:"exam_id"`
	ExamSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:exam_school_id" json:"exam_school_id"`

	ExamName      string    `gorm:"type:varchar(100);not null;column:exam_name"    json:"exam_name"`
	ExamClassID   uuid.UUID `gorm:"type:uuid;not null;index;column:exam_class_id"  json:"exam_class_id"`
	ExamStartDate time.Time `gorm:"type:date;not null;column:exam_start_date"      json:"exam_start_date"`
	ExamEndDate   time.Time `gorm:"type:date;not null;column:exam_end_date"        json:"exam_end_date"`
	ExamStatus    string    `gorm:"type:varchar(10);not null;default:'draft';index;column:exam_status" json:"exam_status"`

	ExamCreatedAt time.Time      `gorm:"autoCreateTime;column:exam_created_at" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"autoUpdateTime;column:exam_updated_at" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index"          json:"exam_deleted_at,omitempty"`
}

func (ExamModel) TableName() string { return "exams" }

func (ExamModel) SchoolIDColumn() string { return "exam_school_id" }

func (m *ExamModel) TenantSchoolID() uuid.UUID { return m.ExamSchoolID }

func (m *ExamModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.ExamSchoolID)
}

func (m *ExamModel) IsPublished() bool { return m.ExamStatus == ExamStatusPublished }

// ExamResultModel: nilai satu siswa untuk satu subject dalam satu exam.
type ExamResultModel struct {
	ExamResultID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_result_id" json:"exam_result_id"`
	ExamResultSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_exam_result;column:exam_result_school_id" json:"exam_result_school_id"`

	ExamResultExamID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_exam_result;column:exam_result_exam_id"    json:"exam_result_exam_id"`
	ExamResultStudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_exam_result;column:exam_result_student_id" json:"exam_result_student_id"`
	ExamResultSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_exam_result;column:exam_result_subject_id"       json:"exam_result_subject_id"`

	ExamResultMarksObtained float64 `gorm:"not null;column:exam_result_marks_obtained" json:"exam_result_marks_obtained"`
	ExamResultMaxMarks      float64 `gorm:"not null;column:exam_result_max_marks"      json:"exam_result_max_marks"`
	ExamResultGrade         string  `gorm:"type:varchar(2);not null;column:exam_result_grade" json:"exam_result_grade"`

	ExamResultEnteredBy *uuid.UUID `gorm:"type:uuid;column:exam_result_entered_by" json:"exam_result_entered_by,omitempty"`

	ExamResultCreatedAt time.Time      `gorm:"autoCreateTime;column:exam_result_created_at" json:"exam_result_created_at"`
	ExamResultUpdatedAt time.Time      `gorm:"autoUpdateTime;column:exam_result_updated_at" json:"exam_result_updated_at"`
	ExamResultDeletedAt gorm.DeletedAt `gorm:"column:exam_result_deleted_at;index"          json:"exam_result_deleted_at,omitempty"`
}

func (ExamResultModel) TableName() string { return "exam_results" }

func (ExamResultModel) SchoolIDColumn() string { return "exam_result_school_id" }

func (m *ExamResultModel) TenantSchoolID() uuid.UUID { return m.ExamResultSchoolID }

func (m *ExamResultModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.ExamResultSchoolID)
}

// Percentage nilai 0-100.
func (m *ExamResultModel) Percentage() float64 {
	if m.ExamResultMaxMarks <= 0 {
		return 0
	}
	return m.ExamResultMarksObtained / m.ExamResultMaxMarks * 100
}
