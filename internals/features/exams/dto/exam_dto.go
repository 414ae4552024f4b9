// file: internals/features/exams/dto/exam_dto.go
package dto

import (
	"github.com/google/uuid"
)

type CreateExamRequest struct {
	ExamName      string    `json:"exam_name"       validate:"required,min=1,max=100"`
	ExamClassID   uuid.UUID `json:"exam_class_id"   validate:"required"`
	ExamStartDate string    `json:"exam_start_date" validate:"required,datetime=2006-01-02"`
	ExamEndDate   string    `json:"exam_end_date"   validate:"required,datetime=2006-01-02"`
}

type ExamResultItem struct {
	ExamResultStudentID     uuid.UUID `json:"exam_result_student_id"     validate:"required"`
	ExamResultMarksObtained float64   `json:"exam_result_marks_obtained" validate:"min=0"`
}

// BulkEnterResultsRequest: entri nilai satu subject untuk banyak siswa sekaligus.
type BulkEnterResultsRequest struct {
	ExamResultExamID    uuid.UUID        `json:"exam_result_exam_id"    validate:"required"`
	ExamResultSubjectID uuid.UUID        `json:"exam_result_subject_id" validate:"required"`
	ExamResultMaxMarks  float64          `json:"exam_result_max_marks"  validate:"required,gt=0"`
	Items               []ExamResultItem `json:"items"                  validate:"required,min=1,dive"`
}
