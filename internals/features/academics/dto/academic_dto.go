// file: internals/features/academics/dto/academic_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* =========================
   Class & Section
========================= */

type CreateClassRequest struct {
	ClassName         string `json:"class_name"          validate:"required,min=1,max=60"`
	ClassNumericLevel *int   `json:"class_numeric_level" validate:"omitempty,min=1,max=12"`
}

type UpdateClassRequest struct {
	ClassName         *string `json:"class_name"          validate:"omitempty,min=1,max=60"`
	ClassNumericLevel *int    `json:"class_numeric_level" validate:"omitempty,min=1,max=12"`
}

type CreateSectionRequest struct {
	SectionClassID        uuid.UUID  `json:"section_class_id"         validate:"required"`
	SectionName           string     `json:"section_name"             validate:"required,min=1,max=20"`
	SectionCapacity       *int       `json:"section_capacity"         validate:"omitempty,min=1,max=200"`
	SectionClassTeacherID *uuid.UUID `json:"section_class_teacher_id" validate:"omitempty"`
}

type UpdateSectionRequest struct {
	SectionName           *string    `json:"section_name"             validate:"omitempty,min=1,max=20"`
	SectionCapacity       *int       `json:"section_capacity"         validate:"omitempty,min=1,max=200"`
	SectionClassTeacherID *uuid.UUID `json:"section_class_teacher_id" validate:"omitempty"`
}

/* =========================
   Subject & assignment
========================= */

type CreateSubjectRequest struct {
	SubjectName string `json:"subject_name" validate:"required,min=1,max=100"`
	SubjectCode string `json:"subject_code" validate:"required,min=1,max=20"`
}

type CreateSubjectAssignmentRequest struct {
	SubjectAssignmentSubjectID uuid.UUID `json:"subject_assignment_subject_id" validate:"required"`
	SubjectAssignmentSectionID uuid.UUID `json:"subject_assignment_section_id" validate:"required"`
	SubjectAssignmentTeacherID uuid.UUID `json:"subject_assignment_teacher_id" validate:"required"`
}

/* =========================
   Period & timetable
========================= */

type CreatePeriodRequest struct {
	PeriodName      string `json:"period_name"       validate:"required,min=1,max=40"`
	PeriodOrder     int    `json:"period_order"      validate:"required,min=1,max=20"`
	PeriodStartTime string `json:"period_start_time" validate:"required,len=5"`
	PeriodEndTime   string `json:"period_end_time"   validate:"required,len=5"`
	PeriodIsBreak   bool   `json:"period_is_break"`
}

type CreateTimetableEntryRequest struct {
	TimetableEntrySectionID uuid.UUID `json:"timetable_entry_section_id"  validate:"required"`
	TimetableEntryDayOfWeek int       `json:"timetable_entry_day_of_week" validate:"required,min=1,max=6"`
	TimetableEntryPeriodID  uuid.UUID `json:"timetable_entry_period_id"   validate:"required"`
	TimetableEntrySubjectID uuid.UUID `json:"timetable_entry_subject_id"  validate:"required"`
	TimetableEntryTeacherID uuid.UUID `json:"timetable_entry_teacher_id"  validate:"required"`
}
