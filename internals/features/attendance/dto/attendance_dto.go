// file: internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"github.com/google/uuid"
)

type MarkAttendanceItem struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceStatus    string    `json:"attendance_status"     validate:"required,oneof=present absent late half_day"`
	AttendanceRemarks   *string   `json:"attendance_remarks"    validate:"omitempty"`
}

// BulkMarkAttendanceRequest: satu section, satu tanggal, banyak siswa.
type BulkMarkAttendanceRequest struct {
	SectionID      uuid.UUID            `json:"section_id"      validate:"required"`
	AttendanceDate string               `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Items          []MarkAttendanceItem `json:"items"           validate:"required,min=1,dive"`
}

type MarkStaffAttendanceRequest struct {
	StaffAttendanceUserID uuid.UUID `json:"staff_attendance_user_id" validate:"required"`
	StaffAttendanceDate   string    `json:"staff_attendance_date"    validate:"required,datetime=2006-01-02"`
	StaffAttendanceStatus string    `json:"staff_attendance_status"  validate:"required,oneof=present absent late half_day"`
}
