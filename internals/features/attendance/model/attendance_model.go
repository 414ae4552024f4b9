// file: internals/features/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

/* =========================
   Status absensi
========================= */

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusHalfDay = "half_day"
)

func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusHalfDay:
		return true
	}
	return false
}

// AttendanceModel: absensi siswa, satu baris per siswa per tanggal.
type AttendanceModel struct {
	AttendanceID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_attendance_student_date;column:attendance_school_id" json:"attendance_school_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_date;index;column:attendance_date" json:"attendance_date"`

	AttendanceStatus   string     `gorm:"type:varchar(10);not null;column:attendance_status"    json:"attendance_status"`
	AttendanceRemarks  *string    `gorm:"type:text;column:attendance_remarks"                   json:"attendance_remarks,omitempty"`
	AttendanceMarkedBy *uuid.UUID `gorm:"type:uuid;column:attendance_marked_by"                 json:"attendance_marked_by,omitempty"`

	AttendanceCreatedAt time.Time      `gorm:"autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"autoUpdateTime;column:attendance_updated_at" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index"          json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (AttendanceModel) SchoolIDColumn() string { return "attendance_school_id" }

func (m *AttendanceModel) TenantSchoolID() uuid.UUID { return m.AttendanceSchoolID }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.AttendanceSchoolID)
}

// StaffAttendanceModel: absensi guru/staf, satu baris per user per tanggal.
type StaffAttendanceModel struct {
	StaffAttendanceID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_attendance_id" json:"staff_attendance_id"`
	StaffAttendanceSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_staff_attendance_user_date;column:staff_attendance_school_id" json:"staff_attendance_school_id"`

	StaffAttendanceUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_staff_attendance_user_date;column:staff_attendance_user_id" json:"staff_attendance_user_id"`
	StaffAttendanceDate   time.Time `gorm:"type:date;not null;uniqueIndex:uq_staff_attendance_user_date;column:staff_attendance_date"   json:"staff_attendance_date"`

	StaffAttendanceStatus   string     `gorm:"type:varchar(10);not null;column:staff_attendance_status" json:"staff_attendance_status"`
	StaffAttendanceMarkedBy *uuid.UUID `gorm:"type:uuid;column:staff_attendance_marked_by"              json:"staff_attendance_marked_by,omitempty"`

	StaffAttendanceCreatedAt time.Time      `gorm:"autoCreateTime;column:staff_attendance_created_at" json:"staff_attendance_created_at"`
	StaffAttendanceDeletedAt gorm.DeletedAt `gorm:"column:staff_attendance_deleted_at;index"          json:"staff_attendance_deleted_at,omitempty"`
}

func (StaffAttendanceModel) TableName() string { return "staff_attendances" }

func (StaffAttendanceModel) SchoolIDColumn() string { return "staff_attendance_school_id" }

func (m *StaffAttendanceModel) TenantSchoolID() uuid.UUID { return m.StaffAttendanceSchoolID }

func (m *StaffAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.StaffAttendanceSchoolID)
}
