// file: internals/features/academics/model/timetable_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

/* =========================
   Period
========================= */

// PeriodModel: slot waktu harian (termasuk istirahat). Order unik per school.
type PeriodModel struct {
	PeriodID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:period_id" json:"period_id"`
	PeriodSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_period_school_order;column:period_school_id" json:"period_school_id"`

	PeriodName      string `gorm:"type:varchar(40);not null;column:period_name" json:"period_name"`
	PeriodOrder     int    `gorm:"not null;uniqueIndex:uq_period_school_order;column:period_order" json:"period_order"`
	PeriodStartTime string `gorm:"type:varchar(5);not null;column:period_start_time" json:"period_start_time"`
	PeriodEndTime   string `gorm:"type:varchar(5);not null;column:period_end_time"   json:"period_end_time"`
	PeriodIsBreak   bool   `gorm:"not null;default:false;column:period_is_break"     json:"period_is_break"`

	PeriodCreatedAt time.Time      `gorm:"autoCreateTime;column:period_created_at" json:"period_created_at"`
	PeriodDeletedAt gorm.DeletedAt `gorm:"column:period_deleted_at;index"          json:"period_deleted_at,omitempty"`
}

func (PeriodModel) TableName() string { return "periods" }

func (PeriodModel) SchoolIDColumn() string { return "period_school_id" }

func (m *PeriodModel) TenantSchoolID() uuid.UUID { return m.PeriodSchoolID }

func (m *PeriodModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.PeriodSchoolID)
}

/* =========================
   Timetable entry
========================= */

// Hari sekolah: 1 = Senin ... 6 = Sabtu.
const (
	DayMin = 1
	DayMax = 6
)

// TimetableEntryModel: satu sel jadwal — section X, hari Y, period Z.
// Slot section unik; bentrok guru dicek controller sebelum insert.
type TimetableEntryModel struct {
	TimetableEntryID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timetable_entry_id" json:"timetable_entry_id"`
	TimetableEntrySchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_timetable_slot;column:timetable_entry_school_id" json:"timetable_entry_school_id"`

	TimetableEntrySectionID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_timetable_slot;column:timetable_entry_section_id" json:"timetable_entry_section_id"`
	TimetableEntryDayOfWeek int       `gorm:"not null;uniqueIndex:uq_timetable_slot;column:timetable_entry_day_of_week"               json:"timetable_entry_day_of_week"`
	TimetableEntryPeriodID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_timetable_slot;column:timetable_entry_period_id"       json:"timetable_entry_period_id"`

	TimetableEntrySubjectID uuid.UUID `gorm:"type:uuid;not null;column:timetable_entry_subject_id" json:"timetable_entry_subject_id"`
	TimetableEntryTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:timetable_entry_teacher_id" json:"timetable_entry_teacher_id"`

	TimetableEntryCreatedAt time.Time      `gorm:"autoCreateTime;column:timetable_entry_created_at" json:"timetable_entry_created_at"`
	TimetableEntryDeletedAt gorm.DeletedAt `gorm:"column:timetable_entry_deleted_at;index"          json:"timetable_entry_deleted_at,omitempty"`
}

func (TimetableEntryModel) TableName() string { return "timetable_entries" }

func (TimetableEntryModel) SchoolIDColumn() string { return "timetable_entry_school_id" }

func (m *TimetableEntryModel) TenantSchoolID() uuid.UUID { return m.TimetableEntrySchoolID }

func (m *TimetableEntryModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.TimetableEntrySchoolID)
}
