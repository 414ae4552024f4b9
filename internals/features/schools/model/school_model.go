// file: internals/features/schools/model/school_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Status (dijaga CHECK di DB)
========================= */

const (
	SchoolStatusActive    = "active"
	SchoolStatusInactive  = "inactive"
	SchoolStatusSuspended = "suspended"
)

// SchoolModel adalah tenant — unit isolasi data.
// Tidak pernah di-hard-delete pada operasi normal; transisi status saja.
type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`

	SchoolName string `gorm:"type:varchar(200);not null;column:school_name" json:"school_name"`
	SchoolCode string `gorm:"type:varchar(20);not null;unique;column:school_code" json:"school_code"`

	// Dipakai alur self-registration teacher; jangan pernah keluar di response publik.
	SchoolVerificationCode string `gorm:"type:varchar(20);not null;unique;column:school_verification_code" json:"-"`

	SchoolAddress *string `gorm:"type:text;column:school_address"          json:"school_address,omitempty"`
	SchoolCity    *string `gorm:"type:varchar(100);column:school_city"     json:"school_city,omitempty"`
	SchoolState   *string `gorm:"type:varchar(100);column:school_state"    json:"school_state,omitempty"`
	SchoolPincode *string `gorm:"type:varchar(10);column:school_pincode"   json:"school_pincode,omitempty"`
	SchoolEmail   *string `gorm:"type:varchar(120);column:school_email"    json:"school_email,omitempty"`
	SchoolPhone   *string `gorm:"type:varchar(30);column:school_phone"     json:"school_phone,omitempty"`
	SchoolWebsite *string `gorm:"type:text;column:school_website"          json:"school_website,omitempty"`

	// Afiliasi board (CBSE, ICSE, dst) + pengaturan bebas per-school
	SchoolAffiliation *string        `gorm:"type:varchar(100);column:school_affiliation" json:"school_affiliation,omitempty"`
	SchoolSettings    datatypes.JSON `gorm:"column:school_settings"                      json:"school_settings,omitempty"`

	SchoolStatus string `gorm:"type:varchar(20);not null;default:'active';column:school_status" json:"school_status"`

	SchoolCreatedAt time.Time      `gorm:"autoCreateTime;column:school_created_at" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"autoUpdateTime;column:school_updated_at" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index"          json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

// GenerateVerificationCode menghasilkan kode unik 12 karakter untuk
// self-registration teacher.
func GenerateVerificationCode() string {
	return strings.ToUpper(uuid.NewString()[:12])
}

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(m.SchoolVerificationCode) == "" {
		m.SchoolVerificationCode = GenerateVerificationCode()
	}
	return nil
}

func IsValidSchoolStatus(s string) bool {
	switch s {
	case SchoolStatusActive, SchoolStatusInactive, SchoolStatusSuspended:
		return true
	}
	return false
}
