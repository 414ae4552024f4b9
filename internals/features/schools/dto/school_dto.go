// file: internals/features/schools/dto/school_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campusiq_backend/internals/features/schools/model"
)

/* =============== Requests =============== */

type CreateSchoolRequest struct {
	SchoolName        string  `json:"school_name"  validate:"required,min=3,max=200"`
	SchoolCode        string  `json:"school_code"  validate:"required,min=2,max=20,alphanum"`
	SchoolAddress     *string `json:"school_address"`
	SchoolCity        *string `json:"school_city"`
	SchoolState       *string `json:"school_state"`
	SchoolPincode     *string `json:"school_pincode"`
	SchoolEmail       *string `json:"school_email" validate:"omitempty,email"`
	SchoolPhone       *string `json:"school_phone"`
	SchoolWebsite     *string `json:"school_website" validate:"omitempty,url"`
	SchoolAffiliation *string `json:"school_affiliation"`
}

type UpdateSchoolRequest struct {
	SchoolName        *string         `json:"school_name"  validate:"omitempty,min=3,max=200"`
	SchoolAddress     *string         `json:"school_address"`
	SchoolCity        *string         `json:"school_city"`
	SchoolState       *string         `json:"school_state"`
	SchoolPincode     *string         `json:"school_pincode"`
	SchoolEmail       *string         `json:"school_email" validate:"omitempty,email"`
	SchoolPhone       *string         `json:"school_phone"`
	SchoolWebsite     *string         `json:"school_website" validate:"omitempty,url"`
	SchoolAffiliation *string         `json:"school_affiliation"`
	SchoolSettings    *datatypes.JSON `json:"school_settings"`
}

type SetSchoolStatusRequest struct {
	SchoolStatus string `json:"school_status" validate:"required,oneof=active inactive suspended"`
}

/* =============== Responses =============== */

type SchoolResponse struct {
	SchoolID          uuid.UUID      `json:"school_id"`
	SchoolName        string         `json:"school_name"`
	SchoolCode        string         `json:"school_code"`
	SchoolAddress     *string        `json:"school_address,omitempty"`
	SchoolCity        *string        `json:"school_city,omitempty"`
	SchoolState       *string        `json:"school_state,omitempty"`
	SchoolPincode     *string        `json:"school_pincode,omitempty"`
	SchoolEmail       *string        `json:"school_email,omitempty"`
	SchoolPhone       *string        `json:"school_phone,omitempty"`
	SchoolWebsite     *string        `json:"school_website,omitempty"`
	SchoolAffiliation *string        `json:"school_affiliation,omitempty"`
	SchoolSettings    datatypes.JSON `json:"school_settings,omitempty"`
	SchoolStatus      string         `json:"school_status"`
	SchoolCreatedAt   time.Time      `json:"school_created_at"`
}

// PublicSchoolResponse untuk directory lintas tenant:
// SENGAJA tanpa verification code, kontak internal, dan settings.
type PublicSchoolResponse struct {
	SchoolID      uuid.UUID `json:"school_id"`
	SchoolName    string    `json:"school_name"`
	SchoolCode    string    `json:"school_code"`
	SchoolCity    *string   `json:"school_city,omitempty"`
	SchoolState   *string   `json:"school_state,omitempty"`
	SchoolWebsite *string   `json:"school_website,omitempty"`
}

func NewSchoolResponse(m *model.SchoolModel) *SchoolResponse {
	return &SchoolResponse{
		SchoolID:          m.SchoolID,
		SchoolName:        m.SchoolName,
		SchoolCode:        m.SchoolCode,
		SchoolAddress:     m.SchoolAddress,
		SchoolCity:        m.SchoolCity,
		SchoolState:       m.SchoolState,
		SchoolPincode:     m.SchoolPincode,
		SchoolEmail:       m.SchoolEmail,
		SchoolPhone:       m.SchoolPhone,
		SchoolWebsite:     m.SchoolWebsite,
		SchoolAffiliation: m.SchoolAffiliation,
		SchoolSettings:    m.SchoolSettings,
		SchoolStatus:      m.SchoolStatus,
		SchoolCreatedAt:   m.SchoolCreatedAt,
	}
}

func NewPublicSchoolResponse(m *model.SchoolModel) *PublicSchoolResponse {
	return &PublicSchoolResponse{
		SchoolID:      m.SchoolID,
		SchoolName:    m.SchoolName,
		SchoolCode:    m.SchoolCode,
		SchoolCity:    m.SchoolCity,
		SchoolState:   m.SchoolState,
		SchoolWebsite: m.SchoolWebsite,
	}
}
