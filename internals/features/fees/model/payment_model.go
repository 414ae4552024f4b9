// file: internals/features/fees/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

/* =========================
   Status & mode pembayaran
========================= */

const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"
)

const (
	PaymentModeCash   = "cash"
	PaymentModeOnline = "online"
)

// PaymentModel: satu pembayaran (bisa parsial) terhadap invoice.
// Receipt number RCP-<tahun>-<urut> terbit saat pembayaran sukses.
type PaymentModel struct {
	PaymentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_id" json:"payment_id"`
	PaymentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:payment_school_id" json:"payment_school_id"`

	PaymentInvoiceID uuid.UUID `gorm:"type:uuid;not null;index;column:payment_invoice_id" json:"payment_invoice_id"`
	PaymentAmount    int64     `gorm:"not null;column:payment_amount"                     json:"payment_amount"`
	PaymentMode      string    `gorm:"type:varchar(10);not null;column:payment_mode"      json:"payment_mode"`
	PaymentStatus    string    `gorm:"type:varchar(10);not null;default:'pending';index;column:payment_status" json:"payment_status"`

	PaymentReceiptNumber *string `gorm:"type:varchar(20);column:payment_receipt_number" json:"payment_receipt_number,omitempty"`

	// Order ID untuk gateway (Midtrans). Unik global, null untuk cash.
	PaymentOrderID   *string `gorm:"type:varchar(64);unique;column:payment_order_id" json:"payment_order_id,omitempty"`
	PaymentSnapToken *string `gorm:"type:text;column:payment_snap_token"             json:"payment_snap_token,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"autoCreateTime;column:payment_created_at" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"autoUpdateTime;column:payment_updated_at" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index"          json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }

func (PaymentModel) SchoolIDColumn() string { return "payment_school_id" }

func (m *PaymentModel) TenantSchoolID() uuid.UUID { return m.PaymentSchoolID }

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.PaymentSchoolID)
}
