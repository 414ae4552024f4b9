// file: internals/features/fees/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

/* =========================
   Status invoice
========================= */

const (
	InvoiceStatusUnpaid    = "unpaid"
	InvoiceStatusPartial   = "partial"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// InvoiceModel: tagihan satu siswa dari satu fee structure.
// Nomor invoice format INV-<tahun>-<urut>, unik per school.
type InvoiceModel struct {
	InvoiceID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:invoice_id" json:"invoice_id"`
	InvoiceSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_invoice_school_number;column:invoice_school_id" json:"invoice_school_id"`

	InvoiceNumber      string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_invoice_school_number;column:invoice_number" json:"invoice_number"`
	InvoiceStudentID   uuid.UUID `gorm:"type:uuid;not null;index;column:invoice_student_id"   json:"invoice_student_id"`
	InvoiceStructureID uuid.UUID `gorm:"type:uuid;not null;column:invoice_structure_id"       json:"invoice_structure_id"`

	InvoiceTotalAmount int64     `gorm:"not null;column:invoice_total_amount"                json:"invoice_total_amount"`
	InvoicePaidAmount  int64     `gorm:"not null;default:0;column:invoice_paid_amount"       json:"invoice_paid_amount"`
	InvoiceDueDate     time.Time `gorm:"type:date;not null;column:invoice_due_date"          json:"invoice_due_date"`
	InvoiceStatus      string    `gorm:"type:varchar(10);not null;default:'unpaid';index;column:invoice_status" json:"invoice_status"`

	InvoiceCreatedAt time.Time      `gorm:"autoCreateTime;column:invoice_created_at" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"autoUpdateTime;column:invoice_updated_at" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index"          json:"invoice_deleted_at,omitempty"`
}

func (InvoiceModel) TableName() string { return "invoices" }

func (InvoiceModel) SchoolIDColumn() string { return "invoice_school_id" }

func (m *InvoiceModel) TenantSchoolID() uuid.UUID { return m.InvoiceSchoolID }

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.InvoiceSchoolID)
}

func (m *InvoiceModel) Outstanding() int64 { return m.InvoiceTotalAmount - m.InvoicePaidAmount }

// ApplyPayment menambah pembayaran dan menurunkan status invoice.
func (m *InvoiceModel) ApplyPayment(amount int64) {
	m.InvoicePaidAmount += amount
	if m.InvoicePaidAmount >= m.InvoiceTotalAmount {
		m.InvoiceStatus = InvoiceStatusPaid
	} else if m.InvoicePaidAmount > 0 {
		m.InvoiceStatus = InvoiceStatusPartial
	}
}
