// file: internals/features/fees/dto/fee_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* =========================
   Fee structure
========================= */

type FeeItemInput struct {
	FeeItemName   string `json:"fee_item_name"   validate:"required,min=1,max=100"`
	FeeItemAmount int64  `json:"fee_item_amount" validate:"required,min=1"`
}

type CreateFeeStructureRequest struct {
	FeeStructureClassID      uuid.UUID      `json:"fee_structure_class_id"      validate:"required"`
	FeeStructureAcademicYear string         `json:"fee_structure_academic_year" validate:"required,min=4,max=9"`
	FeeStructureItems        []FeeItemInput `json:"fee_structure_items"         validate:"required,min=1,dive"`
}

/* =========================
   Invoice
========================= */

// GenerateInvoicesRequest membuat tagihan untuk semua siswa aktif satu class.
type GenerateInvoicesRequest struct {
	FeeStructureID uuid.UUID `json:"fee_structure_id" validate:"required"`
	InvoiceDueDate string    `json:"invoice_due_date" validate:"required,datetime=2006-01-02"`
}

/* =========================
   Payment
========================= */

// RecordPaymentRequest: pembayaran manual (cash) oleh admin, boleh parsial.
type RecordPaymentRequest struct {
	PaymentInvoiceID uuid.UUID `json:"payment_invoice_id" validate:"required"`
	PaymentAmount    int64     `json:"payment_amount"     validate:"required,min=1"`
}

// CreateSnapPaymentRequest: pembayaran online via Midtrans Snap.
type CreateSnapPaymentRequest struct {
	PaymentInvoiceID uuid.UUID `json:"payment_invoice_id" validate:"required"`
	PaymentAmount    int64     `json:"payment_amount"     validate:"required,min=1"`
}

// MidtransNotificationRequest: payload webhook dari Midtrans.
type MidtransNotificationRequest struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount"`
}
