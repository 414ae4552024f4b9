// file: internals/features/fees/service/numbering_service.go
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/features/fees/model"
)

// lockSchoolRow menyerialisasi penomoran per school: semua generator nomor
// untuk school yang sama antre di row lock parent-nya sampai transaksi commit.
// Tanpa ini dua transaksi paralel menghitung nomor yang sama dan salah satunya
// gagal di unique index.
func lockSchoolRow(tx *gorm.DB, schoolID uuid.UUID) error {
	return tx.Exec("SELECT school_id FROM schools WHERE school_id = ? FOR UPDATE", schoolID).Error
}

// nextSequence membaca urutan dari nomor terakhir ("INV-2026-0042" → 43).
// Kosong / beda prefix / suffix bukan angka = mulai dari 1.
func nextSequence(latest, prefix string) int {
	if !strings.HasPrefix(latest, prefix) {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimPrefix(latest, prefix))
	if err != nil || n < 1 {
		return 1
	}
	return n + 1
}

// NextInvoiceNumber: INV-<tahun>-<urut 4 digit>, urut per school per tahun.
// WAJIB dipanggil di dalam transaksi; row school-nya dikunci dulu supaya
// nomor aman dari balapan.
func NextInvoiceNumber(tx *gorm.DB, schoolID uuid.UUID, now time.Time) (string, error) {
	prefix := fmt.Sprintf("INV-%d-", now.Year())

	if err := lockSchoolRow(tx, schoolID); err != nil {
		return "", err
	}

	var latest []string
	if err := tx.Model(&model.InvoiceModel{}).
		Where("invoice_school_id = ?", schoolID).
		Where("invoice_number LIKE ?", prefix+"%").
		Order("length(invoice_number) DESC, invoice_number DESC").
		Limit(1).
		Pluck("invoice_number", &latest).Error; err != nil {
		return "", err
	}

	last := ""
	if len(latest) > 0 {
		last = latest[0]
	}
	return fmt.Sprintf("%s%04d", prefix, nextSequence(last, prefix)), nil
}

// NextReceiptNumber: RCP-<tahun>-<urut 4 digit>, urut per school per tahun.
// Aturan lock sama dengan NextInvoiceNumber.
func NextReceiptNumber(tx *gorm.DB, schoolID uuid.UUID, now time.Time) (string, error) {
	prefix := fmt.Sprintf("RCP-%d-", now.Year())

	if err := lockSchoolRow(tx, schoolID); err != nil {
		return "", err
	}

	var latest []string
	if err := tx.Model(&model.PaymentModel{}).
		Where("payment_school_id = ?", schoolID).
		Where("payment_receipt_number LIKE ?", prefix+"%").
		Order("length(payment_receipt_number) DESC, payment_receipt_number DESC").
		Limit(1).
		Pluck("payment_receipt_number", &latest).Error; err != nil {
		return "", err
	}

	last := ""
	if len(latest) > 0 {
		last = latest[0]
	}
	return fmt.Sprintf("%s%04d", prefix, nextSequence(last, prefix)), nil
}
