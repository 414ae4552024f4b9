// file: internals/features/fees/controller/payment_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/features/fees/dto"
	"campusiq_backend/internals/features/fees/model"
	"campusiq_backend/internals/features/fees/service"
	userModel "campusiq_backend/internals/features/users/model"
	helper "campusiq_backend/internals/helpers"
	authHelper "campusiq_backend/internals/helpers/auth"
	"campusiq_backend/internals/tenancy"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB, v *validator.Validate) *PaymentController {
	return &PaymentController{DB: db, Validator: v}
}

func (ctl *PaymentController) findInvoiceScoped(c *fiber.Ctx, id uuid.UUID) (*model.InvoiceModel, error) {
	var inv model.InvoiceModel
	err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.InvoiceModel{})).
		First(&inv, "invoice_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

/* ============================== RECORD CASH (admin) ============================== */

// Record: pembayaran manual oleh admin. Boleh parsial; receipt langsung terbit.
func (ctl *PaymentController) Record(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	inv, err := ctl.findInvoiceScoped(c, req.PaymentInvoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if inv.InvoiceStatus == model.InvoiceStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "Invoice sudah dibatalkan")
	}
	if req.PaymentAmount > inv.Outstanding() {
		return helper.JsonError(c, fiber.StatusConflict, "Nominal melebihi sisa tagihan")
	}

	now := time.Now()
	var pay model.PaymentModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		receipt, err := service.NextReceiptNumber(tx, inv.InvoiceSchoolID, now)
		if err != nil {
			return err
		}

		pay = model.PaymentModel{
			PaymentSchoolID:      inv.InvoiceSchoolID,
			PaymentInvoiceID:     inv.InvoiceID,
			PaymentAmount:        req.PaymentAmount,
			PaymentMode:          model.PaymentModeCash,
			PaymentStatus:        model.PaymentStatusSuccess,
			PaymentReceiptNumber: &receipt,
			PaymentPaidAt:        &now,
		}
		if err := tx.Create(&pay).Error; err != nil {
			return err
		}

		inv.ApplyPayment(req.PaymentAmount)
		return tx.Save(inv).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat pembayaran")
	}

	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", fiber.Map{
		"payment": pay,
		"invoice": inv,
	})
}

/* ============================== SNAP (online) ============================== */

// CreateSnap membuat transaksi Midtrans Snap untuk invoice.
// Payment pending dulu; lunasnya lewat webhook notification.
func (ctl *PaymentController) CreateSnap(c *fiber.Ctx) error {
	var req dto.CreateSnapPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	inv, err := ctl.findInvoiceScoped(c, req.PaymentInvoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if inv.InvoiceStatus == model.InvoiceStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "Invoice sudah dibatalkan")
	}
	if req.PaymentAmount > inv.Outstanding() {
		return helper.JsonError(c, fiber.StatusConflict, "Nominal melebihi sisa tagihan")
	}

	p := authHelper.PrincipalFromLocals(c)
	email := ""
	var u userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&u, "user_id = ?", p.UserID).Error; err == nil && u.UserEmail != nil {
		email = *u.UserEmail
	}

	orderID := "PAY-" + uuid.NewString()
	pay := model.PaymentModel{
		PaymentSchoolID:  inv.InvoiceSchoolID,
		PaymentInvoiceID: inv.InvoiceID,
		PaymentAmount:    req.PaymentAmount,
		PaymentMode:      model.PaymentModeOnline,
		PaymentStatus:    model.PaymentStatusPending,
		PaymentOrderID:   &orderID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&pay).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pembayaran")
	}

	token, redirectURL, err := service.GenerateSnapToken(&pay, inv.InvoiceNumber, p.UserName, email)
	if err != nil {
		log.Printf("[MIDTRANS ERROR] create transaction: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans")
	}

	pay.PaymentSnapToken = &token
	if err := ctl.DB.WithContext(c.UserContext()).Save(&pay).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan token pembayaran")
	}

	return helper.JsonCreated(c, "Transaksi Midtrans berhasil dibuat", fiber.Map{
		"payment_order_id": orderID,
		"snap_token":       token,
		"redirect_url":     redirectURL,
	})
}

/* ============================== WEBHOOK NOTIFICATION ============================== */

// Notification: webhook Midtrans — public, tanpa auth dan tanpa tenant scope,
// tenant diturunkan dari payment yang ditemukan via order_id.
func (ctl *PaymentController) Notification(c *fiber.Ctx) error {
	var notif dto.MidtransNotificationRequest
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if strings.TrimSpace(notif.OrderID) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id kosong")
	}

	var pay model.PaymentModel
	err := tenancy.AcrossSchools(ctl.DB.WithContext(c.UserContext())).
		First(&pay, "payment_order_id = ?", notif.OrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	// Notifikasi bisa datang berulang; yang sudah final tidak diproses lagi.
	if pay.PaymentStatus != model.PaymentStatusPending {
		return helper.JsonOK(c, "OK", nil)
	}

	switch notif.TransactionStatus {
	case "settlement", "capture":
		if notif.TransactionStatus == "capture" && notif.FraudStatus != "accept" {
			return helper.JsonOK(c, "OK", nil)
		}

		now := time.Now()
		txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			receipt, err := service.NextReceiptNumber(tx, pay.PaymentSchoolID, now)
			if err != nil {
				return err
			}
			pay.PaymentStatus = model.PaymentStatusSuccess
			pay.PaymentReceiptNumber = &receipt
			pay.PaymentPaidAt = &now
			if err := tx.Save(&pay).Error; err != nil {
				return err
			}

			var inv model.InvoiceModel
			if err := tx.First(&inv, "invoice_id = ?", pay.PaymentInvoiceID).Error; err != nil {
				return err
			}
			inv.ApplyPayment(pay.PaymentAmount)
			return tx.Save(&inv).Error
		})
		if txErr != nil {
			log.Printf("[MIDTRANS ERROR] settle order %s: %v", notif.OrderID, txErr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
		}

	case "expire":
		pay.PaymentStatus = model.PaymentStatusExpired
		if err := ctl.DB.WithContext(c.UserContext()).Save(&pay).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
		}

	case "cancel", "deny", "failure":
		pay.PaymentStatus = model.PaymentStatusFailed
		if err := ctl.DB.WithContext(c.UserContext()).Save(&pay).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
		}
	}

	return helper.JsonOK(c, "OK", nil)
}

/* ============================== LIST PAYMENTS ============================== */

func (ctl *PaymentController) ListByInvoice(c *fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("invoice_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invoice_id invalid")
	}

	var rows []model.PaymentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.PaymentModel{})).
		Where("payment_invoice_id = ?", invoiceID).
		Order("payment_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}
