// file: internals/features/fees/route/fee_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusiq_backend/internals/constants"
	feeCtl "campusiq_backend/internals/features/fees/controller"
	authMw "campusiq_backend/internals/middlewares/auth"
)

// PublicFeeRoutes: webhook Midtrans — harus bisa diakses tanpa token.
func PublicFeeRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	payCtl := feeCtl.NewPaymentController(db, v)
	r.Post("/fees/payments/notification", payCtl.Notification)
}

func FeeRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	fCtl := feeCtl.NewFeeController(db, v)
	payCtl := feeCtl.NewPaymentController(db, v)

	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("pengelolaan biaya"), constants.AdminAndAbove...)

	r.Get("/fees/structures", adminOnly, fCtl.ListStructures)
	r.Post("/fees/structures", adminOnly, fCtl.CreateStructure)
	r.Post("/fees/invoices/generate", adminOnly, fCtl.GenerateInvoices)
	r.Get("/fees/invoices", fCtl.ListInvoices)
	r.Get("/fees/invoices/:invoice_id/payments", payCtl.ListByInvoice)

	r.Post("/fees/payments", adminOnly, payCtl.Record)
	r.Post("/fees/payments/snap", payCtl.CreateSnap)
}
