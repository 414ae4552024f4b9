// file: internals/features/fees/model/invoice_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceApplyPayment(t *testing.T) {
	inv := InvoiceModel{
		InvoiceTotalAmount: 1_000_000,
		InvoiceStatus:      InvoiceStatusUnpaid,
	}

	inv.ApplyPayment(400_000)
	assert.Equal(t, InvoiceStatusPartial, inv.InvoiceStatus)
	assert.Equal(t, int64(600_000), inv.Outstanding())

	inv.ApplyPayment(600_000)
	assert.Equal(t, InvoiceStatusPaid, inv.InvoiceStatus)
	assert.Zero(t, inv.Outstanding())
}

func TestInvoiceApplyPaymentFullAtOnce(t *testing.T) {
	inv := InvoiceModel{InvoiceTotalAmount: 250_000, InvoiceStatus: InvoiceStatusUnpaid}
	inv.ApplyPayment(250_000)
	assert.Equal(t, InvoiceStatusPaid, inv.InvoiceStatus)
}
