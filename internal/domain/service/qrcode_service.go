package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes that link to invoices.
type QRCodeService interface {
	// GenerateInvoiceQR returns a PNG QR code encoding the invoice's dashboard URL
	GenerateInvoiceQR(invoiceID uuid.UUID) ([]byte, error)

	// InvoiceURL returns the URL encoded by GenerateInvoiceQR
	InvoiceURL(invoiceID uuid.UUID) string
}
