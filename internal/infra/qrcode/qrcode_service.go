package qrcode

import (
	"strings"

	"acorn/config"
	"acorn/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService reads qrcode settings from config, falling back to a 256px medium-level code.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	return NewQRCodeServiceWith(qrCfg.Size, qrCfg.ErrorCorrectionLevel, qrCfg.BaseURL)
}

// NewQRCodeServiceWith builds the service from explicit settings.
func NewQRCodeServiceWith(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// InvoiceURL is the dashboard address of the invoice.
func (s *qrcodeService) InvoiceURL(invoiceID uuid.UUID) string {
	return s.baseURL + "/dashboard/invoices/" + invoiceID.String()
}

// GenerateInvoiceQR renders InvoiceURL as a PNG.
func (s *qrcodeService) GenerateInvoiceQR(invoiceID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.InvoiceURL(invoiceID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
