package model

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceModel mirrors the 'invoices' table. Items are removed by ON DELETE CASCADE.
type InvoiceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountInCents  int64     `gorm:"not null"`
	Status         string    `gorm:"type:varchar(16);not null"`
	Date           time.Time `gorm:"type:date;not null;index"`
	BillingAddress *string   `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel mirrors the 'invoice_items' table.
type InvoiceItemModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	InvoiceID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Description      string    `gorm:"type:text;not null"`
	Quantity         int       `gorm:"not null"`
	UnitPriceInCents int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// InvoiceRow is the scan target for invoice queries joined with customers.
type InvoiceRow struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	AmountInCents    int64
	Status           string
	Date             time.Time
	BillingAddress   *string
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string
}

// InvoiceTotalsRow is the scan target for aggregate invoice totals.
type InvoiceTotalsRow struct {
	Count        int64
	PaidCents    int64
	PendingCents int64
}
