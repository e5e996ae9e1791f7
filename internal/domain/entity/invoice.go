package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the closed set of states an invoice can be in.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// InvoiceStatuses lists every valid status in display order.
var InvoiceStatuses = []InvoiceStatus{InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue}

// IsValid reports whether s is one of the enumerated statuses.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	default:
		return false
	}
}

// ParseInvoiceStatus returns the status for raw, or false if raw is not enumerated.
func ParseInvoiceStatus(raw string) (InvoiceStatus, bool) {
	s := InvoiceStatus(raw)

	return s, s.IsValid()
}

// DateLayout is the calendar-date format used on the wire and in search.
const DateLayout = "2006-01-02"

// Invoice is a persisted invoice row.
type Invoice struct {
	ID             uuid.UUID     // Unique invoice ID.
	CustomerID     uuid.UUID     // References an existing Customer.
	AmountInCents  int64         // Total in minor currency units.
	Status         InvoiceStatus // One of InvoiceStatuses.
	Date           time.Time     // Calendar date set at creation; never changed afterwards.
	BillingAddress *string       // Optional billing address.
}

// Amount returns the invoice total in major units.
func (i *Invoice) Amount() decimal.Decimal {
	return AmountFromCents(i.AmountInCents)
}

// InvoiceListItem is an invoice joined with its customer's display fields.
type InvoiceListItem struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string
	AmountInCents    int64
	Status           InvoiceStatus
	Date             time.Time
}

// Amount returns the invoice total in major units.
func (i *InvoiceListItem) Amount() decimal.Decimal {
	return AmountFromCents(i.AmountInCents)
}

// InvoiceItem is a line on an invoice.
type InvoiceItem struct {
	ID               uuid.UUID
	InvoiceID        uuid.UUID
	Description      string
	Quantity         int
	UnitPriceInCents int64
}

// UnitPrice returns the price of one unit in major units.
func (it *InvoiceItem) UnitPrice() decimal.Decimal {
	return AmountFromCents(it.UnitPriceInCents)
}

// TotalInCents returns quantity * unit price in cents.
func (it *InvoiceItem) TotalInCents() int64 {
	return int64(it.Quantity) * it.UnitPriceInCents
}

// Total returns quantity * unit price in major units.
func (it *InvoiceItem) Total() decimal.Decimal {
	return AmountFromCents(it.TotalInCents())
}

// InvoiceDetail is a full invoice with customer display fields and line items.
type InvoiceDetail struct {
	Invoice
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string
	Items            []*InvoiceItem
}
