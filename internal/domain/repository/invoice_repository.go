package repository

import (
	"context"
	"errors"

	"acorn/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInvoiceNotFound is returned when no invoice has the requested ID.
var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceRepository defines invoice persistence, including the customer join used for listing.
type InvoiceRepository interface {
	// FindFiltered returns invoices whose customer name, customer email, formatted amount,
	// formatted date or status contains query (case-insensitive), newest first.
	FindFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceListItem, error)

	// CountFiltered counts the rows FindFiltered would match without paging.
	CountFiltered(ctx context.Context, query string) (int64, error)

	// FindLatest returns the most recent invoices.
	FindLatest(ctx context.Context, limit int) ([]*entity.InvoiceListItem, error)

	// FindDetailByID returns the invoice with customer fields and items, or ErrInvoiceNotFound.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceDetail, error)

	// Create inserts the invoice and sets its generated ID.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// UpdateFields changes customer, amount and status only. Returns ErrInvoiceNotFound on zero rows.
	UpdateFields(ctx context.Context, invoice *entity.Invoice) error

	// DeleteItems removes every item of the invoice and returns how many were removed.
	DeleteItems(ctx context.Context, invoiceID uuid.UUID) (int64, error)

	// Delete removes the invoice row and returns how many rows were removed (0 or 1).
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// Totals aggregates the invoice count and paid/pending sums.
	Totals(ctx context.Context) (*entity.InvoiceTotals, error)
}
