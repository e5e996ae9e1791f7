package usecase

import (
	"context"

	"acorn/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	// InvoicesPageSize is the number of invoices per listing page.
	InvoicesPageSize = 6

	// LatestInvoicesCount is the number of invoices shown on the dashboard overview.
	LatestInvoicesCount = 5
)

// Named view paths revalidated after mutations.
const (
	PathDashboard = "/dashboard"
	PathInvoices  = "/dashboard/invoices"
	PathCustomers = "/dashboard/customers"
	PathLogin     = "/login"
	PathHome      = "/"
)

// InvoiceDetailPath is the named view path of one invoice.
func InvoiceDetailPath(id uuid.UUID) string {
	return PathInvoices + "/" + id.String()
}

// --- Input DTOs ---

// InvoiceFormInput carries the raw form values exactly as submitted.
type InvoiceFormInput struct {
	CustomerID string
	Amount     string
	Status     string
}

// --- Output DTOs ---

// InvoicePage is one page of the filtered invoice listing.
type InvoicePage struct {
	Invoices   []*entity.InvoiceListItem
	Query      string
	Page       int
	TotalPages int
	TotalCount int64
}

// InvoiceQueryUsecase reads invoices for the dashboard.
type InvoiceQueryUsecase interface {
	// FetchFilteredInvoices returns one page of invoices matching query. Store failure is an error, never an empty page.
	FetchFilteredInvoices(ctx context.Context, query string, page int) (*InvoicePage, error)

	// FetchInvoiceByID returns found=false for a malformed id or a missing row.
	FetchInvoiceByID(ctx context.Context, id string) (*entity.InvoiceDetail, bool, error)

	// FetchLatestInvoices returns the newest invoices for the overview.
	FetchLatestInvoices(ctx context.Context) ([]*entity.InvoiceListItem, error)
}

// InvoiceMutationUsecase validates and applies invoice changes.
type InvoiceMutationUsecase interface {
	CreateInvoice(ctx context.Context, input InvoiceFormInput) *ActionResult
	UpdateInvoice(ctx context.Context, id string, input InvoiceFormInput) *ActionResult
	DeleteInvoice(ctx context.Context, id string) *ActionResult
}
