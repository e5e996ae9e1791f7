package handler

import (
	"acorn/internal/domain/entity"
	"acorn/internal/usecase"

	"github.com/google/uuid"
)

// ListQuery is the query string of the paginated listings. Page is parsed leniently by the handler.
type ListQuery struct {
	Query string `query:"query" validate:"max=255"`
	Page  string `query:"page"`
}

// FormHint describes a form the client should render.
type FormHint struct {
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}

type InvoiceListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"image_url"`
	Amount     string    `json:"amount"`
	Status     string    `json:"status"`
	Date       string    `json:"date"`
}

type InvoicePageResponse struct {
	Invoices   []InvoiceListItemResponse `json:"invoices"`
	Query      string                    `json:"query"`
	Page       int                       `json:"page"`
	TotalPages int                       `json:"total_pages"`
	TotalCount int64                     `json:"total_count"`
}

type InvoiceItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	Total       string    `json:"total"`
}

type InvoiceDetailResponse struct {
	ID             uuid.UUID             `json:"id"`
	CustomerID     uuid.UUID             `json:"customer_id"`
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	ImageURL       string                `json:"image_url"`
	Amount         string                `json:"amount"`
	Status         string                `json:"status"`
	Date           string                `json:"date"`
	BillingAddress *string               `json:"billing_address,omitempty"`
	Items          []InvoiceItemResponse `json:"items"`
}

type CustomerResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

type CustomerPageResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Query      string             `json:"query"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	TotalCount int64              `json:"total_count"`
}

type CustomerOptionResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CardDataResponse struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

// OverviewResponse is the dashboard landing page.
type OverviewResponse struct {
	Cards          CardDataResponse          `json:"cards"`
	LatestInvoices []InvoiceListItemResponse `json:"latest_invoices"`
}

func toInvoiceListItems(items []*entity.InvoiceListItem) []InvoiceListItemResponse {
	out := make([]InvoiceListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, InvoiceListItemResponse{
			ID:         it.ID,
			CustomerID: it.CustomerID,
			Name:       it.CustomerName,
			Email:      it.CustomerEmail,
			ImageURL:   it.CustomerImageURL,
			Amount:     entity.FormatCents(it.AmountInCents),
			Status:     string(it.Status),
			Date:       it.Date.Format(entity.DateLayout),
		})
	}

	return out
}

func toInvoicePage(page *usecase.InvoicePage) InvoicePageResponse {
	return InvoicePageResponse{
		Invoices:   toInvoiceListItems(page.Invoices),
		Query:      page.Query,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		TotalCount: page.TotalCount,
	}
}

func toInvoiceDetail(detail *entity.InvoiceDetail) InvoiceDetailResponse {
	items := make([]InvoiceItemResponse, 0, len(detail.Items))
	for _, it := range detail.Items {
		items = append(items, InvoiceItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   entity.FormatCents(it.UnitPriceInCents),
			Total:       entity.FormatCents(it.TotalInCents()),
		})
	}

	return InvoiceDetailResponse{
		ID:             detail.ID,
		CustomerID:     detail.CustomerID,
		Name:           detail.CustomerName,
		Email:          detail.CustomerEmail,
		ImageURL:       detail.CustomerImageURL,
		Amount:         entity.FormatCents(detail.AmountInCents),
		Status:         string(detail.Status),
		Date:           detail.Date.Format(entity.DateLayout),
		BillingAddress: detail.BillingAddress,
		Items:          items,
	}
}

func toCustomerPage(page *usecase.CustomerPage) CustomerPageResponse {
	customers := make([]CustomerResponse, 0, len(page.Customers))
	for _, c := range page.Customers {
		customers = append(customers, CustomerResponse{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	}

	return CustomerPageResponse{
		Customers:  customers,
		Query:      page.Query,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		TotalCount: page.TotalCount,
	}
}

func toCustomerOptions(options []*entity.CustomerOption) []CustomerOptionResponse {
	out := make([]CustomerOptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, CustomerOptionResponse{ID: o.ID, Name: o.Name})
	}

	return out
}

func toCardData(cards *entity.CardData) CardDataResponse {
	return CardDataResponse{
		NumberOfInvoices:     cards.NumberOfInvoices,
		NumberOfCustomers:    cards.NumberOfCustomers,
		TotalPaidInvoices:    entity.FormatCents(cards.TotalPaidInCents),
		TotalPendingInvoices: entity.FormatCents(cards.TotalPendingInCents),
	}
}
