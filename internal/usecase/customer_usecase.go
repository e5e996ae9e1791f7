package usecase

import (
	"context"

	"acorn/internal/domain/entity"
)

const (
	// CustomersPageSize is the number of customers per listing page.
	CustomersPageSize = 10

	// MaxSelectableCustomers caps the select list; exceeding it is an error, not a truncation.
	MaxSelectableCustomers = 1000
)

// CustomerPage is one page of the filtered customer listing.
type CustomerPage struct {
	Customers  []*entity.Customer
	Query      string
	Page       int
	TotalPages int
	TotalCount int64
}

// CustomerQueryUsecase reads customers. Customers are never written.
type CustomerQueryUsecase interface {
	FetchFilteredCustomers(ctx context.Context, query string, page int) (*CustomerPage, error)

	// FetchCustomersForSelect returns every customer as {id, name}, ordered by name.
	FetchCustomersForSelect(ctx context.Context) ([]*entity.CustomerOption, error)
}

// DashboardUsecase aggregates the overview cards.
type DashboardUsecase interface {
	FetchCardData(ctx context.Context) (*entity.CardData, error)
}
