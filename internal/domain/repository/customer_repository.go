package repository

import (
	"context"

	"acorn/internal/domain/entity"
)

// CustomerRepository reads customers. Customers are never written by this service.
type CustomerRepository interface {
	// FindFiltered returns customers whose name or email contains query, ordered by name.
	FindFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.Customer, error)

	// CountFiltered counts the rows FindFiltered would match without paging.
	CountFiltered(ctx context.Context, query string) (int64, error)

	// ListOptions returns at most limit customers as {id, name}, ordered by name.
	ListOptions(ctx context.Context, limit int) ([]*entity.CustomerOption, error)

	// Count returns the total number of customers.
	Count(ctx context.Context) (int64, error)
}
