package impl

import (
	"context"
	"log/slog"

	deliverycontext "acorn/internal/delivery/context"
	"acorn/internal/domain/entity"
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/domain/repository"
	"acorn/internal/domain/service"
	"acorn/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerQueryUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	cache        service.ViewCache
	logger       *slog.Logger
}

type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Cache        service.ViewCache
	Logger       *slog.Logger
}

func NewCustomerService(params CustomerServiceParams) usecase.CustomerQueryUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FetchFilteredCustomers returns one page of customers whose name or email contains query.
func (srv *customerService) FetchFilteredCustomers(ctx context.Context, query string, page int) (*usecase.CustomerPage, error) {
	page = normalizePage(page)
	variant := listVariant(query, page)

	if cached, ok := srv.cache.Get(usecase.PathCustomers, variant); ok {
		if result, ok := cached.(*usecase.CustomerPage); ok {
			return result, nil
		}
	}

	generation := srv.cache.Generation()

	customers := []*entity.Customer{}
	if offset, ok := pageOffset(page, usecase.CustomersPageSize); ok {
		found, err := srv.customerRepo.FindFiltered(ctx, query, usecase.CustomersPageSize, offset)
		if err != nil {
			srv.log(ctx).Error("Failed to fetch customers", slog.Any("error", err), slog.Int("page", page))

			return nil, errors.Wrap(err, "failed to fetch customers")
		}
		customers = found
	}

	count, err := srv.customerRepo.CountFiltered(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to count customers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to count customers")
	}

	result := &usecase.CustomerPage{
		Customers:  customers,
		Query:      query,
		Page:       page,
		TotalPages: totalPages(count, usecase.CustomersPageSize),
		TotalCount: count,
	}
	srv.cache.Put(usecase.PathCustomers, variant, generation, result)

	return result, nil
}

// FetchCustomersForSelect returns every customer for the invoice form.
// More than MaxSelectableCustomers rows is an error rather than a silently short list.
func (srv *customerService) FetchCustomersForSelect(ctx context.Context) ([]*entity.CustomerOption, error) {
	options, err := srv.customerRepo.ListOptions(ctx, usecase.MaxSelectableCustomers+1)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch customer options", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch customer options")
	}

	if len(options) > usecase.MaxSelectableCustomers {
		srv.log(ctx).Warn("Customer select list exceeds cap", slog.Int("cap", usecase.MaxSelectableCustomers))

		return nil, errors.WithStack(domainerrors.ErrTooManyCustomers)
	}

	return options, nil
}
