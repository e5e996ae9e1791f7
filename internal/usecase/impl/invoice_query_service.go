package impl

import (
	"context"
	"log/slog"

	deliverycontext "acorn/internal/delivery/context"
	"acorn/internal/domain/entity"
	"acorn/internal/domain/repository"
	"acorn/internal/domain/service"
	"acorn/internal/usecase"
	"acorn/internal/usecase/schema"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const latestVariant = "latest"

// invoiceQueryService implements the InvoiceQueryUsecase interface.
type invoiceQueryService struct {
	invoiceRepo repository.InvoiceRepository
	cache       service.ViewCache
	logger      *slog.Logger
}

// InvoiceQueryServiceParams holds dependencies for InvoiceQueryService, injected by Fx.
type InvoiceQueryServiceParams struct {
	fx.In

	InvoiceRepo repository.InvoiceRepository
	Cache       service.ViewCache
	Logger      *slog.Logger
}

// NewInvoiceQueryService is the constructor for invoiceQueryService.
func NewInvoiceQueryService(params InvoiceQueryServiceParams) usecase.InvoiceQueryUsecase {
	return &invoiceQueryService{
		invoiceRepo: params.InvoiceRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *invoiceQueryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FetchFilteredInvoices returns one page of invoices whose customer, amount, date or status contains query.
func (srv *invoiceQueryService) FetchFilteredInvoices(ctx context.Context, query string, page int) (*usecase.InvoicePage, error) {
	page = normalizePage(page)
	variant := listVariant(query, page)

	if cached, ok := srv.cache.Get(usecase.PathInvoices, variant); ok {
		if result, ok := cached.(*usecase.InvoicePage); ok {
			return result, nil
		}
	}

	generation := srv.cache.Generation()

	invoices := []*entity.InvoiceListItem{}
	if offset, ok := pageOffset(page, usecase.InvoicesPageSize); ok {
		found, err := srv.invoiceRepo.FindFiltered(ctx, query, usecase.InvoicesPageSize, offset)
		if err != nil {
			srv.log(ctx).Error("Failed to fetch invoices", slog.Any("error", err), slog.Int("page", page))

			return nil, errors.Wrap(err, "failed to fetch invoices")
		}
		invoices = found
	}

	count, err := srv.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to count invoices", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to count invoices")
	}

	result := &usecase.InvoicePage{
		Invoices:   invoices,
		Query:      query,
		Page:       page,
		TotalPages: totalPages(count, usecase.InvoicesPageSize),
		TotalCount: count,
	}
	srv.cache.Put(usecase.PathInvoices, variant, generation, result)

	return result, nil
}

// FetchInvoiceByID loads one invoice with its items. A malformed id is reported as not found.
func (srv *invoiceQueryService) FetchInvoiceByID(ctx context.Context, id string) (*entity.InvoiceDetail, bool, error) {
	invoiceID, ok := schema.ParseInvoiceID(id)
	if !ok {
		return nil, false, nil
	}

	path := usecase.InvoiceDetailPath(invoiceID)
	if cached, ok := srv.cache.Get(path, ""); ok {
		if detail, ok := cached.(*entity.InvoiceDetail); ok {
			return detail, true, nil
		}
	}

	generation := srv.cache.Generation()

	detail, err := srv.invoiceRepo.FindDetailByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, false, nil
		}
		srv.log(ctx).Error("Failed to fetch invoice", slog.Any("error", err), slog.String("invoice_id", invoiceID.String()))

		return nil, false, errors.Wrap(err, "failed to fetch invoice")
	}

	srv.cache.Put(path, "", generation, detail)

	return detail, true, nil
}

// FetchLatestInvoices returns the newest invoices shown on the overview.
func (srv *invoiceQueryService) FetchLatestInvoices(ctx context.Context) ([]*entity.InvoiceListItem, error) {
	if cached, ok := srv.cache.Get(usecase.PathDashboard, latestVariant); ok {
		if latest, ok := cached.([]*entity.InvoiceListItem); ok {
			return latest, nil
		}
	}

	generation := srv.cache.Generation()

	latest, err := srv.invoiceRepo.FindLatest(ctx, usecase.LatestInvoicesCount)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch latest invoices", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch latest invoices")
	}

	srv.cache.Put(usecase.PathDashboard, latestVariant, generation, latest)

	return latest, nil
}
