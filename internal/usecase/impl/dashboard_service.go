package impl

import (
	"context"
	"log/slog"

	deliverycontext "acorn/internal/delivery/context"
	"acorn/internal/domain/entity"
	"acorn/internal/domain/repository"
	"acorn/internal/domain/service"
	"acorn/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const cardsVariant = "cards"

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	cache        service.ViewCache
	logger       *slog.Logger
}

type DashboardServiceParams struct {
	fx.In

	InvoiceRepo  repository.InvoiceRepository
	CustomerRepo repository.CustomerRepository
	Cache        service.ViewCache
	Logger       *slog.Logger
}

func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		invoiceRepo:  params.InvoiceRepo,
		customerRepo: params.CustomerRepo,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FetchCardData runs the invoice totals and the customer count concurrently.
func (srv *dashboardService) FetchCardData(ctx context.Context) (*entity.CardData, error) {
	if cached, ok := srv.cache.Get(usecase.PathDashboard, cardsVariant); ok {
		if cards, ok := cached.(*entity.CardData); ok {
			return cards, nil
		}
	}

	generation := srv.cache.Generation()

	var (
		totals    *entity.InvoiceTotals
		customers int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		totals, err = srv.invoiceRepo.Totals(groupCtx)

		return errors.Wrap(err, "failed to sum invoices")
	})
	group.Go(func() error {
		var err error
		customers, err = srv.customerRepo.Count(groupCtx)

		return errors.Wrap(err, "failed to count customers")
	})

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to fetch card data", slog.Any("error", err))

		return nil, err
	}

	cards := &entity.CardData{
		NumberOfInvoices:    totals.Count,
		NumberOfCustomers:   customers,
		TotalPaidInCents:    totals.TotalPaidInCents,
		TotalPendingInCents: totals.TotalPendingInCents,
	}
	srv.cache.Put(usecase.PathDashboard, cardsVariant, generation, cards)

	return cards, nil
}
