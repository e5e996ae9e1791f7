package impl

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"acorn/internal/domain/entity"
	"acorn/internal/domain/repository"
	mockRepo "acorn/internal/mocks/repository"
	mockSvc "acorn/internal/mocks/service"
	"acorn/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invoiceQueryFixtures struct {
	invoiceRepo *mockRepo.MockInvoiceRepository
	cache       *mockSvc.MockViewCache
	service     usecase.InvoiceQueryUsecase
}

func createTestInvoiceQueryService(t *testing.T) *invoiceQueryFixtures {
	invoiceRepo := mockRepo.NewMockInvoiceRepository(t)
	cache := mockSvc.NewMockViewCache(t)

	return &invoiceQueryFixtures{
		invoiceRepo: invoiceRepo,
		cache:       cache,
		service: NewInvoiceQueryService(InvoiceQueryServiceParams{
			InvoiceRepo: invoiceRepo,
			Cache:       cache,
			Logger:      newDiscardLogger(),
		}),
	}
}

func sampleListItems(n int) []*entity.InvoiceListItem {
	items := make([]*entity.InvoiceListItem, 0, n)
	for i := range n {
		items = append(items, &entity.InvoiceListItem{
			ID:            uuid.New(),
			CustomerID:    uuid.New(),
			CustomerName:  "Lee Robinson",
			AmountInCents: int64(1000 + i),
			Status:        entity.InvoiceStatusPending,
			Date:          time.Date(2023, time.June, 5, 0, 0, 0, 0, time.UTC),
		})
	}

	return items
}

func TestInvoiceQueryService_FetchFilteredInvoices(t *testing.T) {
	ctx := context.Background()

	t.Run("first page with page below one", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)
		items := sampleListItems(6)

		f.cache.EXPECT().Get(usecase.PathInvoices, "query=lee&page=1").Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().FindFiltered(ctx, "lee", usecase.InvoicesPageSize, 0).Return(items, nil)
		f.invoiceRepo.EXPECT().CountFiltered(ctx, "lee").Return(int64(13), nil)
		f.cache.EXPECT().Put(usecase.PathInvoices, "query=lee&page=1", uint64(7), mock.AnythingOfType("*usecase.InvoicePage")).Return()

		page, err := f.service.FetchFilteredInvoices(ctx, "lee", 0)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, int64(13), page.TotalCount)
		assert.Equal(t, "lee", page.Query)
		assert.Len(t, page.Invoices, 6)
	})

	t.Run("later page uses offset", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)

		f.cache.EXPECT().Get(usecase.PathInvoices, "query=&page=3").Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().FindFiltered(ctx, "", usecase.InvoicesPageSize, 12).Return(sampleListItems(1), nil)
		f.invoiceRepo.EXPECT().CountFiltered(ctx, "").Return(int64(13), nil)
		f.cache.EXPECT().Put(usecase.PathInvoices, "query=&page=3", uint64(7), mock.Anything).Return()

		page, err := f.service.FetchFilteredInvoices(ctx, "", 3)

		require.NoError(t, err)
		assert.Equal(t, 3, page.Page)
		assert.Len(t, page.Invoices, 1)
	})

	t.Run("no match is an empty page, not an error", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)

		f.cache.EXPECT().Get(usecase.PathInvoices, "query=zzz&page=1").Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().FindFiltered(ctx, "zzz", usecase.InvoicesPageSize, 0).Return([]*entity.InvoiceListItem{}, nil)
		f.invoiceRepo.EXPECT().CountFiltered(ctx, "zzz").Return(int64(0), nil)
		f.cache.EXPECT().Put(usecase.PathInvoices, "query=zzz&page=1", uint64(7), mock.Anything).Return()

		page, err := f.service.FetchFilteredInvoices(ctx, "zzz", 1)

		require.NoError(t, err)
		assert.Empty(t, page.Invoices)
		assert.Equal(t, 0, page.TotalPages)
	})

	t.Run("page past the int range is empty instead of wrapping to page one", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)
		variant := fmt.Sprintf("query=&page=%d", math.MaxInt)

		f.cache.EXPECT().Get(usecase.PathInvoices, variant).Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().CountFiltered(ctx, "").Return(int64(13), nil)
		f.cache.EXPECT().Put(usecase.PathInvoices, variant, uint64(7), mock.Anything).Return()

		page, err := f.service.FetchFilteredInvoices(ctx, "", math.MaxInt)

		require.NoError(t, err)
		assert.Empty(t, page.Invoices)
		assert.Equal(t, math.MaxInt, page.Page)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)
		cached := &usecase.InvoicePage{Page: 2, TotalPages: 4}

		f.cache.EXPECT().Get(usecase.PathInvoices, "query=paid&page=2").Return(cached, true)

		page, err := f.service.FetchFilteredInvoices(ctx, "paid", 2)

		require.NoError(t, err)
		assert.Same(t, cached, page)
	})

	t.Run("store failure is an error", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)
		dbErr := errors.New("connection refused")

		f.cache.EXPECT().Get(usecase.PathInvoices, "query=&page=1").Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().FindFiltered(ctx, "", usecase.InvoicesPageSize, 0).Return(nil, dbErr)

		page, err := f.service.FetchFilteredInvoices(ctx, "", 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, page)
	})

	t.Run("count failure is an error", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)

		f.cache.EXPECT().Get(usecase.PathInvoices, "query=&page=1").Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().FindFiltered(ctx, "", usecase.InvoicesPageSize, 0).Return(sampleListItems(2), nil)
		f.invoiceRepo.EXPECT().CountFiltered(ctx, "").Return(int64(0), errors.New("timeout"))

		page, err := f.service.FetchFilteredInvoices(ctx, "", 1)

		require.Error(t, err)
		assert.Nil(t, page)
	})
}

func TestInvoiceQueryService_FetchInvoiceByID(t *testing.T) {
	ctx := context.Background()
	invoiceID := uuid.New()
	path := usecase.InvoiceDetailPath(invoiceID)

	t.Run("malformed id is absent", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)

		detail, found, err := f.service.FetchInvoiceByID(ctx, "not-a-uuid")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, detail)
	})

	t.Run("missing row is absent", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)

		f.cache.EXPECT().Get(path, "").Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().FindDetailByID(ctx, invoiceID).Return(nil, repository.ErrInvoiceNotFound)

		detail, found, err := f.service.FetchInvoiceByID(ctx, invoiceID.String())

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, detail)
	})

	t.Run("found and cached", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)
		detail := &entity.InvoiceDetail{Invoice: entity.Invoice{ID: invoiceID}, CustomerName: "Delba de Oliveira"}

		f.cache.EXPECT().Get(path, "").Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().FindDetailByID(ctx, invoiceID).Return(detail, nil)
		f.cache.EXPECT().Put(path, "", uint64(7), detail).Return()

		got, found, err := f.service.FetchInvoiceByID(ctx, invoiceID.String())

		require.NoError(t, err)
		assert.True(t, found)
		assert.Same(t, detail, got)
	})

	t.Run("store failure is an error", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)

		f.cache.EXPECT().Get(path, "").Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().FindDetailByID(ctx, invoiceID).Return(nil, errors.New("connection reset"))

		_, found, err := f.service.FetchInvoiceByID(ctx, invoiceID.String())

		require.Error(t, err)
		assert.False(t, found)
	})
}

func TestInvoiceQueryService_FetchLatestInvoices(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)
		items := sampleListItems(usecase.LatestInvoicesCount)

		f.cache.EXPECT().Get(usecase.PathDashboard, latestVariant).Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().FindLatest(ctx, usecase.LatestInvoicesCount).Return(items, nil)
		f.cache.EXPECT().Put(usecase.PathDashboard, latestVariant, uint64(7), items).Return()

		latest, err := f.service.FetchLatestInvoices(ctx)

		require.NoError(t, err)
		assert.Len(t, latest, usecase.LatestInvoicesCount)
	})

	t.Run("store failure", func(t *testing.T) {
		f := createTestInvoiceQueryService(t)

		f.cache.EXPECT().Get(usecase.PathDashboard, latestVariant).Return(nil, false)
		f.cache.EXPECT().Generation().Return(uint64(7))
		f.invoiceRepo.EXPECT().FindLatest(ctx, usecase.LatestInvoicesCount).Return(nil, errors.New("boom"))

		latest, err := f.service.FetchLatestInvoices(ctx)

		require.Error(t, err)
		assert.Nil(t, latest)
	})
}
