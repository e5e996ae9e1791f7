package postgres

import (
	"context"

	"acorn/internal/domain/entity"
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/domain/repository"
	"acorn/internal/infra/persistence/model"
	"acorn/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	invoiceRowColumns = "invoices.id, invoices.customer_id, invoices.amount_in_cents, invoices.status, " +
		"invoices.date, invoices.billing_address, customers.name AS customer_name, " +
		"customers.email AS customer_email, customers.image_url AS customer_image_url"

	invoiceCustomerJoin = "JOIN customers ON customers.id = invoices.customer_id"

	// Amount is matched in its major-unit text form, e.g. "1234.50".
	invoiceSearchCondition = "customers.name ILIKE ? OR customers.email ILIKE ? " +
		"OR TO_CHAR(invoices.amount_in_cents / 100.0, 'FM999999999990.00') ILIKE ? " +
		"OR TO_CHAR(invoices.date, 'YYYY-MM-DD') ILIKE ? " +
		"OR invoices.status ILIKE ?"

	invoiceTotalsQuery = `SELECT
	COUNT(*) AS count,
	COALESCE(SUM(CASE WHEN status = 'paid' THEN amount_in_cents ELSE 0 END), 0) AS paid_cents,
	COALESCE(SUM(CASE WHEN status = 'pending' THEN amount_in_cents ELSE 0 END), 0) AS pending_cents
FROM invoices`
)

// invoiceRepository runs the joined search and aggregate reads on raw gorm.
// Single-table writes go through the query builder.
type invoiceRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db, q: query.Use(db)}
}

func (repo *invoiceRepository) joined(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table(model.InvoiceModel{}.TableName()).
		Joins(invoiceCustomerJoin)
}

func (repo *invoiceRepository) filtered(ctx context.Context, term string) *gorm.DB {
	pattern := containsPattern(term)

	return repo.joined(ctx).
		Where(invoiceSearchCondition, pattern, pattern, pattern, pattern, pattern)
}

func (repo *invoiceRepository) FindFiltered(ctx context.Context, term string, limit, offset int) ([]*entity.InvoiceListItem, error) {
	limit, offset = normalizePaging(limit, offset)

	var rows []model.InvoiceRow
	err := repo.filtered(ctx, term).
		Select(invoiceRowColumns).
		Order("invoices.date DESC").
		Order("invoices.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find filtered invoices")
	}

	return toInvoiceListItems(rows), nil
}

func (repo *invoiceRepository) CountFiltered(ctx context.Context, term string) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, term).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count filtered invoices")
	}

	return count, nil
}

func (repo *invoiceRepository) FindLatest(ctx context.Context, limit int) ([]*entity.InvoiceListItem, error) {
	limit, _ = normalizePaging(limit, 0)

	var rows []model.InvoiceRow
	err := repo.joined(ctx).
		Select(invoiceRowColumns).
		Order("invoices.date DESC").
		Order("invoices.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest invoices")
	}

	return toInvoiceListItems(rows), nil
}

func (repo *invoiceRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceDetail, error) {
	var row model.InvoiceRow
	err := repo.joined(ctx).
		Select(invoiceRowColumns).
		Where("invoices.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by id")
	}

	var items []model.InvoiceItemModel
	err = repo.db.WithContext(ctx).
		Where("invoice_id = ?", id).
		Order("description ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find invoice items")
	}

	detail := &entity.InvoiceDetail{
		Invoice: entity.Invoice{
			ID:             row.ID,
			CustomerID:     row.CustomerID,
			AmountInCents:  row.AmountInCents,
			Status:         entity.InvoiceStatus(row.Status),
			Date:           row.Date,
			BillingAddress: row.BillingAddress,
		},
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		CustomerImageURL: row.CustomerImageURL,
		Items:            make([]*entity.InvoiceItem, 0, len(items)),
	}
	for i := range items {
		detail.Items = append(detail.Items, &entity.InvoiceItem{
			ID:               items[i].ID,
			InvoiceID:        items[i].InvoiceID,
			Description:      items[i].Description,
			Quantity:         items[i].Quantity,
			UnitPriceInCents: items[i].UnitPriceInCents,
		})
	}

	return detail, nil
}

// Create inserts the invoice row. A missing customer surfaces as ErrInvoiceWriteFailed.
func (repo *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}

	invoiceM := fromInvoiceDomain(invoice)
	if err := repo.q.InvoiceModel.WithContext(ctx).Create(invoiceM); err != nil {
		if isIntegrityViolation(err) {
			return domainerrors.ErrInvoiceWriteFailed.WrapMessage(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	return nil
}

// UpdateFields never touches the date or billing address.
func (repo *invoiceRepository) UpdateFields(ctx context.Context, invoice *entity.Invoice) error {
	inv := repo.q.InvoiceModel
	result, err := inv.WithContext(ctx).
		Where(inv.ID.Eq(invoice.ID)).
		UpdateSimple(
			inv.CustomerID.Value(invoice.CustomerID),
			inv.AmountInCents.Value(invoice.AmountInCents),
			inv.Status.Value(string(invoice.Status)),
		)
	if err != nil {
		if isIntegrityViolation(err) {
			return domainerrors.ErrInvoiceWriteFailed.WrapMessage(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update invoice")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}

func (repo *invoiceRepository) DeleteItems(ctx context.Context, invoiceID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Delete(&model.InvoiceItemModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete invoice items")
	}

	return result.RowsAffected, nil
}

func (repo *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := repo.q.InvoiceModel.WithContext(ctx).
		Where(repo.q.InvoiceModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete invoice")
	}

	return result.RowsAffected, nil
}

func (repo *invoiceRepository) Totals(ctx context.Context) (*entity.InvoiceTotals, error) {
	var row model.InvoiceTotalsRow
	if err := repo.db.WithContext(ctx).Raw(invoiceTotalsQuery).Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate invoice totals")
	}

	return &entity.InvoiceTotals{
		Count:               row.Count,
		TotalPaidInCents:    row.PaidCents,
		TotalPendingInCents: row.PendingCents,
	}, nil
}

func toInvoiceListItems(rows []model.InvoiceRow) []*entity.InvoiceListItem {
	items := make([]*entity.InvoiceListItem, 0, len(rows))
	for i := range rows {
		items = append(items, &entity.InvoiceListItem{
			ID:               rows[i].ID,
			CustomerID:       rows[i].CustomerID,
			CustomerName:     rows[i].CustomerName,
			CustomerEmail:    rows[i].CustomerEmail,
			CustomerImageURL: rows[i].CustomerImageURL,
			AmountInCents:    rows[i].AmountInCents,
			Status:           entity.InvoiceStatus(rows[i].Status),
			Date:             rows[i].Date,
		})
	}

	return items
}

func fromInvoiceDomain(data *entity.Invoice) *model.InvoiceModel {
	return &model.InvoiceModel{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		AmountInCents:  data.AmountInCents,
		Status:         string(data.Status),
		Date:           data.Date,
		BillingAddress: data.BillingAddress,
	}
}
