package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "acorn/internal/delivery/context"
	"acorn/internal/domain/entity"
	"acorn/internal/domain/repository"
	"acorn/internal/domain/service"
	"acorn/internal/usecase"
	"acorn/internal/usecase/schema"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	MsgCreateInvalid = "Missing or invalid fields. Failed to create invoice."
	MsgCreateFailed  = "Database error: failed to create invoice."
	MsgUpdateInvalid = "Missing or invalid fields. Failed to update invoice."
	MsgUpdateFailed  = "Database error: failed to update invoice."
	MsgUpdateMissing = "Invoice not found."
	MsgDeleteInvalid = "Invalid invoice id. Failed to delete invoice."
	MsgDeleteFailed  = "Database error: failed to delete invoice."
	MsgDeleted       = "Deleted invoice."
)

// invoiceMutationService implements the InvoiceMutationUsecase interface.
type invoiceMutationService struct {
	txManager   repository.TransactionManager
	invoiceRepo repository.InvoiceRepository
	cache       service.ViewCache
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// InvoiceMutationServiceParams holds dependencies for InvoiceMutationService, injected by Fx.
type InvoiceMutationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	InvoiceRepo repository.InvoiceRepository
	Cache       service.ViewCache
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewInvoiceMutationService is the constructor for invoiceMutationService.
func NewInvoiceMutationService(params InvoiceMutationServiceParams) usecase.InvoiceMutationUsecase {
	return &invoiceMutationService{
		txManager:   params.TxManager,
		invoiceRepo: params.InvoiceRepo,
		cache:       params.Cache,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *invoiceMutationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// today is the current UTC calendar day.
func (srv *invoiceMutationService) today() time.Time {
	return srv.now().UTC().Truncate(24 * time.Hour)
}

// CreateInvoice validates the form, inserts a new invoice dated today and redirects to the list.
func (srv *invoiceMutationService) CreateInvoice(ctx context.Context, input usecase.InvoiceFormInput) *usecase.ActionResult {
	fields, fieldErrs := schema.ParseInvoiceForm(input)
	if fieldErrs != nil {
		srv.log(ctx).Info("Invoice create rejected", slog.Any("fields", fieldErrs))

		return usecase.Invalid(fieldErrs, MsgCreateInvalid)
	}

	invoice := &entity.Invoice{
		CustomerID:    fields.CustomerID,
		AmountInCents: fields.AmountInCents,
		Status:        fields.Status,
		Date:          srv.today(),
	}

	if err := srv.invoiceRepo.Create(ctx, invoice); err != nil {
		srv.log(ctx).Error("Failed to create invoice", slog.Any("error", err), slog.String("customer_id", fields.CustomerID.String()))

		return usecase.Failed(MsgCreateFailed)
	}

	srv.log(ctx).Info("Invoice created", slog.String("invoice_id", invoice.ID.String()))

	srv.revalidate(usecase.PathInvoices, usecase.PathDashboard)
	srv.publish(ctx, service.InvoiceEventCreated, invoice)

	return usecase.Redirect(usecase.PathInvoices)
}

// UpdateInvoice changes customer, amount and status of an existing invoice. Date is never touched.
func (srv *invoiceMutationService) UpdateInvoice(ctx context.Context, id string, input usecase.InvoiceFormInput) *usecase.ActionResult {
	invoiceID, idOK := schema.ParseInvoiceID(id)
	fields, fieldErrs := schema.ParseInvoiceForm(input)

	if !idOK {
		if fieldErrs == nil {
			fieldErrs = usecase.FieldErrors{}
		}
		fieldErrs.Add("id", schema.MsgInvalidInvoice)
	}

	if fieldErrs != nil {
		srv.log(ctx).Info("Invoice update rejected", slog.Any("fields", fieldErrs))

		return usecase.Invalid(fieldErrs, MsgUpdateInvalid)
	}

	invoice := &entity.Invoice{
		ID:            invoiceID,
		CustomerID:    fields.CustomerID,
		AmountInCents: fields.AmountInCents,
		Status:        fields.Status,
	}

	if err := srv.invoiceRepo.UpdateFields(ctx, invoice); err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			srv.log(ctx).Info("Invoice to update not found", slog.String("invoice_id", invoiceID.String()))

			return usecase.Failed(MsgUpdateMissing)
		}
		srv.log(ctx).Error("Failed to update invoice", slog.Any("error", err), slog.String("invoice_id", invoiceID.String()))

		return usecase.Failed(MsgUpdateFailed)
	}

	srv.log(ctx).Info("Invoice updated", slog.String("invoice_id", invoiceID.String()))

	srv.revalidate(usecase.PathInvoices, usecase.InvoiceDetailPath(invoiceID), usecase.PathDashboard)
	srv.publish(ctx, service.InvoiceEventUpdated, invoice)

	return usecase.Redirect(usecase.PathInvoices)
}

// DeleteInvoice removes an invoice and its items. Deleting a missing invoice succeeds without effect.
func (srv *invoiceMutationService) DeleteInvoice(ctx context.Context, id string) *usecase.ActionResult {
	invoiceID, ok := schema.ParseInvoiceID(id)
	if !ok {
		return usecase.Invalid(usecase.FieldErrors{"id": {schema.MsgInvalidInvoice}}, MsgDeleteInvalid)
	}

	var removed int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invoiceRepo := repoFactory.NewInvoiceRepository()

		if _, err := invoiceRepo.DeleteItems(ctx, invoiceID); err != nil {
			return errors.Wrap(err, "failed to delete invoice items")
		}

		rows, err := invoiceRepo.Delete(ctx, invoiceID)
		if err != nil {
			return errors.Wrap(err, "failed to delete invoice")
		}
		removed = rows

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete invoice", slog.Any("error", err), slog.String("invoice_id", invoiceID.String()))

		return usecase.Failed(MsgDeleteFailed)
	}

	srv.revalidate(usecase.PathInvoices, usecase.InvoiceDetailPath(invoiceID), usecase.PathDashboard)

	if removed == 0 {
		srv.log(ctx).Debug("Invoice to delete did not exist", slog.String("invoice_id", invoiceID.String()))

		return usecase.Done(MsgDeleted)
	}

	srv.log(ctx).Info("Invoice deleted", slog.String("invoice_id", invoiceID.String()))
	srv.publish(ctx, service.InvoiceEventDeleted, &entity.Invoice{ID: invoiceID})

	return usecase.Done(MsgDeleted)
}

func (srv *invoiceMutationService) revalidate(paths ...string) {
	for _, path := range paths {
		srv.cache.Revalidate(path)
	}
}

// publish emits an invoice event. The mutation is already committed, so failures are only logged.
func (srv *invoiceMutationService) publish(ctx context.Context, eventType service.InvoiceEventType, invoice *entity.Invoice) {
	event := &service.InvoiceEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		InvoiceID:     invoice.ID.String(),
		AmountInCents: invoice.AmountInCents,
		Status:        string(invoice.Status),
		OccurredAt:    srv.now().UTC(),
	}
	if invoice.CustomerID != uuid.Nil {
		event.CustomerID = invoice.CustomerID.String()
	}

	if err := srv.publisher.PublishInvoiceEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish invoice event",
			slog.Any("error", err),
			slog.String("type", string(eventType)),
			slog.String("invoice_id", event.InvoiceID))
	}
}
