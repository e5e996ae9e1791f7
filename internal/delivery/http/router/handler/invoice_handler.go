package handler

import (
	"log/slog"
	"net/http"

	"acorn/internal/delivery/http/response"
	"acorn/internal/domain/service"
	"acorn/internal/infra/metrics"
	"acorn/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InvoiceHandlerParams holds dependencies for InvoiceHandler, injected by Fx.
type InvoiceHandlerParams struct {
	fx.In

	QueryUC    usecase.InvoiceQueryUsecase
	MutationUC usecase.InvoiceMutationUsecase
	QRCode     service.QRCodeService
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// InvoiceHandler holds dependencies for invoice handlers
type InvoiceHandler struct {
	queryUC    usecase.InvoiceQueryUsecase
	mutationUC usecase.InvoiceMutationUsecase
	qrCode     service.QRCodeService
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{
		queryUC:    params.QueryUC,
		mutationUC: params.MutationUC,
		qrCode:     params.QRCode,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

// List handles GET /dashboard/invoices?query=&page=
func (h *InvoiceHandler) List(c echo.Context) error {
	query, page, err := bindListQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.queryUC.FetchFilteredInvoices(c.Request().Context(), query, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toInvoicePage(result))
}

// Detail handles GET /dashboard/invoices/:id
func (h *InvoiceHandler) Detail(c echo.Context) error {
	detail, found, err := h.queryUC.FetchInvoiceByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !found {
		return response.NotFound(c, "INVOICE_NOT_FOUND", "Invoice not found.")
	}

	return response.Success(c, http.StatusOK, toInvoiceDetail(detail))
}

func (h *InvoiceHandler) Create(c echo.Context) error {
	result := h.mutationUC.CreateInvoice(c.Request().Context(), invoiceForm(c))
	h.metrics.ActionResult("invoice_create", string(result.Kind))

	return response.ActionResult(c, result)
}

func (h *InvoiceHandler) Update(c echo.Context) error {
	result := h.mutationUC.UpdateInvoice(c.Request().Context(), c.Param("id"), invoiceForm(c))
	h.metrics.ActionResult("invoice_update", string(result.Kind))

	return response.ActionResult(c, result)
}

func (h *InvoiceHandler) Delete(c echo.Context) error {
	result := h.mutationUC.DeleteInvoice(c.Request().Context(), c.Param("id"))
	h.metrics.ActionResult("invoice_delete", string(result.Kind))

	return response.ActionResult(c, result)
}

// QRCode handles GET /dashboard/invoices/:id/qrcode and only renders codes for existing invoices.
func (h *InvoiceHandler) QRCode(c echo.Context) error {
	detail, found, err := h.queryUC.FetchInvoiceByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !found {
		return response.NotFound(c, "INVOICE_NOT_FOUND", "Invoice not found.")
	}

	png, err := h.qrCode.GenerateInvoiceQR(detail.ID)
	if err != nil {
		return errors.Wrap(err, "generate invoice qr code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func invoiceForm(c echo.Context) usecase.InvoiceFormInput {
	return usecase.InvoiceFormInput{
		CustomerID: c.FormValue("customerId"),
		Amount:     c.FormValue("amount"),
		Status:     c.FormValue("status"),
	}
}
