package handler

import (
	"net/http"

	"acorn/internal/delivery/http/response"
	"acorn/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	InvoiceUC   usecase.InvoiceQueryUsecase
}

type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	invoiceUC   usecase.InvoiceQueryUsecase
}

func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		invoiceUC:   params.InvoiceUC,
	}
}

// Overview handles GET /dashboard: summary cards and the latest invoices.
func (h *DashboardHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	cards, err := h.dashboardUC.FetchCardData(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	latest, err := h.invoiceUC.FetchLatestInvoices(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OverviewResponse{
		Cards:          toCardData(cards),
		LatestInvoices: toInvoiceListItems(latest),
	})
}
