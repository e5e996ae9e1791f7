package handler

import (
	"net/http"

	"acorn/internal/delivery/http/response"
	"acorn/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerQueryUsecase
}

type CustomerHandler struct {
	customerUC usecase.CustomerQueryUsecase
}

func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{customerUC: params.CustomerUC}
}

// List handles GET /dashboard/customers?query=&page=
func (h *CustomerHandler) List(c echo.Context) error {
	query, page, err := bindListQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.customerUC.FetchFilteredCustomers(c.Request().Context(), query, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCustomerPage(result))
}

// Options handles GET /dashboard/customers/options, the invoice form's customer select.
func (h *CustomerHandler) Options(c echo.Context) error {
	options, err := h.customerUC.FetchCustomersForSelect(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCustomerOptions(options))
}
