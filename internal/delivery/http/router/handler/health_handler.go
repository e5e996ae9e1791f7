package handler

import (
	"net/http"

	"acorn/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness only; it does not touch the database.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
