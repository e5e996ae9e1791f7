package handler

import (
	"strconv"
	"strings"

	domainerrors "acorn/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindListQuery reads ?query=&page=. A missing or malformed page is page 1.
func bindListQuery(c echo.Context) (string, int, error) {
	var req ListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return "", 0, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return "", 0, err
	}

	page, err := strconv.Atoi(strings.TrimSpace(req.Page))
	if err != nil || page < 1 {
		page = 1
	}

	return strings.TrimSpace(req.Query), page, nil
}
