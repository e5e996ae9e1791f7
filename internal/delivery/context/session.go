package context

import (
	"acorn/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const echoKeySessionUser = "session_user"

// SetSessionUser stores the principal resolved by the session gate.
func SetSessionUser(c echo.Context, user *entity.SessionUser) {
	c.Set(echoKeySessionUser, user)
}

// GetSessionUser returns the principal stored by the session gate.
func GetSessionUser(c echo.Context) (*entity.SessionUser, bool) {
	user, ok := c.Get(echoKeySessionUser).(*entity.SessionUser)

	return user, ok && user != nil
}
