package response

import (
	"net/http"

	deliverycontext "acorn/internal/delivery/context"
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderFlash carries the notice of a redirecting action, e.g. "Account created. Please log in."
const HeaderFlash = "X-Flash-Message"

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Field errors of a failed form (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// MessageData is the payload of an action that succeeded without navigating away.
type MessageData struct {
	Message string `json:"message"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// TooManyRequests returns a 429 error
func TooManyRequests(c echo.Context, message string) error {
	return Error(c, http.StatusTooManyRequests, "RATE_LIMITED", message, nil)
}

// ActionResult translates a form action outcome:
//
//	Success with a target    303 See Other to the target
//	Success without target   200 with the message
//	ValidationError          422 with field errors as details
//	ServerError              500 with the generic message
func ActionResult(c echo.Context, result *usecase.ActionResult) error {
	switch {
	case result == nil:
		return errors.WithStack(domainerrors.ErrInternalError)
	case result.ShouldRedirect():
		if result.Message != "" {
			c.Response().Header().Set(HeaderFlash, result.Message)
		}

		return c.Redirect(http.StatusSeeOther, result.RedirectTo)
	case result.IsSuccess():
		return Success(c, http.StatusOK, MessageData{Message: result.Message})
	case result.Kind == usecase.ResultValidationError:
		return Error(c, http.StatusUnprocessableEntity, domainerrors.ErrValidationFailed.ErrorCode(), result.Message, result.FieldErrors)
	default:
		return InternalServerError(c, "SERVER_ERROR", result.Message)
	}
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
