// Package response renders the JSON envelopes shared by every endpoint.
package response

import (
	"net/http"
	"strings"

	deliverycontext "bookclub/internal/delivery/context"
	domainerrors "bookclub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

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
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
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
	// Details should not be included for 5xx errors or authentication errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized {
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

// BindingError returns a 400 error for bodies or parameters echo could not bind
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), message, nil)
}

// HandleAppError renders err when it carries an AppError and reports whether it did.
func HandleAppError(c echo.Context, err error) (bool, error) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false, nil
	}

	var details any
	if d := appErrorDetails(err, appErr); d != "" {
		details = d
	}

	return true, Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// appErrorDetails prefers explicit details, then the context added by errors.Wrap.
func appErrorDetails(err error, appErr domainerrors.AppError) string {
	if d := appErr.Details(); d != "" {
		return d
	}

	wrapped := strings.TrimSuffix(err.Error(), appErr.Error())
	wrapped = strings.TrimSuffix(wrapped, ": ")
	if wrapped == err.Error() {
		return ""
	}

	return wrapped
}
