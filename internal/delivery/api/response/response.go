// Package response writes the JSON envelopes shared by every API endpoint.
package response

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Meta is attached to every envelope.
type Meta struct {
	RequestID string `json:"request_id"`
}

// SuccessEnvelope wraps a successful payload.
type SuccessEnvelope struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta"`
}

// ErrorBody is the machine readable part of a failure.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps a failure.
type ErrorEnvelope struct {
	Error *ErrorBody `json:"error"`
	Meta  *Meta      `json:"meta"`
}

func meta(c echo.Context) *Meta {
	return &Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data with the given status.
func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, SuccessEnvelope{Data: data, Meta: meta(c)})
}

// Error writes a failure envelope. Details never leave the server for
// auth failures or 5xx responses.
func Error(c echo.Context, status int, code, message string, details any) error {
	if status >= http.StatusInternalServerError || status == http.StatusUnauthorized || status == http.StatusForbidden {
		details = nil
	}

	return c.JSON(status, ErrorEnvelope{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// ValidationFailed writes a 400 listing the rejected fields.
func ValidationFailed(c echo.Context, fields any) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), fields)
}

func Unauthorized(c echo.Context, code, message string) error {
	return Error(c, http.StatusUnauthorized, code, message, nil)
}

func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}

// HandleAppError writes domain errors as their envelope. Anything else is
// returned with a stack for the error middleware to log as a 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr, err)
	}

	return errors.WithStack(err)
}

// AppError writes appErr, found somewhere in err's chain. 5xx failures are
// logged with the whole chain. A 400 reports the wrapping context, falling
// back to the error's own details.
func AppError(c echo.Context, appErr domainerrors.AppError, err error) error {
	status := appErr.HTTPCode()
	if status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).Error("request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
		)
	}

	var details any
	if status == http.StatusBadRequest {
		details = badRequestDetails(appErr, err)
	}

	return Error(c, status, appErr.ErrorCode(), appErr.Message(), details)
}

func badRequestDetails(appErr domainerrors.AppError, err error) any {
	full := err.Error()
	if wrapped := strings.TrimSuffix(full, ": "+appErr.Message()); wrapped != full {
		return wrapped
	}
	if appErr.Details() != "" {
		return appErr.Details()
	}

	return nil
}
