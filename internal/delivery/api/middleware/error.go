package middleware

import (
	"log/slog"
	"net/http"

	"guardian/internal/delivery/api/response"
	"guardian/internal/delivery/api/validator"
	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns handler errors into response envelopes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)
	switch fields := validator.FieldErrors(err); {
	case errors.As(err, &appErr):
		_ = response.AppError(c, appErr, err)
	case fields != nil:
		_ = response.ValidationFailed(c, fields)
	case errors.As(err, &httpErr):
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", httpErrorMessage(httpErr), nil)
	default:
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("unhandled error",
			slog.Any("error", err),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
		)
		_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
	}
}

func httpErrorMessage(err *echo.HTTPError) string {
	if msg, ok := err.Message.(string); ok {
		return msg
	}

	return http.StatusText(err.Code)
}
