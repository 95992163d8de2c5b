package middleware

import (
	"log/slog"
	"unicode"

	deliverycontext "guardian/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestID tags every request with an ID and a logger carrying it. A
// caller supplied X-Request-Id is kept when it is short printable ASCII.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if !acceptableRequestID(id) {
				id = uuid.NewString()
			}
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)
			deliverycontext.SetRequestID(c, id)

			ctx := deliverycontext.WithRequestID(c.Request().Context(), id)
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", id)))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return false
		}
	}

	return true
}
