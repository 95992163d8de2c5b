package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// quietPaths are polled by health checks and scrapers and only logged on failure.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// LoggerMiddleware logs every request in debug mode and only failed
// requests otherwise.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && status < 400 {
			// The error handler has not written yet.
			status = httpStatusFromError(err)
		}

		_, quiet := quietPaths[c.Path()]
		if status >= 400 || (m.debug && !quiet) {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func httpStatusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if parentID := c.Get(deliverycontext.KeyParentID); parentID != nil {
		fields = append(fields, slog.Any("parent_id", parentID))
	}

	if len(req.URL.RawQuery) > 0 {
		query := req.URL.Query()
		// The live channel authenticates with ?token=
		if query.Has("token") {
			query.Set("token", "REDACTED")
		}
		fields = append(fields, slog.String("query", query.Encode()))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
