// Package context moves request scoped values from echo into the
// context.Context seen by use cases and workers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey uint8

const (
	requestIDKey ctxKey = iota + 1
	loggerKey
)

// KeyRequestID is the echo.Context key holding the request ID.
const KeyRequestID = "request_id"

// HeaderXRequestID carries the request ID between services.
const HeaderXRequestID = echo.HeaderXRequestID

// GetRequestID returns the request ID stored on c. A request that never
// passed the request ID middleware gets a fresh one.
func GetRequestID(c echo.Context) string {
	if id, _ := c.Get(KeyRequestID).(string); id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores the request ID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(KeyRequestID, requestID)
}

// WithRequestID attaches the request ID to ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID on ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger attaches a request scoped logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the logger on ctx, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the logger on ctx, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithParentLogger tags the request logger with the authenticated parent so
// that use case logs can be traced to an account.
func WithParentLogger(c echo.Context, parentID uuid.UUID, fallback *slog.Logger) {
	req := c.Request()
	logger := GetLoggerOrDefault(req.Context(), fallback).With(slog.String("parent_id", parentID.String()))
	c.SetRequest(req.WithContext(WithLogger(req.Context(), logger)))
}
