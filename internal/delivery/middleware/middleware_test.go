package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	long := strings.Repeat("a", maxRequestIDLength+1)

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "absent", header: ""},
		{name: "kept", header: "req-42", keep: true},
		{name: "too long", header: long},
		{name: "control characters", header: "abc\x01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(RequestID(slog.Default()))

			var fromCtx string
			e.GET("/", func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(echo.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, fromCtx)
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	newServer := func(debug bool) (*echo.Echo, *bytes.Buffer) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(RequestID(logger))
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/ws", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.GET("/missing", func(echo.Context) error { return domainerrors.ErrTeenNotFound })

		return e, &buf
	}

	t.Run("redacts the live token", func(t *testing.T) {
		e, buf := newServer(true)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ws?token=secret", nil))

		assert.Contains(t, buf.String(), "REDACTED")
		assert.NotContains(t, buf.String(), "secret")
	})

	t.Run("health checks stay quiet", func(t *testing.T) {
		e, buf := newServer(true)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("failures are logged outside debug", func(t *testing.T) {
		e, buf := newServer(false)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Contains(t, buf.String(), "status=404")
		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("successes are skipped outside debug", func(t *testing.T) {
		e, buf := newServer(false)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ws", nil))

		assert.Empty(t, buf.String())
	})
}
