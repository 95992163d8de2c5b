package worker

import (
	"log/slog"
	"net/http"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the alert worker.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer exposes the Pub/Sub push endpoint on the worker port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)
	registerRoutes(e, params.PushHandler)

	return delivery.NewEchoServer(params.Lc, "alert-worker", params.Cfg.HTTP.WorkerPort, params.Logger, e), nil
}

func registerRoutes(e *echo.Echo, push *handler.PushHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.POST("/push", push.HandlePush)
}
