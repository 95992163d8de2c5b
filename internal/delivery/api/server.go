package api

import (
	"log/slog"

	"guardian/config"
	"guardian/internal/delivery"
	apimiddleware "guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/router"
	"guardian/internal/delivery/api/validator"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the parent and device facing API. REST calls may arrive
// over h2c from a proxy; the /ws upgrade always uses HTTP/1.1.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.JSONSerializer = validator.StrictJSONSerializer{}
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return delivery.NewEchoServer(
		params.Lc, "api", params.Cfg.HTTP.Port, params.Logger, e,
		delivery.WithH2C(params.Cfg.HTTP.Timeouts.IdleTimeout),
	), nil
}
