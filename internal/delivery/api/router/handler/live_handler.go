package handler

import (
	"log/slog"
	"net/http"
	"time"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/infra/live"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LiveHandlerParams holds dependencies for LiveHandler, injected by Fx.
type LiveHandlerParams struct {
	fx.In

	Registry *live.Registry
	Config   *config.Config
	Logger   *slog.Logger
}

// LiveHandler upgrades parents to the live alert channel
type LiveHandler struct {
	registry *live.Registry
	opts     live.SessionOptions
	accept   *websocket.AcceptOptions
	logger   *slog.Logger
}

// NewLiveHandler is the constructor for LiveHandler
func NewLiveHandler(params LiveHandlerParams) *LiveHandler {
	return &LiveHandler{
		registry: params.Registry,
		opts: live.SessionOptions{
			WriteTimeout: params.Config.Live.WriteTimeout,
			PingInterval: params.Config.Live.PingInterval,
		},
		accept: &websocket.AcceptOptions{OriginPatterns: params.Config.Live.OriginPatterns},
		logger: params.Logger,
	}
}

// Connect accepts the websocket and holds it until the client disconnects.
func (h *LiveHandler) Connect(c echo.Context) error {
	parentID, err := requireParent(c)
	if err != nil {
		return err
	}

	// The server's read and write timeouts would otherwise cut long sessions.
	rc := http.NewResponseController(c.Response())
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(c.Response(), c.Request(), h.accept)
	if err != nil {
		// Accept has already written the failure response.
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Websocket upgrade failed",
			slog.Any("error", err),
		)

		return nil
	}

	live.Serve(c.Request().Context(), h.registry, parentID, conn, h.opts, h.logger)

	return nil
}
