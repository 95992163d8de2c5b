package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"guardian/config"
	"guardian/internal/delivery/middleware"
	"guardian/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// NewEcho returns an echo instance carrying the middleware every transport
// shares: panic recovery, then request ID, then access logging.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID(logger))
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

// EchoServer serves an echo instance on one port until the fx app stops.
type EchoServer struct {
	name   string
	port   int
	logger *slog.Logger
	echo   *echo.Echo
	h2c    *http2.Server
}

// EchoServerOption tweaks an EchoServer.
type EchoServerOption func(*EchoServer)

// WithH2C serves cleartext HTTP/2 next to HTTP/1.1.
func WithH2C(idleTimeout time.Duration) EchoServerOption {
	return func(s *EchoServer) {
		s.h2c = &http2.Server{IdleTimeout: idleTimeout}
	}
}

// NewEchoServer wraps e and registers its shutdown on lc.
func NewEchoServer(lc fx.Lifecycle, name string, port int, logger *slog.Logger, e *echo.Echo, opts ...EchoServerOption) *EchoServer {
	srv := &EchoServer{
		name:   name,
		port:   port,
		logger: logger.With(slog.String("server", name)),
		echo:   e,
	}
	for _, opt := range opts {
		opt(srv)
	}

	lc.Append(fx.Hook{OnStop: srv.shutdown})

	return srv
}

// Serve blocks until the listener fails or the server is shut down.
func (s *EchoServer) Serve(_ context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("http server listening", slog.String("addr", addr), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(addr, s.h2c)
	} else {
		err = s.echo.Start(addr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.Wrapf(err, "%s server", s.name)
}

func (s *EchoServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("http server shutting down")

	return errors.Wrapf(s.echo.Shutdown(ctx), "shutdown %s server", s.name)
}
