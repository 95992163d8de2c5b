// Command guardian serves the parent and device API together with the live
// alert channel.
package main

import (
	"context"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/delivery/api"
	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/router/handler"
	"guardian/internal/domain/geofence"
	"guardian/internal/domain/service"
	"guardian/internal/infra/auth"
	"guardian/internal/infra/cache"
	"guardian/internal/infra/live"
	logs "guardian/internal/infra/log"
	"guardian/internal/infra/metrics"
	"guardian/internal/infra/occupancy"
	"guardian/internal/infra/persistence/postgres"
	"guardian/internal/infra/pubsub"
	"guardian/internal/infra/qrcode"
	"guardian/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	// Local overrides, absent in deployed environments
	_ = godotenv.Load(".env.local")

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectLive(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		delivery.Provide(api.NewServer),
		fx.Invoke(delivery.Start),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
		newMetrics,
	)
}

// newMetrics returns nil when metrics are disabled; every consumer accepts nil.
func newMetrics(cfg *config.Config) *metrics.Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nil
	}

	return metrics.NewDefault()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewParentRepository,
			postgres.NewTeenRepository,
			postgres.NewLocationRepository,
			postgres.NewGeofenceRepository,
			postgres.NewAlertRepository,
			postgres.NewActivityRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			newEvaluator,
			occupancy.NewTracker,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newEvaluator(cfg *config.Config) (*geofence.Evaluator, error) {
	return geofence.NewEvaluator(cfg.Geofence.DistanceModel, cfg.Geofence.MetersPerDegree)
}

func injectLive() fx.Option {
	return fx.Options(
		fx.Provide(
			live.NewRegistry,
			live.NewNotifier,
		),
		fx.Invoke(closeLiveSessions),
	)
}

// closeLiveSessions ends every open websocket before the HTTP server stops.
func closeLiveSessions(lc fx.Lifecycle, registry *live.Registry) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			registry.CloseAll("server shutting down")

			return nil
		},
	})
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewParentService,
			impl.NewTeenService,
			impl.NewAlertService,
			impl.NewLocationService,
			impl.NewGeofenceService,
			impl.NewActivityService,
			impl.NewDashboardService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewTeenHandler,
			handler.NewLocationHandler,
			handler.NewGeofenceHandler,
			handler.NewActivityHandler,
			handler.NewAlertHandler,
			handler.NewDeviceHandler,
			handler.NewLiveHandler,
		),
	)
}
