// Command alertworker receives alert events from Pub/Sub push and fans them
// out to the parent's registered devices through Firebase Cloud Messaging.
package main

import (
	"context"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/delivery/worker"
	"guardian/internal/delivery/worker/handler"
	logs "guardian/internal/infra/log"
	"guardian/internal/infra/notification"
	"guardian/internal/infra/persistence/postgres"
	"guardian/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	_ = godotenv.Load(".env.local")

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Module("dispatch",
			fx.Provide(
				postgres.NewDeviceRepository,
				notification.NewFirebaseService,
				impl.NewAlertDispatchService,
				handler.NewPushHandler,
			),
		),
		delivery.Provide(worker.NewServer),
		fx.Invoke(delivery.Start),
	).Run()
}
