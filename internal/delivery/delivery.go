// Package delivery holds the transports that expose the use cases.
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// GroupTag collects every Delivery provided to the fx graph.
const GroupTag = `group:"deliveries"`

// Delivery is a long running transport started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}

// StartParams holds the deliveries registered under GroupTag.
type StartParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Start serves each delivery in its own goroutine. A delivery that fails
// shuts the whole app down so the OnStop hooks still run.
func Start(ctx context.Context, params StartParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}
			params.Logger.Error("delivery stopped", slog.Any("error", err))

			if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				params.Logger.Error("graceful shutdown failed", slog.Any("error", shutdownErr))
				os.Exit(1)
			}
		}()
	}
}

// Provide registers constructor as a member of the deliveries group.
func Provide(constructor any) fx.Option {
	return fx.Provide(fx.Annotate(constructor, fx.ResultTags(GroupTag)))
}
