package live

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/service"
	"guardian/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notifier struct {
	registry *Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NotifierParams holds dependencies for the live notifier
type NotifierParams struct {
	fx.In

	Registry *Registry
	Logger   *slog.Logger
	Metrics  *metrics.Metrics `optional:"true"`
}

// NewNotifier creates the LiveNotifier backed by the registry.
func NewNotifier(params NotifierParams) service.LiveNotifier {
	return &notifier{
		registry: params.Registry,
		logger:   params.Logger,
		metrics:  params.Metrics,
	}
}

// Notify marshals payload and sends it at most once. Every failure is
// logged and counted here and never returned.
func (n *notifier) Notify(ctx context.Context, parentID uuid.UUID, payload any) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("Failed to encode live payload",
			slog.String("parent_id", parentID.String()),
			slog.Any("error", err),
		)
		n.metrics.IncLivePush(metrics.PushFailed)

		return
	}

	err = n.registry.TrySend(ctx, parentID, body)
	switch {
	case err == nil:
		n.metrics.IncLivePush(metrics.PushSent)
	case errors.Is(err, ErrNoChannel):
		logger.Debug("No live session for parent",
			slog.String("parent_id", parentID.String()),
		)
		n.metrics.IncLivePush(metrics.PushNoChannel)
	default:
		logger.Warn("Live push failed",
			slog.String("parent_id", parentID.String()),
			slog.Any("error", err),
		)
		n.metrics.IncLivePush(metrics.PushFailed)
	}
}
