// Package handler serves the alert worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/constants"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/infra/pubsub"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler receives alert events pushed by Pub/Sub. The status it
// answers drives redelivery: 503 asks for another attempt, 200 and 4xx
// settle the message.
type PushHandler struct {
	auth       *pushAuthenticator
	logger     *slog.Logger
	dispatchUC usecase.AlertDispatchUsecase
}

type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.AlertDispatchUsecase
}

// NewPushHandler requires Google-signed push tokens when running against
// real Pub/Sub outside the develop environment.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:     params.Logger,
		dispatchUC: params.DispatchUC,
	}

	cfg := params.Config
	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderGoogle && cfg.Env.Env != constants.EnvDevelop {
		h.auth = &pushAuthenticator{validate: idtoken.Validate}
	}

	return h
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.auth != nil {
		if err := h.auth.verify(c.Request()); err != nil {
			h.logger.Warn("push rejected", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("push envelope unreadable", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeAlertEvent()
	if err != nil {
		h.logger.Error("alert event unreadable",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, logger := h.eventContext(c.Request().Context(), &envelope, event)

	return c.NoContent(h.dispatch(ctx, logger, event))
}

// eventContext carries the request ID of the API call that raised the alert
// so both services' logs join on it.
func (h *PushHandler) eventContext(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.AlertEvent) (context.Context, *slog.Logger) {
	requestID := firstNonEmpty(
		envelope.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("alert_id", event.AlertID),
		slog.String("parent_id", event.ParentID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	return ctx, logger
}

func (h *PushHandler) dispatch(ctx context.Context, logger *slog.Logger, event *service.AlertEvent) int {
	err := h.dispatchUC.DispatchAlert(ctx, event)
	if err == nil {
		logger.Info("alert dispatched", slog.String("alert_type", event.AlertType))

		return http.StatusOK
	}

	if errors.Is(err, domainerrors.ErrStorageUnavailable) {
		logger.Error("alert dispatch failed, asking for redelivery", slog.Any("error", err))

		return http.StatusServiceUnavailable
	}

	logger.Error("alert dispatch failed permanently", slog.Any("error", err))

	return http.StatusOK
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
