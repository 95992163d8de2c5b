package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/metrics"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type alertService struct {
	alertRepo repository.AlertRepository
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	AlertRepo repository.AlertRepository
	Logger    *slog.Logger
	Metrics   *metrics.Metrics `optional:"true"`
}

// NewAlertService creates a new alert service instance
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		alertRepo: params.AlertRepo,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordAlert persists one unread alert.
func (srv *alertService) RecordAlert(ctx context.Context, parentID, teenID uuid.UUID, alertType entity.AlertType, message string) (uuid.UUID, error) {
	if !alertType.IsValid() {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("unknown alert type " + string(alertType))
	}

	alert := &entity.Alert{
		ID:        uuid.New(),
		ParentID:  parentID,
		TeenID:    teenID,
		Type:      alertType,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.alertRepo.CreateAlert(ctx, alert); err != nil {
		srv.metrics.IncAlertRecordError()
		srv.log(ctx).Error("Failed to record alert",
			slog.String("parent_id", parentID.String()),
			slog.String("teen_id", teenID.String()),
			slog.String("type", string(alertType)),
			slog.Any("error", err),
		)

		return uuid.Nil, storageError(err, "failed to record alert")
	}

	srv.metrics.IncAlertRecorded(string(alertType))

	return alert.ID, nil
}

// ListAlerts returns the parent's alerts, newest first.
func (srv *alertService) ListAlerts(ctx context.Context, parentID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Alert, error) {
	alerts, err := srv.alertRepo.FindAlertsByParent(ctx, parentID, unreadOnly, clampLimit(limit, constants.DefaultAlertLimit))
	if err != nil {
		return nil, storageError(err, "failed to list alerts")
	}

	return alerts, nil
}

// MarkAlertRead marks an alert read. An unknown alert or one addressed to
// another parent is reported as not found.
func (srv *alertService) MarkAlertRead(ctx context.Context, parentID, alertID uuid.UUID) error {
	err := srv.alertRepo.MarkAlertRead(ctx, parentID, alertID)
	if errors.Is(err, repository.ErrAlertNotFound) {
		return domainerrors.ErrAlertNotFound
	}
	if err != nil {
		return storageError(err, "failed to mark alert read")
	}

	return nil
}
