package impl

import (
	"context"
	"log/slog"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	alertPushTitle = "Guardian alert"
)

type alertDispatchService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// AlertDispatchServiceParams holds dependencies for AlertDispatchService, injected by Fx.
type AlertDispatchServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService `optional:"true"`
	Logger          *slog.Logger
}

// NewAlertDispatchService creates the service that pushes alert events to
// parent devices through FCM.
func NewAlertDispatchService(params AlertDispatchServiceParams) usecase.AlertDispatchUsecase {
	return &alertDispatchService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *alertDispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// DispatchAlert sends the alert to every active device of the parent and
// deactivates devices whose tokens FCM rejects. A malformed event is
// reported as an error; a device lookup failure is a storage error.
func (s *alertDispatchService) DispatchAlert(ctx context.Context, event *service.AlertEvent) error {
	parentID, err := uuid.Parse(event.ParentID)
	if err != nil {
		return errors.Wrap(err, "invalid parent id in alert event")
	}

	if s.notificationSvc == nil {
		s.log(ctx).Warn("Push notifications are not configured, dropping alert event",
			slog.String("alert_id", event.AlertID),
		)

		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByParent(ctx, parentID)
	if err != nil {
		return storageError(err, "failed to fetch parent devices")
	}
	if len(devices) == 0 {
		s.log(ctx).Info("No active devices for parent",
			slog.String("alert_id", event.AlertID),
			slog.String("parent_id", event.ParentID),
		)

		return nil
	}

	deviceMap := make(map[string]*entity.ParentDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	data := map[string]string{
		"alert_id":   event.AlertID,
		"teen_id":    event.TeenID,
		"alert_type": event.AlertType,
		"fence_name": event.FenceName,
		"action":     event.Action,
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)

	for idx := 0; idx < len(tokens); idx += firebaseBatchSize {
		end := min(idx+firebaseBatchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalidTokens, sendErr := s.notificationSvc.SendBatchNotification(
			ctx, batch, alertPushTitle, event.Message, data,
		)
		if sendErr != nil {
			// Log error but continue with other batches
			s.log(ctx).Error("Failed to send alert batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			totalFailed += len(batch)

			continue
		}

		totalSent += successCount
		totalFailed += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	s.deactivateInvalidTokens(ctx, invalidTokens, deviceMap)

	s.log(ctx).Info("Alert push completed",
		slog.String("alert_id", event.AlertID),
		slog.Int("total_sent", totalSent),
		slog.Int("total_failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// deactivateInvalidTokens stops pushing to devices FCM no longer accepts
func (s *alertDispatchService) deactivateInvalidTokens(ctx context.Context, invalidTokens []string, deviceMap map[string]*entity.ParentDevice) {
	for _, token := range invalidTokens {
		device, ok := deviceMap[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
			s.log(ctx).Warn("Failed to deactivate invalid device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}
