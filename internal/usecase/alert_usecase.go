package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertUsecase defines the interface for alert use cases
type AlertUsecase interface {
	// RecordAlert persists one unread alert and returns its ID. A store
	// failure is reported as ErrStorageUnavailable.
	RecordAlert(ctx context.Context, parentID, teenID uuid.UUID, alertType entity.AlertType, message string) (uuid.UUID, error)

	// ListAlerts returns the parent's alerts, newest first
	ListAlerts(ctx context.Context, parentID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Alert, error)

	// MarkAlertRead marks an alert read. Repeating it succeeds.
	MarkAlertRead(ctx context.Context, parentID, alertID uuid.UUID) error
}
