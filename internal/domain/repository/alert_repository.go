package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when an alert is not found for the parent.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines alert persistence.
type AlertRepository interface {
	// CreateAlert appends an alert.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindAlertsByParent returns up to limit alerts, newest first.
	FindAlertsByParent(ctx context.Context, parentID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Alert, error)

	// FindUnreadAlertsByTeen returns up to limit unread alerts for one teen of a parent, newest first.
	FindUnreadAlertsByTeen(ctx context.Context, parentID, teenID uuid.UUID, limit int) ([]*entity.Alert, error)

	// MarkAlertRead sets is_read on an alert owned by the parent. Marking an
	// already read alert succeeds.
	MarkAlertRead(ctx context.Context, parentID, alertID uuid.UUID) error
}
