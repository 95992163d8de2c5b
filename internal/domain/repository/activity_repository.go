package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityRepository stores app usage, app controls and web history
// reported from teen devices.
type ActivityRepository interface {
	// UpsertAppUsage creates or overwrites the record for (teen, package, date)
	// and loads the stored row back into usage.
	UpsertAppUsage(ctx context.Context, usage *entity.AppUsage) (created bool, err error)

	// FindAppUsage returns usage records for a teen, optionally for one date.
	FindAppUsage(ctx context.Context, teenID uuid.UUID, date string) ([]*entity.AppUsage, error)

	// UpsertAppControl creates or overwrites the control for (teen, package)
	// and loads the stored row back into control.
	UpsertAppControl(ctx context.Context, control *entity.AppControl) (created bool, err error)

	// FindAppControls returns all controls for a teen.
	FindAppControls(ctx context.Context, teenID uuid.UUID) ([]*entity.AppControl, error)

	// RecordWebVisit inserts a URL or increments its visit count and loads
	// the stored row back into visit.
	RecordWebVisit(ctx context.Context, visit *entity.WebHistory) (created bool, err error)

	// FindWebHistory returns up to limit entries, newest first.
	FindWebHistory(ctx context.Context, teenID uuid.UUID, limit int) ([]*entity.WebHistory, error)
}
