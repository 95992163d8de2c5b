package usecase

import (
	"context"

	"guardian/internal/domain/service"
)

// AlertDispatchUsecase delivers published alert events to parent devices
type AlertDispatchUsecase interface {
	// DispatchAlert pushes the event to every active device of the parent
	DispatchAlert(ctx context.Context, event *service.AlertEvent) error
}
