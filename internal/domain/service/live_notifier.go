package service

import (
	"context"

	"github.com/google/uuid"
)

// LiveNotifier pushes a message to a parent's live session if one is open.
// Delivery is at-most-once and failures never reach the caller.
type LiveNotifier interface {
	Notify(ctx context.Context, parentID uuid.UUID, payload any)
}

// GeofenceAlertMessage is the live payload sent for a fence transition.
type GeofenceAlertMessage struct {
	Type        string `json:"type"`
	SubjectName string `json:"subject_name"`
	FenceName   string `json:"fence_name"`
	Action      string `json:"action"`
}
