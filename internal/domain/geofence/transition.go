package geofence

import (
	"fmt"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// Action is the direction of a fence transition as shown to parents.
type Action string

const (
	ActionEntered Action = "entered"
	ActionExited  Action = "exited"
)

// Transition is one notifiable change of a teen's position relative to a fence.
type Transition struct {
	Fence  *entity.Geofence
	Action Action
}

// AlertType maps the transition to its alert category.
func (t Transition) AlertType() entity.AlertType {
	if t.Action == ActionExited {
		return entity.AlertTypeGeofenceExit
	}

	return entity.AlertTypeGeofenceEnter
}

// Message renders the alert text for the transition.
func (t Transition) Message(teenName string) string {
	if t.Action == ActionExited {
		return fmt.Sprintf("%s left %s", teenName, t.Fence.Name)
	}

	return fmt.Sprintf("%s entered %s", teenName, t.Fence.Name)
}

// EveryMatch reports every matched fence as an entry. Notify flags are not
// consulted and repeated samples inside a fence alert each time.
func EveryMatch(matched []*entity.Geofence) []Transition {
	transitions := make([]Transition, 0, len(matched))
	for _, fence := range matched {
		transitions = append(transitions, Transition{Fence: fence, Action: ActionEntered})
	}

	return transitions
}

// Diff compares the fences a teen was inside before this sample with the
// fences matched now. It returns transitions in fence order, filtered by
// each fence's notify flags, and the new occupancy set.
func Diff(previous map[uuid.UUID]struct{}, fences, matched []*entity.Geofence) ([]Transition, map[uuid.UUID]struct{}) {
	current := make(map[uuid.UUID]struct{}, len(matched))
	for _, fence := range matched {
		current[fence.ID] = struct{}{}
	}

	var transitions []Transition
	for _, fence := range fences {
		if fence == nil {
			continue
		}
		_, inside := current[fence.ID]
		_, wasInside := previous[fence.ID]

		switch {
		case inside && !wasInside && fence.NotifyOnEnter:
			transitions = append(transitions, Transition{Fence: fence, Action: ActionEntered})
		case !inside && wasInside && fence.NotifyOnExit:
			transitions = append(transitions, Transition{Fence: fence, Action: ActionExited})
		}
	}

	return transitions, current
}
