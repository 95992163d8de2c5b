// Package live keeps the one open session per parent and pushes alerts to it.
package live

import (
	"context"
	"sync"

	"guardian/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNoChannel is returned by TrySend when the parent has no open session.
	ErrNoChannel = errors.New("no live channel for parent")
	// ErrSendFailed wraps a failed write to an open session.
	ErrSendFailed = errors.New("live channel send failed")
)

const replacedReason = "replaced by newer session"

// Channel is one open duplex connection to a parent client.
type Channel interface {
	Send(ctx context.Context, payload []byte) error
	Close(reason string) error
}

// Handle identifies one registration. Unregister only removes the entry it
// was issued for, so a late disconnect cannot evict a newer session.
type Handle struct {
	parentID uuid.UUID
	channel  Channel
}

// ParentID returns the parent the handle was registered for.
func (h *Handle) ParentID() uuid.UUID {
	return h.parentID
}

// Registry maps parent IDs to their live channel. Last connect wins.
type Registry struct {
	mu       sync.Mutex
	channels map[uuid.UUID]*Handle
	metrics  *metrics.Metrics
}

// NewRegistry creates an empty registry. m may be nil.
func NewRegistry(m *metrics.Metrics) *Registry {
	return &Registry{
		channels: make(map[uuid.UUID]*Handle),
		metrics:  m,
	}
}

// Register stores ch as the parent's channel and closes any channel it replaces.
func (r *Registry) Register(parentID uuid.UUID, ch Channel) *Handle {
	handle := &Handle{parentID: parentID, channel: ch}

	r.mu.Lock()
	previous := r.channels[parentID]
	r.channels[parentID] = handle
	count := len(r.channels)
	r.mu.Unlock()

	r.metrics.SetLiveSessions(count)
	if previous != nil && previous.channel != ch {
		_ = previous.channel.Close(replacedReason)
	}

	return handle
}

// Unregister removes the handle if it is still current and reports whether it did.
func (r *Registry) Unregister(handle *Handle) bool {
	if handle == nil {
		return false
	}

	r.mu.Lock()
	current, ok := r.channels[handle.parentID]
	removed := ok && current == handle
	if removed {
		delete(r.channels, handle.parentID)
	}
	count := len(r.channels)
	r.mu.Unlock()

	if removed {
		r.metrics.SetLiveSessions(count)
	}

	return removed
}

// TrySend writes payload to the parent's channel once. The write happens
// outside the lock so a slow client does not stall other parents.
func (r *Registry) TrySend(ctx context.Context, parentID uuid.UUID, payload []byte) error {
	r.mu.Lock()
	handle, ok := r.channels[parentID]
	r.mu.Unlock()

	if !ok {
		return ErrNoChannel
	}

	if err := handle.channel.Send(ctx, payload); err != nil {
		return errors.Wrapf(ErrSendFailed, "%v", err)
	}

	return nil
}

// Connected reports whether the parent has an open channel.
func (r *Registry) Connected(parentID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.channels[parentID]

	return ok
}

// Len returns the number of open channels.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.channels)
}

// CloseAll closes and removes every channel, used on shutdown.
func (r *Registry) CloseAll(reason string) {
	r.mu.Lock()
	handles := make([]*Handle, 0, len(r.channels))
	for _, handle := range r.channels {
		handles = append(handles, handle)
	}
	r.channels = make(map[uuid.UUID]*Handle)
	r.mu.Unlock()

	r.metrics.SetLiveSessions(0)
	for _, handle := range handles {
		_ = handle.channel.Close(reason)
	}
}
