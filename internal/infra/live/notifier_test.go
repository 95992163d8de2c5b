package live

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"guardian/internal/domain/service"
	"guardian/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestNotifier(registry *Registry, m *metrics.Metrics) service.LiveNotifier {
	return NewNotifier(NotifierParams{
		Registry: registry,
		Logger:   newDiscardLogger(),
		Metrics:  m,
	})
}

func TestNotifier_SendsJSONPayload(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	registry := NewRegistry(m)
	parentID := uuid.New()
	ch := &fakeChannel{}
	registry.Register(parentID, ch)

	newTestNotifier(registry, m).Notify(context.Background(), parentID, service.GeofenceAlertMessage{
		Type:        "geofence_alert",
		SubjectName: "Alex",
		FenceName:   "School",
		Action:      "entered",
	})

	msgs := ch.messages()
	require.Len(t, msgs, 1)

	var got map[string]string
	require.NoError(t, json.Unmarshal(msgs[0], &got))
	assert.Equal(t, map[string]string{
		"type":         "geofence_alert",
		"subject_name": "Alex",
		"fence_name":   "School",
		"action":       "entered",
	}, got)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LivePushes.WithLabelValues(metrics.PushSent)), 0)
}

func TestNotifier_NoChannelIsSilent(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	registry := NewRegistry(m)

	assert.NotPanics(t, func() {
		newTestNotifier(registry, m).Notify(context.Background(), uuid.New(), map[string]string{"type": "x"})
	})
	assert.InDelta(t, 1, testutil.ToFloat64(m.LivePushes.WithLabelValues(metrics.PushNoChannel)), 0)
}

func TestNotifier_SendFailureIsSwallowed(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	registry := NewRegistry(m)
	parentID := uuid.New()
	registry.Register(parentID, &fakeChannel{sendErr: errors.New("closed")})

	newTestNotifier(registry, m).Notify(context.Background(), parentID, map[string]string{"type": "x"})

	assert.InDelta(t, 1, testutil.ToFloat64(m.LivePushes.WithLabelValues(metrics.PushFailed)), 0)
}

func TestNotifier_UnencodablePayload(t *testing.T) {
	registry := NewRegistry(nil)
	parentID := uuid.New()
	ch := &fakeChannel{}
	registry.Register(parentID, ch)

	newTestNotifier(registry, nil).Notify(context.Background(), parentID, make(chan int))

	assert.Empty(t, ch.messages())
}
