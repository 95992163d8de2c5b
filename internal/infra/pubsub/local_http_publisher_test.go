package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushEnvelope
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	event := &service.AlertEvent{
		RequestID: "req-1",
		AlertID:   "a1",
		ParentID:  "p1",
		TeenID:    "t1",
		TeenName:  "Mia",
		FenceName: "School",
		AlertType: "geofence_enter",
		Action:    "entered",
		Message:   "Mia entered School",
	}

	require.NoError(t, publisher.PublishAlertEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "a1", received.Message.MessageID)
	assert.Equal(t, "p1", received.Message.Attributes["parent_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	decoded, err := received.DecodeAlertEvent()
	require.NoError(t, err)
	assert.Equal(t, "Mia entered School", decoded.Message)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())

	err := publisher.PublishAlertEvent(context.Background(), &service.AlertEvent{AlertID: "a1"})

	assert.Error(t, err)
}

func TestPushEnvelope_RejectsBadData(t *testing.T) {
	var env PushEnvelope
	env.Message.Data = "%%%"
	_, err := env.DecodeAlertEvent()
	assert.Error(t, err)

	env.Message.Data = base64.StdEncoding.EncodeToString([]byte("not json"))
	_, err = env.DecodeAlertEvent()
	assert.Error(t, err)
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	logger := newDiscardLogger()

	publisher, err := newPublisher(context.Background(), nil, logger)
	require.NoError(t, err)
	assert.IsType(t, noopPublisher{}, publisher)

	publisher, err = newPublisher(context.Background(), &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = newPublisher(context.Background(), &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, logger)
	assert.Error(t, err)

	_, err = newPublisher(context.Background(), &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, logger)
	assert.Error(t, err)

	_, err = newPublisher(context.Background(), &config.PubSubConfig{Provider: "kafka"}, logger)
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	publisher := noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, publisher.PublishAlertEvent(context.Background(), &service.AlertEvent{AlertID: "a1"}))
	assert.NoError(t, publisher.Close())
}
