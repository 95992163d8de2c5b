package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/constants"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/infra/pubsub"
	mockUsecase "guardian/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockUsecase.MockAlertDispatchUsecase) {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env

	dispatchUC := mockUsecase.NewMockAlertDispatchUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DispatchUC: dispatchUC,
	})

	return h, dispatchUC
}

func newPushBody(t *testing.T, event *service.AlertEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushEnvelope
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"

	body, err := json.Marshal(&msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func newTestEvent() *service.AlertEvent {
	return &service.AlertEvent{
		AlertID:   uuid.NewString(),
		ParentID:  uuid.NewString(),
		TeenID:    uuid.NewString(),
		AlertType: "geofence_enter",
		Message:   "Alex entered School",
	}
}

func TestPushHandler_DispatchOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		dispatch   error
		wantStatus int
	}{
		{name: "dispatched", wantStatus: http.StatusOK},
		{
			name:       "storage failure is redelivered",
			dispatch:   domainerrors.NewStorageError(errors.New("db down"), "fetch devices"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "permanent failure is acknowledged",
			dispatch:   errors.New("invalid parent id in alert event"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dispatchUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
			event := newTestEvent()

			dispatchUC.EXPECT().
				DispatchAlert(mock.Anything, mock.MatchedBy(func(e *service.AlertEvent) bool {
					return e.AlertID == event.AlertID && e.Message == event.Message
				})).
				Return(tt.dispatch)

			rec := servePush(h, newPushBody(t, event, nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	rec := servePush(h, `{"message":{"data":"%%%"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	rec = servePush(h, `{"message":{"data":"`+notJSON+`"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_PropagatesRequestID(t *testing.T) {
	h, dispatchUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
	event := newTestEvent()
	event.RequestID = "from-event"

	var seen string
	dispatchUC.EXPECT().
		DispatchAlert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *service.AlertEvent) {
			seen = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(nil)

	rec := servePush(h, newPushBody(t, event, map[string]string{"request_id": "from-attributes"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "from-attributes", seen)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:       "rejected token",
			header:     "Bearer bad",
			validErr:   errors.New("idtoken: token expired"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong issuer",
			header:     "Bearer ok",
			payload:    &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			header:     "Bearer ok",
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dispatchUC := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
			require.NotNil(t, h.auth)

			var audience string
			h.auth.validate = func(_ context.Context, _ string, aud string) (*idtoken.Payload, error) {
				audience = aud

				return tt.payload, tt.validErr
			}

			if tt.wantStatus == http.StatusOK {
				dispatchUC.EXPECT().DispatchAlert(mock.Anything, mock.Anything).Return(nil)
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}
			rec := servePush(h, newPushBody(t, newTestEvent(), nil), header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.payload != nil {
				assert.Equal(t, "http://example.com/push", audience)
			}
		})
	}
}

func TestNewPushHandler_AuthOnlyForGoogleOutsideDevelop(t *testing.T) {
	tests := []struct {
		provider string
		env      string
		wantAuth bool
	}{
		{provider: constants.PubSubProviderLocal, env: constants.EnvProduction},
		{provider: constants.PubSubProviderGoogle, env: constants.EnvDevelop},
		{provider: constants.PubSubProviderGoogle, env: constants.EnvProduction, wantAuth: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider+"/"+tt.env, func(t *testing.T) {
			h, _ := newTestPushHandler(t, tt.provider, tt.env)
			assert.Equal(t, tt.wantAuth, h.auth != nil)
		})
	}
}
