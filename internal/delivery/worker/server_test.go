package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/delivery/worker/handler"
	"guardian/internal/domain/service"
	mockUsecase "guardian/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T) (http.Handler, *mockUsecase.MockAlertDispatchUsecase) {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatchUC := mockUsecase.NewMockAlertDispatchUsecase(t)

	e := delivery.NewEcho(cfg, logger)
	registerRoutes(e, handler.NewPushHandler(handler.PushHandlerParams{
		Config:     cfg,
		Logger:     logger,
		DispatchUC: dispatchUC,
	}))

	return e, dispatchUC
}

func TestWorker_Health(t *testing.T) {
	h, _ := newTestWorker(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWorker_PushDispatchesAlert(t *testing.T) {
	h, dispatchUC := newTestWorker(t)

	event := &service.AlertEvent{
		AlertID:   uuid.NewString(),
		ParentID:  uuid.NewString(),
		TeenID:    uuid.NewString(),
		AlertType: "geofence_exit",
		Message:   "Sam left Home",
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)
	body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString(data) + `","messageId":"7"}}`

	dispatchUC.EXPECT().
		DispatchAlert(mock.Anything, mock.MatchedBy(func(e *service.AlertEvent) bool {
			return e.AlertID == event.AlertID
		})).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
