package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/router/handler"
	"guardian/internal/delivery/api/validator"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/infra/live"
	mockSvc "guardian/internal/mocks/service"
	mockUsecase "guardian/internal/mocks/usecase"
	"guardian/internal/usecase"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type routerFixture struct {
	echo       *echo.Echo
	parentID   uuid.UUID
	registry   *live.Registry
	tokenSvc   *mockSvc.MockTokenService
	parentUC   *mockUsecase.MockParentUsecase
	teenUC     *mockUsecase.MockTeenUsecase
	locationUC *mockUsecase.MockLocationUsecase
	geofenceUC *mockUsecase.MockGeofenceUsecase
	activityUC *mockUsecase.MockActivityUsecase
	alertUC    *mockUsecase.MockAlertUsecase
	dashUC     *mockUsecase.MockDashboardUsecase
	deviceUC   *mockUsecase.MockDeviceUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &routerFixture{
		parentID:   uuid.New(),
		registry:   live.NewRegistry(nil),
		tokenSvc:   mockSvc.NewMockTokenService(t),
		parentUC:   mockUsecase.NewMockParentUsecase(t),
		teenUC:     mockUsecase.NewMockTeenUsecase(t),
		locationUC: mockUsecase.NewMockLocationUsecase(t),
		geofenceUC: mockUsecase.NewMockGeofenceUsecase(t),
		activityUC: mockUsecase.NewMockActivityUsecase(t),
		alertUC:    mockUsecase.NewMockAlertUsecase(t),
		dashUC:     mockUsecase.NewMockDashboardUsecase(t),
		deviceUC:   mockUsecase.NewMockDeviceUsecase(t),
	}

	f.tokenSvc.EXPECT().ValidateToken(testToken).Return(&service.Claims{
		ParentID: f.parentID,
		Type:     constants.TokenTypeAccess,
	}, nil).Maybe()

	cfg := &config.Config{
		Live:    &config.LiveConfig{WriteTimeout: time.Second, PingInterval: time.Minute, OriginPatterns: []string{"*"}},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	e := echo.New()
	e.JSONSerializer = validator.StrictJSONSerializer{}
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{ParentUC: f.parentUC}),
		TeenHandler:     handler.NewTeenHandler(handler.TeenHandlerParams{TeenUC: f.teenUC}),
		LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: f.locationUC}),
		GeofenceHandler: handler.NewGeofenceHandler(handler.GeofenceHandlerParams{GeofenceUC: f.geofenceUC}),
		ActivityHandler: handler.NewActivityHandler(handler.ActivityHandlerParams{ActivityUC: f.activityUC}),
		AlertHandler:    handler.NewAlertHandler(handler.AlertHandlerParams{AlertUC: f.alertUC, DashboardUC: f.dashUC}),
		DeviceHandler:   handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: f.deviceUC}),
		LiveHandler: handler.NewLiveHandler(handler.LiveHandlerParams{
			Registry: f.registry,
			Config:   cfg,
			Logger:   logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(f.tokenSvc),
		Config:         cfg,
	}).RegisterRoutes(e)

	f.echo = e

	return f
}

func (f *routerFixture) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, string(decode(t, rec).Data))
}

func TestRouter_Metrics(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/metrics", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_IngestLocation(t *testing.T) {
	f := newRouterFixture(t)
	teenID := uuid.New()
	sampleID := uuid.New()

	f.locationUC.EXPECT().
		IngestLocation(mock.Anything, mock.MatchedBy(func(in *usecase.IngestLocationInput) bool {
			return in.TeenID == teenID && in.Latitude == 0 && in.Longitude == 0.001 && in.Accuracy == nil
		})).
		Return(&entity.LocationSample{ID: sampleID, TeenID: teenID}, nil)

	body := `{"teen_id":"` + teenID.String() + `","latitude":0,"longitude":0.001}`
	rec := f.do(http.MethodPost, "/api/locations", body, false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"success","location_id":"`+sampleID.String()+`"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestRouter_IngestLocationUnknownTeen(t *testing.T) {
	f := newRouterFixture(t)

	f.locationUC.EXPECT().
		IngestLocation(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrTeenNotFound)

	body := `{"teen_id":"` + uuid.NewString() + `","latitude":1,"longitude":2}`
	rec := f.do(http.MethodPost, "/api/locations", body, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SUBJECT_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestRouter_IngestLocationRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
		wantText string
	}{
		{
			name:     "missing latitude",
			body:     `{"teen_id":"` + uuid.NewString() + `","longitude":2}`,
			wantCode: "VALIDATION_FAILED",
			wantText: "latitude",
		},
		{
			name:     "latitude out of range",
			body:     `{"teen_id":"` + uuid.NewString() + `","latitude":91,"longitude":2}`,
			wantCode: "VALIDATION_FAILED",
			wantText: "latitude",
		},
		{
			name:     "unknown field",
			body:     `{"teen_id":"` + uuid.NewString() + `","latitude":1,"longitude":2,"speed":3}`,
			wantCode: "HTTP_ERROR",
			wantText: "speed",
		},
		{
			name:     "malformed teen id",
			body:     `{"teen_id":"nope","latitude":1,"longitude":2}`,
			wantCode: "HTTP_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)

			rec := f.do(http.MethodPost, "/api/locations", tt.body, false)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantText != "" {
				assert.Contains(t, rec.Body.String(), tt.wantText)
			}
		})
	}
}

func TestRouter_RequiresToken(t *testing.T) {
	f := newRouterFixture(t)
	f.tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	rec := f.do(http.MethodGet, "/api/teens", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/teens", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	rec = httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
}

func TestRouter_LocationHistoryLimit(t *testing.T) {
	f := newRouterFixture(t)
	teenID := uuid.New()

	f.locationUC.EXPECT().
		GetLocationHistory(mock.Anything, f.parentID, teenID, 5).
		Return([]*entity.LocationSample{{ID: uuid.New(), TeenID: teenID}}, nil)

	rec := f.do(http.MethodGet, "/api/teens/"+teenID.String()+"/locations?limit=5", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var samples []entity.LocationSample
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &samples))
	assert.Len(t, samples, 1)

	rec = f.do(http.MethodGet, "/api/teens/"+teenID.String()+"/locations?limit=abc", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `"limit must be a non-negative integer"`, string(env.Error.Details))
}

func TestRouter_InvalidPathID(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/teens/not-a-uuid", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestRouter_PairingQR(t *testing.T) {
	f := newRouterFixture(t)
	teenID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	f.teenUC.EXPECT().GetPairingQR(mock.Anything, f.parentID, teenID).Return(png, nil)

	rec := f.do(http.MethodGet, "/api/teens/"+teenID.String()+"/pairing-qr", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestRouter_CreateGeofence(t *testing.T) {
	f := newRouterFixture(t)
	teenID := uuid.New()

	f.geofenceUC.EXPECT().
		CreateGeofence(mock.Anything, f.parentID, mock.MatchedBy(func(in *usecase.GeofenceInput) bool {
			return in.TeenID == teenID && in.Name == "School" && in.Radius == 100 &&
				in.NotifyOnEnter == nil && in.NotifyOnExit != nil && !*in.NotifyOnExit
		})).
		Return(&entity.Geofence{ID: uuid.New(), TeenID: teenID, Name: "School"}, nil)

	body := `{"teen_id":"` + teenID.String() + `","name":"School","latitude":0,"longitude":0,"radius":100,"notify_on_exit":false}`
	rec := f.do(http.MethodPost, "/api/geofences", body, true)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRouter_CreateGeofenceRejectsNonPositiveRadius(t *testing.T) {
	f := newRouterFixture(t)

	body := `{"teen_id":"` + uuid.NewString() + `","name":"School","latitude":0,"longitude":0,"radius":-5}`
	rec := f.do(http.MethodPost, "/api/geofences", body, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(decode(t, rec).Error.Details), "radius")
}

func TestRouter_RecordAppUsage(t *testing.T) {
	f := newRouterFixture(t)
	usageID := uuid.New()

	f.activityUC.EXPECT().
		RecordAppUsage(mock.Anything, mock.Anything).
		Return(&usecase.UpsertResult{ID: usageID, Created: false}, nil)

	body := `{"teen_id":"` + uuid.NewString() + `","app_name":"Maps","package_name":"com.maps","usage_time":30,"date":"2026-10-19"}`
	rec := f.do(http.MethodPost, "/api/app-usage", body, false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"status":"updated","usage_id":"`+usageID.String()+`"}`, string(decode(t, rec).Data))
}

func TestRouter_ListAlertsUnreadOnly(t *testing.T) {
	f := newRouterFixture(t)

	f.alertUC.EXPECT().ListAlerts(mock.Anything, f.parentID, true, 0).Return([]*entity.Alert{}, nil)

	rec := f.do(http.MethodGet, "/api/alerts?unread_only=true", "", true)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_MarkAlertRead(t *testing.T) {
	f := newRouterFixture(t)
	alertID := uuid.New()
	missingID := uuid.New()

	f.alertUC.EXPECT().MarkAlertRead(mock.Anything, f.parentID, alertID).Return(nil)
	f.alertUC.EXPECT().MarkAlertRead(mock.Anything, f.parentID, missingID).Return(domainerrors.ErrAlertNotFound)

	rec := f.do(http.MethodPut, "/api/alerts/"+alertID.String()+"/read", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, string(decode(t, rec).Data))

	rec = f.do(http.MethodPut, "/api/alerts/"+missingID.String()+"/read", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ALERT_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestRouter_StorageUnavailable(t *testing.T) {
	f := newRouterFixture(t)
	teenID := uuid.New()

	f.dashUC.EXPECT().
		GetDashboard(mock.Anything, f.parentID, teenID).
		Return(nil, domainerrors.NewStorageError(errors.New("connection refused"), "load dashboard"))

	rec := f.do(http.MethodGet, "/api/dashboard/"+teenID.String(), "", true)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "STORAGE_UNAVAILABLE", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRouter_Register(t *testing.T) {
	f := newRouterFixture(t)
	parent := &entity.Parent{ID: uuid.New(), Email: "a@example.com", Name: "A"}

	f.parentUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterParentInput{Name: "A", Email: "a@example.com", Password: "secret-pw"}).
		Return(&usecase.AuthOutput{Token: "t", Parent: parent}, nil)

	rec := f.do(http.MethodPost, "/api/auth/register", `{"email":"a@example.com","password":"secret-pw","name":"A"}`, false)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRouter_RegisterDevice(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/devices", `{"fcm_token":"tok","device_id":"d1","platform":"windows"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(decode(t, rec).Error.Details), "platform")
}

func TestRouter_LiveChannel(t *testing.T) {
	f := newRouterFixture(t)
	srv := httptest.NewServer(f.echo)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	_, resp, err := websocket.Dial(ctx, wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	conn, _, err := websocket.Dial(ctx, wsURL+"?token="+testToken, nil)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return f.registry.Connected(f.parentID) }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, f.registry.TrySend(ctx, f.parentID, []byte(`{"type":"geofence_alert"}`)))
	_, msg, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"geofence_alert"}`, string(msg))

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "bye"))
	assert.Eventually(t, func() bool { return !f.registry.Connected(f.parentID) }, 2*time.Second, 10*time.Millisecond)
}

func TestRouter_LiveChannelAcceptsForeignOrigin(t *testing.T) {
	f := newRouterFixture(t)
	srv := httptest.NewServer(f.echo)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + testToken
	header := http.Header{}
	header.Set("Origin", "http://localhost:8081")

	conn, resp, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{HTTPHeader: header})
	require.NoError(t, err)
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	assert.Eventually(t, func() bool { return f.registry.Connected(f.parentID) }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "bye"))
}
