package impl

import (
	"context"
	"testing"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/metrics"
	mockRepo "guardian/internal/mocks/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceFixtures struct {
	service   usecase.AlertUsecase
	alertRepo *mockRepo.MockAlertRepository
	metrics   *metrics.Metrics
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	m := metrics.New(prometheus.NewRegistry())

	return alertServiceFixtures{
		service: NewAlertService(AlertServiceParams{
			AlertRepo: alertRepo,
			Logger:    newDiscardLogger(),
			Metrics:   m,
		}),
		alertRepo: alertRepo,
		metrics:   m,
	}
}

func TestAlertService_RecordAlert(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	parentID := uuid.New()
	teenID := uuid.New()

	var stored *entity.Alert
	fx.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(_ context.Context, alert *entity.Alert) {
			stored = alert
		}).
		Return(nil)

	id, err := fx.service.RecordAlert(ctx, parentID, teenID, entity.AlertTypeGeofenceEnter, "Alex entered School")
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, id)
	assert.Equal(t, parentID, stored.ParentID)
	assert.Equal(t, teenID, stored.TeenID)
	assert.Equal(t, "Alex entered School", stored.Message)
	assert.False(t, stored.IsRead)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.AlertsRecorded.WithLabelValues("geofence_enter")))
}

func TestAlertService_RecordAlert_UnknownType(t *testing.T) {
	fx := createTestAlertService(t)

	id, err := fx.service.RecordAlert(context.Background(), uuid.New(), uuid.New(), entity.AlertType("curfew"), "late")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, uuid.Nil, id)
}

func TestAlertService_RecordAlert_StoreFailure(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()

	fx.alertRepo.EXPECT().
		CreateAlert(ctx, mock.Anything).
		Return(errors.New("connection refused"))

	id, err := fx.service.RecordAlert(ctx, uuid.New(), uuid.New(), entity.AlertTypeGeofenceEnter, "Alex entered School")
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
	assert.Equal(t, uuid.Nil, id)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.AlertRecordErrors))
}

func TestAlertService_ListAlerts_DefaultLimit(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	parentID := uuid.New()
	alerts := []*entity.Alert{{ID: uuid.New(), ParentID: parentID}}

	fx.alertRepo.EXPECT().
		FindAlertsByParent(ctx, parentID, true, constants.DefaultAlertLimit).
		Return(alerts, nil)

	got, err := fx.service.ListAlerts(ctx, parentID, true, 0)
	require.NoError(t, err)
	assert.Equal(t, alerts, got)
}

func TestAlertService_MarkAlertRead(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	parentID := uuid.New()
	alertID := uuid.New()

	fx.alertRepo.EXPECT().MarkAlertRead(ctx, parentID, alertID).Return(nil).Times(2)

	require.NoError(t, fx.service.MarkAlertRead(ctx, parentID, alertID))
	require.NoError(t, fx.service.MarkAlertRead(ctx, parentID, alertID))
}

func TestAlertService_MarkAlertRead_NotFound(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	otherParent := uuid.New()
	alertID := uuid.New()

	fx.alertRepo.EXPECT().
		MarkAlertRead(ctx, otherParent, alertID).
		Return(repository.ErrAlertNotFound)

	err := fx.service.MarkAlertRead(ctx, otherParent, alertID)
	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}
