package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	mockRepo "guardian/internal/mocks/repository"
	mockSvc "guardian/internal/mocks/service"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertDispatchServiceFixtures struct {
	service         usecase.AlertDispatchUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestAlertDispatchService(t *testing.T) alertDispatchServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	return alertDispatchServiceFixtures{
		service: NewAlertDispatchService(AlertDispatchServiceParams{
			DeviceRepo:      deviceRepo,
			NotificationSvc: notificationSvc,
			Logger:          newDiscardLogger(),
		}),
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func newTestAlertEvent(parentID uuid.UUID) *service.AlertEvent {
	return &service.AlertEvent{
		AlertID:   uuid.NewString(),
		ParentID:  parentID.String(),
		TeenID:    uuid.NewString(),
		TeenName:  "Alex",
		FenceName: "School",
		AlertType: string(entity.AlertTypeGeofenceEnter),
		Action:    "entered",
		Message:   "Alex entered School",
		CreatedAt: time.Now().UTC(),
	}
}

func TestAlertDispatchService_DispatchAlert(t *testing.T) {
	fx := createTestAlertDispatchService(t)

	ctx := context.Background()
	parentID := uuid.New()
	event := newTestAlertEvent(parentID)
	stale := &entity.ParentDevice{ID: uuid.New(), ParentID: parentID, FCMToken: "stale-token", IsActive: true}
	devices := []*entity.ParentDevice{
		{ID: uuid.New(), ParentID: parentID, FCMToken: "good-token", IsActive: true},
		stale,
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByParent(ctx, parentID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"good-token", "stale-token"}, alertPushTitle, "Alex entered School",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["alert_id"] == event.AlertID && data["fence_name"] == "School" && data["action"] == "entered"
			})).
		Return(1, 1, []string{"stale-token"}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevice(ctx, stale.ID).Return(nil)

	require.NoError(t, fx.service.DispatchAlert(ctx, event))
}

func TestAlertDispatchService_DispatchAlert_Batches(t *testing.T) {
	fx := createTestAlertDispatchService(t)

	ctx := context.Background()
	parentID := uuid.New()
	devices := make([]*entity.ParentDevice, 0, firebaseBatchSize+1)
	for i := range firebaseBatchSize + 1 {
		devices = append(devices, &entity.ParentDevice{
			ID:       uuid.New(),
			ParentID: parentID,
			FCMToken: fmt.Sprintf("token-%d", i),
			IsActive: true,
		})
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByParent(ctx, parentID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), mock.Anything, mock.Anything, mock.Anything).
		Return(firebaseBatchSize, 0, nil, nil).
		Once()
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{fmt.Sprintf("token-%d", firebaseBatchSize)}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable")).
		Once()

	require.NoError(t, fx.service.DispatchAlert(ctx, newTestAlertEvent(parentID)))
}

func TestAlertDispatchService_DispatchAlert_NoDevices(t *testing.T) {
	fx := createTestAlertDispatchService(t)

	ctx := context.Background()
	parentID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByParent(ctx, parentID).Return(nil, nil)

	require.NoError(t, fx.service.DispatchAlert(ctx, newTestAlertEvent(parentID)))
}

func TestAlertDispatchService_DispatchAlert_StoreFailure(t *testing.T) {
	fx := createTestAlertDispatchService(t)

	ctx := context.Background()
	parentID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByParent(ctx, parentID).Return(nil, errors.New("timeout"))

	err := fx.service.DispatchAlert(ctx, newTestAlertEvent(parentID))
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestAlertDispatchService_DispatchAlert_MalformedEvent(t *testing.T) {
	fx := createTestAlertDispatchService(t)

	event := newTestAlertEvent(uuid.New())
	event.ParentID = "not-a-uuid"

	err := fx.service.DispatchAlert(context.Background(), event)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestAlertDispatchService_DispatchAlert_PushDisabled(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewAlertDispatchService(AlertDispatchServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	require.NoError(t, svc.DispatchAlert(context.Background(), newTestAlertEvent(uuid.New())))
}
