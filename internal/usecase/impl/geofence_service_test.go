package impl

import (
	"context"
	"testing"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	mockRepo "guardian/internal/mocks/repository"
	mockSvc "guardian/internal/mocks/service"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type geofenceServiceFixtures struct {
	service      usecase.GeofenceUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	teenRepo     *mockRepo.MockTeenRepository
	geofenceRepo *mockRepo.MockGeofenceRepository
	tracker      *mockSvc.MockOccupancyTracker
}

func createTestGeofenceService(t *testing.T) geofenceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	teenRepo := mockRepo.NewMockTeenRepository(t)
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	tracker := mockSvc.NewMockOccupancyTracker(t)

	svc := NewGeofenceService(GeofenceServiceParams{
		TxManager:    txManager,
		TeenRepo:     teenRepo,
		GeofenceRepo: geofenceRepo,
		Tracker:      tracker,
		Logger:       newDiscardLogger(),
	})

	return geofenceServiceFixtures{
		service:      svc,
		txManager:    txManager,
		repoFactory:  repoFactory,
		teenRepo:     teenRepo,
		geofenceRepo: geofenceRepo,
		tracker:      tracker,
	}
}

func (fx geofenceServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().NewTeenRepository().Return(fx.teenRepo)
}

func boolPtr(v bool) *bool {
	return &v
}

func TestGeofenceService_CreateGeofence_Defaults(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	parentID := uuid.New()
	teen := newTestTeen(parentID, "Alex")

	fx.expectTransaction(ctx)
	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)
	fx.repoFactory.EXPECT().NewGeofenceRepository().Return(fx.geofenceRepo)
	fx.geofenceRepo.EXPECT().CreateGeofence(ctx, mock.AnythingOfType("*entity.Geofence")).Return(nil)

	fence, err := fx.service.CreateGeofence(ctx, parentID, &usecase.GeofenceInput{
		TeenID:    teen.ID,
		Name:      " School ",
		Latitude:  37.7749,
		Longitude: -122.4194,
		Radius:    150,
	})

	require.NoError(t, err)
	assert.Equal(t, "School", fence.Name)
	assert.Equal(t, entity.GeofenceTypeSafe, fence.Type)
	assert.True(t, fence.NotifyOnEnter)
	assert.True(t, fence.NotifyOnExit)
	assert.Equal(t, teen.ID, fence.TeenID)
}

func TestGeofenceService_CreateGeofence_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.GeofenceInput
	}{
		{name: "zero radius", input: usecase.GeofenceInput{Name: "Home", Radius: 0}},
		{name: "negative radius", input: usecase.GeofenceInput{Name: "Home", Radius: -5}},
		{name: "unknown type", input: usecase.GeofenceInput{Name: "Home", Radius: 10, Type: "danger"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGeofenceService(t)
			tt.input.TeenID = uuid.New()

			_, err := fx.service.CreateGeofence(context.Background(), uuid.New(), &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestGeofenceService_CreateGeofence_ForeignTeen(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	teen := newTestTeen(uuid.New(), "Alex")

	fx.expectTransaction(ctx)
	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)

	_, err := fx.service.CreateGeofence(ctx, uuid.New(), &usecase.GeofenceInput{
		TeenID: teen.ID,
		Name:   "School",
		Radius: 100,
	})

	assert.ErrorIs(t, err, domainerrors.ErrTeenNotFound)
}

func TestGeofenceService_ReplaceGeofence_MovedFenceForgetsOccupancy(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	parentID := uuid.New()
	teen := newTestTeen(parentID, "Alex")
	existing := newTestFence(teen.ID, "School", 37.7749, -122.4194, 100)

	fx.geofenceRepo.EXPECT().FindGeofenceByID(ctx, existing.ID).Return(existing, nil)
	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)
	fx.geofenceRepo.EXPECT().
		ReplaceGeofence(ctx, mock.MatchedBy(func(fence *entity.Geofence) bool {
			return fence.ID == existing.ID && fence.Radius == 300 && !fence.NotifyOnExit
		})).
		Return(nil)
	fx.tracker.EXPECT().Forget(ctx, teen.ID, existing.ID).Return(nil)

	replaced, err := fx.service.ReplaceGeofence(ctx, parentID, existing.ID, &usecase.GeofenceInput{
		Name:         "School",
		Latitude:     37.7749,
		Longitude:    -122.4194,
		Radius:       300,
		Type:         entity.GeofenceTypeRestricted,
		NotifyOnExit: boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, teen.ID, replaced.TeenID)
	assert.Equal(t, entity.GeofenceTypeRestricted, replaced.Type)
}

func TestGeofenceService_ReplaceGeofence_RenameKeepsOccupancy(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	parentID := uuid.New()
	teen := newTestTeen(parentID, "Alex")
	existing := newTestFence(teen.ID, "School", 37.7749, -122.4194, 100)

	fx.geofenceRepo.EXPECT().FindGeofenceByID(ctx, existing.ID).Return(existing, nil)
	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)
	fx.geofenceRepo.EXPECT().ReplaceGeofence(ctx, mock.Anything).Return(nil)

	replaced, err := fx.service.ReplaceGeofence(ctx, parentID, existing.ID, &usecase.GeofenceInput{
		TeenID:    teen.ID,
		Name:      "High School",
		Latitude:  37.7749,
		Longitude: -122.4194,
		Radius:    100,
	})

	require.NoError(t, err)
	assert.Equal(t, "High School", replaced.Name)
	fx.tracker.AssertNotCalled(t, "Forget", mock.Anything, mock.Anything, mock.Anything)
}

func TestGeofenceService_ReplaceGeofence_ForeignFence(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	teen := newTestTeen(uuid.New(), "Alex")
	existing := newTestFence(teen.ID, "School", 37.7749, -122.4194, 100)

	fx.geofenceRepo.EXPECT().FindGeofenceByID(ctx, existing.ID).Return(existing, nil)
	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)

	_, err := fx.service.ReplaceGeofence(ctx, uuid.New(), existing.ID, &usecase.GeofenceInput{
		Name:   "Mine now",
		Radius: 100,
	})

	assert.ErrorIs(t, err, domainerrors.ErrGeofenceNotFound)
}

func TestGeofenceService_DeleteGeofence(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	parentID := uuid.New()
	teen := newTestTeen(parentID, "Alex")
	fence := newTestFence(teen.ID, "School", 37.7749, -122.4194, 100)

	fx.geofenceRepo.EXPECT().FindGeofenceByID(ctx, fence.ID).Return(fence, nil)
	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)
	fx.geofenceRepo.EXPECT().DeleteGeofence(ctx, fence.ID).Return(nil)
	fx.tracker.EXPECT().Forget(ctx, teen.ID, fence.ID).Return(errors.New("redis down"))

	require.NoError(t, fx.service.DeleteGeofence(ctx, parentID, fence.ID))
}

func TestGeofenceService_DeleteGeofence_Unknown(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	fenceID := uuid.New()

	fx.geofenceRepo.EXPECT().FindGeofenceByID(ctx, fenceID).Return(nil, repository.ErrGeofenceNotFound)

	err := fx.service.DeleteGeofence(ctx, uuid.New(), fenceID)
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceNotFound)
}

func TestGeofenceService_ListGeofences_StoreFailure(t *testing.T) {
	fx := createTestGeofenceService(t)

	ctx := context.Background()
	parentID := uuid.New()
	teen := newTestTeen(parentID, "Alex")

	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)
	fx.geofenceRepo.EXPECT().FindGeofencesByTeen(ctx, teen.ID).Return(nil, errors.New("timeout"))

	_, err := fx.service.ListGeofences(ctx, parentID, teen.ID)
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}
