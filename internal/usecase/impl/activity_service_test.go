package impl

import (
	"context"
	"testing"
	"time"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	mockRepo "guardian/internal/mocks/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type activityServiceFixtures struct {
	service      usecase.ActivityUsecase
	teenRepo     *mockRepo.MockTeenRepository
	activityRepo *mockRepo.MockActivityRepository
}

func createTestActivityService(t *testing.T) activityServiceFixtures {
	teenRepo := mockRepo.NewMockTeenRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)

	return activityServiceFixtures{
		service: NewActivityService(ActivityServiceParams{
			TeenRepo:     teenRepo,
			ActivityRepo: activityRepo,
			Logger:       newDiscardLogger(),
		}),
		teenRepo:     teenRepo,
		activityRepo: activityRepo,
	}
}

func TestActivityService_RecordAppUsage(t *testing.T) {
	tests := []struct {
		name    string
		created bool
	}{
		{name: "first report of the day", created: true},
		{name: "overwrites earlier report", created: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestActivityService(t)

			ctx := context.Background()
			teen := newTestTeen(uuid.New(), "Alex")
			storedID := uuid.New()

			fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)
			fx.activityRepo.EXPECT().
				UpsertAppUsage(ctx, mock.MatchedBy(func(usage *entity.AppUsage) bool {
					return usage.Date == "2024-03-01" && usage.UsageTime == 45 && usage.PackageName == "com.example.chat"
				})).
				RunAndReturn(func(_ context.Context, usage *entity.AppUsage) (bool, error) {
					usage.ID = storedID

					return tt.created, nil
				})

			result, err := fx.service.RecordAppUsage(ctx, &usecase.AppUsageInput{
				TeenID:      teen.ID,
				AppName:     "Chat",
				PackageName: "com.example.chat",
				UsageTime:   45,
				Date:        "2024-03-01",
			})

			require.NoError(t, err)
			assert.Equal(t, storedID, result.ID)
			assert.Equal(t, tt.created, result.Created)
		})
	}
}

func TestActivityService_RecordAppUsage_Validation(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	_, err := fx.service.RecordAppUsage(ctx, &usecase.AppUsageInput{
		TeenID: uuid.New(), PackageName: "a", UsageTime: 5, Date: "03/01/2024",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RecordAppUsage(ctx, &usecase.AppUsageInput{
		TeenID: uuid.New(), PackageName: "a", UsageTime: -1, Date: "2024-03-01",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestActivityService_RecordAppUsage_UnknownTeen(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	teenID := uuid.New()

	fx.teenRepo.EXPECT().FindTeenByID(ctx, teenID).Return(nil, repository.ErrTeenNotFound)

	_, err := fx.service.RecordAppUsage(ctx, &usecase.AppUsageInput{
		TeenID: teenID, PackageName: "a", UsageTime: 5, Date: "2024-03-01",
	})
	assert.ErrorIs(t, err, domainerrors.ErrTeenNotFound)
}

func TestActivityService_SetAppControl(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	parentID := uuid.New()
	teen := newTestTeen(parentID, "Alex")
	limit := 60

	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)
	fx.activityRepo.EXPECT().UpsertAppControl(ctx, mock.AnythingOfType("*entity.AppControl")).Return(true, nil)

	control, err := fx.service.SetAppControl(ctx, parentID, &usecase.AppControlInput{
		TeenID:      teen.ID,
		PackageName: "com.example.game",
		IsBlocked:   true,
		TimeLimit:   &limit,
	})

	require.NoError(t, err)
	assert.True(t, control.IsBlocked)
	assert.Equal(t, 60, *control.TimeLimit)
}

func TestActivityService_SetAppControl_ForeignTeen(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	teen := newTestTeen(uuid.New(), "Alex")

	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)

	_, err := fx.service.SetAppControl(ctx, uuid.New(), &usecase.AppControlInput{
		TeenID:      teen.ID,
		PackageName: "com.example.game",
	})
	assert.ErrorIs(t, err, domainerrors.ErrTeenNotFound)
}

func TestActivityService_RecordWebVisit(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	teen := newTestTeen(uuid.New(), "Alex")
	visited := time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)

	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)
	fx.activityRepo.EXPECT().
		RecordWebVisit(ctx, mock.MatchedBy(func(visit *entity.WebHistory) bool {
			return visit.URL == "https://example.com" && visit.VisitCount == 1 && visit.Timestamp.Equal(visited)
		})).
		Return(false, nil)

	result, err := fx.service.RecordWebVisit(ctx, &usecase.WebVisitInput{
		TeenID:    teen.ID,
		URL:       " https://example.com ",
		Title:     "Example",
		Timestamp: &visited,
	})

	require.NoError(t, err)
	assert.False(t, result.Created)
}

func TestActivityService_ListWebHistory_DefaultLimit(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	parentID := uuid.New()
	teen := newTestTeen(parentID, "Alex")

	fx.teenRepo.EXPECT().FindTeenByID(ctx, teen.ID).Return(teen, nil)
	fx.activityRepo.EXPECT().
		FindWebHistory(ctx, teen.ID, constants.DefaultWebHistoryLimit).
		Return([]*entity.WebHistory{}, nil)

	_, err := fx.service.ListWebHistory(ctx, parentID, teen.ID, -3)
	require.NoError(t, err)
}

func TestActivityService_ListAppUsage_BadDate(t *testing.T) {
	fx := createTestActivityService(t)

	_, err := fx.service.ListAppUsage(context.Background(), uuid.New(), uuid.New(), "yesterday")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
