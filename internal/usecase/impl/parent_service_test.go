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

// parentServiceFixtures holds all test dependencies for parent service tests.
type parentServiceFixtures struct {
	service      usecase.ParentUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	parentRepo   *mockRepo.MockParentRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestParentService(t *testing.T) parentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	parentRepo := mockRepo.NewMockParentRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewParentService(ParentServiceParams{
		TxManager:    txManager,
		ParentRepo:   parentRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return parentServiceFixtures{
		service:      svc,
		txManager:    txManager,
		repoFactory:  repoFactory,
		parentRepo:   parentRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectTransaction runs the transaction body against the fixture's factory.
func (fx parentServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().NewParentRepository().Return(fx.parentRepo)
}

func TestParentService_Register_Success(t *testing.T) {
	fx := createTestParentService(t)

	ctx := context.Background()
	input := &usecase.RegisterParentInput{
		Name:     " Jordan ",
		Email:    "Jordan@Example.com ",
		Password: "s3cret-pass",
	}

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.expectTransaction(ctx)
	fx.parentRepo.EXPECT().
		FindParentByEmail(ctx, "jordan@example.com").
		Return(nil, repository.ErrParentNotFound)
	fx.parentRepo.EXPECT().
		CreateParent(ctx, mock.MatchedBy(func(parent *entity.Parent) bool {
			return parent.Email == "jordan@example.com" &&
				parent.Name == "Jordan" &&
				parent.PasswordHash == "hashed"
		})).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("uuid.UUID")).
		Return("signed-token", nil)

	out, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, "jordan@example.com", out.Parent.Email)
	assert.NotEqual(t, uuid.Nil, out.Parent.ID)
}

func TestParentService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestParentService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.expectTransaction(ctx)
	fx.parentRepo.EXPECT().
		FindParentByEmail(ctx, "taken@example.com").
		Return(&entity.Parent{ID: uuid.New(), Email: "taken@example.com"}, nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterParentInput{
		Name:     "Sam",
		Email:    "taken@example.com",
		Password: "password1",
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestParentService_Register_DuplicateOnInsert(t *testing.T) {
	fx := createTestParentService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.expectTransaction(ctx)
	fx.parentRepo.EXPECT().
		FindParentByEmail(ctx, mock.Anything).
		Return(nil, repository.ErrParentNotFound)
	fx.parentRepo.EXPECT().
		CreateParent(ctx, mock.Anything).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterParentInput{
		Name:     "Sam",
		Email:    "race@example.com",
		Password: "password1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestParentService_Register_HashFailure(t *testing.T) {
	fx := createTestParentService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("cost out of range"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterParentInput{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "password1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestParentService_Register_StoreFailure(t *testing.T) {
	fx := createTestParentService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.expectTransaction(ctx)
	fx.parentRepo.EXPECT().
		FindParentByEmail(ctx, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.Register(ctx, &usecase.RegisterParentInput{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "password1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestParentService_Login(t *testing.T) {
	parent := &entity.Parent{ID: uuid.New(), Email: "sam@example.com", PasswordHash: "hashed"}

	tests := []struct {
		name      string
		setup     func(fx parentServiceFixtures)
		password  string
		wantToken string
		wantErr   error
	}{
		{
			name: "valid credentials",
			setup: func(fx parentServiceFixtures) {
				fx.parentRepo.EXPECT().FindParentByEmail(mock.Anything, "sam@example.com").Return(parent, nil)
				fx.hasher.EXPECT().Check("right", "hashed").Return(true)
				fx.tokenService.EXPECT().GenerateAccessToken(parent.ID).Return("signed-token", nil)
			},
			password:  "right",
			wantToken: "signed-token",
		},
		{
			name: "wrong password",
			setup: func(fx parentServiceFixtures) {
				fx.parentRepo.EXPECT().FindParentByEmail(mock.Anything, "sam@example.com").Return(parent, nil)
				fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)
			},
			password: "wrong",
			wantErr:  domainerrors.ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			setup: func(fx parentServiceFixtures) {
				fx.parentRepo.EXPECT().
					FindParentByEmail(mock.Anything, "sam@example.com").
					Return(nil, repository.ErrParentNotFound)
			},
			password: "right",
			wantErr:  domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestParentService(t)
			tt.setup(fx)

			out, err := fx.service.Login(context.Background(), &usecase.LoginInput{
				Email:    "SAM@example.com",
				Password: tt.password,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, out)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, out.Token)
			assert.Equal(t, parent, out.Parent)
		})
	}
}

func TestParentService_GetParent_NotFound(t *testing.T) {
	fx := createTestParentService(t)

	ctx := context.Background()
	parentID := uuid.New()

	fx.parentRepo.EXPECT().FindParentByID(ctx, parentID).Return(nil, repository.ErrParentNotFound)

	_, err := fx.service.GetParent(ctx, parentID)
	assert.ErrorIs(t, err, domainerrors.ErrParentNotFound)
}
