package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// parentService implements the ParentUsecase interface.
type parentService struct {
	txManager    repository.TransactionManager
	parentRepo   repository.ParentRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// ParentServiceParams holds dependencies for ParentService, injected by Fx.
type ParentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ParentRepo   repository.ParentRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewParentService is the constructor for parentService.
func NewParentService(params ParentServiceParams) usecase.ParentUsecase {
	return &parentService{
		txManager:    params.TxManager,
		parentRepo:   params.ParentRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *parentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the parent inside a transaction so the email check and
// the insert see the same snapshot.
func (srv *parentService) Register(ctx context.Context, input *usecase.RegisterParentInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting parent registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := time.Now().UTC()
	parent := &entity.Parent{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		parentRepo := repoFactory.NewParentRepository()

		_, findErr := parentRepo.FindParentByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(findErr, repository.ErrParentNotFound) {
			return errors.Wrap(findErr, "failed to check existing parent")
		}

		if createErr := parentRepo.CreateParent(ctx, parent); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return errors.Wrap(createErr, "failed to create parent")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			srv.log(ctx).Warn("Email already registered", slog.String("email", email))

			return nil, domainerrors.ErrEmailAlreadyRegistered
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, storageError(err, "failed to register parent")
	}

	return srv.issueToken(ctx, parent)
}

// Login verifies email and password. Unknown email and wrong password are
// indistinguishable to the caller.
func (srv *parentService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	parent, err := srv.parentRepo.FindParentByEmail(ctx, email)
	if errors.Is(err, repository.ErrParentNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, storageError(err, "failed to load parent")
	}

	if !srv.hasher.Check(input.Password, parent.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("parent_id", parent.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueToken(ctx, parent)
}

// GetParent returns the parent account.
func (srv *parentService) GetParent(ctx context.Context, parentID uuid.UUID) (*entity.Parent, error) {
	parent, err := srv.parentRepo.FindParentByID(ctx, parentID)
	if errors.Is(err, repository.ErrParentNotFound) {
		return nil, domainerrors.ErrParentNotFound
	}
	if err != nil {
		return nil, storageError(err, "failed to load parent")
	}

	return parent, nil
}

func (srv *parentService) issueToken(ctx context.Context, parent *entity.Parent) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(parent.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.String("parent_id", parent.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return &usecase.AuthOutput{Token: token, Parent: parent}, nil
}
