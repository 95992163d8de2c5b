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

type teenService struct {
	teenRepo repository.TeenRepository
	qrCode   service.QRCodeService
	logger   *slog.Logger
}

// TeenServiceParams holds dependencies for TeenService, injected by Fx.
type TeenServiceParams struct {
	fx.In

	TeenRepo repository.TeenRepository
	QRCode   service.QRCodeService
	Logger   *slog.Logger
}

// NewTeenService creates a new teen service instance
func NewTeenService(params TeenServiceParams) usecase.TeenUsecase {
	return &teenService{
		teenRepo: params.TeenRepo,
		qrCode:   params.QRCode,
		logger:   params.Logger,
	}
}

func (srv *teenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *teenService) CreateTeen(ctx context.Context, parentID uuid.UUID, input *usecase.CreateTeenInput) (*entity.Teen, error) {
	now := time.Now().UTC()
	teen := &entity.Teen{
		ID:               uuid.New(),
		ParentID:         parentID,
		Name:             strings.TrimSpace(input.Name),
		DeviceID:         strings.TrimSpace(input.DeviceID),
		PhoneNumber:      input.PhoneNumber,
		Age:              input.Age,
		ScreenTimeLimits: input.ScreenTimeLimits,
		BedtimeSchedule:  input.BedtimeSchedule,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if teen.ScreenTimeLimits == nil {
		teen.ScreenTimeLimits = map[string]int{}
	}
	if teen.BedtimeSchedule == nil {
		teen.BedtimeSchedule = map[string]string{}
	}

	if err := srv.teenRepo.CreateTeen(ctx, teen); err != nil {
		if errors.Is(err, repository.ErrDuplicateTeenDevice) {
			return nil, domainerrors.ErrDeviceAlreadyLinked
		}

		return nil, storageError(err, "failed to create teen")
	}

	srv.log(ctx).Info("Teen created",
		slog.String("parent_id", parentID.String()),
		slog.String("teen_id", teen.ID.String()),
	)

	return teen, nil
}

func (srv *teenService) ListTeens(ctx context.Context, parentID uuid.UUID) ([]*entity.Teen, error) {
	teens, err := srv.teenRepo.FindTeensByParent(ctx, parentID)
	if err != nil {
		return nil, storageError(err, "failed to list teens")
	}

	return teens, nil
}

func (srv *teenService) GetTeen(ctx context.Context, parentID, teenID uuid.UUID) (*entity.Teen, error) {
	return findOwnedTeen(ctx, srv.teenRepo, parentID, teenID)
}

func (srv *teenService) GetPairingQR(ctx context.Context, parentID, teenID uuid.UUID) ([]byte, error) {
	teen, err := findOwnedTeen(ctx, srv.teenRepo, parentID, teenID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GeneratePairingQR(teen.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}
