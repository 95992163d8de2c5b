package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// usageDateLayout is the YYYY-MM-DD form used for app usage days.
const usageDateLayout = time.DateOnly

type activityService struct {
	teenRepo     repository.TeenRepository
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TeenRepo     repository.TeenRepository
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		teenRepo:     params.TeenRepo,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordAppUsage overwrites the teen's usage for the app on that day.
func (srv *activityService) RecordAppUsage(ctx context.Context, input *usecase.AppUsageInput) (*usecase.UpsertResult, error) {
	if _, err := time.Parse(usageDateLayout, input.Date); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("date must be YYYY-MM-DD")
	}
	if input.UsageTime < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("usage_time must not be negative")
	}

	if _, err := findTeen(ctx, srv.teenRepo, input.TeenID); err != nil {
		return nil, err
	}

	lastUsed := time.Now().UTC()
	if input.LastUsed != nil && !input.LastUsed.IsZero() {
		lastUsed = input.LastUsed.UTC()
	}

	usage := &entity.AppUsage{
		ID:          uuid.New(),
		TeenID:      input.TeenID,
		AppName:     strings.TrimSpace(input.AppName),
		PackageName: strings.TrimSpace(input.PackageName),
		UsageTime:   input.UsageTime,
		Date:        input.Date,
		LastUsed:    lastUsed,
	}

	created, err := srv.activityRepo.UpsertAppUsage(ctx, usage)
	if err != nil {
		return nil, storageError(err, "failed to record app usage")
	}

	return &usecase.UpsertResult{ID: usage.ID, Created: created}, nil
}

// ListAppUsage returns usage records, optionally for one date.
func (srv *activityService) ListAppUsage(ctx context.Context, parentID, teenID uuid.UUID, date string) ([]*entity.AppUsage, error) {
	if date != "" {
		if _, err := time.Parse(usageDateLayout, date); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("date must be YYYY-MM-DD")
		}
	}

	if _, err := findOwnedTeen(ctx, srv.teenRepo, parentID, teenID); err != nil {
		return nil, err
	}

	usages, err := srv.activityRepo.FindAppUsage(ctx, teenID, date)
	if err != nil {
		return nil, storageError(err, "failed to list app usage")
	}

	return usages, nil
}

// SetAppControl creates or overwrites the parent's rule for one app.
func (srv *activityService) SetAppControl(ctx context.Context, parentID uuid.UUID, input *usecase.AppControlInput) (*entity.AppControl, error) {
	if input.TimeLimit != nil && *input.TimeLimit < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("time_limit must not be negative")
	}

	if _, err := findOwnedTeen(ctx, srv.teenRepo, parentID, input.TeenID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	control := &entity.AppControl{
		ID:          uuid.New(),
		TeenID:      input.TeenID,
		PackageName: strings.TrimSpace(input.PackageName),
		IsBlocked:   input.IsBlocked,
		TimeLimit:   input.TimeLimit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := srv.activityRepo.UpsertAppControl(ctx, control)
	if err != nil {
		return nil, storageError(err, "failed to set app control")
	}

	srv.log(ctx).Info("App control saved",
		slog.String("teen_id", control.TeenID.String()),
		slog.String("package_name", control.PackageName),
		slog.Bool("blocked", control.IsBlocked),
		slog.Bool("created", created),
	)

	return control, nil
}

func (srv *activityService) ListAppControls(ctx context.Context, parentID, teenID uuid.UUID) ([]*entity.AppControl, error) {
	if _, err := findOwnedTeen(ctx, srv.teenRepo, parentID, teenID); err != nil {
		return nil, err
	}

	controls, err := srv.activityRepo.FindAppControls(ctx, teenID)
	if err != nil {
		return nil, storageError(err, "failed to list app controls")
	}

	return controls, nil
}

// RecordWebVisit adds a visit, incrementing the count for a known URL.
func (srv *activityService) RecordWebVisit(ctx context.Context, input *usecase.WebVisitInput) (*usecase.UpsertResult, error) {
	if _, err := findTeen(ctx, srv.teenRepo, input.TeenID); err != nil {
		return nil, err
	}

	timestamp := time.Now().UTC()
	if input.Timestamp != nil && !input.Timestamp.IsZero() {
		timestamp = input.Timestamp.UTC()
	}

	visit := &entity.WebHistory{
		ID:         uuid.New(),
		TeenID:     input.TeenID,
		URL:        strings.TrimSpace(input.URL),
		Title:      input.Title,
		VisitCount: 1,
		Timestamp:  timestamp,
	}

	created, err := srv.activityRepo.RecordWebVisit(ctx, visit)
	if err != nil {
		return nil, storageError(err, "failed to record web visit")
	}

	return &usecase.UpsertResult{ID: visit.ID, Created: created}, nil
}

func (srv *activityService) ListWebHistory(ctx context.Context, parentID, teenID uuid.UUID, limit int) ([]*entity.WebHistory, error) {
	if _, err := findOwnedTeen(ctx, srv.teenRepo, parentID, teenID); err != nil {
		return nil, err
	}

	history, err := srv.activityRepo.FindWebHistory(ctx, teenID, clampLimit(limit, constants.DefaultWebHistoryLimit))
	if err != nil {
		return nil, storageError(err, "failed to list web history")
	}

	return history, nil
}
