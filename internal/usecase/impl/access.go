// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storageError keeps AppErrors raised below the use case and reports
// anything else as the store being unavailable.
func storageError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.WithMessage(err, details)
	}

	return domainerrors.NewStorageError(err, details)
}

// findTeen loads a teen for device-originated calls, which carry no parent.
func findTeen(ctx context.Context, teenRepo repository.TeenRepository, teenID uuid.UUID) (*entity.Teen, error) {
	teen, err := teenRepo.FindTeenByID(ctx, teenID)
	if errors.Is(err, repository.ErrTeenNotFound) {
		return nil, domainerrors.ErrTeenNotFound
	}
	if err != nil {
		return nil, storageError(err, "failed to load teen")
	}

	return teen, nil
}

// findOwnedTeen loads a teen and checks it belongs to the parent. Another
// parent's teen is reported as not found.
func findOwnedTeen(ctx context.Context, teenRepo repository.TeenRepository, parentID, teenID uuid.UUID) (*entity.Teen, error) {
	teen, err := findTeen(ctx, teenRepo, teenID)
	if err != nil {
		return nil, err
	}
	if !teen.OwnedBy(parentID) {
		return nil, domainerrors.ErrTeenNotFound
	}

	return teen, nil
}

// clampLimit applies the default for non-positive limits and caps the rest.
func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}

	return min(limit, constants.MaxQueryLimit)
}
