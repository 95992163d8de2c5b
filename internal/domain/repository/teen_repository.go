package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrTeenNotFound is returned when a teen is not found.
	ErrTeenNotFound = errors.New("teen not found")
	// ErrDuplicateTeenDevice is returned when a device id is already linked to another teen.
	ErrDuplicateTeenDevice = errors.New("teen device already linked")
)

// TeenRepository defines the interface for monitored teen operations.
type TeenRepository interface {
	// CreateTeen persists a new teen.
	CreateTeen(ctx context.Context, teen *entity.Teen) error

	// FindTeenByID retrieves a teen by ID.
	FindTeenByID(ctx context.Context, id uuid.UUID) (*entity.Teen, error)

	// FindTeensByParent retrieves all teens of a parent, oldest first.
	FindTeensByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Teen, error)
}
