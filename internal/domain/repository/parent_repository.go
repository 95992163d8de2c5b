// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for parent persistence.
var (
	// ErrParentNotFound is returned when a parent is not found.
	ErrParentNotFound = errors.New("parent not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ParentRepository defines the interface for parent account operations.
type ParentRepository interface {
	// CreateParent persists a new parent account.
	CreateParent(ctx context.Context, parent *entity.Parent) error

	// FindParentByID retrieves a parent by its unique ID.
	FindParentByID(ctx context.Context, id uuid.UUID) (*entity.Parent, error)

	// FindParentByEmail retrieves a parent by email.
	FindParentByEmail(ctx context.Context, email string) (*entity.Parent, error)
}
