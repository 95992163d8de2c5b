package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterParentInput represents the input for parent registration
type RegisterParentInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput represents the input for email and password login
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthOutput is returned by registration and login
type AuthOutput struct {
	Token  string         `json:"token"`
	Parent *entity.Parent `json:"parent"`
}

// ParentUsecase defines the interface for parent account use cases
type ParentUsecase interface {
	// Register creates a parent account and issues an access token
	Register(ctx context.Context, input *RegisterParentInput) (*AuthOutput, error)

	// Login verifies credentials and issues an access token
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetParent returns the parent account
	GetParent(ctx context.Context, parentID uuid.UUID) (*entity.Parent, error)
}
