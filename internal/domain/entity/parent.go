package entity

import (
	"time"

	"github.com/google/uuid"
)

// Parent is an account holder who monitors one or more teens.
type Parent struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
