package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims identify the parent behind an access token.
type Claims struct {
	ParentID uuid.UUID
	Type     string
	jwt.RegisteredClaims
}

// TokenService signs and verifies parent access tokens.
type TokenService interface {
	GenerateAccessToken(parentID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}
