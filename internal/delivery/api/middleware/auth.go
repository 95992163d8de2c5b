package middleware

import (
	"log/slog"
	"strings"

	"guardian/internal/delivery/api/response"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the parent on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		return m.authenticate(c, tokenString, next)
	}
}

// AuthenticateQuery reads the token from the "token" query parameter.
// Browsers cannot set headers on a websocket handshake.
func (m *AuthMiddleware) AuthenticateQuery(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := c.QueryParam("token")
		if tokenString == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "token query parameter is missing")
		}

		return m.authenticate(c, tokenString, next)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, tokenString string, next echo.HandlerFunc) error {
	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	if claims.Type != constants.TokenTypeAccess || claims.ParentID == uuid.Nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token type")
	}

	deliverycontext.SetParentID(c, claims.ParentID)
	deliverycontext.WithParentLogger(c, claims.ParentID, slog.Default())

	return next(c)
}

// GetParentID returns the parent authenticated by Authenticate.
func GetParentID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetParentID(c)
}
