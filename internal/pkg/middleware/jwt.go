package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/jwt"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/internal/utils"
)

const sessionContextKey = "session"

// JWTAuthMiddleware creates a middleware for JWT authentication. On success
// the request session (identity, role, capability set) is stored in the
// echo context for handlers to pick up.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			// Validate the token
			claims, err := jwt.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			session, err := jwt.SessionFromClaims(claims)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: "+err.Error())
			}

			c.Set(sessionContextKey, session)
			c.Set("user_id", session.UserID)

			return next(c)
		}
	}
}

// GetSession extracts the request session set by JWTAuthMiddleware.
func GetSession(c echo.Context) *models.Session {
	if session, ok := c.Get(sessionContextKey).(*models.Session); ok {
		return session
	}
	return nil
}

// RequireAdmin rejects requests whose session lacks the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := GetSession(c)
		if session == nil || !session.IsAdmin() {
			return utils.ForbiddenResponse(c, "Admin role required")
		}
		return next(c)
	}
}

// RequireGroupAdmin rejects requests unless the session may manage a group.
func RequireGroupAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := GetSession(c)
		if session == nil || !session.Capabilities.ManageGroup {
			return utils.ForbiddenResponse(c, "Group admin role required")
		}
		return next(c)
	}
}
