package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
)

// GenerateToken generates a JWT token for the given user
func GenerateToken(user *models.User, cfg models.JWTConfig) (string, int64, error) {
	// Set token expiration time
	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	// Create claims
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role(),
		"exp":     expiresAt,
		"iss":     cfg.Issuer,
	}
	if user.GroupID != nil {
		claims["group_id"] = user.GroupID.String()
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign token with configured secret
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	// Parse token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// SessionFromClaims builds the request session from validated claims
func SessionFromClaims(claims jwt.MapClaims) (*models.Session, error) {
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, fmt.Errorf("missing user_id claim")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("missing role claim")
	}

	session := &models.Session{
		UserID:       userID,
		Role:         role,
		Capabilities: models.CapabilitiesForRole(role),
	}

	if groupIDStr, ok := claims["group_id"].(string); ok {
		groupID, err := uuid.Parse(groupIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid group_id claim: %w", err)
		}
		session.GroupID = &groupID
	}

	return session, nil
}
