package service

import (
	"time"

	"quickmart/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeSession marks tokens that identify a BFF session.
const TokenTypeSession = "session"

// Claims defines the custom claims of a session token.
type Claims struct {
	SessionID uuid.UUID
	Role      entity.Role
	Type      string
	jwt.RegisteredClaims
}

// TokenService issues and validates the session tokens handed to browsers.
// The upstream API token never leaves the server.
type TokenService interface {
	// GenerateSessionToken signs a token for the session and returns its expiry.
	GenerateSessionToken(sessionID uuid.UUID, role entity.Role) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetSessionDuration returns the configured token lifetime.
	GetSessionDuration() time.Duration
}
