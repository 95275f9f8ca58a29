// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"quickmart/config"
	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService issues HS256 session tokens for the BFF.
type jwtService struct {
	secret     []byte
	sessionTTL time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey.Session),
		sessionTTL: ttl,
		now:        time.Now,
	}, nil
}

// GenerateSessionToken signs a token whose subject is the session ID.
func (s *jwtService) GenerateSessionToken(sessionID uuid.UUID, role entity.Role) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.sessionTTL)

	claims := jwt.MapClaims{
		"sub":  sessionID.String(),
		"iat":  issuedAt.Unix(),
		"exp":  expiresAt.Unix(),
		"type": service.TokenTypeSession,
		"role": role.String(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}

	return token, expiresAt, nil
}

// ValidateToken checks signature, expiry and token type.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != service.TokenTypeSession {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "read subject")
	}

	sessionID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "parse session id")
	}

	roleValue, _ := mapClaims["role"].(string)
	role := entity.Role(roleValue)
	if !role.IsValid() {
		return nil, errors.Errorf("unexpected role %q", roleValue)
	}

	claims := &service.Claims{
		SessionID: sessionID,
		Role:      role,
		Type:      tokenType,
	}
	claims.Subject = subject
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}

// GetSessionDuration returns the configured duration for session tokens.
func (s *jwtService) GetSessionDuration() time.Duration {
	return s.sessionTTL
}
