package auth

import (
	"testing"
	"time"

	"quickmart/config"
	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Session: &config.SessionConfig{TTL: ttl}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long", time.Hour))
	require.NoError(t, err)

	sessionID := uuid.New()
	token, expiresAt, err := tokenService.GenerateSessionToken(sessionID, entity.RoleVendor)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, entity.RoleVendor, claims.Role)
	assert.Equal(t, service.TokenTypeSession, claims.Type)
	assert.Equal(t, time.Hour, tokenService.GetSessionDuration())
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-one", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two", time.Hour))
	require.NoError(t, err)

	token, _, err := issuer.GenerateSessionToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := &jwtService{
		secret:     []byte("secret"),
		sessionTTL: time.Minute,
		now:        func() time.Time { return time.Now().Add(-2 * time.Hour) },
	}

	token, _, err := svc.GenerateSessionToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := &jwtService{secret: []byte("secret"), sessionTTL: time.Hour, now: time.Now}

	sign := func(claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		return token
	}
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{"wrong type", sign(jwt.MapClaims{"sub": uuid.NewString(), "exp": exp, "type": "access", "role": "customer"})},
		{"bad subject", sign(jwt.MapClaims{"sub": "not-a-uuid", "exp": exp, "type": "session", "role": "customer"})},
		{"unknown role", sign(jwt.MapClaims{"sub": uuid.NewString(), "exp": exp, "type": "session", "role": "root"})},
		{"no expiry", sign(jwt.MapClaims{"sub": uuid.NewString(), "type": "session", "role": "customer"})},
		{"garbage", "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
}
