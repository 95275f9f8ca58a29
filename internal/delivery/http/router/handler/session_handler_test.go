package handler

import (
	"net/http"
	"testing"
	"time"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	mockUsecase "quickmart/internal/mocks/usecase"
	"quickmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_Login(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		h := NewSessionHandler(SessionHandlerParams{SessionUC: mockUsecase.NewMockSessionUsecase(t)})
		c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"ann","password":"pw"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		sessionUC := mockUsecase.NewMockSessionUsecase(t)
		h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC})
		c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"ann@example.com","password":"nope"}`)

		sessionUC.EXPECT().Login(mock.Anything, "ann@example.com", "nope").Return(nil, domainerrors.ErrInvalidCredentials)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
	})

	t.Run("signs in", func(t *testing.T) {
		sessionUC := mockUsecase.NewMockSessionUsecase(t)
		h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC})
		c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"ann@example.com","password":"secret"}`)

		sessionUC.EXPECT().Login(mock.Anything, "ann@example.com", "secret").Return(&usecase.SessionResult{
			Token: "jwt",
			User:  &entity.User{ID: "c-1", Role: entity.RoleCustomer},
			Home:  "/shop",
		}, nil)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		result := decodeData[usecase.SessionResult](t, rec)
		assert.Equal(t, "jwt", result.Token)
		assert.Equal(t, "/shop", result.Home)
	})
}

func TestSessionHandler_Register(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC})
	c, rec := newContext(http.MethodPost, "/auth/register",
		`{"name":"Vic","email":"vic@example.com","password":"secret1","role":"vendor"}`)

	sessionUC.EXPECT().Register(mock.Anything, &service.RegisterRequest{
		Name:     "Vic",
		Email:    "vic@example.com",
		Password: "secret1",
		Role:     entity.RoleVendor,
	}).Return(&usecase.SessionResult{Token: "jwt", Home: "/vendor/dashboard"}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/vendor/dashboard", decodeData[usecase.SessionResult](t, rec).Home)
}

func TestSessionHandler_Logout(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC})
	session := customerSession()
	c, rec := newContext(http.MethodPost, "/auth/logout", "")
	signedIn(c, session)

	sessionUC.EXPECT().Logout(mock.Anything, session.ID).Return(nil)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSessionHandler_Current(t *testing.T) {
	t.Run("restored", func(t *testing.T) {
		sessionUC := mockUsecase.NewMockSessionUsecase(t)
		h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC})
		session := customerSession()
		session.ExpiresAt = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
		c, rec := newContext(http.MethodGet, "/auth/session", "")
		signedIn(c, session)

		sessionUC.EXPECT().Restore(mock.Anything, session.ID).Return(session, nil)

		require.NoError(t, h.Current(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		view := decodeData[SessionView](t, rec)
		assert.Equal(t, "c-1", view.User.ID)
		assert.Equal(t, "/shop", view.Home)
		assert.True(t, session.ExpiresAt.Equal(view.ExpiresAt))
	})

	t.Run("revoked upstream", func(t *testing.T) {
		sessionUC := mockUsecase.NewMockSessionUsecase(t)
		h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC})
		session := customerSession()
		c, rec := newContext(http.MethodGet, "/auth/session", "")
		signedIn(c, session)

		sessionUC.EXPECT().Restore(mock.Anything, session.ID).Return(nil, domainerrors.ErrSessionExpired)

		require.NoError(t, h.Current(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "SESSION_EXPIRED", decodeError(t, rec).Code)
	})
}
