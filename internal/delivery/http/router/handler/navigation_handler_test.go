package handler

import (
	"net/http"
	"testing"

	"quickmart/internal/domain/entity"
	mockUsecase "quickmart/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationHandler_Resolve(t *testing.T) {
	t.Run("anonymous visitor", func(t *testing.T) {
		navigationUC := mockUsecase.NewMockNavigationUsecase(t)
		h := NewNavigationHandler(NavigationHandlerParams{NavigationUC: navigationUC})
		c, rec := newContext(http.MethodGet, "/nav/resolve?path=/cart", "")

		navigationUC.EXPECT().Resolve(entity.Role(""), "/cart").
			Return(&entity.RouteDecision{Path: "/cart", RedirectTo: "/login"})

		require.NoError(t, h.Resolve(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/login", decodeData[entity.RouteDecision](t, rec).RedirectTo)
	})

	t.Run("uses the session role", func(t *testing.T) {
		navigationUC := mockUsecase.NewMockNavigationUsecase(t)
		h := NewNavigationHandler(NavigationHandlerParams{NavigationUC: navigationUC})
		c, rec := newContext(http.MethodGet, "/nav/resolve?path=/cart", "")
		signedIn(c, customerSession())

		navigationUC.EXPECT().Resolve(entity.RoleCustomer, "/cart").
			Return(&entity.RouteDecision{Path: "/cart", Allowed: true, View: "cart"})

		require.NoError(t, h.Resolve(c))
		assert.True(t, decodeData[entity.RouteDecision](t, rec).Allowed)
	})

	t.Run("path must be absolute", func(t *testing.T) {
		h := NewNavigationHandler(NavigationHandlerParams{NavigationUC: mockUsecase.NewMockNavigationUsecase(t)})
		c, rec := newContext(http.MethodGet, "/nav/resolve?path=cart", "")

		require.NoError(t, h.Resolve(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
