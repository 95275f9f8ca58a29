package handler

import (
	"net/http"
	"testing"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	mockUsecase "quickmart/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adminSession() *entity.Session {
	return &entity.Session{ID: uuid.New(), UserID: "a-1", Role: entity.RoleAdmin, Token: "up"}
}

func TestAdminHandler_ListUsers(t *testing.T) {
	t.Run("filters by role", func(t *testing.T) {
		adminUC := mockUsecase.NewMockAdminUsecase(t)
		h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})
		session := adminSession()
		c, rec := newContext(http.MethodGet, "/api/v1/admin/users?role=vendor", "")
		signedIn(c, session)

		adminUC.EXPECT().ListUsers(mock.Anything, session, entity.RoleVendor).
			Return([]*entity.User{{ID: "v-1", Role: entity.RoleVendor}}, nil)

		require.NoError(t, h.ListUsers(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]*entity.User](t, rec), 1)
	})

	t.Run("unknown role", func(t *testing.T) {
		h := NewAdminHandler(AdminHandlerParams{AdminUC: mockUsecase.NewMockAdminUsecase(t)})
		c, rec := newContext(http.MethodGet, "/api/v1/admin/users?role=wizard", "")
		signedIn(c, adminSession())

		require.NoError(t, h.ListUsers(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		adminUC := mockUsecase.NewMockAdminUsecase(t)
		h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})
		session := adminSession()
		c, rec := newContext(http.MethodDelete, "/api/v1/admin/users/a-1", "")
		c.SetParamNames("id")
		c.SetParamValues("a-1")
		signedIn(c, session)

		adminUC.EXPECT().DeleteUser(mock.Anything, session, "a-1").
			Return(domainerrors.ErrForbidden.WithDetails("cannot delete your own account"))

		require.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		// Details are never shown on 403.
		assert.Nil(t, decodeError(t, rec).Details)
	})

	t.Run("deleted", func(t *testing.T) {
		adminUC := mockUsecase.NewMockAdminUsecase(t)
		h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})
		session := adminSession()
		c, rec := newContext(http.MethodDelete, "/api/v1/admin/users/c-9", "")
		c.SetParamNames("id")
		c.SetParamValues("c-9")
		signedIn(c, session)

		adminUC.EXPECT().DeleteUser(mock.Anything, session, "c-9").Return(nil)

		require.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAdminHandler_ChangeRole(t *testing.T) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})
	session := adminSession()
	c, rec := newContext(http.MethodPut, "/api/v1/admin/users/c-9/role", `{"role":"delivery"}`)
	c.SetParamNames("id")
	c.SetParamValues("c-9")
	signedIn(c, session)

	adminUC.EXPECT().ChangeRole(mock.Anything, session, "c-9", entity.RoleDelivery).
		Return(&entity.User{ID: "c-9", Role: entity.RoleDelivery}, nil)

	require.NoError(t, h.ChangeRole(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RoleDelivery, decodeData[entity.User](t, rec).Role)
}
