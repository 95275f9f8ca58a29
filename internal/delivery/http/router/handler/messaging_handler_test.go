package handler

import (
	"net/http"
	"testing"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	mockUsecase "quickmart/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessagingHandler_Directory(t *testing.T) {
	t.Run("peer role not allowed", func(t *testing.T) {
		messagingUC := mockUsecase.NewMockMessagingUsecase(t)
		h := NewMessagingHandler(MessagingHandlerParams{MessagingUC: messagingUC})
		session := customerSession()
		c, rec := newContext(http.MethodGet, "/api/v1/messages/directory/delivery", "")
		c.SetParamNames("role")
		c.SetParamValues("delivery")
		signedIn(c, session)

		messagingUC.EXPECT().Directory(mock.Anything, session, entity.RoleDelivery, "").
			Return(nil, domainerrors.ErrPeerNotAllowed)

		require.NoError(t, h.Directory(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "PEER_NOT_ALLOWED", decodeError(t, rec).Code)
	})

	t.Run("search", func(t *testing.T) {
		messagingUC := mockUsecase.NewMockMessagingUsecase(t)
		h := NewMessagingHandler(MessagingHandlerParams{MessagingUC: messagingUC})
		session := customerSession()
		c, rec := newContext(http.MethodGet, "/api/v1/messages/directory/vendor?q=fresh", "")
		c.SetParamNames("role")
		c.SetParamValues("vendor")
		signedIn(c, session)

		messagingUC.EXPECT().Directory(mock.Anything, session, entity.RoleVendor, "fresh").
			Return([]*entity.User{{ID: "v-1", Name: "Fresh Farm"}}, nil)

		require.NoError(t, h.Directory(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]*entity.User](t, rec), 1)
	})

	t.Run("unknown role", func(t *testing.T) {
		h := NewMessagingHandler(MessagingHandlerParams{MessagingUC: mockUsecase.NewMockMessagingUsecase(t)})
		c, rec := newContext(http.MethodGet, "/api/v1/messages/directory/robots", "")
		c.SetParamNames("role")
		c.SetParamValues("robots")
		signedIn(c, customerSession())

		require.NoError(t, h.Directory(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMessagingHandler_Send(t *testing.T) {
	messagingUC := mockUsecase.NewMockMessagingUsecase(t)
	h := NewMessagingHandler(MessagingHandlerParams{MessagingUC: messagingUC})
	session := customerSession()
	c, rec := newContext(http.MethodPost, "/api/v1/messages", `{"receiver_id":"v-1","content":"  "}`)
	signedIn(c, session)

	messagingUC.EXPECT().Send(mock.Anything, session, "v-1", "  ").Return(nil, domainerrors.ErrInvalidMessage)

	require.NoError(t, h.Send(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_MESSAGE", decodeError(t, rec).Code)
}
