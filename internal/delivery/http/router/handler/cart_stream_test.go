package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_Stream(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	session := customerSession()

	updates := make(chan *entity.Cart, 1)
	cartUC.EXPECT().Subscribe(mock.Anything, session).Return((<-chan *entity.Cart)(updates), nil)
	cartUC.EXPECT().Get(mock.Anything, session).Return(&entity.Cart{}, nil)

	e := echo.New()
	e.GET("/stream", func(c echo.Context) error {
		return h.Stream(signedIn(c, session))
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/stream", nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first CartStreamMessage
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "snapshot", first.Type)
	assert.Zero(t, first.Cart.ItemCount)

	updates <- &entity.Cart{Items: []entity.CartItem{{ID: "i1", ProductID: "p1", Price: 4, Quantity: 2}}}

	var next CartStreamMessage
	require.NoError(t, conn.ReadJSON(&next))
	assert.Equal(t, "cart_updated", next.Type)
	assert.Equal(t, 2, next.Cart.ItemCount)
	assert.InDelta(t, 8.0, next.Cart.Total, 0.001)
}

func TestCartHandler_Stream_SubscribeFailsBeforeUpgrade(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	session := customerSession()
	session.Role = entity.RoleVendor

	cartUC.EXPECT().Subscribe(mock.Anything, session).Return(nil, domainerrors.ErrRoleNotAllowed)

	c, rec := newContext(http.MethodGet, "/api/v1/cart/stream", "")
	signedIn(c, session)

	require.NoError(t, h.Stream(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ROLE_NOT_ALLOWED", decodeError(t, rec).Code)
}
