package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"quickmart/config"
	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	"quickmart/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	streamPingInterval = 30 * time.Second
	streamPongWait     = 75 * time.Second
	streamWriteWait    = 10 * time.Second
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Config *config.Config
	Logger *slog.Logger
}

// CartHandler serves the customer cart and its live stream.
type CartHandler struct {
	cartUC   usecase.CartUsecase
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	origins := params.Config.HTTP.AllowOrigins

	return &CartHandler{
		cartUC: params.CartUC,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get(echo.HeaderOrigin)

				return origin == "" || len(origins) == 0 ||
					slices.Contains(origins, "*") || slices.Contains(origins, origin)
			},
		},
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the cart.
// Quantity is checked by the cart itself so the client gets INVALID_QUANTITY.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest represents the request body for changing a line quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartStreamMessage is one frame of the cart stream.
type CartStreamMessage struct {
	Type string            `json:"type"` // snapshot, then cart_updated
	Cart *usecase.CartView `json:"cart"`
}

// Get handles GET /api/v1/cart
func (h *CartHandler) Get(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.Get(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, usecase.NewCartView(cart))
}

// Clear handles DELETE /api/v1/cart
func (h *CartHandler) Clear(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.Clear(c.Request().Context(), session); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, usecase.NewCartView(nil))
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddItemRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), session, req.ProductID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, usecase.NewCartView(cart))
}

// UpdateItem handles PUT /api/v1/cart/items/:id
func (h *CartHandler) UpdateItem(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateItemRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), session, c.Param("id"), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, usecase.NewCartView(cart))
}

// RemoveItem handles DELETE /api/v1/cart/items/:id
func (h *CartHandler) RemoveItem(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, usecase.NewCartView(cart))
}

// Stream handles GET /api/v1/cart/stream. It upgrades to a websocket, sends the
// current cart and then every cart the cache stores for the session.
func (h *CartHandler) Stream(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	// Subscribe before upgrading so failures still get a JSON error.
	updates, err := h.cartUC.Subscribe(ctx, session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	current, err := h.cartUC.Get(ctx, session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered with an HTTP error.
		return nil
	}
	defer conn.Close()

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Debug("Cart stream opened", slog.String("session_id", session.ID.String()))

	go readUntilClosed(conn, cancel)

	err = h.pump(ctx, conn, current, updates)
	logger.Debug("Cart stream closed", slog.String("session_id", session.ID.String()), slog.Any("reason", err))

	return nil
}

// readUntilClosed drains client frames so pongs and close frames are processed,
// and cancels the stream once the client goes away.
func readUntilClosed(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *CartHandler) pump(ctx context.Context, conn *websocket.Conn, current *entity.Cart, updates <-chan *entity.Cart) error {
	if err := writeCart(conn, "snapshot", current); err != nil {
		return err
	}

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(streamWriteWait))

			return ctx.Err()
		case cart, ok := <-updates:
			if !ok {
				return nil
			}
			if err := writeCart(conn, "cart_updated", cart); err != nil {
				return err
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return err
			}
		}
	}
}

func writeCart(conn *websocket.Conn, kind string, cart *entity.Cart) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
		return err
	}

	return conn.WriteJSON(CartStreamMessage{Type: kind, Cart: usecase.NewCartView(cart)})
}
