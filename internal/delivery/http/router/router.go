// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quickmart/internal/delivery/http/middleware"
	"quickmart/internal/delivery/http/router/handler"
	"quickmart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	NavigationHandler   *handler.NavigationHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	OrderHandler        *handler.OrderHandler
	MessagingHandler    *handler.MessagingHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	VendorHandler       *handler.VendorHandler
	DeliveryHandler     *handler.DeliveryHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.AuthMiddleware

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.SessionHandler.Login)
		authGroup.POST("/register", r.SessionHandler.Register)
		authGroup.POST("/logout", r.SessionHandler.Logout, auth.Authenticate)
		authGroup.GET("/session", r.SessionHandler.Current, auth.Authenticate)
	}

	e.GET("/nav/resolve", r.NavigationHandler.Resolve, auth.Optional)

	apiV1 := e.Group("/api/v1")

	shopGroup := apiV1.Group("/shop")
	{
		shopGroup.GET("/products", r.CatalogHandler.ListProducts)
		shopGroup.GET("/products/:id", r.CatalogHandler.GetProduct)
	}

	// Route level middleware here: an unprefixed group with middleware would claim
	// every unknown /api/v1 path.
	customer := []echo.MiddlewareFunc{auth.Authenticate, auth.RequireRole(entity.RoleCustomer)}
	{
		apiV1.GET("/cart", r.CartHandler.Get, customer...)
		apiV1.DELETE("/cart", r.CartHandler.Clear, customer...)
		apiV1.POST("/cart/items", r.CartHandler.AddItem, customer...)
		apiV1.PUT("/cart/items/:id", r.CartHandler.UpdateItem, customer...)
		apiV1.DELETE("/cart/items/:id", r.CartHandler.RemoveItem, customer...)
		apiV1.GET("/cart/stream", r.CartHandler.Stream, customer...)

		apiV1.POST("/checkout", r.CheckoutHandler.Start, customer...)
		apiV1.POST("/checkout/:orderId/confirm", r.CheckoutHandler.Confirm, customer...)

		apiV1.GET("/orders", r.OrderHandler.List, customer...)
		apiV1.GET("/orders/:id", r.OrderHandler.Get, customer...)
		apiV1.POST("/orders/:id/cancel", r.OrderHandler.Cancel, customer...)
	}

	messagesGroup := apiV1.Group("/messages", auth.Authenticate)
	{
		messagesGroup.GET("/directory/:role", r.MessagingHandler.Directory)
		messagesGroup.GET("/inbox", r.MessagingHandler.Inbox)
		messagesGroup.GET("/conversations/:peerId", r.MessagingHandler.Conversation)
		messagesGroup.POST("", r.MessagingHandler.Send)
	}

	notificationsGroup := apiV1.Group("/notifications", auth.Authenticate)
	{
		notificationsGroup.GET("", r.NotificationHandler.List)
		notificationsGroup.POST("/:id/read", r.NotificationHandler.MarkRead)
		notificationsGroup.GET("/push-history", r.NotificationHandler.PushHistory)
	}

	devicesGroup := apiV1.Group("/devices", auth.Authenticate)
	{
		devicesGroup.POST("", r.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", r.DeviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.DeviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}

	vendorGroup := apiV1.Group("/vendor", auth.Authenticate, auth.RequireRole(entity.RoleVendor))
	{
		vendorGroup.GET("/dashboard", r.VendorHandler.Dashboard)
		vendorGroup.GET("/products", r.VendorHandler.ListProducts)
		vendorGroup.POST("/products", r.VendorHandler.CreateProduct)
		vendorGroup.PUT("/products/:id", r.VendorHandler.UpdateProduct)
		vendorGroup.DELETE("/products/:id", r.VendorHandler.DeleteProduct)
		vendorGroup.GET("/orders", r.VendorHandler.ListOrders)
		vendorGroup.PUT("/orders/:id/status", r.VendorHandler.UpdateOrderStatus)
		vendorGroup.GET("/orders/:id/handoff-qr", r.VendorHandler.HandoffQR)
	}

	deliveryGroup := apiV1.Group("/delivery", auth.Authenticate, auth.RequireRole(entity.RoleDelivery))
	{
		deliveryGroup.GET("/dashboard", r.DeliveryHandler.Dashboard)
		deliveryGroup.PUT("/orders/:id/status", r.DeliveryHandler.UpdateStatus)
		deliveryGroup.PUT("/orders/:id/location", r.DeliveryHandler.ReportLocation)
		deliveryGroup.POST("/handoff", r.DeliveryHandler.ScanHandoff)
	}

	adminGroup := apiV1.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.AdminHandler.Dashboard)
		adminGroup.GET("/users", r.AdminHandler.ListUsers)
		adminGroup.PUT("/users/:id/role", r.AdminHandler.ChangeRole)
		adminGroup.DELETE("/users/:id", r.AdminHandler.DeleteUser)
		adminGroup.GET("/orders", r.AdminHandler.ListOrders)
	}
}
