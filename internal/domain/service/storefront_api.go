package service

import (
	"context"

	"quickmart/internal/domain/entity"
)

type accessTokenKey struct{}

// ContextWithAccessToken attaches the storefront API bearer token to ctx.
func ContextWithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext returns the bearer token set by ContextWithAccessToken.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)

	return token, ok && token != ""
}

// AuthResult is what the API returns for a successful login or registration.
type AuthResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// RegisterRequest creates a storefront account.
type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
	Phone    string      `json:"phone,omitempty"`
}

// CreateOrderRequest places a pending order for the current cart.
type CreateOrderRequest struct {
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
	Items           []entity.OrderItem     `json:"items"`
}

// PaymentIntent is created by the API for a pending order.
type PaymentIntent struct {
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// ProductInput is the writable part of a product.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	Category    string  `json:"category" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

// Every storefront API call reads its bearer token from ctx.

// AuthAPI covers sign-in and the current account.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)
	Me(ctx context.Context) (*entity.User, error)
}

// CatalogAPI reads the public catalog.
type CatalogAPI interface {
	ListProducts(ctx context.Context, query *entity.ProductQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
}

// CartAPI mutates the server-held cart of the signed-in customer.
type CartAPI interface {
	GetCart(ctx context.Context) (*entity.Cart, error)
	AddCartItem(ctx context.Context, productID string, quantity int) (*entity.Cart, error)
	UpdateCartItem(ctx context.Context, itemID string, quantity int) (*entity.Cart, error)
	RemoveCartItem(ctx context.Context, itemID string) (*entity.Cart, error)
	ClearCart(ctx context.Context) error
}

// OrderAPI covers the customer side of orders and payment.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error)
	CreatePaymentIntent(ctx context.Context, orderID string) (*PaymentIntent, error)
	ConfirmOrderPayment(ctx context.Context, orderID, paymentIntentID string) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	CancelOrder(ctx context.Context, id string) (*entity.Order, error)
}

// VendorAPI covers a vendor's own products and orders.
type VendorAPI interface {
	ListVendorProducts(ctx context.Context) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListVendorOrders(ctx context.Context) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)
}

// DeliveryAPI covers a courier's assigned orders.
type DeliveryAPI interface {
	ListAssignedDeliveries(ctx context.Context) ([]*entity.Order, error)
	UpdateDeliveryStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)
	ReportDeliveryLocation(ctx context.Context, id string, point entity.GeoPoint) error
}

// AdminAPI covers back-office reads and user management.
type AdminAPI interface {
	ListUsers(ctx context.Context, role entity.Role) ([]*entity.User, error)
	UpdateUserRole(ctx context.Context, id string, role entity.Role) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
	GetAnalytics(ctx context.Context) (*entity.Analytics, error)
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)
}

// MessagingAPI covers the directory and direct messages.
type MessagingAPI interface {
	ListDirectory(ctx context.Context, role entity.Role) ([]*entity.User, error)
	ListMessages(ctx context.Context) ([]*entity.Message, error)
	GetConversation(ctx context.Context, peerID string) ([]*entity.Message, error)
	SendMessage(ctx context.Context, receiverID, content string) (*entity.Message, error)
}

// NotificationAPI covers in-app notifications.
type NotificationAPI interface {
	ListNotifications(ctx context.Context) ([]*entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}
