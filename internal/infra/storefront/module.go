package storefront

import (
	"quickmart/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the client once and exposes it under every API interface.
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(
		func(c *Client) service.AuthAPI { return c },
		func(c *Client) service.CatalogAPI { return c },
		func(c *Client) service.CartAPI { return c },
		func(c *Client) service.OrderAPI { return c },
		func(c *Client) service.VendorAPI { return c },
		func(c *Client) service.DeliveryAPI { return c },
		func(c *Client) service.AdminAPI { return c },
		func(c *Client) service.MessagingAPI { return c },
		func(c *Client) service.NotificationAPI { return c },
	),
)

var (
	_ service.AuthAPI         = (*Client)(nil)
	_ service.CatalogAPI      = (*Client)(nil)
	_ service.CartAPI         = (*Client)(nil)
	_ service.OrderAPI        = (*Client)(nil)
	_ service.VendorAPI       = (*Client)(nil)
	_ service.DeliveryAPI     = (*Client)(nil)
	_ service.AdminAPI        = (*Client)(nil)
	_ service.MessagingAPI    = (*Client)(nil)
	_ service.NotificationAPI = (*Client)(nil)
)
