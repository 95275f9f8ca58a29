package entity

import "time"

// OrderStatus is the server-owned lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped" // handed from vendor to delivery
	OrderStatusPickedUp   OrderStatus = "picked_up"
	OrderStatusInTransit  OrderStatus = "in_transit"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusPickedUp, OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the order still needs work from someone.
func (s OrderStatus) IsOpen() bool {
	return s != OrderStatusDelivered && s != OrderStatusCancelled
}

// orderTransitions lists, per role, which statuses each status may move to.
// The API stays authoritative; this only avoids round-trips that would fail.
var orderTransitions = map[Role]map[OrderStatus][]OrderStatus{
	RoleCustomer: {
		OrderStatusPending: {OrderStatusCancelled},
	},
	RoleVendor: {
		OrderStatusPending:    {OrderStatusCancelled},
		OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCancelled},
		OrderStatusProcessing: {OrderStatusShipped},
	},
	RoleDelivery: {
		OrderStatusShipped:   {OrderStatusPickedUp},
		OrderStatusPickedUp:  {OrderStatusInTransit},
		OrderStatusInTransit: {OrderStatusDelivered},
	},
}

// CanTransition reports whether role may move an order from one status to another.
// Admins are not restricted.
func CanTransition(role Role, from, to OrderStatus) bool {
	if !to.IsValid() {
		return false
	}
	if role == RoleAdmin {
		return from != to
	}

	for _, next := range orderTransitions[role][from] {
		if next == to {
			return true
		}
	}

	return false
}

// OrderItem is a purchased line, priced at order time.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is the local copy of an order held by the storefront API.
type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	VendorID        string          `json:"vendor_id,omitempty"`
	DeliveryID      string          `json:"delivery_id,omitempty"`
	Items           []OrderItem     `json:"items"`
	Total           float64         `json:"total"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	CurrentLocation *GeoPoint       `json:"current_location,omitempty"` // Last courier position reported.
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TotalCents is the order total in minor units.
func (o *Order) TotalCents() int64 {
	return ToCents(o.Total)
}
