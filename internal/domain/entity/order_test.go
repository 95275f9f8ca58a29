package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		role Role
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{RoleVendor, OrderStatusPaid, OrderStatusProcessing, true},
		{RoleVendor, OrderStatusProcessing, OrderStatusShipped, true},
		{RoleVendor, OrderStatusPending, OrderStatusCancelled, true},
		{RoleVendor, OrderStatusShipped, OrderStatusDelivered, false},
		{RoleVendor, OrderStatusPending, OrderStatusShipped, false},
		{RoleDelivery, OrderStatusShipped, OrderStatusPickedUp, true},
		{RoleDelivery, OrderStatusPickedUp, OrderStatusInTransit, true},
		{RoleDelivery, OrderStatusInTransit, OrderStatusDelivered, true},
		{RoleDelivery, OrderStatusPaid, OrderStatusPickedUp, false},
		{RoleDelivery, OrderStatusShipped, OrderStatusDelivered, false},
		{RoleCustomer, OrderStatusPending, OrderStatusCancelled, true},
		{RoleCustomer, OrderStatusPaid, OrderStatusCancelled, false},
		{RoleAdmin, OrderStatusDelivered, OrderStatusCancelled, true},
		{RoleAdmin, OrderStatusPaid, OrderStatusPaid, false},
		{RoleAdmin, OrderStatusPaid, OrderStatus("lost"), false},
	}

	for _, tt := range tests {
		name := string(tt.role) + ":" + string(tt.from) + "->" + string(tt.to)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.role, tt.from, tt.to))
		})
	}
}

func TestRole_Home(t *testing.T) {
	assert.Equal(t, "/shop", RoleCustomer.Home())
	assert.Equal(t, "/vendor/dashboard", RoleVendor.Home())
	assert.Equal(t, "/delivery/dashboard", RoleDelivery.Home())
	assert.Equal(t, "/admin/dashboard", RoleAdmin.Home())
	assert.Equal(t, "/login", Role("").Home())
}

func TestCanMessage(t *testing.T) {
	assert.True(t, CanMessage(RoleCustomer, RoleVendor))
	assert.False(t, CanMessage(RoleCustomer, RoleDelivery))
	assert.True(t, CanMessage(RoleVendor, RoleDelivery))
	assert.True(t, CanMessage(RoleAdmin, RoleAdmin))
	assert.True(t, CanMessage(RoleCustomer, RoleAdmin))
	assert.True(t, CanMessage(RoleDelivery, RoleAdmin))
	assert.False(t, CanMessage(Role("guest"), RoleVendor))
}

func TestCanMessage_Symmetric(t *testing.T) {
	for _, role := range AllRoles {
		for _, peer := range AllRoles {
			assert.Equal(t, CanMessage(role, peer), CanMessage(peer, role), "%s and %s", role, peer)
		}
	}
}
