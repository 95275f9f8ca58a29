package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCart_TotalCents(t *testing.T) {
	tests := []struct {
		name  string
		items []CartItem
		want  int64
	}{
		{name: "empty", want: 0},
		{
			name:  "single line",
			items: []CartItem{{ID: "a", Price: 19.99, Quantity: 3}},
			want:  5997,
		},
		{
			name: "rounds each unit price before multiplying",
			items: []CartItem{
				{ID: "a", Price: 0.1, Quantity: 3},
				{ID: "b", Price: 0.2, Quantity: 1},
			},
			want: 50,
		},
		{
			name:  "half cent rounds away from zero",
			items: []CartItem{{ID: "a", Price: 1.005, Quantity: 2}},
			want:  ToCents(1.005) * 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{Items: tt.items}
			assert.Equal(t, tt.want, cart.TotalCents())
			assert.InDelta(t, float64(tt.want)/100, cart.Total(), 1e-9)
		})
	}
}

func TestCart_NilSafe(t *testing.T) {
	var cart *Cart

	assert.Equal(t, int64(0), cart.TotalCents())
	assert.Equal(t, 0, cart.ItemCount())
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, -1, cart.FindItem("x"))
	assert.NotNil(t, cart.Clone())
}

func TestCart_WithQuantityDoesNotMutateOriginal(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cart := &Cart{Items: []CartItem{{ID: "a", Price: 2.5, Quantity: 1}, {ID: "b", Price: 1, Quantity: 4}}}

	next, ok := cart.WithQuantity("a", 3, now)
	assert.True(t, ok)
	assert.Equal(t, 3, next.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 7, next.ItemCount())
	assert.Equal(t, now, next.UpdatedAt)

	_, ok = cart.WithQuantity("missing", 2, now)
	assert.False(t, ok)
}

func TestCart_Without(t *testing.T) {
	now := time.Now()
	cart := &Cart{Items: []CartItem{{ID: "a", Quantity: 1}, {ID: "b", Quantity: 2}}}

	next, ok := cart.Without("a", now)
	assert.True(t, ok)
	assert.Len(t, next.Items, 1)
	assert.Equal(t, "b", next.Items[0].ID)
	assert.Len(t, cart.Items, 2)
}
