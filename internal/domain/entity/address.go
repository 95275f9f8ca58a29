package entity

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ShippingAddress is where an order is delivered.
type ShippingAddress struct {
	FullName   string    `json:"full_name" validate:"required,max=120"`
	Line1      string    `json:"line1" validate:"required,max=200"`
	Line2      string    `json:"line2,omitempty" validate:"max=200"`
	City       string    `json:"city" validate:"required,max=100"`
	State      string    `json:"state,omitempty" validate:"max=100"`
	PostalCode string    `json:"postal_code" validate:"required,max=20"`
	Country    string    `json:"country" validate:"required,max=60"`
	Phone      string    `json:"phone" validate:"required,min=7,max=20"`
	Location   *GeoPoint `json:"location,omitempty"` // Drop-off coordinates, when the client knows them.
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether p is a finite coordinate within Earth bounds.
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) ||
		math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}

	return p.Lat >= -90 && p.Lat <= 90 &&
		p.Lng >= -180 && p.Lng <= 180
}

func (p GeoPoint) orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// DistanceKm is the great-circle distance between two points in kilometers.
func DistanceKm(from, to GeoPoint) float64 {
	return geo.DistanceHaversine(from.orb(), to.orb()) / 1000
}
