package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoPoint_Valid(t *testing.T) {
	tests := []struct {
		name  string
		point GeoPoint
		want  bool
	}{
		{name: "origin", point: GeoPoint{}, want: true},
		{name: "taipei", point: GeoPoint{Lat: 25.033, Lng: 121.5654}, want: true},
		{name: "latitude out of range", point: GeoPoint{Lat: 91, Lng: 0}, want: false},
		{name: "longitude out of range", point: GeoPoint{Lat: 0, Lng: -181}, want: false},
		{name: "nan", point: GeoPoint{Lat: math.NaN(), Lng: 0}, want: false},
		{name: "inf", point: GeoPoint{Lat: 0, Lng: math.Inf(1)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.point.Valid())
		})
	}
}

func TestDistanceKm(t *testing.T) {
	assert.InDelta(t, 0, DistanceKm(GeoPoint{Lat: 10, Lng: 10}, GeoPoint{Lat: 10, Lng: 10}), 1e-9)

	// One degree of latitude is about 111 km.
	assert.InDelta(t, 111.2, DistanceKm(GeoPoint{Lat: 0, Lng: 0}, GeoPoint{Lat: 1, Lng: 0}), 0.5)

	taipei := GeoPoint{Lat: 25.0330, Lng: 121.5654}
	kaohsiung := GeoPoint{Lat: 22.6273, Lng: 120.3014}
	assert.InDelta(t, 297, DistanceKm(taipei, kaohsiung), 5)
}
