package entity

// DeliveryAssignment is an order assigned to a courier, with the straight-line
// distance to its drop-off when both ends are known.
type DeliveryAssignment struct {
	Order      *Order   `json:"order"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
	LongHaul   bool     `json:"long_haul"`
}
