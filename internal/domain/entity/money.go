package entity

import "math"

// ToCents converts a currency amount to integer minor units, rounding half away from zero.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts minor units back to currency units.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
