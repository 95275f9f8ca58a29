package entity

import "time"

// Product is a catalog item listed by a vendor.
type Product struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"` // Unit price in currency units, as the API reports it.
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductSort orders a product listing.
type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortNameAsc   ProductSort = "name_asc"
)

// IsValid checks if the sort is a known value. Empty means unsorted.
func (s ProductSort) IsValid() bool {
	switch s {
	case "", SortNewest, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return true
	default:
		return false
	}
}

// ProductQuery narrows a product listing.
type ProductQuery struct {
	Search   string
	Category string
	Sort     ProductSort
	MinPrice float64
	MaxPrice float64 // zero means unbounded
}

// InStock reports whether at least one unit can be ordered.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
