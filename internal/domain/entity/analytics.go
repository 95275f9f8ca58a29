package entity

// Analytics is the admin summary computed by the storefront API.
type Analytics struct {
	TotalUsers   int            `json:"total_users"`
	TotalOrders  int            `json:"total_orders"`
	TotalRevenue float64        `json:"total_revenue"`
	UsersByRole  map[string]int `json:"users_by_role"`
	SalesByDay   []DailySales   `json:"sales_by_day"`
}

// DailySales is revenue for one calendar day.
type DailySales struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}
