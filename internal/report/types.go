// Package report implements the analytics core behind the product-reporting
// endpoints: in-memory grouping and summing of order records, the monthly
// sales series, whole-number rounding of aggregates, and pagination of the
// resulting rollup lists. Everything here is pure computation over a record
// batch; fetching the batch is the repository's job.
package report

// SupplierRollup is one aggregated row per supplier. Field names are part
// of the response contract and serialize exactly as written.
type SupplierRollup struct {
	Name     string  `json:"Name"`
	Quantity float64 `json:"Quantity"`
	Unit     float64 `json:"Unit"`
	Price    float64 `json:"Price"`
}

// CategoryRollup is one aggregated row per category.
type CategoryRollup struct {
	Name     string  `json:"Category name"`
	Quantity float64 `json:"Quantity"`
	Price    float64 `json:"Price"`
}

// OverallStats is the dashboard headline snapshot. TotalProduct and
// TotalOrders are both the full record count: every record is an ordered
// line item, so the two are identical by construction.
type OverallStats struct {
	TotalProduct    int     `json:"total_product"`
	TotalCategories int     `json:"total_categories"`
	TotalOrders     int     `json:"total_orders"`
	TotalSales      float64 `json:"total_sales"`
}

// MonthlyPoint is one month of the sales series.
type MonthlyPoint struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalSales    float64 `json:"totalSales"`
}

// MonthlySeries maps a 3-letter month label to its point. Months with no
// orders are absent, not zero-filled.
type MonthlySeries map[string]MonthlyPoint

// Preview is the compact top-5 panel combining both dimensions.
type Preview struct {
	SupplierData []SupplierRollup `json:"Supplier data"`
	CategoryData []CategoryRollup `json:"Category data"`
}

// Page is the standard paginated-response envelope.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}
