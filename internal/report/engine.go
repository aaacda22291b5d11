package report

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"

	"invensight/internal/domain"
)

// monthNames is 1-indexed so calendar month numbers map directly; index 0
// is an empty sentinel.
var monthNames = [...]string{
	"",
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// SupplierRollups folds records into one row per supplier in encounter
// order. Quantity and Price are sums; Unit is the unit price of the first
// record seen for the supplier. First-seen-wins is deliberate: the order of
// the record batch decides which unit price a supplier reports, and callers
// must not "fix" that by averaging.
func SupplierRollups(records []domain.Product) []SupplierRollup {
	idx := make(map[string]int, len(records))
	rows := make([]SupplierRollup, 0)
	for i := range records {
		r := &records[i]
		j, ok := idx[r.Supplier]
		if !ok {
			j = len(rows)
			idx[r.Supplier] = j
			rows = append(rows, SupplierRollup{Name: r.Supplier, Unit: r.UnitPrice})
		}
		rows[j].Quantity += float64(r.Quantity)
		rows[j].Price += r.TotalPrice
	}
	for i := range rows {
		rows[i].Quantity = Round(rows[i].Quantity)
		rows[i].Unit = Round(rows[i].Unit)
		rows[i].Price = Round(rows[i].Price)
	}
	return rows
}

// CategoryRollups folds records into one row per category in encounter
// order.
func CategoryRollups(records []domain.Product) []CategoryRollup {
	idx := make(map[string]int, len(records))
	rows := make([]CategoryRollup, 0)
	for i := range records {
		r := &records[i]
		j, ok := idx[r.Category]
		if !ok {
			j = len(rows)
			idx[r.Category] = j
			rows = append(rows, CategoryRollup{Name: r.Category})
		}
		rows[j].Quantity += float64(r.Quantity)
		rows[j].Price += r.TotalPrice
	}
	for i := range rows {
		rows[i].Quantity = Round(rows[i].Quantity)
		rows[i].Price = Round(rows[i].Price)
	}
	return rows
}

// SortedSupplierRollups returns supplier rollups sorted by name ascending.
// The paginated listings require this sort so that page boundaries stay
// stable across repeated calls.
func SortedSupplierRollups(records []domain.Product) []SupplierRollup {
	rows := SupplierRollups(records)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// SortedCategoryRollups returns category rollups sorted by name ascending.
func SortedCategoryRollups(records []domain.Product) []CategoryRollup {
	rows := CategoryRollups(records)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// Top returns the first n rows in their current order. No sort is applied;
// the preview panels show whatever order the grouping produced.
func Top[T any](rows []T, n int) []T {
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}

// Monthly groups records whose order date falls inside the window by
// calendar month, counting orders and summing quantity and sales. Records
// whose date cannot be parsed are skipped.
func Monthly(records []domain.Product, w SeriesWindow) MonthlySeries {
	type bucket struct {
		orders   int
		quantity int
		sales    float64
	}
	byMonth := make(map[time.Month]*bucket)

	for i := range records {
		r := &records[i]
		t, err := dateparse.ParseIn(r.DateOrdered, time.UTC)
		if err != nil || !w.Contains(t) {
			continue
		}
		b, ok := byMonth[t.Month()]
		if !ok {
			b = &bucket{}
			byMonth[t.Month()] = b
		}
		b.orders++
		b.quantity += r.Quantity
		b.sales += r.TotalPrice
	}

	series := make(MonthlySeries, len(byMonth))
	for m, b := range byMonth {
		series[monthNames[m]] = MonthlyPoint{
			TotalOrders:   b.orders,
			TotalQuantity: b.quantity,
			TotalSales:    Round(b.sales),
		}
	}
	return series
}

// SalesTotal sums total price across the batch and rounds once.
func SalesTotal(records []domain.Product) float64 {
	var sum float64
	for i := range records {
		sum += records[i].TotalPrice
	}
	return Round(sum)
}
