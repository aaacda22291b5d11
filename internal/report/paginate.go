package report

import "strconv"

// Defaults applied when pagination input is absent or unusable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params are pagination inputs after coercion.
type Params struct {
	Page  int
	Limit int
}

// ParseParams coerces untrusted query input. Empty, non-numeric, or
// non-positive values fall back to the defaults instead of erroring.
func ParseParams(pageStr, limitStr string) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(pageStr); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
		p.Limit = n
	}
	return p
}

// Skip returns the number of rows to drop before the requested window.
func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is max(1, ceil(total/limit)).
func TotalPages(total, limit int) int {
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return pages
}

// PageOf slices rows to the requested window and fills navigation metadata.
// rows must already be in their final order; slicing never re-sorts, so a
// page of a sorted list stays consistent with its neighbors.
func PageOf[T any](rows []T, p Params) Page[T] {
	total := len(rows)
	lo := p.Skip()
	if lo > total {
		lo = total
	}
	hi := lo + p.Limit
	if hi > total {
		hi = total
	}

	items := make([]T, hi-lo)
	copy(items, rows[lo:hi])

	return Page[T]{
		Items:      items,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: TotalPages(total, p.Limit),
		HasNext:    p.Page*p.Limit < total,
		HasPrev:    p.Page > 1,
	}
}
