package service

import (
	"context"

	"invensight/internal/port"
	"invensight/internal/report"
)

// previewSize is how many rollup rows the combined preview panel shows per
// dimension.
const previewSize = 5

// ReportService assembles the five report shapes the dashboard consumes.
// Every call recomputes from the record source; there is no cross-request
// state, so any failure aborts the whole report rather than returning a
// partial payload.
type ReportService interface {
	Overview(ctx context.Context) (*report.OverallStats, error)
	SalesAndOrders(ctx context.Context) (report.MonthlySeries, error)
	SuppliersAndCategories(ctx context.Context) (*report.Preview, error)
	Suppliers(ctx context.Context, p report.Params) (*report.Page[report.SupplierRollup], error)
	Categories(ctx context.Context, p report.Params) (*report.Page[report.CategoryRollup], error)
	SortedRollups(ctx context.Context) ([]report.SupplierRollup, []report.CategoryRollup, error)
}

type reportService struct {
	productRepo port.ProductRepository
	window      report.SeriesWindow
}

// NewReportService creates a ReportService reading from productRepo. The
// window bounds the monthly sales series.
func NewReportService(productRepo port.ProductRepository, window report.SeriesWindow) ReportService {
	return &reportService{productRepo: productRepo, window: window}
}

func (s *reportService) Overview(ctx context.Context) (*report.OverallStats, error) {
	total, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.productRepo.DistinctValues(ctx, "category")
	if err != nil {
		return nil, err
	}

	records, err := s.productRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	return &report.OverallStats{
		TotalProduct:    total,
		TotalCategories: len(categories),
		TotalOrders:     total,
		TotalSales:      report.SalesTotal(records),
	}, nil
}

func (s *reportService) SalesAndOrders(ctx context.Context) (report.MonthlySeries, error) {
	records, err := s.productRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	return report.Monthly(records, s.window), nil
}

func (s *reportService) SuppliersAndCategories(ctx context.Context) (*report.Preview, error) {
	records, err := s.productRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	return &report.Preview{
		SupplierData: report.Top(report.SupplierRollups(records), previewSize),
		CategoryData: report.Top(report.CategoryRollups(records), previewSize),
	}, nil
}

func (s *reportService) Suppliers(ctx context.Context, p report.Params) (*report.Page[report.SupplierRollup], error) {
	records, err := s.productRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	page := report.PageOf(report.SortedSupplierRollups(records), p)
	return &page, nil
}

func (s *reportService) Categories(ctx context.Context, p report.Params) (*report.Page[report.CategoryRollup], error) {
	records, err := s.productRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	page := report.PageOf(report.SortedCategoryRollups(records), p)
	return &page, nil
}

// SortedRollups returns the full, key-sorted rollups for both dimensions
// from a single record fetch. The export endpoint uses this so the workbook
// matches the paginated listings row for row.
func (s *reportService) SortedRollups(ctx context.Context) ([]report.SupplierRollup, []report.CategoryRollup, error) {
	records, err := s.productRepo.All(ctx)
	if err != nil {
		return nil, nil, err
	}
	return report.SortedSupplierRollups(records), report.SortedCategoryRollups(records), nil
}
