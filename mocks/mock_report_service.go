package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invensight/internal/report"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Overview(ctx context.Context) (*report.OverallStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.OverallStats), args.Error(1)
}

func (m *MockReportService) SalesAndOrders(ctx context.Context) (report.MonthlySeries, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(report.MonthlySeries), args.Error(1)
}

func (m *MockReportService) SuppliersAndCategories(ctx context.Context) (*report.Preview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Preview), args.Error(1)
}

func (m *MockReportService) Suppliers(ctx context.Context, p report.Params) (*report.Page[report.SupplierRollup], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Page[report.SupplierRollup]), args.Error(1)
}

func (m *MockReportService) Categories(ctx context.Context, p report.Params) (*report.Page[report.CategoryRollup], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Page[report.CategoryRollup]), args.Error(1)
}

func (m *MockReportService) SortedRollups(ctx context.Context) ([]report.SupplierRollup, []report.CategoryRollup, error) {
	args := m.Called(ctx)
	var suppliers []report.SupplierRollup
	var categories []report.CategoryRollup
	if args.Get(0) != nil {
		suppliers = args.Get(0).([]report.SupplierRollup)
	}
	if args.Get(1) != nil {
		categories = args.Get(1).([]report.CategoryRollup)
	}
	return suppliers, categories, args.Error(2)
}
