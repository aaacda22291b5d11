package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invensight/internal/domain"
	"invensight/internal/report"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, p report.Params) (*report.Page[domain.Product], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Page[domain.Product]), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, rawID string) error {
	args := m.Called(ctx, rawID)
	return args.Error(0)
}
