package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invensight/internal/domain"
	"invensight/internal/report"
	"invensight/internal/service"
	"invensight/mocks"
)

func TestProductList(t *testing.T) {
	repo := new(mocks.MockProductRepo)
	svc := service.NewProductService(repo)

	records := []domain.Product{
		{ProductName: "bolt"},
		{ProductName: "nut"},
	}
	repo.On("Count", mock.Anything).Return(12, nil)
	repo.On("List", mock.Anything, 10, 10).Return(records, nil)

	page, err := svc.List(context.Background(), report.Params{Page: 2, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, records, page.Items)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
	repo.AssertExpectations(t)
}

func TestProductList_EmptyStore(t *testing.T) {
	repo := new(mocks.MockProductRepo)
	svc := service.NewProductService(repo)

	repo.On("Count", mock.Anything).Return(0, nil)
	repo.On("List", mock.Anything, 0, 10).Return(nil, nil)

	page, err := svc.List(context.Background(), report.Params{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func TestProductDelete_NumericID(t *testing.T) {
	repo := new(mocks.MockProductRepo)
	svc := service.NewProductService(repo)

	repo.On("DeleteByNumericID", mock.Anything, int64(42)).Return(nil)

	err := svc.Delete(context.Background(), "42")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProductDelete_Key(t *testing.T) {
	repo := new(mocks.MockProductRepo)
	svc := service.NewProductService(repo)

	key := uuid.New()
	repo.On("DeleteByKey", mock.Anything, key).Return(nil)

	err := svc.Delete(context.Background(), key.String())

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProductDelete_UnparseableID(t *testing.T) {
	repo := new(mocks.MockProductRepo)
	svc := service.NewProductService(repo)

	err := svc.Delete(context.Background(), "not-an-id")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	repo.AssertNotCalled(t, "DeleteByNumericID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteByKey", mock.Anything, mock.Anything)
}

func TestProductDelete_MissingRecord(t *testing.T) {
	repo := new(mocks.MockProductRepo)
	svc := service.NewProductService(repo)

	repo.On("DeleteByNumericID", mock.Anything, int64(7)).Return(domain.ErrProductNotFound)

	err := svc.Delete(context.Background(), "7")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
