package service

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"invensight/internal/domain"
	"invensight/internal/port"
	"invensight/internal/report"
)

// ProductService exposes the raw record listing and deletion.
type ProductService interface {
	List(ctx context.Context, p report.Params) (*report.Page[domain.Product], error)
	Delete(ctx context.Context, rawID string) error
}

type productService struct {
	productRepo port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(productRepo port.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) List(ctx context.Context, p report.Params) (*report.Page[domain.Product], error) {
	total, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.productRepo.List(ctx, p.Skip(), p.Limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Product{}
	}

	page := report.Page[domain.Product]{
		Items:      items,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: report.TotalPages(total, p.Limit),
		HasNext:    p.Page*p.Limit < total,
		HasPrev:    p.Page > 1,
	}
	return &page, nil
}

// Delete removes a record addressed by either its legacy numeric id or its
// native key. A missing record is a reported error, never a silent success.
func (s *productService) Delete(ctx context.Context, rawID string) error {
	if id, err := strconv.ParseInt(rawID, 10, 64); err == nil {
		return s.productRepo.DeleteByNumericID(ctx, id)
	}

	key, err := uuid.Parse(rawID)
	if err != nil {
		return domain.ErrProductNotFound
	}
	return s.productRepo.DeleteByKey(ctx, key)
}
