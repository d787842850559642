package services

import (
	"context"
	"math"

	"online-store/models"
	"online-store/repositories"
)

const DefaultPageSize = 8

type catalogLister interface {
	List(ctx context.Context, categoryID *int, offset, limit int) ([]models.Product, int, error)
}

type categoryLister interface {
	GetAll(ctx context.Context) ([]models.Category, error)
}

// CatalogPage is one page of the storefront: the products, the full
// category list for the filter UI, and pagination meta.
type CatalogPage struct {
	Products   []models.Product      `json:"products"`
	Categories []models.Category     `json:"categories"`
	Meta       models.PaginationMeta `json:"meta"`
}

type CatalogService struct {
	products   catalogLister
	categories categoryLister
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		products:   repositories.NewProductRepository(),
		categories: repositories.NewCategoryRepository(),
	}
}

// ListProducts returns a name-sorted page of the catalog, optionally
// filtered to one category. Page numbers below 1 are silently clamped to 1
// and a page past the end yields an empty list, never an error.
func (s *CatalogService) ListProducts(ctx context.Context, categoryID *int, page, limit int) (*CatalogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	products, total, err := s.products.List(ctx, categoryID, offset, limit)
	if err != nil {
		return nil, err
	}

	return &CatalogPage{
		Products:   products,
		Categories: categories,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}
