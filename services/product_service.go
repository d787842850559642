package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"online-store/models"
	"online-store/repositories"

	"github.com/shopspring/decimal"
)

type productStore interface {
	GetByID(ctx context.Context, id int) (*models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int) (string, error)
}

type categoryStore interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int) error
}

// ProductService is the admin side of the catalog: product and category
// management. The shopper-facing listing lives in CatalogService.
type ProductService struct {
	products   productStore
	categories categoryStore
}

func NewProductService() *ProductService {
	return &ProductService{
		products:   repositories.NewProductRepository(),
		categories: repositories.NewCategoryRepository(),
	}
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.ListAll(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest, imageURL string) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		return nil, fmt.Errorf("%w: price must be a decimal number", ErrValidation)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	exists, err := s.categories.Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: category %d not found", ErrValidation, req.CategoryID)
	}

	product := &models.Product{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       price,
		Stock:       req.Stock,
		ImageURL:    imageURL,
		CategoryID:  req.CategoryID,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product and returns the stored image path for
// file cleanup. Deleting an unknown id succeeds as a no-op.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) (string, error) {
	return s.products.Delete(ctx, id)
}

func (s *ProductService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetAll(ctx)
}

func (s *ProductService) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	category := &models.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to delete a category that products still
// reference (the foreign key is ON DELETE RESTRICT).
func (s *ProductService) DeleteCategory(ctx context.Context, id int) error {
	err := s.categories.Delete(ctx, id)
	if errors.Is(err, repositories.ErrCategoryInUse) {
		return fmt.Errorf("%w: category %d still has products", ErrConflict, id)
	}
	return err
}
