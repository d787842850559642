package services

import (
	"context"
	"testing"

	"online-store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture() (*ProductService, *fakeProductRepo, *fakeCategoryRepo) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo(products)
	return &ProductService{products: products, categories: categories}, products, categories
}

func TestCreateProduct(t *testing.T) {
	svc, _, categories := newProductFixture()
	cat := categories.add("Smartphones")

	product, err := svc.CreateProduct(context.Background(), models.CreateProductRequest{
		Name:       "  iPhone 15  ",
		Price:      "999.00",
		Stock:      10,
		CategoryID: cat.ID,
	}, "/uploads/products/1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15", product.Name, "name is trimmed")
	assert.True(t, product.Price.Equal(dec("999.00")))
	assert.Equal(t, "/uploads/products/1.jpg", product.ImageURL)
	assert.NotZero(t, product.ID)
}

func TestCreateProductValidation(t *testing.T) {
	svc, _, categories := newProductFixture()
	cat := categories.add("Smartphones")

	cases := []struct {
		name string
		req  models.CreateProductRequest
	}{
		{"empty name", models.CreateProductRequest{Name: "   ", Price: "10.00", Stock: 1, CategoryID: cat.ID}},
		{"unparsable price", models.CreateProductRequest{Name: "X", Price: "cheap", Stock: 1, CategoryID: cat.ID}},
		{"negative price", models.CreateProductRequest{Name: "X", Price: "-1.00", Stock: 1, CategoryID: cat.ID}},
		{"negative stock", models.CreateProductRequest{Name: "X", Price: "10.00", Stock: -1, CategoryID: cat.ID}},
		{"unknown category", models.CreateProductRequest{Name: "X", Price: "10.00", Stock: 1, CategoryID: 999}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tc.req, "")
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	listed, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed, "rejected submissions must not persist anything")
}

func TestZeroPriceAndZeroStockAreValid(t *testing.T) {
	svc, _, categories := newProductFixture()
	cat := categories.add("Freebies")

	product, err := svc.CreateProduct(context.Background(), models.CreateProductRequest{
		Name:       "Sticker",
		Price:      "0.00",
		Stock:      0,
		CategoryID: cat.ID,
	}, "")
	require.NoError(t, err)
	assert.True(t, product.Price.IsZero())
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	svc, products, categories := newProductFixture()
	cat := categories.add("Smartphones")
	p := products.add("iPhone 15", "999.00", 10, cat.ID)

	_, err := svc.DeleteProduct(context.Background(), p.ID)
	require.NoError(t, err)

	// Unknown ids, including ones never assigned, succeed as no-ops.
	_, err = svc.DeleteProduct(context.Background(), p.ID)
	require.NoError(t, err)
	_, err = svc.DeleteProduct(context.Background(), 999)
	require.NoError(t, err)

	listed, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCreateCategory(t *testing.T) {
	svc, _, _ := newProductFixture()

	cat, err := svc.CreateCategory(context.Background(), models.CreateCategoryRequest{Name: "Tablets"})
	require.NoError(t, err)
	assert.NotZero(t, cat.ID)

	_, err = svc.CreateCategory(context.Background(), models.CreateCategoryRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteCategoryRestrictedWhileReferenced(t *testing.T) {
	svc, products, categories := newProductFixture()
	cat := categories.add("Smartphones")
	p := products.add("iPhone 15", "999.00", 10, cat.ID)

	err := svc.DeleteCategory(context.Background(), cat.ID)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.DeleteProduct(context.Background(), p.ID)
	require.NoError(t, err)

	// With the last referencing product gone the delete goes through.
	require.NoError(t, svc.DeleteCategory(context.Background(), cat.ID))
}

func TestGetProductNotFound(t *testing.T) {
	svc, _, _ := newProductFixture()

	_, err := svc.GetProduct(context.Background(), 123)
	assert.ErrorIs(t, err, ErrNotFound)
}
