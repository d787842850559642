package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture() (*CatalogService, *fakeProductRepo, *fakeCategoryRepo) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo(products)
	return &CatalogService{products: products, categories: categories}, products, categories
}

func TestPaginationMath(t *testing.T) {
	svc, products, categories := newCatalogFixture()
	cat := categories.add("Gadgets")
	for i := 1; i <= 20; i++ {
		products.add(fmt.Sprintf("Product %02d", i), "10.00", 5, cat.ID)
	}
	ctx := context.Background()

	page, err := svc.ListProducts(ctx, nil, 1, 8)
	require.NoError(t, err)
	assert.Len(t, page.Products, 8)
	assert.Equal(t, 20, page.Meta.TotalItems)
	assert.Equal(t, 3, page.Meta.TotalPages)

	page, err = svc.ListProducts(ctx, nil, 3, 8)
	require.NoError(t, err)
	assert.Len(t, page.Products, 4, "last page holds the remainder")

	// Past the end: empty list, no error.
	page, err = svc.ListProducts(ctx, nil, 10, 8)
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, 3, page.Meta.TotalPages)
}

func TestPageNumberClampedToOne(t *testing.T) {
	svc, products, categories := newCatalogFixture()
	cat := categories.add("Gadgets")
	products.add("Only Product", "10.00", 5, cat.ID)

	for _, page := range []int{0, -3} {
		result, err := svc.ListProducts(context.Background(), nil, page, 8)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Meta.Page)
		assert.Len(t, result.Products, 1)
	}
}

func TestLimitDefaultsWhenNonPositive(t *testing.T) {
	svc, products, categories := newCatalogFixture()
	cat := categories.add("Gadgets")
	for i := 0; i < 10; i++ {
		products.add(fmt.Sprintf("Product %02d", i), "10.00", 5, cat.ID)
	}

	page, err := svc.ListProducts(context.Background(), nil, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, page.Meta.Limit)
	assert.Len(t, page.Products, DefaultPageSize)
}

func TestCategoryFilter(t *testing.T) {
	svc, products, categories := newCatalogFixture()
	phones := categories.add("Smartphones")
	laptops := categories.add("Laptops")
	products.add("iPhone 15", "999.00", 10, phones.ID)
	products.add("Pixel 9", "799.00", 10, phones.ID)
	products.add("MacBook Air", "1299.00", 5, laptops.ID)

	page, err := svc.ListProducts(context.Background(), &phones.ID, 1, 8)
	require.NoError(t, err)
	require.Len(t, page.Products, 2)
	assert.Equal(t, 2, page.Meta.TotalItems)
	for _, p := range page.Products {
		assert.Equal(t, phones.ID, p.CategoryID)
	}

	// The category list for the filter UI stays unfiltered.
	assert.Len(t, page.Categories, 2)
}

func TestSortedByNameThenID(t *testing.T) {
	svc, products, categories := newCatalogFixture()
	cat := categories.add("Gadgets")
	b := products.add("Beta", "10.00", 5, cat.ID)
	a := products.add("Alpha", "10.00", 5, cat.ID)
	dup1 := products.add("Gamma", "10.00", 5, cat.ID)
	dup2 := products.add("Gamma", "10.00", 5, cat.ID)

	page, err := svc.ListProducts(context.Background(), nil, 1, 8)
	require.NoError(t, err)
	require.Len(t, page.Products, 4)
	assert.Equal(t, a.ID, page.Products[0].ID)
	assert.Equal(t, b.ID, page.Products[1].ID)
	assert.Equal(t, dup1.ID, page.Products[2].ID, "name ties break on id")
	assert.Equal(t, dup2.ID, page.Products[3].ID)
}
