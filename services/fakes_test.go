package services

import (
	"context"
	"sort"
	"time"

	"online-store/models"
	"online-store/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// In-memory stand-ins for the pgx repositories. They mirror the database
// contract closely enough for the service rules under test: pgx.ErrNoRows
// for missing rows, one line per (owner, product), idempotent deletes.

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeProductRepo struct {
	products map[int]*models.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int]*models.Product{}, nextID: 1}
}

func (f *fakeProductRepo) add(name, price string, stock, categoryID int) *models.Product {
	p := &models.Product{
		ID:         f.nextID,
		Name:       name,
		Price:      dec(price),
		Stock:      stock,
		CategoryID: categoryID,
	}
	f.products[p.ID] = p
	f.nextID++
	return p
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductRepo) sorted(categoryID *int) []models.Product {
	out := []models.Product{}
	for _, p := range f.products {
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (f *fakeProductRepo) List(_ context.Context, categoryID *int, offset, limit int) ([]models.Product, int, error) {
	all := f.sorted(categoryID)
	total := len(all)
	if offset >= total {
		return []models.Product{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeProductRepo) ListAll(_ context.Context) ([]models.Product, error) {
	out := f.sorted(nil)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	product.ID = f.nextID
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	f.nextID++
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int) (string, error) {
	p, ok := f.products[id]
	if !ok {
		return "", nil
	}
	delete(f.products, id)
	return p.ImageURL, nil
}

type fakeCategoryRepo struct {
	categories map[int]models.Category
	nextID     int
	products   *fakeProductRepo
}

func newFakeCategoryRepo(products *fakeProductRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int]models.Category{}, nextID: 1, products: products}
}

func (f *fakeCategoryRepo) add(name string) models.Category {
	cat := models.Category{ID: f.nextID, Name: name}
	f.categories[cat.ID] = cat
	f.nextID++
	return cat
}

func (f *fakeCategoryRepo) GetAll(_ context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, cat := range f.categories {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeCategoryRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := f.categories[id]
	return ok, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	category.ID = f.nextID
	category.CreatedAt = time.Now()
	f.nextID++
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int) error {
	if f.products != nil {
		for _, p := range f.products.products {
			if p.CategoryID == id {
				return repositories.ErrCategoryInUse
			}
		}
	}
	delete(f.categories, id)
	return nil
}

type fakeCartRepo struct {
	items    map[int]*models.CartItem
	nextID   int
	products *fakeProductRepo
}

func newFakeCartRepo(products *fakeProductRepo) *fakeCartRepo {
	return &fakeCartRepo{items: map[int]*models.CartItem{}, nextID: 1, products: products}
}

func matchesOwner(ci *models.CartItem, ownerKey string) bool {
	if ci.SessionID != nil && *ci.SessionID == ownerKey {
		return true
	}
	if ci.UserID != nil && *ci.UserID == ownerKey {
		return true
	}
	return false
}

func (f *fakeCartRepo) GetByOwner(_ context.Context, ownerKey string) ([]models.CartItem, error) {
	out := []models.CartItem{}
	for _, ci := range f.items {
		if !matchesOwner(ci, ownerKey) {
			continue
		}
		copied := *ci
		if p, ok := f.products.products[ci.ProductID]; ok {
			productCopy := *p
			copied.Product = &productCopy
		}
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCartRepo) UpsertIncrement(_ context.Context, item *models.CartItem) error {
	for _, existing := range f.items {
		if existing.ProductID != item.ProductID {
			continue
		}
		sameSession := existing.SessionID != nil && item.SessionID != nil && *existing.SessionID == *item.SessionID
		sameUser := existing.UserID != nil && item.UserID != nil && *existing.UserID == *item.UserID
		if sameSession || sameUser {
			existing.Quantity += item.Quantity
			item.ID = existing.ID
			item.Quantity = existing.Quantity
			return nil
		}
	}

	item.ID = f.nextID
	f.nextID++
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeCartRepo) SetQuantity(_ context.Context, id, quantity int) (bool, error) {
	ci, ok := f.items[id]
	if !ok {
		return false, nil
	}
	ci.Quantity = quantity
	return true, nil
}

func (f *fakeCartRepo) Delete(_ context.Context, id int) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCartRepo) DeleteByOwner(_ context.Context, ownerKey string) error {
	for id, ci := range f.items {
		if matchesOwner(ci, ownerKey) {
			delete(f.items, id)
		}
	}
	return nil
}
