package services

import (
	"context"
	"fmt"

	"online-store/models"
	"online-store/repositories"

	"github.com/shopspring/decimal"
)

// CartOwner identifies whose cart an operation targets. Key is opaque: a
// user id for signed-in customers, an anonymous session token otherwise.
// It is resolved once per request and passed in explicitly; the service
// never reads ambient session state. An anonymous cart and a post-login
// cart are distinct partitions and are never merged.
type CartOwner struct {
	Key           string
	Authenticated bool
}

type cartStore interface {
	GetByOwner(ctx context.Context, ownerKey string) ([]models.CartItem, error)
	UpsertIncrement(ctx context.Context, item *models.CartItem) error
	SetQuantity(ctx context.Context, id, quantity int) (bool, error)
	Delete(ctx context.Context, id int) error
	DeleteByOwner(ctx context.Context, ownerKey string) error
}

type productGetter interface {
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

type CartService struct {
	carts    cartStore
	products productGetter
}

func NewCartService() *CartService {
	return &CartService{
		carts:    repositories.NewCartRepository(),
		products: repositories.NewProductRepository(),
	}
}

// LoadCart returns the owner's lines with products inline and the total
// recomputed from scratch. Totals are never cached.
func (s *CartService) LoadCart(ctx context.Context, owner CartOwner) (*models.Cart, error) {
	items, err := s.carts.GetByOwner(ctx, owner.Key)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}

	return &models.Cart{Items: items, TotalPrice: total}, nil
}

// AddItem puts quantity units of a product into the owner's cart. An
// existing line for the same product has its quantity bumped atomically.
// An unknown product and insufficient stock are both rejected as not found,
// leaving the cart untouched. The stock gate checks only the requested
// quantity, not the post-increment line total; that gap is inherited from
// the original design and kept on purpose.
func (s *CartService) AddItem(ctx context.Context, owner CartOwner, productID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return nil, err
	}
	if product.Stock < quantity {
		return nil, fmt.Errorf("%w: insufficient stock for product %d", ErrNotFound, productID)
	}

	item := &models.CartItem{ProductID: productID, Quantity: quantity}
	if owner.Authenticated {
		item.UserID = &owner.Key
	} else {
		item.SessionID = &owner.Key
	}

	if err := s.carts.UpsertIncrement(ctx, item); err != nil {
		return nil, err
	}

	return s.LoadCart(ctx, owner)
}

// UpdateItem sets an absolute quantity on a line. Zero or less deletes the
// line, and deleting an already-absent line succeeds, so repeated
// update-to-zero calls are no-ops. A positive quantity on an unknown line
// is not found. No stock re-validation happens here.
func (s *CartService) UpdateItem(ctx context.Context, owner CartOwner, id, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		if err := s.carts.Delete(ctx, id); err != nil {
			return nil, err
		}
		return s.LoadCart(ctx, owner)
	}

	found, err := s.carts.SetQuantity(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: cart item %d", ErrNotFound, id)
	}

	return s.LoadCart(ctx, owner)
}

// Checkout is a stub: it requires a signed-in owner and clears the cart.
// No order record is written and no stock is decremented.
func (s *CartService) Checkout(ctx context.Context, owner CartOwner) error {
	if !owner.Authenticated {
		return ErrUnauthenticated
	}
	return s.carts.DeleteByOwner(ctx, owner.Key)
}
