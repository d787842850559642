package repositories

import (
	"context"
	"errors"
	"time"

	"online-store/config"
	"online-store/models"

	"github.com/jackc/pgx/v5"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// GetByOwner loads every line for the resolved owner key, product inline.
// The key matches either column; only one is ever populated per line.
func (r *CartRepository) GetByOwner(ctx context.Context, ownerKey string) ([]models.CartItem, error) {
	query := `
		SELECT ci.id, ci.product_id, ci.quantity, ci.session_id, ci.user_id, ci.created_at, ci.updated_at,
		       p.id, p.name, p.description, p.price, p.stock, p.image_url, p.category_id, p.created_at, p.updated_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.session_id = $1 OR ci.user_id = $1
		ORDER BY ci.id ASC
	`

	rows, err := config.DB.Query(ctx, query, ownerKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var ci models.CartItem
		var p models.Product
		err := rows.Scan(&ci.ID, &ci.ProductID, &ci.Quantity, &ci.SessionID, &ci.UserID, &ci.CreatedAt, &ci.UpdatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		ci.Product = &p
		items = append(items, ci)
	}
	return items, rows.Err()
}

// UpsertIncrement inserts a new line or atomically bumps the quantity of
// the existing (owner, product) line in one statement, so concurrent adds
// never lose an increment. The conflict target depends on which owner
// column the line carries.
func (r *CartRepository) UpsertIncrement(ctx context.Context, item *models.CartItem) error {
	var conflict string
	if item.UserID != nil {
		conflict = `(product_id, user_id) WHERE user_id IS NOT NULL`
	} else {
		conflict = `(product_id, session_id) WHERE session_id IS NOT NULL`
	}

	query := `
		INSERT INTO cart_items (product_id, quantity, session_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT ` + conflict + `
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING id, quantity
	`

	return config.DB.QueryRow(ctx, query,
		item.ProductID, item.Quantity, item.SessionID, item.UserID, time.Now(),
	).Scan(&item.ID, &item.Quantity)
}

// SetQuantity writes an absolute quantity. Reports whether the line existed.
func (r *CartRepository) SetQuantity(ctx context.Context, id, quantity int) (bool, error) {
	tag, err := config.DB.Exec(ctx,
		`UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE id = $3`,
		quantity, time.Now(), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a line. Deleting an absent line is a no-op.
func (r *CartRepository) Delete(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	return err
}

func (r *CartRepository) DeleteByOwner(ctx context.Context, ownerKey string) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1 OR user_id = $1`, ownerKey)
	return err
}

// IsNoRows reports whether err is the driver's empty-result sentinel.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
