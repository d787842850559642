package repositories

import (
	"context"
	"errors"
	"time"

	"online-store/config"
	"online-store/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `p.id, p.name, p.description, p.price, p.stock, p.image_url, p.category_id,
	       p.created_at, p.updated_at, c.id, c.name, c.created_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	var cat models.Category
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt, &cat.ID, &cat.Name, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Category = &cat
	return &p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + `
	          FROM products p JOIN categories c ON c.id = p.category_id
	          WHERE p.id = $1`

	return scanProduct(config.DB.QueryRow(ctx, query, id))
}

// List returns one page of the catalog plus the post-filter total count.
// Sorted by name with id as tie-break so page boundaries are deterministic.
func (r *ProductRepository) List(ctx context.Context, categoryID *int, offset, limit int) ([]models.Product, int, error) {
	countQuery := `SELECT COUNT(*) FROM products`
	listQuery := `SELECT ` + productColumns + `
	              FROM products p JOIN categories c ON c.id = p.category_id`

	args := []interface{}{}
	if categoryID != nil {
		countQuery += ` WHERE category_id = $1`
		listQuery += ` WHERE p.category_id = $1`
		args = append(args, *categoryID)
	}

	var total int
	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery += ` ORDER BY p.name ASC, p.id ASC`
	if categoryID != nil {
		listQuery += ` LIMIT $2 OFFSET $3`
	} else {
		listQuery += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

// ListAll returns every product with its category, unpaginated. Admin only;
// the catalog is assumed small.
func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
	          FROM products p JOIN categories c ON c.id = p.category_id
	          ORDER BY p.id ASC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock, image_url, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Stock,
		product.ImageURL, product.CategoryID, now, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// Delete removes a product and reports the image path that was stored for
// it so the caller can unlink the file. A missing id is a no-op.
func (r *ProductRepository) Delete(ctx context.Context, id int) (string, error) {
	var imageURL string
	err := config.DB.QueryRow(ctx, `SELECT image_url FROM products WHERE id = $1`, id).Scan(&imageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if _, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return "", err
	}
	return imageURL, nil
}
