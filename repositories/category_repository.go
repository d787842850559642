package repositories

import (
	"context"
	"errors"

	"online-store/config"
	"online-store/models"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrCategoryInUse is returned when deleting a category that products still
// reference. The foreign key is ON DELETE RESTRICT.
var ErrCategoryInUse = errors.New("category has products referencing it")

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, created_at FROM categories ORDER BY name ASC, id ASC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE id = $1`, id).Scan(&count)
	return count > 0, err
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at`
	return config.DB.QueryRow(ctx, query, category.Name).Scan(&category.ID, &category.CreatedAt)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrCategoryInUse
		}
		return err
	}
	return nil
}
