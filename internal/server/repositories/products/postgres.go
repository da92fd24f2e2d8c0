// Package products provides persistence for catalog listings.
package products

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/andrejsk/prodcatalog/internal/common"
	"github.com/andrejsk/prodcatalog/internal/dbx"
	"github.com/andrejsk/prodcatalog/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `id, name, description, price, discount_percentage, rating, stock, brand, category, thumbnail, images, created_at, updated_at`

// images travel as jsonb; the helpers below convert to/from []string.
func imagesToJSON(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	return json.Marshal(images)
}

func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	p := &models.Product{}
	var images []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DiscountPercentage,
		&p.Rating, &p.Stock, &p.Brand, &p.Category, &p.Thumbnail, &images,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("decoding images: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	query :=
		`INSERT INTO products (name, description, price, discount_percentage, rating, stock, brand, category, thumbnail, images)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at
		 `

	images, err := imagesToJSON(product.Images)
	if err != nil {
		return nil, fmt.Errorf("encoding images: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Price, product.DiscountPercentage,
		product.Rating, product.Stock, product.Brand, product.Category,
		product.Thumbnail, images).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	query :=
		`UPDATE products
		 SET name = $2, description = $3, price = $4, discount_percentage = $5,
		     rating = $6, stock = $7, brand = $8, category = $9, thumbnail = $10,
		     images = $11, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at
		 `

	images, err := imagesToJSON(product.Images)
	if err != nil {
		return nil, fmt.Errorf("encoding images: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.DiscountPercentage, product.Rating, product.Stock, product.Brand,
		product.Category, product.Thumbnail, images).Scan(&product.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// CreateBatch inserts the imported catalog rows one by one; the seed service
// wraps the call in a transaction so a partial import never persists.
func (r *PostgresRepository) CreateBatch(ctx context.Context, batch []*models.Product) error {
	for _, p := range batch {
		if _, err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
