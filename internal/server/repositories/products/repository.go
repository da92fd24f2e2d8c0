package products

import (
	"context"

	"github.com/andrejsk/prodcatalog/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, batch []*models.Product) error
	DeleteAll(ctx context.Context) error
}
